package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"project-manager-service/logging"
	"project-manager-service/models"
	"project-manager-service/services"
)

type AssignmentHandler struct {
	assignmentService services.AssignmentManager
	userService       services.UserManager
}

func NewAssignmentHandler(assignmentService services.AssignmentManager, userService services.UserManager) *AssignmentHandler {
	return &AssignmentHandler{
		assignmentService: assignmentService,
		userService:       userService,
	}
}

type bulkAssignRequest struct {
	TaskIDs []int64 `json:"task_ids"`
	UserID  *int64  `json:"user_id"`
}

type bulkAssignMetadata struct {
	TotalUpdated int    `json:"total_updated"`
	Assignee     string `json:"assignee"`
}

type bulkAssignResponse struct {
	Items    []TaskView         `json:"items"`
	Metadata bulkAssignMetadata `json:"metadata"`
}

// BulkAssignTasks dodeljuje više taskova jednom korisniku odjednom.
func (h *AssignmentHandler) BulkAssignTasks(w http.ResponseWriter, r *http.Request) {
	var req bulkAssignRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	// Prva nevalidna vrednost se prijavljuje, kao kod ulaznog serializatora.
	if req.TaskIDs == nil {
		writeError(w, http.StatusBadRequest, "task_ids: This field is required.")
		return
	}
	if len(req.TaskIDs) == 0 {
		writeError(w, http.StatusBadRequest, "task_ids: This list may not be empty.")
		return
	}
	if req.UserID == nil {
		writeError(w, http.StatusBadRequest, "user_id: This field is required.")
		return
	}

	user, err := h.userService.GetUser(r.Context(), *req.UserID)
	if err != nil {
		if errors.Is(err, models.ErrUserNotFound) {
			writeError(w, http.StatusNotFound, "User not found")
			return
		}
		logging.Logger.Errorf("Event ID: USER_LOOKUP_FAILED, Description: Failed to look up user %d: %v", *req.UserID, err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	result, err := h.assignmentService.BulkAssign(r.Context(), req.TaskIDs, *user)
	if err != nil {
		switch {
		case errors.Is(err, models.ErrEmptyTaskList):
			writeError(w, http.StatusBadRequest, "No tasks provided")
		case errors.Is(err, models.ErrTasksNotFound):
			writeError(w, http.StatusBadRequest, "One or more tasks do not exist")
		case errors.Is(err, models.ErrTeamMismatch):
			writeError(w, http.StatusBadRequest, "User cannot be assigned to tasks in teams they don't belong to")
		default:
			logging.Logger.Errorf("Event ID: BULK_ASSIGN_FAILED, Description: Error in bulk task assignment: %v", err)
			writeError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	caller := r.Header.Get("Username")
	logging.Logger.Infof("Event ID: TASKS_BULK_ASSIGNED, Description: User %s assigned %d tasks to %s", caller, result.TotalUpdated, result.Assignee.Username)

	writeJSON(w, http.StatusOK, bulkAssignResponse{
		Items: newTaskViews(result.Tasks),
		Metadata: bulkAssignMetadata{
			TotalUpdated: result.TotalUpdated,
			Assignee:     result.Assignee.Username,
		},
	})
}
