package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"project-manager-service/logging"
	"project-manager-service/models"
	"project-manager-service/services"
)

type TaskHandler struct {
	taskService services.TaskManager
}

func NewTaskHandler(taskService services.TaskManager) *TaskHandler {
	return &TaskHandler{taskService: taskService}
}

type taskListResponse struct {
	Count int        `json:"count"`
	Items []TaskView `json:"items"`
}

// ListTasks vraća sve taskove sa projektom i korisnikom.
func (h *TaskHandler) ListTasks(w http.ResponseWriter, r *http.Request) {
	tasks, err := h.taskService.ListTasks(r.Context())
	if err != nil {
		logging.Logger.Errorf("Event ID: TASK_LIST_FAILED, Description: Failed to list tasks: %v", err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	writeJSON(w, http.StatusOK, taskListResponse{
		Count: len(tasks),
		Items: newTaskViews(tasks),
	})
}

// CreateTask kreira novi task.
func (h *TaskHandler) CreateTask(w http.ResponseWriter, r *http.Request) {
	var req services.CreateTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	if req.ProjectID == 0 {
		writeError(w, http.StatusBadRequest, "project_id: This field is required.")
		return
	}
	if req.Title == "" {
		writeError(w, http.StatusBadRequest, "title: This field is required.")
		return
	}
	if req.AssignedTo == 0 {
		writeError(w, http.StatusBadRequest, "assigned_to: This field is required.")
		return
	}

	task, err := h.taskService.CreateTask(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, models.ErrProjectNotFound):
			writeError(w, http.StatusBadRequest, "Project does not exist")
		case errors.Is(err, models.ErrUserNotFound):
			writeError(w, http.StatusBadRequest, "Assignee does not exist")
		case errors.Is(err, models.ErrInvalidDueDate):
			writeError(w, http.StatusBadRequest, "Due date must be within the project date range")
		default:
			logging.Logger.Errorf("Event ID: TASK_CREATE_FAILED, Description: Failed to create task: %v", err)
			writeError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	writeJSON(w, http.StatusCreated, newTaskView(*task))
}
