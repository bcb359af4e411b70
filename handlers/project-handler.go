package handlers

import (
	"net/http"
	"project-manager-service/logging"
	"project-manager-service/services"
)

type ProjectHandler struct {
	projectService services.ProjectManager
}

func NewProjectHandler(projectService services.ProjectManager) *ProjectHandler {
	return &ProjectHandler{projectService: projectService}
}

type projectListResponse struct {
	Count int           `json:"count"`
	Items []ProjectView `json:"items"`
}

// ListProjects vraća sve projekte.
func (h *ProjectHandler) ListProjects(w http.ResponseWriter, r *http.Request) {
	projects, err := h.projectService.ListProjects(r.Context())
	if err != nil {
		logging.Logger.Errorf("Event ID: PROJECT_LIST_FAILED, Description: Failed to list projects: %v", err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	items := make([]ProjectView, 0, len(projects))
	for _, project := range projects {
		items = append(items, newProjectView(project))
	}

	writeJSON(w, http.StatusOK, projectListResponse{
		Count: len(items),
		Items: items,
	})
}
