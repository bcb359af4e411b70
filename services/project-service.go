package services

import (
	"context"
	"project-manager-service/models"
	"project-manager-service/repositories"
)

type ProjectManager interface {
	ListProjects(ctx context.Context) ([]models.Project, error)
}

// ProjectService je read servis za listanje projekata.
type ProjectService struct {
	projectRepo repositories.ProjectRepository
}

func NewProjectService(projectRepo repositories.ProjectRepository) *ProjectService {
	return &ProjectService{projectRepo: projectRepo}
}

func (s *ProjectService) ListProjects(ctx context.Context) ([]models.Project, error) {
	return s.projectRepo.ListProjectsTx(ctx, nil)
}
