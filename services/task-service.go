package services

import (
	"context"
	"project-manager-service/models"
	"project-manager-service/repositories"
)

type TaskManager interface {
	ListTasks(ctx context.Context) ([]models.Task, error)
	CreateTask(ctx context.Context, req CreateTaskRequest) (*models.Task, error)
}

type CreateTaskRequest struct {
	ProjectID   int64             `json:"project_id"`
	Title       string            `json:"title"`
	Description string            `json:"description"`
	AssignedTo  int64             `json:"assigned_to"`
	DueDate     models.DateOnly   `json:"due_date"`
	Status      models.TaskStatus `json:"status"`
}

type TaskService struct {
	taskRepo    repositories.TaskRepository
	projectRepo repositories.ProjectRepository
	userRepo    repositories.UserRepository
}

func NewTaskService(taskRepo repositories.TaskRepository, projectRepo repositories.ProjectRepository, userRepo repositories.UserRepository) *TaskService {
	return &TaskService{
		taskRepo:    taskRepo,
		projectRepo: projectRepo,
		userRepo:    userRepo,
	}
}

func (s *TaskService) ListTasks(ctx context.Context) ([]models.Task, error) {
	return s.taskRepo.ListTasksTx(ctx, nil)
}

// CreateTask kreira task; rok taska mora biti unutar trajanja projekta.
func (s *TaskService) CreateTask(ctx context.Context, req CreateTaskRequest) (*models.Task, error) {
	tx, err := s.taskRepo.TaskBeginTx(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	project, err := s.projectRepo.GetProjectTx(ctx, tx, req.ProjectID)
	if err != nil {
		return nil, err
	}

	if _, err := s.userRepo.GetUserTx(ctx, tx, req.AssignedTo); err != nil {
		return nil, err
	}

	dueDate := req.DueDate.Time()
	if dueDate.Before(project.StartDate) || dueDate.After(project.EndDate) {
		return nil, models.ErrInvalidDueDate
	}

	status := req.Status
	if status == "" {
		status = models.StatusPending
	}

	task := models.Task{
		ProjectID:   req.ProjectID,
		Title:       req.Title,
		Description: req.Description,
		AssignedTo:  req.AssignedTo,
		DueDate:     dueDate,
		Status:      status,
	}

	created, err := s.taskRepo.CreateTaskTx(ctx, tx, task)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	return created, nil
}
