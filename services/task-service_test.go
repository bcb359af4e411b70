package services

import (
	"context"
	"project-manager-service/models"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeProjectRepo struct {
	projects map[int64]models.Project
}

func (r *fakeProjectRepo) ProjectBeginTx(ctx context.Context) (pgx.Tx, error) { return &fakeTx{}, nil }

func (r *fakeProjectRepo) GetProjectTx(ctx context.Context, tx pgx.Tx, projectID int64) (*models.Project, error) {
	project, ok := r.projects[projectID]
	if !ok {
		return nil, models.ErrProjectNotFound
	}
	return &project, nil
}

func (r *fakeProjectRepo) ListProjectsTx(ctx context.Context, tx pgx.Tx) ([]models.Project, error) {
	var projects []models.Project
	for _, p := range r.projects {
		projects = append(projects, p)
	}
	return projects, nil
}

func newTaskFixture() (*fakeTaskRepo, *fakeProjectRepo, *fakeUserRepo) {
	taskRepo, userRepo, _ := newFixture()
	projectRepo := &fakeProjectRepo{
		projects: map[int64]models.Project{
			100: {
				ID:        100,
				Name:      "Cloud Migration",
				StartDate: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
				EndDate:   time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC),
				Status:    models.ProjectActive,
			},
		},
	}
	return taskRepo, projectRepo, userRepo
}

func TestCreateTask_Success(t *testing.T) {
	taskRepo, projectRepo, userRepo := newTaskFixture()
	service := NewTaskService(taskRepo, projectRepo, userRepo)

	task, err := service.CreateTask(context.Background(), CreateTaskRequest{
		ProjectID:   100,
		Title:       "Technical Design",
		Description: "Develop technical design specifications",
		AssignedTo:  1,
		DueDate:     models.DateOnly(time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC)),
	})
	require.NoError(t, err)

	assert.NotZero(t, task.ID)
	assert.Equal(t, models.StatusPending, task.Status)
	assert.Equal(t, 1, taskRepo.createCalls)
	assert.True(t, taskRepo.lastTx.committed)
}

func TestCreateTask_DueDateOutsideProjectRange(t *testing.T) {
	taskRepo, projectRepo, userRepo := newTaskFixture()
	service := NewTaskService(taskRepo, projectRepo, userRepo)

	testCases := []struct {
		name    string
		dueDate time.Time
	}{
		{"before project start", time.Date(2024, 12, 1, 0, 0, 0, 0, time.UTC)},
		{"after project end", time.Date(2025, 8, 1, 0, 0, 0, 0, time.UTC)},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := service.CreateTask(context.Background(), CreateTaskRequest{
				ProjectID:  100,
				Title:      "Testing",
				AssignedTo: 1,
				DueDate:    models.DateOnly(tc.dueDate),
			})
			assert.ErrorIs(t, err, models.ErrInvalidDueDate)
		})
	}

	assert.Zero(t, taskRepo.createCalls)
}

func TestCreateTask_UnknownProject(t *testing.T) {
	taskRepo, projectRepo, userRepo := newTaskFixture()
	service := NewTaskService(taskRepo, projectRepo, userRepo)

	_, err := service.CreateTask(context.Background(), CreateTaskRequest{
		ProjectID:  99999,
		Title:      "Testing",
		AssignedTo: 1,
		DueDate:    models.DateOnly(time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC)),
	})
	assert.ErrorIs(t, err, models.ErrProjectNotFound)
	assert.Zero(t, taskRepo.createCalls)
}

func TestCreateTask_UnknownAssignee(t *testing.T) {
	taskRepo, projectRepo, userRepo := newTaskFixture()
	service := NewTaskService(taskRepo, projectRepo, userRepo)

	_, err := service.CreateTask(context.Background(), CreateTaskRequest{
		ProjectID:  100,
		Title:      "Testing",
		AssignedTo: 99999,
		DueDate:    models.DateOnly(time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC)),
	})
	assert.ErrorIs(t, err, models.ErrUserNotFound)
	assert.Zero(t, taskRepo.createCalls)
}
