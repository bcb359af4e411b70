package repositories

import (
	"context"
	"project-manager-service/models"

	"github.com/jackc/pgx/v5"
)

type TaskRepository interface {
	FindTasksWithTeamsTx(ctx context.Context, tx pgx.Tx, taskIDs []int64) ([]models.TaskTeam, error)
	BulkUpdateAssigneeTx(ctx context.Context, tx pgx.Tx, taskIDs []int64, userID int64) (int64, error)
	FindTasksDetailedTx(ctx context.Context, tx pgx.Tx, taskIDs []int64) ([]models.Task, error)
	ListTasksTx(ctx context.Context, tx pgx.Tx) ([]models.Task, error)
	CreateTaskTx(ctx context.Context, tx pgx.Tx, task models.Task) (*models.Task, error)

	TaskBeginTx(ctx context.Context) (pgx.Tx, error)
}

type UserRepository interface {
	GetUserTx(ctx context.Context, tx pgx.Tx, userID int64) (*models.User, error)
	FindTeamsForUserTx(ctx context.Context, tx pgx.Tx, userID int64) ([]models.Team, error)

	UserBeginTx(ctx context.Context) (pgx.Tx, error)
}

type ProjectRepository interface {
	GetProjectTx(ctx context.Context, tx pgx.Tx, projectID int64) (*models.Project, error)
	ListProjectsTx(ctx context.Context, tx pgx.Tx) ([]models.Project, error)

	ProjectBeginTx(ctx context.Context) (pgx.Tx, error)
}
