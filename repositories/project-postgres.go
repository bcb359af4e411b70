package repositories

import (
	"context"
	"errors"
	"fmt"
	"project-manager-service/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ProjectPostgresRepository struct {
	pool *pgxpool.Pool
}

func NewProjectPostgresRepository(pool *pgxpool.Pool) *ProjectPostgresRepository {
	return &ProjectPostgresRepository{pool: pool}
}

func (r *ProjectPostgresRepository) ProjectBeginTx(ctx context.Context) (pgx.Tx, error) {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{
		IsoLevel:   pgx.Serializable,
		AccessMode: pgx.ReadWrite,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	return tx, nil
}

func (r *ProjectPostgresRepository) GetProjectTx(ctx context.Context, tx pgx.Tx, projectID int64) (*models.Project, error) {
	query := `SELECT id, name, description, start_date, end_date, status, team_id FROM projects WHERE id = $1`

	var row pgx.Row
	if tx != nil {
		row = tx.QueryRow(ctx, query, projectID)
	} else {
		row = r.pool.QueryRow(ctx, query, projectID)
	}

	var project models.Project
	err := row.Scan(&project.ID, &project.Name, &project.Description, &project.StartDate, &project.EndDate, &project.Status, &project.TeamID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, models.ErrProjectNotFound
		}
		return nil, fmt.Errorf("failed to query project: %w", err)
	}

	return &project, nil
}

func (r *ProjectPostgresRepository) ListProjectsTx(ctx context.Context, tx pgx.Tx) ([]models.Project, error) {
	query := `SELECT id, name, description, start_date, end_date, status, team_id FROM projects ORDER BY id`

	var rows pgx.Rows
	var err error

	if tx != nil {
		rows, err = tx.Query(ctx, query)
	} else {
		rows, err = r.pool.Query(ctx, query)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query projects: %w", err)
	}
	defer rows.Close()

	var projects []models.Project
	for rows.Next() {
		var project models.Project
		err := rows.Scan(&project.ID, &project.Name, &project.Description, &project.StartDate, &project.EndDate, &project.Status, &project.TeamID)
		if err != nil {
			return nil, fmt.Errorf("failed to scan project row: %w", err)
		}
		projects = append(projects, project)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating project rows: %w", err)
	}

	return projects, nil
}
