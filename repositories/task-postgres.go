package repositories

/*
Osnovne funkcije:
	1. Pronalaženje taskova sa timom projekta (za proveru članstva)
	2. Bulk izmena assigned_to kolone u jednom UPDATE-u
	3. Detaljno čitanje taskova sa projektom i korisnikom

Ako je Tx nil, upit ide direktno preko pool-a.
*/

import (
	"context"
	"fmt"
	"project-manager-service/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type TaskPostgresRepository struct {
	pool *pgxpool.Pool
}

func NewTaskPostgresRepository(pool *pgxpool.Pool) *TaskPostgresRepository {
	return &TaskPostgresRepository{pool: pool}
}

func (r *TaskPostgresRepository) TaskBeginTx(ctx context.Context) (pgx.Tx, error) {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{
		IsoLevel:   pgx.Serializable,
		AccessMode: pgx.ReadWrite,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	return tx, nil
}

func (r *TaskPostgresRepository) FindTasksWithTeamsTx(ctx context.Context, tx pgx.Tx, taskIDs []int64) ([]models.TaskTeam, error) {
	query := `
		SELECT t.id, t.project_id, p.team_id
		FROM tasks t
		JOIN projects p ON p.id = t.project_id
		WHERE t.id = ANY($1)
	`

	var rows pgx.Rows
	var err error

	if tx != nil {
		rows, err = tx.Query(ctx, query, taskIDs)
	} else {
		rows, err = r.pool.Query(ctx, query, taskIDs)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query tasks with teams: %w", err)
	}
	defer rows.Close()

	var result []models.TaskTeam
	for rows.Next() {
		var tt models.TaskTeam
		if err := rows.Scan(&tt.TaskID, &tt.ProjectID, &tt.ProjectTeamID); err != nil {
			return nil, fmt.Errorf("failed to scan task team row: %w", err)
		}
		result = append(result, tt)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating task team rows: %w", err)
	}

	return result, nil
}

func (r *TaskPostgresRepository) BulkUpdateAssigneeTx(ctx context.Context, tx pgx.Tx, taskIDs []int64, userID int64) (int64, error) {
	query := `UPDATE tasks SET assigned_to = $1 WHERE id = ANY($2)`

	if tx != nil {
		ct, err := tx.Exec(ctx, query, userID, taskIDs)
		if err != nil {
			return 0, fmt.Errorf("failed to bulk update assignee: %w", err)
		}
		return ct.RowsAffected(), nil
	}

	ct, err := r.pool.Exec(ctx, query, userID, taskIDs)
	if err != nil {
		return 0, fmt.Errorf("failed to bulk update assignee: %w", err)
	}
	return ct.RowsAffected(), nil
}

const taskDetailedSelect = `
	SELECT
		t.id, t.project_id, t.title, t.description, t.assigned_to, t.due_date, t.status,
		p.id, p.name, p.description, p.start_date, p.end_date, p.status, p.team_id,
		u.id, u.username, u.email, u.first_name, u.last_name
	FROM tasks t
	JOIN projects p ON p.id = t.project_id
	JOIN users u ON u.id = t.assigned_to
`

func scanDetailedTasks(rows pgx.Rows) ([]models.Task, error) {
	var tasks []models.Task
	for rows.Next() {
		var task models.Task
		var project models.Project
		var assignee models.User
		err := rows.Scan(
			&task.ID, &task.ProjectID, &task.Title, &task.Description, &task.AssignedTo, &task.DueDate, &task.Status,
			&project.ID, &project.Name, &project.Description, &project.StartDate, &project.EndDate, &project.Status, &project.TeamID,
			&assignee.ID, &assignee.Username, &assignee.Email, &assignee.FirstName, &assignee.LastName,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan task row: %w", err)
		}
		task.Project = &project
		task.Assignee = &assignee
		tasks = append(tasks, task)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating task rows: %w", err)
	}
	return tasks, nil
}

func (r *TaskPostgresRepository) FindTasksDetailedTx(ctx context.Context, tx pgx.Tx, taskIDs []int64) ([]models.Task, error) {
	query := taskDetailedSelect + ` WHERE t.id = ANY($1) ORDER BY t.id`

	var rows pgx.Rows
	var err error

	if tx != nil {
		rows, err = tx.Query(ctx, query, taskIDs)
	} else {
		rows, err = r.pool.Query(ctx, query, taskIDs)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query tasks: %w", err)
	}
	defer rows.Close()

	return scanDetailedTasks(rows)
}

func (r *TaskPostgresRepository) ListTasksTx(ctx context.Context, tx pgx.Tx) ([]models.Task, error) {
	query := taskDetailedSelect + ` ORDER BY t.id`

	var rows pgx.Rows
	var err error

	if tx != nil {
		rows, err = tx.Query(ctx, query)
	} else {
		rows, err = r.pool.Query(ctx, query)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query tasks: %w", err)
	}
	defer rows.Close()

	return scanDetailedTasks(rows)
}

func (r *TaskPostgresRepository) CreateTaskTx(ctx context.Context, tx pgx.Tx, task models.Task) (*models.Task, error) {
	query := `
		INSERT INTO tasks (project_id, title, description, assigned_to, due_date, status)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`

	var id int64
	var row pgx.Row
	if tx != nil {
		row = tx.QueryRow(ctx, query, task.ProjectID, task.Title, task.Description, task.AssignedTo, task.DueDate, task.Status)
	} else {
		row = r.pool.QueryRow(ctx, query, task.ProjectID, task.Title, task.Description, task.AssignedTo, task.DueDate, task.Status)
	}
	if err := row.Scan(&id); err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}

	created, err := r.FindTasksDetailedTx(ctx, tx, []int64{id})
	if err != nil {
		return nil, err
	}
	if len(created) == 0 {
		return nil, models.ErrTaskNotFound
	}
	return &created[0], nil
}
