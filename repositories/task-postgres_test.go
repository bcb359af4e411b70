package repositories

/*
Testovi kroz postgres kontejner.
Provere:
	1. Čitanje taskova sa timom projekta (uključujući NULL tim)
	2. Bulk izmena assigned_to i broj pogođenih redova
	3. Detaljno čitanje sa projektom i korisnikom
	4. Kreiranje taska
*/

import (
	"context"
	"project-manager-service/models"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

func setupTestDB(t *testing.T) *pgxpool.Pool {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("test_db"),
		postgres.WithUsername("test_user"),
		postgres.WithPassword("test_password"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2),
		),
	)
	require.NoError(t, err)

	t.Cleanup(func() {
		require.NoError(t, container.Terminate(ctx))
	})

	connStr, err := container.ConnectionString(ctx)
	require.NoError(t, err)

	pool, err := pgxpool.New(ctx, connStr)
	require.NoError(t, err)

	_, err = pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS users (
			id BIGSERIAL PRIMARY KEY,
			username TEXT NOT NULL UNIQUE,
			email TEXT NOT NULL,
			first_name TEXT NOT NULL,
			last_name TEXT NOT NULL
		);

		CREATE TABLE IF NOT EXISTS teams (
			id BIGSERIAL PRIMARY KEY,
			name TEXT NOT NULL
		);

		CREATE TABLE IF NOT EXISTS team_members (
			team_id BIGINT NOT NULL REFERENCES teams(id) ON DELETE CASCADE,
			user_id BIGINT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
			PRIMARY KEY (team_id, user_id)
		);

		CREATE TABLE IF NOT EXISTS projects (
			id BIGSERIAL PRIMARY KEY,
			name TEXT NOT NULL,
			description TEXT NOT NULL,
			start_date DATE NOT NULL,
			end_date DATE NOT NULL,
			status TEXT NOT NULL CHECK (status IN ('active', 'completed')),
			team_id BIGINT REFERENCES teams(id) ON DELETE CASCADE
		);

		CREATE TABLE IF NOT EXISTS tasks (
			id BIGSERIAL PRIMARY KEY,
			project_id BIGINT NOT NULL REFERENCES projects(id) ON DELETE CASCADE,
			title TEXT NOT NULL,
			description TEXT NOT NULL,
			assigned_to BIGINT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
			due_date DATE NOT NULL,
			status TEXT NOT NULL CHECK (status IN ('pending', 'done'))
		);
	`)
	require.NoError(t, err)

	return pool
}

// seedAssignmentData ubacuje dva korisnika, jedan tim, projekat sa timom,
// projekat bez tima i tri taska. Vraća ID-jeve po imenu.
func seedAssignmentData(t *testing.T, pool *pgxpool.Pool) map[string]int64 {
	ctx := context.Background()
	ids := make(map[string]int64)
	var id int64

	rows := []struct {
		key   string
		query string
		args  []interface{}
	}{
		{"user1", `INSERT INTO users (username, email, first_name, last_name) VALUES ('jsmith', 'jsmith@company.com', 'John', 'Smith') RETURNING id`, nil},
		{"user2", `INSERT INTO users (username, email, first_name, last_name) VALUES ('agarcia', 'agarcia@company.com', 'Ana', 'Garcia') RETURNING id`, nil},
		{"team1", `INSERT INTO teams (name) VALUES ('Platform Team') RETURNING id`, nil},
	}
	for _, r := range rows {
		require.NoError(t, pool.QueryRow(ctx, r.query, r.args...).Scan(&id))
		ids[r.key] = id
	}

	_, err := pool.Exec(ctx, `INSERT INTO team_members (team_id, user_id) VALUES ($1, $2)`, ids["team1"], ids["user1"])
	require.NoError(t, err)

	require.NoError(t, pool.QueryRow(ctx,
		`INSERT INTO projects (name, description, start_date, end_date, status, team_id)
		 VALUES ('Cloud Migration', 'Migrate core services', '2025-01-01', '2025-06-30', 'active', $1) RETURNING id`,
		ids["team1"]).Scan(&id))
	ids["project1"] = id

	require.NoError(t, pool.QueryRow(ctx,
		`INSERT INTO projects (name, description, start_date, end_date, status, team_id)
		 VALUES ('Performance Optimization', 'Optimize queries', '2025-01-01', '2025-06-30', 'active', NULL) RETURNING id`).Scan(&id))
	ids["project2"] = id

	require.NoError(t, pool.QueryRow(ctx,
		`INSERT INTO tasks (project_id, title, description, assigned_to, due_date, status)
		 VALUES ($1, 'Task A', 'First task', $2, '2025-05-01', 'pending') RETURNING id`,
		ids["project1"], ids["user2"]).Scan(&id))
	ids["taskA"] = id

	require.NoError(t, pool.QueryRow(ctx,
		`INSERT INTO tasks (project_id, title, description, assigned_to, due_date, status)
		 VALUES ($1, 'Task B', 'Second task', $2, '2025-05-01', 'pending') RETURNING id`,
		ids["project1"], ids["user2"]).Scan(&id))
	ids["taskB"] = id

	require.NoError(t, pool.QueryRow(ctx,
		`INSERT INTO tasks (project_id, title, description, assigned_to, due_date, status)
		 VALUES ($1, 'Task C', 'Teamless task', $2, '2025-05-01', 'pending') RETURNING id`,
		ids["project2"], ids["user2"]).Scan(&id))
	ids["taskC"] = id

	return ids
}

func TestTaskPostgresRepository_FindTasksWithTeams(t *testing.T) {
	pool := setupTestDB(t)
	ids := seedAssignmentData(t, pool)
	repo := NewTaskPostgresRepository(pool)
	ctx := context.Background()

	taskTeams, err := repo.FindTasksWithTeamsTx(ctx, nil, []int64{ids["taskA"], ids["taskC"], 99999})
	require.NoError(t, err)
	require.Len(t, taskTeams, 2)

	byTask := make(map[int64]models.TaskTeam)
	for _, tt := range taskTeams {
		byTask[tt.TaskID] = tt
	}

	require.NotNil(t, byTask[ids["taskA"]].ProjectTeamID)
	assert.Equal(t, ids["team1"], *byTask[ids["taskA"]].ProjectTeamID)
	assert.Nil(t, byTask[ids["taskC"]].ProjectTeamID)
}

func TestTaskPostgresRepository_BulkUpdateAssignee(t *testing.T) {
	pool := setupTestDB(t)
	ids := seedAssignmentData(t, pool)
	repo := NewTaskPostgresRepository(pool)
	ctx := context.Background()

	tx, err := repo.TaskBeginTx(ctx)
	require.NoError(t, err)
	defer tx.Rollback(ctx)

	updated, err := repo.BulkUpdateAssigneeTx(ctx, tx, []int64{ids["taskA"], ids["taskB"]}, ids["user1"])
	require.NoError(t, err)
	assert.Equal(t, int64(2), updated)

	tasks, err := repo.FindTasksDetailedTx(ctx, tx, []int64{ids["taskA"], ids["taskB"]})
	require.NoError(t, err)
	require.Len(t, tasks, 2)
	for _, task := range tasks {
		assert.Equal(t, ids["user1"], task.AssignedTo)
		require.NotNil(t, task.Assignee)
		assert.Equal(t, "jsmith", task.Assignee.Username)
	}

	require.NoError(t, tx.Commit(ctx))
}

func TestTaskPostgresRepository_BulkUpdateAssignee_MissingIDs(t *testing.T) {
	pool := setupTestDB(t)
	ids := seedAssignmentData(t, pool)
	repo := NewTaskPostgresRepository(pool)
	ctx := context.Background()

	updated, err := repo.BulkUpdateAssigneeTx(ctx, nil, []int64{ids["taskA"], 99999}, ids["user1"])
	require.NoError(t, err)
	assert.Equal(t, int64(1), updated)
}

func TestTaskPostgresRepository_FindTasksDetailed(t *testing.T) {
	pool := setupTestDB(t)
	ids := seedAssignmentData(t, pool)
	repo := NewTaskPostgresRepository(pool)
	ctx := context.Background()

	tasks, err := repo.FindTasksDetailedTx(ctx, nil, []int64{ids["taskB"], ids["taskA"]})
	require.NoError(t, err)
	require.Len(t, tasks, 2)

	// Redosled je redosled iz baze, ne iz ulaza.
	assert.Equal(t, ids["taskA"], tasks[0].ID)
	require.NotNil(t, tasks[0].Project)
	assert.Equal(t, "Cloud Migration", tasks[0].Project.Name)
	require.NotNil(t, tasks[0].Assignee)
	assert.Equal(t, "agarcia", tasks[0].Assignee.Username)
}

func TestTaskPostgresRepository_CreateTask(t *testing.T) {
	pool := setupTestDB(t)
	ids := seedAssignmentData(t, pool)
	repo := NewTaskPostgresRepository(pool)
	ctx := context.Background()

	task := models.Task{
		ProjectID:   ids["project1"],
		Title:       "Security Review",
		Description: "Conduct security assessment",
		AssignedTo:  ids["user1"],
		DueDate:     time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC),
		Status:      models.StatusPending,
	}

	created, err := repo.CreateTaskTx(ctx, nil, task)
	require.NoError(t, err)
	assert.NotZero(t, created.ID)
	assert.Equal(t, "Security Review", created.Title)
	require.NotNil(t, created.Project)
	assert.Equal(t, "Cloud Migration", created.Project.Name)
}
