package migrations

import (
	"context"
	"database/sql"

	"github.com/pressly/goose/v3"
)

func init() {
	goose.AddMigrationContext(upSeedTestData, downSeedTestData)
}

// Testni podaci: pet korisnika, dva tima, pet projekata (jedan bez tima)
// i po nekoliko taskova po projektu.
func upSeedTestData(ctx context.Context, tx *sql.Tx) error {
	_, err := tx.ExecContext(ctx, `
	INSERT INTO users (username, email, first_name, last_name) VALUES
		('jsmith', 'jsmith@company.com', 'John', 'Smith'),
		('agarcia', 'agarcia@company.com', 'Ana', 'Garcia'),
		('mchen', 'mchen@company.com', 'Michael', 'Chen'),
		('spatel', 'spatel@company.com', 'Sarah', 'Patel'),
		('rwilson', 'rwilson@company.com', 'Robert', 'Wilson');
	`)
	if err != nil {
		return err
	}

	_, err = tx.ExecContext(ctx, `
	INSERT INTO teams (name) VALUES
		('Platform Team'),
		('Product Team');
	`)
	if err != nil {
		return err
	}

	_, err = tx.ExecContext(ctx, `
	INSERT INTO team_members (team_id, user_id)
	SELECT t.id, u.id FROM teams t, users u
	WHERE (t.name = 'Platform Team' AND u.username IN ('jsmith', 'mchen', 'rwilson'))
	   OR (t.name = 'Product Team' AND u.username IN ('agarcia', 'spatel'));
	`)
	if err != nil {
		return err
	}

	_, err = tx.ExecContext(ctx, `
	INSERT INTO projects (name, description, start_date, end_date, status, team_id) VALUES
		('Mobile App Redesign', 'Redesign and modernize our mobile application UI/UX for better user engagement',
			'2025-01-01', '2025-06-30', 'active', (SELECT id FROM teams WHERE name = 'Product Team')),
		('Cloud Migration Phase 1', 'Migrate core services to cloud infrastructure for improved scalability',
			'2025-02-01', '2025-08-31', 'active', (SELECT id FROM teams WHERE name = 'Platform Team')),
		('Customer Portal Enhancement', 'Implement new features and security improvements in the customer portal',
			'2025-01-15', '2025-05-15', 'active', (SELECT id FROM teams WHERE name = 'Product Team')),
		('API Integration Platform', 'Develop a centralized platform for third-party API integrations',
			'2025-03-01', '2025-09-30', 'active', (SELECT id FROM teams WHERE name = 'Platform Team')),
		('Performance Optimization', 'Optimize database queries and application performance for better response times',
			'2024-10-01', '2025-01-31', 'completed', NULL);
	`)
	if err != nil {
		return err
	}

	_, err = tx.ExecContext(ctx, `
	INSERT INTO tasks (project_id, title, description, assigned_to, due_date, status)
	SELECT p.id, t.title, t.title || ' for ' || p.name, u.id, p.end_date - INTERVAL '14 days', t.status
	FROM projects p
	JOIN LATERAL (VALUES
		('Requirements Documentation', 'done'),
		('Technical Design', 'pending'),
		('Implementation', 'pending'),
		('Testing', 'pending')
	) AS t(title, status) ON TRUE
	JOIN LATERAL (
		SELECT u.id FROM users u
		LEFT JOIN team_members tm ON tm.user_id = u.id AND tm.team_id = p.team_id
		ORDER BY tm.team_id NULLS LAST, u.id
		LIMIT 1
	) AS u ON TRUE;
	`)
	return err
}

func downSeedTestData(ctx context.Context, tx *sql.Tx) error {
	_, err := tx.ExecContext(ctx, `
	DELETE FROM tasks;
	DELETE FROM projects;
	DELETE FROM team_members;
	DELETE FROM teams;
	DELETE FROM users;
	`)
	return err
}
