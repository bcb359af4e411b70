package services

/*
Osnovne funkcije:
	1. Validacija bulk dodeljivanja (prazna lista, nepostojeći taskovi,
	   članstvo kandidata u timu projekta)
	2. Atomicna izmena assigned_to za sve tražene taskove
	3. Ponovno čitanje izmenjenih taskova sa projektom i korisnikom

Validacija i izmena se izvršavaju u istoj transakciji - ili se svi taskovi
dodele kandidatu, ili nijedan.
*/

import (
	"context"
	"fmt"
	"project-manager-service/logging"
	"project-manager-service/models"
	"project-manager-service/repositories"

	"github.com/jackc/pgx/v5"
)

type AssignmentManager interface {
	BulkAssign(ctx context.Context, taskIDs []int64, candidate models.User) (*models.AssignmentResult, error)
}

type AssignmentService struct {
	taskRepo repositories.TaskRepository
	userRepo repositories.UserRepository
	notifier Notifier
}

// NewAssignmentService kreira servis; notifier sme biti nil.
func NewAssignmentService(taskRepo repositories.TaskRepository, userRepo repositories.UserRepository, notifier Notifier) *AssignmentService {
	return &AssignmentService{
		taskRepo: taskRepo,
		userRepo: userRepo,
		notifier: notifier,
	}
}

// BulkAssign dodeljuje sve tražene taskove kandidatu u jednoj transakciji.
func (s *AssignmentService) BulkAssign(ctx context.Context, taskIDs []int64, candidate models.User) (*models.AssignmentResult, error) {
	ids := dedupeIDs(taskIDs)
	if len(ids) == 0 {
		return nil, models.ErrEmptyTaskList
	}

	tx, err := s.taskRepo.TaskBeginTx(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	if err := s.validateAssignment(ctx, tx, ids, candidate); err != nil {
		return nil, err
	}

	updated, err := s.taskRepo.BulkUpdateAssigneeTx(ctx, tx, ids, candidate.ID)
	if err != nil {
		return nil, err
	}
	if updated != int64(len(ids)) {
		// Neko je obrisao task između validacije i izmene.
		return nil, models.ErrUpdateCountMismatch
	}

	tasks, err := s.taskRepo.FindTasksDetailedTx(ctx, tx, ids)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit bulk assignment: %w", err)
	}

	if s.notifier != nil {
		if err := s.notifier.NotifyAssignment(ctx, candidate, len(tasks)); err != nil {
			logging.Logger.Warnf("Event ID: NOTIFY_ASSIGNMENT_FAILED, Description: Failed to notify user %s about assignment: %v", candidate.Username, err)
		}
	}

	return &models.AssignmentResult{
		Tasks:        tasks,
		Assignee:     candidate,
		TotalUpdated: int(updated),
	}, nil
}

// validateAssignment proverava da svi taskovi postoje i da kandidat pripada
// timu projekta svakog taska. Task čiji projekat nema tim nikada ne prolazi
// proveru - "bez tima" ne može biti član skupa timova kandidata.
func (s *AssignmentService) validateAssignment(ctx context.Context, tx pgx.Tx, taskIDs []int64, candidate models.User) error {
	taskTeams, err := s.taskRepo.FindTasksWithTeamsTx(ctx, tx, taskIDs)
	if err != nil {
		return err
	}
	if len(taskTeams) != len(taskIDs) {
		return models.ErrTasksNotFound
	}

	teams, err := s.userRepo.FindTeamsForUserTx(ctx, tx, candidate.ID)
	if err != nil {
		return err
	}

	memberOf := make(map[int64]bool, len(teams))
	for _, team := range teams {
		memberOf[team.ID] = true
	}

	for _, tt := range taskTeams {
		if tt.ProjectTeamID == nil || !memberOf[*tt.ProjectTeamID] {
			return models.ErrTeamMismatch
		}
	}

	return nil
}

func dedupeIDs(ids []int64) []int64 {
	seen := make(map[int64]bool, len(ids))
	result := make([]int64, 0, len(ids))
	for _, id := range ids {
		if seen[id] {
			continue
		}
		seen[id] = true
		result = append(result, id)
	}
	return result
}
