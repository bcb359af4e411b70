package models

import "errors"

var (
	ErrEmptyTaskList   = errors.New("no tasks provided")
	ErrTasksNotFound   = errors.New("one or more tasks do not exist")
	ErrTeamMismatch    = errors.New("user cannot be assigned to tasks in teams they don't belong to")
	ErrUserNotFound    = errors.New("user not found")
	ErrTaskNotFound    = errors.New("task not found")
	ErrProjectNotFound = errors.New("project not found")
	ErrInvalidDueDate  = errors.New("due date is outside the project date range")

	// ErrUpdateCountMismatch znači da je broj ažuriranih redova manji od
	// broja traženih taskova - transakcija se poništava.
	ErrUpdateCountMismatch = errors.New("updated row count does not match requested task count")
)
