package models

import "time"

type TaskStatus string

const (
	StatusPending TaskStatus = "pending"
	StatusDone    TaskStatus = "done"
)

type Task struct {
	ID          int64      `json:"id"`
	ProjectID   int64      `json:"project_id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	AssignedTo  int64      `json:"assigned_to"`
	DueDate     time.Time  `json:"due_date"`
	Status      TaskStatus `json:"status"`

	// Popunjeno kod detaljnog čitanja (join sa projects i users).
	Project  *Project `json:"project,omitempty"`
	Assignee *User    `json:"assignee,omitempty"`
}

// TaskTeam je minimalni presek koji je validatoru potreban: task i tim
// projekta kome pripada. ProjectTeamID je nil kada projekat nema tim.
type TaskTeam struct {
	TaskID        int64
	ProjectID     int64
	ProjectTeamID *int64
}
