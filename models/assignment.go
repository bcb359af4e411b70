package models

// AssignmentResult je rezultat uspešnog bulk dodeljivanja taskova.
type AssignmentResult struct {
	Tasks        []Task `json:"tasks"`
	Assignee     User   `json:"assignee"`
	TotalUpdated int    `json:"total_updated"`
}
