package domain

import "time"

type WorkItem struct {
	ID       string
	Title    string
	Status   WorkItemStatus
	Priority Priority

	// Schedule
	StartDate   *time.Time
	DueDate     *time.Time
	EstimateMin int

	// References
	AssigneeID string
	ProjectID  string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsDone reports whether the item has reached the terminal status.
func (w *WorkItem) IsDone() bool {
	return w.Status == StatusDone
}
