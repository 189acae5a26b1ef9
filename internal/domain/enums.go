package domain

type WorkItemStatus string

const (
	StatusTodo       WorkItemStatus = "todo"
	StatusInProgress WorkItemStatus = "in_progress"
	StatusReview     WorkItemStatus = "review"
	StatusBlocked    WorkItemStatus = "blocked"
	StatusDone       WorkItemStatus = "done"
)

// StatusOrder is the canonical display ordering for status groupings.
// It is neither alphabetical nor insertion order: it follows the board
// columns users see, with done last.
var StatusOrder = []WorkItemStatus{
	StatusTodo,
	StatusInProgress,
	StatusReview,
	StatusBlocked,
	StatusDone,
}

// StatusRank returns the position of s in StatusOrder (unknown sorts last).
func StatusRank(s WorkItemStatus) int {
	for i, v := range StatusOrder {
		if v == s {
			return i
		}
	}
	return len(StatusOrder)
}

// StatusLabel returns the human display label for a status.
func StatusLabel(s WorkItemStatus) string {
	switch s {
	case StatusTodo:
		return "To Do"
	case StatusInProgress:
		return "In Progress"
	case StatusReview:
		return "Review"
	case StatusBlocked:
		return "Blocked"
	case StatusDone:
		return "Done"
	default:
		return string(s)
	}
}

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityNormal Priority = "normal"
	PriorityHigh   Priority = "high"
	PriorityUrgent Priority = "urgent"
)

// PriorityRank returns a sort priority (lower = more urgent).
func PriorityRank(p Priority) int {
	switch p {
	case PriorityUrgent:
		return 0
	case PriorityHigh:
		return 1
	case PriorityNormal:
		return 2
	default:
		return 3
	}
}

type ProjectStatus string

const (
	ProjectActive   ProjectStatus = "active"
	ProjectArchived ProjectStatus = "archived"
)

// ValidWorkItemStatuses is the canonical set of accepted status strings.
var ValidWorkItemStatuses = map[string]bool{
	"todo": true, "in_progress": true, "review": true,
	"blocked": true, "done": true,
}

// ValidPriorities is the canonical set of accepted priority strings.
var ValidPriorities = map[string]bool{
	"low": true, "normal": true, "high": true, "urgent": true,
}
