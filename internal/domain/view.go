package domain

import "time"

// ViewKind selects the visible window length of a timeline view.
type ViewKind string

const (
	ViewWeek    ViewKind = "week"
	ViewTwoWeek ViewKind = "twoweek"
	ViewMonth   ViewKind = "month"
)

// Days returns the number of calendar days a view kind spans.
// The month view is a fixed 30 days regardless of the actual month length.
func (k ViewKind) Days() int {
	switch k {
	case ViewTwoWeek:
		return 14
	case ViewMonth:
		return 30
	default:
		return 7
	}
}

// ParseViewKind maps a user-supplied string to a ViewKind,
// falling back to the week view for anything unrecognized.
func ParseViewKind(s string) ViewKind {
	switch s {
	case "week":
		return ViewWeek
	case "twoweek", "two-week", "2w":
		return ViewTwoWeek
	case "month":
		return ViewMonth
	default:
		return ViewWeek
	}
}

// GroupKey selects the dimension timeline rows are partitioned by.
type GroupKey string

const (
	GroupByAssignee GroupKey = "assignee"
	GroupByProject  GroupKey = "project"
	GroupByStatus   GroupKey = "status"
)

// ParseGroupKey maps a user-supplied string to a GroupKey,
// falling back to assignee grouping for anything unrecognized.
func ParseGroupKey(s string) GroupKey {
	switch s {
	case "project":
		return GroupByProject
	case "status":
		return GroupByStatus
	default:
		return GroupByAssignee
	}
}

// ViewConfig is the caller-owned description of a timeline view.
// Anchor picks which week or month the window covers.
type ViewConfig struct {
	Kind        ViewKind
	Anchor      time.Time
	ZoomPercent int
	GroupBy     GroupKey
}
