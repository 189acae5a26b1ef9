package layout

import (
	"time"

	"github.com/alexanderramin/lanegrid/internal/domain"
)

// base is a Monday, so week windows anchored near it are easy to reason about.
var base = time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)

// day returns midnight n days after base.
func day(n int) time.Time {
	return base.AddDate(0, 0, n)
}

func dayPtr(n int) *time.Time {
	d := day(n)
	return &d
}

func makeItem(id string, start, due *time.Time) domain.WorkItem {
	return domain.WorkItem{
		ID:       id,
		Title:    "Item " + id,
		Status:   domain.StatusTodo,
		Priority: domain.PriorityNormal,

		StartDate: start,
		DueDate:   due,
	}
}

func positioned(id string, left, width float64) PositionedItem {
	return PositionedItem{
		Item:     domain.WorkItem{ID: id, Status: domain.StatusTodo},
		Position: Position{Left: left, Width: width},
	}
}
