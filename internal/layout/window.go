package layout

import (
	"time"

	"github.com/alexanderramin/lanegrid/internal/domain"
)

// TimeWindow is the contiguous span of calendar days a timeline view shows.
// Days holds the midnight boundary of every visible day, ascending, with
// exactly one day of spacing.
type TimeWindow struct {
	Days []time.Time
}

// Start returns the first day boundary of the window.
func (w TimeWindow) Start() time.Time {
	return w.Days[0]
}

// End returns the exclusive end of the window: midnight after the last
// visible day. All clipping is done against [Start, End).
func (w TimeWindow) End() time.Time {
	return w.Days[len(w.Days)-1].AddDate(0, 0, 1)
}

// Extent returns the window's total duration.
func (w TimeWindow) Extent() time.Duration {
	return w.End().Sub(w.Start())
}

// ComputeWindow builds the day boundaries for a view anchored at the given
// instant. Week and two-week views start on the Monday of the anchor's
// calendar week (a Sunday anchor belongs to the week that ends on it, so it
// maps to the preceding Monday). The month view starts on the first of the
// anchor's month and always spans a fixed 30 days.
func ComputeWindow(anchor time.Time, kind domain.ViewKind) TimeWindow {
	var start time.Time
	switch kind {
	case domain.ViewMonth:
		start = time.Date(anchor.Year(), anchor.Month(), 1, 0, 0, 0, 0, anchor.Location())
	default:
		day := time.Date(anchor.Year(), anchor.Month(), anchor.Day(), 0, 0, 0, 0, anchor.Location())
		// Weekday is Sunday-based; shift so Monday is offset 0 and Sunday 6.
		offset := (int(day.Weekday()) + 6) % 7
		start = day.AddDate(0, 0, -offset)
	}

	n := kind.Days()
	days := make([]time.Time, n)
	for i := range days {
		days[i] = start.AddDate(0, 0, i)
	}
	return TimeWindow{Days: days}
}
