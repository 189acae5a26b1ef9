package layout

import (
	"time"

	"github.com/alexanderramin/lanegrid/internal/domain"
)

// OverlayGranularity tells the presentation layer which unit to format the
// elapsed overdue duration in.
type OverlayGranularity string

const (
	GranularityDays  OverlayGranularity = "days"
	GranularityHours OverlayGranularity = "hours"
)

// Overlay is the highlighted segment marking how far past its deadline an
// unresolved item has run, clipped to the visible window.
type Overlay struct {
	Left        float64
	Width       float64
	Elapsed     time.Duration
	Granularity OverlayGranularity
}

// Amount returns the elapsed overdue duration in whole units of the
// overlay's granularity.
func (o Overlay) Amount() int {
	if o.Granularity == GranularityDays {
		return int(o.Elapsed / (24 * time.Hour))
	}
	return int(o.Elapsed / time.Hour)
}

// ComputeOverlay returns the overdue segment for an item, or nil when the
// item has no deadline, is done, is not yet overdue, is not laid out, or
// the overdue period has no visible extent within the window. The segment
// starts on the day after the deadline and ends at now, capped at the
// window's edge.
func ComputeOverlay(item domain.WorkItem, pos *Position, w TimeWindow, dayWidth float64, now time.Time) *Overlay {
	if pos == nil || item.DueDate == nil || item.IsDone() {
		return nil
	}
	due := *item.DueDate
	if !due.Before(now) {
		return nil
	}

	winStart, winEnd := w.Start(), w.End()
	from := due.AddDate(0, 0, 1)
	to := now
	if to.After(winEnd) {
		to = winEnd
	}
	if !to.After(from) {
		return nil
	}
	if from.Before(winStart) {
		from = winStart
	}

	totalPx := dayWidth * float64(len(w.Days))
	scale := totalPx / float64(w.Extent())
	left := float64(from.Sub(winStart)) * scale
	width := float64(to.Sub(from)) * scale
	if width <= 0 {
		return nil
	}

	elapsed := now.Sub(due)
	gran := GranularityHours
	if elapsed >= 24*time.Hour {
		gran = GranularityDays
	}
	return &Overlay{Left: left, Width: width, Elapsed: elapsed, Granularity: gran}
}
