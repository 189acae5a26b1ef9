package layout

import (
	"time"

	"github.com/alexanderramin/lanegrid/internal/domain"
)

// minWidthFactor keeps zero- and sub-day spans visible and clickable.
const minWidthFactor = 0.9

// Position is an item's horizontal geometry in window-relative pixels.
type Position struct {
	Left  float64
	Width float64
}

// Right returns the trailing edge of the position.
func (p Position) Right() float64 {
	return p.Left + p.Width
}

// PositionedItem pairs a work item with its resolved geometry.
type PositionedItem struct {
	Item     domain.WorkItem
	Position Position
}

// effectiveSpan resolves an item's time span: a missing start falls back to
// the due date, a missing due date falls back to the start. Items with
// neither have no span and are not laid out.
func effectiveSpan(item domain.WorkItem) (start, end time.Time, ok bool) {
	s := domain.CoalesceTime(item.StartDate, item.DueDate)
	if s == nil {
		return time.Time{}, time.Time{}, false
	}
	e := domain.CoalesceTime(item.DueDate, s)
	if e.Before(*s) {
		// Degenerate input: due before start. Collapse to the start instant
		// and let the width floor keep it visible.
		e = s
	}
	return *s, *e, true
}

// MapPosition converts an item's time span into window-relative pixel
// coordinates. It returns nil when the item has no resolvable span or lies
// entirely outside the window.
func MapPosition(item domain.WorkItem, w TimeWindow, dayWidth float64) *Position {
	start, end, ok := effectiveSpan(item)
	if !ok {
		return nil
	}

	winStart, winEnd := w.Start(), w.End()
	if !start.Before(winEnd) {
		return nil
	}
	if !end.After(winStart) {
		// Spans ending at or before the window start are outside; a
		// zero-length span sitting exactly on the boundary still counts as
		// the first visible day.
		if start.Before(end) || end.Before(winStart) {
			return nil
		}
	}
	if start.Before(winStart) {
		start = winStart
	}
	if end.After(winEnd) {
		end = winEnd
	}

	totalPx := dayWidth * float64(len(w.Days))
	scale := totalPx / float64(w.Extent())
	left := float64(start.Sub(winStart)) * scale
	width := float64(end.Sub(start)) * scale

	if min := minWidthFactor * dayWidth; width < min {
		width = min
	}
	if left+width > totalPx {
		width = totalPx - left
	}
	return &Position{Left: left, Width: width}
}
