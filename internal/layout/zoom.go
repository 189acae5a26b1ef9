package layout

import "github.com/alexanderramin/lanegrid/internal/domain"

// Zoom bounds. Out-of-range values saturate rather than error.
const (
	MinZoomPercent = 60
	MaxZoomPercent = 200
)

// Base per-day pixel widths per view kind, chosen so the whole window is
// legible at 100% zoom: the wider the window, the narrower each day.
const (
	baseDayWidthWeek    = 96.0
	baseDayWidthTwoWeek = 64.0
	baseDayWidthMonth   = 32.0
)

// ClampZoom saturates a zoom percentage into [MinZoomPercent, MaxZoomPercent].
func ClampZoom(zoomPercent int) int {
	if zoomPercent < MinZoomPercent {
		return MinZoomPercent
	}
	if zoomPercent > MaxZoomPercent {
		return MaxZoomPercent
	}
	return zoomPercent
}

// DayWidth returns the pixel width of a single calendar day for the given
// zoom percentage and view kind.
func DayWidth(zoomPercent int, kind domain.ViewKind) float64 {
	var base float64
	switch kind {
	case domain.ViewTwoWeek:
		base = baseDayWidthTwoWeek
	case domain.ViewMonth:
		base = baseDayWidthMonth
	default:
		base = baseDayWidthWeek
	}
	return base * float64(ClampZoom(zoomPercent)) / 100
}
