package layout

import (
	"testing"
	"time"

	"github.com/alexanderramin/lanegrid/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeWindow_Lengths(t *testing.T) {
	anchor := time.Date(2026, 3, 4, 15, 30, 0, 0, time.UTC) // a Wednesday

	assert.Len(t, ComputeWindow(anchor, domain.ViewWeek).Days, 7)
	assert.Len(t, ComputeWindow(anchor, domain.ViewTwoWeek).Days, 14)
	assert.Len(t, ComputeWindow(anchor, domain.ViewMonth).Days, 30)
}

func TestComputeWindow_StrictlyAscendingOneDayApart(t *testing.T) {
	for _, kind := range []domain.ViewKind{domain.ViewWeek, domain.ViewTwoWeek, domain.ViewMonth} {
		w := ComputeWindow(time.Date(2026, 7, 19, 3, 0, 0, 0, time.UTC), kind)
		for i := 1; i < len(w.Days); i++ {
			assert.Equal(t, w.Days[i-1].AddDate(0, 0, 1), w.Days[i],
				"%s: day %d must be exactly one day after day %d", kind, i, i-1)
		}
	}
}

func TestComputeWindow_WeekStartsOnMonday(t *testing.T) {
	// Wednesday 2026-03-04 belongs to the week starting Monday 2026-03-02.
	w := ComputeWindow(time.Date(2026, 3, 4, 12, 0, 0, 0, time.UTC), domain.ViewWeek)
	assert.Equal(t, time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC), w.Start())
	assert.Equal(t, time.Monday, w.Start().Weekday())
}

func TestComputeWindow_SundayAnchorBelongsToPrecedingWeek(t *testing.T) {
	// Sunday 2026-03-08 is the last day of the week starting Monday 2026-03-02.
	sunday := time.Date(2026, 3, 8, 9, 0, 0, 0, time.UTC)
	require.Equal(t, time.Sunday, sunday.Weekday())

	w := ComputeWindow(sunday, domain.ViewWeek)
	assert.Equal(t, time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC), w.Start())
	assert.Equal(t, sunday.Truncate(24*time.Hour), w.Days[6])
}

func TestComputeWindow_MondayAnchorStartsSameDay(t *testing.T) {
	monday := time.Date(2026, 3, 2, 23, 59, 0, 0, time.UTC)
	w := ComputeWindow(monday, domain.ViewWeek)
	assert.Equal(t, time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC), w.Start())
}

func TestComputeWindow_MonthStartsOnFirstAndSpansThirtyDays(t *testing.T) {
	// February: actual month length is 28 but the window is always 30 days.
	w := ComputeWindow(time.Date(2026, 2, 17, 8, 0, 0, 0, time.UTC), domain.ViewMonth)
	require.Len(t, w.Days, 30)
	assert.Equal(t, time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC), w.Start())
	assert.Equal(t, time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC), w.Days[29],
		"30-day window over February must spill into March")
}

func TestComputeWindow_NormalizesAnchorTimeOfDay(t *testing.T) {
	late := ComputeWindow(time.Date(2026, 3, 4, 23, 45, 11, 0, time.UTC), domain.ViewWeek)
	early := ComputeWindow(time.Date(2026, 3, 4, 0, 0, 0, 0, time.UTC), domain.ViewWeek)
	assert.Equal(t, early.Days, late.Days)
}

func TestTimeWindow_EndIsExclusiveMidnightAfterLastDay(t *testing.T) {
	w := ComputeWindow(time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC), domain.ViewWeek)
	assert.Equal(t, time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC), w.End())
	assert.Equal(t, 7*24*time.Hour, w.Extent())
}
