package layout

import (
	"testing"
	"time"

	"github.com/alexanderramin/lanegrid/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func overdueItem(due time.Time) domain.WorkItem {
	d := due
	return domain.WorkItem{ID: "a", Status: domain.StatusTodo, DueDate: &d}
}

func TestComputeOverlay_TwoDaysOverdue(t *testing.T) {
	w := weekWindow()
	item := overdueItem(day(2))
	now := day(4) // due + 2 days
	pos := MapPosition(item, w, 96)
	require.NotNil(t, pos)

	ov := ComputeOverlay(item, pos, w, 96, now)
	require.NotNil(t, ov)
	// Overdue marking starts the day after the deadline.
	assert.InDelta(t, 3*96.0, ov.Left, 1e-9)
	assert.InDelta(t, 96.0, ov.Width, 1e-9)
	assert.Equal(t, GranularityDays, ov.Granularity)
	assert.Equal(t, 2, ov.Amount())
}

func TestComputeOverlay_SuppressedWithinFirstDayOverdue(t *testing.T) {
	// Five hours overdue: the first overdue day (deadline + 1d) has not
	// started yet, so there is nothing to draw.
	w := weekWindow()
	item := overdueItem(day(2))
	now := day(2).Add(5 * time.Hour)
	pos := MapPosition(item, w, 96)

	assert.Nil(t, ComputeOverlay(item, pos, w, 96, now))
}

func TestComputeOverlay_WholeDayRounding(t *testing.T) {
	// 1 day and 30 minutes overdue: the segment has just opened and the
	// amount rounds down to a single whole day.
	w := weekWindow()
	item := overdueItem(day(2))
	now := day(3).Add(30 * time.Minute)
	pos := MapPosition(item, w, 96)

	ov := ComputeOverlay(item, pos, w, 96, now)
	require.NotNil(t, ov)
	assert.Equal(t, GranularityDays, ov.Granularity)
	assert.Equal(t, 1, ov.Amount())
}

func TestComputeOverlay_NilWhenNotOverdue(t *testing.T) {
	w := weekWindow()
	item := overdueItem(day(4))
	pos := MapPosition(item, w, 96)

	assert.Nil(t, ComputeOverlay(item, pos, w, 96, day(3)), "deadline in the future")
	assert.Nil(t, ComputeOverlay(item, pos, w, 96, day(4)), "deadline exactly now")
}

func TestComputeOverlay_NilWhenDone(t *testing.T) {
	w := weekWindow()
	item := overdueItem(day(1))
	item.Status = domain.StatusDone
	pos := MapPosition(item, w, 96)

	assert.Nil(t, ComputeOverlay(item, pos, w, 96, day(5)))
}

func TestComputeOverlay_NilWithoutDeadline(t *testing.T) {
	w := weekWindow()
	item := makeItem("a", dayPtr(1), nil)
	pos := MapPosition(item, w, 96)

	assert.Nil(t, ComputeOverlay(item, pos, w, 96, day(5)))
}

func TestComputeOverlay_NilForUnlaidItem(t *testing.T) {
	w := weekWindow()
	item := overdueItem(day(1))

	assert.Nil(t, ComputeOverlay(item, nil, w, 96, day(5)))
}

func TestComputeOverlay_CappedAtWindowEnd(t *testing.T) {
	w := weekWindow()
	item := overdueItem(day(5))
	pos := MapPosition(item, w, 96)
	now := day(20) // far past the window

	ov := ComputeOverlay(item, pos, w, 96, now)
	require.NotNil(t, ov)
	assert.InDelta(t, 6*96.0, ov.Left, 1e-9)
	assert.InDelta(t, 96.0, ov.Width, 1e-9, "segment must stop at the window edge")
	assert.Equal(t, 15, ov.Amount(), "elapsed amount reflects real overdue time, not the clipped drawing")
}

func TestComputeOverlay_DeadlineBeforeWindowClipsToLeftEdge(t *testing.T) {
	// Degenerate item whose due date precedes its start: the span collapses
	// to the start day and stays laid out, while the overdue segment would
	// begin before the window and is clipped to the window's left edge.
	w := weekWindow()
	item := domain.WorkItem{ID: "a", Status: domain.StatusInProgress, StartDate: dayPtr(3), DueDate: dayPtr(-2)}
	pos := MapPosition(item, w, 96)
	require.NotNil(t, pos)

	ov := ComputeOverlay(item, pos, w, 96, day(6))
	require.NotNil(t, ov)
	assert.InDelta(t, 0.0, ov.Left, 1e-9)
	assert.Equal(t, 8, ov.Amount())
}
