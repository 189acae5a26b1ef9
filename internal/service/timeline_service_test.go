package service

import (
	"context"
	"testing"
	"time"

	"github.com/alexanderramin/lanegrid/internal/domain"
	"github.com/alexanderramin/lanegrid/internal/repository"
	"github.com/alexanderramin/lanegrid/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fixedNow is a Wednesday; its week starts Monday 2026-03-02.
var fixedNow = time.Date(2026, 3, 4, 10, 0, 0, 0, time.UTC)

func newTimelineFixture(t *testing.T) (*timelineServiceImpl, *repository.SQLiteWorkItemRepo, *repository.SQLiteAssigneeRepo) {
	t.Helper()
	db := testutil.NewTestDB(t)
	items := repository.NewSQLiteWorkItemRepo(db)
	assignees := repository.NewSQLiteAssigneeRepo(db)

	svc := NewTimelineService(items)
	svc.Now = func() time.Time { return fixedNow }
	return svc, items, assignees
}

func TestTimelineService_RenderEmpty(t *testing.T) {
	svc, _, _ := newTimelineFixture(t)

	resp, err := svc.Render(context.Background(), TimelineRequest{View: "week", Zoom: 100})
	require.NoError(t, err)
	assert.Len(t, resp.Result.Window.Days, 7)
	assert.Empty(t, resp.Result.Groups)
	assert.Equal(t, time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC), resp.Result.Window.Start(),
		"zero anchor defaults to the injected now")
}

func TestTimelineService_RenderGroupsAndOverlays(t *testing.T) {
	svc, items, assignees := newTimelineFixture(t)
	ctx := context.Background()

	anna := testutil.NewTestAssignee("Anna", 1)
	require.NoError(t, assignees.Create(ctx, anna))

	start := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	due := time.Date(2026, 3, 3, 0, 0, 0, 0, time.UTC) // one day before fixedNow
	overdue := testutil.NewTestItem("Overdue",
		testutil.WithAssignee(anna.ID),
		testutil.WithStart(start),
		testutil.WithDue(due),
		testutil.WithStatus(domain.StatusInProgress),
	)
	require.NoError(t, items.Create(ctx, overdue))

	resp, err := svc.Render(ctx, TimelineRequest{View: "week", Anchor: fixedNow, Zoom: 100, GroupBy: "assignee"})
	require.NoError(t, err)

	require.Len(t, resp.Result.Groups, 1)
	g := resp.Result.Groups[0]
	assert.Equal(t, "Anna", g.Label)
	require.Len(t, g.Items, 1)
	require.NotNil(t, g.Items[0].Position)
	require.NotNil(t, g.Items[0].Overlay, "in-progress item past its due date carries an overlay")
	assert.Equal(t, 1, g.Items[0].Overlay.Amount())
}

func TestTimelineService_NormalizesSloppyInput(t *testing.T) {
	svc, _, _ := newTimelineFixture(t)

	// Unknown view and group key, out-of-range zoom: everything falls back
	// or clamps, nothing errors.
	resp, err := svc.Render(context.Background(), TimelineRequest{
		View:    "quarter",
		Anchor:  fixedNow,
		Zoom:    999,
		GroupBy: "sprint",
	})
	require.NoError(t, err)
	assert.Equal(t, domain.ViewWeek, resp.Config.Kind)
	assert.Equal(t, 200, resp.Config.ZoomPercent)
	assert.Equal(t, domain.GroupByAssignee, resp.Config.GroupBy)
}

func TestTimelineService_DeterministicAcrossRenders(t *testing.T) {
	svc, items, assignees := newTimelineFixture(t)
	ctx := context.Background()

	anna := testutil.NewTestAssignee("Anna", 1)
	require.NoError(t, assignees.Create(ctx, anna))
	start := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	for _, title := range []string{"A", "B", "C"} {
		it := testutil.NewTestItem(title, testutil.WithAssignee(anna.ID), testutil.WithStart(start))
		require.NoError(t, items.Create(ctx, it))
	}

	req := TimelineRequest{View: "twoweek", Anchor: fixedNow, Zoom: 100, GroupBy: "assignee"}
	first, err := svc.Render(ctx, req)
	require.NoError(t, err)
	second, err := svc.Render(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, first, second, "pinned clock and identical data must render identically")
}
