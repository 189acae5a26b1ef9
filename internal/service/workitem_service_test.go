package service

import (
	"context"
	"testing"

	"github.com/alexanderramin/lanegrid/internal/domain"
	"github.com/alexanderramin/lanegrid/internal/repository"
	"github.com/alexanderramin/lanegrid/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newServiceFixture(t *testing.T) (WorkItemService, AssigneeService, ProjectService) {
	t.Helper()
	db := testutil.NewTestDB(t)
	items := repository.NewSQLiteWorkItemRepo(db)
	assignees := repository.NewSQLiteAssigneeRepo(db)
	projects := repository.NewSQLiteProjectRepo(db)
	return NewWorkItemService(items, assignees, projects),
		NewAssigneeService(assignees),
		NewProjectService(projects)
}

func TestWorkItemService_Create_Defaults(t *testing.T) {
	items, _, _ := newServiceFixture(t)
	ctx := context.Background()

	w := &domain.WorkItem{Title: "Write brief"}
	require.NoError(t, items.Create(ctx, w))

	assert.NotEmpty(t, w.ID, "an ID is generated when absent")
	assert.Equal(t, domain.StatusTodo, w.Status)
	assert.Equal(t, domain.PriorityNormal, w.Priority)

	fetched, err := items.GetByID(ctx, w.ID)
	require.NoError(t, err)
	assert.Equal(t, "Write brief", fetched.Title)
}

func TestWorkItemService_Create_RequiresTitle(t *testing.T) {
	items, _, _ := newServiceFixture(t)

	err := items.Create(context.Background(), &domain.WorkItem{})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "title is required")
}

func TestWorkItemService_Create_RejectsUnknownStatus(t *testing.T) {
	items, _, _ := newServiceFixture(t)

	err := items.Create(context.Background(), &domain.WorkItem{Title: "X", Status: "wontfix"})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "unknown status")
}

func TestWorkItemService_Create_RejectsUnknownAssignee(t *testing.T) {
	items, _, _ := newServiceFixture(t)

	err := items.Create(context.Background(), &domain.WorkItem{Title: "X", AssigneeID: "ghost"})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "resolving assignee")
}

func TestWorkItemService_Create_WithValidReferences(t *testing.T) {
	items, assignees, projects := newServiceFixture(t)
	ctx := context.Background()

	a := &domain.Assignee{Name: "Anna"}
	require.NoError(t, assignees.Create(ctx, a))
	p := &domain.Project{Name: "Website"}
	require.NoError(t, projects.Create(ctx, p))

	w := &domain.WorkItem{Title: "Design", AssigneeID: a.ID, ProjectID: p.ID}
	assert.NoError(t, items.Create(ctx, w))
}

func TestWorkItemService_MarkDone(t *testing.T) {
	items, _, _ := newServiceFixture(t)
	ctx := context.Background()

	w := &domain.WorkItem{Title: "Finish me"}
	require.NoError(t, items.Create(ctx, w))
	require.NoError(t, items.MarkDone(ctx, w.ID))

	fetched, err := items.GetByID(ctx, w.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusDone, fetched.Status)
}

func TestProjectService_ArchiveLifecycle(t *testing.T) {
	_, _, projects := newServiceFixture(t)
	ctx := context.Background()

	p := &domain.Project{Name: "Campaign"}
	require.NoError(t, projects.Create(ctx, p))
	require.NoError(t, projects.Archive(ctx, p.ID))

	visible, err := projects.List(ctx, false)
	require.NoError(t, err)
	assert.Empty(t, visible)
}

func TestAssigneeService_RequiresName(t *testing.T) {
	_, assignees, _ := newServiceFixture(t)

	err := assignees.Create(context.Background(), &domain.Assignee{})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "name is required")
}
