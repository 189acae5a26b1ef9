package service

import (
	"context"
	"time"

	"github.com/alexanderramin/lanegrid/internal/domain"
	"github.com/alexanderramin/lanegrid/internal/layout"
)

type WorkItemService interface {
	Create(ctx context.Context, w *domain.WorkItem) error
	GetByID(ctx context.Context, id string) (*domain.WorkItem, error)
	List(ctx context.Context) ([]domain.WorkItem, error)
	ListByProject(ctx context.Context, projectID string) ([]domain.WorkItem, error)
	ListByAssignee(ctx context.Context, assigneeID string) ([]domain.WorkItem, error)
	Update(ctx context.Context, w *domain.WorkItem) error
	MarkDone(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
}

type AssigneeService interface {
	Create(ctx context.Context, a *domain.Assignee) error
	List(ctx context.Context) ([]domain.Assignee, error)
	Delete(ctx context.Context, id string) error
}

type ProjectService interface {
	Create(ctx context.Context, p *domain.Project) error
	GetByID(ctx context.Context, id string) (*domain.Project, error)
	List(ctx context.Context, includeArchived bool) ([]domain.Project, error)
	Archive(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
}

// TimelineRequest describes one timeline render. String fields accept raw
// user input; anything unrecognized falls back to a default instead of
// failing.
type TimelineRequest struct {
	View    string
	Anchor  time.Time
	Zoom    int
	GroupBy string
}

// TimelineResponse bundles the normalized view config with the layout.
type TimelineResponse struct {
	Config domain.ViewConfig
	Result layout.Result
}

type TimelineService interface {
	Render(ctx context.Context, req TimelineRequest) (*TimelineResponse, error)
}
