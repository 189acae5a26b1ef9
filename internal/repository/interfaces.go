package repository

import (
	"context"

	"github.com/alexanderramin/lanegrid/internal/domain"
)

// TimelineSnapshot is the joined read-only view the timeline layout is fed
// from: every schedulable work item plus the reference lists in their
// canonical order.
type TimelineSnapshot struct {
	Items     []domain.WorkItem
	Assignees []domain.Assignee
	Projects  []domain.Project
}

type WorkItemRepo interface {
	Create(ctx context.Context, w *domain.WorkItem) error
	GetByID(ctx context.Context, id string) (*domain.WorkItem, error)
	List(ctx context.Context) ([]domain.WorkItem, error)
	ListByProject(ctx context.Context, projectID string) ([]domain.WorkItem, error)
	ListByAssignee(ctx context.Context, assigneeID string) ([]domain.WorkItem, error)
	ListForTimeline(ctx context.Context) (*TimelineSnapshot, error)
	Update(ctx context.Context, w *domain.WorkItem) error
	Delete(ctx context.Context, id string) error
}

type AssigneeRepo interface {
	Create(ctx context.Context, a *domain.Assignee) error
	GetByID(ctx context.Context, id string) (*domain.Assignee, error)
	List(ctx context.Context) ([]domain.Assignee, error)
	Update(ctx context.Context, a *domain.Assignee) error
	Delete(ctx context.Context, id string) error
}

type ProjectRepo interface {
	Create(ctx context.Context, p *domain.Project) error
	GetByID(ctx context.Context, id string) (*domain.Project, error)
	List(ctx context.Context, includeArchived bool) ([]domain.Project, error)
	Update(ctx context.Context, p *domain.Project) error
	Archive(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
}
