package service

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/lanegrid/internal/domain"
	"github.com/alexanderramin/lanegrid/internal/repository"
	"github.com/google/uuid"
)

type workItemServiceImpl struct {
	items     repository.WorkItemRepo
	assignees repository.AssigneeRepo
	projects  repository.ProjectRepo
}

// NewWorkItemService creates a WorkItemService. Assignee and project repos
// are used to verify references before writes.
func NewWorkItemService(items repository.WorkItemRepo, assignees repository.AssigneeRepo, projects repository.ProjectRepo) WorkItemService {
	return &workItemServiceImpl{items: items, assignees: assignees, projects: projects}
}

func (s *workItemServiceImpl) Create(ctx context.Context, w *domain.WorkItem) error {
	if w.Title == "" {
		return fmt.Errorf("work item title is required")
	}
	if w.ID == "" {
		w.ID = uuid.New().String()
	}
	if w.Status == "" {
		w.Status = domain.StatusTodo
	}
	if w.Priority == "" {
		w.Priority = domain.PriorityNormal
	}
	if !domain.ValidWorkItemStatuses[string(w.Status)] {
		return fmt.Errorf("unknown status %q", w.Status)
	}
	if !domain.ValidPriorities[string(w.Priority)] {
		return fmt.Errorf("unknown priority %q", w.Priority)
	}
	if err := s.checkRefs(ctx, w); err != nil {
		return err
	}

	now := time.Now().UTC()
	w.CreatedAt = now
	w.UpdatedAt = now
	return s.items.Create(ctx, w)
}

func (s *workItemServiceImpl) checkRefs(ctx context.Context, w *domain.WorkItem) error {
	if w.AssigneeID != "" {
		if _, err := s.assignees.GetByID(ctx, w.AssigneeID); err != nil {
			return fmt.Errorf("resolving assignee %s: %w", w.AssigneeID, err)
		}
	}
	if w.ProjectID != "" {
		if _, err := s.projects.GetByID(ctx, w.ProjectID); err != nil {
			return fmt.Errorf("resolving project %s: %w", w.ProjectID, err)
		}
	}
	return nil
}

func (s *workItemServiceImpl) GetByID(ctx context.Context, id string) (*domain.WorkItem, error) {
	return s.items.GetByID(ctx, id)
}

func (s *workItemServiceImpl) List(ctx context.Context) ([]domain.WorkItem, error) {
	return s.items.List(ctx)
}

func (s *workItemServiceImpl) ListByProject(ctx context.Context, projectID string) ([]domain.WorkItem, error) {
	return s.items.ListByProject(ctx, projectID)
}

func (s *workItemServiceImpl) ListByAssignee(ctx context.Context, assigneeID string) ([]domain.WorkItem, error) {
	return s.items.ListByAssignee(ctx, assigneeID)
}

func (s *workItemServiceImpl) Update(ctx context.Context, w *domain.WorkItem) error {
	if w.Title == "" {
		return fmt.Errorf("work item title is required")
	}
	if err := s.checkRefs(ctx, w); err != nil {
		return err
	}
	return s.items.Update(ctx, w)
}

func (s *workItemServiceImpl) MarkDone(ctx context.Context, id string) error {
	w, err := s.items.GetByID(ctx, id)
	if err != nil {
		return err
	}
	w.Status = domain.StatusDone
	return s.items.Update(ctx, w)
}

func (s *workItemServiceImpl) Delete(ctx context.Context, id string) error {
	return s.items.Delete(ctx, id)
}
