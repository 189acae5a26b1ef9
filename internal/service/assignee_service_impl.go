package service

import (
	"context"
	"time"

	"github.com/alexanderramin/lanegrid/internal/domain"
	"github.com/alexanderramin/lanegrid/internal/repository"
	"github.com/google/uuid"
)

type assigneeServiceImpl struct {
	assignees repository.AssigneeRepo
}

// NewAssigneeService creates an AssigneeService.
func NewAssigneeService(assignees repository.AssigneeRepo) AssigneeService {
	return &assigneeServiceImpl{assignees: assignees}
}

func (s *assigneeServiceImpl) Create(ctx context.Context, a *domain.Assignee) error {
	if err := a.Validate(); err != nil {
		return err
	}
	if a.ID == "" {
		a.ID = uuid.New().String()
	}
	now := time.Now().UTC()
	a.CreatedAt = now
	a.UpdatedAt = now
	return s.assignees.Create(ctx, a)
}

func (s *assigneeServiceImpl) List(ctx context.Context) ([]domain.Assignee, error) {
	return s.assignees.List(ctx)
}

func (s *assigneeServiceImpl) Delete(ctx context.Context, id string) error {
	return s.assignees.Delete(ctx, id)
}
