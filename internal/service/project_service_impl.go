package service

import (
	"context"
	"time"

	"github.com/alexanderramin/lanegrid/internal/domain"
	"github.com/alexanderramin/lanegrid/internal/repository"
	"github.com/google/uuid"
)

type projectServiceImpl struct {
	projects repository.ProjectRepo
}

// NewProjectService creates a ProjectService.
func NewProjectService(projects repository.ProjectRepo) ProjectService {
	return &projectServiceImpl{projects: projects}
}

func (s *projectServiceImpl) Create(ctx context.Context, p *domain.Project) error {
	if err := p.Validate(); err != nil {
		return err
	}
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	if p.Status == "" {
		p.Status = domain.ProjectActive
	}
	now := time.Now().UTC()
	p.CreatedAt = now
	p.UpdatedAt = now
	return s.projects.Create(ctx, p)
}

func (s *projectServiceImpl) GetByID(ctx context.Context, id string) (*domain.Project, error) {
	return s.projects.GetByID(ctx, id)
}

func (s *projectServiceImpl) List(ctx context.Context, includeArchived bool) ([]domain.Project, error) {
	return s.projects.List(ctx, includeArchived)
}

func (s *projectServiceImpl) Archive(ctx context.Context, id string) error {
	return s.projects.Archive(ctx, id)
}

func (s *projectServiceImpl) Delete(ctx context.Context, id string) error {
	return s.projects.Delete(ctx, id)
}
