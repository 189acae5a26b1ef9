package testutil

import (
	"time"

	"github.com/alexanderramin/lanegrid/internal/domain"
	"github.com/google/uuid"
)

// WorkItem options
type ItemOption func(*domain.WorkItem)

func WithStart(d time.Time) ItemOption {
	return func(w *domain.WorkItem) {
		w.StartDate = &d
	}
}

func WithDue(d time.Time) ItemOption {
	return func(w *domain.WorkItem) {
		w.DueDate = &d
	}
}

func WithStatus(s domain.WorkItemStatus) ItemOption {
	return func(w *domain.WorkItem) {
		w.Status = s
	}
}

func WithPriority(p domain.Priority) ItemOption {
	return func(w *domain.WorkItem) {
		w.Priority = p
	}
}

func WithAssignee(id string) ItemOption {
	return func(w *domain.WorkItem) {
		w.AssigneeID = id
	}
}

func WithProject(id string) ItemOption {
	return func(w *domain.WorkItem) {
		w.ProjectID = id
	}
}

func WithEstimate(min int) ItemOption {
	return func(w *domain.WorkItem) {
		w.EstimateMin = min
	}
}

func NewTestItem(title string, opts ...ItemOption) *domain.WorkItem {
	now := time.Now().UTC()
	w := &domain.WorkItem{
		ID:        uuid.New().String(),
		Title:     title,
		Status:    domain.StatusTodo,
		Priority:  domain.PriorityNormal,
		CreatedAt: now,
		UpdatedAt: now,
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

func NewTestAssignee(name string, seq int) *domain.Assignee {
	now := time.Now().UTC()
	return &domain.Assignee{
		ID:        uuid.New().String(),
		Name:      name,
		Seq:       seq,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Project options
type ProjectOption func(*domain.Project)

func WithProjectStatus(s domain.ProjectStatus) ProjectOption {
	return func(p *domain.Project) {
		p.Status = s
	}
}

func WithProjectSeq(seq int) ProjectOption {
	return func(p *domain.Project) {
		p.Seq = seq
	}
}

func NewTestProject(name string, opts ...ProjectOption) *domain.Project {
	now := time.Now().UTC()
	p := &domain.Project{
		ID:        uuid.New().String(),
		Name:      name,
		Status:    domain.ProjectActive,
		CreatedAt: now,
		UpdatedAt: now,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}
