package service

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/lanegrid/internal/domain"
	"github.com/alexanderramin/lanegrid/internal/layout"
	"github.com/alexanderramin/lanegrid/internal/repository"
)

// timelineServiceImpl loads a work item snapshot and runs the layout engine
// over it. The clock is a field so tests pin now and repeated renders with
// identical data are reproducible; it is sampled exactly once per render.
type timelineServiceImpl struct {
	items repository.WorkItemRepo
	Now   func() time.Time
}

// NewTimelineService creates a TimelineService backed by the given repo,
// using the wall clock.
func NewTimelineService(items repository.WorkItemRepo) *timelineServiceImpl {
	return &timelineServiceImpl{items: items, Now: time.Now}
}

func (s *timelineServiceImpl) Render(ctx context.Context, req TimelineRequest) (*TimelineResponse, error) {
	snap, err := s.items.ListForTimeline(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading timeline snapshot: %w", err)
	}

	// One clock sample feeds the whole pass so the anchor default, the
	// overdue overlays and any other time-sensitive output cannot skew
	// against each other.
	now := s.Now()

	anchor := req.Anchor
	if anchor.IsZero() {
		anchor = now
	}
	cfg := domain.ViewConfig{
		Kind:        domain.ParseViewKind(req.View),
		Anchor:      anchor,
		ZoomPercent: layout.ClampZoom(req.Zoom),
		GroupBy:     domain.ParseGroupKey(req.GroupBy),
	}

	ref := layout.ReferenceData{
		Assignees: make([]layout.Identity, 0, len(snap.Assignees)),
		Projects:  make([]layout.Identity, 0, len(snap.Projects)),
	}
	for _, a := range snap.Assignees {
		ref.Assignees = append(ref.Assignees, layout.Identity{ID: a.ID, Name: a.Name})
	}
	for _, p := range snap.Projects {
		ref.Projects = append(ref.Projects, layout.Identity{ID: p.ID, Name: p.Name})
	}

	result := layout.Compute(snap.Items, cfg, now, ref)

	return &TimelineResponse{Config: cfg, Result: result}, nil
}
