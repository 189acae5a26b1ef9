// Package layout computes non-overlapping multi-lane timeline geometry for
// time-bounded work items. Every function is pure and deterministic: the
// current instant is always an explicit parameter, never read from a clock,
// so identical inputs produce byte-identical results.
package layout

import (
	"time"

	"github.com/alexanderramin/lanegrid/internal/domain"
)

// ItemLayout is a work item annotated with its computed geometry. Items
// without a resolvable span keep a nil Position, a lane of -1 and no
// overlay; they stay visible to the caller as group members without
// geometry.
type ItemLayout struct {
	Item     domain.WorkItem
	Position *Position
	Lane     int
	Overlay  *Overlay
}

// LaidGroup is a group with geometry attached to each member and the number
// of lanes the group needs.
type LaidGroup struct {
	ID        string
	Label     string
	Items     []ItemLayout
	LaneCount int
}

// Result is one full layout pass over a snapshot of work items.
type Result struct {
	Window   TimeWindow
	DayWidth float64
	Groups   []LaidGroup
}

// Compute runs the whole pipeline: window and day width from the view
// config, items partitioned into groups, each group positioned, lane-packed
// and annotated with overdue overlays against the supplied now.
func Compute(items []domain.WorkItem, cfg domain.ViewConfig, now time.Time, ref ReferenceData) Result {
	window := ComputeWindow(cfg.Anchor, cfg.Kind)
	dayWidth := DayWidth(cfg.ZoomPercent, cfg.Kind)

	groups := GroupItems(items, cfg.GroupBy, ref)
	laid := make([]LaidGroup, 0, len(groups))
	for _, g := range groups {
		laid = append(laid, layoutGroup(g, window, dayWidth, now))
	}

	return Result{Window: window, DayWidth: dayWidth, Groups: laid}
}

func layoutGroup(g Group, w TimeWindow, dayWidth float64, now time.Time) LaidGroup {
	var positioned []PositionedItem
	entries := make([]ItemLayout, 0, len(g.Items))
	for _, it := range g.Items {
		pos := MapPosition(it, w, dayWidth)
		entries = append(entries, ItemLayout{
			Item:     it,
			Position: pos,
			Lane:     -1,
			Overlay:  ComputeOverlay(it, pos, w, dayWidth, now),
		})
		if pos != nil {
			positioned = append(positioned, PositionedItem{Item: it, Position: *pos})
		}
	}

	lanes := PackLanes(positioned)
	for i := range entries {
		if entries[i].Position == nil {
			continue
		}
		entries[i].Lane = lanes.LaneOf[entries[i].Item.ID]
	}

	return LaidGroup{ID: g.ID, Label: g.Label, Items: entries, LaneCount: lanes.LaneCount}
}
