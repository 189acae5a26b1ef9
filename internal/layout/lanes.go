package layout

import (
	"container/heap"
	"sort"
)

// LaneAssignment maps each positioned item to a horizontal lane such that
// no two items sharing a lane overlap with positive length. Touching
// endpoints are allowed to share a lane.
type LaneAssignment struct {
	LaneOf    map[string]int
	LaneCount int
}

// PackLanes assigns lanes by first-fit greedy interval coloring.
// Items are processed in ascending order of left edge, ties broken by the
// original input order so that identical inputs always produce identical
// assignments. Each item takes the first existing lane whose most recent
// right edge does not extend past the item's left edge, or opens a new lane.
func PackLanes(items []PositionedItem) LaneAssignment {
	order := make([]int, len(items))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return items[order[a]].Position.Left < items[order[b]].Position.Left
	})

	laneOf := make(map[string]int, len(items))
	var laneEnds []float64
	for _, idx := range order {
		it := items[idx]
		placed := false
		for lane, end := range laneEnds {
			if end <= it.Position.Left {
				laneOf[it.Item.ID] = lane
				laneEnds[lane] = it.Position.Right()
				placed = true
				break
			}
		}
		if !placed {
			laneOf[it.Item.ID] = len(laneEnds)
			laneEnds = append(laneEnds, it.Position.Right())
		}
	}
	return LaneAssignment{LaneOf: laneOf, LaneCount: len(laneEnds)}
}

// laneEnd tracks the right edge of a lane's most recently placed item.
type laneEnd struct {
	lane int
	end  float64
}

// laneEndHeap is a min-heap on right edge, ties broken by lane index so
// reuse order stays deterministic.
type laneEndHeap []laneEnd

func (h laneEndHeap) Len() int { return len(h) }
func (h laneEndHeap) Less(i, j int) bool {
	if h[i].end != h[j].end {
		return h[i].end < h[j].end
	}
	return h[i].lane < h[j].lane
}
func (h laneEndHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *laneEndHeap) Push(x interface{}) { *h = append(*h, x.(laneEnd)) }
func (h *laneEndHeap) Pop() interface{} {
	old := *h
	n := len(old)
	v := old[n-1]
	*h = old[:n-1]
	return v
}

// PackLanesHeap is the O(n log n) variant of PackLanes for large groups.
// Instead of scanning lanes first-fit it reuses the lane that frees up
// earliest. The resulting lane count is identical to PackLanes (both equal
// the maximum number of concurrently overlapping items); individual lane
// indices may differ.
func PackLanesHeap(items []PositionedItem) LaneAssignment {
	order := make([]int, len(items))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return items[order[a]].Position.Left < items[order[b]].Position.Left
	})

	laneOf := make(map[string]int, len(items))
	h := &laneEndHeap{}
	laneCount := 0
	for _, idx := range order {
		it := items[idx]
		if h.Len() > 0 && (*h)[0].end <= it.Position.Left {
			le := heap.Pop(h).(laneEnd)
			laneOf[it.Item.ID] = le.lane
			heap.Push(h, laneEnd{lane: le.lane, end: it.Position.Right()})
			continue
		}
		laneOf[it.Item.ID] = laneCount
		heap.Push(h, laneEnd{lane: laneCount, end: it.Position.Right()})
		laneCount++
	}
	return LaneAssignment{LaneOf: laneOf, LaneCount: laneCount}
}
