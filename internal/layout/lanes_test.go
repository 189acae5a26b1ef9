package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPackLanes_Empty(t *testing.T) {
	res := PackLanes(nil)
	assert.Equal(t, 0, res.LaneCount)
	assert.Empty(t, res.LaneOf)
}

func TestPackLanes_OverlappingItemsGetSeparateLanes(t *testing.T) {
	// A spans days 1-3, B spans days 2-4: they overlap on days 2-3.
	items := []PositionedItem{
		positioned("a", 96, 2*96),
		positioned("b", 2*96, 2*96),
	}
	res := PackLanes(items)
	assert.Equal(t, 2, res.LaneCount)
	assert.NotEqual(t, res.LaneOf["a"], res.LaneOf["b"])
}

func TestPackLanes_TouchingItemsShareALane(t *testing.T) {
	// A ends exactly where B begins: touching endpoints are not overlap.
	items := []PositionedItem{
		positioned("a", 96, 96),
		positioned("b", 2*96, 96),
	}
	res := PackLanes(items)
	assert.Equal(t, 1, res.LaneCount)
	assert.Equal(t, res.LaneOf["a"], res.LaneOf["b"])
}

func TestPackLanes_FirstFitReusesEarliestLane(t *testing.T) {
	// a and b overlap; c starts after a ends, so first-fit puts c in lane 0.
	items := []PositionedItem{
		positioned("a", 0, 96),
		positioned("b", 48, 96),
		positioned("c", 96, 96),
	}
	res := PackLanes(items)
	assert.Equal(t, 2, res.LaneCount)
	assert.Equal(t, 0, res.LaneOf["a"])
	assert.Equal(t, 1, res.LaneOf["b"])
	assert.Equal(t, 0, res.LaneOf["c"])
}

func TestPackLanes_TieBrokenByInputOrder(t *testing.T) {
	// Identical left edges: input order decides, so the output is stable
	// across repeated calls with the same slice.
	items := []PositionedItem{
		positioned("first", 0, 96),
		positioned("second", 0, 96),
		positioned("third", 0, 96),
	}
	res := PackLanes(items)
	require.Equal(t, 3, res.LaneCount)
	assert.Equal(t, 0, res.LaneOf["first"])
	assert.Equal(t, 1, res.LaneOf["second"])
	assert.Equal(t, 2, res.LaneOf["third"])
}

func TestPackLanes_Deterministic(t *testing.T) {
	items := []PositionedItem{
		positioned("a", 10, 50),
		positioned("b", 20, 40),
		positioned("c", 10, 30),
		positioned("d", 70, 20),
	}
	first := PackLanes(items)
	second := PackLanes(items)
	assert.Equal(t, first, second)
}

func TestPackLanesHeap_MatchesGreedyLaneCount(t *testing.T) {
	items := []PositionedItem{
		positioned("a", 0, 200),
		positioned("b", 50, 100),
		positioned("c", 60, 30),
		positioned("d", 200, 50),
		positioned("e", 210, 10),
	}
	greedy := PackLanes(items)
	heap := PackLanesHeap(items)
	assert.Equal(t, greedy.LaneCount, heap.LaneCount)
	assertNoLaneOverlap(t, items, heap)
}

// assertNoLaneOverlap fails if two items sharing a lane overlap with
// positive length.
func assertNoLaneOverlap(t *testing.T, items []PositionedItem, res LaneAssignment) {
	t.Helper()
	for i := 0; i < len(items); i++ {
		for j := i + 1; j < len(items); j++ {
			a, b := items[i], items[j]
			if res.LaneOf[a.Item.ID] != res.LaneOf[b.Item.ID] {
				continue
			}
			overlap := a.Position.Left < b.Position.Right() && b.Position.Left < a.Position.Right()
			assert.False(t, overlap,
				"items %s and %s share lane %d but overlap", a.Item.ID, b.Item.ID, res.LaneOf[a.Item.ID])
		}
	}
}
