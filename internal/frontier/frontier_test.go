package frontier

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/fptlin/history"
	"github.com/katalvlaran/fptlin/internal/event"
)

func TestBuild_SingleOperationReachesFinalLayer(t *testing.T) {
	h := history.History[int64]{
		{ID: 1, Proc: 0, Method: history.PUSH, Value: 1, StartTime: 0, EndTime: 1},
	}
	events := event.Build(h)
	g := Build(events, nil)

	start := Node{Layer: 0, Bits: 0}
	dest := g.FirstSameNode(Node{Layer: len(events), Bits: 0})

	// there must be some path recorded out of the start node's equivalence class.
	edges := g.Next(g.FirstSameNode(start))
	require.NotEmpty(t, edges)
	assert.Equal(t, h[0].ID, edges[0].Op.ID)
	assert.Equal(t, dest, edges[0].To)
}

func TestBuild_Empty(t *testing.T) {
	g := Build[int64](nil, nil)
	assert.Empty(t, g.AdjList())
}

func TestBuild_FilterExcludesOperation(t *testing.T) {
	h := history.History[int64]{
		{ID: 1, Proc: 0, Method: history.PUSH, Value: 1, StartTime: 0, EndTime: 1},
		{ID: 2, Proc: 1, Method: history.PEEK, Value: 2, StartTime: 0, EndTime: 1},
	}
	events := event.Build(h)
	onlyPush := func(m history.Method) bool { return m == history.PUSH }
	g := Build(events, onlyPush)

	start := g.FirstSameNode(Node{Layer: 0, Bits: 0})
	// the PEEK operation contributes no process bit, so only one real edge exists
	// at each layer where it would otherwise have appeared.
	found := false
	for _, e := range g.Next(start) {
		if e.Op.Method == history.PUSH {
			found = true
		}
	}
	assert.True(t, found)
}
