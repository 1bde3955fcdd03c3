package graph

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// adjGraph is a Graph backed by a plain adjacency list, for tests.
type adjGraph [][]int

func (g adjGraph) Order() int            { return len(g) }
func (g adjGraph) EdgesFrom(u int) []int { return g[u] }

func TestToposortAcyclic(t *testing.T) {
	// 0 -> 1 -> 2, 0 -> 2
	g := adjGraph{
		0: {1, 2},
		1: {2},
		2: {},
	}

	order, ok := Toposort(g)
	require.True(t, ok)
	pos := make(map[int]int, len(order))
	for i, v := range order {
		pos[v] = i
	}
	assert.Less(t, pos[0], pos[1])
	assert.Less(t, pos[1], pos[2])
}

func TestToposortCycle(t *testing.T) {
	g := adjGraph{
		0: {1},
		1: {0},
	}

	_, ok := Toposort(g)
	assert.False(t, ok)
}

func TestToposortSelfLoop(t *testing.T) {
	g := adjGraph{
		0: {0},
	}

	_, ok := Toposort(g)
	assert.False(t, ok, "a self-loop must always be reported as a cycle")
}

func TestToposortDeterministic(t *testing.T) {
	g := adjGraph{
		0: {1, 2, 3},
		1: {},
		2: {},
		3: {},
	}

	first, _ := Toposort(g)
	for i := 0; i < 10; i++ {
		next, _ := Toposort(g)
		assert.Equal(t, first, next)
	}
}

func TestTarjanSimpleCycle(t *testing.T) {
	// 0 -> 1 -> 0, and an unrelated 2.
	g := adjGraph{
		0: {1},
		1: {0},
		2: {},
	}

	sccs := Tarjan(g)

	var found []int
	for _, scc := range sccs {
		if len(scc) > 1 {
			found = scc
		}
	}
	require.NotNil(t, found)
	assert.ElementsMatch(t, []int{0, 1}, found)
}

func TestTarjanSelfLoopIsOwnComponent(t *testing.T) {
	g := adjGraph{
		0: {0},
	}

	sccs := Tarjan(g)
	require.Len(t, sccs, 1)
	assert.Equal(t, []int{0}, sccs[0])
}

func TestTarjanNoCycle(t *testing.T) {
	g := adjGraph{
		0: {1},
		1: {2},
		2: {},
	}

	sccs := Tarjan(g)
	for _, scc := range sccs {
		assert.Len(t, scc, 1, "an acyclic graph must only have singleton SCCs")
	}
}
