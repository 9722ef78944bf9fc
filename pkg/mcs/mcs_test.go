package mcs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dendrolab/parasolve/pkg/bitgraph"
)

func TestSolveReducesToClique(t *testing.T) {
	// A 4-vertex product graph: {0,1,2} form a triangle, 3 is isolated.
	g := bitgraph.NewGraph(4, false)
	for _, e := range [][2]int{{0, 1}, {1, 2}, {0, 2}} {
		require.NoError(t, g.AddEdge(e[0], e[1]))
	}
	product, d, err := bitgraph.FromGraph(g)
	require.NoError(t, err)
	require.False(t, d.TooLarge)

	pairs := map[int][2]int{0: {10, 20}, 1: {11, 21}, 2: {12, 22}, 3: {13, 23}}
	unproduct := func(v int) (int, int) {
		pr := pairs[v]
		return pr[0], pr[1]
	}

	res := Solve(product, unproduct)
	require.Equal(t, 3, res.Size)
	require.True(t, res.ProvenOptimal)
	assert.ElementsMatch(t, []int{10, 11, 12}, res.PatternVertices)
	assert.ElementsMatch(t, []int{20, 21, 22}, res.TargetVertices)
}

func TestSolveEmptyProductIsZero(t *testing.T) {
	g := bitgraph.NewGraph(0, false)
	product, d, err := bitgraph.FromGraph(g)
	require.NoError(t, err)
	require.False(t, d.TooLarge)

	res := Solve(product, func(int) (int, int) { return -1, -1 })
	assert.Equal(t, 0, res.Size)
	assert.Empty(t, res.PatternVertices)
	assert.Empty(t, res.TargetVertices)
}
