package bitgraph

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func k4() *Graph {
	g := NewGraph(4, false)
	for i := 0; i < 4; i++ {
		for j := i + 1; j < 4; j++ {
			_ = g.AddEdge(i, j)
		}
	}
	return g
}

func TestDispatchPicksSmallestFittingWidth(t *testing.T) {
	cases := []struct {
		n    int
		want int
	}{
		{1, 1}, {64, 1}, {65, 2}, {128, 2}, {129, 4}, {4096, 64},
	}
	for _, c := range cases {
		got := Dispatch(c.n)
		require.False(t, got.TooLarge)
		assert.Equalf(t, c.want, got.W, "n=%d", c.n)
	}
}

func TestDispatchTooLarge(t *testing.T) {
	got := Dispatch(MaxSupportedVertices() + 1)
	assert.True(t, got.TooLarge)
	assert.Equal(t, 0, got.Capacity())
}

func TestFromGraphBuildsSymmetricAdjacency(t *testing.T) {
	bg, d, err := FromGraph(k4())
	require.NoError(t, err)
	require.False(t, d.TooLarge)
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			if i == j {
				continue
			}
			assert.True(t, bg.Adjacent(i, j))
			assert.Equal(t, bg.Adjacent(i, j), bg.Adjacent(j, i))
		}
	}
	for i := 0; i < 4; i++ {
		assert.Equal(t, 3, bg.Degree(i))
	}
}

func TestFromGraphWithOrderPreservesAdjacencyUnderRelabelling(t *testing.T) {
	g := NewGraph(3, false)
	require.NoError(t, g.AddEdge(0, 1))

	// reverse order: new vertex 0 <- old 2, new 1 <- old 1, new 2 <- old 0
	bg, _, err := FromGraphWithOrder(g, []int{2, 1, 0})
	require.NoError(t, err)

	assert.True(t, bg.Adjacent(1, 2)) // old (1,0) under the reversed labelling
	assert.False(t, bg.Adjacent(0, 1))
	assert.False(t, bg.Adjacent(0, 2))
}

func TestIntersectWithRowAndComplementAreExactComplements(t *testing.T) {
	g := NewGraph(5, false)
	for _, e := range [][2]int{{0, 1}, {0, 2}, {1, 3}} {
		require.NoError(t, g.AddEdge(e[0], e[1]))
	}
	bg, _, err := FromGraph(g)
	require.NoError(t, err)

	q1 := bg.FullSet()
	bg.IntersectWithRow(0, q1)

	q2 := bg.FullSet()
	bg.IntersectWithRowComplement(0, q2)

	for i := 0; i < 5; i++ {
		assert.NotEqual(t, q1.Test(i), q2.Test(i), "vertex %d should appear in exactly one of row/complement", i)
	}
}

func TestAddEdgeRejectsLoopsUnlessAllowed(t *testing.T) {
	g := NewGraph(3, false)
	err := g.AddEdge(1, 1)
	assert.ErrorIs(t, err, ErrLoopNotAllowed)

	loopy := NewGraph(3, true)
	require.NoError(t, loopy.AddEdge(1, 1))
	assert.True(t, loopy.HasLoop(1))
}

func TestAddEdgeRejectsOutOfRangeVertices(t *testing.T) {
	g := NewGraph(3, false)
	err := g.AddEdge(0, 5)
	assert.ErrorIs(t, err, ErrInvalidVertex)
}
