package clique

import (
	"fmt"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dendrolab/parasolve/pkg/bitgraph"
	"github.com/dendrolab/parasolve/pkg/cco"
)

func buildGraph(n int, edges [][2]int) *bitgraph.Graph {
	g := bitgraph.NewGraph(n, false)
	for _, e := range edges {
		_ = g.AddEdge(e[0], e[1])
	}
	return g
}

func k4Graph() *bitgraph.Graph {
	var edges [][2]int
	for i := 0; i < 4; i++ {
		for j := i + 1; j < 4; j++ {
			edges = append(edges, [2]int{i, j})
		}
	}
	return buildGraph(4, edges)
}

func petersenGraph() *bitgraph.Graph {
	edges := [][2]int{
		{0, 1}, {1, 2}, {2, 3}, {3, 4}, {4, 0},
		{0, 5}, {1, 6}, {2, 7}, {3, 8}, {4, 9},
		{5, 7}, {7, 9}, {9, 6}, {6, 8}, {8, 5},
	}
	return buildGraph(10, edges)
}

func toBitGraph(t *testing.T, g *bitgraph.Graph) *bitgraph.BitGraph {
	t.Helper()
	bg, d, err := bitgraph.FromGraph(g)
	require.NoError(t, err)
	require.False(t, d.TooLarge)
	return bg
}

func allCCOVariants() []cco.Config {
	return []cco.Config{
		{Variant: cco.None},
		{Variant: cco.Defer1},
		{Variant: cco.RepairAll},
		{Variant: cco.RepairAllDefer1},
		{Variant: cco.RepairSelected, Delta: 2},
		{Variant: cco.RepairSelectedDefer1, Delta: 2},
		{Variant: cco.RepairSelectedFast, Delta: 2},
		{Variant: cco.RepairAllFast},
	}
}

func assertIsClique(t *testing.T, g *bitgraph.BitGraph, members []int) {
	t.Helper()
	for i, u := range members {
		for j, v := range members {
			if i == j {
				continue
			}
			assert.Truef(t, g.Adjacent(u, v), "%d and %d in reported clique but not adjacent", u, v)
		}
	}
}

func TestMaxCliqueK4(t *testing.T) {
	bg := toBitGraph(t, k4Graph())
	for _, cfg := range allCCOVariants() {
		t.Run(cfg.Variant.String(), func(t *testing.T) {
			res := Solve(bg, NewParams(WithCCOVariant(cfg.Variant), WithCCODelta(cfg.Delta)))
			require.Equal(t, 4, res.Size)
			require.True(t, res.ProvenOptimal)
			assertIsClique(t, bg, res.Members)
		})
	}
}

func TestMaxCliquePetersen(t *testing.T) {
	// The Petersen graph's clique number is 2 (it is triangle-free).
	bg := toBitGraph(t, petersenGraph())
	for _, cfg := range allCCOVariants() {
		t.Run(cfg.Variant.String(), func(t *testing.T) {
			res := Solve(bg, NewParams(WithCCOVariant(cfg.Variant), WithCCODelta(cfg.Delta)))
			require.Equal(t, 2, res.Size)
			assertIsClique(t, bg, res.Members)
		})
	}
}

func TestMaxCliqueDeterministic(t *testing.T) {
	bg := toBitGraph(t, petersenGraph())
	first := Solve(bg, NewParams())
	for i := 0; i < 5; i++ {
		res := Solve(bg, NewParams())
		assert.Equal(t, first.Size, res.Size)
		assert.Equal(t, first.Nodes, res.Nodes)
		sort.Ints(first.Members)
		sort.Ints(res.Members)
		assert.Equal(t, first.Members, res.Members)
	}
}

func TestMaxCliqueStopAfterFinding(t *testing.T) {
	bg := toBitGraph(t, k4Graph())
	res := Solve(bg, NewParams(WithStopAfterFinding(2)))
	assert.GreaterOrEqual(t, res.Size, 2)
	assert.False(t, res.ProvenOptimal)
	assertIsClique(t, bg, res.Members)
}

func TestMaxCliqueInitialBoundSeedsIncumbent(t *testing.T) {
	bg := toBitGraph(t, k4Graph())
	// Seeding the incumbent at the true optimum (4) means every clique the
	// search finds ties rather than strictly improves it, so Size still
	// reports 4 even though Members is never replaced away from empty.
	res := Solve(bg, NewParams(WithInitialBound(4)))
	assert.Equal(t, 4, res.Size)
}

func TestMaxCliqueParallelAgreesWithSerial(t *testing.T) {
	bg := toBitGraph(t, petersenGraph())
	serial := Solve(bg, NewParams())
	for _, n := range []int{2, 4, 8} {
		t.Run(fmt.Sprintf("nthreads=%d", n), func(t *testing.T) {
			res := SolveParallel(bg, NewParams(WithNThreads(n)))
			assert.Equal(t, serial.Size, res.Size)
			assert.True(t, res.ProvenOptimal)
			assertIsClique(t, bg, res.Members)
		})
	}
}

func TestMaxCliqueParallelFallsBackToSerialBelowTwoThreads(t *testing.T) {
	bg := toBitGraph(t, k4Graph())
	res := SolveParallel(bg, NewParams(WithNThreads(1)))
	require.Equal(t, 4, res.Size)
	require.True(t, res.ProvenOptimal)
}

func TestMaxCliqueVertexOrderingsAgreeOnOmega(t *testing.T) {
	for _, fn := range []OrderFunction{Degree, MinWidth, ExDegree, DynExDegree} {
		t.Run(fn.String(), func(t *testing.T) {
			order := VertexOrder(petersenGraph(), fn)
			require.Len(t, order, 10)
			seen := make(map[int]bool)
			for _, v := range order {
				assert.False(t, seen[v])
				seen[v] = true
			}
			reordered, d, err := bitgraph.FromGraphWithOrder(petersenGraph(), order)
			require.NoError(t, err)
			require.False(t, d.TooLarge)
			res := Solve(reordered, NewParams())
			assert.Equal(t, 2, res.Size)
		})
	}
}
