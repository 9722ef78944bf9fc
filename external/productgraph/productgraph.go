// Package productgraph builds the modular product graph that reduces
// maximum common subgraph to maximum clique. It is deliberately kept
// outside pkg/mcs: the core only ever consumes a pre-built product
// BitGraph plus an unproduct function, never the construction itself
// (spec §1, §9 design notes).
package productgraph

import "github.com/dendrolab/parasolve/pkg/bitgraph"

// Pair identifies the (pattern,target) vertex pair a product-graph vertex
// represents.
type Pair struct {
	Pattern int
	Target  int
}

// Build constructs the modular product graph over every (pattern,target)
// vertex pair: two pairs sharing a pattern or target vertex are never
// adjacent (a common subgraph can't reuse a vertex on either side), and
// otherwise they're adjacent exactly when extending both pairs together
// keeps a valid common subgraph. In induced mode that means pattern
// adjacency and target adjacency must agree exactly (edge paired with
// edge, non-edge paired with non-edge); in non-induced mode a pattern
// non-edge never conflicts with anything, so only "pattern edge without a
// matching target edge" breaks compatibility.
//
// Returns (nil, nil, nil) if the pair count exceeds every width
// bitgraph.Dispatch supports, mirroring spec §4.1's "too large" outcome.
func Build(pattern, target *bitgraph.BitGraph, induced bool) (*bitgraph.BitGraph, []Pair, error) {
	n, m := pattern.N(), target.N()
	pairs := make([]Pair, 0, n*m)
	for p := 0; p < n; p++ {
		for t := 0; t < m; t++ {
			pairs = append(pairs, Pair{Pattern: p, Target: t})
		}
	}

	d := bitgraph.Dispatch(len(pairs))
	if d.TooLarge {
		return nil, nil, nil
	}
	product := bitgraph.NewBitGraph(d.W)
	product.Resize(len(pairs))

	for i, a := range pairs {
		for j := i + 1; j < len(pairs); j++ {
			b := pairs[j]
			if a.Pattern == b.Pattern || a.Target == b.Target {
				continue
			}
			pEdge := pattern.Adjacent(a.Pattern, b.Pattern)
			tEdge := target.Adjacent(a.Target, b.Target)
			compatible := !pEdge || tEdge
			if induced {
				compatible = pEdge == tEdge
			}
			if compatible {
				product.AddEdge(i, j)
			}
		}
	}

	return product, pairs, nil
}

// Unproduct adapts pairs into an mcs.UnproductFunc-shaped closure without
// this package needing to import pkg/mcs.
func Unproduct(pairs []Pair) func(int) (int, int) {
	return func(v int) (int, int) {
		p := pairs[v]
		return p.Pattern, p.Target
	}
}
