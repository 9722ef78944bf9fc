package sgi

import "github.com/dendrolab/parasolve/pkg/bitgraph"

// SupplementalConfig sizes the family of extra filter graphs domain
// initialisation checks alongside plain adjacency (spec §3, §4.4): up to K
// "power" graphs joining vertices reachable by a path of length 2..L, and,
// in induced mode, the complement-adjacency graph plus its own power-graph
// family. Grounded on SGI's k_/l_/induced_/compose_induced_ template
// parameters in gb_subgraph_isomorphism.cc; the supplemental_graphs.hh
// header that builds them was not part of the retrieved source, so the
// construction below is derived from spec.md's "paths of length 2..L"
// prose rather than transcribed.
type SupplementalConfig struct {
	K int
	L int
}

// DefaultSupplementalConfig matches the defaults the original solver's
// benchmark harness ran with.
func DefaultSupplementalConfig() SupplementalConfig {
	return SupplementalConfig{K: 3, L: 3}
}

// filterGraphs builds the ordered family of filter graphs domain
// initialisation and propagation check g against: index 0 is g itself,
// followed by up to cfg.K power graphs for path lengths 2..cfg.L, and, when
// induced is set, the complement-adjacency graph followed by its own power
// graphs. Pattern and target must be called with the same cfg and induced
// so the two families line up index-for-index.
func filterGraphs(g *bitgraph.BitGraph, cfg SupplementalConfig, induced bool) []*bitgraph.BitGraph {
	graphs := []*bitgraph.BitGraph{g}
	graphs = append(graphs, powerGraphs(g, cfg)...)

	if induced {
		complement := complementGraph(g)
		graphs = append(graphs, complement)
		graphs = append(graphs, powerGraphs(complement, cfg)...)
	}
	return graphs
}

// powerGraphs derives, for path lengths d = 2..cfg.L (stopping once cfg.K
// graphs have been produced), the graph joining i and j whenever some
// length-d walk over base connects them. Each is built from the previous
// power graph by unioning in one more hop of base's adjacency rows, so the
// d'th graph costs one row-union pass rather than a fresh matrix power.
func powerGraphs(base *bitgraph.BitGraph, cfg SupplementalConfig) []*bitgraph.BitGraph {
	n := base.N()
	if n == 0 || cfg.L < 2 || cfg.K <= 0 {
		return nil
	}

	var out []*bitgraph.BitGraph
	prev := base
	for d := 2; d <= cfg.L && len(out) < cfg.K; d++ {
		next := bitgraph.NewBitGraph(base.W())
		next.Resize(n)
		for i := 0; i < n; i++ {
			row := next.Row(i)
			prev.Row(i).ForEachSetBit(func(mid int) {
				row.UnionWith(base.Row(mid))
			})
		}
		out = append(out, next)
		prev = next
	}
	return out
}

// complementGraph returns the non-adjacency graph over g's vertices: i and
// j (i != j) are joined iff they are not joined in g. Self-loops carry over
// unchanged, since a loop is a property of one vertex, not a pairwise
// relation, and induced-subgraph isomorphism never asks a vertex to avoid
// mapping onto its own loop status via this graph.
func complementGraph(g *bitgraph.BitGraph) *bitgraph.BitGraph {
	n := g.N()
	out := bitgraph.NewBitGraph(g.W())
	out.Resize(n)
	full := g.FullSet()
	for i := 0; i < n; i++ {
		row := out.Row(i)
		row.CopyFrom(full)
		row.IntersectWithComplement(g.Row(i))
		if g.Adjacent(i, i) {
			row.Set(i)
		} else {
			row.Unset(i)
		}
	}
	return out
}
