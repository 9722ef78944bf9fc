// Package sgi implements subgraph isomorphism via domain propagation:
// each pattern vertex carries a candidate set ("domain") of target
// vertices, pruned by adjacency-consistency forward checking, a cheap
// all-different necessary condition and a full Régin all-different filter,
// with conflict-directed backjumping over the search tree those filters
// build (spec §4.4, §4.5).
package sgi

import "github.com/dendrolab/parasolve/pkg/bitset"

// Domains holds one candidate set per pattern vertex, indexed by pattern
// vertex id; Domains[p] is the set of target vertices p may still map to.
type Domains []bitset.FixedBitSet

// clone returns an independent copy of every domain.
func (d Domains) clone() Domains {
	out := make(Domains, len(d))
	for i := range d {
		out[i] = d[i].Clone()
	}
	return out
}

// Assignment is a single committed pattern-vertex -> target-vertex mapping.
type Assignment struct {
	Pattern int
	Target  int
}

// Mapping is a complete witness: Mapping[p] is the target vertex pattern
// vertex p was assigned to.
type Mapping []int
