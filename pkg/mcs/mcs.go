// Package mcs reduces maximum common subgraph to maximum clique over a
// caller-supplied product graph (spec §4.6). Building that product graph
// is treated as an external collaborator rather than core functionality
// (spec §1, §9 design notes); external/productgraph ships one, but this
// package only ever consumes the result.
package mcs

import (
	"github.com/dendrolab/parasolve/pkg/bitgraph"
	"github.com/dendrolab/parasolve/pkg/clique"
	"github.com/dendrolab/parasolve/pkg/search"
)

// UnproductFunc maps a product-graph vertex id back to the
// (patternVertex, targetVertex) pair it represents.
type UnproductFunc func(productVertex int) (patternVertex, targetVertex int)

// Result is the outcome of a max-common-subgraph solve (spec §6).
type Result struct {
	search.CommonResult
	// Size is the number of (pattern,target) vertex pairs in the common
	// subgraph found.
	Size int
	// PatternVertices and TargetVertices are parallel slices: index i of
	// each names one half of the i'th matched pair.
	PatternVertices []int
	TargetVertices  []int
	// ProvenOptimal mirrors clique.Result.ProvenOptimal: false when the
	// underlying clique search was cut short by StopAfterFinding or abort.
	ProvenOptimal bool
}

// Solve runs the maximum-clique branch-and-bound over product and decodes
// the winning clique back into pattern/target vertex pairs via unproduct.
// opts configure the underlying clique search exactly as clique.Solve's
// own Params would (CCO variant, abort flag, and so on); product is
// searched in its own vertex numbering, with no vertex reordering.
func Solve(product *bitgraph.BitGraph, unproduct UnproductFunc, opts ...clique.Option) Result {
	cliqueResult := clique.Solve(product, clique.NewParams(opts...))

	patternVertices := make([]int, len(cliqueResult.Members))
	targetVertices := make([]int, len(cliqueResult.Members))
	for i, v := range cliqueResult.Members {
		p, t := unproduct(v)
		patternVertices[i] = p
		targetVertices[i] = t
	}

	return Result{
		CommonResult:    cliqueResult.CommonResult,
		Size:            cliqueResult.Size,
		PatternVertices: patternVertices,
		TargetVertices:  targetVertices,
		ProvenOptimal:   cliqueResult.ProvenOptimal,
	}
}
