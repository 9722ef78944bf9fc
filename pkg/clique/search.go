// Package clique implements the bit-parallel branch-and-bound maximum
// clique search (spec §4.3): colour-class-ordering bound from pkg/cco,
// reverse-order expansion over the candidate set, and incumbent tracking
// via pkg/search.Incumbent.
package clique

import (
	"github.com/dendrolab/parasolve/pkg/bitgraph"
	"github.com/dendrolab/parasolve/pkg/bitset"
	"github.com/dendrolab/parasolve/pkg/cco"
	"github.com/dendrolab/parasolve/pkg/search"
)

// Solve finds a maximum clique in g. Callers that built g from a dynamic
// bitgraph.Graph via a non-identity vertex order (see VertexOrder) must
// translate Result.Members back through that order themselves; Solve only
// ever sees g's own numbering.
func Solve(g *bitgraph.BitGraph, params Params) Result {
	params.Common.LogSolveStart("max_clique", g.N())

	var nodes int64
	stopRequested := params.StopAfterFinding > 0
	incumbent := search.NewIncumbent(params.InitialBound, params.IncumbentSink, params.PrintIncumbents, params.StartTime)

	var aborted, stopped bool

	var expand func(r []int, p bitset.FixedBitSet)
	expand = func(r []int, p bitset.FixedBitSet) {
		nodes++
		params.Common.RecordNode()
		if params.Common.ShouldAbort() {
			aborted = true
			return
		}
		if stopRequested && incumbent.Size() >= params.StopAfterFinding {
			stopped = true
			return
		}

		order, bounds, err := cco.Order(g, p, params.CCO)
		if err != nil {
			return
		}

		for i := len(order) - 1; i >= 0; i-- {
			if aborted || stopped {
				return
			}
			if len(r)+bounds[i] <= incumbent.Size() {
				return
			}
			v := order[i]

			newR := make([]int, len(r)+1)
			copy(newR, r)
			newR[len(r)] = v
			if incumbent.Offer(newR) {
				params.Common.RecordIncumbentSize(len(newR))
			}

			if stopRequested && incumbent.Size() >= params.StopAfterFinding {
				stopped = true
				p.Unset(v)
				return
			}

			newP := p.Clone()
			g.IntersectWithRow(v, newP)
			if !newP.Empty() {
				expand(newR, newP)
			}
			p.Unset(v)
		}
	}

	p := g.FullSet()
	if p.Popcount() > 0 {
		expand(nil, p)
	}

	elapsed := params.Common.Elapsed()
	size, members := incumbent.Snapshot()

	status := search.StatusSatisfiable
	provenOptimal := true
	if aborted {
		status = search.StatusAborted
		provenOptimal = false
	} else if stopped {
		provenOptimal = false
	}

	params.Common.RecordSolveDuration(elapsed, status)
	params.Common.LogSolveEnd("max_clique", status, nodes, elapsed)

	return Result{
		CommonResult: search.CommonResult{
			Status:  status,
			Nodes:   nodes,
			Elapsed: elapsed,
		},
		Size:          size,
		Members:       members,
		ProvenOptimal: provenOptimal,
	}
}
