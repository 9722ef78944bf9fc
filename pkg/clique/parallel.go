package clique

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/sirupsen/logrus"

	"github.com/dendrolab/parasolve/internal/parallel"
	"github.com/dendrolab/parasolve/pkg/bitgraph"
	"github.com/dendrolab/parasolve/pkg/bitset"
	"github.com/dendrolab/parasolve/pkg/cco"
	"github.com/dendrolab/parasolve/pkg/search"
)

// SolveParallel runs the same colour-bounded branch-and-bound search as
// Solve, but fans the top-level candidate set out across params.NThreads
// worker goroutines that share one incumbent and one node counter (spec
// §5: "multi-threaded variants launch several of these sharing only Abort
// and an Incumbent"). params.NThreads <= 1 falls back to Solve directly,
// single-threaded and allocation-for-allocation identical to it.
//
// Grounded on internal/parallel.WorkerPool for the goroutine lifecycle:
// one task per surviving top-level candidate, bounded by a fixed pool
// rather than one goroutine per branch, with the pool's buffered task
// channel giving the same backpressure internal/parallel.go's doc comment
// describes.
func SolveParallel(g *bitgraph.BitGraph, params Params) Result {
	if params.NThreads <= 1 {
		return Solve(g, params)
	}

	params.Common.LogSolveStart("max_clique_parallel", g.N())

	incumbent := search.NewIncumbent(params.InitialBound, params.IncumbentSink, params.PrintIncumbents, params.StartTime)
	s := &parallelSolver{
		g:             g,
		params:        params,
		incumbent:     incumbent,
		stopRequested: params.StopAfterFinding > 0,
	}

	top := g.FullSet()
	if top.Popcount() > 0 {
		order, bounds, err := cco.Order(g, top, params.CCO)
		if err == nil {
			s.dispatchTop(order, bounds, top)
		}
	}

	elapsed := params.Common.Elapsed()
	size, members := incumbent.Snapshot()

	status := search.StatusSatisfiable
	provenOptimal := true
	if s.aborted.Load() {
		status = search.StatusAborted
		provenOptimal = false
	} else if s.stopped.Load() {
		provenOptimal = false
	}

	nodes := s.nodes.Load()
	params.Common.RecordSolveDuration(elapsed, status)
	params.Common.LogSolveEnd("max_clique_parallel", status, nodes, elapsed)

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

// parallelSolver holds the state a pool of worker goroutines share across
// one SolveParallel call: the graph and params are read-only, nodes is an
// atomic counter, and incumbent is its own mutex-guarded type. No other
// state crosses a goroutine boundary.
type parallelSolver struct {
	g             *bitgraph.BitGraph
	params        Params
	incumbent     *search.Incumbent
	stopRequested bool
	nodes         atomic.Int64
	aborted       atomic.Bool
	stopped       atomic.Bool
}

// dispatchTop submits one task per surviving top-level candidate to a
// bounded worker pool, in the same reverse high-bound-first order the
// single-threaded Solve walks, and waits for all of them to finish.
func (s *parallelSolver) dispatchTop(order []int, bounds []int, top bitset.FixedBitSet) {
	pool := parallel.NewWorkerPool(s.params.NThreads)
	defer pool.Shutdown()

	ctx := context.Background()
	var wg sync.WaitGroup
	submitted := 0

	for i := len(order) - 1; i >= 0; i-- {
		if s.aborted.Load() || s.stopped.Load() {
			break
		}
		if bounds[i] <= s.incumbent.Size() {
			break
		}
		v := order[i]

		branchP := top.Clone()
		s.g.IntersectWithRow(v, branchP)

		wg.Add(1)
		if err := pool.Submit(ctx, s.branchTask(v, branchP, &wg)); err != nil {
			wg.Done()
			break
		}
		submitted++
	}

	wg.Wait()

	if logger := s.params.Common.Logger; logger != nil {
		logger.WithFields(logrus.Fields{
			"submitted": submitted,
			"completed": pool.Completed(),
		}).Debug("parasolve: top-level fan-out drained")
	}
}

// branchTask builds the closure one worker goroutine runs for the branch
// rooted at v: offer {v} as a candidate witness, then recurse exactly the
// way Solve's own expand does.
func (s *parallelSolver) branchTask(v int, branchP bitset.FixedBitSet, wg *sync.WaitGroup) func() {
	return func() {
		defer wg.Done()

		r := []int{v}
		if s.incumbent.Offer(r) {
			s.params.Common.RecordIncumbentSize(len(r))
		}
		if s.stopRequested && s.incumbent.Size() >= s.params.StopAfterFinding {
			s.stopped.Store(true)
			return
		}
		if !branchP.Empty() {
			s.expand(r, branchP)
		}
	}
}

// expand is SolveParallel's branch-and-bound recursion: identical in
// structure to Solve's, but reading/writing aborted, stopped and nodes
// atomically since several of these run concurrently below disjoint
// top-level branches.
func (s *parallelSolver) expand(r []int, p bitset.FixedBitSet) {
	s.nodes.Add(1)
	s.params.Common.RecordNode()
	if s.params.Common.ShouldAbort() {
		s.aborted.Store(true)
		return
	}
	if s.stopRequested && s.incumbent.Size() >= s.params.StopAfterFinding {
		s.stopped.Store(true)
		return
	}

	order, bounds, err := cco.Order(s.g, p, s.params.CCO)
	if err != nil {
		return
	}

	for i := len(order) - 1; i >= 0; i-- {
		if s.aborted.Load() || s.stopped.Load() {
			return
		}
		if len(r)+bounds[i] <= s.incumbent.Size() {
			return
		}
		v := order[i]

		newR := make([]int, len(r)+1)
		copy(newR, r)
		newR[len(r)] = v
		if s.incumbent.Offer(newR) {
			s.params.Common.RecordIncumbentSize(len(newR))
		}

		if s.stopRequested && s.incumbent.Size() >= s.params.StopAfterFinding {
			s.stopped.Store(true)
			p.Unset(v)
			return
		}

		newP := p.Clone()
		s.g.IntersectWithRow(v, newP)
		if !newP.Empty() {
			s.expand(newR, newP)
		}
		p.Unset(v)
	}
}
