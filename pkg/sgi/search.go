package sgi

import (
	"github.com/dendrolab/parasolve/pkg/bitgraph"
	"github.com/dendrolab/parasolve/pkg/bitset"
	"github.com/dendrolab/parasolve/pkg/search"
)

// Solve searches for a mapping of pattern's vertices into target's that
// preserves adjacency (and, in induced mode, non-adjacency too). Degree-0
// pattern vertices are stripped out before the main search and assigned
// afterwards to whatever target vertices are left over, since in
// non-induced mode they impose no constraint beyond injectivity; in
// induced mode they stay in the active search instead, since there their
// images must also be non-adjacent to every other mapped target vertex.
func Solve(pattern, target *bitgraph.BitGraph, params Params) Result {
	params.Common.LogSolveStart("subgraph_isomorphism", pattern.N())

	s := &solver{pattern: pattern, target: target, params: params}
	s.run()

	elapsed := params.Common.Elapsed()
	status := search.StatusUnsatisfiable
	switch {
	case s.aborted:
		status = search.StatusAborted
	case s.found != nil:
		status = search.StatusSatisfiable
	}

	params.Common.RecordSolveDuration(elapsed, status)
	params.Common.LogSolveEnd("subgraph_isomorphism", status, s.nodes, elapsed)

	return Result{
		CommonResult: search.CommonResult{Status: status, Nodes: s.nodes, Elapsed: elapsed},
		Mapping:      s.found,
		AllMappings:  s.allFound,
	}
}

type solver struct {
	pattern, target *bitgraph.BitGraph
	params          Params

	// patternGraphs and targetGraphs are the filter-graph families
	// (supplemental.go) both domain initialisation and propagation check
	// candidates against: index 0 is plain adjacency, the rest are the
	// configured power graphs and, in induced mode, the complement graph
	// and its own power graphs.
	patternGraphs, targetGraphs []*bitgraph.BitGraph

	nodes    int64
	aborted  bool
	found    Mapping
	allFound []Mapping

	activePattern []int
	isolated      []int
}

func (s *solver) run() {
	n := s.pattern.N()
	m := s.target.N()
	if n == 0 {
		s.found = Mapping{}
		if s.params.FindAll {
			s.allFound = []Mapping{{}}
		}
		return
	}
	if n > m {
		return
	}

	cfg := s.params.supplementalConfig()
	s.patternGraphs = filterGraphs(s.pattern, cfg, s.params.Induced)
	s.targetGraphs = filterGraphs(s.target, cfg, s.params.Induced)

	for p := 0; p < n; p++ {
		if !s.params.Induced && s.pattern.Degree(p) == 0 {
			s.isolated = append(s.isolated, p)
		} else {
			s.activePattern = append(s.activePattern, p)
		}
	}

	if len(s.activePattern) == 0 {
		// Every pattern vertex is isolated; any injective assignment
		// works, so build one directly without entering backtrack.
		mapping := s.buildMapping(nil, nil)
		s.found = mapping
		if s.params.FindAll {
			s.allFound = []Mapping{mapping}
		}
		return
	}

	domains, ok := s.initialiseDomains()
	if !ok {
		return
	}

	if s.params.CheapAllDifferent {
		if _, ok := HallConsistent(s.activeDomains(domains), s.activePattern, s.hallLimit()); !ok {
			return
		}
	}
	if s.params.UseRegin {
		active := s.activeDomains(domains)
		if !ReginFilter(active, s.target.N()) {
			return
		}
		s.writeBackActive(domains, active)
	}

	order := make([]int, len(s.activePattern))
	copy(order, s.activePattern)

	s.backtrack(domains, order, 0, make(map[int]bool, n))
}

// backtrack explores one search-tree frame: it picks a branch variable,
// tries each of its remaining candidate target vertices in turn, and
// either recurses or (per spec §4.5) backjumps past the rest of this
// frame's candidates when the failure it just saw is provably independent
// of the value it tried.
func (s *solver) backtrack(domains Domains, order []int, depth int, usedTargets map[int]bool) FailedVariables {
	if s.aborted {
		return dummyFailedVariables()
	}
	s.nodes++
	s.params.Common.RecordNode()
	if s.params.Common.ShouldAbort() {
		s.aborted = true
		return dummyFailedVariables()
	}

	if depth == len(order) {
		mapping := s.buildMapping(order, domains)
		if s.found == nil {
			s.found = mapping
		}
		if s.params.FindAll {
			s.allFound = append(s.allFound, mapping)
		}
		return dummyFailedVariables()
	}

	p := s.selectBranchVariable(order, depth, domains)
	values := domains[p].ToSlice()
	combined := realFailedVariables(p)

	for _, t := range values {
		if usedTargets[t] {
			continue
		}

		newDomains := domains.clone()
		singleton := bitset.New(newDomains[p].Words())
		singleton.Set(t)
		newDomains[p] = singleton

		fv, ok := s.propagate(newDomains, p, t)
		if !ok {
			// A direct propagation failure only ever accumulates blame;
			// spec §4.5 backjumps past remaining candidates only on a
			// failure discovered deeper in the recursion (below), matching
			// assign()'s behaviour in gb_subgraph_isomorphism.cc, which
			// never tests independence at this point.
			combined = combined.merge(fv)
			continue
		}

		usedTargets[t] = true
		sub := s.backtrack(newDomains, order, depth+1, usedTargets)
		usedTargets[t] = false

		if s.aborted {
			return dummyFailedVariables()
		}
		if s.found != nil && !s.params.FindAll {
			return dummyFailedVariables()
		}
		if s.canBackjump(sub, domains, newDomains) {
			return sub
		}
		combined = combined.merge(sub)
	}
	return combined
}

// canBackjump reports whether sub's blamed variables all kept the exact
// same domain size between before (the state this frame branched from) and
// after (the state committing this frame's value produced), meaning trying
// a different value at this frame could not have avoided the failure sub
// describes — so it may be propagated upward unchanged instead of trying
// this frame's remaining candidates.
func (s *solver) canBackjump(sub FailedVariables, before, after Domains) bool {
	return s.params.Backjumping && sub.Real && sub.independentOf(before, after)
}

// propagate commits pattern vertex p to target vertex t inside domains
// (domains[p] is already the singleton {t} on entry) and forward-checks
// every other active pattern vertex against every filter graph
// (supplemental.go): for filter graph g, if p and q are adjacent in
// patternGraphs[g], q's domain is intersected with targetGraphs[g]'s row
// for t. In induced mode one of those filter graphs is the complement
// graph, so pattern non-adjacency is enforced by exactly the same loop,
// with no separate case needed. t is also removed from every other active
// domain for injectivity. It then runs the cheap all-different filter and
// the full Régin filter when enabled. Returns ok == false the moment any
// domain wipes out; fv names the pattern vertices blamed for it: the
// vertex whose domain emptied during forward checking, every vertex the
// Hall pass inspected, or every active vertex when the Régin filter fails.
func (s *solver) propagate(domains Domains, p, t int) (FailedVariables, bool) {
	blamed := realFailedVariables()

	for _, q := range s.activePattern {
		if q == p {
			continue
		}
		domains[q].Unset(t)

		for g := range s.patternGraphs {
			if s.patternGraphs[g].Adjacent(p, q) {
				domains[q].IntersectWith(s.targetGraphs[g].Row(t))
			}
		}

		if domains[q].Empty() {
			blamed.add(q)
			return blamed, false
		}
	}

	if s.params.CheapAllDifferent {
		active := s.activeDomains(domains)
		fv, ok := HallConsistent(active, s.activePattern, s.hallLimit())
		if !ok {
			return fv, false
		}
	}

	if s.params.UseRegin {
		active := s.activeDomains(domains)
		filtered := active.clone()
		if !ReginFilter(filtered, s.target.N()) {
			return realFailedVariables(s.activePattern...), false
		}
		s.writeBackActive(domains, filtered)
	}

	return FailedVariables{}, true
}

func (s *solver) activeDomains(domains Domains) Domains {
	out := make(Domains, len(s.activePattern))
	for i, p := range s.activePattern {
		out[i] = domains[p]
	}
	return out
}

func (s *solver) writeBackActive(domains Domains, active Domains) {
	for i, p := range s.activePattern {
		domains[p] = active[i]
	}
}

func (s *solver) hallLimit() int {
	if s.params.HallSmallDomainLimit <= 0 {
		return 4
	}
	return s.params.HallSmallDomainLimit
}

// selectBranchVariable applies the minimum-remaining-values heuristic over
// order[depth:], swapping the winner into order[depth] and returning it.
// Ties are broken by DomPlusDeg's preference (higher pattern-graph degree)
// when enabled, or by smaller pattern-vertex id otherwise — spec §4.4's
// "dom_plus_deg" toggle and its default tie-break.
func (s *solver) selectBranchVariable(order []int, depth int, domains Domains) int {
	best := depth
	bestSize := domains[order[depth]].Popcount()
	bestV := order[depth]
	for i := depth + 1; i < len(order); i++ {
		v := order[i]
		sz := domains[v].Popcount()
		switch {
		case sz < bestSize:
			best, bestSize, bestV = i, sz, v
		case sz == bestSize && s.tieBreakPrefers(v, bestV):
			best, bestSize, bestV = i, sz, v
		}
	}
	order[depth], order[best] = order[best], order[depth]
	return order[depth]
}

// tieBreakPrefers reports whether v should win a minimum-remaining-values
// tie against the current best candidate, over.
func (s *solver) tieBreakPrefers(v, over int) bool {
	if s.params.DomPlusDeg {
		return s.pattern.Degree(v) > s.pattern.Degree(over)
	}
	return v < over
}

// buildMapping reads off the committed singleton domains for the active
// pattern vertices in order, then greedily seats every isolated pattern
// vertex on a target vertex no active vertex has claimed.
func (s *solver) buildMapping(order []int, domains Domains) Mapping {
	n := s.pattern.N()
	m := s.target.N()
	mapping := make(Mapping, n)
	for i := range mapping {
		mapping[i] = -1
	}
	used := make([]bool, m)
	for _, p := range order {
		t := domains[p].FirstSetBit()
		mapping[p] = t
		if t >= 0 {
			used[t] = true
		}
	}
	next := 0
	for _, p := range s.isolated {
		for next < m && used[next] {
			next++
		}
		if next >= m {
			continue
		}
		mapping[p] = next
		used[next] = true
		next++
	}
	return mapping
}
