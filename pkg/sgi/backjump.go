package sgi

// FailedVariables names which pattern vertices are responsible for the most
// recent domain wipeout (spec §4.5's conflict-directed backjumping). It is
// keyed by pattern-vertex id, not search-tree depth: selectBranchVariable
// swaps the chosen variable into order[depth] in place, so the pattern
// vertex occupying a given depth is not stable across sibling branches and
// can't safely stand in for "which variable". A dummy value (Real == false)
// blames every open choice point above the failure — the safe
// chronological-backtrack fallback used whenever a filter cannot pinpoint
// the exact variables it conflicted with.
type FailedVariables struct {
	Real bool
	Vars map[int]bool
}

// dummyFailedVariables blames everything above the current frame.
func dummyFailedVariables() FailedVariables {
	return FailedVariables{}
}

// realFailedVariables blames exactly the named pattern vertices.
func realFailedVariables(vars ...int) FailedVariables {
	m := make(map[int]bool, len(vars))
	for _, v := range vars {
		m[v] = true
	}
	return FailedVariables{Real: true, Vars: m}
}

// add records an additional pattern vertex as a cause of the wipeout.
func (f *FailedVariables) add(v int) {
	if !f.Real {
		return
	}
	if f.Vars == nil {
		f.Vars = make(map[int]bool)
	}
	f.Vars[v] = true
}

// merge combines two failure causes the way propagation must when more
// than one filter, or more than one candidate value, independently
// contributes to a wipeout: dummy absorbs everything, real+real unions the
// blamed vertices.
func (f FailedVariables) merge(g FailedVariables) FailedVariables {
	if !f.Real || !g.Real {
		return dummyFailedVariables()
	}
	out := realFailedVariables()
	for v := range f.Vars {
		out.Vars[v] = true
	}
	for v := range g.Vars {
		out.Vars[v] = true
	}
	return out
}

// independentOf reports whether the choice point that produced before/after
// could not have caused this failure: every blamed pattern vertex's domain
// must have exactly the same size in after (the domains committed to by the
// value just tried) as it had in before (the domains in force when that
// value was chosen). Popcount, not bit-for-bit equality, mirrors
// RealFailedVariables::independent_of in gb_subgraph_isomorphism.cc, which
// compares cached domain sizes rather than the domains themselves.
//
// before and after must be indexed by the same pattern-vertex ids (they are
// always the Domains a single backtrack frame branched from and propagated
// to, never domains from two different frames), so a blamed vertex always
// has an entry in both — unlike the original's Domains, which drops an
// assigned variable's entry entirely and falls back to an implicit
// popcount of 1 for it; here the assigned variable's domain is a singleton
// in place, which already carries popcount 1, so no such fallback is
// needed.
func (f FailedVariables) independentOf(before, after Domains) bool {
	if !f.Real {
		return false
	}
	for v := range f.Vars {
		if before[v].Popcount() != after[v].Popcount() {
			return false
		}
	}
	return true
}
