package sgi

import (
	"sort"

	"github.com/dendrolab/parasolve/pkg/bitgraph"
	"github.com/dendrolab/parasolve/pkg/bitset"
)

// initialiseDomains computes domain(p) for every active pattern vertex
// following spec §4.4: self-loop compatibility and elementwise domination
// of descending neighbour-degree-sequence (NDS) multisets across every pair
// of filter graphs, wrapped in an outer fixpoint loop that narrows the
// allowed target set until a round leaves it unchanged.
//
// Grounded directly on initialise_domains in
// gb_subgraph_isomorphism.cc:258-365: each round recomputes every active
// domain against the currently allowed target set, takes the union of the
// new domains, and either stops (the union didn't shrink), fails (the
// union is too small to cover every pattern vertex), or narrows the
// allowed set to that union and goes around again. The loop terminates
// because the allowed set strictly shrinks on every round that doesn't
// stop or fail.
func (s *solver) initialiseDomains() (Domains, bool) {
	n := s.pattern.N()
	m := s.target.N()

	nf := len(s.patternGraphs)
	if len(s.targetGraphs) < nf {
		nf = len(s.targetGraphs)
	}

	allowed := make([]bool, m)
	for t := range allowed {
		allowed[t] = true
	}
	nAllowed := m

	var domains Domains
	for {
		// degree[g][v]; on the target side, restricted to neighbours still
		// inside the currently allowed set, matching the pattern side's
		// implicit restriction to pattern vertices (all of which are
		// always "allowed").
		patternDeg := make([][]int, nf)
		targetDeg := make([][]int, nf)
		for g := 0; g < nf; g++ {
			patternDeg[g] = make([]int, n)
			for _, p := range s.activePattern {
				patternDeg[g][p] = s.patternGraphs[g].Degree(p)
			}
			targetDeg[g] = make([]int, m)
			for t := 0; t < m; t++ {
				count := 0
				s.targetGraphs[g].Row(t).ForEachSetBit(func(w int) {
					if allowed[w] {
						count++
					}
				})
				targetDeg[g][t] = count
			}
		}

		domains = make(Domains, n)
		for _, i := range s.activePattern {
			d := bitset.New(s.target.W())
			for t := 0; t < m; t++ {
				if allowed[t] && dominatedCandidate(s, i, t, nf, patternDeg, targetDeg) {
					d.Set(t)
				}
			}
			if d.Empty() {
				return nil, false
			}
			domains[i] = d
		}
		for _, i := range s.isolated {
			d := bitset.New(s.target.W())
			d.SetUpTo(m)
			domains[i] = d
		}

		union := make([]bool, m)
		unionCount := 0
		for _, p := range s.activePattern {
			domains[p].ForEachSetBit(func(t int) {
				if !union[t] {
					union[t] = true
					unionCount++
				}
			})
		}

		if unionCount < len(s.activePattern) {
			return nil, false
		}
		if unionCount == nAllowed {
			return domains, true
		}
		allowed = union
		nAllowed = unionCount
	}
}

// dominatedCandidate reports whether target vertex t remains a valid
// candidate for pattern vertex i: self-loop compatibility across every
// filter graph, then elementwise domination (t's sequence at least as long,
// each position at least as large) of i's descending neighbour-degree
// sequence by t's, for every pair of filter graphs (g1 supplies the
// neighbourhood, g2 supplies the degree each neighbour is ranked by).
func dominatedCandidate(s *solver, i, t, nf int, patternDeg, targetDeg [][]int) bool {
	for g := 0; g < nf; g++ {
		if s.patternGraphs[g].Adjacent(i, i) && !s.targetGraphs[g].Adjacent(t, t) {
			return false
		}
	}
	for g1 := 0; g1 < nf; g1++ {
		for g2 := 0; g2 < nf; g2++ {
			ps := descendingNeighbourDegrees(s.patternGraphs[g1], i, patternDeg[g2])
			ts := descendingNeighbourDegrees(s.targetGraphs[g1], t, targetDeg[g2])
			if !dominates(ts, ps) {
				return false
			}
		}
	}
	return true
}

// descendingNeighbourDegrees returns, sorted descending, degree[v] for
// every neighbour v of vertex i in adj (self-loop at i excluded).
func descendingNeighbourDegrees(adj *bitgraph.BitGraph, i int, degree []int) []int {
	var seq []int
	adj.Row(i).ForEachSetBit(func(v int) {
		if v != i {
			seq = append(seq, degree[v])
		}
	})
	sort.Sort(sort.Reverse(sort.IntSlice(seq)))
	return seq
}

// dominates reports whether a (t's sequence) dominates b (i's sequence):
// at least as long, and position-for-position (both descending) a's value
// is >= b's.
func dominates(a, b []int) bool {
	if len(a) < len(b) {
		return false
	}
	for i := range b {
		if a[i] < b[i] {
			return false
		}
	}
	return true
}
