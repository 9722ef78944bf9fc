package sgi

import (
	"sort"

	"github.com/dendrolab/parasolve/pkg/bitset"
)

// ReginFilter applies full Régin all-different filtering to domains in
// place, over target values [0, m). A value survives in domains[i] only
// if some maximum bipartite matching between pattern vertices and target
// values still uses it for vertex i. Returns false (leaving domains
// partially filtered) the moment any domain empties or the initial
// matching cannot cover every pattern vertex.
//
// Grounded on fd_regin.go's maxMatching/ReginFilterLocked, adapted from
// FDStore's BitSet domains to sgi's FixedBitSet Domains and generalised to
// test each candidate value by re-running the matching with it forced,
// rather than the SCC-based alternating-cycle shortcut the literature
// describes — the same trade-off the teacher's own filter makes.
func ReginFilter(domains Domains, m int) bool {
	n := len(domains)
	if n == 0 {
		return true
	}
	matchVal, matched := maxBipartiteMatching(domains, m)
	if matched < n {
		return false
	}

	for i := range domains {
		var toRemove []int
		domains[i].ForEachSetBit(func(val int) {
			if matchVal[val] == i {
				return
			}
			saved := domains[i]
			forced := bitset.New(saved.Words())
			forced.Set(val)
			domains[i] = forced
			_, mm := maxBipartiteMatching(domains, m)
			domains[i] = saved
			if mm < n {
				toRemove = append(toRemove, val)
			}
		})
		for _, val := range toRemove {
			domains[i].Unset(val)
		}
		if domains[i].Empty() {
			return false
		}
	}
	return true
}

// maxBipartiteMatching computes a maximum matching between pattern
// vertices (domains) and target values [0,m) via augmenting-path DFS,
// trying smaller domains first so already-forced singletons settle
// deterministically.
func maxBipartiteMatching(domains Domains, m int) (matchVal []int, matched int) {
	n := len(domains)
	matchVal = make([]int, m)
	for i := range matchVal {
		matchVal[i] = -1
	}
	matchVar := make([]int, n)
	for i := range matchVar {
		matchVar[i] = -1
	}

	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	sort.Slice(order, func(a, b int) bool {
		return domains[order[a]].Popcount() < domains[order[b]].Popcount()
	})

	seenToken := make([]int, m)
	token := 0

	var tryAugment func(vi, tok int) bool
	tryAugment = func(vi, tok int) bool {
		found := false
		domains[vi].ForEachSetBit(func(val int) {
			if found || val >= m {
				return
			}
			if seenToken[val] == tok {
				return
			}
			seenToken[val] = tok
			if matchVal[val] == -1 {
				matchVal[val] = vi
				matchVar[vi] = val
				found = true
				return
			}
			if tryAugment(matchVal[val], tok) {
				matchVal[val] = vi
				matchVar[vi] = val
				found = true
			}
		})
		return found
	}

	for _, vi := range order {
		token++
		if tryAugment(vi, token) {
			matched++
		}
	}
	return matchVal, matched
}
