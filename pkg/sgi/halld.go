package sgi

// HallConsistent applies the cheap all-different necessary condition: it
// merges domains into unions whenever one domain is a subset of another's
// running union, and fails whenever more domains end up sharing a union
// than that union has members (a Hall violation). It never removes a
// value — only regin.go's full filter does that — and only considers
// domains at or below smallDomainLimit in size, which is what keeps this
// "cheap": a counting pass with no augmenting-path search.
//
// ids must name the pattern vertex each entry of domains corresponds to,
// same length and order. The returned FailedVariables blames every vertex
// this pass inspected up to and including the one that triggered a
// violation (or the vertex whose domain had already emptied), mirroring
// cheap_all_different's failed_variables.add(d.v) on every iteration in
// gb_subgraph_isomorphism.cc.
func HallConsistent(domains Domains, ids []int, smallDomainLimit int) (FailedVariables, bool) {
	n := len(domains)
	blamed := realFailedVariables()
	for i := 0; i < n; i++ {
		blamed.add(ids[i])
		di := domains[i]
		sz := di.Popcount()
		if sz == 0 {
			return blamed, false
		}
		if sz > smallDomainLimit {
			continue
		}
		union := di.Clone()
		count := 1
		for j := 0; j < n; j++ {
			if j == i {
				continue
			}
			blamed.add(ids[j])
			dj := domains[j]
			djsz := dj.Popcount()
			if djsz == 0 || djsz > smallDomainLimit {
				continue
			}
			switch {
			case dj.SubsetOf(union):
				count++
			case union.SubsetOf(dj):
				union = dj.Clone()
				count++
			}
		}
		if count > union.Popcount() {
			return blamed, false
		}
	}
	return blamed, true
}
