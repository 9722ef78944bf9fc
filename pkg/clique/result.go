package clique

import "github.com/dendrolab/parasolve/pkg/search"

// Result is the outcome of a max-clique solve (spec §6).
type Result struct {
	search.CommonResult
	// Size is the number of vertices in Members.
	Size int
	// Members holds the clique's vertex ids (the BitGraph's own numbering
	// unless the caller mapped them back via the order it supplied).
	Members []int
	// ProvenOptimal is false when StopAfterFinding or the abort flag cut
	// the search short before the upper bound met the incumbent; Members
	// is still a sound clique in that case, just not proven maximum.
	ProvenOptimal bool
}
