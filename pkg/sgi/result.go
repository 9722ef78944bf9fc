package sgi

import "github.com/dendrolab/parasolve/pkg/search"

// Result is the outcome of a subgraph isomorphism solve (spec §6).
type Result struct {
	search.CommonResult
	// Mapping holds the first witness found, or nil if none exists.
	// Mapping[p] is the target vertex pattern vertex p was assigned to.
	Mapping Mapping
	// AllMappings holds every witness found, only populated when Params
	// .FindAll was set.
	AllMappings []Mapping
}
