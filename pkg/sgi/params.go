package sgi

import (
	"sync/atomic"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/dendrolab/parasolve/pkg/search"
)

// Params configures a subgraph isomorphism solve (spec §4.4, §6).
type Params struct {
	search.Common
	// Induced requires non-edges in the pattern to map to non-edges in the
	// target as well; false (the default) is plain (non-induced) subgraph
	// isomorphism, where pattern non-edges impose no constraint. Induced
	// mode also keeps degree-0 pattern vertices in the active search
	// instead of stripping them, since in induced mode even an isolated
	// pattern vertex constrains which target vertex it may land on (its
	// image must be non-adjacent to the image of every other pattern vertex).
	Induced bool
	// UseRegin enables the full Régin all-different filter (regin.go) in
	// addition to the cheap Hall-counting filter (halld.go).
	UseRegin bool
	// CheapAllDifferent enables the Hall-counting necessary condition
	// during propagation, both at the initial domain check and inside
	// every branch. Defaults to true; disabling it only removes pruning,
	// it never changes whether a solve finds a mapping.
	CheapAllDifferent bool
	// Backjumping enables spec §4.5 conflict-directed backjumping.
	// Disabling it falls back to plain chronological backtracking: every
	// filter's blame is still computed but never acted on, so a solve
	// explores at least as many nodes and finds the identical answer and
	// witness (spec §8 testable property 7). Defaults to true.
	Backjumping bool
	// DomPlusDeg breaks minimum-remaining-value ties in branch-variable
	// selection by preferring the candidate with the higher pattern-graph
	// degree, instead of the default tie-break (smaller pattern-vertex id).
	DomPlusDeg bool
	// HallSmallDomainLimit bounds which domains the cheap all-different
	// filter considers; 0 selects a default of 4.
	HallSmallDomainLimit int
	// SupplementalK and SupplementalL size the power-graph family domain
	// initialisation builds beyond plain adjacency (spec §3, §4.4): up to
	// SupplementalK extra filter graphs, for path lengths 2..SupplementalL.
	// Zero selects DefaultSupplementalConfig (K=3, L=3).
	SupplementalK int
	SupplementalL int
	// FindAll searches for every witness instead of stopping at the first;
	// Result.AllMappings is only populated when this is set.
	FindAll bool
}

// supplementalConfig resolves the effective K/L, substituting defaults for
// zero.
func (p Params) supplementalConfig() SupplementalConfig {
	cfg := DefaultSupplementalConfig()
	if p.SupplementalK > 0 {
		cfg.K = p.SupplementalK
	}
	if p.SupplementalL > 0 {
		cfg.L = p.SupplementalL
	}
	return cfg
}

// Option mutates a Params under construction.
type Option func(*Params)

// DefaultParams returns the spec §6 defaults: non-induced, backjumping and
// cheap all-different on, full Régin off, first witness only.
func DefaultParams() Params {
	return Params{
		Common:               search.DefaultCommon(),
		CheapAllDifferent:    true,
		Backjumping:          true,
		HallSmallDomainLimit: 4,
	}
}

// WithInduced toggles induced-subgraph mode.
func WithInduced(induced bool) Option {
	return func(p *Params) { p.Induced = induced }
}

// WithRegin enables the full Régin all-different filter.
func WithRegin(enabled bool) Option {
	return func(p *Params) { p.UseRegin = enabled }
}

// WithCheapAllDifferent toggles the Hall-counting necessary condition.
func WithCheapAllDifferent(enabled bool) Option {
	return func(p *Params) { p.CheapAllDifferent = enabled }
}

// WithBackjumping toggles conflict-directed backjumping.
func WithBackjumping(enabled bool) Option {
	return func(p *Params) { p.Backjumping = enabled }
}

// WithDomPlusDeg toggles the degree tie-break in branch-variable selection.
func WithDomPlusDeg(enabled bool) Option {
	return func(p *Params) { p.DomPlusDeg = enabled }
}

// WithHallSmallDomainLimit overrides the cheap all-different filter's
// domain-size cutoff.
func WithHallSmallDomainLimit(n int) Option {
	return func(p *Params) { p.HallSmallDomainLimit = n }
}

// WithSupplementalDepth overrides the power-graph family's K (graph count)
// and L (maximum path length).
func WithSupplementalDepth(k, l int) Option {
	return func(p *Params) { p.SupplementalK, p.SupplementalL = k, l }
}

// WithFindAll switches to enumerating every witness.
func WithFindAll(all bool) Option {
	return func(p *Params) { p.FindAll = all }
}

// WithAbort installs a shared abort flag the solver polls between nodes.
func WithAbort(flag *atomic.Bool) Option {
	return func(p *Params) { p.Abort = flag }
}

// WithStartTime overrides the wall-clock anchor used for elapsed-time
// reporting.
func WithStartTime(t time.Time) Option {
	return func(p *Params) { p.StartTime = t }
}

// WithRecorder installs a metrics sink.
func WithRecorder(r search.Recorder) Option {
	return func(p *Params) { p.Recorder = r }
}

// WithLogger installs a structured logger for solve start/end lines.
func WithLogger(l logrus.FieldLogger) Option {
	return func(p *Params) { p.Logger = l }
}

// NewParams applies opts over DefaultParams.
func NewParams(opts ...Option) Params {
	p := DefaultParams()
	for _, opt := range opts {
		opt(&p)
	}
	return p
}
