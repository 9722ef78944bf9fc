package clique

import (
	"sync/atomic"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/dendrolab/parasolve/pkg/cco"
	"github.com/dendrolab/parasolve/pkg/search"
)

// Params configures a max-clique solve (spec §4.3, §6). It embeds
// search.Common for the fields shared with the SGI and MCS engines, grounded
// on pkg/minikanren/optimize.go's OptimizeParams-embeds-shared-fields shape.
type Params struct {
	search.Common
	// CCO selects the colour-class-ordering upper bound used to prune the
	// branch-and-bound. Variant defaults to cco.None.
	CCO cco.Config
	// Order names an initial vertex-ordering heuristic. Defaults to Degree.
	// Solve and SolveParallel do not read it: they search the BitGraph as
	// given, and do not reorder vertices or map Members back to another
	// numbering (see VertexOrder and bitgraph.FromGraphWithOrder).
	Order OrderFunction
}

// Option mutates a Params under construction, grounded on
// pkg/minikanren/optimize.go's OptimizeOption/WithTimeLimit functional
// options pattern.
type Option func(*Params)

// DefaultParams returns the spec §6 defaults: CCO variant None, Degree
// vertex ordering, and search.DefaultCommon()'s shared defaults.
func DefaultParams() Params {
	return Params{
		Common: search.DefaultCommon(),
		CCO:    cco.Config{Variant: cco.None},
		Order:  Degree,
	}
}

// WithInitialBound seeds the incumbent at size n before search starts, so a
// caller already holding a known clique can skip re-discovering it.
func WithInitialBound(n int) Option {
	return func(p *Params) { p.InitialBound = n }
}

// WithStopAfterFinding ends the search as soon as a clique of size n is
// found, returned as sound but not necessarily maximum.
func WithStopAfterFinding(n int) Option {
	return func(p *Params) { p.StopAfterFinding = n }
}

// WithNThreads sets the worker count SolveParallel fans the top-level
// candidate set across. Ignored by Solve, which is always single-threaded.
func WithNThreads(n int) Option {
	return func(p *Params) { p.NThreads = n }
}

// WithAbort installs a shared abort flag the solver polls between nodes.
func WithAbort(flag *atomic.Bool) Option {
	return func(p *Params) { p.Abort = flag }
}

// WithStartTime overrides the wall-clock anchor used for elapsed-time
// reporting and incumbent-sink timestamps; mainly useful for tests that
// want deterministic elapsed values.
func WithStartTime(t time.Time) Option {
	return func(p *Params) { p.StartTime = t }
}

// WithIncumbentSink enables incumbent printing and installs sink as its
// destination.
func WithIncumbentSink(sink search.IncumbentSink) Option {
	return func(p *Params) {
		p.PrintIncumbents = true
		p.IncumbentSink = sink
	}
}

// WithRecorder installs a metrics sink (pkg/metrics ships one).
func WithRecorder(r search.Recorder) Option {
	return func(p *Params) { p.Recorder = r }
}

// WithLogger installs a structured logger for solve start/end lines.
func WithLogger(l logrus.FieldLogger) Option {
	return func(p *Params) { p.Logger = l }
}

// WithCCOVariant selects the colour-class-ordering bound variant.
func WithCCOVariant(v cco.Variant) Option {
	return func(p *Params) { p.CCO.Variant = v }
}

// WithCCODelta sets the repair-threshold for the selective CCO variants.
func WithCCODelta(delta int) Option {
	return func(p *Params) { p.CCO.Delta = delta }
}

// WithVertexOrder sets Params.Order; Solve does not apply it.
func WithVertexOrder(fn OrderFunction) Option {
	return func(p *Params) { p.Order = fn }
}

// NewParams applies opts over DefaultParams.
func NewParams(opts ...Option) Params {
	p := DefaultParams()
	for _, opt := range opts {
		opt(&p)
	}
	return p
}
