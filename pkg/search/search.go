// Package search holds the configuration surface and result shapes shared
// by the max-clique, subgraph-isomorphism and max-common-subgraph engines
// (spec §5, §6, §7): the abort flag, incumbent-printing discipline, node
// counters and the Satisfiable/Unsatisfiable/Aborted/TooLarge status the
// core returns instead of ever using an error for control flow.
package search

import (
	"sync/atomic"
	"time"

	"github.com/sirupsen/logrus"
)

// Status is the outcome of one solve call. The core never returns a Go
// error for any of these (spec §7); error returns are reserved for
// construction-time contract violations in the surrounding packages.
type Status int

const (
	// StatusSatisfiable means a witness was found and proven (for
	// max-clique, proven optimal unless StopAfterFinding cut the search
	// short — callers can tell the difference via Result.ProvenOptimal).
	StatusSatisfiable Status = iota
	// StatusUnsatisfiable means the search completed and proved no
	// witness exists.
	StatusUnsatisfiable
	// StatusAborted means the caller's abort flag was observed true; the
	// result carries the best incumbent seen so far (max-clique, and MCS,
	// which decodes that clique) or no witness (SGI), never a
	// partial/invalid one.
	StatusAborted
	// StatusTooLarge means the input exceeded every width the size
	// dispatcher supports (spec §4.1); returned with zero nodes.
	StatusTooLarge
)

func (s Status) String() string {
	switch s {
	case StatusSatisfiable:
		return "Satisfiable"
	case StatusUnsatisfiable:
		return "Unsatisfiable"
	case StatusAborted:
		return "Aborted"
	case StatusTooLarge:
		return "TooLarge"
	default:
		return "Unknown"
	}
}

// IncumbentSink receives (elapsed-milliseconds, size, members) each time a
// better witness is found. spec §1 treats "incumbent printing with
// locking" as an external collaborator; this module's only obligation is
// to call the sink while holding its own lock (see Incumbent.Offer), so a
// non-reentrant, non-thread-safe sink is still safe to pass in — it will
// never be called concurrently with itself.
type IncumbentSink func(elapsedMillis int64, size int, members []int)

// Recorder is an optional metrics sink a caller can inject to observe a
// solve without the core depending on any particular metrics backend.
// pkg/metrics ships a Prometheus-backed implementation.
type Recorder interface {
	ObserveNode()
	ObserveIncumbentSize(size int)
	// ObserveSolveDuration is called exactly once per solve, after the
	// final Status is known, so a label-by-status backend never has to
	// reconstruct it after the fact.
	ObserveSolveDuration(d time.Duration, status string)
}

// Common holds the Params fields spec §6 lists as shared across all three
// entry points. Each engine package embeds Common in its own Params type
// and adds algorithm-specific toggles alongside it.
type Common struct {
	// InitialBound seeds the incumbent size before search starts
	// (max-clique) or is otherwise ignored; spec default 0.
	InitialBound int
	// StopAfterFinding ends the search as soon as a witness of this size
	// is found, returning it as sound but not proven optimal. <= 0 means
	// unbounded (spec default infinity).
	StopAfterFinding int
	// NThreads is advisory at this layer — the core described here is
	// single-threaded per solve (spec §5); multi-threaded variants launch
	// several of these sharing only Abort and an Incumbent.
	NThreads int
	// PrintIncumbents toggles whether IncumbentSink is consulted at all.
	PrintIncumbents bool
	// IncumbentSink is the external collaborator invoked on every new
	// incumbent when PrintIncumbents is set.
	IncumbentSink IncumbentSink
	// Abort is read-only to the core: the only shared mutable input
	// (spec §5). A nil Abort is treated as "never abort".
	Abort *atomic.Bool
	// StartTime anchors elapsed-time reporting; defaults to time.Now()
	// at Params construction so two solves of identical input still
	// produce byte-identical size/members/nodes (spec §5 ordering
	// guarantee) even though elapsed time itself is wall-clock.
	StartTime time.Time
	// Recorder, if non-nil, observes node counts, incumbent sizes and
	// solve duration. Never on a cancellation/abort path that would add
	// suspension to the hot loop — recording is synchronous.
	Recorder Recorder
	// Logger, if non-nil, receives a handful of structured lines per
	// solve (start, final status, abort). The core never logs per-node;
	// that would turn the hot loop into an I/O loop.
	Logger logrus.FieldLogger
}

// DefaultCommon returns the spec §6 defaults: initial_bound=0,
// stop_after_finding=infinity (represented as 0), n_threads=1,
// print_incumbents=false, abort=nil (never aborts), start_time=now().
func DefaultCommon() Common {
	return Common{
		NThreads:  1,
		StartTime: time.Now(),
	}
}

// ShouldAbort reports whether the caller's abort flag is currently set.
// Safe to call with a nil Abort.
func (c Common) ShouldAbort() bool {
	return c.Abort != nil && c.Abort.Load()
}

// Elapsed returns the duration since StartTime.
func (c Common) Elapsed() time.Duration {
	return time.Since(c.StartTime)
}

// recordNode is a no-op when Recorder is nil, so the hot path pays one
// nil check instead of an interface call when metrics are not wired.
func (c Common) recordNode() {
	if c.Recorder != nil {
		c.Recorder.ObserveNode()
	}
}

// RecordNode exposes recordNode to the engine packages embedding Common.
func (c Common) RecordNode() { c.recordNode() }

// RecordIncumbentSize reports a new incumbent size to the Recorder, if any.
func (c Common) RecordIncumbentSize(size int) {
	if c.Recorder != nil {
		c.Recorder.ObserveIncumbentSize(size)
	}
}

// RecordSolveDuration reports the total solve duration and final status to
// the Recorder, if any. Engine packages call this once, at the end of a
// solve, after Status has been decided.
func (c Common) RecordSolveDuration(d time.Duration, status Status) {
	if c.Recorder != nil {
		c.Recorder.ObserveSolveDuration(d, status.String())
	}
}

// LogSolveStart emits a single Debug line naming the engine and the
// candidate set size, if Logger is set. No-op otherwise.
func (c Common) LogSolveStart(engine string, n int) {
	if c.Logger != nil {
		c.Logger.WithFields(logrus.Fields{"engine": engine, "n": n}).Debug("parasolve: solve started")
	}
}

// LogSolveEnd emits a single Info line naming the engine, final status and
// node count, if Logger is set. No-op otherwise.
func (c Common) LogSolveEnd(engine string, status Status, nodes int64, elapsed time.Duration) {
	if c.Logger != nil {
		c.Logger.WithFields(logrus.Fields{
			"engine":  engine,
			"status":  status.String(),
			"nodes":   nodes,
			"elapsed": elapsed,
		}).Info("parasolve: solve finished")
	}
}

// CommonResult holds the fields spec §6 lists on every result shape.
type CommonResult struct {
	Status  Status
	Nodes   int64
	Elapsed time.Duration
}

// Aborted reports whether the solve was cut short by the abort flag.
func (r CommonResult) Aborted() bool { return r.Status == StatusAborted }
