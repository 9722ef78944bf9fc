// Package metrics provides an optional Prometheus-backed
// search.Recorder. The core engines never import this package directly —
// callers that want instrumentation construct a Recorder here and pass it
// through search.Common.Recorder — so a solve never pays for metrics it
// did not ask for.
//
// Grounded on kektordb's pkg/metrics/metrics.go promauto registration
// style.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// SearchNodesTotal counts branch-and-bound / propagate-and-branch
	// node expansions, labelled by the engine that produced them.
	SearchNodesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "parasolve_search_nodes_total",
			Help: "Total number of search nodes expanded, by engine.",
		},
		[]string{"engine"},
	)

	// IncumbentSize tracks the best witness size seen so far per engine
	// instance, via the label-keyed gauge's last observed value.
	IncumbentSize = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "parasolve_incumbent_size",
			Help: "Size of the best incumbent witness found so far, by engine.",
		},
		[]string{"engine"},
	)

	// SolveDuration records wall-clock solve time, by engine and final
	// status (Satisfiable/Unsatisfiable/Aborted/TooLarge).
	SolveDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "parasolve_solve_duration_seconds",
			Help:    "Duration of a complete solve call, by engine and status.",
			Buckets: []float64{0.0001, 0.001, 0.01, 0.1, 1, 10, 60},
		},
		[]string{"engine", "status"},
	)
)

// Recorder implements search.Recorder against the package-level
// Prometheus collectors above, scoped to one named engine
// ("max_clique", "subgraph_isomorphism", "max_common_subgraph").
type Recorder struct {
	engine string
}

// NewRecorder returns a Recorder that labels every observation with engine.
func NewRecorder(engine string) *Recorder {
	return &Recorder{engine: engine}
}

// ObserveNode increments the per-engine node counter.
func (r *Recorder) ObserveNode() {
	SearchNodesTotal.WithLabelValues(r.engine).Inc()
}

// ObserveIncumbentSize sets the per-engine incumbent-size gauge.
func (r *Recorder) ObserveIncumbentSize(size int) {
	IncumbentSize.WithLabelValues(r.engine).Set(float64(size))
}

// ObserveSolveDuration records d against the histogram labelled with the
// engine and the solve's final status.
func (r *Recorder) ObserveSolveDuration(d time.Duration, status string) {
	SolveDuration.WithLabelValues(r.engine, status).Observe(d.Seconds())
}
