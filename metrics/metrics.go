// Package metrics counts the work done by the expression engines and
// exports it in the prometheus text format.
//
// A nil *Metrics is valid and records nothing, so callers can pass metrics
// through unconditionally.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/ardnew/svexpr/diag"
	"github.com/ardnew/svexpr/ir"
	"github.com/ardnew/svexpr/value"
)

const namespace = "svexpr"

// Engine labels.
const (
	Eval  = "eval"
	Lower = "lower"
)

// Metrics holds the collectors of one run in a private registry.
type Metrics struct {
	registry    *prometheus.Registry
	expressions *prometheus.CounterVec
	nodes       *prometheus.CounterVec
	duration    *prometheus.HistogramVec
	diagnostics prometheus.Counter
	files       *prometheus.CounterVec
}

// New returns Metrics registered in a new registry.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		expressions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "expressions_total",
				Help:      "Expressions processed, by engine and outcome.",
			},
			// outcome: ok, invalid (eval), or empty (lower)
			[]string{"engine", "outcome"},
		),
		nodes: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "ir_nodes_total",
				Help:      "IR nodes produced by lowering, by kind.",
			},
			[]string{"kind"},
		),
		duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "expression_duration_seconds",
				Help:      "Time spent on one expression, by engine.",
				Buckets:   prometheus.ExponentialBuckets(1e-6, 4, 10),
			},
			[]string{"engine"},
		),
		diagnostics: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "diagnostics_total",
			Help:      "Diagnostics reported during evaluation.",
		}),
		files: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "documents_total",
				Help:      "Tree documents processed, by outcome.",
			},
			[]string{"outcome"},
		),
	}

	m.registry.MustRegister(m.expressions, m.nodes, m.duration, m.diagnostics, m.files)

	for k := range ir.Kinds() {
		m.nodes.WithLabelValues(k.String())
	}

	return m
}

// Registry returns the registry holding the collectors of m.
func (m *Metrics) Registry() *prometheus.Registry {
	if m == nil {
		return nil
	}

	return m.registry
}

// ObserveEval records one evaluation that produced v in d.
func (m *Metrics) ObserveEval(v value.Value, d time.Duration) {
	if m == nil {
		return
	}

	outcome := "ok"
	if !v.IsValid() {
		outcome = "invalid"
	}

	m.expressions.WithLabelValues(Eval, outcome).Inc()
	m.duration.WithLabelValues(Eval).Observe(d.Seconds())
}

// ObserveLower records one lowering that produced the subtree rooted at n
// in d.
func (m *Metrics) ObserveLower(n ir.Node, d time.Duration) {
	if m == nil {
		return
	}

	outcome := "ok"
	if n == nil {
		outcome = "empty"
	}

	m.expressions.WithLabelValues(Lower, outcome).Inc()
	m.duration.WithLabelValues(Lower).Observe(d.Seconds())

	for node := range ir.All(n) {
		m.nodes.WithLabelValues(node.Kind().String()).Inc()
	}
}

// ObserveDocument records one processed document and whether it failed.
func (m *Metrics) ObserveDocument(err error) {
	if m == nil {
		return
	}

	outcome := "ok"
	if err != nil {
		outcome = "error"
	}

	m.files.WithLabelValues(outcome).Inc()
}

// Report implements [diag.Sink] by counting d.
func (m *Metrics) Report(diag.Diagnostic) {
	if m == nil {
		return
	}

	m.diagnostics.Inc()
}

// WriteFile writes every metric of m to path in the text exposition format.
func (m *Metrics) WriteFile(path string) error {
	if m == nil {
		return nil
	}

	return prometheus.WriteToTextfile(path, m.registry)
}
