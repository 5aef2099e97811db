package batch

import (
	"runtime"

	"github.com/ardnew/svexpr/log"
	"github.com/ardnew/svexpr/metrics"
)

// Option configures a [Runner].
type Option func(*Runner)

// WithJobs bounds the number of documents processed at once. Values below
// 1 use GOMAXPROCS.
func WithJobs(n int) Option {
	return func(r *Runner) {
		if n < 1 {
			n = runtime.GOMAXPROCS(0)
		}

		r.jobs = n
	}
}

// WithLogger sets the logger passed to both engines and used for progress.
func WithLogger(logger log.Logger) Option {
	return func(r *Runner) { r.logger = logger }
}

// WithMetrics records every expression and diagnostic in m.
func WithMetrics(m *metrics.Metrics) Option {
	return func(r *Runner) { r.metrics = m }
}

// WithConstantSubstitution is passed through to the lowering engine.
func WithConstantSubstitution(enabled bool) Option {
	return func(r *Runner) { r.substitute = enabled }
}

// WithMaxDepth is passed through to both engines.
func WithMaxDepth(depth int) Option {
	return func(r *Runner) { r.maxDepth = depth }
}
