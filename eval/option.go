package eval

import (
	"github.com/ardnew/svexpr/diag"
	"github.com/ardnew/svexpr/log"
)

// DefaultMaxDepth is the default bound on expression nesting.
const DefaultMaxDepth = 1000

// Option configures an [Evaluator].
type Option func(*Evaluator)

// WithSink sets the sink that receives unresolved name diagnostics. Without
// one, diagnostics are dropped.
func WithSink(sink diag.Sink) Option {
	return func(e *Evaluator) { e.sink = sink }
}

// WithLogger sets the logger used for trace output and depth warnings.
func WithLogger(logger log.Logger) Option {
	return func(e *Evaluator) { e.logger = logger }
}

// WithMaxDepth bounds the nesting depth of evaluated expressions. Values
// below 1 restore [DefaultMaxDepth].
func WithMaxDepth(depth int) Option {
	return func(e *Evaluator) {
		if depth < 1 {
			depth = DefaultMaxDepth
		}

		e.maxDepth = depth
	}
}
