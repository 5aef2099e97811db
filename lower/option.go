package lower

import "github.com/ardnew/svexpr/log"

// DefaultMaxDepth is the default bound on expression nesting.
const DefaultMaxDepth = 1000

// Option configures a [Lowerer].
type Option func(*Lowerer)

// WithConstantSubstitution controls whether a name that resolves to a valid
// value lowers to a Constant carrying the encoded value instead of a
// RefObj. It is enabled by default.
func WithConstantSubstitution(enabled bool) Option {
	return func(l *Lowerer) { l.substitute = enabled }
}

// WithLogger sets the logger used for trace output and depth warnings.
func WithLogger(logger log.Logger) Option {
	return func(l *Lowerer) { l.logger = logger }
}

// WithMaxDepth bounds the nesting depth of lowered expressions. Values below
// 1 restore [DefaultMaxDepth].
func WithMaxDepth(depth int) Option {
	return func(l *Lowerer) {
		if depth < 1 {
			depth = DefaultMaxDepth
		}

		l.maxDepth = depth
	}
}
