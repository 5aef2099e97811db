package document

import "github.com/ardnew/svexpr/log"

// Option configures loading.
type Option func(*options)

type options struct {
	logger  log.Logger
	noCache bool
}

func makeOptions(opts ...Option) options {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// WithLogger sets the logger used for cache and decode trace output.
func WithLogger(logger log.Logger) Option {
	return func(o *options) { o.logger = logger }
}

// WithoutCache decodes the input even when an identical document was
// loaded before, and does not store the result.
func WithoutCache() Option {
	return func(o *options) { o.noCache = true }
}
