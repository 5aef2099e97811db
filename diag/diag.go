package diag

import (
	"log/slog"
	"sync"

	"github.com/hashicorp/go-multierror"
	"github.com/sahilm/fuzzy"

	"github.com/ardnew/svexpr/log"
	"github.com/ardnew/svexpr/syntax"
)

// Kind identifies a diagnostic condition.
type Kind uint8

const (
	// UnresolvedName is a name that no scope in the chain binds.
	UnresolvedName Kind = iota + 1
)

func (k Kind) String() string {
	switch k {
	case UnresolvedName:
		return "unresolved name"
	default:
		return "diagnostic"
	}
}

// Diagnostic is one reported condition.
type Diagnostic struct {
	Kind     Kind
	Location syntax.Location
	Name     string
	// Hint is the closest visible name, if any.
	Hint string
}

func (d Diagnostic) Error() string {
	msg := d.Location.String() + ": " + d.Kind.String() + " " + d.Name
	if d.Hint != "" {
		msg += " (did you mean " + d.Hint + "?)"
	}

	return msg
}

// LogValue implements [slog.LogValuer].
func (d Diagnostic) LogValue() slog.Value {
	attrs := []slog.Attr{
		slog.String("kind", d.Kind.String()),
		slog.String("location", d.Location.String()),
		slog.String("name", d.Name),
	}
	if d.Hint != "" {
		attrs = append(attrs, slog.String("hint", d.Hint))
	}

	return slog.GroupValue(attrs...)
}

// Sink receives diagnostics.
type Sink interface {
	Report(d Diagnostic)
}

// SinkFunc adapts a function to [Sink].
type SinkFunc func(Diagnostic)

// Report calls f(d).
func (f SinkFunc) Report(d Diagnostic) { f(d) }

// Collector is a [Sink] that keeps every diagnostic it receives. It is safe
// for concurrent use.
type Collector struct {
	mu    sync.Mutex
	diags []Diagnostic
}

// Report appends d.
func (c *Collector) Report(d Diagnostic) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.diags = append(c.diags, d)
}

// Diagnostics returns a copy of the collected diagnostics in report order.
func (c *Collector) Diagnostics() []Diagnostic {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]Diagnostic, len(c.diags))
	copy(out, c.diags)

	return out
}

// Len returns the number of collected diagnostics.
func (c *Collector) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return len(c.diags)
}

// Err returns the collected diagnostics as a single error, or nil if there
// are none.
func (c *Collector) Err() error {
	var err *multierror.Error

	for _, d := range c.Diagnostics() {
		err = multierror.Append(err, d)
	}

	return err.ErrorOrNil()
}

// LogSink writes each diagnostic to a logger at Warn level.
type LogSink struct {
	Logger log.Logger
}

// Report logs d.
func (s LogSink) Report(d Diagnostic) {
	s.Logger.Warn(d.Kind.String(), slog.Any("diagnostic", d))
}

// Tee returns a Sink that reports to every non-nil sink in order.
func Tee(sinks ...Sink) Sink {
	return SinkFunc(func(d Diagnostic) {
		for _, s := range sinks {
			if s != nil {
				s.Report(d)
			}
		}
	})
}

// Suggest returns the candidate that best matches name, or "" when none
// match. The candidate must contain the characters of name in order.
func Suggest(name string, candidates []string) string {
	if name == "" || len(candidates) == 0 {
		return ""
	}

	matches := fuzzy.Find(name, candidates)
	if len(matches) == 0 {
		return ""
	}

	return matches[0].Str
}
