package log

import (
	"io"
	"log/slog"
	"strings"
	"sync"
	"time"
)

// FormatTime formats a timestamp for log output. An empty result omits the
// timestamp from the record.
type FormatTime func(time.Time) string

// DefaultTimeLayout is the default used when no valid time layout is provided.
const DefaultTimeLayout = time.RFC3339

const (
	// DefaultCaller is the default setting for including caller information.
	DefaultCaller = false
	// DefaultPretty is the default setting for styled text output.
	DefaultPretty = true
)

// Option applies a configuration option to config.
type Option func(config) config

// config holds the configuration options for a Logger.
type config struct {
	mutex      *sync.RWMutex
	output     io.Writer
	formatTime FormatTime
	level      Level
	format     Format
	caller     bool
	pretty     bool
}

func makeConfig(w io.Writer, opts ...Option) config {
	return apply(config{mutex: &sync.RWMutex{}}, append([]Option{WithDefaults(w)}, opts...)...)
}

// clone copies c with a fresh mutex and applies opts to the copy.
func (c config) clone(opts ...Option) config {
	c.mutex = &sync.RWMutex{}

	return apply(c, opts...)
}

func apply(c config, opts ...Option) config {
	for _, opt := range opts {
		c = opt(c)
	}

	return c
}

// update wraps a field mutation in the config's write lock, allocating the
// lock first when c is a zero value.
func update(fn func(*config)) Option {
	return func(c config) config {
		if c.mutex == nil {
			c.mutex = &sync.RWMutex{}
		}

		c.mutex.Lock()
		defer c.mutex.Unlock()

		fn(&c)

		return c
	}
}

func (c config) handlerOptions() *slog.HandlerOptions {
	formatTime := c.formatTime
	if formatTime == nil {
		formatTime = makeFormatTimeFunc(DefaultTimeLayout)
	}

	return &slog.HandlerOptions{
		AddSource: c.caller,
		Level:     slog.Level(c.level),
		ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
			switch a.Key {
			case slog.TimeKey:
				if t, ok := a.Value.Any().(time.Time); ok {
					s := formatTime(t)
					if s == "" {
						return slog.Attr{}
					}

					a.Value = slog.StringValue(s)
				}

			case slog.LevelKey:
				// "TRACE" instead of "DEBUG-4".
				if l, ok := a.Value.Any().(slog.Level); ok {
					a.Value = slog.StringValue(strings.ToUpper(Level(l).String()))
				}
			}

			return a
		},
	}
}

// handler builds the slog.Handler described by c.
func (c config) handler() slog.Handler {
	out := c.output
	if out == nil {
		return slog.DiscardHandler
	}

	switch c.format {
	case FormatText:
		if c.pretty {
			return newPrettyHandler(out, c.handlerOptions())
		}

		return slog.NewTextHandler(out, c.handlerOptions())

	case FormatJSON:
		return slog.NewJSONHandler(out, c.handlerOptions())

	default:
		return slog.DiscardHandler
	}
}

// WithDefaults returns a functional option that resets every setting to its
// default and directs output to w. A nil w discards all output.
func WithDefaults(w io.Writer) Option {
	return update(func(c *config) {
		if w == nil {
			w = io.Discard
		}

		c.output = w
		c.formatTime = makeFormatTimeFunc(DefaultTimeLayout)
		c.level = DefaultLevel
		c.format = DefaultFormat
		c.caller = DefaultCaller
		c.pretty = DefaultPretty
	})
}

// WithOutput returns a functional option that sets the output writer.
// If a nil writer is provided, [io.Discard] is used instead.
func WithOutput(w io.Writer) Option {
	return update(func(c *config) {
		if w == nil {
			w = io.Discard
		}

		c.output = w
	})
}

// WithLevel returns a functional option that sets the minimum log level.
func WithLevel(level Level) Option {
	return update(func(c *config) { c.level = level })
}

// WithFormat returns a functional option that sets the output format.
func WithFormat(format Format) Option {
	return update(func(c *config) { c.format = format })
}

// WithTimeLayout returns a functional option that sets the layout used to
// format log timestamps.
//
// The layout may name one of the [time] package layouts (for example,
// "RFC3339" or "Kitchen"), case-insensitively. Anything else is passed
// verbatim to [time.Time.Format]. An empty layout, or "none", removes
// timestamps from log output.
func WithTimeLayout(layout string) Option {
	format := makeFormatTimeFunc(layout)

	return update(func(c *config) { c.formatTime = format })
}

// WithCaller returns a functional option that controls whether caller
// information is included in log output.
func WithCaller(enable bool) Option {
	return update(func(c *config) { c.caller = enable })
}

// WithPretty returns a functional option that controls whether text output
// is styled with colors. It has no effect on [FormatJSON].
func WithPretty(enable bool) Option {
	return update(func(c *config) { c.pretty = enable })
}

var timeLayout = map[string]string{
	"rfc3339":     time.RFC3339,
	"rfc3339nano": time.RFC3339Nano,
	"ansic":       time.ANSIC,
	"unixdate":    time.UnixDate,
	"rubydate":    time.RubyDate,
	"rfc822":      time.RFC822,
	"rfc822z":     time.RFC822Z,
	"rfc850":      time.RFC850,
	"kitchen":     time.Kitchen,
	"datetime":    time.DateTime,
	"timeonly":    time.TimeOnly,

	"stamp":      time.Stamp,
	"stampmilli": time.StampMilli,
	"ms":         time.StampMilli,
	"stampmicro": time.StampMicro,
	"us":         time.StampMicro,
	"stampnano":  time.StampNano,
	"ns":         time.StampNano,

	"none": "",
}

func makeFormatTimeFunc(layout string) FormatTime {
	key := strings.Map(
		func(r rune) rune {
			if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
				return r
			}

			return -1
		},
		strings.ToLower(layout),
	)

	if std, ok := timeLayout[key]; ok {
		layout = std
	}

	if strings.TrimSpace(layout) == "" {
		return func(time.Time) string { return "" }
	}

	return func(t time.Time) string { return t.Format(layout) }
}
