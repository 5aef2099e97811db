package log

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"
)

// palette holds the styles used by prettyHandler. Styles are bound to a
// renderer created for the handler's writer, so color is dropped
// automatically when the writer is not a terminal.
type palette struct {
	key, str, num, time, dur lipgloss.Style
	yes, no                  lipgloss.Style
	level                    map[slog.Level]lipgloss.Style
}

func makePalette(w io.Writer) palette {
	r := lipgloss.NewRenderer(w)
	fg := func(c string) lipgloss.Style { return r.NewStyle().Foreground(lipgloss.Color(c)) }

	return palette{
		key:  fg("8"),
		str:  fg("6"),
		num:  fg("3"),
		time: fg("4"),
		dur:  fg("5"),
		yes:  fg("2"),
		no:   fg("1"),
		level: map[slog.Level]lipgloss.Style{
			slog.Level(LevelTrace): fg("8"),
			slog.LevelDebug:        fg("4"),
			slog.LevelInfo:         fg("2"),
			slog.LevelWarn:         fg("3").Bold(true),
			slog.LevelError:        fg("1").Bold(true),
		},
	}
}

func (p palette) levelStyle(l slog.Level) lipgloss.Style {
	switch {
	case l >= slog.LevelError:
		return p.level[slog.LevelError]
	case l >= slog.LevelWarn:
		return p.level[slog.LevelWarn]
	case l >= slog.LevelInfo:
		return p.level[slog.LevelInfo]
	case l >= slog.LevelDebug:
		return p.level[slog.LevelDebug]
	default:
		return p.level[slog.Level(LevelTrace)]
	}
}

// prettyHandler writes key=value records like [slog.TextHandler] but without
// quoting and with colorized keys and values.
type prettyHandler struct {
	opts   slog.HandlerOptions
	mu     *sync.Mutex
	w      io.Writer
	pal    palette
	attrs  []slog.Attr
	groups []string
}

func newPrettyHandler(w io.Writer, opts *slog.HandlerOptions) *prettyHandler {
	return &prettyHandler{
		opts: *opts,
		mu:   &sync.Mutex{},
		w:    w,
		pal:  makePalette(w),
	}
}

func (h *prettyHandler) Enabled(_ context.Context, level slog.Level) bool {
	floor := slog.LevelInfo
	if h.opts.Level != nil {
		floor = h.opts.Level.Level()
	}

	return level >= floor
}

func (h *prettyHandler) Handle(_ context.Context, r slog.Record) error {
	var buf bytes.Buffer

	if !r.Time.IsZero() {
		h.write(&buf, nil, slog.Time(slog.TimeKey, r.Time))
	}

	h.write(&buf, nil, slog.Any(slog.LevelKey, r.Level))

	if h.opts.AddSource {
		if src := r.Source(); src != nil {
			h.write(&buf, nil, slog.String(slog.SourceKey,
				fmt.Sprintf("%s:%d", src.File, src.Line)))
		}
	}

	h.write(&buf, nil, slog.String(slog.MessageKey, r.Message))

	for _, a := range h.attrs {
		h.write(&buf, h.groups, a)
	}

	r.Attrs(func(a slog.Attr) bool {
		h.write(&buf, h.groups, a)

		return true
	})

	buf.WriteByte('\n')

	h.mu.Lock()
	defer h.mu.Unlock()

	_, err := h.w.Write(buf.Bytes())

	return err
}

func (h *prettyHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	c := *h
	c.attrs = append(h.attrs[:len(h.attrs):len(h.attrs)], attrs...)

	return &c
}

func (h *prettyHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}

	c := *h
	c.groups = append(h.groups[:len(h.groups):len(h.groups)], name)

	return &c
}

func (h *prettyHandler) write(buf *bytes.Buffer, groups []string, a slog.Attr) {
	if h.opts.ReplaceAttr != nil && a.Value.Kind() != slog.KindGroup {
		a = h.opts.ReplaceAttr(groups, a)
	}

	a.Value = a.Value.Resolve()

	if a.Equal(slog.Attr{}) {
		return
	}

	if a.Value.Kind() == slog.KindGroup {
		sub := groups
		if a.Key != "" {
			sub = append(groups[:len(groups):len(groups)], a.Key)
		}

		for _, ga := range a.Value.Group() {
			h.write(buf, sub, ga)
		}

		return
	}

	if buf.Len() > 0 {
		buf.WriteByte(' ')
	}

	key := a.Key
	if len(groups) > 0 {
		key = strings.Join(groups, ".") + "." + key
	}

	buf.WriteString(h.pal.key.Render(key))
	buf.WriteByte('=')
	buf.WriteString(h.value(a))
}

func (h *prettyHandler) value(a slog.Attr) string {
	v := a.Value

	switch v.Kind() {
	case slog.KindString:
		if a.Key == slog.LevelKey {
			return h.pal.levelStyle(slog.Level(ParseLevel(v.String()))).Render(v.String())
		}

		return h.pal.str.Render(v.String())

	case slog.KindInt64:
		return h.pal.num.Render(strconv.FormatInt(v.Int64(), 10))

	case slog.KindUint64:
		return h.pal.num.Render(strconv.FormatUint(v.Uint64(), 10))

	case slog.KindFloat64:
		return h.pal.num.Render(strconv.FormatFloat(v.Float64(), 'g', -1, 64))

	case slog.KindBool:
		if v.Bool() {
			return h.pal.yes.Render("true")
		}

		return h.pal.no.Render("false")

	case slog.KindDuration:
		return h.pal.dur.Render(v.Duration().String())

	case slog.KindTime:
		return h.pal.time.Render(v.Time().String())

	default:
		if l, ok := v.Any().(slog.Level); ok {
			return h.pal.levelStyle(l).Render(strings.ToUpper(Level(l).String()))
		}

		return h.pal.str.Render(v.String())
	}
}
