package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/ardnew/svexpr/diag"
	"github.com/ardnew/svexpr/eval"
	"github.com/ardnew/svexpr/log"
	"github.com/ardnew/svexpr/value"
)

// Eval folds expressions to compile-time values.
type Eval struct {
	source `embed:""`

	Mute   bool   `               help:"Suppress unresolved-name diagnostics."`
	Format string `default:"text" help:"Output format."                       enum:"text,json,yaml" short:"o"`
}

// Run executes the eval command.
func (e *Eval) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	targets, err := e.targets(ctx)
	if err != nil {
		return err
	}

	ev := eval.New(
		eval.WithLogger(log.Default()),
		eval.WithMaxDepth(e.MaxDepth),
		eval.WithSink(diag.LogSink{Logger: log.Default()}))

	var records []record

	for _, t := range targets {
		for _, x := range t.exprs {
			v := ev.Evaluate(ctx, t.doc.Tree(), x.ID, t.scope, e.Mute)

			records = append(records, record{
				File:  t.path,
				Name:  x.Name,
				Line:  t.doc.Tree().Location(x.ID).Line,
				Kind:  v.Kind().String(),
				Value: display(v),
			})
		}
	}

	log.DebugContext(ctx, "evaluated", slog.Int("expressions", len(records)))

	w := outputFrom(ctx)

	if e.Format != "text" {
		return encode(ctx, w, e.Format, records)
	}

	for _, r := range records {
		name := r.Name
		if len(targets) > 1 {
			name = r.File + ":" + name
		}

		if _, err := fmt.Fprintf(w, "%s = %s\n", name, r.Value); err != nil {
			return ErrWriteOutput.Wrap(err)
		}
	}

	return nil
}

// display formats v for text output. Strings are quoted so that they are
// distinguishable from numbers.
func display(v value.Value) string {
	if v.Kind() == value.String {
		return strconv.Quote(v.Text())
	}

	return v.String()
}
