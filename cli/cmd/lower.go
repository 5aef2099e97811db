package cmd

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/sanity-io/litter"

	"github.com/ardnew/svexpr/ir"
	"github.com/ardnew/svexpr/log"
	"github.com/ardnew/svexpr/lower"
)

// Lower translates expressions to IR and prints it.
type Lower struct {
	source `embed:""`

	NoSubstitute bool   `               help:"Keep references to bound names instead of substituting constants."`
	Format       string `default:"tree" help:"Output format."                                                     enum:"tree,compact,json,yaml,dump" short:"o"`
}

// Run executes the lower command.
func (l *Lower) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	targets, err := l.targets(ctx)
	if err != nil {
		return err
	}

	var records []record

	for _, t := range targets {
		f := ir.NewFactory()
		lw := lower.New(f,
			lower.WithLogger(log.Default()),
			lower.WithMaxDepth(l.MaxDepth),
			lower.WithConstantSubstitution(!l.NoSubstitute))

		for _, x := range t.exprs {
			d := ir.Encode(lw.Lower(ctx, t.doc.Tree(), x.ID, nil, t.scope))

			records = append(records, record{
				File: t.path,
				Name: x.Name,
				Line: t.doc.Tree().Location(x.ID).Line,
				IR:   &d,
			})
		}

		log.DebugContext(ctx, "lowered",
			slog.String("path", t.path),
			slog.String("factory", f.Handle().String()),
			slog.Uint64("operations", f.Made(ir.KindOperation)))
	}

	w := outputFrom(ctx)

	var text func(r record) string

	switch l.Format {
	case "tree":
		text = func(r record) string { return renderTree(r.Name, *r.IR) + "\n" }
	case "compact":
		text = func(r record) string { return r.Name + " = " + r.IR.String() + "\n" }
	case "dump":
		dump := litter.Options{HidePrivateFields: true, HideZeroValues: true, StripPackageNames: true}
		text = func(r record) string { return dump.Sdump(r) + "\n" }
	default:
		return encode(ctx, w, l.Format, records)
	}

	for _, r := range records {
		if _, err := fmt.Fprint(w, text(r)); err != nil {
			return ErrWriteOutput.Wrap(err)
		}
	}

	return nil
}
