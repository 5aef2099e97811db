package cmd

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/ardnew/svexpr/batch"
	"github.com/ardnew/svexpr/log"
	"github.com/ardnew/svexpr/metrics"
)

// Batch runs both engines over every expression of many documents.
type Batch struct {
	Files        []string `arg:""         help:"Tree documents; names not found are searched in --path." name:"file"`
	Jobs         int      `default:"0"    help:"Documents processed at once (0 uses every CPU)."                       short:"j"`
	Metrics      string   `               help:"Write prometheus metrics to this file."                                 type:"path"`
	NoSubstitute bool     `               help:"Keep references to bound names instead of substituting constants."`
	MaxDepth     int      `default:"1000" help:"Maximum expression nesting depth."`
}

// Run executes the batch command.
func (b *Batch) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	paths := make([]string, len(b.Files))
	for i, f := range b.Files {
		paths[i] = locate(ctx, f)
	}

	var m *metrics.Metrics
	if b.Metrics != "" {
		m = metrics.New()
	}

	s, runErr := batch.New(
		batch.WithJobs(b.Jobs),
		batch.WithLogger(log.Default()),
		batch.WithMetrics(m),
		batch.WithMaxDepth(b.MaxDepth),
		batch.WithConstantSubstitution(!b.NoSubstitute),
	).Run(ctx, paths...)

	w := outputFrom(ctx)

	for _, f := range s.Files {
		invalid := 0

		for _, r := range f.Results {
			if !r.Value.IsValid() {
				invalid++
			}
		}

		_, err := fmt.Fprintf(w, "%s: %d expressions, %d invalid, %d diagnostics\n",
			f.Path, len(f.Results), invalid, len(f.Diagnostics))
		if err != nil {
			return ErrWriteOutput.Wrap(err)
		}
	}

	_, err = fmt.Fprintf(w, "total: %d documents, %d expressions, %d invalid, %d empty, %d diagnostics\n",
		len(s.Files), s.Expressions, s.Invalid, s.Empty, s.Diagnostics)
	if err != nil {
		return ErrWriteOutput.Wrap(err)
	}

	if err := m.WriteFile(b.Metrics); err != nil {
		return ErrWriteOutput.Wrap(err).With(slog.String("metrics", b.Metrics))
	}

	if runErr != nil {
		return ErrBatch.Wrap(runErr)
	}

	return nil
}
