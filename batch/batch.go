// Package batch runs both expression engines over many tree documents
// concurrently.
//
// Each document is handled by one worker that owns a private snapshot of
// the document's scope chain and its own IR factory, so workers share no
// mutable state.
package batch

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/ardnew/svexpr/diag"
	"github.com/ardnew/svexpr/document"
	"github.com/ardnew/svexpr/eval"
	"github.com/ardnew/svexpr/ir"
	"github.com/ardnew/svexpr/log"
	"github.com/ardnew/svexpr/lower"
	"github.com/ardnew/svexpr/metrics"
	"github.com/ardnew/svexpr/syntax"
	"github.com/ardnew/svexpr/value"
)

// Result is the outcome of one expression.
type Result struct {
	Name     string
	Location syntax.Location
	Value    value.Value
	IR       ir.Doc
	Nodes    int
}

// File is the outcome of one document.
type File struct {
	Path        string
	Results     []Result
	Diagnostics []diag.Diagnostic
	Factory     string
}

// Summary totals a run.
type Summary struct {
	Files       []File
	Expressions int
	Invalid     int
	Empty       int
	Diagnostics int
}

// Runner processes documents with a bounded number of workers.
type Runner struct {
	logger     log.Logger
	metrics    *metrics.Metrics
	jobs       int
	maxDepth   int
	substitute bool
}

// New returns a Runner configured by opts.
func New(opts ...Option) *Runner {
	r := &Runner{substitute: true}
	WithJobs(0)(r)

	for _, opt := range opts {
		opt(r)
	}

	return r
}

// Run loads and processes every path. Documents that fail to load are
// skipped and their errors are combined into the returned error; the
// summary still covers every document that loaded. Run stops early only
// when ctx is canceled.
func (r *Runner) Run(ctx context.Context, paths ...string) (Summary, error) {
	files := make([]File, len(paths))
	loaded := make([]bool, len(paths))

	var (
		mu   sync.Mutex
		errs *multierror.Error
	)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(r.jobs)

	for i, path := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			f, err := r.process(ctx, path)
			r.metrics.ObserveDocument(err)

			if err != nil {
				mu.Lock()
				errs = multierror.Append(errs, errors.Wrapf(err, "%s", path))
				mu.Unlock()

				return nil
			}

			files[i], loaded[i] = f, true

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return Summary{}, err
	}

	var s Summary

	for i, f := range files {
		if !loaded[i] {
			continue
		}

		s.Files = append(s.Files, f)
		s.Diagnostics += len(f.Diagnostics)

		for _, res := range f.Results {
			s.Expressions++

			if !res.Value.IsValid() {
				s.Invalid++
			}

			if res.Nodes == 0 {
				s.Empty++
			}
		}
	}

	return s, errs.ErrorOrNil()
}

// process runs both engines over every expression of the document at path.
// Each expression is lowered before it is evaluated, so substituted
// constants reflect the bindings before any increment or decrement in that
// expression takes effect.
func (r *Runner) process(ctx context.Context, path string) (File, error) {
	doc, err := document.Load(ctx, path, document.WithLogger(r.logger))
	if err != nil {
		return File{}, err
	}

	var collector diag.Collector

	factory := ir.NewFactory()
	sc := doc.Scope()
	lw := lower.New(factory,
		lower.WithLogger(r.logger),
		lower.WithMaxDepth(r.maxDepth),
		lower.WithConstantSubstitution(r.substitute))
	ev := eval.New(
		eval.WithLogger(r.logger),
		eval.WithMaxDepth(r.maxDepth),
		eval.WithSink(diag.Tee(&collector, r.metrics, diag.LogSink{Logger: r.logger})))

	f := File{Path: path, Factory: factory.Handle().String()}

	for _, e := range doc.Expressions() {
		if err := ctx.Err(); err != nil {
			return File{}, err
		}

		start := time.Now()
		n := lw.Lower(ctx, doc.Tree(), e.ID, nil, sc)
		r.metrics.ObserveLower(n, time.Since(start))

		start = time.Now()
		v := ev.Evaluate(ctx, doc.Tree(), e.ID, sc, false)
		r.metrics.ObserveEval(v, time.Since(start))

		res := Result{
			Name:     e.Name,
			Location: doc.Tree().Location(e.ID),
			Value:    v,
			IR:       ir.Encode(n),
		}

		for range ir.All(n) {
			res.Nodes++
		}

		f.Results = append(f.Results, res)
	}

	f.Diagnostics = collector.Diagnostics()

	r.logger.DebugContext(ctx, "document processed",
		slog.String("path", path),
		slog.Int("expressions", len(f.Results)),
		slog.Int("diagnostics", len(f.Diagnostics)))

	return f, nil
}
