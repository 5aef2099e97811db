package cmd

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"

	"github.com/goccy/go-yaml"

	"github.com/ardnew/svexpr/document"
	"github.com/ardnew/svexpr/ir"
	"github.com/ardnew/svexpr/log"
	"github.com/ardnew/svexpr/scope"
)

// source holds the flags shared by commands that read tree documents.
type source struct {
	Files    []string `arg:""         help:"Tree documents; names not found are searched in --path." name:"file"`
	Name     []string `               help:"Process only the named expressions."                                  placeholder:"NAME"      short:"n"`
	Define   []string `               help:"Bind NAME=EXPR in the innermost scope before processing."             placeholder:"NAME=EXPR" short:"D"`
	MaxDepth int      `default:"1000" help:"Maximum expression nesting depth."`
}

// target is one loaded document with the expressions selected from it and
// a private scope chain.
type target struct {
	doc   *document.Document
	path  string
	scope *scope.Scope
	exprs []document.Expression
}

func (s *source) targets(ctx context.Context) ([]target, error) {
	out := make([]target, 0, len(s.Files))

	for _, name := range s.Files {
		path := locate(ctx, name)

		doc, err := document.Load(ctx, path, document.WithLogger(log.Default()))
		if err != nil {
			return nil, ErrLoad.Wrap(err).With(slog.String("file", name))
		}

		sc := doc.Scope()
		if err := sc.Apply(s.Define...); err != nil {
			return nil, ErrDefine.Wrap(err).With(slog.String("file", path))
		}

		exprs := doc.Expressions()

		if len(s.Name) > 0 {
			exprs = make([]document.Expression, 0, len(s.Name))

			for _, n := range s.Name {
				e, err := doc.Lookup(n)
				if err != nil {
					return nil, ErrLoad.Wrap(err)
				}

				exprs = append(exprs, e)
			}
		}

		log.DebugContext(ctx, "document loaded",
			slog.String("path", path),
			slog.Int("expressions", len(exprs)))

		out = append(out, target{doc: doc, path: path, scope: sc, exprs: exprs})
	}

	return out, nil
}

// record is the printable result of one expression.
type record struct {
	File  string  `json:"file"            yaml:"file"`
	Name  string  `json:"name"            yaml:"name"`
	Line  int     `json:"line,omitempty"  yaml:"line,omitempty"`
	Kind  string  `json:"kind,omitempty"  yaml:"kind,omitempty"`
	Value string  `json:"value,omitempty" yaml:"value,omitempty"`
	IR    *ir.Doc `json:"ir,omitempty"    yaml:"ir,omitempty"`
}

// encode writes records to w as JSON or YAML.
func encode(ctx context.Context, w io.Writer, format string, records []record) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")

		if err := enc.Encode(records); err != nil {
			return ErrMarshal.Wrap(err).With(slog.String("format", format))
		}

		return nil

	case "yaml":
		data, err := yaml.MarshalContext(ctx, records, yaml.Indent(2))
		if err != nil {
			return ErrMarshal.Wrap(err).With(slog.String("format", format))
		}

		if _, err := w.Write(data); err != nil {
			return ErrWriteOutput.Wrap(err)
		}

		return nil

	default:
		return ErrFormat.With(slog.String("format", format))
	}
}
