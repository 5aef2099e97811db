package document

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"slices"
	"strconv"

	"github.com/goccy/go-yaml"

	"github.com/ardnew/svexpr/scope"
	"github.com/ardnew/svexpr/syntax"
	"github.com/ardnew/svexpr/value"
)

// Node is the serialized form of one syntax node.
type Node struct {
	Tag      string `yaml:"tag"`
	Sym      string `yaml:"sym,omitempty"`
	Line     int    `yaml:"line,omitempty"`
	Column   int    `yaml:"column,omitempty"`
	Children []Node `yaml:"children,omitempty"`
}

// Level is the serialized form of one scope level. Parent is the enclosing
// level.
type Level struct {
	Values map[string]any `yaml:"values,omitempty"`
	Parent *Level         `yaml:"parent,omitempty"`
}

// Source is the serialized form of a whole document.
type Source struct {
	File        string       `yaml:"file"`
	Scope       *Level       `yaml:"scope,omitempty"`
	Defines     []string     `yaml:"defines,omitempty"`
	Expressions []Expression `yaml:"expressions"`
}

// Expression is one named expression of a document. Root is the serialized
// tree; ID is the node it was built into.
type Expression struct {
	Name string        `yaml:"name"`
	Root *Node         `yaml:"root"`
	ID   syntax.NodeID `yaml:"-"`
}

// Document is a decoded tree document: one syntax tree holding every
// expression, and the scope chain the expressions are evaluated in.
//
// A Document is immutable and safe for concurrent use. [Document.Scope]
// returns a private copy of the bindings for each caller.
type Document struct {
	file  string
	tree  *syntax.Tree
	exprs []Expression
	scope *scope.Scope
}

// Decode builds a Document from YAML data.
func Decode(ctx context.Context, data []byte, opts ...Option) (*Document, error) {
	o := makeOptions(opts...)

	var src Source
	if err := yaml.UnmarshalContext(ctx, data, &src, yaml.DisallowUnknownField()); err != nil {
		return nil, ErrDecode.Wrap(err).With(slog.Int("bytes", len(data)))
	}

	d, err := build(&src)
	if err != nil {
		return nil, err
	}

	o.logger.TraceContext(ctx, "decode",
		slog.String("file", d.file),
		slog.Int("expressions", len(d.exprs)),
		slog.Int("nodes", d.tree.Len()))

	return d, nil
}

func build(src *Source) (*Document, error) {
	b := syntax.NewBuilder(src.File)
	d := &Document{file: src.File, exprs: make([]Expression, 0, len(src.Expressions))}

	seen := make(map[string]bool, len(src.Expressions))

	for i, e := range src.Expressions {
		if e.Name == "" {
			e.Name = "#" + strconv.Itoa(i)
		}

		if seen[e.Name] {
			return nil, ErrDuplicateID.With(slog.String("name", e.Name))
		}

		seen[e.Name] = true

		if e.Root == nil {
			return nil, ErrEmptyRoot.With(slog.String("name", e.Name))
		}

		id, err := link(b, e.Root)
		if err != nil {
			return nil, err.With(slog.String("expression", e.Name))
		}

		e.ID = id
		d.exprs = append(d.exprs, e)
	}

	d.tree = b.Tree()

	s, err := chain(src.Scope)
	if err != nil {
		return nil, err
	}

	if err := s.Apply(src.Defines...); err != nil {
		return nil, ErrDefine.Wrap(err)
	}

	d.scope = s

	return d, nil
}

// link adds n and its descendants to b, children first.
func link(b *syntax.Builder, n *Node) (syntax.NodeID, *Error) {
	tag, ok := syntax.ParseTag(n.Tag)
	if !ok {
		return 0, ErrUnknownTag.With(
			slog.String("tag", n.Tag),
			slog.Int("line", n.Line))
	}

	kids := make([]syntax.NodeID, 0, len(n.Children))

	for i := range n.Children {
		id, err := link(b, &n.Children[i])
		if err != nil {
			return 0, err
		}

		kids = append(kids, id)
	}

	id := b.Node(tag, kids...)
	b.SetSymbol(id, n.Sym)

	if n.Line != 0 || n.Column != 0 {
		b.SetLocation(id, n.Line, n.Column)
	}

	return id, nil
}

// chain builds the scope levels of l from the outermost inward and returns
// the innermost.
func chain(l *Level) (*scope.Scope, *Error) {
	if l == nil {
		return scope.New(nil), nil
	}

	parent, err := chain(l.Parent)
	if err != nil {
		return nil, err
	}

	s := scope.New(parent)

	names := make([]string, 0, len(l.Values))
	for name := range l.Values {
		names = append(names, name)
	}

	slices.Sort(names)

	for _, name := range names {
		v, ok := value.FromAny(normalize(l.Values[name]))
		if !ok {
			return nil, ErrScopeValue.With(
				slog.String("name", name),
				slog.String("type", fmt.Sprintf("%T", l.Values[name])))
		}

		s.Set(name, v)
	}

	return s, nil
}

// normalize maps YAML integers to signed values where they fit, so that
// document integers are signed regardless of how the decoder typed them.
func normalize(x any) any {
	if u, ok := x.(uint64); ok && u <= math.MaxInt64 {
		return int64(u)
	}

	return x
}

// File returns the source file name recorded in the document.
func (d *Document) File() string { return d.file }

// Tree returns the syntax tree holding every expression.
func (d *Document) Tree() *syntax.Tree { return d.tree }

// Expressions returns the expressions in document order.
func (d *Document) Expressions() []Expression { return slices.Clone(d.exprs) }

// Lookup returns the expression called name.
func (d *Document) Lookup(name string) (Expression, error) {
	for _, e := range d.exprs {
		if e.Name == name {
			return e, nil
		}
	}

	return Expression{}, ErrNoSuchName.With(
		slog.String("name", name),
		slog.String("file", d.file))
}

// Scope returns a private copy of the document's scope chain with every
// define applied.
func (d *Document) Scope() *scope.Scope { return d.scope.Snapshot() }
