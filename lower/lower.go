package lower

import (
	"context"
	"log/slog"

	"github.com/ardnew/svexpr/classify"
	"github.com/ardnew/svexpr/ir"
	"github.com/ardnew/svexpr/log"
	"github.com/ardnew/svexpr/scope"
	"github.com/ardnew/svexpr/syntax"
	"github.com/ardnew/svexpr/walk"
)

// Lowerer translates expression trees to IR nodes made by one factory.
//
// A Lowerer is safe for concurrent use only if its factory is; give each
// worker its own Lowerer and factory.
type Lowerer struct {
	factory    *ir.Factory
	logger     log.Logger
	maxDepth   int
	substitute bool
}

// New returns a Lowerer that creates nodes with factory. A nil factory is
// replaced by a new one.
func New(factory *ir.Factory, opts ...Option) *Lowerer {
	if factory == nil {
		factory = ir.NewFactory()
	}

	l := &Lowerer{factory: factory, maxDepth: DefaultMaxDepth, substitute: true}
	for _, opt := range opts {
		opt(l)
	}

	return l
}

// Factory returns the factory l creates nodes with.
func (l *Lowerer) Factory() *ir.Factory { return l.factory }

// Lower returns the IR of the expression rooted at node, with parent as the
// parent of the returned node. It returns nil when the tree has no
// expressible content.
//
// Names resolve through res, which may be nil, only to substitute
// constants. Lowering never reports diagnostics and never mutates res.
func (l *Lowerer) Lower(
	ctx context.Context,
	tree *syntax.Tree,
	node syntax.NodeID,
	parent ir.Node,
	res scope.Resolver,
) ir.Node {
	c := &lowerContext{
		ctx:   ctx,
		l:     l,
		f:     l.factory,
		tree:  tree,
		trace: l.logger.Enabled(ctx, log.LevelTrace),
	}

	return c.lower(node, parent, res)
}

// lowerContext is the per-call state of one lowering. parent and scope
// describe the node currently being visited.
type lowerContext struct {
	ctx      context.Context
	l        *Lowerer
	f        *ir.Factory
	tree     *syntax.Tree
	parent   ir.Node
	scope    scope.Resolver
	trace    bool
	depth    int
	overflow bool
}

func (c *lowerContext) lower(node syntax.NodeID, parent ir.Node, res scope.Resolver) ir.Node {
	if c.depth >= c.l.maxDepth {
		if !c.overflow {
			c.overflow = true
			c.l.logger.WarnContext(c.ctx, "expression too deep to lower",
				slog.Int("max_depth", c.l.maxDepth),
				slog.String("location", c.tree.Location(node).String()))
		}

		return nil
	}

	c.depth++

	savedParent, savedScope := c.parent, c.scope
	c.parent, c.scope = parent, res

	f := walk.Decode(c.tree, node)
	n := walk.Dispatch[ir.Node](c, f)

	c.parent, c.scope = savedParent, savedScope
	c.depth--

	if c.trace {
		attrs := []slog.Attr{
			slog.String("shape", f.Shape.String()),
			slog.String("location", c.tree.Location(f.At).String()),
		}
		if n != nil {
			attrs = append(attrs, slog.String("kind", n.Kind().String()))
		}

		c.l.logger.TraceContext(c.ctx, "lower", attrs...)
	}

	return n
}

func (c *lowerContext) Empty(walk.Form) ir.Node { return nil }

func (c *lowerContext) Unary(f walk.Form) ir.Node {
	op, ok := classify.Unary(f.Op)
	if !ok {
		return nil
	}

	o := c.f.Operation(c.parent, op)
	c.f.Append(o, c.lower(f.Operand, o, c.scope))

	return o
}

func (c *lowerContext) Binary(f walk.Form) ir.Node {
	// An unmapped operator still yields an Operation, with the Null opcode.
	op, _ := classify.Binary(f.Op)

	o := c.f.Operation(c.parent, op)
	c.f.Append(o, c.lower(f.Left, o, c.scope), c.lower(f.Right, o, c.scope))

	return o
}

func (c *lowerContext) Events(f walk.Form) ir.Node {
	if len(f.Combinators) == 0 {
		return c.lower(f.Operands[0], c.parent, c.scope)
	}

	// Only one combinator kind is expected per list. When both appear the
	// last one seen determines the opcode.
	op := ir.OpNull
	for _, tag := range f.Combinators {
		if code, ok := classify.Combinator(tag); ok {
			op = code
		}
	}

	o := c.f.Operation(c.parent, op)
	for _, n := range f.Operands {
		c.f.Append(o, c.lower(n, o, c.scope))
	}

	return o
}

func (c *lowerContext) Literal(f walk.Form) ir.Node {
	text, ok := classify.Encode(f.Tag, f.Text)
	if !ok {
		return nil
	}

	return c.f.Constant(c.parent, text)
}

func (c *lowerContext) Name(f walk.Form) ir.Node {
	id := f.Ident
	name := id.Name()

	// Select bounds are lowered without a scope.
	switch id.Select {
	case walk.BitSelect:
		return c.f.BitSelect(c.parent, name, func(self ir.Node) ir.Node {
			return c.lower(id.Index, self, nil)
		})

	case walk.PartSelect:
		ref := c.f.RefObj(c.parent, name)

		return c.f.PartSelect(ref, true, func(self ir.Node) (ir.Node, ir.Node) {
			return c.lower(id.Left, self, nil), c.lower(id.Right, self, nil)
		})

	case walk.IndexedSelect:
		dir := ir.NegIndexed
		if classify.IsDirection(id.Direction) {
			dir, _ = classify.Direction(id.Direction)
		}

		ref := c.f.RefObj(c.parent, name)

		return c.f.IndexedPartSelect(ref, dir, true, func(self ir.Node) (ir.Node, ir.Node) {
			return c.lower(id.Left, self, nil), c.lower(id.Right, self, nil)
		})
	}

	if c.l.substitute && c.scope != nil {
		if cell, ok := c.scope.Lookup(name); ok {
			if v := cell.Load(); v.IsValid() {
				if c.trace {
					c.l.logger.TraceContext(c.ctx, "substitute",
						slog.String("name", name), slog.Any("value", v))
				}

				return c.f.Constant(c.parent, v.Encode())
			}
		}
	}

	return c.f.RefObj(c.parent, name)
}

func (c *lowerContext) Postfix(f walk.Form) ir.Node {
	if f.Op != syntax.Invalid {
		op, _ := classify.Post(f.Op)
		o := c.f.Operation(c.parent, op)
		c.f.Append(o, c.lower(f.Operand, o, c.scope))

		return o
	}

	return c.lower(f.Operand, c.parent, c.scope)
}

func (c *lowerContext) SysCall(f walk.Form) ir.Node {
	return c.f.SysFuncCall(c.parent, f.Text)
}

func (c *lowerContext) Concat(f walk.Form) ir.Node {
	op := ir.OpConcat
	if f.Tag == syntax.MultipleConcatenation {
		op = ir.OpMultiConcat
	}

	// Concatenation operands are lowered without a scope, so names inside
	// a concatenation are never substituted.
	o := c.f.Operation(c.parent, op)
	for _, n := range f.Operands {
		c.f.Append(o, c.lower(n, o, nil))
	}

	return o
}
