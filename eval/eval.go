package eval

import (
	"context"
	"log/slog"

	"github.com/ardnew/svexpr/classify"
	"github.com/ardnew/svexpr/diag"
	"github.com/ardnew/svexpr/ir"
	"github.com/ardnew/svexpr/log"
	"github.com/ardnew/svexpr/scope"
	"github.com/ardnew/svexpr/syntax"
	"github.com/ardnew/svexpr/value"
	"github.com/ardnew/svexpr/walk"
)

// Evaluator folds expression trees to values. It holds only configuration
// and is safe for concurrent use.
type Evaluator struct {
	sink     diag.Sink
	logger   log.Logger
	maxDepth int
}

// New returns an Evaluator configured by opts.
func New(opts ...Option) *Evaluator {
	e := &Evaluator{maxDepth: DefaultMaxDepth}
	for _, opt := range opts {
		opt(e)
	}

	return e
}

// Evaluate folds the expression rooted at node.
//
// Names resolve through res, which may be nil. A name that does not resolve
// yields Invalid and, unless mute is set, one [diag.UnresolvedName]
// diagnostic. Increment and decrement operators store their result through
// the resolved cell, so evaluation may mutate the bindings of res.
//
// Evaluate never fails: shapes that cannot be folded, such as event lists,
// system calls, and concatenations, yield Invalid.
func (e *Evaluator) Evaluate(
	ctx context.Context,
	tree *syntax.Tree,
	node syntax.NodeID,
	res scope.Resolver,
	mute bool,
) value.Value {
	c := &evalContext{
		ctx:   ctx,
		e:     e,
		tree:  tree,
		scope: res,
		mute:  mute,
		trace: e.logger.Enabled(ctx, log.LevelTrace),
	}

	return c.eval(node).val
}

// operand is an intermediate result. cell is set when val was read from a
// binding, so increment and decrement can store through it.
type operand struct {
	val  value.Value
	cell scope.Cell
}

func rvalue(v value.Value) operand { return operand{val: v} }

// evalContext is the per-call state of one evaluation.
type evalContext struct {
	ctx      context.Context
	e        *Evaluator
	tree     *syntax.Tree
	scope    scope.Resolver
	mute     bool
	trace    bool
	depth    int
	overflow bool
}

func (c *evalContext) eval(node syntax.NodeID) operand {
	if c.depth >= c.e.maxDepth {
		if !c.overflow {
			c.overflow = true
			c.e.logger.WarnContext(c.ctx, "expression too deep to fold",
				slog.Int("max_depth", c.e.maxDepth),
				slog.String("location", c.tree.Location(node).String()))
		}

		return operand{}
	}

	c.depth++
	defer func() { c.depth-- }()

	f := walk.Decode(c.tree, node)

	r := walk.Dispatch[operand](c, f)

	if c.trace {
		c.e.logger.TraceContext(c.ctx, "fold",
			slog.String("shape", f.Shape.String()),
			slog.String("location", c.tree.Location(f.At).String()),
			slog.Any("value", r.val))
	}

	return r
}

func (c *evalContext) Empty(walk.Form) operand { return operand{} }

func (c *evalContext) Unary(f walk.Form) operand {
	op, ok := classify.Unary(f.Op)
	if !ok || op == ir.OpPosedge || op == ir.OpNegedge {
		return operand{}
	}

	x := c.eval(f.Operand)

	switch op {
	case ir.OpPreInc, ir.OpPreDec:
		step := value.Incr
		if op == ir.OpPreDec {
			step = value.Decr
		}

		v := step(x.val)
		if x.cell.Valid() && v.IsValid() {
			x.cell.Store(v)
		}

		return rvalue(v.AsRvalue())
	case ir.OpMinus:
		return rvalue(value.UMinus(x.val))
	case ir.OpPlus:
		return rvalue(value.UPlus(x.val))
	case ir.OpNot:
		return rvalue(value.UNot(x.val))
	case ir.OpBitNeg:
		return rvalue(value.UTilda(x.val))
	default:
		return operand{}
	}
}

var binary = map[ir.Opcode]func(a, b value.Value) value.Value{
	ir.OpAdd:         value.Add,
	ir.OpSub:         value.Sub,
	ir.OpMult:        value.Mult,
	ir.OpDiv:         value.Div,
	ir.OpMod:         value.Mod,
	ir.OpPower:       value.Power,
	ir.OpGt:          value.Greater,
	ir.OpGe:          value.GreaterEqual,
	ir.OpLt:          value.Less,
	ir.OpLe:          value.LessEqual,
	ir.OpEq:          value.Equal,
	ir.OpNeq:         value.NotEqual,
	ir.OpCaseEq:      value.Equal,
	ir.OpCaseNeq:     value.NotEqual,
	ir.OpLogAnd:      value.LogAnd,
	ir.OpLogOr:       value.LogOr,
	ir.OpBitAnd:      value.BitAnd,
	ir.OpBitOr:       value.BitOr,
	ir.OpBitXor:      value.BitXor,
	ir.OpBitXnor:     value.BitXnor,
	ir.OpLShift:      value.ShiftLeft,
	ir.OpRShift:      value.ShiftRight,
	ir.OpArithLShift: value.ArithShiftLeft,
	ir.OpArithRShift: value.ArithShiftRight,
}

func (c *evalContext) Binary(f walk.Form) operand {
	left := c.eval(f.Left)

	op, ok := classify.Binary(f.Op)
	fn := binary[op]

	if !ok || fn == nil {
		return rvalue(left.val)
	}

	right := c.eval(f.Right)

	return rvalue(fn(left.val, right.val))
}

func (c *evalContext) Events(walk.Form) operand { return operand{} }

func (c *evalContext) Literal(f walk.Form) operand {
	switch f.Tag {
	case syntax.IntConst:
		return rvalue(integer(f.Text))
	case syntax.RealConst:
		return rvalue(value.Float(value.ParseReal(f.Text)))
	case syntax.StringLiteral:
		return rvalue(value.Str(classify.Unquote(f.Text)))
	case syntax.NullKeyword:
		return rvalue(value.Uint(0))
	default:
		if bit, ok := classify.Scalar(f.Tag); ok {
			return rvalue(value.Scalar(bit))
		}

		return operand{}
	}
}

func integer(text string) value.Value {
	lit := classify.Integer(text)

	switch {
	case lit.Radix == classify.Plain:
		return value.Int(value.ParseDecimal(text))
	case lit.Radix == classify.Unknown:
		return value.Uint(0)
	default:
		return value.Uint(value.ParseBased(lit.Digits, lit.Radix.Base()))
	}
}

func (c *evalContext) Name(f walk.Form) operand {
	name := f.Ident.Name()

	var (
		cell scope.Cell
		ok   bool
	)

	if c.scope != nil {
		cell, ok = c.scope.Lookup(name)
	}

	if !ok || !cell.Valid() {
		c.unresolved(f, name)

		return operand{}
	}

	v := cell.Load()

	if f.Ident.Select != walk.NoSelect {
		return rvalue(c.fold(f.Ident, v))
	}

	if v.Kind() == value.String {
		return operand{val: v, cell: cell}
	}

	return operand{val: value.UPlus(v), cell: cell}
}

func (c *evalContext) unresolved(f walk.Form, name string) {
	if c.mute || c.e.sink == nil {
		return
	}

	d := diag.Diagnostic{
		Kind:     diag.UnresolvedName,
		Location: c.tree.Location(f.At),
		Name:     name,
	}

	if n, ok := c.scope.(interface{ Names() []string }); ok {
		d.Hint = diag.Suggest(name, n.Names())
	}

	c.e.sink.Report(d)
}

// fold applies a constant select to the bound value v.
func (c *evalContext) fold(id walk.Ident, v value.Value) value.Value {
	bound := func(n syntax.NodeID) (int64, bool) {
		b := c.eval(n).val
		if b.Kind() != value.Integer {
			return 0, false
		}

		return b.Int64(), true
	}

	switch id.Select {
	case walk.BitSelect:
		i, ok := bound(id.Index)
		if !ok {
			return value.Value{}
		}

		return value.Slice(v, i, i)

	case walk.PartSelect:
		hi, okh := bound(id.Left)
		lo, okl := bound(id.Right)

		if !okh || !okl {
			return value.Value{}
		}

		return value.Slice(v, hi, lo)

	case walk.IndexedSelect:
		base, okb := bound(id.Left)
		width, okw := bound(id.Right)

		dir, okd := classify.Direction(id.Direction)
		if !okb || !okw || !okd || width < 1 {
			return value.Value{}
		}

		if dir == ir.NegIndexed {
			return value.Slice(v, base, base-width+1)
		}

		return value.Slice(v, base+width-1, base)

	default:
		return v
	}
}

func (c *evalContext) Postfix(f walk.Form) operand {
	x := c.eval(f.Operand)
	if f.Op == syntax.Invalid {
		return x
	}

	op, ok := classify.Post(f.Op)
	if !ok {
		return rvalue(x.val)
	}

	next := value.Incr(x.val)
	if op == ir.OpPostDec {
		next = value.Decr(x.val)
	}

	if x.cell.Valid() && next.IsValid() {
		x.cell.Store(next)
	}

	return rvalue(x.val.AsRvalue())
}

func (c *evalContext) SysCall(walk.Form) operand { return operand{} }

func (c *evalContext) Concat(walk.Form) operand { return operand{} }
