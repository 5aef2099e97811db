// Package syntaxtest builds the syntax tree shapes produced by the parser for
// common expression forms. It exists for tests and examples.
//
// Every helper returns the id of a node that an engine can be invoked on
// directly, so helpers nest the way the grammar does:
//
//	b := syntaxtest.New("top.sv")
//	sum := b.Binary(b.Int("3"), syntax.BinOpPlus, b.Int("4"))
package syntaxtest

import (
	"strings"

	"github.com/ardnew/svexpr/syntax"
)

// Builder wraps [syntax.Builder] with expression-shaped constructors.
type Builder struct {
	*syntax.Builder
}

// New returns a Builder for file.
func New(file string) *Builder {
	return &Builder{Builder: syntax.NewBuilder(file)}
}

// literal wraps a literal leaf the way the parser does:
// Constant_expression > Constant_primary > Primary_literal > leaf.
func (b *Builder) literal(tag syntax.Tag, text string) syntax.NodeID {
	return b.Node(syntax.ConstantExpression,
		b.Node(syntax.ConstantPrimary,
			b.Node(syntax.PrimaryLiteral, b.Leaf(tag, text))))
}

// Int returns an integer literal such as "42" or "8'hFF".
func (b *Builder) Int(text string) syntax.NodeID { return b.literal(syntax.IntConst, text) }

// Real returns a real literal such as "3.14".
func (b *Builder) Real(text string) syntax.NodeID { return b.literal(syntax.RealConst, text) }

// Str returns a string literal. The text is stored as written, including
// any surrounding quotes.
func (b *Builder) Str(text string) syntax.NodeID {
	return b.literal(syntax.StringLiteral, text)
}

// Scalar returns a four-state single-bit literal of the given tag, for
// example [syntax.Number1Tickb1].
func (b *Builder) Scalar(tag syntax.Tag) syntax.NodeID {
	text := "'0"
	if strings.HasSuffix(tag.String(), "1") {
		text = "'1"
	}

	return b.literal(tag, text)
}

// Null returns the null keyword.
func (b *Builder) Null() syntax.NodeID { return b.literal(syntax.NullKeyword, "null") }

// Ident returns a possibly hierarchical identifier. Each segment becomes one
// StringConst sibling, so Ident("top", "u0", "w") names "top.u0.w".
func (b *Builder) Ident(segments ...string) syntax.NodeID {
	return b.Node(syntax.ConstantExpression, b.Node(syntax.ConstantPrimary, b.names(segments)...))
}

// IdentAt is [Builder.Ident] with the first segment placed at line and col.
func (b *Builder) IdentAt(line, col int, segments ...string) syntax.NodeID {
	names := b.names(segments)
	if len(names) > 0 {
		b.SetLocation(names[0], line, col)
	}

	return b.Node(syntax.ConstantExpression, b.Node(syntax.ConstantPrimary, names...))
}

func (b *Builder) names(segments []string) []syntax.NodeID {
	ids := make([]syntax.NodeID, 0, len(segments)+1)
	for _, s := range segments {
		ids = append(ids, b.Leaf(syntax.StringConst, s))
	}

	return ids
}

// BitSelect returns name[index].
func (b *Builder) BitSelect(name string, index syntax.NodeID) syntax.NodeID {
	sel := b.Node(syntax.Select, b.Node(syntax.BitSelect, index))

	return b.Node(syntax.ConstantExpression,
		b.Node(syntax.ConstantPrimary, b.Leaf(syntax.StringConst, name), sel))
}

// PartSelect returns name[msb:lsb].
func (b *Builder) PartSelect(name string, msb, lsb syntax.NodeID) syntax.NodeID {
	rng := b.Node(syntax.PartSelectRange, b.Node(syntax.ConstantRange, msb, lsb))
	sel := b.Node(syntax.Select, b.Node(syntax.BitSelect), rng)

	return b.Node(syntax.ConstantExpression,
		b.Node(syntax.ConstantPrimary, b.Leaf(syntax.StringConst, name), sel))
}

// IndexedSelect returns name[base +: width] when increasing is true and
// name[base -: width] otherwise.
func (b *Builder) IndexedSelect(
	name string,
	base syntax.NodeID,
	increasing bool,
	width syntax.NodeID,
) syntax.NodeID {
	dir := syntax.DecPartSelectOp
	if increasing {
		dir = syntax.IncPartSelectOp
	}

	rng := b.Node(syntax.PartSelectRange,
		b.Node(syntax.ConstantIndexedRange, base, b.Leaf(dir, ""), width))
	sel := b.Node(syntax.Select, rng)

	return b.Node(syntax.ConstantExpression,
		b.Node(syntax.ConstantPrimary, b.Leaf(syntax.StringConst, name), sel))
}

// Binary returns left op right.
func (b *Builder) Binary(left syntax.NodeID, op syntax.Tag, right syntax.NodeID) syntax.NodeID {
	return b.Node(syntax.ConstantExpression, left, b.Leaf(op, ""), right)
}

// Paren returns (operand).
func (b *Builder) Paren(operand syntax.NodeID) syntax.NodeID {
	return b.Node(syntax.ConstantExpression,
		b.Node(syntax.ConstantPrimary,
			b.Node(syntax.ConstantMintypmaxExpression, operand)))
}

// Unary returns op operand, for operators such as [syntax.UnaryMinus] or
// [syntax.EdgePosedge].
func (b *Builder) Unary(op syntax.Tag, operand syntax.NodeID) syntax.NodeID {
	return b.Node(syntax.ConstantExpression, b.Leaf(op, ""), operand)
}

func (b *Builder) lvalue(segments []string) syntax.NodeID {
	return b.Node(syntax.VariableLvalue,
		b.Node(syntax.HierarchicalIdentifier, b.names(segments)...))
}

// PreIncDec returns ++name or --name depending on op.
func (b *Builder) PreIncDec(op syntax.Tag, segments ...string) syntax.NodeID {
	return b.Node(syntax.Expression,
		b.Node(syntax.IncOrDecExpression, b.Leaf(op, ""), b.lvalue(segments)))
}

// PostIncDec returns name++ or name-- depending on op.
func (b *Builder) PostIncDec(op syntax.Tag, segments ...string) syntax.NodeID {
	return b.Node(syntax.Expression,
		b.Node(syntax.IncOrDecExpression, b.lvalue(segments), b.Leaf(op, "")))
}

// Events returns an event list. Operands alternate with combinators, so
// Events(e0, syntax.OrOperator, e1) is "e0 or e1". Combinator positions
// hold a [syntax.Tag] and operand positions a [syntax.NodeID].
func (b *Builder) Events(items ...any) syntax.NodeID {
	ids := make([]syntax.NodeID, 0, len(items))

	for _, it := range items {
		switch v := it.(type) {
		case syntax.NodeID:
			ids = append(ids, v)
		case syntax.Tag:
			ids = append(ids, b.Leaf(v, ""))
		}
	}

	return b.Node(syntax.EventExpression, ids...)
}

// Edge returns a single edge event such as posedge clk.
func (b *Builder) Edge(op syntax.Tag, signal string) syntax.NodeID {
	return b.Node(syntax.EventExpression, b.Leaf(op, ""),
		b.Node(syntax.Expression, b.Node(syntax.Primary, b.Leaf(syntax.StringConst, signal))))
}

// SysCall returns a system function reference such as $clog2.
func (b *Builder) SysCall(name string) syntax.NodeID {
	return b.Node(syntax.ConstantExpression,
		b.Node(syntax.ConstantPrimary,
			b.Node(syntax.SystemTask,
				b.Node(syntax.SystemTaskNames, b.Leaf(syntax.StringConst, name)))))
}

// Concat returns {operands...}.
func (b *Builder) Concat(operands ...syntax.NodeID) syntax.NodeID {
	return b.Node(syntax.ConstantExpression,
		b.Node(syntax.ConstantPrimary, b.Node(syntax.Concatenation, operands...)))
}

// MultiConcat returns {count{operands...}}.
func (b *Builder) MultiConcat(count syntax.NodeID, operands ...syntax.NodeID) syntax.NodeID {
	return b.Node(syntax.ConstantExpression,
		b.Node(syntax.ConstantPrimary,
			b.Node(syntax.MultipleConcatenation, append([]syntax.NodeID{count}, operands...)...)))
}
