package walk

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ardnew/svexpr/syntax"
	"github.com/ardnew/svexpr/syntax/syntaxtest"
)

func TestDecode_Literal(t *testing.T) {
	b := syntaxtest.New("t.sv")
	n := b.Int("8'hFF")

	f := Decode(b.Tree(), n)
	assert.Equal(t, Literal, f.Shape)
	assert.Equal(t, syntax.IntConst, f.Tag)
	assert.Equal(t, "8'hFF", f.Text)
}

func TestDecode_SkipsWrappersAndLoneOperands(t *testing.T) {
	b := syntaxtest.New("t.sv")
	inner := b.Int("1")
	n := b.Paren(b.Paren(inner))
	lone := b.Node(syntax.ConstantExpression, b.Int("2"))

	tree := b.Tree()

	assert.Equal(t, Literal, Decode(tree, n).Shape)
	assert.Equal(t, "2", Decode(tree, lone).Text)
}

func TestDecode_Binary(t *testing.T) {
	b := syntaxtest.New("t.sv")
	l, r := b.Int("3"), b.Int("4")
	n := b.Binary(l, syntax.BinOpPlus, r)

	f := Decode(b.Tree(), n)
	assert.Equal(t, Binary, f.Shape)
	assert.Equal(t, syntax.BinOpPlus, f.Op)
	assert.Equal(t, l, f.Left)
	assert.Equal(t, r, f.Right)
}

func TestDecode_Unary(t *testing.T) {
	b := syntaxtest.New("t.sv")
	x := b.Ident("x")
	n := b.Unary(syntax.UnaryMinus, x)

	f := Decode(b.Tree(), n)
	assert.Equal(t, Unary, f.Shape)
	assert.Equal(t, syntax.UnaryMinus, f.Op)
	assert.Equal(t, x, f.Operand)
}

func TestDecode_Names(t *testing.T) {
	b := syntaxtest.New("t.sv")

	plain := b.IdentAt(3, 9, "top", "u0", "w")
	bit := b.BitSelect("a", b.Int("3"))
	part := b.PartSelect("a", b.Int("7"), b.Int("0"))
	idx := b.IndexedSelect("a", b.Int("4"), false, b.Int("2"))
	bare := b.Leaf(syntax.StringConst, "y")

	tree := b.Tree()

	f := Decode(tree, plain)
	assert.Equal(t, Name, f.Shape)
	assert.Equal(t, "top.u0.w", f.Ident.Name())
	assert.Equal(t, NoSelect, f.Ident.Select)
	assert.Equal(t, 3, tree.Location(f.At).Line)

	f = Decode(tree, bit)
	assert.Equal(t, BitSelect, f.Ident.Select)
	assert.Equal(t, "3", Decode(tree, f.Ident.Index).Text)

	f = Decode(tree, part)
	assert.Equal(t, PartSelect, f.Ident.Select, "empty Bit_select is skipped")
	assert.Equal(t, "7", Decode(tree, f.Ident.Left).Text)
	assert.Equal(t, "0", Decode(tree, f.Ident.Right).Text)

	f = Decode(tree, idx)
	assert.Equal(t, IndexedSelect, f.Ident.Select)
	assert.Equal(t, syntax.DecPartSelectOp, f.Ident.Direction)
	assert.Equal(t, "2", Decode(tree, f.Ident.Right).Text)

	f = Decode(tree, bare)
	assert.Equal(t, Name, f.Shape)
	assert.Equal(t, "y", f.Ident.Name())
}

func TestDecode_IncDec(t *testing.T) {
	b := syntaxtest.New("t.sv")
	pre := b.PreIncDec(syntax.IncDecPlusPlus, "x")
	post := b.PostIncDec(syntax.IncDecMinusMinus, "x")

	tree := b.Tree()

	f := Decode(tree, pre)
	assert.Equal(t, Unary, f.Shape)
	assert.Equal(t, syntax.IncDecPlusPlus, f.Op)
	assert.Equal(t, Name, Decode(tree, f.Operand).Shape)

	f = Decode(tree, post)
	assert.Equal(t, Postfix, f.Shape)
	assert.Equal(t, syntax.IncDecMinusMinus, f.Op)
	assert.Equal(t, "x", Decode(tree, f.Operand).Ident.Name())
}

func TestDecode_Events(t *testing.T) {
	b := syntaxtest.New("t.sv")
	clk := b.Edge(syntax.EdgePosedge, "clk")
	rst := b.Edge(syntax.EdgeNegedge, "rst")
	en := b.Edge(syntax.EdgePosedge, "en")
	n := b.Events(clk, syntax.OrOperator, rst, syntax.CommaOperator, en)

	tree := b.Tree()

	f := Decode(tree, n)
	assert.Equal(t, Events, f.Shape)
	assert.Equal(t, []syntax.NodeID{clk, rst, en}, f.Operands)
	assert.Equal(t, []syntax.Tag{syntax.OrOperator, syntax.CommaOperator}, f.Combinators)

	edge := Decode(tree, clk)
	assert.Equal(t, Unary, edge.Shape)
	assert.Equal(t, syntax.EdgePosedge, edge.Op)
}

func TestDecode_Other(t *testing.T) {
	b := syntaxtest.New("t.sv")
	call := b.SysCall("$clog2")
	cat := b.Concat(b.Ident("a"), b.Int("1"))
	empty := b.Node(syntax.ConstantExpression, b.Leaf(syntax.Select, ""))

	tree := b.Tree()

	f := Decode(tree, call)
	assert.Equal(t, SysCall, f.Shape)
	assert.Equal(t, "$clog2", f.Text)

	f = Decode(tree, cat)
	assert.Equal(t, Concat, f.Shape)
	assert.Equal(t, syntax.Concatenation, f.Tag)
	assert.Len(t, f.Operands, 2)

	assert.Equal(t, Empty, Decode(tree, empty).Shape)
	assert.Equal(t, Empty, Decode(tree, 0).Shape)
	assert.Equal(t, Empty, Decode(nil, 1).Shape)
}

type shapes struct{}

func (shapes) Empty(Form) Shape   { return Empty }
func (shapes) Unary(Form) Shape   { return Unary }
func (shapes) Binary(Form) Shape  { return Binary }
func (shapes) Events(Form) Shape  { return Events }
func (shapes) Literal(Form) Shape { return Literal }
func (shapes) Name(Form) Shape    { return Name }
func (shapes) Postfix(Form) Shape { return Postfix }
func (shapes) SysCall(Form) Shape { return SysCall }
func (shapes) Concat(Form) Shape  { return Concat }

func TestWalk_DispatchesEveryShape(t *testing.T) {
	for s := Empty; s <= Concat; s++ {
		assert.Equal(t, s, Dispatch[Shape](shapes{}, Form{Shape: s}), s.String())
	}

	b := syntaxtest.New("t.sv")
	n := b.Null()

	assert.Equal(t, Literal, Walk[Shape](shapes{}, b.Tree(), n))
}
