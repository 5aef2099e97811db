package ir

import (
	"slices"
	"testing"

	"github.com/kylelemons/godebug/pretty"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFactory_NumbersAndParents(t *testing.T) {
	f := NewFactory()

	op := f.Operation(nil, OpAdd)
	l := f.Constant(op, "INT:3")
	r := f.Constant(op, "INT:4")
	f.Append(op, l, nil, r)

	assert.Equal(t, uint64(1), op.ID())
	assert.Equal(t, uint64(3), r.ID())
	assert.Nil(t, op.Parent())
	assert.Same(t, op, l.Parent())
	assert.Equal(t, []Node{l, r}, op.Operands())
	assert.Equal(t, uint64(1), f.Made(KindOperation))
	assert.Equal(t, uint64(2), f.Made(KindConstant))
	assert.NotEqual(t, f.Handle(), NewFactory().Handle())
}

func TestFactory_SelectsOwnTheirOperands(t *testing.T) {
	f := NewFactory()

	ref := f.RefObj(nil, "a")
	ps := f.PartSelect(ref, true, func(self Node) (Node, Node) {
		return f.Constant(self, "INT:7"), f.Constant(self, "INT:0")
	})

	left, right := ps.Bounds()
	require.NotNil(t, left)
	assert.Same(t, ps, left.Parent())
	assert.Same(t, ps, right.Parent())
	assert.Same(t, ref, ps.Ref())
	assert.True(t, ps.ConstantSelect())

	bs := f.BitSelect(nil, "b", nil)
	assert.Nil(t, bs.Index())

	ips := f.IndexedPartSelect(nil, NegIndexed, true, nil)
	assert.Nil(t, ips.Parent())
	assert.Nil(t, ips.Ref())
}

func TestEncode_String(t *testing.T) {
	f := NewFactory()

	add := f.Operation(nil, OpAdd)
	bs := f.BitSelect(add, "a", func(self Node) Node { return f.Constant(self, "INT:3") })
	ref := f.RefObj(add, "c")
	ips := f.IndexedPartSelect(ref, PosIndexed, true, func(self Node) (Node, Node) {
		return f.Constant(self, "INT:4"), f.Constant(self, "INT:2")
	})
	call := f.SysFuncCall(add, "$clog2")
	f.Append(add, bs, ips, call)

	assert.Equal(t, "(Add a[INT:3] c[INT:4+:INT:2] $clog2)", Encode(add).String())
	assert.Equal(t, "<nil>", Encode(nil).String())

	ps := f.PartSelect(f.RefObj(nil, "d"), true, func(Node) (Node, Node) { return nil, nil })
	assert.Equal(t, "d[<nil>:<nil>]", Encode(ps).String())
}

func TestEncode_IndependentBuildsCompareEqual(t *testing.T) {
	build := func(f *Factory) Node {
		op := f.Operation(nil, OpConcat)
		f.Append(op, f.RefObj(op, "x"), f.Constant(op, "BIN:4'b1010"))

		return op
	}

	a, b := build(NewFactory()), build(NewFactory())

	if diff := pretty.Compare(Encode(a), Encode(b)); diff != "" {
		t.Errorf("Encode mismatch (-a +b):\n%s", diff)
	}

	assert.Equal(t, Doc{
		Kind: "Operation",
		Op:   "Concat",
		Operands: []Doc{
			{Kind: "RefObj", Name: "x"},
			{Kind: "Constant", Value: "BIN:4'b1010"},
		},
	}, Encode(a))
}

func TestAll_PreOrder(t *testing.T) {
	f := NewFactory()

	op := f.Operation(nil, OpMult)
	inner := f.Operation(op, OpMinus)
	f.Append(inner, f.RefObj(inner, "x"))
	f.Append(op, inner, f.Constant(op, "INT:2"))

	var kinds []Kind
	for n := range All(op) {
		kinds = append(kinds, n.Kind())
	}

	assert.Equal(t, []Kind{KindOperation, KindOperation, KindRefObj, KindConstant}, kinds)

	n := 0
	for range All(op) {
		n++

		break
	}

	assert.Equal(t, 1, n)
	assert.Empty(t, slices.Collect(All(nil)))
}

func TestStrings(t *testing.T) {
	assert.Equal(t, "PostInc", OpPostInc.String())
	assert.Equal(t, "None", OpNone.String())
	assert.Equal(t, "Sub", OpSub.String())
	assert.Equal(t, "BitXnor", OpBitXnor.String())
	assert.Equal(t, "Null", OpNull.String())
	assert.Equal(t, "Power", OpPower.String())
	assert.Equal(t, "PreDec", OpPreDec.String())
	assert.Equal(t, "Opcode(5)", Opcode(5).String())
	assert.Equal(t, "Opcode(99)", Opcode(99).String())
	assert.Equal(t, "IndexedPartSelect", KindIndexedPartSelect.String())
	assert.Equal(t, "-:", NegIndexed.String())

	var names []string
	for k := range Kinds() {
		names = append(names, k.String())
	}

	assert.Len(t, names, 7)
}
