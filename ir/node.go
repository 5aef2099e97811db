package ir

import (
	"iter"
	"slices"
	"strconv"
)

// Kind enumerates the IR node kinds.
type Kind uint8

const (
	KindOperation Kind = iota
	KindConstant
	KindRefObj
	KindBitSelect
	KindPartSelect
	KindIndexedPartSelect
	KindSysFuncCall

	numKinds
)

var kindName = [numKinds]string{
	KindOperation:         "Operation",
	KindConstant:          "Constant",
	KindRefObj:            "RefObj",
	KindBitSelect:         "BitSelect",
	KindPartSelect:        "PartSelect",
	KindIndexedPartSelect: "IndexedPartSelect",
	KindSysFuncCall:       "SysFuncCall",
}

func (k Kind) String() string {
	if k < numKinds {
		return kindName[k]
	}

	return "Kind(" + itoa(int(k)) + ")"
}

// Kinds returns an iterator over every node kind.
func Kinds() iter.Seq[Kind] {
	return func(yield func(Kind) bool) {
		for k := range numKinds {
			if !yield(k) {
				return
			}
		}
	}
}

// Node is an IR node. Nodes are created by a [Factory] and their parent is
// fixed at construction.
type Node interface {
	ID() uint64
	Kind() Kind
	Parent() Node
}

type base struct {
	id     uint64
	parent Node
}

func (b *base) ID() uint64 { return b.id }

func (b *base) Parent() Node { return b.parent }

// Operation applies an opcode to an ordered operand list.
type Operation struct {
	base
	op       Opcode
	operands []Node
}

func (*Operation) Kind() Kind { return KindOperation }

// Op returns the opcode of o.
func (o *Operation) Op() Opcode { return o.op }

// Operands returns a copy of the operand list of o.
func (o *Operation) Operands() []Node { return slices.Clone(o.operands) }

// Constant is a literal carried as encoded text such as "INT:42".
type Constant struct {
	base
	text string
}

func (*Constant) Kind() Kind { return KindConstant }

// Text returns the encoded literal text.
func (c *Constant) Text() string { return c.text }

// RefObj is a reference to a named object.
type RefObj struct {
	base
	name string
}

func (*RefObj) Kind() Kind { return KindRefObj }

// Name returns the referenced name.
func (r *RefObj) Name() string { return r.name }

// BitSelect is name[index].
type BitSelect struct {
	base
	name  string
	index Node
}

func (*BitSelect) Kind() Kind { return KindBitSelect }

// Name returns the selected object name.
func (s *BitSelect) Name() string { return s.name }

// Index returns the index expression, which may be nil.
func (s *BitSelect) Index() Node { return s.index }

// PartSelect is ref[left:right]. Its parent is the [RefObj] of the selected
// object.
type PartSelect struct {
	base
	left, right Node
	constant    bool
}

func (*PartSelect) Kind() Kind { return KindPartSelect }

// Bounds returns the left and right bound expressions.
func (s *PartSelect) Bounds() (left, right Node) { return s.left, s.right }

// ConstantSelect reports whether the bounds are constant expressions.
func (s *PartSelect) ConstantSelect() bool { return s.constant }

// Ref returns the referenced object, or nil if the parent is not a RefObj.
func (s *PartSelect) Ref() *RefObj { return refOf(s.parent) }

// IndexedPartSelect is ref[base +: width] or ref[base -: width]. Its parent
// is the [RefObj] of the selected object.
type IndexedPartSelect struct {
	base
	start, width Node
	dir          Direction
	constant     bool
}

func (*IndexedPartSelect) Kind() Kind { return KindIndexedPartSelect }

// Base returns the base expression.
func (s *IndexedPartSelect) Base() Node { return s.start }

// Width returns the width expression.
func (s *IndexedPartSelect) Width() Node { return s.width }

// Direction returns the select direction.
func (s *IndexedPartSelect) Direction() Direction { return s.dir }

// ConstantSelect reports whether the select is constant.
func (s *IndexedPartSelect) ConstantSelect() bool { return s.constant }

// Ref returns the referenced object, or nil if the parent is not a RefObj.
func (s *IndexedPartSelect) Ref() *RefObj { return refOf(s.parent) }

// SysFuncCall is a call of a system function such as $clog2.
type SysFuncCall struct {
	base
	name string
}

func (*SysFuncCall) Kind() Kind { return KindSysFuncCall }

// Name returns the system function name.
func (c *SysFuncCall) Name() string { return c.name }

func refOf(n Node) *RefObj {
	r, _ := n.(*RefObj)

	return r
}

// Children returns the direct operands of n in order. Select bounds that
// were not lowered are returned as nil.
func Children(n Node) []Node {
	switch t := n.(type) {
	case *Operation:
		return t.Operands()
	case *BitSelect:
		return []Node{t.index}
	case *PartSelect:
		return []Node{t.left, t.right}
	case *IndexedPartSelect:
		return []Node{t.start, t.width}
	default:
		return nil
	}
}

// All returns an iterator over n and every node below it in pre-order.
func All(n Node) iter.Seq[Node] {
	return func(yield func(Node) bool) {
		walkAll(n, yield)
	}
}

func walkAll(n Node, yield func(Node) bool) bool {
	if n == nil {
		return true
	}

	if !yield(n) {
		return false
	}

	for _, c := range Children(n) {
		if !walkAll(c, yield) {
			return false
		}
	}

	return true
}

func itoa(i int) string { return strconv.Itoa(i) }
