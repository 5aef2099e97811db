package walk

import (
	"strings"

	"github.com/ardnew/svexpr/syntax"
)

// Shape is the structural category of a decoded expression node.
type Shape uint8

const (
	// Empty is a node with no expressible content.
	Empty Shape = iota
	// Unary is a prefix operator applied to one operand, including pre
	// increment, pre decrement, and edge operators.
	Unary
	// Binary is two operands joined by an operator.
	Binary
	// Events is an event list joined by or and comma combinators.
	Events
	// Literal is an integer, real, string, scalar, or null literal.
	Literal
	// Name is a possibly hierarchical identifier with an optional select.
	Name
	// Postfix is an lvalue with an optional trailing increment or
	// decrement.
	Postfix
	// SysCall is a system function name.
	SysCall
	// Concat is a concatenation or multiple concatenation.
	Concat
)

var shapeName = [...]string{
	Empty:   "empty",
	Unary:   "unary",
	Binary:  "binary",
	Events:  "events",
	Literal: "literal",
	Name:    "name",
	Postfix: "postfix",
	SysCall: "syscall",
	Concat:  "concat",
}

func (s Shape) String() string {
	if int(s) < len(shapeName) {
		return shapeName[s]
	}

	return "shape?"
}

// SelectKind identifies the select clause following a name.
type SelectKind uint8

const (
	NoSelect SelectKind = iota
	BitSelect
	PartSelect
	IndexedSelect
)

// Ident is a decoded identifier.
type Ident struct {
	// Segments are the StringConst symbols in order; Name joins them with
	// dots.
	Segments []string
	Select   SelectKind
	// Index is the index expression of a bit-select.
	Index syntax.NodeID
	// Left and Right are the bounds of a part-select, or the base and width
	// of an indexed part-select.
	Left, Right syntax.NodeID
	// Direction is IncPartSelectOp or DecPartSelectOp for indexed
	// part-selects.
	Direction syntax.Tag
}

// Name returns the dotted hierarchical name.
func (id Ident) Name() string { return strings.Join(id.Segments, ".") }

// Form is the decoded shape of one expression node.
//
// Only the fields relevant to Shape are set.
type Form struct {
	Shape Shape
	// Node is the node that was decoded, after skipping pass-through
	// wrappers.
	Node syntax.NodeID
	// At is the node whose source location describes the form.
	At syntax.NodeID

	// Op is the operator tag of Unary, Binary, and Postfix forms. It is
	// Invalid for a Postfix form without a trailing increment or decrement.
	Op syntax.Tag
	// Operand is the operand of Unary forms and the lvalue of Postfix
	// forms.
	Operand syntax.NodeID
	// Left and Right are the operands of a Binary form.
	Left, Right syntax.NodeID

	// Operands are the operands of Events and Concat forms.
	Operands []syntax.NodeID
	// Combinators are the tags between consecutive event operands.
	Combinators []syntax.Tag

	// Tag is the literal tag of Literal forms and the concatenation tag of
	// Concat forms.
	Tag syntax.Tag
	// Text is the literal text of Literal forms and the function name of
	// SysCall forms.
	Text string

	Ident Ident
}
