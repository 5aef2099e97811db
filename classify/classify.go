package classify

import (
	"fmt"

	"github.com/ardnew/svexpr/ir"
	"github.com/ardnew/svexpr/syntax"
)

var binary = map[syntax.Tag]ir.Opcode{
	syntax.BinOpPlus:                   ir.OpAdd,
	syntax.BinOpMinus:                  ir.OpSub,
	syntax.BinOpMult:                   ir.OpMult,
	syntax.BinOpDiv:                    ir.OpDiv,
	syntax.BinOpPercent:                ir.OpMod,
	syntax.BinOpMultMult:               ir.OpPower,
	syntax.BinOpGreat:                  ir.OpGt,
	syntax.BinOpGreatEqual:             ir.OpGe,
	syntax.BinOpLess:                   ir.OpLt,
	syntax.BinOpLessEqual:              ir.OpLe,
	syntax.BinOpEquiv:                  ir.OpEq,
	syntax.BinOpNot:                    ir.OpNeq,
	syntax.BinOpFourStateLogicEqual:    ir.OpCaseEq,
	syntax.BinOpFourStateLogicNotEqual: ir.OpCaseNeq,
	syntax.BinOpLogicAnd:               ir.OpLogAnd,
	syntax.BinOpLogicOr:                ir.OpLogOr,
	syntax.BinOpBitwAnd:                ir.OpBitAnd,
	syntax.BinOpBitwOr:                 ir.OpBitOr,
	syntax.BinOpBitwXor:                ir.OpBitXor,
	syntax.BinOpBitwXnor:               ir.OpBitXnor,
	syntax.BinOpShiftLeft:              ir.OpLShift,
	syntax.BinOpShiftRight:             ir.OpRShift,
	syntax.BinOpArithShiftLeft:         ir.OpArithLShift,
	syntax.BinOpArithShiftRight:        ir.OpArithRShift,
}

var unary = map[syntax.Tag]ir.Opcode{
	syntax.IncDecPlusPlus:   ir.OpPreInc,
	syntax.IncDecMinusMinus: ir.OpPreDec,
	syntax.UnaryMinus:       ir.OpMinus,
	syntax.UnaryPlus:        ir.OpPlus,
	syntax.UnaryNot:         ir.OpNot,
	syntax.UnaryTilda:       ir.OpBitNeg,
	syntax.EdgePosedge:      ir.OpPosedge,
	syntax.EdgeNegedge:      ir.OpNegedge,
}

var post = map[syntax.Tag]ir.Opcode{
	syntax.IncDecPlusPlus:   ir.OpPostInc,
	syntax.IncDecMinusMinus: ir.OpPostDec,
}

var combinator = map[syntax.Tag]ir.Opcode{
	syntax.OrOperator:    ir.OpEventOr,
	syntax.CommaOperator: ir.OpList,
}

var direction = map[syntax.Tag]ir.Direction{
	syntax.IncPartSelectOp: ir.PosIndexed,
	syntax.DecPartSelectOp: ir.NegIndexed,
}

var scalar = map[syntax.Tag]uint8{
	syntax.Number1Tickb0: 0,
	syntax.Number1TickB0: 0,
	syntax.NumberTickb0:  0,
	syntax.NumberTickB0:  0,
	syntax.NumberTick0:   0,
	syntax.Number1Tickb1: 1,
	syntax.Number1TickB1: 1,
	syntax.NumberTickb1:  1,
	syntax.NumberTickB1:  1,
	syntax.NumberTick1:   1,
}

func lookup[T any](m map[syntax.Tag]T, t syntax.Tag, what string, fallback T) (T, bool) {
	if v, ok := m[t]; ok {
		return v, true
	}

	if strict {
		panic(fmt.Sprintf("classify: %s tag %v has no mapping", what, t))
	}

	return fallback, false
}

// Binary returns the opcode of a binary operator tag.
func Binary(t syntax.Tag) (ir.Opcode, bool) {
	return lookup(binary, t, "binary operator", ir.OpNull)
}

// Unary returns the opcode of a prefix operator tag. Increment and
// decrement map to their pre forms; edges map to posedge and negedge.
func Unary(t syntax.Tag) (ir.Opcode, bool) {
	return lookup(unary, t, "unary operator", ir.OpNull)
}

// Post returns the opcode of a trailing increment or decrement tag.
func Post(t syntax.Tag) (ir.Opcode, bool) {
	return lookup(post, t, "postfix operator", ir.OpNull)
}

// Combinator returns the opcode of an event list combinator tag.
func Combinator(t syntax.Tag) (ir.Opcode, bool) {
	return lookup(combinator, t, "event combinator", ir.OpNull)
}

// Direction returns the direction of an indexed part-select operator tag.
func Direction(t syntax.Tag) (ir.Direction, bool) {
	return lookup(direction, t, "part-select direction", ir.PosIndexed)
}

// The queries below are predicates rather than mappings and never panic.

// IsBinary reports whether t is a binary operator tag.
func IsBinary(t syntax.Tag) bool {
	_, ok := binary[t]

	return ok
}

// IsUnary reports whether t is a prefix operator tag.
func IsUnary(t syntax.Tag) bool {
	_, ok := unary[t]

	return ok
}

// IsPost reports whether t can trail an lvalue as a postfix operator.
func IsPost(t syntax.Tag) bool {
	_, ok := post[t]

	return ok
}

// IsCombinator reports whether t separates event list operands.
func IsCombinator(t syntax.Tag) bool {
	_, ok := combinator[t]

	return ok
}

// IsDirection reports whether t is an indexed part-select operator.
func IsDirection(t syntax.Tag) bool {
	_, ok := direction[t]

	return ok
}

// Scalar returns the bit of a four-state single-bit literal tag.
func Scalar(t syntax.Tag) (uint8, bool) {
	b, ok := scalar[t]

	return b, ok
}

// PassThrough reports whether t is a wrapper whose value is that of its
// first child.
func PassThrough(t syntax.Tag) bool {
	switch t {
	case syntax.ConstantPrimary,
		syntax.PrimaryLiteral,
		syntax.Primary,
		syntax.ConstantMintypmaxExpression,
		syntax.MintypmaxExpression,
		syntax.ParamExpression,
		syntax.IncOrDecExpression,
		syntax.HierarchicalIdentifier,
		syntax.SystemTask,
		syntax.ExpressionOrCondPattern,
		syntax.ComplexFuncCall:
		return true
	default:
		return false
	}
}

// IsLiteral reports whether t is a literal tag.
func IsLiteral(t syntax.Tag) bool {
	switch t {
	case syntax.IntConst, syntax.RealConst, syntax.StringLiteral, syntax.NullKeyword:
		return true
	default:
		_, ok := scalar[t]

		return ok
	}
}
