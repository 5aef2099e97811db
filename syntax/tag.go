package syntax

import (
	"iter"
	"strings"
	"sync"

	"github.com/iancoleman/strcase"
)

// Tag identifies the grammar category of a [Tree] node.
//
// Names follow the SystemVerilog grammar productions emitted by the parser,
// for example "Constant_expression" or "BinOp_Plus".
type Tag uint16

const (
	Invalid Tag = iota

	// Pass-through wrappers.
	ConstantPrimary
	PrimaryLiteral
	Primary
	ConstantMintypmaxExpression
	MintypmaxExpression
	ParamExpression
	IncOrDecExpression
	HierarchicalIdentifier
	SystemTask
	ExpressionOrCondPattern
	ComplexFuncCall

	// Operand chains.
	Expression
	ConstantExpression
	EventExpression

	// Prefix operators.
	IncDecPlusPlus
	IncDecMinusMinus
	UnaryMinus
	UnaryPlus
	UnaryNot
	UnaryTilda
	EdgePosedge
	EdgeNegedge

	// Binary operators.
	BinOpPlus
	BinOpMinus
	BinOpMult
	BinOpDiv
	BinOpPercent
	BinOpMultMult
	BinOpGreat
	BinOpGreatEqual
	BinOpLess
	BinOpLessEqual
	BinOpEquiv
	BinOpNot
	BinOpFourStateLogicEqual
	BinOpFourStateLogicNotEqual
	BinOpLogicAnd
	BinOpLogicOr
	BinOpBitwAnd
	BinOpBitwOr
	BinOpBitwXor
	BinOpBitwXnor
	BinOpShiftLeft
	BinOpShiftRight
	BinOpArithShiftLeft
	BinOpArithShiftRight

	// Event list combinators.
	OrOperator
	CommaOperator

	// Literals.
	IntConst
	RealConst
	StringLiteral
	NullKeyword
	Number1Tickb0
	Number1TickB0
	NumberTickb0
	NumberTickB0
	NumberTick0
	Number1Tickb1
	Number1TickB1
	NumberTickb1
	NumberTickB1
	NumberTick1

	// Names and selects.
	StringConst
	Select
	BitSelect
	PartSelectRange
	ConstantRange
	ConstantIndexedRange
	IncPartSelectOp
	DecPartSelectOp

	SystemTaskNames
	VariableLvalue
	Concatenation
	MultipleConcatenation

	numTags
)

var tagName = [numTags]string{
	Invalid:                     "Invalid",
	ConstantPrimary:             "Constant_primary",
	PrimaryLiteral:              "Primary_literal",
	Primary:                     "Primary",
	ConstantMintypmaxExpression: "Constant_mintypmax_expression",
	MintypmaxExpression:         "Mintypmax_expression",
	ParamExpression:             "Param_expression",
	IncOrDecExpression:          "Inc_or_dec_expression",
	HierarchicalIdentifier:      "Hierarchical_identifier",
	SystemTask:                  "System_task",
	ExpressionOrCondPattern:     "Expression_or_cond_pattern",
	ComplexFuncCall:             "Complex_func_call",
	Expression:                  "Expression",
	ConstantExpression:          "Constant_expression",
	EventExpression:             "Event_expression",
	IncDecPlusPlus:              "IncDec_PlusPlus",
	IncDecMinusMinus:            "IncDec_MinusMinus",
	UnaryMinus:                  "Unary_Minus",
	UnaryPlus:                   "Unary_Plus",
	UnaryNot:                    "Unary_Not",
	UnaryTilda:                  "Unary_Tilda",
	EdgePosedge:                 "Edge_Posedge",
	EdgeNegedge:                 "Edge_Negedge",
	BinOpPlus:                   "BinOp_Plus",
	BinOpMinus:                  "BinOp_Minus",
	BinOpMult:                   "BinOp_Mult",
	BinOpDiv:                    "BinOp_Div",
	BinOpPercent:                "BinOp_Percent",
	BinOpMultMult:               "BinOp_MultMult",
	BinOpGreat:                  "BinOp_Great",
	BinOpGreatEqual:             "BinOp_GreatEqual",
	BinOpLess:                   "BinOp_Less",
	BinOpLessEqual:              "BinOp_LessEqual",
	BinOpEquiv:                  "BinOp_Equiv",
	BinOpNot:                    "BinOp_Not",
	BinOpFourStateLogicEqual:    "BinOp_FourStateLogicEqual",
	BinOpFourStateLogicNotEqual: "BinOp_FourStateLogicNotEqual",
	BinOpLogicAnd:               "BinOp_LogicAnd",
	BinOpLogicOr:                "BinOp_LogicOr",
	BinOpBitwAnd:                "BinOp_BitwAnd",
	BinOpBitwOr:                 "BinOp_BitwOr",
	BinOpBitwXor:                "BinOp_BitwXor",
	BinOpBitwXnor:               "BinOp_BitwXnor",
	BinOpShiftLeft:              "BinOp_ShiftLeft",
	BinOpShiftRight:             "BinOp_ShiftRight",
	BinOpArithShiftLeft:         "BinOp_ArithShiftLeft",
	BinOpArithShiftRight:        "BinOp_ArithShiftRight",
	OrOperator:                  "Or_operator",
	CommaOperator:               "Comma_operator",
	IntConst:                    "IntConst",
	RealConst:                   "RealConst",
	StringLiteral:               "StringLiteral",
	NullKeyword:                 "Null_keyword",
	Number1Tickb0:               "Number_1Tickb0",
	Number1TickB0:               "Number_1TickB0",
	NumberTickb0:                "Number_Tickb0",
	NumberTickB0:                "Number_TickB0",
	NumberTick0:                 "Number_Tick0",
	Number1Tickb1:               "Number_1Tickb1",
	Number1TickB1:               "Number_1TickB1",
	NumberTickb1:                "Number_Tickb1",
	NumberTickB1:                "Number_TickB1",
	NumberTick1:                 "Number_Tick1",
	StringConst:                 "StringConst",
	Select:                      "Select",
	BitSelect:                   "Bit_select",
	PartSelectRange:             "Part_select_range",
	ConstantRange:               "Constant_range",
	ConstantIndexedRange:        "Constant_indexed_range",
	IncPartSelectOp:             "IncPartSelectOp",
	DecPartSelectOp:             "DecPartSelectOp",
	SystemTaskNames:             "System_task_names",
	VariableLvalue:              "Variable_lvalue",
	Concatenation:               "Concatenation",
	MultipleConcatenation:       "Multiple_concatenation",
}

// String returns the canonical grammar name of t.
func (t Tag) String() string {
	if t < numTags {
		return tagName[t]
	}

	return "Invalid"
}

// Valid reports whether t names a known grammar category other than
// [Invalid].
func (t Tag) Valid() bool { return t > Invalid && t < numTags }

// Tags returns an iterator over every valid tag in declaration order.
func Tags() iter.Seq[Tag] {
	return func(yield func(Tag) bool) {
		for t := Invalid + 1; t < numTags; t++ {
			if !yield(t) {
				return
			}
		}
	}
}

// tagIndex maps canonical names, and unambiguous normalized spellings of
// them, to tags. Keys that normalize identically for more than one tag (the
// scalar literal variants differ only by letter case) map to [Invalid] and
// must be spelled canonically.
var tagIndex = sync.OnceValue(func() map[string]Tag {
	index := make(map[string]Tag, 2*int(numTags))

	for t := range Tags() {
		key := tagKey(t.String())
		if prev, ok := index[key]; ok && prev != t {
			index[key] = Invalid
		} else {
			index[key] = t
		}
	}

	for t := range Tags() {
		index[t.String()] = t
	}

	return index
})

func tagKey(s string) string {
	return strings.ReplaceAll(strcase.ToSnake(strings.TrimSpace(s)), "_", "")
}

// ParseTag returns the tag named by s.
//
// The canonical grammar name always matches. Other spellings are accepted
// when they differ only by letter case or word separators, so
// "constant-expression", "ConstantExpression", and "constant_expression"
// all name [ConstantExpression].
func ParseTag(s string) (Tag, bool) {
	index := tagIndex()

	if t, ok := index[s]; ok && t.Valid() {
		return t, true
	}

	t, ok := index[tagKey(s)]

	return t, ok && t.Valid()
}
