// Package lower translates expression syntax trees into IR nodes.
//
// Lowering walks the same decoded forms as the evaluator but builds
// Operation, Constant, RefObj, select, and system call nodes instead of
// folding. Every node is created before its operands, which receive it as
// their parent, so the parent links of a lowered subtree are complete when
// [Lowerer.Lower] returns.
//
// Names bound to a valid value in the supplied scope are replaced by a
// Constant holding the encoded value unless constant substitution is
// disabled. This includes the operand of an increment or decrement. Select
// bounds and concatenation operands are always lowered without a scope.
//
// An operator sibling always produces an Operation. An operator tag with
// no mapping gets the Null opcode and keeps both operands.
package lower
