// Package syntax defines the generic syntax tree consumed by the expression
// engines.
//
// A [Tree] is an arena of nodes. Each node has a [Tag], optional symbol
// text, a first-child link, a next-sibling link, and a [Location]. There are
// no dedicated binary-operator nodes; an expression such as a+b is a parent
// whose children are the operand, the operator tag, and the second operand:
//
//	Constant_expression
//	├── Constant_expression   (a)
//	├── BinOp_Plus
//	└── Constant_expression   (b)
//
// Trees are built with [Builder] and are read-only afterward.
package syntax
