// Package ir defines the structural intermediate representation produced by
// expression lowering.
//
// There are seven node kinds: [Operation], [Constant], [RefObj],
// [BitSelect], [PartSelect], [IndexedPartSelect], and [SysFuncCall]. Every
// node is created by a [Factory] with its parent already known; parents are
// never reassigned and operand lists only grow. The parent links therefore
// form a tree whose root's parent is whatever the caller supplied.
//
// Part-selects hang beneath a [RefObj] naming the selected object rather
// than the other way around:
//
//	RefObj(a)
//	└── PartSelect
//	    ├── Constant(INT:7)
//	    └── Constant(INT:0)
package ir
