package syntax

import (
	"fmt"
	"iter"
)

// NodeID addresses a node within a [Tree]. The zero NodeID is never a valid
// node and marks an absent child or sibling link.
type NodeID uint32

// Location is the source position a node was parsed from.
type Location struct {
	File   string `json:"file,omitempty"   yaml:"file,omitempty"`
	Line   int    `json:"line,omitempty"   yaml:"line,omitempty"`
	Column int    `json:"column,omitempty" yaml:"column,omitempty"`
}

func (l Location) String() string {
	switch {
	case l.Line == 0:
		return l.File
	case l.Column == 0:
		return fmt.Sprintf("%s:%d", l.File, l.Line)
	default:
		return fmt.Sprintf("%s:%d:%d", l.File, l.Line, l.Column)
	}
}

type node struct {
	sym     string
	child   NodeID
	sibling NodeID
	parent  NodeID
	line    int32
	column  int32
	tag     Tag
}

// Tree is an immutable arena of syntax nodes linked by first-child and
// next-sibling references. Operator chains are encoded as alternating
// operand and operator siblings beneath a single parent.
//
// All accessors are safe on a nil *Tree and on out-of-range ids, returning
// zero values.
type Tree struct {
	file  string
	nodes []node
}

func (t *Tree) at(n NodeID) *node {
	if t == nil || n == 0 || int(n) >= len(t.nodes) {
		return nil
	}

	return &t.nodes[n]
}

// File returns the source file name the tree was built for.
func (t *Tree) File() string {
	if t == nil {
		return ""
	}

	return t.file
}

// Len returns the number of nodes in the tree.
func (t *Tree) Len() int {
	if t == nil || len(t.nodes) == 0 {
		return 0
	}

	return len(t.nodes) - 1
}

// Valid reports whether n addresses a node in t.
func (t *Tree) Valid(n NodeID) bool { return t.at(n) != nil }

// Tag returns the grammar category of n.
func (t *Tree) Tag(n NodeID) Tag {
	if p := t.at(n); p != nil {
		return p.tag
	}

	return Invalid
}

// Symbol returns the source text attached to n, if any.
func (t *Tree) Symbol(n NodeID) string {
	if p := t.at(n); p != nil {
		return p.sym
	}

	return ""
}

// Child returns the first child of n.
func (t *Tree) Child(n NodeID) NodeID {
	if p := t.at(n); p != nil {
		return p.child
	}

	return 0
}

// Sibling returns the next sibling of n.
func (t *Tree) Sibling(n NodeID) NodeID {
	if p := t.at(n); p != nil {
		return p.sibling
	}

	return 0
}

// Parent returns the node n was linked beneath, or zero for a root.
func (t *Tree) Parent(n NodeID) NodeID {
	if p := t.at(n); p != nil {
		return p.parent
	}

	return 0
}

// Location returns the source position of n.
func (t *Tree) Location(n NodeID) Location {
	p := t.at(n)
	if p == nil {
		return Location{File: t.File()}
	}

	return Location{File: t.file, Line: int(p.line), Column: int(p.column)}
}

// Children returns an iterator over the direct children of n in order.
func (t *Tree) Children(n NodeID) iter.Seq[NodeID] {
	return func(yield func(NodeID) bool) {
		for c := t.Child(n); c != 0; c = t.Sibling(c) {
			if !yield(c) {
				return
			}
		}
	}
}

// Roots returns an iterator over nodes that have no parent, in creation
// order.
func (t *Tree) Roots() iter.Seq[NodeID] {
	return func(yield func(NodeID) bool) {
		for i := 1; i <= t.Len(); i++ {
			if t.nodes[i].parent == 0 && !yield(NodeID(i)) {
				return
			}
		}
	}
}
