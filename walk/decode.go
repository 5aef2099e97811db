package walk

import (
	"github.com/ardnew/svexpr/classify"
	"github.com/ardnew/svexpr/syntax"
)

// Decode reduces node to the form its first child selects.
//
// Pass-through wrappers, and operand chains whose first operand has no
// operator sibling, are skipped iteratively, so the returned form describes
// the innermost node with content. A node without children decodes by its
// own tag: a bare StringConst is a Name and a bare literal is a Literal.
// Anything unrecognized, including node 0, decodes as Empty.
func Decode(tree *syntax.Tree, node syntax.NodeID) Form {
	for tree.Valid(node) {
		child := tree.Child(node)
		if child == 0 {
			return leaf(tree, node)
		}

		tag := tree.Tag(child)

		switch {
		case classify.PassThrough(tag):
			node = child

			continue

		case tag == syntax.Expression || tag == syntax.ConstantExpression:
			op := tree.Sibling(child)
			if op == 0 {
				node = child

				continue
			}

			return Form{
				Shape: Binary,
				Node:  node,
				At:    op,
				Op:    tree.Tag(op),
				Left:  child,
				Right: tree.Sibling(op),
			}

		case classify.IsUnary(tag):
			return Form{
				Shape:   Unary,
				Node:    node,
				At:      child,
				Op:      tag,
				Operand: tree.Sibling(child),
			}

		case tag == syntax.EventExpression:
			return events(tree, node, child)

		case classify.IsLiteral(tag):
			return Form{
				Shape: Literal,
				Node:  node,
				At:    child,
				Tag:   tag,
				Text:  tree.Symbol(child),
			}

		case tag == syntax.StringConst:
			return Form{
				Shape: Name,
				Node:  node,
				At:    child,
				Ident: ident(tree, child),
			}

		case tag == syntax.VariableLvalue:
			f := Form{Shape: Postfix, Node: node, At: child, Operand: child}
			if op := tree.Sibling(child); classify.IsPost(tree.Tag(op)) {
				f.Op = tree.Tag(op)
			}

			return f

		case tag == syntax.SystemTaskNames:
			return Form{
				Shape: SysCall,
				Node:  node,
				At:    child,
				Text:  tree.Symbol(tree.Child(child)),
			}

		case tag == syntax.Concatenation || tag == syntax.MultipleConcatenation:
			f := Form{Shape: Concat, Node: node, At: child, Tag: tag}
			for c := range tree.Children(child) {
				f.Operands = append(f.Operands, c)
			}

			return f

		default:
			return Form{Shape: Empty, Node: node, At: child}
		}
	}

	return Form{Shape: Empty, Node: node}
}

func leaf(tree *syntax.Tree, node syntax.NodeID) Form {
	tag := tree.Tag(node)

	switch {
	case tag == syntax.StringConst:
		return Form{
			Shape: Name,
			Node:  node,
			At:    node,
			Ident: Ident{Segments: []string{tree.Symbol(node)}},
		}

	case classify.IsLiteral(tag):
		return Form{
			Shape: Literal,
			Node:  node,
			At:    node,
			Tag:   tag,
			Text:  tree.Symbol(node),
		}

	default:
		return Form{Shape: Empty, Node: node, At: node}
	}
}

// events decodes an event list whose first operand is first. Operands and
// combinators alternate; decoding stops at the first sibling that is not a
// combinator.
func events(tree *syntax.Tree, node, first syntax.NodeID) Form {
	f := Form{Shape: Events, Node: node, At: first, Operands: []syntax.NodeID{first}}

	for op := tree.Sibling(first); op != 0; {
		tag := tree.Tag(op)
		if !classify.IsCombinator(tag) {
			break
		}

		rhs := tree.Sibling(op)
		f.Combinators = append(f.Combinators, tag)
		f.Operands = append(f.Operands, rhs)

		if rhs == 0 {
			break
		}

		op = tree.Sibling(rhs)
	}

	return f
}

// ident collects the dotted name beginning at first and the first select
// clause that carries an expression.
func ident(tree *syntax.Tree, first syntax.NodeID) Ident {
	id := Ident{Segments: []string{tree.Symbol(first)}}

	for n := tree.Sibling(first); n != 0; n = tree.Sibling(n) {
		switch tree.Tag(n) {
		case syntax.StringConst:
			id.Segments = append(id.Segments, tree.Symbol(n))
		case syntax.Select:
			if selectClause(tree, n, &id) {
				return id
			}
		}
	}

	return id
}

// selectClause scans the children of a Select node. An empty Bit_select is
// skipped; the first usable clause is recorded in id.
func selectClause(tree *syntax.Tree, sel syntax.NodeID, id *Ident) bool {
	for c := range tree.Children(sel) {
		switch tree.Tag(c) {
		case syntax.BitSelect:
			if index := tree.Child(c); index != 0 {
				id.Select = BitSelect
				id.Index = index

				return true
			}

		case syntax.PartSelectRange:
			rng := tree.Child(c)
			lhs := tree.Child(rng)

			if tree.Tag(rng) == syntax.ConstantRange {
				id.Select = PartSelect
				id.Left = lhs
				id.Right = tree.Sibling(lhs)

				return true
			}

			op := tree.Sibling(lhs)
			id.Select = IndexedSelect
			id.Left = lhs
			id.Direction = tree.Tag(op)
			id.Right = tree.Sibling(op)

			return true
		}
	}

	return false
}
