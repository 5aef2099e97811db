package walk

import "github.com/ardnew/svexpr/syntax"

// Visitor builds a result of type T from each decoded form.
type Visitor[T any] interface {
	Empty(f Form) T
	Unary(f Form) T
	Binary(f Form) T
	Events(f Form) T
	Literal(f Form) T
	Name(f Form) T
	Postfix(f Form) T
	SysCall(f Form) T
	Concat(f Form) T
}

// Walk decodes node and dispatches the form to the matching method of v.
// Visitors recurse by calling Walk on the operand nodes of the form.
func Walk[T any](v Visitor[T], tree *syntax.Tree, node syntax.NodeID) T {
	return Dispatch(v, Decode(tree, node))
}

// Dispatch calls the method of v that matches the shape of f.
func Dispatch[T any](v Visitor[T], f Form) T {
	switch f.Shape {
	case Unary:
		return v.Unary(f)
	case Binary:
		return v.Binary(f)
	case Events:
		return v.Events(f)
	case Literal:
		return v.Literal(f)
	case Name:
		return v.Name(f)
	case Postfix:
		return v.Postfix(f)
	case SysCall:
		return v.SysCall(f)
	case Concat:
		return v.Concat(f)
	default:
		return v.Empty(f)
	}
}
