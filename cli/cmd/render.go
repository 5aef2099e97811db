package cmd

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/tree"

	"github.com/ardnew/svexpr/ir"
)

var (
	rootStyle = lipgloss.NewStyle().Bold(true)
	kindStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))
	enumStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// renderTree draws the IR of one expression beneath a root labeled name.
func renderTree(name string, d ir.Doc) string {
	t := tree.Root(name).
		RootStyle(rootStyle).
		Enumerator(tree.RoundedEnumerator).
		EnumeratorStyle(enumStyle)

	if d.Kind == "" {
		t.Child("<nil>")
	} else {
		t.Child(branch(d))
	}

	return t.String()
}

// branch returns d as a tree node, or as a plain label when d has no
// operands.
func branch(d ir.Doc) any {
	if len(d.Operands) == 0 {
		return label(d)
	}

	t := tree.Root(label(d)).
		Enumerator(tree.RoundedEnumerator).
		EnumeratorStyle(enumStyle)

	for _, o := range d.Operands {
		t.Child(branch(o))
	}

	return t
}

func label(d ir.Doc) string {
	kind := kindStyle.Render(d.Kind)

	switch d.Kind {
	case ir.KindOperation.String():
		return kind + " " + d.Op
	case ir.KindConstant.String():
		return kind + " " + d.Value
	case ir.KindPartSelect.String():
		return kind + " " + d.Ref + "[:]"
	case ir.KindIndexedPartSelect.String():
		return kind + " " + d.Ref + "[" + d.Direction + "]"
	default:
		return kind + " " + d.Name
	}
}
