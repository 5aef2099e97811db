package syntax

import (
	"slices"
	"testing"
)

func TestTag_String_AllNamed(t *testing.T) {
	for tag := range Tags() {
		if tag.String() == "" || tag.String() == "Invalid" {
			t.Errorf("tag %d has no name", tag)
		}
	}

	if got := Tag(9999).String(); got != "Invalid" {
		t.Errorf("out-of-range tag String() = %q", got)
	}
}

func TestParseTag(t *testing.T) {
	tests := []struct {
		in   string
		want Tag
		ok   bool
	}{
		{"Constant_expression", ConstantExpression, true},
		{"constant_expression", ConstantExpression, true},
		{"ConstantExpression", ConstantExpression, true},
		{"constant-expression", ConstantExpression, true},
		{"BinOp_Plus", BinOpPlus, true},
		{"binop_plus", BinOpPlus, true},
		{"IntConst", IntConst, true},
		{"Number_1TickB1", Number1TickB1, true},
		{"Number_1Tickb1", Number1Tickb1, true},
		{"number_1tickb1", Invalid, false},
		{"Invalid", Invalid, false},
		{"nonsense", Invalid, false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := ParseTag(tt.in)
			if got != tt.want || ok != tt.ok {
				t.Errorf("ParseTag(%q) = (%v, %v), want (%v, %v)", tt.in, got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestParseTag_RoundTripsCanonicalNames(t *testing.T) {
	for tag := range Tags() {
		got, ok := ParseTag(tag.String())
		if !ok || got != tag {
			t.Errorf("ParseTag(%q) = (%v, %v)", tag.String(), got, ok)
		}
	}
}

func TestBuilder_LinksChildrenInOrder(t *testing.T) {
	b := NewBuilder("top.sv")

	l := b.Leaf(IntConst, "3")
	op := b.Leaf(BinOpPlus, "")
	r := b.Leaf(IntConst, "4")
	root := b.Node(ConstantExpression, l, 0, op, r)

	b.SetLocation(l, 7, 3)

	tree := b.Tree()

	if got := slices.Collect(tree.Children(root)); !slices.Equal(got, []NodeID{l, op, r}) {
		t.Fatalf("Children = %v", got)
	}
	if tree.Parent(op) != root || tree.Parent(root) != 0 {
		t.Errorf("unexpected parent links")
	}
	if tree.Sibling(r) != 0 {
		t.Errorf("last child has sibling %d", tree.Sibling(r))
	}
	if loc := tree.Location(l); loc.String() != "top.sv:7:3" {
		t.Errorf("Location = %q", loc)
	}
	if got := slices.Collect(tree.Roots()); !slices.Equal(got, []NodeID{root}) {
		t.Errorf("Roots = %v", got)
	}
}

func TestBuilder_RelinkPanics(t *testing.T) {
	b := NewBuilder("")
	leaf := b.Leaf(StringConst, "x")
	b.Node(Primary, leaf)

	defer func() {
		if recover() == nil {
			t.Error("expected panic when linking a child twice")
		}
	}()

	b.Node(Primary, leaf)
}

func TestTree_NilSafe(t *testing.T) {
	var tree *Tree

	if tree.Tag(1) != Invalid || tree.Child(1) != 0 || tree.Symbol(1) != "" {
		t.Error("nil tree returned non-zero values")
	}
	if tree.Len() != 0 || tree.Valid(1) {
		t.Error("nil tree reports nodes")
	}

	for range tree.Children(1) {
		t.Error("nil tree yielded children")
	}
}
