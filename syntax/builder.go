package syntax

// Builder constructs a [Tree] bottom-up. Leaves are created first and then
// linked beneath their parent with [Builder.Node].
//
// A Builder is not safe for concurrent use. The Tree it returns is.
type Builder struct {
	tree *Tree
}

// NewBuilder returns a Builder for a tree parsed from file.
func NewBuilder(file string) *Builder {
	return &Builder{tree: &Tree{file: file, nodes: make([]node, 1, 64)}}
}

// Leaf appends a childless node carrying symbol text sym.
func (b *Builder) Leaf(tag Tag, sym string) NodeID {
	b.tree.nodes = append(b.tree.nodes, node{tag: tag, sym: sym})

	return NodeID(len(b.tree.nodes) - 1)
}

// Node appends a node with the given children linked in order. Zero ids in
// children are skipped. Each child may be linked beneath exactly one parent;
// Node panics if a child is already linked, since that would corrupt the
// sibling chain of its first parent.
func (b *Builder) Node(tag Tag, children ...NodeID) NodeID {
	id := b.Leaf(tag, "")

	var prev NodeID

	for _, c := range children {
		p := b.tree.at(c)
		if p == nil {
			continue
		}

		if p.parent != 0 || c == id {
			panic("syntax: node " + tag.String() + " links child " +
				p.tag.String() + " that already has a parent")
		}

		p.parent = id

		if prev == 0 {
			b.tree.nodes[id].child = c
		} else {
			b.tree.nodes[prev].sibling = c
		}

		prev = c
	}

	return id
}

// SetSymbol replaces the symbol text of n.
func (b *Builder) SetSymbol(n NodeID, sym string) *Builder {
	if p := b.tree.at(n); p != nil {
		p.sym = sym
	}

	return b
}

// SetLocation records the source line and column of n.
func (b *Builder) SetLocation(n NodeID, line, column int) *Builder {
	if p := b.tree.at(n); p != nil {
		p.line, p.column = int32(line), int32(column)
	}

	return b
}

// Tree returns the tree built so far. Nodes added afterward are visible
// through the returned pointer, so callers should stop building before
// sharing it across goroutines.
func (b *Builder) Tree() *Tree { return b.tree }
