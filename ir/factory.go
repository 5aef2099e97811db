package ir

import (
	"sync/atomic"

	"github.com/google/uuid"
)

// Factory creates IR nodes.
//
// Each factory has a random handle and numbers the nodes it creates
// sequentially from 1, so nodes made by distinct factories never share an
// (handle, id) pair. A Factory is safe for concurrent use, but concurrent
// workers should each own one to keep numbering deterministic.
type Factory struct {
	handle uuid.UUID
	next   atomic.Uint64
	made   [numKinds]atomic.Uint64
}

// NewFactory returns a Factory with a fresh random handle.
func NewFactory() *Factory {
	return &Factory{handle: uuid.New()}
}

// Handle returns the identity of f.
func (f *Factory) Handle() uuid.UUID { return f.handle }

// Made returns the number of nodes of kind k created by f.
func (f *Factory) Made(k Kind) uint64 {
	if k >= numKinds {
		return 0
	}

	return f.made[k].Load()
}

func (f *Factory) base(k Kind, parent Node) base {
	f.made[k].Add(1)

	return base{id: f.next.Add(1), parent: parent}
}

// Operation returns an Operation with no operands.
func (f *Factory) Operation(parent Node, op Opcode) *Operation {
	return &Operation{base: f.base(KindOperation, parent), op: op}
}

// Append adds operands to the end of the operand list of o, skipping nil.
func (f *Factory) Append(o *Operation, operands ...Node) {
	for _, n := range operands {
		if n != nil {
			o.operands = append(o.operands, n)
		}
	}
}

// Constant returns a Constant carrying the encoded literal text.
func (f *Factory) Constant(parent Node, text string) *Constant {
	return &Constant{base: f.base(KindConstant, parent), text: text}
}

// RefObj returns a reference to name.
func (f *Factory) RefObj(parent Node, name string) *RefObj {
	return &RefObj{base: f.base(KindRefObj, parent), name: name}
}

// BitSelect returns name[index]. The index expression is built by the index
// function, which receives the new select as the parent for whatever it
// creates. A nil function leaves the index unset.
func (f *Factory) BitSelect(parent Node, name string, index func(self Node) Node) *BitSelect {
	s := &BitSelect{base: f.base(KindBitSelect, parent), name: name}
	if index != nil {
		s.index = index(s)
	}

	return s
}

// PartSelect returns a part-select under ref. The bounds are built by the
// bounds function with the new select as parent.
func (f *Factory) PartSelect(
	ref *RefObj,
	constant bool,
	bounds func(self Node) (left, right Node),
) *PartSelect {
	s := &PartSelect{base: f.base(KindPartSelect, asNode(ref)), constant: constant}
	if bounds != nil {
		s.left, s.right = bounds(s)
	}

	return s
}

// IndexedPartSelect returns an indexed part-select under ref. The base and
// width are built by the operands function with the new select as parent.
func (f *Factory) IndexedPartSelect(
	ref *RefObj,
	dir Direction,
	constant bool,
	operands func(self Node) (start, width Node),
) *IndexedPartSelect {
	s := &IndexedPartSelect{
		base:     f.base(KindIndexedPartSelect, asNode(ref)),
		dir:      dir,
		constant: constant,
	}
	if operands != nil {
		s.start, s.width = operands(s)
	}

	return s
}

// SysFuncCall returns a call of the system function name.
func (f *Factory) SysFuncCall(parent Node, name string) *SysFuncCall {
	return &SysFuncCall{base: f.base(KindSysFuncCall, parent), name: name}
}

func asNode(r *RefObj) Node {
	if r == nil {
		return nil
	}

	return r
}
