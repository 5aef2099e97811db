package ir

import "strings"

// Doc is a parent-free encoding of an IR subtree for printing and
// structural comparison. Node identities are omitted, so two independently
// built subtrees with the same shape encode equally.
type Doc struct {
	Kind      string `json:"kind"                yaml:"kind"`
	Op        string `json:"op,omitempty"        yaml:"op,omitempty"`
	Value     string `json:"value,omitempty"     yaml:"value,omitempty"`
	Name      string `json:"name,omitempty"      yaml:"name,omitempty"`
	Ref       string `json:"ref,omitempty"       yaml:"ref,omitempty"`
	Direction string `json:"direction,omitempty" yaml:"direction,omitempty"`
	Constant  bool   `json:"constant,omitempty"  yaml:"constant,omitempty"`
	Operands  []Doc  `json:"operands,omitempty"  yaml:"operands,omitempty"`
}

// Encode returns the Doc of the subtree rooted at n. A nil node encodes as
// the zero Doc.
func Encode(n Node) Doc {
	if n == nil {
		return Doc{}
	}

	d := Doc{Kind: n.Kind().String()}

	switch t := n.(type) {
	case *Operation:
		d.Op = t.op.String()
	case *Constant:
		d.Value = t.text
	case *RefObj:
		d.Name = t.name
	case *BitSelect:
		d.Name = t.name
	case *PartSelect:
		d.Constant = t.constant
		if r := t.Ref(); r != nil {
			d.Ref = r.name
		}
	case *IndexedPartSelect:
		d.Constant = t.constant
		d.Direction = t.dir.String()
		if r := t.Ref(); r != nil {
			d.Ref = r.name
		}
	case *SysFuncCall:
		d.Name = t.name
	}

	for _, c := range Children(n) {
		d.Operands = append(d.Operands, Encode(c))
	}

	return d
}

// String renders d compactly: operations as "(Op a b)", constants as their
// encoded text, references and calls by name, and selects in bracket form
// such as "a[7:0]" or "a[4+:2]". The zero Doc renders as "<nil>".
func (d Doc) String() string {
	var sb strings.Builder

	d.write(&sb)

	return sb.String()
}

func (d Doc) write(sb *strings.Builder) {
	operand := func(i int) {
		if i < len(d.Operands) {
			d.Operands[i].write(sb)
		} else {
			sb.WriteString("<nil>")
		}
	}

	switch d.Kind {
	case "":
		sb.WriteString("<nil>")
	case KindOperation.String():
		sb.WriteString("(" + d.Op)

		for _, o := range d.Operands {
			sb.WriteByte(' ')
			o.write(sb)
		}

		sb.WriteByte(')')
	case KindConstant.String():
		sb.WriteString(d.Value)
	case KindBitSelect.String():
		sb.WriteString(d.Name + "[")
		operand(0)
		sb.WriteByte(']')
	case KindPartSelect.String():
		sb.WriteString(d.Ref + "[")
		operand(0)
		sb.WriteByte(':')
		operand(1)
		sb.WriteByte(']')
	case KindIndexedPartSelect.String():
		sb.WriteString(d.Ref + "[")
		operand(0)
		sb.WriteString(d.Direction)
		operand(1)
		sb.WriteByte(']')
	default:
		sb.WriteString(d.Name)
	}
}
