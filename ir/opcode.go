package ir

//go:generate go tool stringer --type Opcode --trimprefix Op --output opcode_string.go

// Opcode identifies the operation performed by an [Operation]. Values match
// the operator type codes of the IEEE 1800 VPI object model.
type Opcode int

const (
	OpNone        Opcode = 0
	OpMinus       Opcode = 1
	OpPlus        Opcode = 2
	OpNot         Opcode = 3
	OpBitNeg      Opcode = 4
	OpSub         Opcode = 11
	OpDiv         Opcode = 12
	OpMod         Opcode = 13
	OpEq          Opcode = 14
	OpNeq         Opcode = 15
	OpCaseEq      Opcode = 16
	OpCaseNeq     Opcode = 17
	OpGt          Opcode = 18
	OpGe          Opcode = 19
	OpLt          Opcode = 20
	OpLe          Opcode = 21
	OpLShift      Opcode = 22
	OpRShift      Opcode = 23
	OpAdd         Opcode = 24
	OpMult        Opcode = 25
	OpLogAnd      Opcode = 26
	OpLogOr       Opcode = 27
	OpBitAnd      Opcode = 28
	OpBitOr       Opcode = 29
	OpBitXor      Opcode = 30
	OpBitXnor     Opcode = 31
	OpConcat      Opcode = 33
	OpMultiConcat Opcode = 34
	OpEventOr     Opcode = 35
	OpNull        Opcode = 36
	OpList        Opcode = 37
	OpPosedge     Opcode = 39
	OpNegedge     Opcode = 40
	OpArithLShift Opcode = 41
	OpArithRShift Opcode = 42
	OpPower       Opcode = 43
	OpPostInc     Opcode = 62
	OpPreInc      Opcode = 63
	OpPostDec     Opcode = 64
	OpPreDec      Opcode = 65
)

// Direction is the direction of an indexed part-select.
type Direction int

const (
	PosIndexed Direction = 1 // base +: width
	NegIndexed Direction = 2 // base -: width
)

func (d Direction) String() string {
	switch d {
	case PosIndexed:
		return "+:"
	case NegIndexed:
		return "-:"
	default:
		return "?:"
	}
}
