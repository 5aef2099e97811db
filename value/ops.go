package value

import (
	"math"
	"strings"
)

// Every operator returns Invalid when any operand is Invalid or when the
// operand kinds do not support the operation. None of them panic.

// UPlus returns a fresh rvalue copy of v.
func UPlus(v Value) Value {
	if !v.IsValid() {
		return Value{}
	}

	return v.AsRvalue()
}

// UMinus returns the arithmetic negation of v.
func UMinus(v Value) Value {
	switch v.kind {
	case Integer:
		return integer(-v.operand(), v.signed, v.width)
	case Real:
		return Float(-v.real)
	default:
		return Value{}
	}
}

// UNot returns the logical negation of v as 0 or 1.
func UNot(v Value) Value {
	switch v.kind {
	case Integer, Real:
		return Bool(!v.Truth())
	default:
		return Value{}
	}
}

// UTilda returns the bitwise complement of v within its width.
func UTilda(v Value) Value {
	if v.kind != Integer {
		return Value{}
	}

	return integer(^v.bits, v.signed, v.width)
}

// Incr returns v plus one, preserving kind, width, and mutability.
func Incr(v Value) Value { return step(v, 1) }

// Decr returns v minus one, preserving kind, width, and mutability.
func Decr(v Value) Value { return step(v, -1) }

func step(v Value, d int64) Value {
	switch v.kind {
	case Integer:
		r := integer(v.operand()+uint64(d), v.signed, v.width)
		r.lvalue = v.lvalue

		return r
	case Real:
		r := Float(v.real + float64(d))
		r.lvalue = v.lvalue

		return r
	default:
		return Value{}
	}
}

// operand returns the bits of an Integer sign-extended to 64 bits when
// signed.
func (v Value) operand() uint64 { return uint64(v.sext()) }

func integer(bits uint64, signed bool, width uint8) Value {
	return Value{kind: Integer, bits: bits & mask(width), signed: signed, width: width}
}

type class uint8

const (
	classInvalid class = iota
	classInteger
	classReal
	classString
)

// classify reports how a binary operator should treat a and b: as two
// integers, as reals (either operand real), as two strings, or not at all.
func classify(a, b Value) class {
	switch {
	case a.kind == Invalid || b.kind == Invalid:
		return classInvalid
	case a.kind == String && b.kind == String:
		return classString
	case a.kind == String || b.kind == String:
		return classInvalid
	case a.kind == Real || b.kind == Real:
		return classReal
	default:
		return classInteger
	}
}

func arith(
	a, b Value,
	fi func(x, y uint64, signed bool) (uint64, bool),
	ff func(x, y float64) (float64, bool),
) Value {
	switch classify(a, b) {
	case classInteger:
		signed := a.signed && b.signed

		r, ok := fi(a.operand(), b.operand(), signed)
		if !ok {
			return Value{}
		}

		return integer(r, signed, 0)

	case classReal:
		if ff == nil {
			return Value{}
		}

		r, ok := ff(a.Float64(), b.Float64())
		if !ok {
			return Value{}
		}

		return Float(r)

	default:
		return Value{}
	}
}

// Add returns a + b.
func Add(a, b Value) Value {
	return arith(a, b,
		func(x, y uint64, _ bool) (uint64, bool) { return x + y, true },
		func(x, y float64) (float64, bool) { return x + y, true })
}

// Sub returns a - b.
func Sub(a, b Value) Value {
	return arith(a, b,
		func(x, y uint64, _ bool) (uint64, bool) { return x - y, true },
		func(x, y float64) (float64, bool) { return x - y, true })
}

// Mult returns a * b.
func Mult(a, b Value) Value {
	return arith(a, b,
		func(x, y uint64, _ bool) (uint64, bool) { return x * y, true },
		func(x, y float64) (float64, bool) { return x * y, true })
}

// Div returns a / b, truncating for integers. Division by zero is Invalid.
func Div(a, b Value) Value {
	return arith(a, b,
		func(x, y uint64, signed bool) (uint64, bool) {
			switch {
			case y == 0:
				return 0, false
			case signed:
				return uint64(int64(x) / int64(y)), true
			default:
				return x / y, true
			}
		},
		func(x, y float64) (float64, bool) { return x / y, y != 0 })
}

// Mod returns the integer remainder of a / b with the sign of a. Modulo by
// zero and real operands are Invalid.
func Mod(a, b Value) Value {
	return arith(a, b,
		func(x, y uint64, signed bool) (uint64, bool) {
			switch {
			case y == 0:
				return 0, false
			case signed:
				return uint64(int64(x) % int64(y)), true
			default:
				return x % y, true
			}
		},
		nil)
}

// Power returns a ** b.
func Power(a, b Value) Value {
	return arith(a, b, ipow, func(x, y float64) (float64, bool) {
		r := math.Pow(x, y)

		return r, !math.IsNaN(r)
	})
}

func ipow(x, y uint64, signed bool) (uint64, bool) {
	if signed && int64(y) < 0 {
		switch int64(x) {
		case 0:
			return 0, false
		case 1:
			return 1, true
		case -1:
			if y&1 == 1 {
				return x, true
			}

			return 1, true
		default:
			return 0, true
		}
	}

	r := uint64(1)
	for ; y > 0; y >>= 1 {
		if y&1 == 1 {
			r *= x
		}

		x *= x
	}

	return r, true
}

func compare(a, b Value) (int, bool) {
	switch classify(a, b) {
	case classInteger:
		if a.signed && b.signed {
			x, y := int64(a.operand()), int64(b.operand())

			return cmp3(x < y, x > y), true
		}

		x, y := a.operand(), b.operand()

		return cmp3(x < y, x > y), true

	case classReal:
		x, y := a.Float64(), b.Float64()

		return cmp3(x < y, x > y), true

	case classString:
		return strings.Compare(a.str, b.str), true

	default:
		return 0, false
	}
}

func cmp3(lt, gt bool) int {
	switch {
	case lt:
		return -1
	case gt:
		return 1
	default:
		return 0
	}
}

func relation(a, b Value, pred func(int) bool) Value {
	c, ok := compare(a, b)
	if !ok {
		return Value{}
	}

	return Bool(pred(c))
}

// Greater returns a > b as 0 or 1.
func Greater(a, b Value) Value { return relation(a, b, func(c int) bool { return c > 0 }) }

// GreaterEqual returns a >= b as 0 or 1.
func GreaterEqual(a, b Value) Value { return relation(a, b, func(c int) bool { return c >= 0 }) }

// Less returns a < b as 0 or 1.
func Less(a, b Value) Value { return relation(a, b, func(c int) bool { return c < 0 }) }

// LessEqual returns a <= b as 0 or 1.
func LessEqual(a, b Value) Value { return relation(a, b, func(c int) bool { return c <= 0 }) }

// Equal returns a == b as 0 or 1.
func Equal(a, b Value) Value { return relation(a, b, func(c int) bool { return c == 0 }) }

// NotEqual returns a != b as 0 or 1.
func NotEqual(a, b Value) Value { return relation(a, b, func(c int) bool { return c != 0 }) }

// LogAnd returns a && b as 0 or 1. Both operands are always required.
func LogAnd(a, b Value) Value {
	if !a.IsValid() || !b.IsValid() {
		return Value{}
	}

	return Bool(a.Truth() && b.Truth())
}

// LogOr returns a || b as 0 or 1. Both operands are always required.
func LogOr(a, b Value) Value {
	if !a.IsValid() || !b.IsValid() {
		return Value{}
	}

	return Bool(a.Truth() || b.Truth())
}

func bitwise(a, b Value, f func(x, y uint64) uint64) Value {
	if classify(a, b) != classInteger {
		return Value{}
	}

	var width uint8
	if a.width != 0 && b.width != 0 {
		width = max(a.width, b.width)
	}

	return integer(f(a.operand(), b.operand()), a.signed && b.signed, width)
}

// BitAnd returns a & b.
func BitAnd(a, b Value) Value { return bitwise(a, b, func(x, y uint64) uint64 { return x & y }) }

// BitOr returns a | b.
func BitOr(a, b Value) Value { return bitwise(a, b, func(x, y uint64) uint64 { return x | y }) }

// BitXor returns a ^ b.
func BitXor(a, b Value) Value { return bitwise(a, b, func(x, y uint64) uint64 { return x ^ y }) }

// BitXnor returns a ~^ b.
func BitXnor(a, b Value) Value { return bitwise(a, b, func(x, y uint64) uint64 { return ^(x ^ y) }) }

func shift(a, b Value, f func(v Value, n uint64) uint64) Value {
	if classify(a, b) != classInteger {
		return Value{}
	}

	return integer(f(a, b.bits), a.signed, a.width)
}

// ShiftLeft returns a << b.
func ShiftLeft(a, b Value) Value {
	return shift(a, b, func(v Value, n uint64) uint64 {
		if n >= 64 {
			return 0
		}

		return v.bits << n
	})
}

// ShiftRight returns a >> b, filling with zeros.
func ShiftRight(a, b Value) Value {
	return shift(a, b, func(v Value, n uint64) uint64 {
		if n >= 64 {
			return 0
		}

		return (v.bits & mask(v.width)) >> n
	})
}

// ArithShiftLeft returns a <<< b, which is identical to a << b.
func ArithShiftLeft(a, b Value) Value { return ShiftLeft(a, b) }

// ArithShiftRight returns a >>> b, filling with the sign bit when a is
// signed and with zeros otherwise.
func ArithShiftRight(a, b Value) Value {
	if !a.signed {
		return ShiftRight(a, b)
	}

	return shift(a, b, func(v Value, n uint64) uint64 {
		return uint64(v.sext() >> min(n, 63))
	})
}

// Slice returns bits [hi:lo] of an Integer as an unsigned value of width
// hi-lo+1. Bounds may be given in either order. Out-of-range bounds, or a
// non-Integer v, yield Invalid.
func Slice(v Value, hi, lo int64) Value {
	if v.kind != Integer {
		return Value{}
	}

	if hi < lo {
		hi, lo = lo, hi
	}

	limit := int64(64)
	if v.width != 0 {
		limit = int64(v.width)
	}

	if lo < 0 || hi >= limit {
		return Value{}
	}

	return Sized(v.bits>>uint(lo), int(hi-lo+1))
}
