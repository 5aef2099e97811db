package value

import (
	"log/slog"
	"math"
	"strconv"
)

// Kind classifies a [Value].
type Kind uint8

const (
	Invalid Kind = iota
	Integer
	Real
	String
)

func (k Kind) String() string {
	switch k {
	case Integer:
		return "integer"
	case Real:
		return "real"
	case String:
		return "string"
	default:
		return "invalid"
	}
}

// Value is a folded compile-time value.
//
// The zero Value is Invalid. Values are plain data and are copied on
// assignment; [Value.Clone] exists to make that copy explicit at call sites
// that hand a value to a new owner.
type Value struct {
	str    string
	bits   uint64
	real   float64
	width  uint8
	kind   Kind
	signed bool
	lvalue bool
}

// Int returns a signed, unsized integer.
func Int(i int64) Value {
	return Value{kind: Integer, bits: uint64(i), signed: true}
}

// Uint returns an unsigned, unsized integer.
func Uint(u uint64) Value {
	return Value{kind: Integer, bits: u}
}

// Sized returns an unsigned integer truncated to width bits. A width of zero
// or above 64 yields an unsized value.
func Sized(u uint64, width int) Value {
	if width <= 0 || width > 64 {
		return Uint(u)
	}

	return Value{kind: Integer, bits: u & mask(uint8(width)), width: uint8(width)}
}

// Scalar returns a single-bit four-state literal value, 0 or 1.
func Scalar(bit uint8) Value {
	return Sized(uint64(bit&1), 1)
}

// Bool returns Uint(1) for true and Uint(0) for false.
func Bool(b bool) Value {
	if b {
		return Uint(1)
	}

	return Uint(0)
}

// Float returns a real value.
func Float(f float64) Value {
	return Value{kind: Real, real: f}
}

// Str returns a string value.
func Str(s string) Value {
	return Value{kind: String, str: s}
}

// Kind returns the kind of v.
func (v Value) Kind() Kind { return v.kind }

// IsValid reports whether v is anything other than Invalid.
func (v Value) IsValid() bool { return v.kind != Invalid }

// IsLvalue reports whether v was read from an addressable binding.
func (v Value) IsLvalue() bool { return v.lvalue }

// IsSigned reports whether an Integer value is signed.
func (v Value) IsSigned() bool { return v.signed }

// Width returns the bit width of a sized Integer, or zero if unsized.
func (v Value) Width() int { return int(v.width) }

// IsScalar reports whether v is a single-bit integer.
func (v Value) IsScalar() bool { return v.kind == Integer && v.width == 1 }

// AsLvalue returns a copy of v marked as addressable.
func (v Value) AsLvalue() Value {
	v.lvalue = true

	return v
}

// AsRvalue returns a copy of v with the addressable mark cleared.
func (v Value) AsRvalue() Value {
	v.lvalue = false

	return v
}

// Clone returns a deep copy of v that preserves kind and mutability.
func (v Value) Clone() Value { return v }

// Int64 returns an Integer as int64 (two's complement reinterpretation for
// unsigned values) or a Real truncated toward zero.
func (v Value) Int64() int64 {
	switch v.kind {
	case Integer:
		return v.sext()
	case Real:
		return int64(v.real)
	default:
		return 0
	}
}

// Uint64 returns the raw bits of an Integer.
func (v Value) Uint64() uint64 {
	if v.kind == Real {
		return uint64(v.real)
	}

	return v.bits
}

// Float64 returns v converted to float64.
func (v Value) Float64() float64 {
	switch v.kind {
	case Real:
		return v.real
	case Integer:
		if v.signed {
			return float64(v.sext())
		}

		return float64(v.bits)
	default:
		return math.NaN()
	}
}

// Text returns the content of a String value.
func (v Value) Text() string { return v.str }

// Truth reports whether v is nonzero. Strings are true when non-empty.
func (v Value) Truth() bool {
	switch v.kind {
	case Integer:
		return v.bits != 0
	case Real:
		return v.real != 0
	case String:
		return v.str != ""
	default:
		return false
	}
}

// sext returns the bits of v sign-extended from its width when signed.
func (v Value) sext() int64 {
	if !v.signed || v.width == 0 || v.width >= 64 {
		return int64(v.bits)
	}

	shift := 64 - uint(v.width)

	return int64(v.bits<<shift) >> shift
}

// String formats v for display: decimal integers, shortest real form, raw
// string content, or "invalid".
func (v Value) String() string {
	switch v.kind {
	case Integer:
		if v.signed {
			return strconv.FormatInt(v.sext(), 10)
		}

		return strconv.FormatUint(v.bits, 10)
	case Real:
		return strconv.FormatFloat(v.real, 'g', -1, 64)
	case String:
		return v.str
	default:
		return "invalid"
	}
}

// Encode returns the external text encoding of v carried by IR constants:
// "INT:<decimal>", "SCAL:<bit>", "REAL:<number>", or "STRING:<text>".
// Invalid values encode as the empty string.
func (v Value) Encode() string {
	switch v.kind {
	case Integer:
		if v.IsScalar() {
			return "SCAL:" + strconv.FormatUint(v.bits&1, 10)
		}

		return "INT:" + v.String()
	case Real:
		return "REAL:" + v.String()
	case String:
		return "STRING:" + v.str
	default:
		return ""
	}
}

// Native returns v as a Go value: int64 for signed integers, uint64 for
// unsigned integers, float64, string, or nil when Invalid.
func (v Value) Native() any {
	switch v.kind {
	case Integer:
		if v.signed {
			return v.sext()
		}

		return v.bits
	case Real:
		return v.real
	case String:
		return v.str
	default:
		return nil
	}
}

// LogValue implements [slog.LogValuer].
func (v Value) LogValue() slog.Value {
	switch v.kind {
	case Invalid:
		return slog.StringValue("invalid")
	case String:
		return slog.StringValue(strconv.Quote(v.str))
	default:
		return slog.StringValue(v.String())
	}
}

// FromAny converts a decoded document or expression result to a Value.
// Booleans become 1-bit scalars. Unsupported types report false.
func FromAny(x any) (Value, bool) {
	switch t := x.(type) {
	case Value:
		return t, true
	case int:
		return Int(int64(t)), true
	case int8:
		return Int(int64(t)), true
	case int16:
		return Int(int64(t)), true
	case int32:
		return Int(int64(t)), true
	case int64:
		return Int(t), true
	case uint:
		return Uint(uint64(t)), true
	case uint8:
		return Uint(uint64(t)), true
	case uint16:
		return Uint(uint64(t)), true
	case uint32:
		return Uint(uint64(t)), true
	case uint64:
		return Uint(t), true
	case float32:
		return Float(float64(t)), true
	case float64:
		return Float(t), true
	case bool:
		if t {
			return Scalar(1), true
		}

		return Scalar(0), true
	case string:
		return Str(t), true
	default:
		return Value{}, false
	}
}

func mask(width uint8) uint64 {
	if width == 0 || width >= 64 {
		return math.MaxUint64
	}

	return 1<<width - 1
}
