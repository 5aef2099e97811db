package value

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncode(t *testing.T) {
	tests := []struct {
		name string
		v    Value
		want string
	}{
		{"signed", Int(-3), "INT:-3"},
		{"unsigned", Uint(42), "INT:42"},
		{"sized", Sized(0x1ff, 8), "INT:255"},
		{"scalar", Scalar(1), "SCAL:1"},
		{"real", Float(3.5), "REAL:3.5"},
		{"string", Str("abc"), "STRING:abc"},
		{"invalid", Value{}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.v.Encode())
		})
	}
}

func TestArithmetic(t *testing.T) {
	tests := []struct {
		name string
		got  Value
		want Value
	}{
		{"add", Add(Int(3), Int(4)), Int(7)},
		{"sub signed", Sub(Int(3), Int(4)), Int(-1)},
		{"sub mixed wraps", Sub(Uint(3), Int(4)), Uint(math.MaxUint64)},
		{"mult", Mult(Int(6), Int(7)), Int(42)},
		{"div truncates", Div(Int(-7), Int(2)), Int(-3)},
		{"mod sign of dividend", Mod(Int(-7), Int(2)), Int(-1)},
		{"power", Power(Int(2), Int(10)), Int(1024)},
		{"power negative exponent", Power(Int(2), Int(-1)), Int(0)},
		{"power minus one odd", Power(Int(-1), Int(-3)), Int(-1)},
		{"real promotes", Add(Int(1), Float(0.5)), Float(1.5)},
		{"real power", Power(Float(2), Float(0.5)), Float(math.Sqrt2)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.got)
		})
	}
}

func TestInvalidResults(t *testing.T) {
	tests := []struct {
		name string
		got  Value
	}{
		{"div by zero", Div(Int(1), Int(0))},
		{"real div by zero", Div(Float(1), Float(0))},
		{"mod by zero", Mod(Int(1), Int(0))},
		{"real mod", Mod(Float(3), Int(2))},
		{"zero to negative power", Power(Int(0), Int(-1))},
		{"invalid left", Add(Value{}, Int(1))},
		{"invalid right", Mult(Int(1), Value{})},
		{"string arithmetic", Add(Str("a"), Str("b"))},
		{"string number compare", Equal(Str("1"), Int(1))},
		{"real bitwise", BitAnd(Float(1), Int(1))},
		{"real shift", ShiftLeft(Float(1), Int(1))},
		{"string not", UNot(Str("x"))},
		{"real tilda", UTilda(Float(1))},
		{"logical invalid", LogOr(Int(1), Value{})},
		{"slice out of range", Slice(Sized(0xff, 8), 8, 0)},
		{"slice negative", Slice(Uint(1), 0, -1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.False(t, tt.got.IsValid(), "got %v", tt.got)
		})
	}
}

func TestComparison(t *testing.T) {
	assert.Equal(t, Uint(1), Greater(Int(2), Int(1)))
	assert.Equal(t, Uint(0), Less(Int(2), Int(1)))
	assert.Equal(t, Uint(1), LessEqual(Int(-1), Int(0)))
	assert.Equal(t, Uint(0), LessEqual(Int(-1), Uint(0)), "mixed signedness compares unsigned")
	assert.Equal(t, Uint(1), GreaterEqual(Float(1.5), Int(1)))
	assert.Equal(t, Uint(1), Equal(Str("abc"), Str("abc")))
	assert.Equal(t, Uint(1), NotEqual(Str("abc"), Str("abd")))
	assert.Equal(t, Uint(1), Equal(Scalar(1), Int(1)))
}

func TestLogical(t *testing.T) {
	assert.Equal(t, Uint(1), LogAnd(Int(2), Float(0.5)))
	assert.Equal(t, Uint(0), LogAnd(Int(2), Int(0)))
	assert.Equal(t, Uint(1), LogOr(Int(0), Int(3)))
	assert.Equal(t, Uint(1), UNot(Int(0)))
	assert.Equal(t, Uint(0), UNot(Float(2)))
}

func TestBitwise(t *testing.T) {
	got := BitAnd(Sized(0xf0, 8), Sized(0x3c, 8))
	assert.Equal(t, Sized(0x30, 8), got)

	got = BitXnor(Sized(0x0f, 4), Sized(0x05, 4))
	assert.Equal(t, Sized(0x05, 4), got)
	assert.Equal(t, 4, got.Width())

	got = BitOr(Sized(1, 4), Uint(0x100))
	assert.Equal(t, 0, got.Width(), "unsized operand makes the result unsized")
	assert.Equal(t, uint64(0x101), got.Uint64())

	assert.Equal(t, Sized(0xa, 4), UTilda(Sized(0x5, 4)))
	assert.Equal(t, Int(-1), UTilda(Int(0)))
}

func TestShift(t *testing.T) {
	assert.Equal(t, Int(16), ShiftLeft(Int(1), Int(4)))
	assert.Equal(t, Int(0), ShiftLeft(Int(1), Int(64)))
	assert.Equal(t, Uint(2), ShiftRight(Uint(8), Int(2)))
	assert.Equal(t, Int(-2), ArithShiftRight(Int(-8), Int(2)))
	assert.Equal(t, Int(-1), ArithShiftRight(Int(-8), Int(100)))
	assert.Equal(t, Uint(math.MaxUint64>>2), ArithShiftRight(Uint(math.MaxUint64), Int(2)))
	assert.Equal(t, Sized(0xf0, 8), ArithShiftLeft(Sized(0xff, 8), Int(4)))
}

func TestUnary(t *testing.T) {
	assert.Equal(t, Int(-5), UMinus(Int(5)))
	assert.Equal(t, Float(-2.5), UMinus(Float(2.5)))
	assert.Equal(t, Sized(0xff, 8), UMinus(Sized(1, 8)))
	assert.Equal(t, Int(5), UPlus(Int(5).AsLvalue()))

	inc := Incr(Int(5).AsLvalue())
	assert.Equal(t, int64(6), inc.Int64())
	assert.True(t, inc.IsLvalue())

	dec := Decr(Sized(0, 4))
	assert.Equal(t, uint64(0xf), dec.Uint64())
	assert.False(t, Incr(Str("x")).IsValid())
}

func TestSlice(t *testing.T) {
	v := Sized(0xa5, 8)

	assert.Equal(t, Sized(0x5, 4), Slice(v, 3, 0))
	assert.Equal(t, Sized(0xa, 4), Slice(v, 4, 7), "bounds in either order")
	assert.Equal(t, Scalar(1), Slice(v, 7, 7))
	assert.Equal(t, Sized(1, 1), Slice(Uint(1<<63), 63, 63))
}

func TestParseBased(t *testing.T) {
	tests := []struct {
		digits string
		base   int
		want   uint64
	}{
		{"FF", 16, 255},
		{"ff", 16, 255},
		{"0xff", 16, 255},
		{"1010", 2, 10},
		{"1012", 2, 5},
		{"17", 8, 15},
		{"42", 10, 42},
		{"1_000", 10, 1},
		{"xz", 16, 0},
		{"", 2, 0},
		{"  7", 10, 7},
		{"-1", 10, math.MaxUint64},
		{"FFFFFFFFFFFFFFFFF", 16, math.MaxUint64},
	}

	for _, tt := range tests {
		t.Run(tt.digits, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseBased(tt.digits, tt.base))
		})
	}
}

func TestParseDecimal(t *testing.T) {
	assert.Equal(t, int64(42), ParseDecimal("42"))
	assert.Equal(t, int64(-42), ParseDecimal(" -42"))
	assert.Equal(t, int64(12), ParseDecimal("12abc"))
	assert.Equal(t, int64(0), ParseDecimal("abc"))
	assert.Equal(t, int64(math.MaxInt64), ParseDecimal("99999999999999999999"))
	assert.Equal(t, int64(math.MinInt64), ParseDecimal("-99999999999999999999"))
}

func TestParseReal(t *testing.T) {
	tests := []struct {
		in   string
		want float64
	}{
		{"3.14", 3.14},
		{"1e3", 1000},
		{"2.5e", 2.5},
		{"1.5e-2x", 0.015},
		{".5", 0.5},
		{"7.", 7},
		{"-0.25", -0.25},
		{"abc", 0},
		{"", 0},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.InDelta(t, tt.want, ParseReal(tt.in), 1e-12)
		})
	}
}

func TestFromAny(t *testing.T) {
	tests := []struct {
		in   any
		want Value
	}{
		{8, Int(8)},
		{uint64(8), Uint(8)},
		{2.5, Float(2.5)},
		{true, Scalar(1)},
		{"s", Str("s")},
	}

	for _, tt := range tests {
		got, ok := FromAny(tt.in)
		require.True(t, ok, "%T", tt.in)
		assert.Equal(t, tt.want, got)
	}

	_, ok := FromAny([]int{1})
	assert.False(t, ok)
}

func TestNative(t *testing.T) {
	assert.Equal(t, any(int64(-1)), Int(-1).Native())
	assert.Equal(t, any(uint64(3)), Uint(3).Native())
	assert.Equal(t, any(1.5), Float(1.5).Native())
	assert.Equal(t, any("x"), Str("x").Native())
	assert.Nil(t, Value{}.Native())
}
