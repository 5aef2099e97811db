package value

import (
	"errors"
	"math"
	"math/bits"
	"strconv"
	"strings"
	"unicode"
)

// ParseBased parses the digits of a based literal in base 2, 8, 10, or 16.
//
// Parsing follows C strtoul: leading white space and one optional sign are
// skipped, a "0x" prefix is accepted in base 16, and parsing stops at the
// first character that is not a digit of base (including '_' and x/z). A
// result that overflows saturates to the maximum uint64. A leading '-'
// negates the result in two's complement. No digits yield zero.
func ParseBased(digits string, base int) uint64 {
	s := strings.TrimLeftFunc(digits, unicode.IsSpace)

	neg := false
	if s != "" && (s[0] == '+' || s[0] == '-') {
		neg = s[0] == '-'
		s = s[1:]
	}

	if base == 16 && len(s) > 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X') &&
		digitOf(s[2]) < 16 {
		s = s[2:]
	}

	var (
		r    uint64
		over bool
	)

	for i := 0; i < len(s); i++ {
		d := digitOf(s[i])
		if d >= base {
			break
		}

		hi, lo := mulAdd(r, uint64(base), uint64(d))
		if hi != 0 {
			over = true
		}

		r = lo
	}

	switch {
	case over:
		return math.MaxUint64
	case neg:
		return -r
	default:
		return r
	}
}

// ParseDecimal parses a plain decimal literal following C atol: leading
// white space and one optional sign are skipped and parsing stops at the
// first non-digit. Overflow saturates in the direction of the sign.
func ParseDecimal(text string) int64 {
	s := strings.TrimLeftFunc(text, unicode.IsSpace)

	neg := false
	if s != "" && (s[0] == '+' || s[0] == '-') {
		neg = s[0] == '-'
		s = s[1:]
	}

	var r uint64

	for i := 0; i < len(s) && isDigit(s[i]); i++ {
		d := uint64(s[i] - '0')
		if r > (math.MaxInt64-d)/10 {
			if neg {
				return math.MinInt64
			}

			return math.MaxInt64
		}

		r = r*10 + d
	}

	if neg {
		return -int64(r)
	}

	return int64(r)
}

// ParseReal parses the longest prefix of text that forms a decimal floating
// point number. Text with no such prefix yields zero.
func ParseReal(text string) float64 {
	s := strings.TrimLeftFunc(text, unicode.IsSpace)

	for n := realPrefix(s); n > 0; n-- {
		f, err := strconv.ParseFloat(s[:n], 64)
		if err == nil || errors.Is(err, strconv.ErrRange) {
			return f
		}
	}

	return 0
}

// realPrefix returns the length of the longest prefix of s shaped like
// [sign] digits [. digits] [(e|E) [sign] digits].
func realPrefix(s string) int {
	i := 0
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}

	digits := 0
	for ; i < len(s) && isDigit(s[i]); i++ {
		digits++
	}

	if i < len(s) && s[i] == '.' {
		i++

		for ; i < len(s) && isDigit(s[i]); i++ {
			digits++
		}
	}

	if digits == 0 {
		return 0
	}

	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		j := i + 1
		if j < len(s) && (s[j] == '+' || s[j] == '-') {
			j++
		}

		if j < len(s) && isDigit(s[j]) {
			for j < len(s) && isDigit(s[j]) {
				j++
			}

			i = j
		}
	}

	return i
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

func digitOf(c byte) int {
	switch {
	case c >= '0' && c <= '9':
		return int(c - '0')
	case c >= 'a' && c <= 'z':
		return int(c-'a') + 10
	case c >= 'A' && c <= 'Z':
		return int(c-'A') + 10
	default:
		return 36
	}
}

// mulAdd returns the 128-bit result of r*m + d as (hi, lo).
func mulAdd(r, m, d uint64) (hi, lo uint64) {
	hi, lo = bits.Mul64(r, m)

	lo2 := lo + d
	if lo2 < lo {
		hi++
	}

	return hi, lo2
}
