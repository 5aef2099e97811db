package classify

import (
	"strings"

	"github.com/ardnew/svexpr/syntax"
)

// Radix is the number base of an integer literal.
type Radix uint8

const (
	// Plain is an unbased decimal literal such as 42.
	Plain Radix = iota
	Hex
	Bin
	Oct
	Dec
	// Unknown is a based literal whose base character is not one of
	// h, b, o, or d.
	Unknown
)

// Base returns the numeric base of r, or zero for Unknown.
func (r Radix) Base() int {
	switch r {
	case Hex:
		return 16
	case Bin:
		return 2
	case Oct:
		return 8
	case Plain, Dec:
		return 10
	default:
		return 0
	}
}

// Literal is the decoded form of integer literal text.
type Literal struct {
	Radix  Radix
	Digits string // text from two characters after the apostrophe
}

// Integer decodes integer literal text such as "42", "8'hFF", or "'o17".
//
// A size before the apostrophe is ignored. Only the character immediately
// after the apostrophe selects the base, and it must be one of the
// lowercase letters h, b, o, or d. Anything else, including an uppercase
// base or the signed marker in "8'sh7F", is Unknown.
func Integer(text string) Literal {
	i := strings.IndexByte(text, '\'')
	if i < 0 {
		return Literal{Radix: Plain, Digits: text}
	}

	if i+1 >= len(text) {
		return Literal{Radix: Unknown}
	}

	var r Radix

	switch text[i+1] {
	case 'h':
		r = Hex
	case 'b':
		r = Bin
	case 'o':
		r = Oct
	case 'd':
		r = Dec
	default:
		return Literal{Radix: Unknown}
	}

	return Literal{Radix: r, Digits: text[i+2:]}
}

// Kind returns the encoding kind of integer literal text. Text containing
// "'h" is HEX, then "'b" is BIN, then "'o" is OCT; any other apostrophe
// gives BIN and no apostrophe gives INT. Matching is case
// sensitive, so "16'd99" and "8'HFF" are both BIN.
func Kind(text string) string {
	switch {
	case strings.Contains(text, "'h"):
		return "HEX"
	case strings.Contains(text, "'b"):
		return "BIN"
	case strings.Contains(text, "'o"):
		return "OCT"
	case strings.Contains(text, "'"):
		return "BIN"
	default:
		return "INT"
	}
}

// Unquote removes one pair of surrounding double quotes from string literal
// text.
func Unquote(text string) string {
	if len(text) >= 2 && text[0] == '"' && text[len(text)-1] == '"' {
		return text[1 : len(text)-1]
	}

	return text
}

// Encode returns the constant encoding of the literal node tag with source
// text: "<KIND>:<text>" with KIND one of INT, HEX, BIN, OCT, REAL, SCAL, or
// STRING. The text is kept verbatim except that string literals lose their
// surrounding quotes and null encodes as "INT:0". Tags that are not literals
// report false.
func Encode(t syntax.Tag, text string) (string, bool) {
	switch t {
	case syntax.IntConst:
		return Kind(text) + ":" + text, true
	case syntax.RealConst:
		return "REAL:" + text, true
	case syntax.StringLiteral:
		return "STRING:" + Unquote(text), true
	case syntax.NullKeyword:
		return "INT:0", true
	default:
		if _, ok := scalar[t]; ok {
			return "SCAL:" + text, true
		}

		return "", false
	}
}
