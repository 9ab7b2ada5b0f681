// Released under an MIT license. See LICENSE.

package program

import (
	"math/big"
	"strings"
)

// Value is a literal. All data in brak is text; text that reads as an
// integer can also be used as a number.
type Value struct {
	number *big.Int
	text   string
}

// NewValue creates a value from raw text. Binary (0b) and hexadecimal (0x)
// literals are normalized to decimal text.
func NewValue(raw string) *Value {
	text := normalize(raw)

	n, _ := Integer(text)

	return &Value{
		number: n,
		text:   text,
	}
}

// Bool returns the truth of the value v. Only "" and "0" are false.
func (v *Value) Bool() bool {
	return v.text != "" && v.text != "0"
}

func (v *Value) Invoke(_ *Statement, _ Scope) Definition {
	return v
}

func (v *Value) Matches(shape Shape) bool {
	return shape.Length == 1
}

// Number returns the value v as an integer, if possible.
// The returned integer must not be modified.
func (v *Value) Number() (*big.Int, bool) {
	return v.number, v.number != nil
}

// Operand returns the value v as an operation operand.
func (v *Value) Operand() Operand {
	return Operand{Number: v.number, Text: v.text}
}

// String returns the text of the value v.
func (v *Value) String() string {
	return v.text
}

// Integer parses s as a base-10 integer. Surrounding white space, a sign and
// single underscores between digits are allowed.
func Integer(s string) (*big.Int, bool) {
	s = strings.TrimSpace(s)

	digits := s
	if strings.HasPrefix(s, "+") || strings.HasPrefix(s, "-") {
		digits = s[1:]
	}

	if digits == "" || digits[0] == '_' || digits[len(digits)-1] == '_' {
		return nil, false
	}

	if strings.Contains(digits, "__") {
		return nil, false
	}

	for _, r := range digits {
		if r != '_' && (r < '0' || r > '9') {
			return nil, false
		}
	}

	n, ok := new(big.Int).SetString(strings.ReplaceAll(s, "_", ""), 10)
	if !ok {
		return nil, false
	}

	return n, true
}

func normalize(raw string) string {
	if len(raw) <= 2 {
		return raw
	}

	base, digits := 0, ""

	switch raw[:2] {
	case "0b":
		base, digits = 2, "01"
	case "0x":
		base, digits = 16, "0123456789abcdefABCDEF"
	default:
		return raw
	}

	for _, r := range raw[2:] {
		if !strings.ContainsRune(digits, r) {
			return raw
		}
	}

	n, ok := new(big.Int).SetString(raw[2:], base)
	if !ok {
		return raw
	}

	return n.String()
}
