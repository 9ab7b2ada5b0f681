// Released under an MIT license. See LICENSE.

package builtins

import (
	"strings"

	"github.com/michaelmacinnis/brak/internal/engine/program"
)

// Operands are compared as integers when both are integers and as text otherwise.
func compare(l, r program.Operand) int {
	if l.IsNumber() && r.IsNumber() {
		return l.Number.Cmp(r.Number)
	}

	return strings.Compare(l.String(), r.String())
}

func eq(l, r program.Operand) string {
	return boolean(compare(l, r) == 0)
}

func ge(l, r program.Operand) string {
	return boolean(compare(l, r) >= 0)
}

func gt(l, r program.Operand) string {
	return boolean(compare(l, r) > 0)
}

func le(l, r program.Operand) string {
	return boolean(compare(l, r) <= 0)
}

func lt(l, r program.Operand) string {
	return boolean(compare(l, r) < 0)
}

func ne(l, r program.Operand) string {
	return boolean(compare(l, r) != 0)
}

func and(l, r program.Operand) string {
	return boolean(l.Bool() && r.Bool())
}

func or(l, r program.Operand) string {
	return boolean(l.Bool() || r.Bool())
}

func boolean(b bool) string {
	if b {
		return "1"
	}

	return "0"
}
