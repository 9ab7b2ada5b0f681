// Released under an MIT license. See LICENSE.

package builtins

import (
	"math"
	"math/big"
	"strconv"
	"strings"

	"github.com/michaelmacinnis/brak/internal/engine/program"
)

func add(l, r program.Operand) string {
	if l.IsNumber() && r.IsNumber() {
		return new(big.Int).Add(l.Number, r.Number).String()
	}

	return l.String() + r.String()
}

// Subtracting text removes every occurrence of r from l, repeating until
// none remain.
func sub(l, r program.Operand) string {
	if l.IsNumber() && r.IsNumber() {
		return new(big.Int).Sub(l.Number, r.Number).String()
	}

	left, right := l.String(), r.String()
	if right == "" {
		return left
	}

	for {
		i := strings.Index(left, right)
		if i < 0 {
			return left
		}

		left = left[:i] + left[i+len(right):]
	}
}

func mul(l, r program.Operand) string {
	return new(big.Int).Mul(l.Number, r.Number).String()
}

// Division rounds toward negative infinity.
func div(l, r program.Operand) string {
	q, _ := floor(l.Number, r.Number)

	return q.String()
}

// The remainder takes the sign of the divisor.
func mod(l, r program.Operand) string {
	_, m := floor(l.Number, r.Number)

	return m.String()
}

func pow(l, r program.Operand) string {
	if r.Number.Sign() >= 0 {
		return new(big.Int).Exp(l.Number, r.Number, nil).String()
	}

	if l.Number.Sign() == 0 {
		panic(program.Errorf(program.ArithmeticError, "0 cannot be raised to a negative power"))
	}

	// A negative exponent produces a fraction.
	d := new(big.Int).Exp(l.Number, new(big.Int).Neg(r.Number), nil)
	f, _ := new(big.Rat).SetFrac(big.NewInt(1), d).Float64()

	return float(f)
}

func (b *Set) pick(s *program.Statement, _ program.Scope) program.Definition {
	n, ok := s.Value(1).Number()
	if !ok {
		panic(program.Errorf(program.TypeError, "expected a number, got %s", s.Element(1)))
	}

	if n.Sign() < 0 {
		panic(program.Errorf(program.ShapeError, "empty range for random %s", n))
	}

	if !n.IsInt64() {
		panic(program.Errorf(program.TypeError, "%s is out of range", n))
	}

	v := b.random.Uint64N(uint64(n.Int64()) + 1)

	return program.NewValue(strconv.FormatUint(v, 10))
}

func float(f float64) string {
	a := math.Abs(f)
	if a != 0 && (a < 1e-4 || a >= 1e16) {
		return strconv.FormatFloat(f, 'e', -1, 64)
	}

	s := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}

	return s
}

func floor(n, d *big.Int) (*big.Int, *big.Int) {
	if d.Sign() == 0 {
		panic(program.Errorf(program.ArithmeticError, "division by zero"))
	}

	q, m := new(big.Int).QuoRem(n, d, new(big.Int))
	if m.Sign() != 0 && m.Sign() != d.Sign() {
		q.Sub(q, big.NewInt(1))
		m.Add(m, d)
	}

	return q, m
}
