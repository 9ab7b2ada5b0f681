// Released under an MIT license. See LICENSE.

package builtins

import (
	"math/big"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/michaelmacinnis/brak/internal/engine/program"
)

// at indexes an array by element or any other value by character.
// Indexes wrap around.
func at(s *program.Statement, _ program.Scope) program.Definition {
	text := s.Value(0).String()

	index, ok := s.Value(2).Number()
	if !ok {
		panic(program.Errorf(program.TypeError, "expected a number, got %s", s.Element(2)))
	}

	if items, ok := array(text); ok {
		return program.NewValue(strings.TrimSpace(items[wrap(index, len(items))]))
	}

	runes := []rune(text)
	if len(runes) == 0 {
		panic(program.Errorf(program.ArithmeticError, "cannot index an empty value"))
	}

	return program.NewValue(string(runes[wrap(index, len(runes))]))
}

func length(s *program.Statement, _ program.Scope) program.Definition {
	text := s.Value(1).String()

	if items, ok := array(text); ok {
		return program.NewValue(strconv.Itoa(len(items)))
	}

	return program.NewValue(strconv.Itoa(utf8.RuneCountInString(text)))
}

func array(text string) ([]string, bool) {
	if len(text) < 2 || text[0] != '[' || text[len(text)-1] != ']' {
		return nil, false
	}

	return strings.Split(text[1:len(text)-1], ","), true
}

func wrap(index *big.Int, n int) int {
	return int(new(big.Int).Mod(index, big.NewInt(int64(n))).Int64())
}
