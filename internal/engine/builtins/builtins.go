// Released under an MIT license. See LICENSE.

// Package builtins provides the definitions bound in every brak program's
// root scope.
package builtins

import (
	"io"
	"math/rand/v2"

	"github.com/michaelmacinnis/brak/internal/engine/program"
)

// Prompter reads a line of interactive input.
type Prompter interface {
	Prompt(prompt string) (string, error)
}

// Set holds the resources used by the built-in definitions.
type Set struct {
	input  Prompter
	output io.Writer
	prompt string
	random *rand.Rand
}

// New creates a new Set. Output is written to w. The input built-in reads
// from p, using prompt. The random built-in draws from r.
func New(w io.Writer, p Prompter, prompt string, r *rand.Rand) *Set {
	return &Set{
		input:  p,
		output: w,
		prompt: prompt,
		random: r,
	}
}

// Definitions returns a fresh table of the built-in definitions.
func (b *Set) Definitions() map[string]program.Definition {
	return map[string]program.Definition{
		"#":        program.PrefixVariadic(comment),
		"=":        program.InfixBinary(assign),
		"at":       program.InfixBinary(at),
		"delete":   program.PrefixUnary(remove),
		"false":    program.NewValue("0"),
		"for":      &program.Construct{Callback: loop, Shape: program.Arity(5)},
		"func":     &program.Construct{Callback: function, Shape: program.Arity(4)},
		"if":       &program.Construct{Callback: when, Shape: program.Arity(3)},
		"if_else":  &program.Construct{Callback: either, Shape: program.Arity(4)},
		"input":    program.PrefixUnary(b.read),
		"lengthof": program.PrefixUnary(length),
		"none":     program.NewValue(""),
		"print":    program.PrefixVariadic(b.write),
		"random":   program.PrefixUnary(b.pick),
		"true":     program.NewValue("1"),
		"using":    program.PrefixUnary(b.using),
		"while":    &program.Construct{Callback: while, Shape: program.Arity(3)},

		"+": &program.Operation{Apply: add},
		"-": &program.Operation{Apply: sub},
		"*": &program.Operation{Apply: mul, NumericOnly: true},
		"/": &program.Operation{Apply: div, NumericOnly: true},
		"%": &program.Operation{Apply: mod, NumericOnly: true},
		"^": &program.Operation{Apply: pow, NumericOnly: true},

		"<":  &program.Operation{Apply: lt},
		">":  &program.Operation{Apply: gt},
		"<=": &program.Operation{Apply: le},
		">=": &program.Operation{Apply: ge},
		"==": &program.Operation{Apply: eq},
		"!=": &program.Operation{Apply: ne},

		"&&": &program.Operation{Apply: and},
		"||": &program.Operation{Apply: or},
	}
}

func (b *Set) using(s *program.Statement, scope program.Scope) program.Definition {
	if v, ok := s.Token(1); !ok || v != "all" {
		panic(program.Errorf(program.SyntaxError, "expected 'using all', got %s", s))
	}

	scope.Merge(b.Definitions())

	return nil
}
