// Released under an MIT license. See LICENSE.

package builtins

import (
	"io"

	"github.com/michaelmacinnis/brak/internal/engine/program"
)

func comment(_ *program.Statement, _ program.Scope) program.Definition {
	return nil
}

func (b *Set) read(s *program.Statement, scope program.Scope) program.Definition {
	name, ok := s.Token(1)
	if !ok {
		panic(program.Errorf(program.TypeError, "expected a name, got %s", s.Element(1)))
	}

	if b.input == nil {
		panic(program.Errorf(program.IOError, "no input available"))
	}

	line, err := b.input.Prompt(b.prompt)
	if err != nil {
		panic(program.Errorf(program.IOError, "%v", err))
	}

	scope.Define(name, program.NewValue(line))

	return nil
}

func (b *Set) write(s *program.Statement, _ program.Scope) program.Definition {
	for i := 1; i < s.Len(); i++ {
		if i > 1 {
			b.print(" ")
		}

		if d := s.Evaluate(i); d != nil {
			b.print(d.String())
		}
	}

	b.print("\n")

	return program.NewValue("")
}

func (b *Set) print(text string) {
	if _, err := io.WriteString(b.output, text); err != nil {
		panic(program.Errorf(program.IOError, "%v", err))
	}
}
