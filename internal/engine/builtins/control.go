// Released under an MIT license. See LICENSE.

package builtins

import (
	"github.com/michaelmacinnis/brak/internal/engine/program"
)

// The constructs below read their elements with Evaluate and Truth. Each
// read executes the element again, so a loop's condition and body run anew
// on every iteration.

// either executes element 2 if element 1 is true and element 3 otherwise.
func either(s *program.Statement, _ program.Scope) program.Definition {
	if s.Truth(1) {
		s.Evaluate(2)
	} else {
		s.Evaluate(3)
	}

	return nil
}

// function records a function declaration: func name (params...) { body }.
func function(s *program.Statement, scope program.Scope) program.Definition {
	name, ok := s.Token(1)
	if !ok {
		panic(program.Errorf(program.TypeError, "function name should be a name, got %s", s.Element(1)))
	}

	var params []string

	if g, ok := s.Group(2); ok {
		params = g.Names()
	} else if p, ok := s.Token(2); ok {
		params = []string{p}
	} else {
		panic(program.Errorf(program.TypeError, "function parameters should be names, got %s", s.Element(2)))
	}

	body, ok := s.Element(3).(*program.Block)
	if !ok {
		panic(program.Errorf(program.TypeError, "function body should be a block, got %s", s.Element(3)))
	}

	scope.Define(name, &program.Func{Body: body, Name: name, Params: params})

	return nil
}

// loop is for init condition step body.
func loop(s *program.Statement, _ program.Scope) program.Definition {
	s.Evaluate(1)

	for s.Truth(2) {
		s.Evaluate(4)
		s.Evaluate(3)
	}

	return nil
}

func when(s *program.Statement, _ program.Scope) program.Definition {
	if s.Truth(1) {
		s.Evaluate(2)
	}

	return nil
}

func while(s *program.Statement, _ program.Scope) program.Definition {
	for s.Truth(1) {
		s.Evaluate(2)
	}

	return nil
}
