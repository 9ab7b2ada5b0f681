// Released under an MIT license. See LICENSE.

package builtins

import (
	"github.com/michaelmacinnis/brak/internal/engine/program"
)

// The target of an assignment is a name or a nested statement of names.
// The source is evaluated once per target unless it is also nested, in
// which case each element is evaluated once and the list is reused cyclically.
func assign(s *program.Statement, scope program.Scope) program.Definition {
	targets, many := s.Group(0)
	if !many {
		name, ok := s.Token(0)
		if !ok {
			panic(program.Errorf(program.TypeError, "expected a name, got %s", s.Element(0)))
		}

		d := bound(s, 2)
		scope.Define(name, d)

		return d
	}

	names := targets.Names()

	sources, ok := s.Group(2)
	if !ok {
		if len(names) == 0 {
			panic(program.Errorf(program.ShapeError, "expected at least one target"))
		}

		for _, name := range names {
			scope.Define(name, bound(s, 2))
		}

		return scope.Lookup(names[0])
	}

	defs := make([]program.Definition, sources.Len())
	for i := range defs {
		defs[i] = bound(sources, i)
	}

	if len(names) == 0 || len(defs) == 0 {
		panic(program.Errorf(program.ShapeError, "expected at least one target and one source"))
	}

	for i, name := range names {
		scope.Define(name, defs[i%len(defs)])
	}

	return scope.Lookup(names[0])
}

func bound(s *program.Statement, i int) program.Definition {
	d := s.Evaluate(i)
	if d == nil {
		panic(program.Errorf(program.TypeError, "nothing to assign from %s", s.Element(i)))
	}

	return d
}

func remove(s *program.Statement, scope program.Scope) program.Definition {
	if g, ok := s.Group(1); ok {
		for _, name := range g.Names() {
			scope.Remove(name)
		}

		return program.NewValue("")
	}

	name, ok := s.Token(1)
	if !ok {
		panic(program.Errorf(program.TypeError, "expected a name, got %s", s.Element(1)))
	}

	scope.Remove(name)

	return program.NewValue("")
}
