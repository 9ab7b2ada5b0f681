// Released under an MIT license. See LICENSE.

// Package engine provides an evaluator for brak code.
package engine

import (
	"github.com/michaelmacinnis/brak/internal/engine/builtins"
	"github.com/michaelmacinnis/brak/internal/engine/program"
	"github.com/michaelmacinnis/brak/internal/reader"
)

// T (engine) is a facade in front of the machinery for evaluating brak code.
// Every program run by an engine shares its root scope.
type T struct {
	arena *program.Arena
}

// New creates a new T with the definitions in b bound in its root scope.
func New(b *builtins.Set) *T {
	a := program.NewArena()

	a.Root().Merge(b.Definitions())

	return &T{arena: a}
}

// Evaluate parses and runs text and returns the result of its last statement.
func (e *T) Evaluate(name, text string) (d program.Definition, err error) {
	defer program.Recover(&err)

	for _, s := range e.Parse(name, text).Statements() {
		d = s.Execute()
	}

	return d, nil
}

// Execute parses and runs text. Name labels the source in error messages.
func (e *T) Execute(name, text string) error {
	return e.Run(e.Parse(name, text))
}

// Parse parses text into a block that runs in the engine's root scope.
func (e *T) Parse(name, text string) *program.Block {
	return reader.Read(e.arena.Root(), name, text)
}

// Root returns the engine's root scope.
func (e *T) Root() program.Scope {
	return e.arena.Root()
}

// Run executes the block b. Any failure stops execution and is returned.
func (e *T) Run(b *program.Block) (err error) {
	defer program.Recover(&err)

	b.Execute()

	return nil
}
