// Released under an MIT license. See LICENSE.

// Package reader encapsulates the brak lexer and parser.
package reader

import (
	"github.com/michaelmacinnis/brak/internal/engine/program"
	"github.com/michaelmacinnis/brak/internal/reader/lexer"
	"github.com/michaelmacinnis/brak/internal/reader/parser"
)

// Read scans and parses text. The top-level block of the result uses root
// as its scope. Name labels the source in token locations.
func Read(root program.Scope, name, text string) *program.Block {
	l := lexer.New(name)

	l.Scan(text)
	l.Flush()

	return parser.New(root, l.Token).Parse()
}
