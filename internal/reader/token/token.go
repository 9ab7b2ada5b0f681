// Released under an MIT license. See LICENSE.

// Package token is shared by the brak lexer and parser.
package token

import (
	"strconv"

	"github.com/michaelmacinnis/brak/internal/type/loc"
)

// Delimiters with special meaning to the parser.
const (
	BlockClose     = "}"
	BlockOpen      = "{"
	StatementClose = ")"
	StatementOpen  = "("
	Terminator     = ";"
)

// T (token) is a lexical item returned by the scanner.
type T struct {
	source *loc.T
	value  string
}

type token = T

// New creates a new token.
func New(value string, source *loc.T) *token {
	return &token{
		source: source,
		value:  value,
	}
}

// Is returns true if the token t has any of the values in vs.
func (t *token) Is(vs ...string) bool {
	if t == nil {
		return false
	}

	for _, v := range vs {
		if t.value == v {
			return true
		}
	}

	return false
}

// Source returns the source location for this token.
func (t *token) Source() *loc.T {
	if t == nil {
		return nil
	}

	return t.source
}

// String returns the token's string representation. Useful for debugging.
func (t *token) String() string {
	return strconv.Quote(t.value) + "(" + t.source.String() + ")"
}

// Value returns the token's string value.
func (t *token) Value() string {
	return t.value
}
