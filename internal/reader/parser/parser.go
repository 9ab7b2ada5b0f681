// Released under an MIT license. See LICENSE.

// Package parser provides a recursive descent parser for the brak language.
//
// There is no grammar table. Structure comes entirely from the delimiters:
// '(' opens a nested statement, '{' opens a nested block, and ';' or ')'
// ends a statement. End of input acts as ';' (and as '}').
package parser

import (
	"github.com/michaelmacinnis/brak/internal/engine/program"
	"github.com/michaelmacinnis/brak/internal/reader/token"
)

// T holds the state of the parser.
type T struct {
	ahead int             // Lookahead count.
	item  func() *token.T // Function to call to get another token.
	root  program.Scope   // Scope of the top-level block.
	token *token.T        // Token lookahead.
}

// New creates a new parser.
// It connects a producer of tokens with the scope the program will run in.
func New(root program.Scope, item func() *token.T) *T {
	return &T{item: item, root: root}
}

// Parse consumes tokens until there are no more tokens, or until an
// unmatched '}', and returns the top-level block.
func (p *T) Parse() *program.Block {
	return p.block(p.root)
}

func (p *T) consume() *token.T {
	t := p.peek()

	p.ahead = 0
	p.token = nil

	return t
}

func (p *T) peek() *token.T {
	if p.ahead > 0 {
		return p.token
	}

	t := p.item()

	p.token = t
	p.ahead = 1

	return t
}

// T state functions.

// <block> ::= <statement>* ('}' | EOF) .
func (p *T) block(scope program.Scope) *program.Block {
	var statements []*program.Statement

	for t := p.peek(); t != nil && !t.Is(token.BlockClose); t = p.peek() {
		statements = append(statements, p.statement(scope))
	}

	p.consume()

	return program.NewBlock(scope, statements...)
}

// <statement> ::= ('(' <statement> | '{' <block> | Literal)* (';' | ')' | EOF) .
func (p *T) statement(scope program.Scope) *program.Statement {
	var elements []program.Element

	t := p.peek()
	source := t.Source()

	for ; t != nil && !t.Is(token.Terminator, token.StatementClose); t = p.peek() {
		p.consume()

		switch t.Value() {
		case token.StatementOpen:
			elements = append(elements, p.statement(scope))
		case token.BlockOpen:
			elements = append(elements, p.block(scope.Push()))
		default:
			elements = append(elements, program.Token(t.Value()))
		}
	}

	p.consume()

	return program.NewStatement(scope, source, elements...)
}
