// Released under an MIT license. See LICENSE.

// Package program provides brak's executable tree and its scope chain.
//
// A program is a Block of Statements. A Block is also a scope: it owns a
// frame in an Arena. Statements are executed by dispatch. The elements of
// a statement are scanned, in order, for the first name whose definition
// matches the statement's shape. That definition is then invoked. Elements
// are evaluated lazily, and again each time they are read, which is how
// control constructs repeat their bodies.
package program

import (
	"strings"

	"github.com/michaelmacinnis/adapted"
	"github.com/michaelmacinnis/brak/internal/type/loc"
)

// Element is a token, a nested *Statement, or a nested *Block.
type Element interface {
	String() string
	element()
}

// Token is a literal element of a statement.
type Token string

func (t Token) String() string {
	return literal(string(t))
}

func (t Token) element() {}

// Statement is a sequence of elements executed by dispatch.
type Statement struct {
	elements []Element
	scope    Scope
	source   *loc.T
}

// NewStatement creates a statement enclosed by scope.
func NewStatement(scope Scope, source *loc.T, elements ...Element) *Statement {
	return &Statement{
		elements: elements,
		scope:    scope,
		source:   source,
	}
}

// Element returns the unevaluated element at position i.
func (s *Statement) Element(i int) Element {
	return s.elements[i]
}

// Evaluate returns the value of the element at position i. A token is
// resolved in the statement's scope. A nested statement or block is
// executed, every time it is evaluated.
func (s *Statement) Evaluate(i int) Definition {
	switch e := s.elements[i].(type) {
	case Token:
		return s.scope.Lookup(string(e))
	case *Statement:
		return e.Execute()
	case *Block:
		e.Execute()
	}

	return nil
}

// Execute dispatches the statement s to the first matching definition.
func (s *Statement) Execute() Definition {
	defer s.locate()

	n := len(s.elements)
	if n == 0 {
		return nil
	}

	for i, e := range s.elements {
		t, ok := e.(Token)
		if !ok {
			continue
		}

		d := s.scope.Lookup(string(t))
		if d.Matches(Shape{Length: n, Position: i}) {
			return d.Invoke(s, s.scope)
		}
	}

	panic(Errorf(SyntaxError, "failed to execute: %s", s))
}

// Group returns the nested statement at position i, if there is one.
func (s *Statement) Group(i int) (*Statement, bool) {
	g, ok := s.elements[i].(*Statement)

	return g, ok
}

// Len returns the number of elements in the statement s.
func (s *Statement) Len() int {
	return len(s.elements)
}

// Names returns the elements of s as names. Every element must be a token.
func (s *Statement) Names() []string {
	names := make([]string, len(s.elements))

	for i := range s.elements {
		name, ok := s.Token(i)
		if !ok {
			panic(Errorf(TypeError, "expected a name, got %s", s.elements[i]))
		}

		names[i] = name
	}

	return names
}

// Scope returns the scope enclosing the statement s.
func (s *Statement) Scope() Scope {
	return s.scope
}

// Source returns the location of the statement s.
func (s *Statement) Source() *loc.T {
	return s.source
}

func (s *Statement) String() string {
	parts := make([]string, len(s.elements))

	for i, e := range s.elements {
		switch e := e.(type) {
		case *Statement:
			parts[i] = "(" + e.String() + ")"
		case *Block:
			parts[i] = "{" + e.String() + "}"
		default:
			parts[i] = e.String()
		}
	}

	return strings.Join(parts, " ")
}

// Token returns the raw text of the element at position i, if it is a token.
func (s *Statement) Token(i int) (string, bool) {
	t, ok := s.elements[i].(Token)

	return string(t), ok
}

// Truth evaluates the element at position i as a condition.
func (s *Statement) Truth(i int) bool {
	switch d := s.Evaluate(i).(type) {
	case nil:
		return false
	case *Value:
		return d.Bool()
	}

	return true
}

// Value evaluates the element at position i. The result must be a value.
func (s *Statement) Value(i int) *Value {
	v, ok := s.Evaluate(i).(*Value)
	if !ok {
		panic(Errorf(TypeError, "expected a value, got %s", s.elements[i]))
	}

	return v
}

func (s *Statement) element() {}

func (s *Statement) locate() {
	r := recover()
	if r == nil {
		return
	}

	if e, ok := r.(*Error); ok && e.Source == nil {
		e.Source = s.source
	}

	panic(r)
}

// Block is a sequence of statements and the scope they are executed in.
type Block struct {
	scope      Scope
	statements []*Statement
}

// NewBlock creates a block. The statements must be enclosed by scope.
func NewBlock(scope Scope, statements ...*Statement) *Block {
	return &Block{
		scope:      scope,
		statements: statements,
	}
}

// Execute executes each statement in the block b in order.
func (b *Block) Execute() {
	for _, s := range b.statements {
		s.Execute()
	}
}

// Scope returns the block b's own scope.
func (b *Block) Scope() Scope {
	return b.scope
}

// Statements returns the statements in the block b.
func (b *Block) Statements() []*Statement {
	return b.statements
}

func (b *Block) String() string {
	parts := make([]string, len(b.statements))

	for i, s := range b.statements {
		parts[i] = s.String() + ";"
	}

	return strings.Join(parts, " ")
}

func (b *Block) element() {}

// A token that would not scan back to itself is quoted, with control
// characters escaped so a rendered statement stays on one line.
func literal(s string) string {
	if s != "" && strings.HasPrefix(s, "[") && strings.HasSuffix(s, "]") &&
		!strings.ContainsAny(s[1:len(s)-1], "[]{}();\"") {
		return s
	}

	if s != "" && s != `\` && !strings.ContainsAny(s, " \t\r,\n[]{}();\"") {
		return s
	}

	// Canonical strings are written $'...'. Brak strings use double quotes
	// and never contain a single quote that needs escaping.
	c := adapted.CanonicalString(s)
	c = strings.TrimSuffix(strings.TrimPrefix(c, "$'"), "'")

	return `"` + strings.ReplaceAll(c, `\'`, "'") + `"`
}
