// Released under an MIT license. See LICENSE.

package program

import (
	"math/big"
)

// Shape is the key used to match a definition against a statement:
// the statement's length and the position of the element being considered.
type Shape struct {
	Length   int
	Position int
}

// Definition describes how a name behaves when it appears in a statement.
type Definition interface {
	// Matches returns true if this definition governs a statement of shape.
	Matches(shape Shape) bool

	// Invoke executes the statement s in scope.
	Invoke(s *Statement, scope Scope) Definition

	String() string
}

// Callback is the body of a built-in definition.
type Callback func(s *Statement, scope Scope) Definition

// PrefixUnary matches a two element statement at position 0.
type PrefixUnary Callback

func (f PrefixUnary) Invoke(s *Statement, scope Scope) Definition {
	return f(s, scope)
}

func (f PrefixUnary) Matches(shape Shape) bool {
	return shape.Length == 2 && shape.Position == 0
}

func (f PrefixUnary) String() string {
	return "<prefix unary>"
}

// PrefixVariadic matches any statement at position 0.
type PrefixVariadic Callback

func (f PrefixVariadic) Invoke(s *Statement, scope Scope) Definition {
	return f(s, scope)
}

func (f PrefixVariadic) Matches(shape Shape) bool {
	return shape.Position == 0
}

func (f PrefixVariadic) String() string {
	return "<prefix vargs>"
}

// InfixBinary matches a three element statement at position 1.
type InfixBinary Callback

func (f InfixBinary) Invoke(s *Statement, scope Scope) Definition {
	return f(s, scope)
}

func (f InfixBinary) Matches(shape Shape) bool {
	return isInfix(shape)
}

func (f InfixBinary) String() string {
	return "<infix binary>"
}

// Operand is one side of an Operation. Number is nil if Text is not an integer.
type Operand struct {
	Number *big.Int
	Text   string
}

// Bool returns the truth of the operand o: zero and the empty string are false.
func (o Operand) Bool() bool {
	if o.Number != nil {
		return o.Number.Sign() != 0
	}

	return o.Text != ""
}

// IsNumber returns true if the operand o parsed as an integer.
func (o Operand) IsNumber() bool {
	return o.Number != nil
}

// String returns the operand o in canonical form.
func (o Operand) String() string {
	if o.Number != nil {
		return o.Number.String()
	}

	return o.Text
}

// Operation is an infix binary definition over two values.
type Operation struct {
	Apply       func(left, right Operand) string
	NumericOnly bool
}

// Invoke evaluates both operands and wraps the result of applying the operation.
func (o *Operation) Invoke(s *Statement, _ Scope) Definition {
	left := s.Value(0).Operand()
	right := s.Value(2).Operand()

	if o.NumericOnly && (!left.IsNumber() || !right.IsNumber()) {
		panic(Errorf(TypeError, "expected numbers, got %q and %q", left.Text, right.Text))
	}

	return NewValue(o.Apply(left, right))
}

func (o *Operation) Matches(shape Shape) bool {
	return isInfix(shape)
}

func (o *Operation) String() string {
	return "<infix binary>"
}

// Construct is a control construct. Each construct has its own shape.
type Construct struct {
	Callback Callback
	Shape    func(Shape) bool
}

// Arity returns a shape predicate for a construct of n elements at position 0.
func Arity(n int) func(Shape) bool {
	return func(shape Shape) bool {
		return shape.Length == n && shape.Position == 0
	}
}

func (c *Construct) Invoke(s *Statement, scope Scope) Definition {
	return c.Callback(s, scope)
}

func (c *Construct) Matches(shape Shape) bool {
	return c.Shape(shape)
}

func (c *Construct) String() string {
	return "<block>"
}

// Func records a function declaration. No statement ever dispatches to a
// Func: how arguments would be bound to Params is undefined.
type Func struct {
	Body   *Block
	Name   string
	Params []string
}

func (f *Func) Invoke(_ *Statement, _ Scope) Definition {
	return NewValue("0")
}

func (f *Func) Matches(_ Shape) bool {
	return false
}

func (f *Func) String() string {
	return "<func " + f.Name + ">"
}

func isInfix(shape Shape) bool {
	return shape.Length == 3 && shape.Position == 1
}

func implements() { //nolint:deadcode,unused
	// This function is never called. Its purpose is as compiler-checked
	// documentation about the types that are definitions.
	var d Definition

	d = PrefixUnary(nil)
	d = PrefixVariadic(nil)
	d = InfixBinary(nil)
	d = &Operation{}
	d = &Construct{}
	d = &Func{}
	d = &Value{}
	_ = d
}
