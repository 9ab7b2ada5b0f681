// Released under an MIT license. See LICENSE.

package program

import (
	"fmt"

	"github.com/michaelmacinnis/brak/internal/type/loc"
)

// Kind classifies an Error.
type Kind int

// Error kinds.
const (
	SyntaxError Kind = iota + 1
	TypeError
	NameError
	ShapeError
	ArithmeticError
	IOError
)

// Sentinels for use with errors.Is.
//
//nolint:gochecknoglobals
var (
	ErrSyntax     = &Error{Kind: SyntaxError}
	ErrType       = &Error{Kind: TypeError}
	ErrName       = &Error{Kind: NameError}
	ErrShape      = &Error{Kind: ShapeError}
	ErrArithmetic = &Error{Kind: ArithmeticError}
	ErrIO         = &Error{Kind: IOError}
)

// String returns the name of the kind k.
func (k Kind) String() string {
	switch k {
	case SyntaxError:
		return "syntax error"
	case TypeError:
		return "type error"
	case NameError:
		return "name error"
	case ShapeError:
		return "shape error"
	case ArithmeticError:
		return "arithmetic error"
	case IOError:
		return "i/o error"
	}

	return "error"
}

// Error is raised (as a panic) when a statement cannot be executed.
// Every Error is fatal to the running program.
type Error struct {
	Kind    Kind
	Message string
	Source  *loc.T
}

// Errorf creates a new Error of kind k.
func Errorf(k Kind, format string, args ...interface{}) *Error {
	return &Error{
		Kind:    k,
		Message: fmt.Sprintf(format, args...),
	}
}

func (e *Error) Error() string {
	s := e.Kind.String()
	if e.Message != "" {
		s += ": " + e.Message
	}

	if e.Source != nil {
		s = e.Source.String() + ": " + s
	}

	return s
}

// Is reports whether target is the sentinel for e's kind.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)

	return ok && t.Message == "" && t.Source == nil && t.Kind == e.Kind
}

// Recover converts a panicking *Error into an ordinary error stored in err.
// It must be deferred directly. Any other panic is propagated.
func Recover(err *error) {
	r := recover()
	if r == nil {
		return
	}

	e, ok := r.(*Error)
	if !ok {
		panic(r)
	}

	*err = e
}
