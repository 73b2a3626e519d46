package radix

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidBase is returned when a base falls outside [MinBase, MaxBase].
	ErrInvalidBase = errors.New("radix: base must be between 2 and 36")

	// ErrSyntax indicates that a string is not a valid digit sequence for
	// the requested base.
	ErrSyntax = errors.New("invalid syntax")

	// ErrRange indicates that a string is well formed but its value does not
	// fit in the target integer type.
	ErrRange = errors.New("value out of range")
)

// ParseError records a failed conversion from a string. Err is ErrSyntax or
// ErrRange.
type ParseError struct {
	Func  string // the failing function (Parse, SetString, ...)
	Input string
	Base  int
	Type  string // name of the target integer type
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("radix: %s: parsing %q as base-%d %s: %v", e.Func, e.Input, e.Base, e.Type, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

func baseError(base int) error {
	return fmt.Errorf("%w (got %d)", ErrInvalidBase, base)
}
