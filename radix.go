package radix

import (
	"fmt"
	"unsafe"
)

// Radix pairs an integer with the base used to render it as text.
//
// The base is fixed when the Radix is constructed; the value may change. The
// zero value holds 0 and renders in base 10.
type Radix[T Integer] struct {
	value T
	base  int
}

// New creates a Radix from v. It fails with ErrInvalidBase if base is outside
// [MinBase, MaxBase].
func New[T Integer](v T, base int) (Radix[T], error) {
	if !ValidBase(base) {
		return Radix[T]{}, baseError(base)
	}
	return Radix[T]{value: v, base: base}, nil
}

// Binary, Octal and Hex wrap v in base 2, 8 and 16 respectively.
func Binary[T Integer](v T) Radix[T] { return Radix[T]{value: v, base: 2} }
func Octal[T Integer](v T) Radix[T]  { return Radix[T]{value: v, base: 8} }
func Hex[T Integer](v T) Radix[T]    { return Radix[T]{value: v, base: 16} }

// Parse creates a Radix from a string of digits in the given base. The
// string may start with a sign and then the prefix for base (see Prefix),
// which must be lowercase. Letter digits are accepted in either case.
//
// Parse never truncates: if the value does not fit in T, a *ParseError
// wrapping ErrRange is returned. Malformed input returns a *ParseError
// wrapping ErrSyntax.
func Parse[T Integer](s string, base int) (out Radix[T], err error) {
	if !ValidBase(base) {
		return out, baseError(base)
	}
	v, err := parseValue[T](s, base)
	if err != nil {
		return out, &ParseError{Func: "Parse", Input: s, Base: base, Type: typeName[T](), Err: err}
	}
	return Radix[T]{value: v, base: base}, nil
}

// ParseBinary, ParseOctal and ParseHex call Parse with base 2, 8 and 16.
func ParseBinary[T Integer](s string) (Radix[T], error) { return Parse[T](s, 2) }
func ParseOctal[T Integer](s string) (Radix[T], error)  { return Parse[T](s, 8) }
func ParseHex[T Integer](s string) (Radix[T], error)    { return Parse[T](s, 16) }

// Value returns the wrapped integer.
func (r Radix[T]) Value() T { return r.value }

// SetValue replaces the wrapped integer, keeping the base.
func (r *Radix[T]) SetValue(v T) { r.value = v }

// Base returns the base used for string conversion.
func (r Radix[T]) Base() int {
	if r.base == 0 {
		return 10
	}
	return r.base
}

// Prefix returns the literal prefix for the Radix's base, or "" if the base
// has none.
func (r Radix[T]) Prefix() string { return Prefix(r.base) }

// WithBase returns a copy of r that renders in a different base.
func (r Radix[T]) WithBase(base int) (Radix[T], error) {
	return New(r.value, base)
}

// BitLen returns the width of T in bits.
func (r Radix[T]) BitLen() int { return bitSize[T]() }

// Nibbles returns the number of 4-bit nibbles in T.
func (r Radix[T]) Nibbles() int { return bitSize[T]() / nibbleBits }

// GoString describes r including its integer type, i.e.
// "radix.Radix[uint8](0xFF)".
func (r Radix[T]) GoString() string {
	return fmt.Sprintf("radix.Radix[%s](%s)", typeName[T](), r.Text(true, true))
}

func bitSize[T Integer]() int {
	var z T
	return int(unsafe.Sizeof(z)) * 8
}

func isSigned[T Integer]() bool {
	var z T
	return ^z < 0
}

func typeName[T Integer]() string {
	var z T
	return fmt.Sprintf("%T", z)
}
