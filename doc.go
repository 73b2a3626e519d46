/*
Package radix provides Radix[T], a small value type that pairs a fixed-width
integer with a numeric base between 2 and 36, and converts between the two
in both directions.

Radix values are value types; reading operations return new values. The
only mutating methods are SetValue, SetString, SetBit and SetNibble.

Simple example:

	h := radix.Hex(uint16(0x1234))
	h.SetNibble(3, 0xF)
	fmt.Println(h.PadTo(8, 4, true, true))
	// Output: 0x0000_F234

Radix values can be created from a variety of sources:

	New[T](v T, base int) (Radix[T], error)
	Binary[T](v T) Radix[T]
	Octal[T](v T) Radix[T]
	Hex[T](v T) Radix[T]
	Parse[T](s string, base int) (Radix[T], error)
	ParseBinary[T](s string) (Radix[T], error)
	ParseOctal[T](s string) (Radix[T], error)
	ParseHex[T](s string) (Radix[T], error)

Strings may carry the prefix for their base ("0b", "0o" or "0x"). The prefix
is case sensitive; the digits are not. Parsing never truncates: a string
whose value does not fit in T is rejected with ErrRange.

Radix supports the following formatting and marshalling interfaces:

	- fmt.Formatter
	- fmt.Stringer
	- fmt.GoStringer
	- json.Marshaler
	- json.Unmarshaler
	- encoding.TextMarshaler
	- encoding.TextUnmarshaler

*/
package radix
