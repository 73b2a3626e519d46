package radix

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Style controls how a Radix is rendered by Styled. The zero Style renders
// the same text as String.
type Style struct {
	// PadTo left-pads the digits with zeros to at least this many characters.
	PadTo int

	// PadToEvery left-pads the digits with zeros to the next multiple of
	// this many characters. It is applied after PadTo.
	PadToEvery int

	// SplitEvery groups the digits from the right into chunks of this many
	// characters, separated by a space, or by an underscore if Prefix is set.
	SplitEvery int

	Prefix    bool
	Lowercase bool
}

// String returns the digits of r in its base, using uppercase letters and no
// prefix or padding. Zero is "0". Negative values start with "-".
func (r Radix[T]) String() string {
	return r.Styled(Style{})
}

// SetString replaces the value of r with the result of parsing s in r's
// base, following the same rules as Parse. If s cannot be parsed, r is left
// unchanged and the error is returned.
func (r *Radix[T]) SetString(s string) error {
	v, err := parseValue[T](s, r.Base())
	if err != nil {
		return &ParseError{Func: "SetString", Input: s, Base: r.Base(), Type: typeName[T](), Err: err}
	}
	r.value = v
	return nil
}

// Text returns the digits of r, optionally preceded by the prefix for its
// base.
func (r Radix[T]) Text(prefix, uppercase bool) string {
	return r.Styled(Style{Prefix: prefix, Lowercase: !uppercase})
}

// PadTo returns the digits of r left-padded with zeros to padTo characters.
// If splitEvery is positive, the digits are grouped from the right into
// chunks of that size. Groups are separated by a space, or by an underscore
// when prefix is set, so that prefixed output reads like a numeric literal.
func (r Radix[T]) PadTo(padTo, splitEvery int, prefix, uppercase bool) string {
	return r.Styled(Style{PadTo: padTo, SplitEvery: splitEvery, Prefix: prefix, Lowercase: !uppercase})
}

// PadToEvery is like PadTo, but pads the digits to the next multiple of
// padToEvery characters.
func (r Radix[T]) PadToEvery(padToEvery, splitEvery int, prefix, uppercase bool) string {
	return r.Styled(Style{PadToEvery: padToEvery, SplitEvery: splitEvery, Prefix: prefix, Lowercase: !uppercase})
}

// Styled renders r according to st. Padding and grouping apply to the digits
// only; the sign and the prefix are added afterwards.
func (r Radix[T]) Styled(st Style) string {
	neg, s := r.digits(!st.Lowercase)

	s = padLeft(s, st.PadTo)
	s = padLeft(s, roundUpToMultiple(len(s), st.PadToEvery))

	if st.SplitEvery > 0 {
		sep := " "
		if st.Prefix {
			sep = "_"
		}
		s = strings.Join(splitRight(s, st.SplitEvery), sep)
	}
	if st.Prefix {
		s = r.Prefix() + s
	}
	if neg {
		s = "-" + s
	}
	return s
}

func (r Radix[T]) digits(uppercase bool) (neg bool, s string) {
	base := r.Base()
	if isSigned[T]() {
		v := int64(r.value)
		s = strconv.FormatInt(v, base)
		if v < 0 {
			neg, s = true, s[1:]
		}
	} else {
		s = strconv.FormatUint(uint64(r.value), base)
	}
	if uppercase {
		s = strings.ToUpper(s)
	}
	return neg, s
}

// Format implements fmt.Formatter.
//
//	%s, %v   the digits, as String
//	%#s      the digits with the prefix for the base
//	%#v      GoString
//	%q       the quoted digits; %#q includes the prefix
//
// Width and the '-' flag are honoured for the verbs above. All other verbs
// (%d, %x, %X, %o, %O, %b, ...) are applied to the wrapped integer.
func (r Radix[T]) Format(s fmt.State, c rune) {
	var str string
	switch c {
	case 'v':
		if s.Flag('#') {
			str = r.GoString()
		} else {
			str = r.String()
		}
	case 's':
		str = r.Text(s.Flag('#'), true)
	case 'q':
		str = strconv.Quote(r.Text(s.Flag('#'), true))
	default:
		fmt.Fprintf(s, fmt.FormatString(s, c), r.value)
		return
	}

	if w, ok := s.Width(); ok && w > len(str) {
		pad := strings.Repeat(" ", w-len(str))
		if s.Flag('-') {
			str += pad
		} else {
			str = pad + str
		}
	}
	_, _ = io.WriteString(s, str)
}

func (r Radix[T]) MarshalText() ([]byte, error) {
	return []byte(r.Text(true, true)), nil
}

// UnmarshalText parses bts in the base of r. If r has no base yet, as with
// a zero Radix, the base is taken from the prefix of bts ("0b", "0o" or
// "0x"), or is 10 if there is none.
func (r *Radix[T]) UnmarshalText(bts []byte) (err error) {
	return r.unmarshal("UnmarshalText", string(bts))
}

func (r Radix[T]) MarshalJSON() ([]byte, error) {
	return []byte(`"` + r.Text(true, true) + `"`), nil
}

// UnmarshalJSON accepts a JSON string, or a bare JSON number, holding digits
// in the base of r. A zero Radix picks its base as UnmarshalText does.
func (r *Radix[T]) UnmarshalJSON(bts []byte) (err error) {
	if len(bts) > 0 && bts[0] == '"' {
		ln := len(bts)
		if ln < 2 || bts[ln-1] != '"' {
			return fmt.Errorf("radix: invalid JSON %q", string(bts))
		}
		bts = bts[1 : ln-1]
	}

	return r.unmarshal("UnmarshalJSON", string(bts))
}

func (r *Radix[T]) unmarshal(fn string, s string) error {
	base := r.base
	if base == 0 {
		base = sniffBase(s)
	}
	v, err := parseValue[T](s, base)
	if err != nil {
		return &ParseError{Func: fn, Input: s, Base: base, Type: typeName[T](), Err: err}
	}
	r.value, r.base = v, base
	return nil
}
