package radix

import (
	"fmt"
	"strings"
)

// FromSlice wraps each element of vs in a Radix with the given base.
func FromSlice[T Integer](vs []T, base int) ([]Radix[T], error) {
	if !ValidBase(base) {
		return nil, baseError(base)
	}
	out := make([]Radix[T], len(vs))
	for i, v := range vs {
		out[i] = Radix[T]{value: v, base: base}
	}
	return out, nil
}

// FromBytes wraps each byte of b in a Radix with the given base.
func FromBytes(b []byte, base int) ([]Radix[uint8], error) {
	return FromSlice(b, base)
}

// ParseSlice parses each element of ss with Parse. It stops at the first
// string that fails; the returned error names its index.
func ParseSlice[T Integer](ss []string, base int) ([]Radix[T], error) {
	if !ValidBase(base) {
		return nil, baseError(base)
	}
	out := make([]Radix[T], len(ss))
	for i, s := range ss {
		r, err := Parse[T](s, base)
		if err != nil {
			return nil, fmt.Errorf("radix: element %d: %w", i, err)
		}
		out[i] = r
	}
	return out, nil
}

// Values extracts the wrapped integers from rs.
func Values[T Integer](rs []Radix[T]) []T {
	out := make([]T, len(rs))
	for i, r := range rs {
		out[i] = r.value
	}
	return out
}

// Strings renders each element of rs with st.
func Strings[T Integer](rs []Radix[T], st Style) []string {
	out := make([]string, len(rs))
	for i, r := range rs {
		out[i] = r.Styled(st)
	}
	return out
}

// Join renders each element of rs with st and joins the results with sep.
func Join[T Integer](rs []Radix[T], sep string, st Style) string {
	return strings.Join(Strings(rs, st), sep)
}

// Literal renders rs as a Go slice literal, i.e. "[]uint8{0x00, 0xFF}".
// Prefixes are always included, and any grouping uses underscores, so the
// result is valid Go source. Elements whose base has no literal prefix are
// written in decimal, without padding.
func Literal[T Integer](rs []Radix[T], st Style) string {
	st.Prefix = true

	var sb strings.Builder
	sb.WriteString("[]")
	sb.WriteString(typeName[T]())
	sb.WriteByte('{')
	for i, r := range rs {
		if i > 0 {
			sb.WriteString(", ")
		}
		if r.Prefix() == "" {
			// Leading zeros would turn a decimal literal into an octal one.
			r.base = 10
			sb.WriteString(r.Styled(Style{SplitEvery: st.SplitEvery, Prefix: true}))
			continue
		}
		sb.WriteString(r.Styled(st))
	}
	sb.WriteByte('}')
	return sb.String()
}
