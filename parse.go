package radix

import (
	"errors"
	"strconv"
	"strings"
)

// parseValue converts s to a T in the given base, which must already be
// valid. A leading sign is split off before the prefix is stripped, so
// "-0xFF" is accepted but "0x-FF" is not. Unsigned types accept "+", and
// "-" only in front of zero.
//
// The exact-fit check is delegated to strconv by passing the width of T as
// the bit size; unsigned types always use the unsigned intermediate so that
// values above the signed 64-bit range parse.
func parseValue[T Integer](s string, base int) (T, error) {
	sign, digits := splitSign(s)
	if pfx := Prefix(base); pfx != "" && strings.HasPrefix(digits, pfx) {
		digits = digits[len(pfx):]
	}
	if digits == "" || digits[0] == '+' || digits[0] == '-' {
		return 0, ErrSyntax
	}

	bits := bitSize[T]()
	if isSigned[T]() {
		v, err := strconv.ParseInt(sign+digits, base, bits)
		if err != nil {
			return 0, numError(err)
		}
		return T(v), nil
	}

	// Unsigned types take a sign too, but only zero survives a minus.
	v, err := strconv.ParseUint(digits, base, bits)
	if err != nil {
		return 0, numError(err)
	}
	if sign == "-" && v != 0 {
		return 0, ErrRange
	}
	return T(v), nil
}

// sniffBase returns the base named by the prefix of s, after any sign, or 10
// if s has no prefix.
func sniffBase(s string) int {
	_, digits := splitSign(s)
	for _, base := range []int{2, 8, 16} {
		if strings.HasPrefix(digits, Prefix(base)) {
			return base
		}
	}
	return 10
}

func splitSign(s string) (sign, rest string) {
	if len(s) > 0 && (s[0] == '-' || s[0] == '+') {
		return s[:1], s[1:]
	}
	return "", s
}

func numError(err error) error {
	if errors.Is(err, strconv.ErrRange) {
		return ErrRange
	}
	return ErrSyntax
}
