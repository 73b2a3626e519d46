package radix

const (
	MinBase = 2
	MaxBase = 36

	// nibbleBits is the width of one hex digit.
	nibbleBits = 4

	intSize = 32 << (^uint(0) >> 63)
)

// Signed is satisfied by every fixed-width signed integer type.
type Signed interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

// Unsigned is satisfied by every fixed-width unsigned integer type.
type Unsigned interface {
	~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Integer is the constraint for the value wrapped by a Radix.
type Integer interface {
	Signed | Unsigned
}

// ValidBase reports whether base can be used to construct a Radix.
func ValidBase(base int) bool {
	return base >= MinBase && base <= MaxBase
}

// Prefix returns the literal prefix used for base: "0b" for 2, "0o" for 8,
// "0x" for 16 and "" for everything else.
func Prefix(base int) string {
	switch base {
	case 2:
		return "0b"
	case 8:
		return "0o"
	case 16:
		return "0x"
	default:
		return ""
	}
}
