package radix

import "encoding/binary"

// Bit returns bit pos of the value, counting from the least significant bit.
// Positions outside [0, BitLen()) return 0.
func (r Radix[T]) Bit(pos int) T {
	if pos < 0 || pos >= bitSize[T]() {
		return 0
	}
	return (r.value >> uint(pos)) & 1
}

// BitRadix is Bit, returned as a Radix in the same base as r.
func (r Radix[T]) BitRadix(pos int) Radix[T] {
	return Radix[T]{value: r.Bit(pos), base: r.base}
}

// SetBit replaces bit pos with v, leaving every other bit alone. If v is not
// 0 or 1, or pos is outside [0, BitLen()), r is unchanged and SetBit returns
// false.
func (r *Radix[T]) SetBit(pos int, v T) bool {
	if pos < 0 || pos >= bitSize[T]() || (v != 0 && v != 1) {
		return false
	}
	shift := uint(pos)
	r.value = (r.value &^ (T(1) << shift)) | (v << shift)
	return true
}

// Nibble returns the 4-bit nibble at pos, counting from the least
// significant nibble. Positions outside [0, Nibbles()) return 0.
func (r Radix[T]) Nibble(pos int) T {
	if pos < 0 || pos >= bitSize[T]()/nibbleBits {
		return 0
	}
	return (r.value >> uint(pos*nibbleBits)) & 0xF
}

// NibbleRadix is Nibble, returned as a Radix in the same base as r.
func (r Radix[T]) NibbleRadix(pos int) Radix[T] {
	return Radix[T]{value: r.Nibble(pos), base: r.base}
}

// SetNibble replaces the nibble at pos with v. If v is outside [0, 15], or
// pos is outside [0, Nibbles()), r is unchanged and SetNibble returns false.
func (r *Radix[T]) SetNibble(pos int, v T) bool {
	if pos < 0 || pos >= bitSize[T]()/nibbleBits || v < 0 || v > 0xF {
		return false
	}
	shift := uint(pos * nibbleBits)
	r.value = (r.value &^ (T(0xF) << shift)) | (v << shift)
	return true
}

// Bytes returns the two's complement representation of the value in
// little-endian order. The result always holds BitLen()/8 bytes, whatever
// the base.
func (r Radix[T]) Bytes() []byte {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], uint64(r.value))
	out := make([]byte, bitSize[T]()/8)
	copy(out, buf[:])
	return out
}
