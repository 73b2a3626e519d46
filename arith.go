package radix

// The methods in this file are thin wrappers around Go's own integer
// operators. They wrap on overflow exactly as T does and keep the base of
// the receiver.

func (r Radix[T]) with(v T) Radix[T] { return Radix[T]{value: v, base: r.base} }

func (r Radix[T]) IsZero() bool { return r.value == 0 }

func (r Radix[T]) Inc() Radix[T]       { return r.with(r.value + 1) }
func (r Radix[T]) Dec() Radix[T]       { return r.with(r.value - 1) }
func (r Radix[T]) Add(n T) Radix[T]    { return r.with(r.value + n) }
func (r Radix[T]) Sub(n T) Radix[T]    { return r.with(r.value - n) }
func (r Radix[T]) Mul(n T) Radix[T]    { return r.with(r.value * n) }
func (r Radix[T]) Not() Radix[T]       { return r.with(^r.value) }
func (r Radix[T]) And(n T) Radix[T]    { return r.with(r.value & n) }
func (r Radix[T]) Or(n T) Radix[T]     { return r.with(r.value | n) }
func (r Radix[T]) Xor(n T) Radix[T]    { return r.with(r.value ^ n) }
func (r Radix[T]) AndNot(n T) Radix[T] { return r.with(r.value &^ n) }
func (r Radix[T]) Lsh(n uint) Radix[T] { return r.with(r.value << n) }
func (r Radix[T]) Rsh(n uint) Radix[T] { return r.with(r.value >> n) }

// Quo returns the quotient r/by for by != 0. If by == 0, a division-by-zero
// run-time panic occurs. Quo implements truncated division (like Go).
func (r Radix[T]) Quo(by T) Radix[T] { return r.with(r.value / by) }

// Rem returns the remainder r%by for by != 0. If by == 0, a division-by-zero
// run-time panic occurs.
func (r Radix[T]) Rem(by T) Radix[T] { return r.with(r.value % by) }

// QuoRem returns the quotient and remainder of r/by; see Quo.
func (r Radix[T]) QuoRem(by T) (q, rem Radix[T]) {
	return r.with(r.value / by), r.with(r.value % by)
}

// Cmp compares r to n and returns -1, 0 or +1.
func (r Radix[T]) Cmp(n T) int {
	if r.value < n {
		return -1
	} else if r.value > n {
		return 1
	}
	return 0
}

// Equal reports whether the wrapped value equals n. Unlike ==, the base is
// ignored.
func (r Radix[T]) Equal(n T) bool            { return r.value == n }
func (r Radix[T]) GreaterThan(n T) bool      { return r.value > n }
func (r Radix[T]) GreaterOrEqualTo(n T) bool { return r.value >= n }
func (r Radix[T]) LessThan(n T) bool         { return r.value < n }
func (r Radix[T]) LessOrEqualTo(n T) bool    { return r.value <= n }
