package radix

import "strings"

// roundUpToMultiple returns n rounded up to the next multiple of m. If m is
// not positive, n is returned unchanged.
func roundUpToMultiple(n, m int) int {
	if m <= 0 || n < 0 {
		return n
	}
	return n + (m-n%m)%m
}

// padLeft left-pads s with '0' until it is width characters long. Strings
// that are already long enough are returned as-is.
func padLeft(s string, width int) string {
	if n := width - len(s); n > 0 {
		return strings.Repeat("0", n) + s
	}
	return s
}

// splitRight splits s into chunks of size n counting from the right, so
// only the leftmost chunk may be short.
func splitRight(s string, n int) []string {
	if n <= 0 || len(s) <= n {
		return []string{s}
	}
	out := make([]string, 0, (len(s)+n-1)/n)
	head := len(s) % n
	if head > 0 {
		out = append(out, s[:head])
	}
	for i := head; i < len(s); i += n {
		out = append(out, s[i:i+n])
	}
	return out
}
