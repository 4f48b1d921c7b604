package session

// Prepend returns a new slice holding item followed by seq, truncated to
// the first limit elements. seq is not modified.
func Prepend[T any](item T, seq []T, limit int) []T {
	n := len(seq) + 1
	if n > limit {
		n = limit
	}
	if n <= 0 {
		return []T{}
	}
	out := make([]T, 0, n)
	out = append(out, item)
	return append(out, seq[:n-1]...)
}
