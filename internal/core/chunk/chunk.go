// Package chunk partitions ordered slices into bounded, contiguous batches
package chunk

// Split partitions xs into consecutive chunks of at most size elements.
// Order is preserved, chunks never overlap, and the final chunk may be short.
// Concatenating the returned chunks reproduces xs exactly.
//
// Chunks share backing storage with xs; callers must not mutate them if xs
// is reused. size < 1 returns nil so a bad caller fails loudly downstream
// rather than looping forever here.
func Split[T any](xs []T, size int) [][]T {
	if size < 1 {
		return nil
	}
	if len(xs) == 0 {
		return [][]T{}
	}
	out := make([][]T, 0, (len(xs)+size-1)/size)
	for lo := 0; lo < len(xs); lo += size {
		hi := lo + size
		if hi > len(xs) {
			hi = len(xs)
		}
		out = append(out, xs[lo:hi:hi])
	}
	return out
}

// Count returns the number of chunks Split would produce for n elements
func Count(n, size int) int {
	if size < 1 || n <= 0 {
		return 0
	}
	return (n + size - 1) / size
}
