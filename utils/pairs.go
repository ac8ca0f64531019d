package utils

// Pair holds two consecutive elements of a chunked slice.
type Pair[T any] struct {
	First, Second T
}

// Pairs chunks s into consecutive non-overlapping pairs.
// Returns false if the slice has odd length.
func Pairs[S ~[]T, T any](s S) ([]Pair[T], bool) {
	if len(s)%2 != 0 {
		return nil, false
	}

	out := make([]Pair[T], 0, len(s)/2)
	for i := 0; i < len(s); i += 2 {
		out = append(out, Pair[T]{First: s[i], Second: s[i+1]})
	}

	return out, true
}
