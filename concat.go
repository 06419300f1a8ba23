package tinystr

import "strings"

// Concat joins parts into a single string backed by one allocation.
//
// The total capacity is precomputed from the sum of the input lengths, so
// the result never reallocates while being filled. This is a convenience
// for callers gluing a handful of fragments together; it is not bounded by
// MaxLen and does not produce a String.
func Concat(parts ...string) string {
	n := 0
	for _, p := range parts {
		n += len(p)
	}
	var b strings.Builder
	b.Grow(n)
	for _, p := range parts {
		b.WriteString(p)
	}
	return b.String()
}
