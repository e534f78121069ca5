package seqgo

import (
	"cmp"
	"slices"
)

// Compare performs a deep, element-wise three-way lexicographic comparison
// of a and b. Elements are compared in order; the first difference decides.
// When one sequence is a strict prefix of the other, the shorter compares
// as less. The result is -1, 0 or +1.
func Compare[T cmp.Ordered](a, b *Array[T]) int {
	return slices.Compare(a.Slice(), b.Slice())
}

// CompareFunc is Compare with a caller-supplied three-way element
// comparison, for element types that are not cmp.Ordered.
func CompareFunc[T any](a, b *Array[T], compare func(x, y T) int) int {
	return slices.CompareFunc(a.Slice(), b.Slice(), compare)
}

// Equal reports whether a and b compare as equal: same length and all
// corresponding elements equal. It is defined through Compare, so Equal and
// the ordering predicates can never disagree.
func Equal[T cmp.Ordered](a, b *Array[T]) bool {
	return Compare(a, b) == 0
}

// EqualFunc is Equal with a caller-supplied three-way element comparison.
func EqualFunc[T any](a, b *Array[T], compare func(x, y T) int) bool {
	return CompareFunc(a, b, compare) == 0
}

// Less reports whether a orders strictly before b.
func Less[T cmp.Ordered](a, b *Array[T]) bool {
	return Compare(a, b) < 0
}

// LessOrEqual reports whether a orders before b or equals it.
func LessOrEqual[T cmp.Ordered](a, b *Array[T]) bool {
	return Compare(a, b) <= 0
}

// Greater reports whether a orders strictly after b.
func Greater[T cmp.Ordered](a, b *Array[T]) bool {
	return Compare(a, b) > 0
}

// GreaterOrEqual reports whether a orders after b or equals it.
func GreaterOrEqual[T cmp.Ordered](a, b *Array[T]) bool {
	return Compare(a, b) >= 0
}
