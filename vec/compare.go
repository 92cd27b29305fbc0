package vec

import (
	"cmp"
	"slices"
)

// Relational helpers are free functions rather than methods so they can
// carry tighter constraints than Vector's own `any`: equality needs
// comparable elements, ordering needs cmp.Ordered ones. Capacity never
// participates in comparison; only the logical elements do.

// Equal reports whether a and b hold the same elements in the same order.
//
// Identity is checked first, so a vector always equals itself, even while
// its contents are in a post-move state. Vectors with equal elements but
// different capacities compare equal.
func Equal[T comparable](a, b *Vector[T]) bool {
	if a == b {
		return true
	}
	return slices.Equal(a.Slice(), b.Slice())
}

// NotEqual is the negation of Equal.
func NotEqual[T comparable](a, b *Vector[T]) bool {
	return !Equal(a, b)
}

// Less reports whether a precedes b in strict lexicographic order over the
// element sequences.
func Less[T cmp.Ordered](a, b *Vector[T]) bool {
	if a == b {
		return false
	}
	return slices.Compare(a.Slice(), b.Slice()) < 0
}

// LessEqual reports a <= b, derived as !(b < a).
func LessEqual[T cmp.Ordered](a, b *Vector[T]) bool {
	return !Less(b, a)
}

// Greater reports a > b, derived as b < a.
func Greater[T cmp.Ordered](a, b *Vector[T]) bool {
	return Less(b, a)
}

// GreaterEqual reports a >= b, derived as !(a < b).
func GreaterEqual[T cmp.Ordered](a, b *Vector[T]) bool {
	return !Less(a, b)
}
