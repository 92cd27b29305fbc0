package vec

import "iter"

// Slice returns the mutable contiguous view over the logical range
// [0, Len()).
//
// The view aliases the owned buffer: writes through it are visible to the
// vector, and any reallocation (growth via PushBack/Insert/Reserve/Resize)
// invalidates it. For an empty vector the view may be nil or empty;
// callers must not rely on which.
func (v *Vector[T]) Slice() []T {
	return v.items.Raw()[:v.size]
}

// All returns an index/value iterator over the logical elements, in order.
func (v *Vector[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		raw := v.items.Raw()
		for i := 0; i < v.size; i++ {
			if !yield(i, raw[i]) {
				return
			}
		}
	}
}

// Values returns a value iterator over the logical elements, in order.
func (v *Vector[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		raw := v.items.Raw()
		for i := 0; i < v.size; i++ {
			if !yield(raw[i]) {
				return
			}
		}
	}
}
