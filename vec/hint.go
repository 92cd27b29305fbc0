package vec

// CapacityHint requests pre-allocation without element construction.
//
// It is an immutable integer wrapper with no behavior of its own; it exists
// only to disambiguate "reserve n capacity, size 0" (NewHint) from
// "construct n default elements" (NewSize).
//
// Hints are typically built inline:
//
//	v := vec.NewHint[int](vec.Reserve(64))
type CapacityHint struct {
	capacity int
}

// Reserve builds a CapacityHint for n slots.
//
// n must be non-negative.
func Reserve(n int) CapacityHint {
	assertf(n >= 0, "vec: negative capacity hint %d", n)
	return CapacityHint{capacity: n}
}

// Capacity returns the requested slot count.
func (h CapacityHint) Capacity() int {
	return h.capacity
}
