package vec

import (
	"github.com/sghaida/vek/buf"
)

// Vector is a contiguous, resizable sequence of T.
//
// It exclusively owns one buffer via buf.Owner and maintains the invariant
// 0 <= size <= capacity, with capacity equal to the owner's allocated slot
// count. The first size slots hold the logical elements; slots in
// [size, capacity) hold zero or stale values and are never exposed through
// the public interface. When capacity is 0 no block is held.
//
// The zero value is an empty vector, but constructors return pointers so
// identity comparisons (Equal on the same instance, Assign self-check) work
// naturally; prefer New and friends.
type Vector[T any] struct {
	items    buf.Owner[T]
	size     int
	capacity int
}

// New returns an empty vector: size 0, capacity 0, no allocation.
func New[T any]() *Vector[T] {
	return &Vector[T]{}
}

// NewSize returns a vector of n default-valued elements.
//
// Capacity is exactly n. n must be non-negative.
func NewSize[T any](n int) *Vector[T] {
	assertf(n >= 0, "vec: negative size %d", n)
	return &Vector[T]{items: buf.Alloc[T](n), size: n, capacity: n}
}

// NewFill returns a vector of n elements, each a copy of value.
//
// Capacity is exactly n.
func NewFill[T any](n int, value T) *Vector[T] {
	v := NewSize[T](n)
	raw := v.items.Raw()
	for i := range raw {
		raw[i] = value
	}
	return v
}

// Of returns a vector holding the given values in order.
//
// Size and capacity both equal len(values).
func Of[T any](values ...T) *Vector[T] {
	v := NewSize[T](len(values))
	copy(v.items.Raw(), values)
	return v
}

// NewHint returns an empty vector with capacity pre-reserved per the hint.
//
// No elements are initialized; the point is to avoid repeated reallocation
// on a subsequent burst of PushBack calls.
func NewHint[T any](h CapacityHint) *Vector[T] {
	v := New[T]()
	v.Reserve(h.Capacity())
	return v
}

// Clone returns a deep copy of the logical elements.
//
// The copy's capacity equals the element count, not the source's capacity:
// unused slack is not carried over.
func (v *Vector[T]) Clone() *Vector[T] {
	cp := NewSize[T](v.size)
	copy(cp.items.Raw(), v.items.Raw()[:v.size])
	return cp
}

// Move transfers the buffer, size and capacity to the returned vector in
// constant time and leaves the receiver empty (size 0, capacity 0).
func (v *Vector[T]) Move() *Vector[T] {
	m := &Vector[T]{items: v.items.Move(), size: v.size, capacity: v.capacity}
	v.size = 0
	v.capacity = 0
	return m
}

// Assign replaces the receiver's contents with a deep copy of src,
// copy-and-swap style: the copy is built first, then internals are
// exchanged. A panic while copying leaves the receiver untouched, and
// assigning a vector to itself is a no-op.
func (v *Vector[T]) Assign(src *Vector[T]) {
	if v == src {
		return
	}
	tmp := src.Clone()
	v.Swap(tmp)
}

// MoveFrom adopts src's buffer, size and capacity in constant time and
// resets src to the empty state. The receiver's previous buffer is dropped.
//
// Self-move (v.MoveFrom(v)) is a guarded no-op.
func (v *Vector[T]) MoveFrom(src *Vector[T]) {
	if v == src {
		return
	}
	v.items.Release()
	v.items = src.items.Move()
	v.size = src.size
	v.capacity = src.capacity
	src.size = 0
	src.capacity = 0
}

// Swap exchanges the receiver's internals with other.
func (v *Vector[T]) Swap(other *Vector[T]) {
	v.items.Swap(&other.items)
	v.size, other.size = other.size, v.size
	v.capacity, other.capacity = other.capacity, v.capacity
}

// reallocate is the single growth primitive: allocate a fresh block of
// exactly newCap slots, relocate the logical elements, swap ownership with
// the old block and drop it.
func (v *Vector[T]) reallocate(newCap int) {
	next := buf.Alloc[T](newCap)
	copy(next.Raw(), v.items.Raw()[:v.size])
	v.items.Swap(&next)
	v.capacity = newCap
	next.Release()
}

// Reserve grows capacity to exactly newCap if newCap exceeds the current
// capacity; otherwise it does nothing. Reserve never shrinks.
func (v *Vector[T]) Reserve(newCap int) {
	assertf(newCap >= 0, "vec: negative capacity %d", newCap)
	if newCap > v.capacity {
		v.reallocate(newCap)
	}
}

// PushBack appends value, growing capacity 0 -> 1, then doubling when full.
func (v *Vector[T]) PushBack(value T) {
	if v.capacity == 0 {
		v.reallocate(1)
	}
	if v.size == v.capacity {
		v.reallocate(v.capacity * 2)
	}
	v.items.Raw()[v.size] = value
	v.size++
}

// Insert places value at position pos and returns the insertion index.
//
// pos must be in [0, Len()]; pos == Len() appends. With spare capacity the
// tail is shifted right in place. When full, a fresh buffer of max(1,
// 2*capacity) is built, prefix/value/suffix are relocated into it and it is
// adopted; any previously taken Slice views refer to the discarded buffer
// after that path.
func (v *Vector[T]) Insert(pos int, value T) int {
	assertf(pos >= 0 && pos <= v.size, "vec: insert position %d out of range [0, %d]", pos, v.size)

	if v.size < v.capacity {
		raw := v.items.Raw()
		copy(raw[pos+1:v.size+1], raw[pos:v.size])
		raw[pos] = value
		v.size++
		return pos
	}

	newCap := 1
	if v.capacity > 0 {
		newCap = v.capacity * 2
	}
	next := buf.Alloc[T](newCap)
	fresh, old := next.Raw(), v.items.Raw()
	copy(fresh, old[:pos])
	fresh[pos] = value
	copy(fresh[pos+1:], old[pos:v.size])
	v.items.Swap(&next)
	v.capacity = newCap
	v.size++
	next.Release()
	return pos
}

// PopBack drops the last element. The vector must be non-empty.
//
// Deletion is lazy: only the logical size shrinks, the slot keeps its last
// value until overwritten.
func (v *Vector[T]) PopBack() {
	assertf(v.size > 0, "vec: PopBack on empty vector")
	v.size--
}

// Erase removes the element at pos, shifting the tail left, and returns
// pos, which now holds the element that followed. pos must be in
// [0, Len()). Capacity is untouched.
func (v *Vector[T]) Erase(pos int) int {
	assertf(pos >= 0 && pos < v.size, "vec: erase position %d out of range [0, %d)", pos, v.size)
	raw := v.items.Raw()
	copy(raw[pos:], raw[pos+1:v.size])
	v.size--
	return pos
}

// Get returns the element at index i without bounds recovery: i outside
// [0, Len()) is a precondition violation and panics.
func (v *Vector[T]) Get(i int) T {
	assertf(i >= 0 && i < v.size, "vec: index %d out of range [0, %d)", i, v.size)
	return v.items.Raw()[i]
}

// Set overwrites the element at index i. Same precondition as Get.
func (v *Vector[T]) Set(i int, value T) {
	assertf(i >= 0 && i < v.size, "vec: index %d out of range [0, %d)", i, v.size)
	v.items.Raw()[i] = value
}

// At returns the element at index i, or an OutOfRangeError when i is
// outside [0, Len()). The vector is never modified.
func (v *Vector[T]) At(i int) (T, error) {
	if i < 0 || i >= v.size {
		var zero T
		return zero, OutOfRangeError{Index: i, Size: v.size}
	}
	return v.items.Raw()[i], nil
}

// Clear truncates the vector to size 0 in O(1). Capacity and slot contents
// are untouched.
func (v *Vector[T]) Clear() {
	v.size = 0
}

// Resize sets the logical size to newSize.
//
// Growth beyond capacity reallocates to max(newSize, 2*capacity). Newly
// exposed slots in [old size, newSize) are zeroed, which also scrubs stale
// values left behind by lazy deletion. Shrinking is a pure truncation.
func (v *Vector[T]) Resize(newSize int) {
	assertf(newSize >= 0, "vec: negative size %d", newSize)
	if newSize > v.capacity {
		v.reallocate(max(newSize, v.capacity*2))
	}
	if newSize > v.size {
		clear(v.items.Raw()[v.size:newSize])
	}
	v.size = newSize
}

// Len returns the logical element count.
func (v *Vector[T]) Len() int {
	return v.size
}

// Cap returns the allocated slot count.
func (v *Vector[T]) Cap() int {
	return v.capacity
}

// IsEmpty reports whether the vector holds no elements.
func (v *Vector[T]) IsEmpty() bool {
	return v.size == 0
}
