// Package buf provides the raw-buffer owner the vec container delegates
// allocation to.
//
// An Owner is a move-only handle over a single heap-allocated block of
// default-initialized slots. It is intentionally:
//   - single-owner: exactly one live handle refers to a block at any time
//   - transfer-only: ownership changes hands via Move or Swap, never by
//     reference counting
//   - allocation-only: no resizing, no pooling, no custom allocators
//
// Go has no destructors, so "release on destruction" maps to the handle
// dropping its block (Release, Move, or being swapped away) and the garbage
// collector reclaiming it. Callers must not copy an Owner value; a copy
// aliases the block and breaks the single-owner contract. All methods use
// pointer receivers to discourage it.
package buf

// Owner is a move-only owning handle over a block of slots.
//
// The zero value owns nothing and is ready to use.
type Owner[T any] struct {
	slots []T
}

// Alloc allocates a block of n default-initialized slots and returns the
// owning handle. n == 0 allocates nothing; the returned handle is nil.
func Alloc[T any](n int) Owner[T] {
	if n == 0 {
		return Owner[T]{}
	}
	return Owner[T]{slots: make([]T, n)}
}

// Raw returns the raw view over every allocated slot.
//
// The view is invalidated as soon as the block changes hands (Swap, Move,
// Release). A nil handle returns a nil view.
func (o *Owner[T]) Raw() []T {
	return o.slots
}

// Len returns the number of allocated slots.
func (o *Owner[T]) Len() int {
	return len(o.slots)
}

// IsNil reports whether the handle holds no block.
func (o *Owner[T]) IsNil() bool {
	return o.slots == nil
}

// Swap exchanges blocks with another handle.
//
// Swap is the sole in-place mutation primitive; the container's reallocation
// funnels through it.
func (o *Owner[T]) Swap(other *Owner[T]) {
	o.slots, other.slots = other.slots, o.slots
}

// Move transfers ownership of the block to the returned handle and leaves
// the receiver nil.
func (o *Owner[T]) Move() Owner[T] {
	m := Owner[T]{slots: o.slots}
	o.slots = nil
	return m
}

// Release drops the block. The garbage collector reclaims it once no raw
// views remain.
func (o *Owner[T]) Release() {
	o.slots = nil
}
