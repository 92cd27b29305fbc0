// Package vec implements a generic, contiguous, resizable sequence
// container: a dynamic array with explicit size/capacity bookkeeping.
//
// A Vector owns a single buffer (via buf.Owner) and tracks a logical size
// distinct from the allocated capacity. Appends grow the buffer
// geometrically (capacity 0 becomes 1, then doubles), so PushBack is
// amortized O(1). All buffer replacement funnels through one reallocation
// primitive: allocate a fresh block, relocate the logical elements, swap
// ownership.
//
// Positions are plain indices. Insert and Erase take an index and return
// the index of the affected slot; iteration over the logical range is
// exposed through Slice, All and Values.
//
// Two failure classes exist, and they are deliberately different:
//
//   - Precondition violations (unchecked index out of range, PopBack on an
//     empty vector, Insert/Erase with an out-of-bounds position) panic.
//     These are programmer errors, not recoverable conditions, and must not
//     be used for flow control.
//   - Checked access via At returns an OutOfRangeError instead, leaving the
//     vector unmodified.
//
// Removal is lazy: PopBack and Erase shrink the logical size without
// clearing the vacated slots; stale values are zeroed only when Resize
// re-exposes the range. Capacity never shrinks short of rebuilding the
// vector.
//
// A Vector is not safe for concurrent mutation. Concurrent read-only access
// is safe only while no goroutine mutates.
package vec
