// Package vek provides a generic, contiguous, resizable sequence container
// with explicit size/capacity bookkeeping and geometric growth.
//
// The repository is intentionally small:
//
//   - vec: the Vector container itself (construction, growth, insertion,
//     removal, checked/unchecked access, iteration and relational helpers)
//   - buf: the raw-buffer owner the container delegates all allocation to;
//     a move-only handle over a block of slots, so the container itself
//     never manages memory
//   - examples/basic: a runnable end-to-end example
//
// The container is single-threaded by design: no internal locking, no I/O,
// no blocking. Concurrent readers are safe only while no goroutine mutates.
//
// Start with the vec package documentation and examples/basic for usage.
package vek
