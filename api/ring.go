// Package api
// Author: momentics <momentics@gmail.com>
//
// Bounded FIFO contract implemented by the ringq buffer types.

package api

// Ring is the contract for a fixed-capacity FIFO queue.
//
// Enqueue on a full ring and Dequeue on an empty ring are ordinary
// value-signaled outcomes, never panics. Implementations are not
// required to be safe for concurrent use; callers own synchronization.
type Ring[T any] interface {
	// Enqueue appends an item, returns false if full.
	Enqueue(item T) bool
	// Dequeue removes the oldest item, returns false if empty.
	Dequeue() (T, bool)
	// Len returns the current number of items.
	Len() int
	// Cap returns the fixed capacity of the backing storage.
	Cap() int
	// Available returns how many further Enqueue calls are
	// guaranteed to succeed.
	Available() int
	// HasElements reports whether at least one item is queued.
	HasElements() bool
	// IsFull reports whether the next Enqueue would fail.
	IsFull() bool
}
