// File: ringbuf/ring.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// RingBuffer is a bounded circular FIFO with wrapping head/tail indices.
// head points at the oldest live element, tail at the next write slot.
// head == tail is the empty sentinel; the slot before head never holds a
// live element, so a buffer over N slots stores at most N-1 items.

package ringbuf

import "github.com/momentics/ringq/api"

// Ensure compile-time interface compliance.
var _ api.Ring[any] = (*RingBuffer[any])(nil)

// RingBuffer is a single-owner bounded FIFO. Not safe for concurrent
// use; callers that share one across goroutines own the locking.
type RingBuffer[T any] struct {
	storage []T
	head    int
	tail    int
}

// New wraps caller-supplied backing storage. Capacity is fixed at
// len(storage) for the lifetime of the buffer; at most len(storage)-1
// elements can be held. Panics if storage is empty, since no valid
// head/tail state exists for zero slots.
func New[T any](storage []T) *RingBuffer[T] {
	if len(storage) == 0 {
		panic("ringbuf: backing storage must have at least one slot")
	}
	return &RingBuffer[T]{storage: storage}
}

// NewSize allocates backing storage of n slots. Panics if n < 1.
func NewSize[T any](n int) *RingBuffer[T] {
	if n < 1 {
		panic("ringbuf: size must be at least one slot")
	}
	return New(make([]T, n))
}

// Len returns the number of elements currently queued.
func (r *RingBuffer[T]) Len() int {
	switch {
	case r.tail > r.head:
		return r.tail - r.head
	case r.tail < r.head:
		return len(r.storage) - r.head + r.tail
	default:
		return 0
	}
}

// Cap returns the number of backing slots. Usable capacity is Cap()-1.
func (r *RingBuffer[T]) Cap() int {
	return len(r.storage)
}

// Available returns the number of further Enqueue calls guaranteed to
// succeed before IsFull becomes true.
func (r *RingBuffer[T]) Available() int {
	free := len(r.storage) - 1 - r.Len()
	if free < 0 {
		return 0
	}
	return free
}

// HasElements reports whether at least one element is queued.
func (r *RingBuffer[T]) HasElements() bool {
	return r.head != r.tail
}

// IsEmpty reports whether the buffer holds no elements.
func (r *RingBuffer[T]) IsEmpty() bool {
	return r.head == r.tail
}

// IsFull reports whether exactly one free slot remains, the one that
// keeps head == tail meaning empty.
func (r *RingBuffer[T]) IsFull() bool {
	return r.head == (r.tail+1)%len(r.storage)
}

// Enqueue appends val; returns false without mutating anything if full.
func (r *RingBuffer[T]) Enqueue(val T) bool {
	if r.IsFull() {
		return false
	}
	r.storage[r.tail] = val
	r.tail = (r.tail + 1) % len(r.storage)
	return true
}

// Dequeue removes and returns the oldest element; ok is false and the
// buffer is untouched when empty. The vacated slot is not cleared.
func (r *RingBuffer[T]) Dequeue() (T, bool) {
	if r.head == r.tail {
		var zero T
		return zero, false
	}
	val := r.storage[r.head]
	r.head = (r.head + 1) % len(r.storage)
	return val, true
}

// Peek returns the oldest element without removing it; ok is false
// when empty.
func (r *RingBuffer[T]) Peek() (T, bool) {
	if r.head == r.tail {
		var zero T
		return zero, false
	}
	return r.storage[r.head], true
}

// Reset drops all queued elements. Storage is retained, not cleared.
func (r *RingBuffer[T]) Reset() {
	r.head = 0
	r.tail = 0
}
