// File: pool/batch.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Batch collects items without locks for bulk hand-off. Not thread-safe;
// append-only in the hot path, drained into a ring in FIFO order.

package pool

import "github.com/momentics/ringq/ringbuf"

// Batch is a minimal zero-alloc batch of items.
type Batch[T any] struct {
	items []T
}

// NewBatch creates a new batch with the given capacity hint.
func NewBatch[T any](capacity int) *Batch[T] {
	return &Batch[T]{
		items: make([]T, 0, capacity),
	}
}

// Append adds an item to the batch.
func (b *Batch[T]) Append(item T) {
	b.items = append(b.items, item)
}

// Len returns number of items in the batch.
func (b *Batch[T]) Len() int {
	return len(b.items)
}

// Get retrieves the item at index.
func (b *Batch[T]) Get(idx int) T {
	return b.items[idx]
}

// Slice returns a zero-copy sub-batch [start:end).
func (b *Batch[T]) Slice(start, end int) *Batch[T] {
	return &Batch[T]{items: b.items[start:end]}
}

// Split divides the batch at idx into two sub-batches.
func (b *Batch[T]) Split(idx int) (first, second *Batch[T]) {
	return &Batch[T]{items: b.items[:idx]}, &Batch[T]{items: b.items[idx:]}
}

// Underlying returns the underlying slice.
func (b *Batch[T]) Underlying() []T {
	return b.items
}

// Reset clears the batch retaining the underlying storage.
func (b *Batch[T]) Reset() {
	b.items = b.items[:0]
}

// DrainInto enqueues the batch into ring in order, stopping at the
// first refused enqueue. Moved items are removed from the front of the
// batch; the count moved is returned.
func (b *Batch[T]) DrainInto(ring *ringbuf.RingBuffer[T]) int {
	moved := 0
	for _, item := range b.items {
		if !ring.Enqueue(item) {
			break
		}
		moved++
	}
	b.items = b.items[moved:]
	return moved
}
