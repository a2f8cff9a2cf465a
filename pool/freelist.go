// File: pool/freelist.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// FreeList recycles objects through a bounded ring buffer. Get prefers
// a recycled object and falls back to the constructor; Put retains up
// to the configured number of idle objects and drops the rest.

package pool

import (
	"github.com/momentics/ringq/api"
	"github.com/momentics/ringq/ringbuf"
)

// FreeList is a fixed-capacity object recycler. Not safe for
// concurrent use; callers own synchronization, as with the ring itself.
type FreeList[T any] struct {
	idle    *ringbuf.RingBuffer[T]
	creator func() T
}

// NewFreeList creates a free list retaining up to capacity idle
// objects. creator produces a fresh object on cache miss.
func NewFreeList[T any](capacity int, creator func() T) (*FreeList[T], error) {
	if capacity < 1 {
		return nil, api.NewError(api.ErrCodeInvalidArgument,
			"free list capacity must be positive").WithContext("capacity", capacity)
	}
	if creator == nil {
		return nil, api.NewError(api.ErrCodeInvalidArgument, "creator must not be nil")
	}
	// One extra slot: the ring sacrifices a slot to disambiguate
	// full from empty, so capacity idle objects need capacity+1 slots.
	return &FreeList[T]{
		idle:    ringbuf.NewSize[T](capacity + 1),
		creator: creator,
	}, nil
}

// Get returns a recycled object, or a freshly constructed one when the
// list is empty.
func (f *FreeList[T]) Get() T {
	if obj, ok := f.idle.Dequeue(); ok {
		return obj
	}
	return f.creator()
}

// Put offers obj back to the list. Returns false when the list is
// already holding its full complement of idle objects; the object is
// dropped and left to the garbage collector.
func (f *FreeList[T]) Put(obj T) bool {
	return f.idle.Enqueue(obj)
}

// Idle returns the number of objects currently retained.
func (f *FreeList[T]) Idle() int {
	return f.idle.Len()
}

// Cap returns the maximum number of idle objects the list retains.
func (f *FreeList[T]) Cap() int {
	return f.idle.Cap() - 1
}
