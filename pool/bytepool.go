// File: pool/bytepool.go
// Author: momentics <momentics@gmail.com>

package pool

import "github.com/momentics/ringq/api"

// BytePool recycles fixed-size byte slabs through a FreeList.
type BytePool struct {
	list *FreeList[[]byte]
	size int
}

// NewBytePool creates a pool of slabs of the given size, retaining up
// to capacity idle slabs.
func NewBytePool(size, capacity int) (*BytePool, error) {
	if size < 1 {
		return nil, api.NewError(api.ErrCodeInvalidArgument,
			"slab size must be positive").WithContext("size", size)
	}
	list, err := NewFreeList(capacity, func() []byte {
		return make([]byte, size)
	})
	if err != nil {
		return nil, err
	}
	return &BytePool{list: list, size: size}, nil
}

// GetBuffer returns a slab from the pool, allocating on miss.
func (b *BytePool) GetBuffer() []byte {
	return b.list.Get()
}

// PutBuffer returns a slab to the pool. Slabs of the wrong size are
// rejected, otherwise the slab may be dropped when the pool is full;
// either way the GC handles the memory.
func (b *BytePool) PutBuffer(buf []byte) {
	if len(buf) != b.size {
		return
	}
	b.list.Put(buf)
}

// SlabSize returns the fixed slab size.
func (b *BytePool) SlabSize() int {
	return b.size
}

// Idle returns the number of slabs currently retained.
func (b *BytePool) Idle() int {
	return b.list.Idle()
}
