// Package pool
// Author: momentics <momentics@gmail.com>
//
// Bounded object recycling for ringq.
// A FreeList keeps a fixed number of idle objects in a ring buffer and
// hands them back out instead of allocating; BytePool specializes it for
// fixed-size byte slabs, Batch collects items for bulk hand-off into a
// ring. Everything here shares the library's single-owner discipline.
// See freelist.go, bytepool.go, batch.go for implementation details.
package pool
