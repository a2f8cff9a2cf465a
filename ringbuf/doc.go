// Package ringbuf
// Author: momentics <momentics@gmail.com>
//
// Fixed-capacity circular FIFO buffer over a contiguous backing slice.
// Single-owner and single-threaded: no locks, no atomics, all operations
// O(1) with no allocation on the hot path. One storage slot is sacrificed
// so that head == tail always means empty; a buffer backed by N slots
// holds at most N-1 elements.
// See ring.go for implementation details.
package ringbuf
