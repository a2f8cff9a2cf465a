// File: ringbuf/export_test.go
// Author: momentics <momentics@gmail.com>
//
// Test-only access to the physical state. logicalView is the model
// function: a pure reconstruction of the queued sequence from
// (storage, head, tail), used by tests and never by production code.

package ringbuf

// indices exposes head and tail for no-mutation assertions.
func (r *RingBuffer[T]) indices() (head, tail int) {
	return r.head, r.tail
}

// logicalView rebuilds the logical sequence: element i lives at
// storage[(head+i) mod cap].
func logicalView[T any](r *RingBuffer[T]) []T {
	view := make([]T, 0, r.Len())
	for i := 0; i < r.Len(); i++ {
		view = append(view, r.storage[(r.head+i)%len(r.storage)])
	}
	return view
}
