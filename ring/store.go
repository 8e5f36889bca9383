// File: ring/store.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Generic copy-in/copy-out ring store.

package ring

import (
	"unsafe"

	"github.com/momentics/hioload-ring/api"
)

// Ensure compile-time interface compliance.
var (
	_ api.Ring[any]   = (*Store[any])(nil)
	_ api.Diagnostics = (*Store[any])(nil)
)

// Store is a fixed-capacity FIFO of T values.
type Store[T any] struct {
	cursors
	data []T
}

// New allocates a store with capacity slots. It fails when capacity <= 1.
func New[T any](capacity int) (*Store[T], error) {
	c, err := newCursors(capacity)
	if err != nil {
		return nil, err
	}
	return &Store[T]{
		cursors: c,
		data:    make([]T, capacity),
	}, nil
}

// Destroy releases the backing storage. A second call is a no-op; any other
// use after Destroy is undefined.
func (s *Store[T]) Destroy() {
	if s.data == nil {
		return
	}
	s.data = nil
}

// ElementSize returns the width of one stored element in bytes.
func (s *Store[T]) ElementSize() int {
	var zero T
	return int(unsafe.Sizeof(zero))
}

// Push copies item into the ring. On a full ring the oldest element is
// evicted and Size is unchanged.
func (s *Store[T]) Push(item T) {
	s.data[s.head] = item
	s.advanceHead()
}

// Pop copies the oldest element into out, clears its slot and returns 1.
// On an empty ring it returns 0 and out is left untouched. A nil out
// discards the element.
func (s *Store[T]) Pop(out *T) int {
	if s.IsEmpty() {
		return 0
	}
	if out != nil {
		*out = s.data[s.tail]
	}
	var zero T
	s.data[s.tail] = zero
	s.advanceTail()
	return 1
}

// Next pops the oldest element by value; ok is false when empty.
func (s *Store[T]) Next() (item T, ok bool) {
	ok = s.Pop(&item) == 1
	return item, ok
}
