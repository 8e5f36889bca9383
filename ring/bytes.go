// File: ring/bytes.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Ring store over raw fixed-width records kept in one contiguous block.

package ring

import (
	"math"

	"github.com/momentics/hioload-ring/api"
)

// Ensure compile-time interface compliance.
var (
	_ api.ByteRing    = (*ByteStore)(nil)
	_ api.Diagnostics = (*ByteStore)(nil)
)

// ByteStore is a fixed-capacity FIFO of elemSize-byte records.
type ByteStore struct {
	cursors
	elemSize int
	data     []byte
}

// NewBytes allocates capacity*elemSize zeroed bytes.
// It fails when capacity <= 1, elemSize <= 0, or the product overflows int.
func NewBytes(elemSize, capacity int) (*ByteStore, error) {
	if elemSize <= 0 {
		return nil, api.FromSentinel(api.ErrCodeInvalidArgument, api.ErrInvalidElementSize).
			WithContext("element_size", elemSize)
	}
	c, err := newCursors(capacity)
	if err != nil {
		return nil, err
	}
	if capacity > math.MaxInt/elemSize {
		return nil, api.FromSentinel(api.ErrCodeInvalidArgument, api.ErrStorageOverflow).
			WithContext("capacity", capacity).
			WithContext("element_size", elemSize)
	}
	return &ByteStore{
		cursors:  c,
		elemSize: elemSize,
		data:     make([]byte, capacity*elemSize),
	}, nil
}

// Destroy releases the backing storage. A second call is a no-op.
func (b *ByteStore) Destroy() {
	if b.data == nil {
		return
	}
	b.data = nil
}

// ElementSize returns the fixed record width in bytes.
func (b *ByteStore) ElementSize() int {
	return b.elemSize
}

func (b *ByteStore) slot(i int) []byte {
	off := i * b.elemSize
	return b.data[off : off+b.elemSize : off+b.elemSize]
}

// Push copies elem into the head slot. A short elem leaves the rest of the
// slot zeroed; bytes beyond ElementSize are ignored.
func (b *ByteStore) Push(elem []byte) {
	dst := b.slot(b.head)
	n := copy(dst, elem)
	clear(dst[n:])
	b.advanceHead()
}

// Pop copies the oldest record into out (up to len(out) bytes), zeroes its
// slot and returns 1. Returns 0 and leaves out untouched when empty.
func (b *ByteStore) Pop(out []byte) int {
	if b.IsEmpty() {
		return 0
	}
	src := b.slot(b.tail)
	copy(out, src)
	clear(src)
	b.advanceTail()
	return 1
}
