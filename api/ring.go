// Package api
// Author: momentics@gmail.com
//
// Fixed-capacity copy-in/copy-out ring buffer contracts.

package api

// Ring is a fixed-capacity FIFO that stores elements by value.
// When full, Push evicts the oldest unread element instead of failing.
type Ring[T any] interface {
    // Push copies item into the ring, evicting the oldest element if full.
    Push(item T)
    // Pop copies the oldest element into out and returns 1, or returns 0
    // and leaves out untouched when the ring is empty.
    Pop(out *T) int
    // Size returns the number of occupied slots.
    Size() int
    // Capacity returns the raw slot count, sacrificial slot included.
    Capacity() int
    IsEmpty() bool
    IsFull() bool
}

// ByteRing is a Ring over raw fixed-width byte records.
type ByteRing interface {
    Push(elem []byte)
    Pop(out []byte) int
    Size() int
    Capacity() int
    IsEmpty() bool
    IsFull() bool
    // ElementSize returns the fixed record width in bytes.
    ElementSize() int
}

// Diagnostics exposes ring cursors for white-box inspection.
type Diagnostics interface {
    Head() int
    Tail() int
    Size() int
    Capacity() int
}
