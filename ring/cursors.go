// File: ring/cursors.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Cursor arithmetic shared by the typed and byte-width stores.

package ring

import "github.com/momentics/hioload-ring/api"

// cursors tracks the write (head) and read (tail) slots of a ring with
// capacity slots. Occupied count never exceeds capacity-1.
type cursors struct {
	head     int
	tail     int
	capacity int
}

func newCursors(capacity int) (cursors, error) {
	if capacity <= 1 {
		return cursors{}, api.FromSentinel(api.ErrCodeInvalidArgument, api.ErrInvalidCapacity).
			WithContext("capacity", capacity)
	}
	return cursors{capacity: capacity}, nil
}

// wrap returns the slot after i. All cursor movement goes through here.
func (c *cursors) wrap(i int) int {
	return (i + 1) % c.capacity
}

// advanceHead moves head past the slot just written. If that catches up
// with tail the oldest element is dropped by moving tail as well.
func (c *cursors) advanceHead() {
	c.head = c.wrap(c.head)
	if c.head == c.tail {
		c.tail = c.wrap(c.tail)
	}
}

func (c *cursors) advanceTail() {
	c.tail = c.wrap(c.tail)
}

// Capacity returns the raw slot count, including the sacrificial slot.
func (c *cursors) Capacity() int {
	return c.capacity
}

// Size returns the number of occupied slots.
func (c *cursors) Size() int {
	if c.head < c.tail {
		return c.head + (c.capacity - c.tail)
	}
	return c.head - c.tail
}

// IsEmpty reports whether no element is stored.
func (c *cursors) IsEmpty() bool {
	return c.head == c.tail
}

// IsFull reports whether Capacity()-1 elements are stored.
func (c *cursors) IsFull() bool {
	if c.head < c.tail {
		return c.tail-c.head == 1
	}
	return c.head-c.tail == c.capacity-1
}

// Head returns the index of the next slot to be written.
func (c *cursors) Head() int {
	return c.head
}

// Tail returns the index of the next slot to be read.
func (c *cursors) Tail() int {
	return c.tail
}
