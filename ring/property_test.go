// Copyright 2025 momentics@gmail.com
// Licensed under the Apache License, Version 2.0.

// property_test.go — Randomised tests against a reference FIFO.
package ring

import (
	"math/rand"
	"testing"

	"github.com/eapache/queue"
	"github.com/stretchr/testify/require"
)

// oraclePush mirrors the overwrite policy on an unbounded FIFO.
func oraclePush(q *queue.Queue, capacity int, v int) {
	if q.Length() == capacity-1 {
		q.Remove()
	}
	q.Add(v)
}

func TestStore_PropertyAgainstOracle(t *testing.T) {
	for seed := int64(0); seed < 10; seed++ {
		rnd := rand.New(rand.NewSource(seed))
		capacity := 2 + rnd.Intn(30)
		s, err := New[int](capacity)
		require.NoError(t, err)
		q := queue.New()

		for i := 0; i < 5000; i++ {
			switch rnd.Intn(3) {
			case 0, 1: // push
				v := rnd.Intn(100000)
				s.Push(v)
				oraclePush(q, capacity, v)
			case 2: // pop
				var got int
				n := s.Pop(&got)
				if q.Length() == 0 {
					require.Equal(t, 0, n, "seed %d step %d", seed, i)
					continue
				}
				require.Equal(t, 1, n, "seed %d step %d", seed, i)
				require.Equal(t, q.Remove().(int), got, "seed %d step %d", seed, i)
			}

			require.Equal(t, q.Length(), s.Size(), "seed %d step %d", seed, i)
			require.LessOrEqual(t, s.Size(), capacity-1)
			require.Equal(t, s.Size() == capacity-1, s.IsFull())
			require.Equal(t, s.Size() == 0, s.IsEmpty())
			require.Equal(t, s.Head() == s.Tail(), s.IsEmpty())
			require.True(t, s.Head() >= 0 && s.Head() < capacity)
			require.True(t, s.Tail() >= 0 && s.Tail() < capacity)
		}
	}
}

// Every (head, tail) pair is reachable; IsFull must agree with Size for all.
func TestCursors_FullAgreesWithSizeForAllPairs(t *testing.T) {
	for capacity := 2; capacity <= 9; capacity++ {
		for head := 0; head < capacity; head++ {
			for tail := 0; tail < capacity; tail++ {
				c := cursors{head: head, tail: tail, capacity: capacity}
				want := (head - tail + capacity) % capacity
				require.Equal(t, want, c.Size(), "cap=%d head=%d tail=%d", capacity, head, tail)
				require.Equal(t, want == capacity-1, c.IsFull(), "cap=%d head=%d tail=%d", capacity, head, tail)
				if capacity > 2 {
					require.False(t, c.IsFull() && c.IsEmpty())
				}
			}
		}
	}
}

func TestCursors_WrapAtLastIndex(t *testing.T) {
	c, err := newCursors(5)
	require.NoError(t, err)
	c.head, c.tail = 3, 4
	c.advanceHead()
	require.Equal(t, 4, c.head)
	c.advanceHead()
	require.Equal(t, 0, c.head)
	require.Equal(t, 1, c.tail)
	require.Less(t, c.tail, c.capacity)
}
