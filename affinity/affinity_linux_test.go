//go:build linux
// +build linux

// Copyright 2025 momentics@gmail.com
// Licensed under the Apache License, Version 2.0.

package affinity

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sys/unix"
)

// allowedCPUs returns the CPU ids in the calling thread's affinity mask.
func allowedCPUs(t *testing.T) []int {
	var set unix.CPUSet
	require.NoError(t, unix.SchedGetaffinity(0, &set))
	var ids []int
	for i := 0; i < 8*int(unsafe.Sizeof(set)); i++ {
		if set.IsSet(i) {
			ids = append(ids, i)
		}
	}
	require.NotEmpty(t, ids)
	return ids
}

// Pinning must succeed for the highest allowed id even when it is at or
// above runtime.NumCPU, as happens in cpusets like 4-7.
func TestPinner_PinHighestAllowedCPU(t *testing.T) {
	ids := allowedCPUs(t)
	target := ids[len(ids)-1]

	type result struct {
		err error
		set unix.CPUSet
	}
	done := make(chan result, 1)
	go func() {
		// The goroutine exits still locked, which retires its thread.
		var r result
		r.err = Pinner{}.Pin(target)
		if r.err == nil {
			r.err = unix.SchedGetaffinity(0, &r.set)
		}
		done <- r
	}()
	r := <-done
	require.NoError(t, r.err)
	assert.Equal(t, 1, r.set.Count())
	assert.True(t, r.set.IsSet(target))
}

func TestPinner_CPUOutsideCpusetFails(t *testing.T) {
	ids := allowedCPUs(t)
	allowed := make(map[int]bool, len(ids))
	for _, id := range ids {
		allowed[id] = true
	}
	outside := -1
	for i := 0; i < 1024; i++ {
		if !allowed[i] {
			outside = i
			break
		}
	}
	if outside < 0 {
		t.Skip("every CPU id is in the cpuset")
	}

	done := make(chan error, 1)
	go func() {
		done <- Pinner{}.Pin(outside)
	}()
	assert.Error(t, <-done)
}
