//go:build linux
// +build linux

// File: affinity/affinity_linux.go
// Author: momentics <momentics@gmail.com>
//
// Linux-specific implementation for setting thread CPU affinity.

package affinity

import (
	"unsafe"

	"github.com/pkg/errors"
	"golang.org/x/sys/unix"

	"github.com/momentics/hioload-ring/api"
)

// setAffinityPlatform sets thread affinity to a given CPU for Linux.
// pid 0 addresses the calling thread. CPUs outside the process cpuset are
// rejected by the kernel with EINVAL.
func setAffinityPlatform(cpuID int) error {
	if cpuID >= 8*int(unsafe.Sizeof(unix.CPUSet{})) {
		return errors.Wrapf(api.ErrInvalidArgument, "affinity: cpu %d beyond CPUSet size", cpuID)
	}
	var set unix.CPUSet
	set.Zero()
	set.Set(cpuID)
	if err := unix.SchedSetaffinity(0, &set); err != nil {
		return errors.Wrap(err, "affinity: sched_setaffinity failed")
	}
	return nil
}
