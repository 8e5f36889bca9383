// File: affinity/affinity.go
// Author: momentics <momentics@gmail.com>
//
// Platform-neutral API for CPU affinity. Platform-specific implementations are located
// in separate files (affinity_linux.go, affinity_windows.go, etc.) guarded by build tags.

package affinity

import (
	"runtime"

	"github.com/pkg/errors"

	"github.com/momentics/hioload-ring/api"
)

// SetAffinity pins current OS thread to a given logical CPU/core on supported platforms.
// The caller should hold runtime.LockOSThread for the pin to stay meaningful.
// CPU ids are not bounded by runtime.NumCPU: a cpuset may allow 4-7 only, so
// whether an id is usable is left to the platform call.
// On unsupported platforms returns api.ErrNotSupported.
func SetAffinity(cpuID int) error {
	if cpuID < 0 {
		return errors.Wrapf(api.ErrInvalidArgument, "affinity: negative cpu %d", cpuID)
	}
	return setAffinityPlatform(cpuID)
}

// Pinner implements api.Affinity on top of SetAffinity.
type Pinner struct{}

var _ api.Affinity = Pinner{}

// Pin locks the calling goroutine to its OS thread and pins that thread.
// The thread stays locked on success; on failure it is released.
func (Pinner) Pin(cpuID int) error {
	runtime.LockOSThread()
	if err := SetAffinity(cpuID); err != nil {
		runtime.UnlockOSThread()
		return err
	}
	return nil
}
