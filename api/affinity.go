// Package api
// Author: momentics@gmail.com
//
// CPU affinity definitions.

package api

// Affinity controls execution on particular CPUs.
type Affinity interface {
    // Pin locks the current goroutine's OS thread to a CPU.
    Pin(cpuID int) error
}
