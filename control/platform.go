// control/platform.go
// Author: momentics <momentics@gmail.com>
//
// Platform probes: CPU count, cache line size and SIMD features.

package control

import (
	"runtime"
	"unsafe"

	"golang.org/x/sys/cpu"
)

// CacheLineSize is the cache line width assumed by x/sys/cpu for this GOARCH.
const CacheLineSize = int(unsafe.Sizeof(cpu.CacheLinePad{}))

// RegisterPlatformProbes sets platform debug probes.
func RegisterPlatformProbes(dp *DebugProbes) {
	dp.RegisterProbe("platform.cpus", func() any {
		return runtime.NumCPU()
	})
	dp.RegisterProbe("platform.arch", func() any {
		return runtime.GOARCH
	})
	dp.RegisterProbe("platform.cacheline", func() any {
		return CacheLineSize
	})
	dp.RegisterProbe("platform.features", func() any {
		return CPUFeatures()
	})
}

// CPUFeatures lists the SIMD extensions relevant to bulk copies.
func CPUFeatures() []string {
	var out []string
	add := func(ok bool, name string) {
		if ok {
			out = append(out, name)
		}
	}
	add(cpu.X86.HasSSE2, "sse2")
	add(cpu.X86.HasSSE41, "sse4.1")
	add(cpu.X86.HasAVX, "avx")
	add(cpu.X86.HasAVX2, "avx2")
	add(cpu.X86.HasAVX512F, "avx512f")
	add(cpu.X86.HasERMS, "erms")
	add(cpu.ARM64.HasASIMD, "asimd")
	add(cpu.ARM64.HasSVE, "sve")
	return out
}
