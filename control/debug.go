// control/debug.go
// Author: momentics <momentics@gmail.com>
//
// Named probes over ring cursors and platform facts, dumped by the
// benchmark at the end of a run.

package control

import (
	"sort"
	"sync"

	"github.com/momentics/hioload-ring/api"
)

var _ api.Debug = (*DebugProbes)(nil)

// DebugProbes maps probe names to value getters.
type DebugProbes struct {
	mu     sync.RWMutex
	probes map[string]func() any
}

func NewDebugProbes() *DebugProbes {
	return &DebugProbes{probes: make(map[string]func() any)}
}

// RegisterProbe adds or replaces the probe called name.
func (dp *DebugProbes) RegisterProbe(name string, fn func() any) {
	dp.mu.Lock()
	dp.probes[name] = fn
	dp.mu.Unlock()
}

// RegisterStore exposes a ring's cursors under name.head, name.tail,
// name.size and name.capacity. Registering the same name again rebinds the
// probes to the new store.
func (dp *DebugProbes) RegisterStore(name string, d api.Diagnostics) {
	dp.RegisterProbe(name+".head", func() any { return d.Head() })
	dp.RegisterProbe(name+".tail", func() any { return d.Tail() })
	dp.RegisterProbe(name+".size", func() any { return d.Size() })
	dp.RegisterProbe(name+".capacity", func() any { return d.Capacity() })
}

// Names returns the registered probe names in sorted order.
func (dp *DebugProbes) Names() []string {
	dp.mu.RLock()
	names := make([]string, 0, len(dp.probes))
	for name := range dp.probes {
		names = append(names, name)
	}
	dp.mu.RUnlock()
	sort.Strings(names)
	return names
}

// DumpState evaluates every probe. Probes run outside the lock, so a probe
// may itself register probes.
func (dp *DebugProbes) DumpState() map[string]any {
	dp.mu.RLock()
	fns := make(map[string]func() any, len(dp.probes))
	for name, fn := range dp.probes {
		fns[name] = fn
	}
	dp.mu.RUnlock()

	out := make(map[string]any, len(fns))
	for name, fn := range fns {
		out[name] = fn()
	}
	return out
}
