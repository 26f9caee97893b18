// Package registry holds the kernel sets of package vec, one per unroll
// factor and SIMD level, and picks the best one for a CPU.
package registry

import (
	"fmt"
	"sync"

	"github.com/cwbudde/algo-unroll/internal/cpu"
)

// OpEntry is one kernel set. All kernels of a set share the same unroll
// factor.
type OpEntry struct {
	// Name identifies the set, e.g. "unroll8-avx2".
	Name string

	// SIMDLevel is the instruction set the factor was chosen for.
	SIMDLevel cpu.SIMDLevel

	// Priority orders compatible sets; higher wins.
	Priority int

	// Factor is the unroll factor of every kernel in the set. Between sets
	// of equal priority the larger factor wins.
	Factor int

	Sum             func(x []float64) float64
	DotProduct      func(a, b []float64) float64
	MaxAbs          func(x []float64) float64
	AddBlock        func(dst, a, b []float64)
	MulBlock        func(dst, a, b []float64)
	MulBlockInPlace func(dst, src []float64)
	ScaleBlock      func(dst, src []float64, scale float64)
	MulAddBlock     func(dst, a, b, c []float64)
	Magnitude       func(dst, re, im []float64)
	Power           func(dst, re, im []float64)
}

// better reports whether e should be preferred over other.
func (e *OpEntry) better(other *OpEntry) bool {
	if e.Priority != other.Priority {
		return e.Priority > other.Priority
	}
	return e.Factor > other.Factor
}

type key struct {
	level  cpu.SIMDLevel
	factor int
}

// OpRegistry stores the registered kernel sets in registration order.
type OpRegistry struct {
	mu      sync.RWMutex
	entries []OpEntry
	keys    map[key]string
}

// Global is the registry package vec dispatches through.
var Global = &OpRegistry{}

// Register adds a kernel set. A set whose factor is not positive, or that
// repeats the SIMD level and factor of a registered set, is a programming
// error and panics.
func (r *OpRegistry) Register(entry OpEntry) {
	if entry.Factor < 1 {
		panic(fmt.Sprintf("registry: kernel set %q has factor %d", entry.Name, entry.Factor))
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	k := key{entry.SIMDLevel, entry.Factor}
	if prev, ok := r.keys[k]; ok {
		panic(fmt.Sprintf("registry: kernel set %q duplicates %q (%v, factor %d)",
			entry.Name, prev, entry.SIMDLevel, entry.Factor))
	}
	if r.keys == nil {
		r.keys = make(map[key]string)
	}
	r.keys[k] = entry.Name
	r.entries = append(r.entries, entry)
}

// Lookup returns the best set supported by features, or nil.
func (r *OpRegistry) Lookup(features cpu.Features) *OpEntry {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var best *OpEntry
	for i := range r.entries {
		e := &r.entries[i]
		if !cpu.Supports(features, e.SIMDLevel) {
			continue
		}
		if best == nil || e.better(best) {
			best = e
		}
	}
	return best
}

// ListEntries returns a copy of the registered sets.
func (r *OpRegistry) ListEntries() []OpEntry {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return append([]OpEntry(nil), r.entries...)
}
