// Package cpu reports the SIMD extensions that decide the unroll factor of
// the vec kernels: wider vector units keep more independent accumulators
// busy. Detection runs once and is cached; tests can pin the result with
// SetForcedFeatures.
package cpu

import (
	"sync"
	"sync/atomic"
)

// SIMDLevel names the instruction set a kernel set is tuned for. Levels
// from different architectures are not comparable.
type SIMDLevel int

const (
	// SIMDNone needs no vector unit.
	SIMDNone SIMDLevel = iota

	// SIMDAVX2 is amd64 with 256-bit vectors.
	SIMDAVX2

	// SIMDAVX512 is amd64 with 512-bit vectors.
	SIMDAVX512

	// SIMDNEON is arm64 Advanced SIMD.
	SIMDNEON
)

// String returns the conventional name of the level.
func (s SIMDLevel) String() string {
	switch s {
	case SIMDNone:
		return "None"
	case SIMDAVX2:
		return "AVX2"
	case SIMDAVX512:
		return "AVX-512"
	case SIMDNEON:
		return "NEON"
	default:
		return "Unknown"
	}
}

// Features describes the host capabilities relevant to kernel selection.
type Features struct {
	HasAVX2   bool
	HasAVX512 bool
	HasNEON   bool

	// ForceGeneric restricts selection to SIMDNone kernels.
	ForceGeneric bool

	// Architecture is runtime.GOARCH.
	Architecture string
}

var (
	forced atomic.Pointer[Features]

	detectMu sync.Mutex
	detect   = sync.OnceValue(detectFeaturesImpl)
)

// DetectFeatures returns the features of the host, or the forced features
// if SetForcedFeatures was called. Safe for concurrent use.
func DetectFeatures() Features {
	if f := forced.Load(); f != nil {
		return *f
	}

	detectMu.Lock()
	d := detect
	detectMu.Unlock()
	return d()
}

// SetForcedFeatures overrides detection until ResetDetection.
func SetForcedFeatures(f Features) {
	forced.Store(&f)
}

// ResetDetection drops forced features and runs detection again on the
// next DetectFeatures call.
func ResetDetection() {
	forced.Store(nil)

	detectMu.Lock()
	detect = sync.OnceValue(detectFeaturesImpl)
	detectMu.Unlock()
}

// Supports reports whether features can run kernels tuned for level.
func Supports(features Features, level SIMDLevel) bool {
	if features.ForceGeneric {
		return level == SIMDNone
	}

	switch level {
	case SIMDNone:
		return true
	case SIMDAVX2:
		return features.HasAVX2
	case SIMDAVX512:
		return features.HasAVX512
	case SIMDNEON:
		return features.HasNEON
	default:
		return false
	}
}
