// Package vec provides float64 block kernels built on package unroll.
//
// Every kernel is instantiated at several unroll factors. The set used is
// chosen once, on first use, from the host CPU features: factor 16 with
// AVX-512, 8 with AVX2 or NEON, and 4 otherwise.
//
// Reductions keep one accumulator per unroll slot and add them up at the
// end, so their rounding can differ from a sequential loop in the last
// bits. Element-wise kernels panic if the slice lengths differ.
package vec

import (
	"sync"

	"github.com/cwbudde/algo-unroll/internal/cpu"
	"github.com/cwbudde/algo-unroll/vec/internal/registry"
)

var (
	impl     *registry.OpEntry
	implOnce sync.Once
)

func initKernels() {
	entry := registry.Global.Lookup(cpu.DetectFeatures())
	if entry == nil {
		panic("vec: no kernel set registered")
	}
	impl = entry
}

func kernels() *registry.OpEntry {
	implOnce.Do(initKernels)
	return impl
}

// Info describes the active kernel set.
type Info struct {
	Name      string
	Factor    int
	SIMDLevel string
}

// Implementation reports the kernel set selected for this process.
func Implementation() Info {
	k := kernels()
	return Info{Name: k.Name, Factor: k.Factor, SIMDLevel: k.SIMDLevel.String()}
}

// Sum returns the sum of all elements in x.
// Returns 0 for an empty slice.
func Sum(x []float64) float64 {
	return kernels().Sum(x)
}

// DotProduct returns sum(a[i] * b[i]) over the shorter of the two slices.
func DotProduct(a, b []float64) float64 {
	return kernels().DotProduct(a, b)
}

// MaxAbs returns the maximum absolute value in x, or 0 for an empty slice.
// NaN elements are ignored wherever they occur, so a slice of only NaN
// yields 0.
func MaxAbs(x []float64) float64 {
	return kernels().MaxAbs(x)
}

// AddBlock computes dst[i] = a[i] + b[i].
func AddBlock(dst, a, b []float64) {
	kernels().AddBlock(dst, a, b)
}

// MulBlock computes dst[i] = a[i] * b[i].
func MulBlock(dst, a, b []float64) {
	kernels().MulBlock(dst, a, b)
}

// MulBlockInPlace computes dst[i] *= src[i].
func MulBlockInPlace(dst, src []float64) {
	kernels().MulBlockInPlace(dst, src)
}

// ScaleBlock computes dst[i] = src[i] * scale.
func ScaleBlock(dst, src []float64, scale float64) {
	kernels().ScaleBlock(dst, src, scale)
}

// MulAddBlock computes dst[i] = a[i]*b[i] + c[i].
func MulAddBlock(dst, a, b, c []float64) {
	kernels().MulAddBlock(dst, a, b, c)
}

// Magnitude computes dst[i] = sqrt(re[i]^2 + im[i]^2).
func Magnitude(dst, re, im []float64) {
	kernels().Magnitude(dst, re, im)
}

// Power computes dst[i] = re[i]^2 + im[i]^2.
func Power(dst, re, im []float64) {
	kernels().Power(dst, re, im)
}
