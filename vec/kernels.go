package vec

import (
	"math"

	"github.com/cwbudde/algo-unroll/internal/cpu"
	"github.com/cwbudde/algo-unroll/unroll"
	"github.com/cwbudde/algo-unroll/vec/internal/registry"
)

// maxFactor bounds the per-slot accumulators of the reductions.
const maxFactor = 16

// kernelSet instantiates every kernel at unroll factor N.
func kernelSet[N unroll.Positive](name string, level cpu.SIMDLevel, priority int) registry.OpEntry {
	if unroll.Factor[N]() > maxFactor {
		panic("vec: unroll factor exceeds accumulator count")
	}

	return registry.OpEntry{
		Name:            name,
		SIMDLevel:       level,
		Priority:        priority,
		Factor:          unroll.Factor[N](),
		Sum:             sum[N],
		DotProduct:      dotProduct[N],
		MaxAbs:          maxAbs[N],
		AddBlock:        addBlock[N],
		MulBlock:        mulBlock[N],
		MulBlockInPlace: mulBlockInPlace[N],
		ScaleBlock:      scaleBlock[N],
		MulAddBlock:     mulAddBlock[N],
		Magnitude:       magnitude[N],
		Power:           power[N],
	}
}

func combine(acc *[maxFactor]float64) float64 {
	total := 0.0
	for _, v := range acc {
		total += v
	}
	return total
}

func sum[N unroll.Positive](x []float64) float64 {
	var acc [maxFactor]float64
	unroll.Partial[N](len(x), func(i, s int) {
		acc[s] += x[i]
	})
	return combine(&acc)
}

func dotProduct[N unroll.Positive](a, b []float64) float64 {
	n := min(len(a), len(b))
	a, b = a[:n], b[:n]

	var acc [maxFactor]float64
	unroll.Partial[N](n, func(i, s int) {
		acc[s] += a[i] * b[i]
	})
	return combine(&acc)
}

// NaN compares false, so it never replaces a slot maximum.
func maxAbs[N unroll.Positive](x []float64) float64 {
	var acc [maxFactor]float64
	unroll.Partial[N](len(x), func(i, s int) {
		if v := math.Abs(x[i]); v > acc[s] {
			acc[s] = v
		}
	})

	m := 0.0
	for _, v := range acc {
		if v > m {
			m = v
		}
	}
	return m
}

func addBlock[N unroll.Positive](dst, a, b []float64) {
	if len(a) != len(b) || len(dst) != len(a) {
		panic("vec: slice length mismatch")
	}
	unroll.Partial[N](len(dst), func(i, _ int) {
		dst[i] = a[i] + b[i]
	})
}

func mulBlock[N unroll.Positive](dst, a, b []float64) {
	if len(a) != len(b) || len(dst) != len(a) {
		panic("vec: slice length mismatch")
	}
	unroll.Partial[N](len(dst), func(i, _ int) {
		dst[i] = a[i] * b[i]
	})
}

func mulBlockInPlace[N unroll.Positive](dst, src []float64) {
	if len(dst) != len(src) {
		panic("vec: slice length mismatch")
	}
	unroll.Partial[N](len(dst), func(i, _ int) {
		dst[i] *= src[i]
	})
}

func scaleBlock[N unroll.Positive](dst, src []float64, scale float64) {
	if len(dst) != len(src) {
		panic("vec: slice length mismatch")
	}
	unroll.Partial[N](len(dst), func(i, _ int) {
		dst[i] = src[i] * scale
	})
}

func mulAddBlock[N unroll.Positive](dst, a, b, c []float64) {
	if len(a) != len(b) || len(dst) != len(a) || len(c) != len(a) {
		panic("vec: slice length mismatch")
	}
	unroll.Partial[N](len(dst), func(i, _ int) {
		dst[i] = a[i]*b[i] + c[i]
	})
}

func magnitude[N unroll.Positive](dst, re, im []float64) {
	if len(re) != len(im) || len(dst) != len(re) {
		panic("vec: slice length mismatch")
	}
	unroll.Partial[N](len(dst), func(i, _ int) {
		r, m := re[i], im[i]
		dst[i] = math.Sqrt(r*r + m*m)
	})
}

func power[N unroll.Positive](dst, re, im []float64) {
	if len(re) != len(im) || len(dst) != len(re) {
		panic("vec: slice length mismatch")
	}
	unroll.Partial[N](len(dst), func(i, _ int) {
		r, m := re[i], im[i]
		dst[i] = r*r + m*m
	})
}
