package vec_test

import (
	"testing"

	algovecmath "github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-unroll/internal/testutil"
	"github.com/cwbudde/algo-unroll/vec"
)

// Results must agree with the SIMD kernels of algo-vecmath to within
// a rounding step.
const parityTol = 1e-12

func TestParityWithAlgoVecmath(t *testing.T) {
	for _, n := range testutil.BoundarySizes {
		a := testutil.Alternating(n)
		b := testutil.Ramp(n, 0.5, 0.25)

		got := make([]float64, n)
		want := make([]float64, n)

		vec.MulBlock(got, a, b)
		algovecmath.MulBlock(want, a, b)
		testutil.RequireSliceClose(t, got, want, parityTol)

		copy(got, a)
		copy(want, a)
		vec.MulBlockInPlace(got, b)
		algovecmath.MulBlockInPlace(want, b)
		testutil.RequireSliceClose(t, got, want, parityTol)

		vec.Magnitude(got, a, b)
		algovecmath.Magnitude(want, a, b)
		testutil.RequireSliceClose(t, got, want, parityTol)

		vec.Power(got, a, b)
		algovecmath.Power(want, a, b)
		testutil.RequireSliceClose(t, got, want, parityTol)
	}
}
