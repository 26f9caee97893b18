// Package testutil holds assertions and deterministic inputs shared by the
// kernel tests.
package testutil

import (
	"fmt"
	"math"
	"testing"
)

// CloseEnough reports whether a and b agree to a relative tolerance of
// relTol, or an absolute one of relTol when either is zero.
func CloseEnough(a, b, relTol float64) bool {
	if a == b {
		return true
	}
	diff := math.Abs(a - b)
	if a == 0 || b == 0 {
		return diff < relTol
	}
	return diff/math.Max(math.Abs(a), math.Abs(b)) < relTol
}

// RequireSliceClose fails t if got and want differ in length or if any
// element pair is not CloseEnough. The failure names the first bad index
// and the worst absolute deviation over the whole slice.
func RequireSliceClose(t *testing.T, got, want []float64, relTol float64) {
	t.Helper()
	diff, worst, err := MaxAbsDiff(got, want)
	if err != nil {
		t.Fatal(err)
	}
	for i := range got {
		if !CloseEnough(got[i], want[i], relTol) {
			t.Fatalf("index %d: got %v, want %v (rel tol %v); max abs diff %v at index %d",
				i, got[i], want[i], relTol, diff, worst)
		}
	}
}

// MaxAbsDiff returns the largest absolute difference between a and b and
// the index where it occurs, or -1 for empty slices.
func MaxAbsDiff(a, b []float64) (diff float64, at int, err error) {
	if len(a) != len(b) {
		return 0, -1, fmt.Errorf("length mismatch: got %d, want %d", len(a), len(b))
	}
	at = -1
	for i := range a {
		if d := math.Abs(a[i] - b[i]); at < 0 || d > diff {
			diff, at = d, i
		}
	}
	return diff, at, nil
}

// Alternating returns n values of alternating sign on a 1/8 grid. Sums and
// products of them are exact in float64, so any summation order agrees.
func Alternating(n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		sign := 1.0
		if i%2 == 0 {
			sign = -1.0
		}
		out[i] = sign * (float64((i*37)%113) + 0.125)
	}
	return out
}

// Ramp returns offset, offset+step, offset+2*step, ...
func Ramp(n int, offset, step float64) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = offset + step*float64(i)
	}
	return out
}

// BoundarySizes are lengths around the unroll factors 4, 8 and 16.
var BoundarySizes = []int{0, 1, 2, 3, 4, 5, 7, 8, 9, 15, 16, 17, 31, 32, 33, 63, 64, 65, 100, 1000, 1023, 1024, 1025}
