package testutil

import (
	"math"
	"testing"
)

func TestMaxAbsDiff(t *testing.T) {
	tests := []struct {
		name     string
		a, b     []float64
		wantDiff float64
		wantAt   int
	}{
		{"empty", nil, nil, 0, -1},
		{"identical", []float64{1, 2, 3}, []float64{1, 2, 3}, 0, 0},
		{"middle", []float64{1, 2, 3}, []float64{1, 2.1, 3}, 0.1, 1},
		{"last wins", []float64{0, 0, 0}, []float64{0.5, 0, -2}, 2, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, at, err := MaxAbsDiff(tt.a, tt.b)
			if err != nil {
				t.Fatalf("MaxAbsDiff error: %v", err)
			}
			if math.Abs(d-tt.wantDiff) > 1e-15 || at != tt.wantAt {
				t.Fatalf("MaxAbsDiff = (%v, %d), want (%v, %d)", d, at, tt.wantDiff, tt.wantAt)
			}
		})
	}
}

func TestMaxAbsDiffLengthMismatch(t *testing.T) {
	if _, _, err := MaxAbsDiff([]float64{1}, []float64{1, 2}); err == nil {
		t.Fatal("expected error for length mismatch")
	}
}

func TestCloseEnough(t *testing.T) {
	tests := []struct {
		a, b float64
		want bool
	}{
		{1, 1, true},
		{1, 1 + 1e-16, true},
		{1, 1.001, false},
		{0, 1e-20, true},
		{0, 1e-3, false},
		{math.Inf(1), math.Inf(1), true},
		{1e10, 1e10 + 1e-5, true},
	}
	for _, tt := range tests {
		if got := CloseEnough(tt.a, tt.b, 1e-14); got != tt.want {
			t.Errorf("CloseEnough(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestAlternatingIsDeterministic(t *testing.T) {
	x := Alternating(5)
	want := []float64{-0.125, 37.125, -74.125, 111.125, -35.125}
	for i := range want {
		if x[i] != want[i] {
			t.Fatalf("Alternating(5)[%d] = %v, want %v", i, x[i], want[i])
		}
	}
}

func TestRamp(t *testing.T) {
	x := Ramp(4, 1, 0.5)
	want := []float64{1, 1.5, 2, 2.5}
	for i := range want {
		if x[i] != want[i] {
			t.Fatalf("Ramp[%d] = %v, want %v", i, x[i], want[i])
		}
	}
}
