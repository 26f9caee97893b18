package cpu

import (
	"runtime"
	"testing"
)

func TestDetectFeaturesArchitecture(t *testing.T) {
	ResetDetection()
	defer ResetDetection()

	f := DetectFeatures()
	if f.Architecture != runtime.GOARCH {
		t.Fatalf("Architecture = %q, want %q", f.Architecture, runtime.GOARCH)
	}
	if runtime.GOARCH != "arm64" && f.HasNEON {
		t.Error("NEON reported outside arm64")
	}
	if runtime.GOARCH != "amd64" && (f.HasAVX2 || f.HasAVX512) {
		t.Error("AVX reported outside amd64")
	}
	if f.ForceGeneric {
		t.Error("ForceGeneric set by detection")
	}
}

func TestForcedFeatures(t *testing.T) {
	defer ResetDetection()

	want := Features{HasAVX2: true, Architecture: "amd64"}
	SetForcedFeatures(want)
	if got := DetectFeatures(); got != want {
		t.Fatalf("DetectFeatures() = %+v, want %+v", got, want)
	}

	ResetDetection()
	if got := DetectFeatures(); got.Architecture != runtime.GOARCH {
		t.Fatalf("after reset Architecture = %q, want %q", got.Architecture, runtime.GOARCH)
	}
}

func TestSupports(t *testing.T) {
	tests := []struct {
		name     string
		features Features
		level    SIMDLevel
		want     bool
	}{
		{"none always", Features{}, SIMDNone, true},
		{"avx2 missing", Features{HasNEON: true}, SIMDAVX2, false},
		{"avx2 present", Features{HasAVX2: true}, SIMDAVX2, true},
		{"avx512 missing", Features{HasAVX2: true}, SIMDAVX512, false},
		{"neon present", Features{HasNEON: true}, SIMDNEON, true},
		{"force generic blocks avx2", Features{HasAVX2: true, ForceGeneric: true}, SIMDAVX2, false},
		{"force generic keeps none", Features{HasAVX2: true, ForceGeneric: true}, SIMDNone, true},
		{"unknown level", Features{HasAVX2: true}, SIMDLevel(99), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Supports(tt.features, tt.level); got != tt.want {
				t.Fatalf("Supports(%+v, %v) = %v, want %v", tt.features, tt.level, got, tt.want)
			}
		})
	}
}

func TestSIMDLevelString(t *testing.T) {
	tests := map[SIMDLevel]string{
		SIMDNone:      "None",
		SIMDAVX2:      "AVX2",
		SIMDAVX512:    "AVX-512",
		SIMDNEON:      "NEON",
		SIMDLevel(42): "Unknown",
	}
	for level, want := range tests {
		if got := level.String(); got != want {
			t.Errorf("SIMDLevel(%d).String() = %q, want %q", int(level), got, want)
		}
	}
}
