package vec

import (
	"testing"

	"github.com/cwbudde/algo-unroll/internal/testutil"
	"github.com/cwbudde/algo-unroll/vec/internal/registry"
)

var benchSizes = []int{16, 64, 256, 1024, 4096, 16384}

var benchSink float64

func BenchmarkSum(b *testing.B) {
	for _, e := range registry.Global.ListEntries() {
		for _, size := range benchSizes {
			x := testutil.Ramp(size, 0, 1)

			b.Run(e.Name+"/"+sizeStr(size), func(b *testing.B) {
				b.SetBytes(int64(size * 8))
				for b.Loop() {
					benchSink = e.Sum(x)
				}
			})
		}
	}
}

func BenchmarkSumReference(b *testing.B) {
	for _, size := range benchSizes {
		x := testutil.Ramp(size, 0, 1)

		b.Run(sizeStr(size), func(b *testing.B) {
			b.SetBytes(int64(size * 8))
			for b.Loop() {
				benchSink = sumRef(x)
			}
		})
	}
}

func BenchmarkDotProduct(b *testing.B) {
	for _, e := range registry.Global.ListEntries() {
		for _, size := range benchSizes {
			x := testutil.Ramp(size, 0, 0.5)
			y := testutil.Ramp(size, 1, 0.25)

			b.Run(e.Name+"/"+sizeStr(size), func(b *testing.B) {
				b.SetBytes(int64(size * 16))
				for b.Loop() {
					benchSink = e.DotProduct(x, y)
				}
			})
		}
	}
}

func BenchmarkMulAddBlock(b *testing.B) {
	for _, e := range registry.Global.ListEntries() {
		for _, size := range benchSizes {
			x := testutil.Ramp(size, 0, 0.5)
			y := testutil.Ramp(size, 1, 0.25)
			z := testutil.Ramp(size, 2, 0.125)
			dst := make([]float64, size)

			b.Run(e.Name+"/"+sizeStr(size), func(b *testing.B) {
				b.SetBytes(int64(size * 32))
				b.ReportAllocs()
				for b.Loop() {
					e.MulAddBlock(dst, x, y, z)
				}
			})
		}
	}
}
