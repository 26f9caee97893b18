package unroll

import (
	"fmt"
	"testing"
)

var benchSink float64

func benchData(n int) []float64 {
	x := make([]float64, n)
	for i := range x {
		x[i] = float64(i%97) * 0.25
	}
	return x
}

func BenchmarkFull(b *testing.B) {
	var acc [16]float64
	x := benchData(16)

	b.Run("N4", func(b *testing.B) {
		b.ReportAllocs()
		for b.Loop() {
			Full[N4](func(i int) { acc[i] += x[i] })
		}
	})
	b.Run("N16", func(b *testing.B) {
		b.ReportAllocs()
		for b.Loop() {
			Full[N16](func(i int) { acc[i] += x[i] })
		}
	})
	b.Run("Succ[N16]", func(b *testing.B) {
		y := benchData(17)
		var acc17 [17]float64
		b.ReportAllocs()
		for b.Loop() {
			Full[Succ[N16]](func(i int) { acc17[i] += y[i] })
		}
	})

	benchSink = acc[0]
}

func BenchmarkPartialSum(b *testing.B) {
	for _, size := range []int{64, 1000, 4096} {
		x := benchData(size)

		b.Run(fmt.Sprintf("N4/n=%d", size), func(b *testing.B) {
			b.SetBytes(int64(size * 8))
			for b.Loop() {
				var acc [4]float64
				Partial[N4](len(x), func(i, s int) { acc[s] += x[i] })
				benchSink = acc[0] + acc[1] + acc[2] + acc[3]
			}
		})

		b.Run(fmt.Sprintf("N8/n=%d", size), func(b *testing.B) {
			b.SetBytes(int64(size * 8))
			for b.Loop() {
				var acc [8]float64
				Partial[N8](len(x), func(i, s int) { acc[s] += x[i] })
				benchSink = acc[0] + acc[7]
			}
		})

		b.Run(fmt.Sprintf("loop/n=%d", size), func(b *testing.B) {
			b.SetBytes(int64(size * 8))
			for b.Loop() {
				sum := 0.0
				for i := range x {
					sum += x[i]
				}
				benchSink = sum
			}
		})
	}
}
