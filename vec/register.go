package vec

import (
	"github.com/cwbudde/algo-unroll/internal/cpu"
	"github.com/cwbudde/algo-unroll/unroll"
	"github.com/cwbudde/algo-unroll/vec/internal/registry"
)

func init() {
	registry.Global.Register(kernelSet[unroll.N4]("unroll4", cpu.SIMDNone, 0))
	registry.Global.Register(kernelSet[unroll.N8]("unroll8-avx2", cpu.SIMDAVX2, 20))
	registry.Global.Register(kernelSet[unroll.N8]("unroll8-neon", cpu.SIMDNEON, 20))
	registry.Global.Register(kernelSet[unroll.N16]("unroll16-avx512", cpu.SIMDAVX512, 30))
}
