// Package unroll provides loop unrolling with a factor fixed at compile time.
//
// The factor is a type, not a value. [Nat] is satisfied by [Zero], by the
// generated naturals [N1] through [N16], and by [Succ] of any natural, so
// Succ[N16] is 17. Only this package can implement [Nat]. A type that
// embeds a natural and overrides Value still unrolls by the embedded
// natural's magnitude, so the unrolling never disagrees with itself.
//
// [Full] calls an action once per index in 0..N-1:
//
//	var acc [4]float64
//	unroll.Full[unroll.N4](func(i int) { acc[i] = x[i] * y[i] })
//
// [Partial] unrolls a runtime count k by the factor N and hands every call
// its slot i mod N, which is handy for per-slot accumulators:
//
//	var acc [8]float64
//	unroll.Partial[unroll.N8](len(x), func(i, s int) { acc[s] += x[i] })
//
// The blocks are issued as straight-line calls. Whatever remains after the
// last full block (k mod N indices) runs in an ordinary edge loop.
//
// Indices are always delivered in ascending order, each exactly once, on
// the calling goroutine. A panic raised by the action passes through
// unchanged.
//
// Go has no const generics. The bodies for N1..N16 are written out by
// cmd/unrollgen, and larger factors recurse through [Succ] type
// parameters. Either way no runtime counter drives the calls. The compiler
// is still free not to inline the action, so each call costs one indirect
// call.
package unroll

//go:generate go run ../cmd/unrollgen -max 16 -pkg unroll -o nat_gen.go
