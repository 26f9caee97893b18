package unroll

// Factor returns the value of the natural N.
func Factor[N Nat]() int {
	var n N
	return n.value()
}

// Full calls f for every index in 0..N-1, in ascending order, as a fixed
// sequence of calls. Full[Zero] makes no calls.
func Full[N Nat](f func(i int)) {
	var n N
	n.full(f)
}

// Partial calls f(i, i%N) for every index i in 0..k-1, in ascending order.
//
// The first k/N*N indices are issued in unrolled blocks of N. The
// remaining k%N run in a plain edge loop, so a k smaller than N never
// enters a block. Partial panics if k is negative.
func Partial[N Positive](k int, f func(i, s int)) {
	if k < 0 {
		panic("unroll: negative count")
	}

	var n N
	w := n.value()

	base := 0
	for range k / w {
		n.block(base, f)
		base += w
	}

	for i := base; i < k; i++ {
		f(i, i-base)
	}
}
