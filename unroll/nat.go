package unroll

// Nat is a natural number carried by a type. Values of a Nat type are
// zero-size and never hold state.
type Nat interface {
	// Value returns the magnitude of the natural.
	Value() int

	// value is the magnitude the unrolling code trusts. A type embedding a
	// natural can shadow Value but not value.
	value() int

	// full calls f(0) .. f(value()-1) in ascending order.
	full(f func(i int))

	// block calls f(base+j, j) for j in 0..value()-1 in ascending order.
	block(base int, f func(i, s int))
}

// Positive is a Nat greater than zero. Zero does not implement it, so a
// zero unroll factor does not compile.
type Positive interface {
	Nat
	positive()
}

// Zero is the natural number 0.
type Zero struct{}

// Value returns 0.
func (Zero) Value() int { return 0 }

func (Zero) value() int { return 0 }

func (Zero) full(func(int)) {}

func (Zero) block(int, func(int, int)) {}

// Succ is the successor of P, with value P+1. It extends the generated
// naturals to any size: Succ[N16] is 17, Succ[Succ[N16]] is 18.
type Succ[P Nat] struct{}

// Value returns P's value plus one.
func (s Succ[P]) Value() int { return s.value() }

func (Succ[P]) value() int {
	var p P
	return p.value() + 1
}

// full emits indices 0..P-1 through P, then the highest index last.
func (Succ[P]) full(f func(int)) {
	var p P
	p.full(f)
	f(p.value())
}

func (Succ[P]) block(base int, f func(int, int)) {
	var p P
	p.block(base, f)
	j := p.value()
	f(base+j, j)
}

func (Succ[P]) positive() {}
