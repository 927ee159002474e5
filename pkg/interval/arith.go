package interval

// Arith is the numeric capability contract a bound or weight type must
// satisfy. The combiner never relies on operator behavior of the
// instantiating type; every comparison and every ring operation goes through
// this interface, which lets one generic algorithm serve machine integers,
// floats, decimals, fixed point, and big rationals.
//
// Implementations must be stateless: two calls with equal arguments return
// equal results, and no call mutates its arguments.
type Arith[N any] interface {
	// Compare returns -1, 0, or +1 as a is less than, equal to, or greater
	// than b. Both arguments must satisfy Ordered.
	Compare(a, b N) int

	Add(a, b N) N
	Sub(a, b N) N
	Mul(a, b N) N

	// Zero is the additive identity, One the multiplicative identity.
	Zero() N
	One() N

	// FromInt64 converts a machine integer into the numeric domain.
	FromInt64(v int64) N

	// Int64 returns the value truncated toward zero, or an error when the
	// result does not fit in an int64.
	Int64(n N) (int64, error)

	// Ordered reports whether n participates in the total order. Returns
	// false for values like float NaN; such values are rejected by the
	// combiner before the sort step.
	Ordered(n N) bool
}

// Algebra bundles the bound arithmetic, the weight arithmetic, and the scale
// hook that converts an interval width into the weight domain (used by
// TotalValue). It is a small value type, cheap to copy.
type Algebra[T, U any] struct {
	bounds  Arith[T]
	weights Arith[U]
	scale   func(width T, weight U) U
}

// NewAlgebra builds an algebra from separate bound and weight capabilities.
// scale computes width*weight across the two domains; it must be non-nil.
func NewAlgebra[T, U any](bounds Arith[T], weights Arith[U], scale func(width T, weight U) U) Algebra[T, U] {
	if bounds == nil || weights == nil {
		panic("interval: nil arith")
	}

	if scale == nil {
		panic("interval: nil scale")
	}

	return Algebra[T, U]{bounds: bounds, weights: weights, scale: scale}
}

// Uniform builds the common algebra where bounds and weights share one
// numeric type, with scale defaulting to the backend's multiplication.
func Uniform[N any](ar Arith[N]) Algebra[N, N] {
	return NewAlgebra(ar, ar, ar.Mul)
}

// Bounds returns the bound-type capability.
func (a Algebra[T, U]) Bounds() Arith[T] {
	return a.bounds
}

// Weights returns the weight-type capability.
func (a Algebra[T, U]) Weights() Arith[U] {
	return a.weights
}
