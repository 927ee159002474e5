package numeric

import (
	"cmp"
	"fmt"
	"math"
)

// FloatKind is the constraint covering the machine float kinds.
type FloatKind interface {
	~float32 | ~float64
}

// Float is the backend for machine float bounds or weights. NaN is outside
// the total order and must be rejected upstream; Ordered reports it.
type Float[N FloatKind] struct{}

// Compare returns the order of a and b. Both must satisfy Ordered.
func (Float[N]) Compare(a, b N) int { return cmp.Compare(a, b) }

// Add returns a + b.
func (Float[N]) Add(a, b N) N { return a + b }

// Sub returns a - b.
func (Float[N]) Sub(a, b N) N { return a - b }

// Mul returns a * b.
func (Float[N]) Mul(a, b N) N { return a * b }

// Zero returns 0.
func (Float[N]) Zero() N { return 0 }

// One returns 1.
func (Float[N]) One() N { return 1 }

// FromInt64 converts v into the float kind.
func (Float[N]) FromInt64(v int64) N { return N(v) }

// Int64 truncates n toward zero. Infinities and magnitudes beyond the int64
// range fail the conversion.
func (Float[N]) Int64(n N) (int64, error) {
	t := math.Trunc(float64(n))

	// 2^63 is exactly representable; anything at or above it overflows.
	if t >= math.MaxInt64 || t < math.MinInt64 || math.IsNaN(t) {
		return 0, fmt.Errorf("%w: %v", ErrInt64Range, n)
	}

	return int64(t), nil
}

// Ordered reports whether n participates in the total order (not NaN).
func (Float[N]) Ordered(n N) bool {
	return !math.IsNaN(float64(n))
}
