package numeric

import (
	"cmp"
	"fmt"
	"math"
)

// Integer is the constraint covering the machine integer kinds.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Int is the exact-arithmetic backend for machine integer bounds or weights.
type Int[N Integer] struct{}

// Compare returns the order of a and b.
func (Int[N]) Compare(a, b N) int { return cmp.Compare(a, b) }

// Add returns a + b.
func (Int[N]) Add(a, b N) N { return a + b }

// Sub returns a - b.
func (Int[N]) Sub(a, b N) N { return a - b }

// Mul returns a * b.
func (Int[N]) Mul(a, b N) N { return a * b }

// Zero returns 0.
func (Int[N]) Zero() N { return 0 }

// One returns 1.
func (Int[N]) One() N { return 1 }

// FromInt64 converts v into the integer kind.
func (Int[N]) FromInt64(v int64) N { return N(v) }

// Int64 returns n as an int64; only a uint-family value above MaxInt64 can
// fail the conversion.
func (Int[N]) Int64(n N) (int64, error) {
	if n > 0 && uint64(n) > uint64(math.MaxInt64) {
		return 0, fmt.Errorf("%w: %v", ErrInt64Range, n)
	}

	return int64(n), nil
}

// Ordered always reports true: every machine integer is comparable.
func (Int[N]) Ordered(N) bool { return true }
