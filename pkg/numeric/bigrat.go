package numeric

import (
	"fmt"
	"math/big"
)

// BigRat is the arbitrary-precision backend over *big.Rat values. Operands
// are never mutated; every operation allocates a fresh result. Values must
// be non-nil.
type BigRat struct{}

// Compare returns the order of a and b.
func (BigRat) Compare(a, b *big.Rat) int { return a.Cmp(b) }

// Add returns a + b.
func (BigRat) Add(a, b *big.Rat) *big.Rat { return new(big.Rat).Add(a, b) }

// Sub returns a - b.
func (BigRat) Sub(a, b *big.Rat) *big.Rat { return new(big.Rat).Sub(a, b) }

// Mul returns a * b.
func (BigRat) Mul(a, b *big.Rat) *big.Rat { return new(big.Rat).Mul(a, b) }

// Zero returns rational 0.
func (BigRat) Zero() *big.Rat { return new(big.Rat) }

// One returns rational 1.
func (BigRat) One() *big.Rat { return big.NewRat(1, 1) }

// FromInt64 converts v into a rational.
func (BigRat) FromInt64(v int64) *big.Rat { return new(big.Rat).SetInt64(v) }

// Int64 truncates n toward zero; fails when the quotient exceeds the int64
// range.
func (BigRat) Int64(n *big.Rat) (int64, error) {
	q := new(big.Int).Quo(n.Num(), n.Denom())
	if !q.IsInt64() {
		return 0, fmt.Errorf("%w: %v", ErrInt64Range, n)
	}

	return q.Int64(), nil
}

// Ordered always reports true: every rational is comparable.
func (BigRat) Ordered(*big.Rat) bool { return true }
