package numeric

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Dec is the backend for shopspring decimal bounds or weights: exact
// base-10 arithmetic free of binary float artifacts.
type Dec struct{}

// Compare returns the order of a and b.
func (Dec) Compare(a, b decimal.Decimal) int { return a.Cmp(b) }

// Add returns a + b.
func (Dec) Add(a, b decimal.Decimal) decimal.Decimal { return a.Add(b) }

// Sub returns a - b.
func (Dec) Sub(a, b decimal.Decimal) decimal.Decimal { return a.Sub(b) }

// Mul returns a * b.
func (Dec) Mul(a, b decimal.Decimal) decimal.Decimal { return a.Mul(b) }

// Zero returns decimal 0.
func (Dec) Zero() decimal.Decimal { return decimal.NewFromInt(0) }

// One returns decimal 1.
func (Dec) One() decimal.Decimal { return decimal.NewFromInt(1) }

// FromInt64 converts v into a decimal.
func (Dec) FromInt64(v int64) decimal.Decimal { return decimal.NewFromInt(v) }

// Int64 truncates n toward zero; fails when the integer part exceeds the
// int64 range.
func (Dec) Int64(n decimal.Decimal) (int64, error) {
	bi := n.BigInt()
	if !bi.IsInt64() {
		return 0, fmt.Errorf("%w: %v", ErrInt64Range, n)
	}

	return bi.Int64(), nil
}

// Ordered always reports true: every decimal is comparable.
func (Dec) Ordered(decimal.Decimal) bool { return true }
