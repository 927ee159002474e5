package numeric

import (
	"cmp"
	"fmt"
	"math"
	"strconv"
)

// maxFixedPow bounds the decimal exponent so that alignment and conversion
// stay within int64 scaling.
const maxFixedPow = 18

// Fixed is a scaled-decimal fixed-point value: base * 10^-pow. It trades
// range for exact decimal arithmetic with plain integer operations.
type Fixed struct {
	base int64
	pow  int32
}

// NewFixed builds the fixed-point value base * 10^-pow.
func NewFixed(base int64, pow int32) Fixed {
	return Fixed{base: base, pow: pow}
}

// FixedFromFloat rounds f to the given number of decimals.
func FixedFromFloat(f float64, decimals int32) Fixed {
	return Fixed{
		base: int64(math.Round(f * float64(pow10(decimals)))),
		pow:  decimals,
	}
}

// Base returns the scaled integer mantissa.
func (f Fixed) Base() int64 { return f.base }

// Pow returns the decimal exponent.
func (f Fixed) Pow() int32 { return f.pow }

// Float64 returns the value as a float64.
func (f Fixed) Float64() float64 {
	return float64(f.base) * math.Pow(10, -float64(f.pow))
}

// String renders the value, without a fraction when the exponent is zero or
// negative.
func (f Fixed) String() string {
	if f.pow >= 1 {
		return strconv.FormatFloat(f.Float64(), 'f', -1, 64)
	}

	return strconv.FormatInt(f.base*pow10(-f.pow), 10)
}

// pow10 returns 10^n for 0 <= n <= maxFixedPow.
func pow10(n int32) int64 {
	if n < 0 || n > maxFixedPow {
		panic("numeric: fixed-point exponent out of range")
	}

	p := int64(1)
	for i := int32(0); i < n; i++ {
		p *= 10
	}

	return p
}

// align rescales the two values to the larger exponent.
func align(a, b Fixed) (ab, bb int64, pow int32) {
	if a.pow == b.pow {
		return a.base, b.base, a.pow
	}

	if a.pow < b.pow {
		return a.base * pow10(b.pow-a.pow), b.base, b.pow
	}

	return a.base, b.base * pow10(a.pow-b.pow), a.pow
}

// FixedPoint is the backend for Fixed bounds or weights.
type FixedPoint struct{}

// Compare returns the order of a and b.
func (FixedPoint) Compare(a, b Fixed) int {
	ab, bb, _ := align(a, b)

	return cmp.Compare(ab, bb)
}

// Add returns a + b at the finer of the two scales.
func (FixedPoint) Add(a, b Fixed) Fixed {
	ab, bb, pow := align(a, b)

	return Fixed{base: ab + bb, pow: pow}
}

// Sub returns a - b at the finer of the two scales.
func (FixedPoint) Sub(a, b Fixed) Fixed {
	ab, bb, pow := align(a, b)

	return Fixed{base: ab - bb, pow: pow}
}

// Mul returns a * b; the exponents add.
func (FixedPoint) Mul(a, b Fixed) Fixed {
	return Fixed{base: a.base * b.base, pow: a.pow + b.pow}
}

// Zero returns fixed-point 0.
func (FixedPoint) Zero() Fixed { return Fixed{} }

// One returns fixed-point 1.
func (FixedPoint) One() Fixed { return Fixed{base: 1} }

// FromInt64 converts v into a fixed-point value at scale 0.
func (FixedPoint) FromInt64(v int64) Fixed { return Fixed{base: v} }

// Int64 truncates n toward zero; fails when a negative exponent scales the
// mantissa past the int64 range.
func (FixedPoint) Int64(n Fixed) (int64, error) {
	if n.pow >= 0 {
		return n.base / pow10(n.pow), nil
	}

	scale := pow10(-n.pow)
	if n.base > math.MaxInt64/scale || n.base < math.MinInt64/scale {
		return 0, fmt.Errorf("%w: %v", ErrInt64Range, n)
	}

	return n.base * scale, nil
}

// Ordered always reports true: every fixed-point value is comparable.
func (FixedPoint) Ordered(Fixed) bool { return true }
