package interval

import (
	"math/big"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sumatoshi-tech/intervalues/pkg/numeric"
)

// TestCombine_DecimalCoalescesEqualBounds tests that decimal bounds with
// different trailing zeros land on the same sweep point.
func TestCombine_DecimalCoalescesEqualBounds(t *testing.T) {
	t.Parallel()

	alg := Uniform[decimal.Decimal](numeric.Dec{})

	spans := []Span[decimal.Decimal, decimal.Decimal]{
		alg.NewSpan(decimal.RequireFromString("0"), decimal.RequireFromString("1.50"), alg.Weights().One()),
		alg.NewSpan(decimal.RequireFromString("1.5"), decimal.RequireFromString("3"), alg.Weights().One()),
	}

	got, err := Combine(alg, spans)
	require.NoError(t, err)

	// The shared bound cancels, leaving one span over the whole extent.
	require.Equal(t, 1, got.Len())
	assert.Zero(t, alg.Bounds().Compare(got.Spans()[0].Lb(), decimal.RequireFromString("0")))
	assert.Zero(t, alg.Bounds().Compare(got.Spans()[0].Ub(), decimal.RequireFromString("3")))
}

// TestCombine_BigRatExactThirds tests exact rational sweep arithmetic.
func TestCombine_BigRatExactThirds(t *testing.T) {
	t.Parallel()

	alg := Uniform[*big.Rat](numeric.BigRat{})

	spans := []Span[*big.Rat, *big.Rat]{
		alg.NewSpan(big.NewRat(0, 1), big.NewRat(1, 3), big.NewRat(1, 3)),
		alg.NewSpan(big.NewRat(1, 3), big.NewRat(1, 1), big.NewRat(2, 6)),
	}

	got, err := Combine(alg, spans)
	require.NoError(t, err)

	// 1/3 and 2/6 are the same weight, so the spans fuse.
	require.Equal(t, 1, got.Len())
	assert.Zero(t, got.Spans()[0].Weight().Cmp(big.NewRat(1, 3)))

	assert.Zero(t, got.TotalValue().Cmp(big.NewRat(1, 3)))
}

// TestCombine_FixedPointMixedScales tests that bounds at different decimal
// scales align on the sweep.
func TestCombine_FixedPointMixedScales(t *testing.T) {
	t.Parallel()

	alg := Uniform[numeric.Fixed](numeric.FixedPoint{})

	spans := []Span[numeric.Fixed, numeric.Fixed]{
		alg.SpanOf(NewRange(alg.Bounds(), numeric.NewFixed(0, 0), numeric.NewFixed(25, 1))),
		alg.SpanOf(NewRange(alg.Bounds(), numeric.NewFixed(250, 2), numeric.NewFixed(5, 0))),
	}

	got, err := Combine(alg, spans)
	require.NoError(t, err)

	require.Equal(t, 1, got.Len())
	assert.Zero(t, alg.Bounds().Compare(got.Spans()[0].Lb(), numeric.NewFixed(0, 0)))
	assert.Zero(t, alg.Bounds().Compare(got.Spans()[0].Ub(), numeric.NewFixed(5, 0)))
}

// TestCombineCoverage_BigRat tests coverage extraction over rationals.
func TestCombineCoverage_BigRat(t *testing.T) {
	t.Parallel()

	alg := Uniform[*big.Rat](numeric.BigRat{})

	spans := []Span[*big.Rat, *big.Rat]{
		alg.NewSpan(big.NewRat(0, 1), big.NewRat(1, 3), big.NewRat(2, 1)),
		alg.NewSpan(big.NewRat(1, 3), big.NewRat(1, 1), big.NewRat(5, 1)),
	}

	got, err := CombineCoverage(alg, spans)
	require.NoError(t, err)

	require.Len(t, got, 1)
	assert.Zero(t, got[0].Lb().Cmp(big.NewRat(0, 1)))
	assert.Zero(t, got[0].Ub().Cmp(big.NewRat(1, 1)))
}
