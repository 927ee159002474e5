package interval

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sumatoshi-tech/intervalues/pkg/numeric"
)

// intAlg is the shared integer algebra used across the core tests.
var intAlg = Uniform[int](numeric.Int[int]{})

// floatAlg is the shared float64 algebra used across the core tests.
var floatAlg = Uniform[float64](numeric.Float[float64]{})

// TestNewSpan_CanonicalizesBounds verifies reversed bounds are swapped.
func TestNewSpan_CanonicalizesBounds(t *testing.T) {
	t.Parallel()

	s := intAlg.NewSpan(7, 3, 2)
	assert.Equal(t, 3, s.Lb())
	assert.Equal(t, 7, s.Ub())
	assert.Equal(t, 2, s.Weight())
}

// TestSpan_Accessors verifies the tuple accessors and width.
func TestSpan_Accessors(t *testing.T) {
	t.Parallel()

	s := intAlg.NewSpan(3, 7, 2)

	lb, ub := s.Bounds()
	assert.Equal(t, 3, lb)
	assert.Equal(t, 7, ub)
	assert.Equal(t, 4, s.Width(intAlg))
	assert.Equal(t, 8, s.TotalValue(intAlg))
	assert.Equal(t, "[3;7]x2", s.String())
}

// TestSpan_Contains verifies closed-range membership, both ends inclusive.
func TestSpan_Contains(t *testing.T) {
	t.Parallel()

	s := intAlg.NewSpan(3, 7, 2)

	assert.True(t, s.Contains(intAlg, 4))
	assert.True(t, s.Contains(intAlg, 3))
	assert.True(t, s.Contains(intAlg, 7))
	assert.False(t, s.Contains(intAlg, 0))
	assert.False(t, s.Contains(intAlg, 8))
}

// TestSpan_Overlaps verifies symmetric closed-range overlap.
func TestSpan_Overlaps(t *testing.T) {
	t.Parallel()

	a := intAlg.NewSpan(3, 6, 1)
	b := intAlg.NewSpan(4, 7, 2)
	c := intAlg.NewSpan(8, 9, 1)

	assert.True(t, a.Overlaps(intAlg, b))
	assert.True(t, b.Overlaps(intAlg, a))
	assert.False(t, a.Overlaps(intAlg, c))

	// Touching at a single boundary point still overlaps (closed ranges).
	d := intAlg.NewSpan(6, 8, 1)
	assert.True(t, a.Overlaps(intAlg, d))
}

// TestSpan_SupersetSubset verifies closed-range containment.
func TestSpan_SupersetSubset(t *testing.T) {
	t.Parallel()

	outer := intAlg.NewSpan(3, 7, 2)
	inner := intAlg.NewSpan(4, 6, 1)

	assert.True(t, outer.Superset(intAlg, inner))
	assert.True(t, inner.Subset(intAlg, outer))
	assert.False(t, outer.Subset(intAlg, inner))
	assert.False(t, inner.Superset(intAlg, outer))
}

// TestSpan_CanJoin verifies the two join conditions: identical bounds, or a
// shared boundary with equal weights.
func TestSpan_CanJoin(t *testing.T) {
	t.Parallel()

	a := intAlg.NewSpan(0, 2, 1)
	b := intAlg.NewSpan(2, 4, 2)
	c := intAlg.NewSpan(4, 6, 2)

	assert.False(t, a.CanJoin(intAlg, b)) // touching, unequal weights
	assert.True(t, b.CanJoin(intAlg, c))  // touching, equal weights
	assert.True(t, c.CanJoin(intAlg, b))
	assert.False(t, a.CanJoin(intAlg, c)) // gap

	assert.True(t, a.CanJoin(intAlg, intAlg.NewSpan(0, 2, 5))) // identical bounds
}

// TestSpan_Join verifies weight summing for identical bounds and spanning
// for equal-weight neighbors.
func TestSpan_Join(t *testing.T) {
	t.Parallel()

	a := intAlg.NewSpan(0, 2, 1)

	sum, err := a.Join(intAlg, a)
	require.NoError(t, err)
	assert.True(t, sum.Equal(intAlg, intAlg.NewSpan(0, 2, 2)))

	b := intAlg.NewSpan(2, 4, 2)
	c := intAlg.NewSpan(4, 6, 2)

	joined, err := c.Join(intAlg, b)
	require.NoError(t, err)
	assert.True(t, joined.Equal(intAlg, intAlg.NewSpan(2, 6, 2)))
}

// TestSpan_Join_Unjoinable verifies Join re-checks the invariant instead of
// trusting the caller.
func TestSpan_Join_Unjoinable(t *testing.T) {
	t.Parallel()

	a := intAlg.NewSpan(0, 2, 1)
	b := intAlg.NewSpan(2, 4, 2)
	c := intAlg.NewSpan(5, 6, 1)

	_, err := a.Join(intAlg, b)
	assert.ErrorIs(t, err, ErrUnjoinable)

	_, err = a.Join(intAlg, c)
	assert.ErrorIs(t, err, ErrUnjoinable)
}

// TestSpan_Union verifies the weight-ignoring merge resets the weight to one.
func TestSpan_Union(t *testing.T) {
	t.Parallel()

	a := intAlg.NewSpan(0, 2, 2)
	b := intAlg.NewSpan(1, 4, 3)
	c := intAlg.NewSpan(3, 6, 6)

	assert.True(t, a.CanUnion(intAlg, b))
	assert.True(t, b.CanUnion(intAlg, c))
	assert.False(t, a.CanUnion(intAlg, c))

	assert.True(t, a.Union(intAlg, b).Equal(intAlg, intAlg.NewSpan(0, 4, 1)))
	assert.True(t, c.Union(intAlg, b).Equal(intAlg, intAlg.NewSpan(1, 6, 1)))
}

// TestSpan_ToCount verifies truncation toward zero and the sub-one floor.
func TestSpan_ToCount(t *testing.T) {
	t.Parallel()

	got, err := floatAlg.NewSpan(0, 2, 3.5).ToCount(floatAlg)
	require.NoError(t, err)
	assert.True(t, got.Equal(floatAlg, floatAlg.NewSpan(0, 2, 3)))

	got, err = floatAlg.NewSpan(0, 2, 0.5).ToCount(floatAlg)
	require.NoError(t, err)
	assert.True(t, got.Equal(floatAlg, floatAlg.NewSpan(0, 2, 0)))

	got, err = floatAlg.NewSpan(0, 2, -3.5).ToCount(floatAlg)
	require.NoError(t, err)
	assert.True(t, got.Equal(floatAlg, floatAlg.NewSpan(0, 2, 0)))
}

// TestSpan_ToCount_Overflow verifies weights beyond the count range surface
// ErrCountOverflow.
func TestSpan_ToCount_Overflow(t *testing.T) {
	t.Parallel()

	_, err := floatAlg.NewSpan(0, 2, 1e19).ToCount(floatAlg)
	assert.ErrorIs(t, err, ErrCountOverflow)
}

// TestSpan_AsRange verifies dropping the weight.
func TestSpan_AsRange(t *testing.T) {
	t.Parallel()

	r := intAlg.NewSpan(0, 2, 9).AsRange()
	assert.True(t, r.Equal(intAlg.Bounds(), NewRange(intAlg.Bounds(), 0, 2)))
	assert.Equal(t, "[0;2]", r.String())
}

// TestRange_Operations verifies the plain-range variants of the closed-range
// predicates.
func TestRange_Operations(t *testing.T) {
	t.Parallel()

	b := intAlg.Bounds()

	r := NewRange(b, 7, 3) // reversed on purpose
	assert.Equal(t, 3, r.Lb())
	assert.Equal(t, 7, r.Ub())
	assert.Equal(t, 4, r.Width(b))

	assert.True(t, r.Contains(b, 3))
	assert.True(t, r.Contains(b, 7))
	assert.False(t, r.Contains(b, 8))

	other := NewRange(b, 5, 9)
	assert.True(t, r.Overlaps(b, other))
	assert.True(t, r.Union(b, other).Equal(b, NewRange(b, 3, 9)))

	inner := NewRange(b, 4, 6)
	assert.True(t, r.Superset(b, inner))
	assert.True(t, inner.Subset(b, r))
}

// TestAlgebra_SpanOf verifies lifting a range into a weight-one span.
func TestAlgebra_SpanOf(t *testing.T) {
	t.Parallel()

	r := NewRange(intAlg.Bounds(), 1, 4)
	assert.True(t, intAlg.SpanOf(r).Equal(intAlg, intAlg.NewSpan(1, 4, 1)))
}
