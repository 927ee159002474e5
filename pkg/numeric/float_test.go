package numeric

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestFloat_Arithmetic tests the float backend operations.
func TestFloat_Arithmetic(t *testing.T) {
	t.Parallel()

	ar := Float[float64]{}

	assert.InDelta(t, 2.5, ar.Add(1.0, 1.5), 0)
	assert.InDelta(t, -0.5, ar.Sub(1.0, 1.5), 0)
	assert.InDelta(t, 1.5, ar.Mul(1.0, 1.5), 0)
	assert.Zero(t, ar.Zero())
	assert.InDelta(t, 1.0, ar.One(), 0)
	assert.InDelta(t, -7.0, ar.FromInt64(-7), 0)
}

// TestFloat_Ordered tests NaN exclusion from the total order.
func TestFloat_Ordered(t *testing.T) {
	t.Parallel()

	ar := Float[float64]{}

	assert.True(t, ar.Ordered(0))
	assert.True(t, ar.Ordered(math.Inf(1)))
	assert.False(t, ar.Ordered(math.NaN()))
}

// TestFloat_Int64 tests truncation toward zero.
func TestFloat_Int64(t *testing.T) {
	t.Parallel()

	ar := Float[float64]{}

	got, err := ar.Int64(3.9)
	require.NoError(t, err)
	assert.Equal(t, int64(3), got)

	got, err = ar.Int64(-3.9)
	require.NoError(t, err)
	assert.Equal(t, int64(-3), got)
}

// TestFloat_Int64_Overflow tests rejection outside the int64 range.
func TestFloat_Int64_Overflow(t *testing.T) {
	t.Parallel()

	ar := Float[float64]{}

	_, err := ar.Int64(1e19)
	require.ErrorIs(t, err, ErrInt64Range)

	_, err = ar.Int64(math.Inf(-1))
	require.ErrorIs(t, err, ErrInt64Range)

	_, err = ar.Int64(math.NaN())
	require.ErrorIs(t, err, ErrInt64Range)
}
