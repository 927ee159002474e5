package interval

import "errors"

// Sentinel errors surfaced by combiner, collection, and projection operations.
// All are deterministic validation failures: retrying with the same input
// fails the same way, so callers must correct the input instead.
var (
	// ErrEmptyCollection is returned by bound accessors on a collection
	// holding zero spans.
	ErrEmptyCollection = errors.New("interval: empty collection")

	// ErrUnorderable is returned when a bound or weight cannot be placed in
	// the backend's total order (for example a float NaN).
	ErrUnorderable = errors.New("interval: value outside the total order")

	// ErrCountOverflow is returned when a weight cannot be represented as a
	// non-negative integer count.
	ErrCountOverflow = errors.New("interval: weight not representable as a count")

	// ErrInvariant is returned by Validate when a directly constructed
	// collection is not sorted, disjoint, and maximal.
	ErrInvariant = errors.New("interval: collection invariant violated")

	// ErrUnjoinable is returned by Join when the two spans neither share
	// bounds nor touch at a boundary with equal weights.
	ErrUnjoinable = errors.New("interval: spans cannot be joined")
)
