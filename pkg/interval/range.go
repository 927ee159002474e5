package interval

import "fmt"

// Range is an immutable plain interval: the closed range [lb, ub] with an
// implicit weight of one. It expresses pure coverage where weight is
// irrelevant, such as the result of a coverage combination or a set view.
type Range[T any] struct {
	lb, ub T
}

// NewRange builds a plain range, swapping the bounds if given in reverse
// order so that lb <= ub always holds.
func NewRange[T any](ar Arith[T], lb, ub T) Range[T] {
	if ar.Compare(ub, lb) < 0 {
		lb, ub = ub, lb
	}

	return Range[T]{lb: lb, ub: ub}
}

// Lb returns the lower bound.
func (r Range[T]) Lb() T { return r.lb }

// Ub returns the upper bound.
func (r Range[T]) Ub() T { return r.ub }

// Bounds returns the lower and upper bound.
func (r Range[T]) Bounds() (lb, ub T) { return r.lb, r.ub }

// Width returns ub - lb.
func (r Range[T]) Width(ar Arith[T]) T {
	return ar.Sub(r.ub, r.lb)
}

// Contains reports whether x lies in the closed range [lb, ub].
func (r Range[T]) Contains(ar Arith[T], x T) bool {
	return ar.Compare(x, r.lb) >= 0 && ar.Compare(x, r.ub) <= 0
}

// Overlaps reports whether the two closed ranges share at least one point.
func (r Range[T]) Overlaps(ar Arith[T], other Range[T]) bool {
	return ar.Compare(r.lb, other.ub) <= 0 && ar.Compare(other.lb, r.ub) <= 0
}

// Superset reports whether other lies entirely within r.
func (r Range[T]) Superset(ar Arith[T], other Range[T]) bool {
	return ar.Compare(other.ub, r.ub) <= 0 && ar.Compare(other.lb, r.lb) >= 0
}

// Subset reports whether r lies entirely within other.
func (r Range[T]) Subset(ar Arith[T], other Range[T]) bool {
	return other.Superset(ar, r)
}

// Union returns the range covering both r and other.
func (r Range[T]) Union(ar Arith[T], other Range[T]) Range[T] {
	lb := r.lb
	if ar.Compare(other.lb, lb) < 0 {
		lb = other.lb
	}

	ub := r.ub
	if ar.Compare(other.ub, ub) > 0 {
		ub = other.ub
	}

	return Range[T]{lb: lb, ub: ub}
}

// Equal reports semantic equality of the bounds under the ordering.
func (r Range[T]) Equal(ar Arith[T], other Range[T]) bool {
	return ar.Compare(r.lb, other.lb) == 0 && ar.Compare(r.ub, other.ub) == 0
}

// String renders the range as [lb;ub].
func (r Range[T]) String() string {
	return fmt.Sprintf("[%v;%v]", r.lb, r.ub)
}
