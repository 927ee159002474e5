package interval

import "fmt"

// Span is an immutable weighted interval: the closed range [lb, ub] carrying
// a numeric weight. Spans are the atomic unit of combiner input and output;
// they are never mutated, only replaced.
type Span[T, U any] struct {
	lb, ub T
	weight U
}

// NewSpan builds a weighted span, swapping the bounds if given in reverse
// order so that lb <= ub always holds. A zero-width span (lb == ub) is
// accepted as a degenerate value; it contributes nothing when combined.
func (a Algebra[T, U]) NewSpan(lb, ub T, weight U) Span[T, U] {
	if a.bounds.Compare(ub, lb) < 0 {
		lb, ub = ub, lb
	}

	return Span[T, U]{lb: lb, ub: ub, weight: weight}
}

// SpanOf lifts a plain range into a span with weight one.
func (a Algebra[T, U]) SpanOf(r Range[T]) Span[T, U] {
	return Span[T, U]{lb: r.lb, ub: r.ub, weight: a.weights.One()}
}

// Lb returns the lower bound.
func (s Span[T, U]) Lb() T { return s.lb }

// Ub returns the upper bound.
func (s Span[T, U]) Ub() T { return s.ub }

// Weight returns the weight.
func (s Span[T, U]) Weight() U { return s.weight }

// Bounds returns the lower and upper bound.
func (s Span[T, U]) Bounds() (lb, ub T) { return s.lb, s.ub }

// AsRange drops the weight, returning the plain range over the same bounds.
func (s Span[T, U]) AsRange() Range[T] {
	return Range[T]{lb: s.lb, ub: s.ub}
}

// Width returns ub - lb.
func (s Span[T, U]) Width(a Algebra[T, U]) T {
	return a.bounds.Sub(s.ub, s.lb)
}

// TotalValue returns width*weight, the integral of the weight over the span.
func (s Span[T, U]) TotalValue(a Algebra[T, U]) U {
	return a.scale(s.Width(a), s.weight)
}

// Contains reports whether x lies in the closed range [lb, ub].
func (s Span[T, U]) Contains(a Algebra[T, U], x T) bool {
	b := a.bounds

	return b.Compare(x, s.lb) >= 0 && b.Compare(x, s.ub) <= 0
}

// leftOverlaps reports whether s overlaps other from the left: s starts at
// or before other, ends at or before other, and other starts no later than
// s ends.
func (s Span[T, U]) leftOverlaps(a Algebra[T, U], other Span[T, U]) bool {
	b := a.bounds

	return b.Compare(s.lb, other.lb) <= 0 &&
		b.Compare(s.ub, other.ub) <= 0 &&
		b.Compare(other.lb, s.ub) <= 0
}

// Overlaps reports whether the two closed ranges share at least one point.
func (s Span[T, U]) Overlaps(a Algebra[T, U], other Span[T, U]) bool {
	return s.leftOverlaps(a, other) || other.leftOverlaps(a, s)
}

// Superset reports whether other lies entirely within s.
func (s Span[T, U]) Superset(a Algebra[T, U], other Span[T, U]) bool {
	b := a.bounds

	return b.Compare(other.ub, s.ub) <= 0 && b.Compare(other.lb, s.lb) >= 0
}

// Subset reports whether s lies entirely within other.
func (s Span[T, U]) Subset(a Algebra[T, U], other Span[T, U]) bool {
	return other.Superset(a, s)
}

// CanJoin reports whether the two spans can be joined into one: either the
// bounds are identical (weights will be summed) or the spans touch at a
// boundary and carry equal weights.
func (s Span[T, U]) CanJoin(a Algebra[T, U], other Span[T, U]) bool {
	b := a.bounds

	if b.Compare(s.lb, other.lb) == 0 && b.Compare(s.ub, other.ub) == 0 {
		return true
	}

	touching := b.Compare(s.ub, other.lb) == 0 || b.Compare(other.ub, s.lb) == 0

	return touching && a.weights.Compare(s.weight, other.weight) == 0
}

// Join merges two joinable spans. Identical bounds sum the weights; a shared
// boundary with equal weights produces the span covering both. Join
// re-verifies the weight-equality invariant for the adjacency case instead
// of trusting the caller, returning ErrUnjoinable when it does not hold.
func (s Span[T, U]) Join(a Algebra[T, U], other Span[T, U]) (Span[T, U], error) {
	b := a.bounds

	if b.Compare(s.lb, other.lb) == 0 && b.Compare(s.ub, other.ub) == 0 {
		return Span[T, U]{lb: s.lb, ub: s.ub, weight: a.weights.Add(s.weight, other.weight)}, nil
	}

	touching := b.Compare(s.ub, other.lb) == 0 || b.Compare(other.ub, s.lb) == 0
	if !touching || a.weights.Compare(s.weight, other.weight) != 0 {
		return Span[T, U]{}, ErrUnjoinable
	}

	if b.Compare(s.lb, other.lb) < 0 {
		return Span[T, U]{lb: s.lb, ub: other.ub, weight: s.weight}, nil
	}

	return Span[T, U]{lb: other.lb, ub: s.ub, weight: other.weight}, nil
}

// CanUnion reports whether the two spans can merge into one contiguous range
// when weight is ignored, i.e. their closed ranges overlap or touch.
func (s Span[T, U]) CanUnion(a Algebra[T, U], other Span[T, U]) bool {
	return s.Overlaps(a, other)
}

// Union merges the two spans into one covering both, ignoring weights; the
// result carries weight one. Used by coverage/set projections.
func (s Span[T, U]) Union(a Algebra[T, U], other Span[T, U]) Span[T, U] {
	b := a.bounds

	lb := s.lb
	if b.Compare(other.lb, lb) < 0 {
		lb = other.lb
	}

	ub := s.ub
	if b.Compare(other.ub, ub) > 0 {
		ub = other.ub
	}

	return Span[T, U]{lb: lb, ub: ub, weight: a.weights.One()}
}

// ToCount projects the weight onto a non-negative integer count: a weight of
// one or more maps to its value truncated toward zero, anything below one
// maps to zero. Truncation (not rounding) is the stable contract. Returns
// ErrCountOverflow when the weight does not fit the integer range.
func (s Span[T, U]) ToCount(a Algebra[T, U]) (Span[T, U], error) {
	w := a.weights

	if w.Compare(s.weight, w.One()) < 0 {
		return Span[T, U]{lb: s.lb, ub: s.ub, weight: w.Zero()}, nil
	}

	count, err := w.Int64(s.weight)
	if err != nil {
		return Span[T, U]{}, fmt.Errorf("%w: %v", ErrCountOverflow, err)
	}

	return Span[T, U]{lb: s.lb, ub: s.ub, weight: w.FromInt64(count)}, nil
}

// Equal reports semantic equality of the (lb, ub, weight) triples under the
// algebra's orderings. Prefer this over == since backends may have multiple
// representations of one value.
func (s Span[T, U]) Equal(a Algebra[T, U], other Span[T, U]) bool {
	b := a.bounds

	return b.Compare(s.lb, other.lb) == 0 &&
		b.Compare(s.ub, other.ub) == 0 &&
		a.weights.Compare(s.weight, other.weight) == 0
}

// String renders the span as [lb;ub]xweight.
func (s Span[T, U]) String() string {
	return fmt.Sprintf("[%v;%v]x%v", s.lb, s.ub, s.weight)
}
