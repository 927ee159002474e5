package interval

import (
	"fmt"
	"slices"
	"strings"
)

// Collection is the sorted, pairwise-disjoint result of a combination.
// Invariants (ascending by lower bound, disjoint, and maximal: no touching
// pair with equal weight left unmerged) are guaranteed when the collection
// was produced by Combine; NewCollection trusts the caller instead.
// A collection is read-only after construction: queries and projections
// derive new values and never mutate the original, so one collection may be
// shared across goroutines freely.
type Collection[T, U any] struct {
	alg   Algebra[T, U]
	spans []Span[T, U]
}

// NewCollection builds a collection directly from spans without validating
// or re-sorting; the caller is responsible for the ordering invariants.
// Call Validate to check them explicitly.
func NewCollection[T, U any](alg Algebra[T, U], spans []Span[T, U]) *Collection[T, U] {
	return &Collection[T, U]{alg: alg, spans: slices.Clone(spans)}
}

// Validate checks the collection invariants, returning ErrInvariant for the
// first unsorted, overlapping, or unmerged-adjacent pair found.
func (c *Collection[T, U]) Validate() error {
	b, w := c.alg.bounds, c.alg.weights

	for i := 1; i < len(c.spans); i++ {
		prev, cur := c.spans[i-1], c.spans[i]

		if b.Compare(cur.lb, prev.lb) < 0 {
			return fmt.Errorf("%w: %v before %v is unsorted", ErrInvariant, prev, cur)
		}

		if b.Compare(prev.ub, cur.lb) > 0 {
			return fmt.Errorf("%w: %v overlaps %v", ErrInvariant, prev, cur)
		}

		if b.Compare(prev.ub, cur.lb) == 0 && w.Compare(prev.weight, cur.weight) == 0 {
			return fmt.Errorf("%w: %v and %v left unmerged", ErrInvariant, prev, cur)
		}
	}

	return nil
}

// Algebra returns the algebra the collection was built with.
func (c *Collection[T, U]) Algebra() Algebra[T, U] {
	return c.alg
}

// Len returns the number of disjoint spans.
func (c *Collection[T, U]) Len() int {
	return len(c.spans)
}

// Spans returns a copy of the spans in ascending order.
func (c *Collection[T, U]) Spans() []Span[T, U] {
	return slices.Clone(c.spans)
}

// LowerBound returns the first span's lower bound, or ErrEmptyCollection.
func (c *Collection[T, U]) LowerBound() (T, error) {
	if len(c.spans) == 0 {
		var zero T

		return zero, ErrEmptyCollection
	}

	return c.spans[0].lb, nil
}

// UpperBound returns the last span's upper bound, or ErrEmptyCollection.
func (c *Collection[T, U]) UpperBound() (T, error) {
	if len(c.spans) == 0 {
		var zero T

		return zero, ErrEmptyCollection
	}

	return c.spans[len(c.spans)-1].ub, nil
}

// Bounds returns the overall lower and upper bound, or ErrEmptyCollection.
func (c *Collection[T, U]) Bounds() (lb, ub T, err error) {
	if len(c.spans) == 0 {
		var zero T

		return zero, zero, ErrEmptyCollection
	}

	return c.spans[0].lb, c.spans[len(c.spans)-1].ub, nil
}

// TotalValue returns the integral of the weight function over the whole
// domain: the sum of width*weight over all spans. Zero for an empty
// collection.
func (c *Collection[T, U]) TotalValue() U {
	w := c.alg.weights

	total := w.Zero()
	for _, s := range c.spans {
		total = w.Add(total, s.TotalValue(c.alg))
	}

	return total
}

// ContainsPoint reports whether any span's closed range contains x.
func (c *Collection[T, U]) ContainsPoint(x T) bool {
	for _, s := range c.spans {
		if s.Contains(c.alg, x) {
			return true
		}
	}

	return false
}

// ValueAt returns the weight of the first span containing x, or zero when x
// is uncovered.
func (c *Collection[T, U]) ValueAt(x T) U {
	for _, s := range c.spans {
		if s.Contains(c.alg, x) {
			return s.weight
		}
	}

	return c.alg.weights.Zero()
}

// ContainsRange reports whether the query range is entirely covered by
// consecutive spans. The walk repeatedly clips the uncovered remainder of
// the query against each span in order; a remainder starting strictly before
// the current span means a gap, given the sort order.
func (c *Collection[T, U]) ContainsRange(r Range[T]) bool {
	b := c.alg.bounds

	remaining := r

	for _, s := range c.spans {
		if s.AsRange().Superset(b, remaining) {
			return true
		}

		if b.Compare(remaining.lb, s.lb) < 0 {
			return false
		}

		if b.Compare(remaining.lb, s.ub) > 0 {
			continue
		}

		remaining = Range[T]{lb: s.ub, ub: remaining.ub}
	}

	return false
}

// ValueByParts walks the query range across the collection and returns a new
// collection holding the covered sub-segments of the query, each carrying
// the weight of the span covering it. The walk stops at the first gap, so
// the result covers the query's longest covered prefix. This projection is
// exploratory: the exact normalization of the emitted weights is not a
// settled contract.
func (c *Collection[T, U]) ValueByParts(r Range[T]) *Collection[T, U] {
	b := c.alg.bounds

	var parts []Span[T, U]

	remaining := r

	for _, s := range c.spans {
		if s.AsRange().Superset(b, remaining) {
			parts = append(parts, Span[T, U]{lb: remaining.lb, ub: remaining.ub, weight: s.weight})

			break
		}

		if b.Compare(remaining.lb, s.lb) < 0 {
			break
		}

		if b.Compare(remaining.lb, s.ub) > 0 {
			continue
		}

		if b.Compare(remaining.lb, s.ub) < 0 {
			parts = append(parts, Span[T, U]{lb: remaining.lb, ub: s.ub, weight: s.weight})
		}

		remaining = Range[T]{lb: s.ub, ub: remaining.ub}
	}

	return &Collection[T, U]{alg: c.alg, spans: parts}
}

// OverlapsRange reports whether any span overlaps the given range.
func (c *Collection[T, U]) OverlapsRange(r Range[T]) bool {
	b := c.alg.bounds

	for _, s := range c.spans {
		if s.AsRange().Overlaps(b, r) {
			return true
		}
	}

	return false
}

// OverlapsSpan reports whether any span overlaps the given span.
func (c *Collection[T, U]) OverlapsSpan(s Span[T, U]) bool {
	return c.OverlapsRange(s.AsRange())
}

// OverlapsCollection reports whether any span of c overlaps any span of
// other.
func (c *Collection[T, U]) OverlapsCollection(other *Collection[T, U]) bool {
	for _, s := range other.spans {
		if c.OverlapsSpan(s) {
			return true
		}
	}

	return false
}

// CounterView projects every weight onto a non-negative integer count,
// merges joinable neighbors, and drops spans whose count is not strictly
// positive. Returns ErrCountOverflow if any weight cannot be represented.
func (c *Collection[T, U]) CounterView() (*Collection[T, U], error) {
	if len(c.spans) == 0 {
		return &Collection[T, U]{alg: c.alg}, nil
	}

	w := c.alg.weights
	zero := w.Zero()

	var out []Span[T, U]

	flush := func(s Span[T, U]) {
		if w.Compare(s.weight, zero) > 0 {
			out = append(out, s)
		}
	}

	cur, err := c.spans[0].ToCount(c.alg)
	if err != nil {
		return nil, err
	}

	for _, s := range c.spans[1:] {
		next, err := s.ToCount(c.alg)
		if err != nil {
			return nil, err
		}

		if cur.CanJoin(c.alg, next) {
			if cur, err = cur.Join(c.alg, next); err != nil {
				return nil, err
			}

			continue
		}

		flush(cur)
		cur = next
	}

	flush(cur)

	return &Collection[T, U]{alg: c.alg, spans: out}, nil
}

// SetView returns the minimal ordered list of disjoint plain ranges covering
// the same domain as the positive-weight spans, merging neighbors that
// overlap or touch regardless of weight.
func (c *Collection[T, U]) SetView() []Range[T] {
	b, w := c.alg.bounds, c.alg.weights
	zero := w.Zero()

	var out []Range[T]

	started := false

	var cur Range[T]

	for _, s := range c.spans {
		if w.Compare(s.weight, zero) <= 0 {
			continue
		}

		r := s.AsRange()

		if !started {
			cur, started = r, true

			continue
		}

		if cur.Overlaps(b, r) {
			cur = cur.Union(b, r)

			continue
		}

		out = append(out, cur)
		cur = r
	}

	if started {
		out = append(out, cur)
	}

	return out
}

// Equal reports whether the two collections hold semantically equal spans in
// the same order.
func (c *Collection[T, U]) Equal(other *Collection[T, U]) bool {
	if len(c.spans) != len(other.spans) {
		return false
	}

	for i := range c.spans {
		if !c.spans[i].Equal(c.alg, other.spans[i]) {
			return false
		}
	}

	return true
}

// String renders the collection as a space-separated list of spans.
func (c *Collection[T, U]) String() string {
	var sb strings.Builder

	sb.WriteByte('{')

	for i, s := range c.spans {
		if i > 0 {
			sb.WriteByte(' ')
		}

		sb.WriteString(s.String())
	}

	sb.WriteByte('}')

	return sb.String()
}
