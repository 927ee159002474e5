package interval

import (
	"fmt"
	"slices"
)

// event is a signed point event: delta weight takes effect at coord.
type event[T, U any] struct {
	coord T
	delta U
}

// deltaMap accumulates signed endpoint events keyed by coordinate with
// get-or-zero semantics: a coordinate never seen before starts at the weight
// zero. Because backends may hold several representations of one value
// (decimal 1.5 vs 1.50), coordinates cannot serve as Go map keys; events are
// buffered and coalesced under Compare at compaction time, which preserves
// the commutative/associative accumulation semantics of a default-zero map.
type deltaMap[T, U any] struct {
	alg    Algebra[T, U]
	events []event[T, U]
}

// newDeltaMap builds an accumulator sized for n intervals (2n events).
func newDeltaMap[T, U any](alg Algebra[T, U], n int) *deltaMap[T, U] {
	return &deltaMap[T, U]{
		alg:    alg,
		events: make([]event[T, U], 0, 2*n),
	}
}

// add accumulates delta at coord.
func (m *deltaMap[T, U]) add(coord T, delta U) {
	m.events = append(m.events, event[T, U]{coord: coord, delta: delta})
}

// points sorts the event coordinates, coalesces deltas at equal coordinates,
// and drops coordinates whose accumulated delta is exactly zero. Dropping a
// cancelled coordinate can synthesize split points absent from any single
// input (overlapping opposite-sign weights); that is intended behavior.
func (m *deltaMap[T, U]) points() []event[T, U] {
	b, w := m.alg.bounds, m.alg.weights

	slices.SortFunc(m.events, func(x, y event[T, U]) int {
		return b.Compare(x.coord, y.coord)
	})

	zero := w.Zero()
	points := m.events[:0]

	for i := 0; i < len(m.events); {
		coord := m.events[i].coord
		sum := m.events[i].delta

		j := i + 1
		for ; j < len(m.events) && b.Compare(m.events[j].coord, coord) == 0; j++ {
			sum = w.Add(sum, m.events[j].delta)
		}

		if w.Compare(sum, zero) != 0 {
			points = append(points, event[T, U]{coord: coord, delta: sum})
		}

		i = j
	}

	return points
}

// cumulate charges the input spans into the delta accumulator and returns
// the sorted coordinates paired with the cumulative weight in effect from
// each coordinate onward (the prefix sum of the surviving deltas).
func cumulate[T, U any](alg Algebra[T, U], spans []Span[T, U]) ([]event[T, U], error) {
	b, w := alg.bounds, alg.weights

	dm := newDeltaMap(alg, len(spans))

	for _, s := range spans {
		if !b.Ordered(s.lb) || !b.Ordered(s.ub) {
			return nil, fmt.Errorf("%w: bound of %v", ErrUnorderable, s)
		}

		if !w.Ordered(s.weight) {
			return nil, fmt.Errorf("%w: weight of %v", ErrUnorderable, s)
		}

		dm.add(s.lb, s.weight)
		dm.add(s.ub, w.Sub(w.Zero(), s.weight))
	}

	points := dm.points()

	cum := w.Zero()
	for i := range points {
		cum = w.Add(cum, points[i].delta)
		points[i].delta = cum
	}

	return points, nil
}

// Combine merges an unordered batch of weighted spans into the unique
// minimal disjoint decomposition: ascending, pairwise-disjoint spans whose
// weight is the sum of all inputs covering that sub-range. Inputs may
// overlap, repeat, and carry weights of any sign; zero-width spans cancel
// out. Equal-weight spans separated by a gap stay separate; the counter and
// set views perform adjacency merging.
//
// Runs in O(n log n), dominated by the endpoint sort. Returns ErrUnorderable
// if any bound or weight falls outside the backend's total order.
func Combine[T, U any](alg Algebra[T, U], spans []Span[T, U]) (*Collection[T, U], error) {
	points, err := cumulate(alg, spans)
	if err != nil {
		return nil, err
	}

	zero := alg.weights.Zero()

	var out []Span[T, U]

	for i := 0; i+1 < len(points); i++ {
		if alg.weights.Compare(points[i].delta, zero) != 0 {
			out = append(out, Span[T, U]{
				lb:     points[i].coord,
				ub:     points[i+1].coord,
				weight: points[i].delta,
			})
		}
	}

	return &Collection[T, U]{alg: alg, spans: out}, nil
}

// CombineCoverage merges a batch of weighted spans into the minimal disjoint
// union of covered ranges: the sub-ranges where the accumulated weight is
// strictly positive, with touching ranges merged greedily. Weight magnitude
// is ignored beyond the positivity test.
func CombineCoverage[T, U any](alg Algebra[T, U], spans []Span[T, U]) ([]Range[T], error) {
	points, err := cumulate(alg, spans)
	if err != nil {
		return nil, err
	}

	b := alg.bounds
	zero := alg.weights.Zero()

	var out []Range[T]

	for i := 0; i+1 < len(points); i++ {
		if alg.weights.Compare(points[i].delta, zero) <= 0 {
			continue
		}

		lb, ub := points[i].coord, points[i+1].coord

		if n := len(out); n > 0 && b.Compare(out[n-1].ub, lb) == 0 {
			out[n-1].ub = ub

			continue
		}

		out = append(out, Range[T]{lb: lb, ub: ub})
	}

	return out, nil
}
