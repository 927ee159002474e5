// Package interval combines weighted numeric intervals into the unique
// minimal set of pairwise-disjoint intervals whose weight equals the sum of
// all inputs covering each sub-range.
//
// The combination is a sweep line over interval endpoints: every input span
// contributes a +weight event at its lower bound and a -weight event at its
// upper bound; sorting the surviving events and prefix-summing the deltas
// yields the disjoint decomposition in O(n log n) without pairwise overlap
// testing.
//
// All arithmetic and ordering goes through an explicit numeric capability
// (Arith) supplied by the caller, so the same algorithm serves machine
// integers, floats, decimals, fixed point, and arbitrary-precision rationals.
// See package numeric for ready-made backends.
package interval
