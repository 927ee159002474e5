// Package numeric provides ready-made backends satisfying the
// interval.Arith capability contract: machine integers, machine floats
// (NaN excluded from the order), shopspring decimals, arbitrary-precision
// big.Rat rationals, and a scaled-decimal fixed-point type.
//
// Every backend is a stateless value; constructing one allocates nothing and
// the same backend value may be shared across goroutines.
package numeric
