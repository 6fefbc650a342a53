// Package bigint provides Int, an immutable arbitrary-precision signed
// integer built on the digits engine.
//
// Int is a value type: every operation returns a new value and leaves its
// operands untouched, so Ints may be copied and shared freely. The zero
// value is the integer 0.
//
// Multiplication chooses between schoolbook, Karatsuba and number theoretic
// transform algorithms from the operand lengths (see SetThresholds);
// MulWith runs a specific algorithm so the three can be checked against
// each other.
package bigint
