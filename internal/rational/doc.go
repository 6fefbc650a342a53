// Package rational provides Rat, an exact rational number over bigint.Int.
//
// A Rat is always stored in lowest terms with a positive denominator, so
// two equal rationals share one representation and compare with Equal.
// The zero value is 0/1 and ready to use. Rat satisfies the coefficient
// capability set of package poly, which makes polynomials over the
// rationals a field-coefficient case with exact long division.
package rational
