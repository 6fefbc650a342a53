// Package poly implements sparse univariate polynomials with generic
// coefficients and degrees.
//
// A Poly stores only its non-zero terms, as Monomial values kept in strictly
// ascending degree order. Every exported operation leaves a polynomial in
// this normal form; Normalize is the only operation that accepts an
// arbitrary term sequence.
//
// Coefficients are any type satisfying Scalar, whose zero value must be the
// additive identity. bigint.Int, rational.Rat, field.Element and Poly itself
// all qualify, so polynomials over polynomials need no special casing.
// Degrees are any signed integer type; negative degrees (Laurent terms) are
// allowed everywhere except Monomial.Quo, which never produces one.
//
// Values have copy semantics: assigning a Poly and then mutating one copy
// through a *Assign method never changes the other, because mutators always
// write into freshly allocated storage.
//
// Contract violations such as asking for the leading monomial of the zero
// polynomial are programming errors and panic with an
// apperrors.PreconditionError. Division by zero and malformed text are
// ordinary errors.
package poly
