package poly

import (
	"errors"

	apperrors "github.com/agbru/algebra/internal/errors"
)

// ErrInexactDivision reports a Euclidean step that could not lower the
// remainder's degree because the leading coefficients do not divide.
var ErrInexactDivision = errors.New("poly: leading coefficient division is not exact")

func divisionByZero(op string) error {
	return apperrors.WrapError(apperrors.ErrDivisionByZero, "%s", op)
}

// DivMod divides a by b, returning q and r with a = q*b + r.
//
// Each step divides the leading term of the running remainder by the leading
// term of b. The loop stops when the remainder is zero or of lower degree
// than b, when the leading quotient term is zero (the coefficient division
// truncated to nothing), or when a step fails to lower the remainder's
// degree. Over a field only the first condition can occur, so deg r < deg b.
// Over the integers the result is the exact quotient whenever b divides a.
//
// Parameters:
//   - a: The dividend.
//   - b: The divisor, which must not be zero.
//
// Returns:
//   - q: The quotient.
//   - r: The remainder.
//   - error: ErrDivisionByZero (wrapped) when b is zero.
func DivMod[F Scalar[F], I Degree](a, b Poly[F, I]) (q, r Poly[F, I], err error) {
	if b.IsNull() {
		return q, r, divisionByZero("poly.DivMod")
	}
	r = a
	if r.Degree() < b.Degree() {
		return q, r, nil
	}
	lead := b.Leading()
	var quo []Monomial[F, I]
	for !r.IsNull() && r.Degree() >= b.Degree() {
		t, err := r.Leading().Quo(lead)
		if err != nil {
			return Poly[F, I]{}, Poly[F, I]{}, err
		}
		if t.IsNull() {
			break
		}
		before := r.Degree()
		step := b
		step.MulMonomialAssign(t)
		r.SubAssign(step)
		quo = append(quo, t)
		if !r.IsNull() && r.Degree() >= before {
			break
		}
	}
	// quotient terms arrive in descending degree
	for i, j := 0, len(quo)-1; i < j; i, j = i+1, j-1 {
		quo[i], quo[j] = quo[j], quo[i]
	}
	q = Poly[F, I]{terms: quo}
	q.Normalize()
	return q, r, nil
}

// GCD returns a greatest common divisor of a and b by the Euclidean
// algorithm. The result is scaled to be monic when its leading coefficient
// is invertible, and otherwise to have a positive leading coefficient.
// GCD(0, 0) is 0.
//
// Over coefficient rings whose leading coefficients do not divide (such as
// the integers with a non-monic divisor) a step may fail to reduce the
// degree; GCD then returns ErrInexactDivision instead of looping.
func GCD[F Scalar[F], I Degree](a, b Poly[F, I]) (Poly[F, I], error) {
	for !b.IsNull() {
		_, r, err := DivMod(a, b)
		if err != nil {
			return Poly[F, I]{}, err
		}
		if !r.IsNull() && r.Degree() >= b.Degree() {
			return Poly[F, I]{}, ErrInexactDivision
		}
		a, b = b, r
	}
	return unitNormal(a), nil
}

// unitNormal scales p by the inverse of its leading coefficient when that
// inverse exists in the coefficient type.
func unitNormal[F Scalar[F], I Degree](p Poly[F, I]) Poly[F, I] {
	if p.IsNull() {
		return p
	}
	lc := p.LeadingCoef()
	inv, rem, err := one[F]().QuoRem(lc)
	if err == nil && rem.IsZero() && inv.Mul(lc).IsOne() {
		p.MulScalarAssign(inv)
		return p
	}
	return p.Abs()
}
