package poly

import (
	apperrors "github.com/agbru/algebra/internal/errors"
)

// Monomial is a single term Coef*x^Deg.
type Monomial[F Scalar[F], I Degree] struct {
	Coef F
	Deg  I
}

// Term builds the monomial c*x^d.
func Term[F Scalar[F], I Degree](c F, d I) Monomial[F, I] {
	return Monomial[F, I]{Coef: c, Deg: d}
}

func precondition(op, msg string) {
	panic(apperrors.NewPreconditionError(op, msg))
}

// IsNull reports whether the coefficient is zero.
func (m Monomial[F, I]) IsNull() bool { return m.Coef.IsZero() }

// IsConst reports whether the degree is zero.
func (m Monomial[F, I]) IsConst() bool { return m.Deg == 0 }

// IsUnit reports whether m is the constant 1.
func (m Monomial[F, I]) IsUnit() bool { return m.Deg == 0 && m.Coef.IsOne() }

// IsOppositeUnit reports whether m is the constant -1.
func (m Monomial[F, I]) IsOppositeUnit() bool { return m.Deg == 0 && isOppositeUnit(m.Coef) }

// CanAdd reports whether m and o have equal degrees, which AddMonomial and
// SubMonomial require.
func (m Monomial[F, I]) CanAdd(o Monomial[F, I]) bool { return m.Deg == o.Deg }

// Opposite negates the coefficient.
func (m Monomial[F, I]) Opposite() Monomial[F, I] { return Monomial[F, I]{m.Coef.Neg(), m.Deg} }

// AddScalar adds c to a constant monomial. It panics unless m.IsConst().
func (m Monomial[F, I]) AddScalar(c F) Monomial[F, I] {
	if !m.IsConst() {
		precondition("Monomial.AddScalar", "monomial is not constant")
	}
	return Monomial[F, I]{m.Coef.Add(c), 0}
}

// SubScalar subtracts c from a constant monomial. It panics unless
// m.IsConst().
func (m Monomial[F, I]) SubScalar(c F) Monomial[F, I] {
	if !m.IsConst() {
		precondition("Monomial.SubScalar", "monomial is not constant")
	}
	return Monomial[F, I]{m.Coef.Sub(c), 0}
}

// AddMonomial sums two monomials of equal degree. It panics unless
// m.CanAdd(o).
func (m Monomial[F, I]) AddMonomial(o Monomial[F, I]) Monomial[F, I] {
	if !m.CanAdd(o) {
		precondition("Monomial.AddMonomial", "degrees differ")
	}
	return Monomial[F, I]{m.Coef.Add(o.Coef), m.Deg}
}

// SubMonomial subtracts a monomial of equal degree. It panics unless
// m.CanAdd(o).
func (m Monomial[F, I]) SubMonomial(o Monomial[F, I]) Monomial[F, I] {
	if !m.CanAdd(o) {
		precondition("Monomial.SubMonomial", "degrees differ")
	}
	return Monomial[F, I]{m.Coef.Sub(o.Coef), m.Deg}
}

// MulScalar multiplies the coefficient by c.
func (m Monomial[F, I]) MulScalar(c F) Monomial[F, I] { return Monomial[F, I]{m.Coef.Mul(c), m.Deg} }

// QuoScalar divides the coefficient by c, keeping the quotient of the
// coefficient type's QuoRem.
func (m Monomial[F, I]) QuoScalar(c F) (Monomial[F, I], error) {
	q, _, err := m.Coef.QuoRem(c)
	if err != nil {
		return Monomial[F, I]{}, err
	}
	return Monomial[F, I]{q, m.Deg}, nil
}

// Mul multiplies coefficients and adds degrees.
func (m Monomial[F, I]) Mul(o Monomial[F, I]) Monomial[F, I] {
	return Monomial[F, I]{m.Coef.Mul(o.Coef), m.Deg + o.Deg}
}

// Quo divides coefficients and subtracts degrees. When o's degree exceeds
// m's the result is the zero monomial of degree 0 rather than a term of
// negative degree.
func (m Monomial[F, I]) Quo(o Monomial[F, I]) (Monomial[F, I], error) {
	q, _, err := m.Coef.QuoRem(o.Coef)
	if err != nil {
		return Monomial[F, I]{}, err
	}
	if o.Deg > m.Deg {
		return Monomial[F, I]{}, nil
	}
	return Monomial[F, I]{q, m.Deg - o.Deg}, nil
}

// Cmp orders monomials by degree, then by coefficient.
func (m Monomial[F, I]) Cmp(o Monomial[F, I]) int {
	switch {
	case m.Deg < o.Deg:
		return -1
	case m.Deg > o.Deg:
		return 1
	}
	return m.Coef.Cmp(o.Coef)
}

// String renders m in variable notation with variable x.
func (m Monomial[F, I]) String() string {
	var tw termWriter
	m.writeTo(&tw, true, "x")
	return tw.String()
}
