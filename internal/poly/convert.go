package poly

import "slices"

// Convert maps p into another coefficient and degree type and renormalizes,
// since the target may identify coefficients or degrees that were distinct
// in the source (for example integers reduced into a prime field).
func Convert[F1 Scalar[F1], I1 Degree, F2 Scalar[F2], I2 Degree](
	p Poly[F1, I1], fc func(F1) F2, fi func(I1) I2,
) Poly[F2, I2] {
	out := make([]Monomial[F2, I2], len(p.terms))
	for i, m := range p.terms {
		out[i] = Monomial[F2, I2]{fc(m.Coef), fi(m.Deg)}
	}
	return FromTerms(out...)
}

// SameDegree is the degree conversion for Convert between equal degree
// types.
func SameDegree[I Degree](d I) I { return d }

// AddSub moves the term at index from src into dst: afterwards dst has
// gained that term (combined with any term of equal degree) and src has
// lost it. It panics if index is out of range.
func AddSub[F Scalar[F], I Degree](dst, src *Poly[F, I], index int) {
	if index < 0 || index >= len(src.terms) {
		precondition("poly.AddSub", "index out of range")
	}
	if dst == src {
		// moving a term within one polynomial leaves it unchanged
		return
	}
	m := src.terms[index]
	src.terms = slices.Delete(slices.Clone(src.terms), index, index+1)
	if len(src.terms) == 0 {
		src.terms = nil
	}
	dst.AddMonomialAssign(m)
}

// AddSubConvert is AddSub between polynomials of different types, copying
// the term through the given conversions.
func AddSubConvert[F1 Scalar[F1], I1 Degree, F2 Scalar[F2], I2 Degree](
	dst *Poly[F2, I2], src *Poly[F1, I1], index int, fc func(F1) F2, fi func(I1) I2,
) {
	if index < 0 || index >= len(src.terms) {
		precondition("poly.AddSubConvert", "index out of range")
	}
	m := src.terms[index]
	src.terms = slices.Delete(slices.Clone(src.terms), index, index+1)
	if len(src.terms) == 0 {
		src.terms = nil
	}
	dst.AddMonomialAssign(Monomial[F2, I2]{fc(m.Coef), fi(m.Deg)})
}
