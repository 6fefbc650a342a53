package poly

import (
	"cmp"
	"iter"
	"slices"
)

// Poly is a sparse polynomial in normal form: terms in strictly ascending
// degree with no zero coefficients. The zero value is the zero polynomial.
type Poly[F Scalar[F], I Degree] struct {
	terms []Monomial[F, I]
}

// ─── Construction ───────────────────────────────────────────────────────────

// Zero returns the zero polynomial.
func Zero[F Scalar[F], I Degree]() Poly[F, I] { return Poly[F, I]{} }

// FromScalar returns the constant polynomial c.
func FromScalar[F Scalar[F], I Degree](c F) Poly[F, I] {
	return FromMonomial(Monomial[F, I]{Coef: c})
}

// FromMonomial returns the polynomial with the single term m.
func FromMonomial[F Scalar[F], I Degree](m Monomial[F, I]) Poly[F, I] {
	if m.IsNull() {
		return Poly[F, I]{}
	}
	return Poly[F, I]{terms: []Monomial[F, I]{m}}
}

// FromTerms builds a polynomial from terms in any order, possibly with
// repeated degrees and zero coefficients.
func FromTerms[F Scalar[F], I Degree](terms ...Monomial[F, I]) Poly[F, I] {
	p := Poly[F, I]{terms: slices.Clone(terms)}
	p.normalizeOwned()
	return p
}

// Clone returns a deep copy of p.
func (p Poly[F, I]) Clone() Poly[F, I] { return Poly[F, I]{terms: slices.Clone(p.terms)} }

// ─── Queries ────────────────────────────────────────────────────────────────

// IsNull reports whether p is the zero polynomial.
func (p Poly[F, I]) IsNull() bool { return len(p.terms) == 0 }

// IsZero is IsNull under the coefficient interface's name.
func (p Poly[F, I]) IsZero() bool { return p.IsNull() }

// IsUnit reports whether p is the constant 1.
func (p Poly[F, I]) IsUnit() bool { return len(p.terms) == 1 && p.terms[0].IsUnit() }

// IsOne is IsUnit under the coefficient interface's name.
func (p Poly[F, I]) IsOne() bool { return p.IsUnit() }

// IsOppositeUnit reports whether p is the constant -1.
func (p Poly[F, I]) IsOppositeUnit() bool {
	return len(p.terms) == 1 && p.terms[0].IsOppositeUnit()
}

// IsConst reports whether p has no term of non-zero degree.
func (p Poly[F, I]) IsConst() bool {
	return len(p.terms) == 0 || (len(p.terms) == 1 && p.terms[0].IsConst())
}

// Degree returns the highest degree, or -1 for the zero polynomial.
func (p Poly[F, I]) Degree() I {
	if len(p.terms) == 0 {
		return -1
	}
	return p.terms[len(p.terms)-1].Deg
}

// Leading returns the highest-degree term. It panics on the zero polynomial.
func (p Poly[F, I]) Leading() Monomial[F, I] {
	if len(p.terms) == 0 {
		precondition("Poly.Leading", "zero polynomial has no leading monomial")
	}
	return p.terms[len(p.terms)-1]
}

// LeadingCoef returns the coefficient of the leading term. It panics on the
// zero polynomial.
func (p Poly[F, I]) LeadingCoef() F { return p.Leading().Coef }

// Size returns the number of stored terms.
func (p Poly[F, I]) Size() int { return len(p.terms) }

// Monomials returns a copy of the terms in ascending degree.
func (p Poly[F, I]) Monomials() []Monomial[F, I] { return slices.Clone(p.terms) }

// All iterates over (degree, coefficient) pairs in ascending degree.
func (p Poly[F, I]) All() iter.Seq2[I, F] {
	return func(yield func(I, F) bool) {
		for _, m := range p.terms {
			if !yield(m.Deg, m.Coef) {
				return
			}
		}
	}
}

// search finds the position of the first term whose degree is not less
// than d.
func (p Poly[F, I]) search(d I) (int, bool) {
	return slices.BinarySearchFunc(p.terms, d, func(m Monomial[F, I], d I) int {
		return cmp.Compare(m.Deg, d)
	})
}

// Coef returns the coefficient of x^d, zero when absent.
func (p Poly[F, I]) Coef(d I) F {
	if i, ok := p.search(d); ok {
		return p.terms[i].Coef
	}
	var zero F
	return zero
}

// IsNormal reports whether the terms are strictly ascending in degree and
// all coefficients are non-zero.
func (p Poly[F, I]) IsNormal() bool {
	for i, m := range p.terms {
		if m.IsNull() || (i > 0 && p.terms[i-1].Deg >= m.Deg) {
			return false
		}
	}
	return true
}

// ─── Normal form ────────────────────────────────────────────────────────────

// Normalize restores normal form: it drops zero terms, sorts by degree and
// merges terms of equal degree. It is idempotent.
func (p *Poly[F, I]) Normalize() {
	if p.IsNormal() {
		return
	}
	p.terms = slices.Clone(p.terms)
	p.normalizeOwned()
}

// normalizeOwned normalizes in place; p must own its storage.
func (p *Poly[F, I]) normalizeOwned() {
	terms := slices.DeleteFunc(p.terms, Monomial[F, I].IsNull)
	slices.SortStableFunc(terms, func(a, b Monomial[F, I]) int { return cmp.Compare(a.Deg, b.Deg) })
	out := terms[:0]
	for i := 0; i < len(terms); {
		sum := terms[i]
		j := i + 1
		for ; j < len(terms) && terms[j].Deg == sum.Deg; j++ {
			sum = sum.AddMonomial(terms[j])
		}
		if !sum.IsNull() {
			out = append(out, sum)
		}
		i = j
	}
	clear(terms[len(out):])
	if len(out) == 0 {
		out = nil
	}
	p.terms = out
}
