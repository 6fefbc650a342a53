package poly

import (
	"slices"
)

// ─── Scalar operands ────────────────────────────────────────────────────────

// AddScalarAssign adds c to the constant term, inserting or removing that
// term as needed.
func (p *Poly[F, I]) AddScalarAssign(c F) {
	p.AddMonomialAssign(Monomial[F, I]{Coef: c})
}

// SubScalarAssign subtracts c from the constant term.
func (p *Poly[F, I]) SubScalarAssign(c F) {
	p.AddMonomialAssign(Monomial[F, I]{Coef: c.Neg()})
}

// mapCoefs replaces every coefficient by f(coef) and renormalizes, since f
// may annihilate coefficients.
func (p *Poly[F, I]) mapCoefs(f func(F) (F, error)) error {
	out := make([]Monomial[F, I], 0, len(p.terms))
	for _, m := range p.terms {
		c, err := f(m.Coef)
		if err != nil {
			return err
		}
		if !c.IsZero() {
			out = append(out, Monomial[F, I]{c, m.Deg})
		}
	}
	if len(out) == 0 {
		out = nil
	}
	p.terms = out
	return nil
}

// MulScalarAssign multiplies every coefficient by c.
func (p *Poly[F, I]) MulScalarAssign(c F) {
	if c.IsZero() {
		p.terms = nil
		return
	}
	_ = p.mapCoefs(func(a F) (F, error) { return a.Mul(c), nil })
}

// QuoScalarAssign replaces every coefficient by its quotient by c. On
// error p is unchanged.
func (p *Poly[F, I]) QuoScalarAssign(c F) error {
	if c.IsZero() {
		return divisionByZero("Poly.QuoScalarAssign")
	}
	return p.mapCoefs(func(a F) (F, error) {
		q, _, err := a.QuoRem(c)
		return q, err
	})
}

// RemScalarAssign replaces every coefficient by its remainder modulo c.
// On error p is unchanged.
func (p *Poly[F, I]) RemScalarAssign(c F) error {
	if c.IsZero() {
		return divisionByZero("Poly.RemScalarAssign")
	}
	return p.mapCoefs(func(a F) (F, error) {
		_, r, err := a.QuoRem(c)
		return r, err
	})
}

// MulInt64 returns n*p.
func (p Poly[F, I]) MulInt64(n int64) Poly[F, I] {
	if n == 0 {
		return Poly[F, I]{}
	}
	q := p
	_ = q.mapCoefs(func(a F) (F, error) { return a.MulInt64(n), nil })
	return q
}

// ─── Monomial operands ──────────────────────────────────────────────────────

// AddMonomialAssign adds m, combining it with an existing term of the same
// degree and erasing that term if the sum is zero.
func (p *Poly[F, I]) AddMonomialAssign(m Monomial[F, I]) {
	if m.IsNull() {
		return
	}
	i, found := p.search(m.Deg)
	if !found {
		p.terms = slices.Insert(slices.Clip(p.terms), i, m)
		return
	}
	sum := p.terms[i].AddMonomial(m)
	if sum.IsNull() {
		p.terms = slices.Delete(slices.Clone(p.terms), i, i+1)
		if len(p.terms) == 0 {
			p.terms = nil
		}
		return
	}
	p.terms = slices.Clone(p.terms)
	p.terms[i] = sum
}

// SubMonomialAssign subtracts m.
func (p *Poly[F, I]) SubMonomialAssign(m Monomial[F, I]) {
	p.AddMonomialAssign(m.Opposite())
}

// MulMonomialAssign multiplies every term by m. A zero m clears p and the
// unit monomial leaves it unchanged.
func (p *Poly[F, I]) MulMonomialAssign(m Monomial[F, I]) {
	switch {
	case m.IsNull():
		p.terms = nil
	case m.IsUnit():
	default:
		out := make([]Monomial[F, I], 0, len(p.terms))
		for _, t := range p.terms {
			if r := t.Mul(m); !r.IsNull() {
				out = append(out, r)
			}
		}
		if len(out) == 0 {
			out = nil
		}
		p.terms = out
	}
}

// ─── Polynomial operands ────────────────────────────────────────────────────

// sameStorage reports whether a and b view the same backing array from the
// same start, which is the case when a polynomial is combined with itself.
func sameStorage[T any](a, b []T) bool {
	return len(a) > 0 && len(a) == len(b) && &a[0] == &b[0]
}

// AddAssign adds q by merging the two ascending term sequences. Adding a
// polynomial to itself doubles it.
func (p *Poly[F, I]) AddAssign(q Poly[F, I]) {
	if sameStorage(p.terms, q.terms) {
		p.terms = p.MulInt64(2).terms
		return
	}
	p.terms = merge(p.terms, q.terms, false)
}

// SubAssign subtracts q. Subtracting a polynomial from itself clears it.
func (p *Poly[F, I]) SubAssign(q Poly[F, I]) {
	if sameStorage(p.terms, q.terms) {
		p.terms = nil
		return
	}
	p.terms = merge(p.terms, q.terms, true)
}

// merge returns a + b (or a - b) as a fresh normal sequence.
func merge[F Scalar[F], I Degree](a, b []Monomial[F, I], negate bool) []Monomial[F, I] {
	out := make([]Monomial[F, I], 0, len(a)+len(b))
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		x, y := a[i], b[j]
		if negate {
			y = y.Opposite()
		}
		switch {
		case x.Deg < y.Deg:
			out = append(out, x)
			i++
		case x.Deg > y.Deg:
			out = append(out, y)
			j++
		default:
			if s := x.AddMonomial(y); !s.IsNull() {
				out = append(out, s)
			}
			i++
			j++
		}
	}
	out = append(out, a[i:]...)
	for _, y := range b[j:] {
		if negate {
			y = y.Opposite()
		}
		out = append(out, y)
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

// MulAssign multiplies by q. Every pairwise product is collected and the
// result normalized, which merges equal degrees in one pass.
func (p *Poly[F, I]) MulAssign(q Poly[F, I]) {
	if p.IsNull() || q.IsNull() {
		p.terms = nil
		return
	}
	if q.IsUnit() {
		return
	}
	out := make([]Monomial[F, I], 0, len(p.terms)*len(q.terms))
	for _, b := range q.terms {
		for _, a := range p.terms {
			out = append(out, a.Mul(b))
		}
	}
	p.terms = out
	p.normalizeOwned()
}

// QuoAssign replaces p by the quotient of p / q. On error p is unchanged.
func (p *Poly[F, I]) QuoAssign(q Poly[F, I]) error {
	quo, _, err := DivMod(*p, q)
	if err != nil {
		return err
	}
	*p = quo
	return nil
}

// RemAssign replaces p by the remainder of p / q. On error p is unchanged.
func (p *Poly[F, I]) RemAssign(q Poly[F, I]) error {
	_, rem, err := DivMod(*p, q)
	if err != nil {
		return err
	}
	*p = rem
	return nil
}

// ─── Value forms ────────────────────────────────────────────────────────────

// Add returns p + q.
func (p Poly[F, I]) Add(q Poly[F, I]) Poly[F, I] {
	return Poly[F, I]{terms: merge(p.terms, q.terms, false)}
}

// Sub returns p - q.
func (p Poly[F, I]) Sub(q Poly[F, I]) Poly[F, I] {
	return Poly[F, I]{terms: merge(p.terms, q.terms, true)}
}

// Mul returns p * q.
func (p Poly[F, I]) Mul(q Poly[F, I]) Poly[F, I] {
	p.MulAssign(q)
	return p
}

// Neg returns -p.
func (p Poly[F, I]) Neg() Poly[F, I] {
	out := make([]Monomial[F, I], len(p.terms))
	for i, m := range p.terms {
		out[i] = m.Opposite()
	}
	if len(out) == 0 {
		out = nil
	}
	return Poly[F, I]{terms: out}
}

// QuoRem is DivMod in method form, which lets Poly serve as a coefficient.
func (p Poly[F, I]) QuoRem(q Poly[F, I]) (Poly[F, I], Poly[F, I], error) {
	return DivMod(p, q)
}

// One returns the constant polynomial 1.
func (Poly[F, I]) One() Poly[F, I] { return FromScalar[F, I](one[F]()) }

// Pow returns p**n by repeated squaring. Pow(0) is 1.
func (p Poly[F, I]) Pow(n uint) Poly[F, I] {
	result := p.One()
	base := p
	for n > 0 {
		if n&1 == 1 {
			result = result.Mul(base)
		}
		n >>= 1
		if n > 0 {
			base = base.Mul(base)
		}
	}
	return result
}
