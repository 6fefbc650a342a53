package poly

// Diff returns the formal derivative: c*x^d becomes (d*c)*x^(d-1), and
// the constant term vanishes.
func (p Poly[F, I]) Diff() Poly[F, I] {
	out := make([]Monomial[F, I], 0, len(p.terms))
	for _, m := range p.terms {
		if m.Deg == 0 {
			continue
		}
		if c := m.Coef.MulInt64(int64(m.Deg)); !c.IsZero() {
			out = append(out, Monomial[F, I]{c, m.Deg - 1})
		}
	}
	if len(out) == 0 {
		return Poly[F, I]{}
	}
	return Poly[F, I]{terms: out}
}

// Factory supplies the additive and multiplicative identities of a value
// type, for evaluation targets whose identities cannot be taken from their
// zero value.
type Factory[T any] interface {
	Zero() T
	Unit() T
}

type scalarFactory[T Scalar[T]] struct{}

func (scalarFactory[T]) Zero() T {
	var zero T
	return zero
}

func (scalarFactory[T]) Unit() T { return one[T]() }

// DefaultFactory returns the factory deriving identities from the zero
// value of T.
func DefaultFactory[T Scalar[T]]() Factory[T] { return scalarFactory[T]{} }

// Subs evaluates p at x, lifting each coefficient into T.
func Subs[F Scalar[F], I Degree, T Scalar[T]](p Poly[F, I], x T, lift func(F) T) (T, error) {
	return SubsWith(p, x, lift, DefaultFactory[T]())
}

// SubsWith evaluates Σ lift(c)·x^d over the terms of p. It walks the terms in
// ascending degree keeping a running power of x, raised only by the gap to
// the next degree. Negative degrees need x to be invertible in T: a zero x
// reports ErrDivisionByZero and a non-unit x reports ErrInexactDivision.
func SubsWith[F Scalar[F], I Degree, T Scalar[T]](p Poly[F, I], x T, lift func(F) T, f Factory[T]) (T, error) {
	sum := f.Zero()
	if p.IsNull() {
		return sum, nil
	}
	power, at := f.Unit(), int64(0)
	if first := int64(p.terms[0].Deg); first < 0 {
		inv, rem, err := f.Unit().QuoRem(x)
		if err != nil {
			return sum, err
		}
		if !rem.IsZero() || !inv.Mul(x).IsOne() {
			return sum, ErrInexactDivision
		}
		power, at = powScalar(inv, uint64(-first), f), first
	}
	for _, m := range p.terms {
		// the gap between two degrees of a narrow I may exceed I's range
		if d := int64(m.Deg); d > at {
			power = power.Mul(powScalar(x, uint64(d-at), f))
			at = d
		}
		sum = sum.Add(lift(m.Coef).Mul(power))
	}
	return sum, nil
}

func powScalar[T Scalar[T]](x T, n uint64, f Factory[T]) T {
	result := f.Unit()
	for n > 0 {
		if n&1 == 1 {
			result = result.Mul(x)
		}
		n >>= 1
		if n > 0 {
			x = x.Mul(x)
		}
	}
	return result
}

// Eval evaluates p at a point of its own coefficient type.
func (p Poly[F, I]) Eval(x F) (F, error) {
	return Subs(p, x, func(c F) F { return c })
}

// ─── Ordering and content ───────────────────────────────────────────────────

// Cmp compares p and q term by term from the highest degree down, using
// Monomial.Cmp. When one polynomial runs out of terms, the next term of the
// other decides by the sign of its coefficient.
func (p Poly[F, I]) Cmp(q Poly[F, I]) int {
	i, j := len(p.terms)-1, len(q.terms)-1
	for ; i >= 0 && j >= 0; i, j = i-1, j-1 {
		if c := p.terms[i].Cmp(q.terms[j]); c != 0 {
			return c
		}
	}
	var zero F
	switch {
	case i >= 0:
		return p.terms[i].Coef.Cmp(zero)
	case j >= 0:
		return -q.terms[j].Coef.Cmp(zero)
	}
	return 0
}

// Equal reports whether p and q have the same terms.
func (p Poly[F, I]) Equal(q Poly[F, I]) bool {
	if len(p.terms) != len(q.terms) {
		return false
	}
	for i := range p.terms {
		if p.terms[i].Cmp(q.terms[i]) != 0 {
			return false
		}
	}
	return true
}

// Abs returns -p when the leading coefficient is negative and p otherwise.
func (p Poly[F, I]) Abs() Poly[F, I] {
	var zero F
	if !p.IsNull() && p.LeadingCoef().Cmp(zero) < 0 {
		return p.Neg()
	}
	return p
}

// Content returns the gcd of all coefficients under the coefficient gcd
// function, signed like the leading coefficient. The content of the zero
// polynomial is zero.
func Content[F Scalar[F], I Degree](p Poly[F, I], gcd func(a, b F) F) F {
	var c F
	for _, m := range p.terms {
		c = gcd(c, m.Coef)
		if c.IsOne() {
			break
		}
	}
	var zero F
	if !p.IsNull() && p.LeadingCoef().Cmp(zero) < 0 {
		c = c.Neg()
	}
	return c
}

// Primitive divides p by its content, giving a polynomial whose
// coefficients have no common factor and whose leading coefficient is
// positive.
func Primitive[F Scalar[F], I Degree](p Poly[F, I], gcd func(a, b F) F) (Poly[F, I], error) {
	if p.IsNull() {
		return p, nil
	}
	err := p.QuoScalarAssign(Content(p, gcd))
	return p, err
}

// IsPrimitive reports whether the content of p is a unit.
func IsPrimitive[F Scalar[F], I Degree](p Poly[F, I], gcd func(a, b F) F) bool {
	c := Content(p, gcd)
	return c.IsOne() || isOppositeUnit(c)
}
