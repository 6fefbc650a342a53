package poly

import (
	"testing"

	"github.com/agbru/algebra/internal/bigint"
)

func TestParseNormalizesLikeTerms(t *testing.T) {
	t.Parallel()
	p := ip("2*x^2+5*x-7+3*x")
	assertPoly(t, p, "2*x^2+8*x-7")
	if p.Size() != 3 || p.Degree() != 2 {
		t.Errorf("size %d degree %d, want 3 and 2", p.Size(), p.Degree())
	}
	if !p.Equal(ip("8*x + 2*x^2 - 7")) {
		t.Error("construction order changed the result")
	}
}

func TestEmptyStringIsNull(t *testing.T) {
	t.Parallel()
	p := ip("")
	if !p.IsNull() || p.Size() != 0 || p.Degree() != -1 {
		t.Errorf("empty string gave %v (size %d, degree %d)", p, p.Size(), p.Degree())
	}
	if p.String() != "0" {
		t.Errorf("zero renders as %q", p.String())
	}
}

func TestFromTermsNormalizes(t *testing.T) {
	t.Parallel()
	p := FromTerms(im(3, 2), im(0, 5), im(1, 0), im(-3, 2), im(4, 1), im(2, 0))
	assertPoly(t, p, "4*x+3")

	q := FromTerms(im(1, 1), im(-1, 1))
	if !q.IsNull() || q.terms != nil {
		t.Errorf("cancelling terms gave %#v", q.terms)
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	t.Parallel()
	p := Poly[bigint.Int, int]{terms: []Monomial[bigint.Int, int]{im(1, 3), im(2, 1), im(0, 2), im(5, 1)}}
	p.Normalize()
	assertPoly(t, p, "x^3+7*x")
	before := p.terms
	p.Normalize()
	if &before[0] != &p.terms[0] {
		t.Error("normalizing a normal polynomial reallocated it")
	}
}

func TestQueries(t *testing.T) {
	t.Parallel()
	tests := []struct {
		in                         string
		null, unit, opposite, cons bool
		degree                     int
	}{
		{"", true, false, false, true, -1},
		{"1", false, true, false, true, 0},
		{"-1", false, false, true, true, 0},
		{"5", false, false, false, true, 0},
		{"x", false, false, false, false, 1},
		{"x^-2+1", false, false, false, false, 0},
	}
	for _, tc := range tests {
		p := ip(tc.in)
		if p.IsNull() != tc.null || p.IsUnit() != tc.unit || p.IsOppositeUnit() != tc.opposite ||
			p.IsConst() != tc.cons || p.Degree() != tc.degree {
			t.Errorf("%q: null=%v unit=%v opposite=%v const=%v degree=%d", tc.in,
				p.IsNull(), p.IsUnit(), p.IsOppositeUnit(), p.IsConst(), p.Degree())
		}
	}
}

func TestLeadingAndCoef(t *testing.T) {
	t.Parallel()
	p := ip("3*x^4-x+9")
	if m := p.Leading(); m.Deg != 4 || !m.Coef.Equal(bi(3)) {
		t.Errorf("Leading = %v", m)
	}
	if c := p.Coef(1); !c.Equal(bi(-1)) {
		t.Errorf("Coef(1) = %v", c)
	}
	if c := p.Coef(2); !c.IsZero() {
		t.Errorf("Coef(2) = %v", c)
	}
	var degrees []int
	for d := range p.All() {
		degrees = append(degrees, d)
	}
	if len(degrees) != 3 || degrees[0] != 0 || degrees[2] != 4 {
		t.Errorf("All visited degrees %v", degrees)
	}
	expectPrecondition(t, "Leading", func() { Zero[bigint.Int, int]().Leading() })
	expectPrecondition(t, "LeadingCoef", func() { Zero[bigint.Int, int]().LeadingCoef() })
}

func TestCopiesAreIndependent(t *testing.T) {
	t.Parallel()
	p := ip("x^2+2*x+1")
	q := p
	q.AddMonomialAssign(im(5, 1))
	q.MulScalarAssign(bi(3))
	q.AddScalarAssign(bi(-3))
	assertPoly(t, p, "x^2+2*x+1")
	assertPoly(t, q, "3*x^2+21*x")

	ms := p.Monomials()
	ms[0] = im(100, 0)
	assertPoly(t, p, "x^2+2*x+1")
}

func TestScalarAssign(t *testing.T) {
	t.Parallel()
	p := ip("x^2+4")
	p.SubScalarAssign(bi(4))
	assertPoly(t, p, "x^2")
	p.AddScalarAssign(bi(2))
	assertPoly(t, p, "x^2+2")

	laurent := ip("x^-1+x")
	laurent.AddScalarAssign(bi(7))
	assertPoly(t, laurent, "x+7+x^-1")

	p = ip("6*x^2+3*x+4")
	if err := p.RemScalarAssign(bi(3)); err != nil {
		t.Fatal(err)
	}
	assertPoly(t, p, "1")

	p = ip("6*x^2+3*x+4")
	if err := p.QuoScalarAssign(bi(3)); err != nil {
		t.Fatal(err)
	}
	assertPoly(t, p, "2*x^2+x+1")

	p.MulScalarAssign(bi(0))
	if !p.IsNull() {
		t.Errorf("multiplying by zero gave %v", p)
	}

	keep := ip("x+1")
	if err := keep.QuoScalarAssign(bi(0)); err == nil {
		t.Error("QuoScalarAssign by zero should fail")
	}
	assertPoly(t, keep, "x+1")
}

func TestMonomialAssign(t *testing.T) {
	t.Parallel()
	p := ip("x^3+x")
	p.AddMonomialAssign(im(2, 2))
	assertPoly(t, p, "x^3+2*x^2+x")
	p.SubMonomialAssign(im(1, 3))
	assertPoly(t, p, "2*x^2+x")
	p.AddMonomialAssign(im(0, 7))
	assertPoly(t, p, "2*x^2+x")

	p.MulMonomialAssign(im(1, 0))
	assertPoly(t, p, "2*x^2+x")
	p.MulMonomialAssign(im(-3, 2))
	assertPoly(t, p, "-6*x^4-3*x^3")

	// multiplying by one of its own terms
	p.MulMonomialAssign(p.Leading())
	assertPoly(t, p, "36*x^8+18*x^7")

	p.MulMonomialAssign(im(0, 1))
	if !p.IsNull() {
		t.Errorf("multiplying by a zero monomial gave %v", p)
	}
}

func TestAddSubSelfAlias(t *testing.T) {
	t.Parallel()
	p := ip("x^2-3*x+1")
	p.AddAssign(p)
	assertPoly(t, p, "2*x^2-6*x+2")
	p.SubAssign(p)
	if !p.IsNull() {
		t.Errorf("p - p = %v", p)
	}
}

func TestPolynomialArithmetic(t *testing.T) {
	t.Parallel()
	tests := []struct {
		a, b, sum, diff, prod string
	}{
		{"x^2+1", "x-1", "x^2+x", "x^2-x+2", "x^3-x^2+x-1"},
		{"x^3", "-x^3+x", "x", "2*x^3-x", "-x^6+x^4"},
		{"", "5*x", "5*x", "-5*x", "0"},
		{"x^-1", "x", "x+x^-1", "-x+x^-1", "1"},
	}
	for _, tc := range tests {
		a, b := ip(tc.a), ip(tc.b)
		assertPoly(t, a.Add(b), tc.sum)
		assertPoly(t, a.Sub(b), tc.diff)
		assertPoly(t, a.Mul(b), tc.prod)

		c := a
		c.AddAssign(b)
		c.SubAssign(b)
		c.MulAssign(b)
		if !c.Equal(a.Mul(b)) {
			t.Errorf("compound forms disagree for %s and %s", tc.a, tc.b)
		}
		assertPoly(t, a, a.String())
	}
}

func TestNegAndMulInt64(t *testing.T) {
	t.Parallel()
	p := ip("2*x-3")
	assertPoly(t, p.Neg(), "-2*x+3")
	assertPoly(t, p.MulInt64(-2), "-4*x+6")
	if !p.MulInt64(0).IsNull() {
		t.Error("MulInt64(0) should be zero")
	}
}

func TestPow(t *testing.T) {
	t.Parallel()
	assertPoly(t, ip("x+1").Pow(3), "x^3+3*x^2+3*x+1")
	assertPoly(t, ip("x-1").Pow(0), "1")
	assertPoly(t, ip("2*x^5").Pow(2), "4*x^10")
}

func TestPolynomialAsCoefficient(t *testing.T) {
	t.Parallel()
	type nested = Poly[intPoly, int]
	a := FromTerms(Term(ip("x+1"), 1), Term(ip("2"), 0))
	b := FromTerms(Term(ip("x-1"), 1))
	var prod nested = a.Mul(b)
	want := FromTerms(Term(ip("x^2-1"), 2), Term(ip("2*x-2"), 1))
	if !prod.Equal(want) {
		t.Errorf("nested product = %s, want %s", prod.FormatVar("y"), want.FormatVar("y"))
	}
	if !a.One().IsUnit() {
		t.Error("nested One is not the unit")
	}
}
