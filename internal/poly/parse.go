package poly

import (
	"fmt"
	"strconv"
	"strings"

	apperrors "github.com/agbru/algebra/internal/errors"
	"github.com/agbru/algebra/internal/polyparse"
)

// Parse reads a polynomial in the variable x. See ParseVar.
func Parse[F Scalar[F], I Degree](s string, parseCoef func(string) (F, error)) (Poly[F, I], error) {
	return ParseVar[F, I](s, "x", parseCoef)
}

// ParseVar reads a polynomial written in variable notation, such as
// "2*x^2+5*x-7" or "(3)*x^-1-(y+1)*x", or in list notation
// "((c0,d0),(c1,d1),...)". Terms may appear in any order and repeat a
// degree; the result is normalized. The empty string is the zero
// polynomial. Coefficient text (with enclosing parentheses removed) is
// handed to parseCoef. Any failure is reported as an apperrors.ParseError
// carrying s.
func ParseVar[F Scalar[F], I Degree](s, variable string, parseCoef func(string) (F, error)) (Poly[F, I], error) {
	fail := func(cause error) (Poly[F, I], error) {
		return Poly[F, I]{}, apperrors.NewParseError("polynomial", s, cause)
	}
	if strings.TrimSpace(s) == "" {
		return Poly[F, I]{}, nil
	}
	var terms []Monomial[F, I]
	if polyparse.IsList(s) {
		pairs, err := polyparse.ListTerms(s)
		if err != nil {
			return fail(err)
		}
		for _, pr := range pairs {
			c, err := parseCoef(strings.TrimSpace(pr.Coef))
			if err != nil {
				return fail(err)
			}
			d, err := parseDegree[I](pr.Deg)
			if err != nil {
				return fail(err)
			}
			terms = append(terms, Monomial[F, I]{c, d})
		}
		return FromTerms(terms...), nil
	}
	parsed, err := polyparse.Terms(s, variable)
	if err != nil {
		return fail(err)
	}
	for _, t := range parsed {
		c := one[F]()
		if t.Coef != "" {
			if c, err = parseCoef(t.Coef); err != nil {
				return fail(err)
			}
		}
		if t.Neg {
			c = c.Neg()
		}
		var d I
		switch {
		case t.HasVar && t.Exp == "":
			d = 1
		case t.HasVar:
			if d, err = parseDegree[I](t.Exp); err != nil {
				return fail(err)
			}
		}
		terms = append(terms, Monomial[F, I]{c, d})
	}
	return FromTerms(terms...), nil
}

// parseDegree reads a signed decimal exponent that must fit in I.
func parseDegree[I Degree](s string) (I, error) {
	v, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("exponent %q: %w", s, err)
	}
	if int64(I(v)) != v {
		return 0, fmt.Errorf("exponent %d out of range", v)
	}
	return I(v), nil
}

// MustParse is like Parse but panics on error. It is intended for tests and
// fixed tables.
func MustParse[F Scalar[F], I Degree](s string, parseCoef func(string) (F, error)) Poly[F, I] {
	p, err := Parse[F, I](s, parseCoef)
	if err != nil {
		panic(err)
	}
	return p
}
