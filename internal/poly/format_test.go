package poly

import (
	"errors"
	"strings"
	"testing"

	"github.com/agbru/algebra/internal/bigint"
	apperrors "github.com/agbru/algebra/internal/errors"
	"github.com/agbru/algebra/internal/rational"
)

func TestString(t *testing.T) {
	t.Parallel()
	tests := []struct {
		terms []Monomial[bigint.Int, int]
		want  string
	}{
		{nil, "0"},
		{[]Monomial[bigint.Int, int]{im(1, 0)}, "1"},
		{[]Monomial[bigint.Int, int]{im(-1, 0)}, "-1"},
		{[]Monomial[bigint.Int, int]{im(1, 1)}, "x"},
		{[]Monomial[bigint.Int, int]{im(-1, 2), im(1, 0)}, "-x^2+1"},
		{[]Monomial[bigint.Int, int]{im(2, 2), im(5, 1), im(-7, 0)}, "2*x^2+5*x-7"},
		{[]Monomial[bigint.Int, int]{im(3, 1), im(-1, -1)}, "3*x-x^-1"},
	}
	for _, tc := range tests {
		if got := FromTerms(tc.terms...).String(); got != tc.want {
			t.Errorf("String = %q, want %q", got, tc.want)
		}
	}
	if got := ip("x^2-x").FormatVar("t"); got != "t^2-t" {
		t.Errorf("FormatVar = %q", got)
	}
}

func TestParseNotations(t *testing.T) {
	t.Parallel()
	tests := []struct {
		in, want string
	}{
		{"(2*x^2+5*x-7)", "2*x^2+5*x-7"},
		{"(3)*x^2 - (4)", "3*x^2-4"},
		{"x^-1 + x^+2", "x^2+x^-1"},
		{"x^(3)", "x^3"},
		{" - x ", "-x"},
		{"((-7,0),(5,1),(2,2))", "2*x^2+5*x-7"},
		{"((1,1),(1,1),(-2,1))", "0"},
		{"()", "0"},
		{"((3, -2))", "3*x^-2"},
	}
	for _, tc := range tests {
		p, err := Parse[bigint.Int, int](tc.in, bigint.Parse)
		if err != nil {
			t.Errorf("Parse(%q): %v", tc.in, err)
			continue
		}
		assertPoly(t, p, tc.want)
	}
}

func TestParseErrorsCarryInput(t *testing.T) {
	t.Parallel()
	for _, in := range []string{"2*", "x^", "2x", "x^y", "((1,a))", "x^99999999999999999999", "3/4*x", "(x+1"} {
		_, err := Parse[bigint.Int, int](in, bigint.Parse)
		var pe apperrors.ParseError
		if !errors.As(err, &pe) {
			t.Errorf("Parse(%q): got %v, want ParseError", in, err)
			continue
		}
		if pe.Input != in || pe.Type != "polynomial" {
			t.Errorf("Parse(%q): error carries %q (%s)", in, pe.Input, pe.Type)
		}
	}
	if _, err := Parse[bigint.Int, int8]("x^200", bigint.Parse); err == nil {
		t.Error("exponent overflowing int8 should fail")
	}
}

func TestStringRoundTrip(t *testing.T) {
	t.Parallel()
	for _, s := range []string{"0", "1", "-x", "x^5-3*x^2+x-11", "-123456789012345678901234567890*x^40+x^-3"} {
		p := ip(s)
		q := ip(p.String())
		if !p.Equal(q) {
			t.Errorf("round trip of %q gave %q", s, q)
		}
	}
	for _, s := range []string{"1/2*x^2-3/4", "-5/3*x+7"} {
		p := rp(s)
		if q := rp(p.String()); !p.Equal(q) {
			t.Errorf("round trip of %q gave %q", s, q)
		}
	}
}

func TestNestedFormatAndParse(t *testing.T) {
	t.Parallel()
	inner := func(variable string) func(string) (intPoly, error) {
		return func(s string) (intPoly, error) { return ParseVar[bigint.Int, int](s, variable, bigint.Parse) }
	}
	y := func(s string) intPoly { return MustParse[bigint.Int, int](strings.ReplaceAll(s, "y", "x"), bigint.Parse) }
	p := FromTerms(Term(y("y+1"), 2), Term(y("-y"), 1), Term(y("3"), 0))

	s := p.String()
	if s != "(y+1)*x^2+(-y)*x+(3)" {
		t.Errorf("nested rendering = %q", s)
	}
	q, err := ParseVar[intPoly, int](s, "x", inner("y"))
	if err != nil {
		t.Fatal(err)
	}
	if !q.Equal(p) {
		t.Errorf("nested round trip gave %s", q)
	}

	s = p.FormatVar("y")
	if s != "(z+1)*y^2+(-z)*y+(3)" {
		t.Errorf("nested rendering in y = %q", s)
	}
	if q, err = ParseVar[intPoly, int](s, "y", inner("z")); err != nil || !q.Equal(p) {
		t.Errorf("round trip in y gave %s, %v", q, err)
	}

	var sb strings.Builder
	if err := ip("x-1").WritePow(&sb); err != nil || sb.String() != "(y-1)" {
		t.Errorf("WritePow wrote %q, %v", sb.String(), err)
	}
}

func TestNestedThreeLevels(t *testing.T) {
	t.Parallel()
	type mid = Poly[intPoly, int]
	p := FromTerms(Term(FromTerms(Term(ip("x-2"), 1)), 3))
	s := p.String()
	if s != "((z-2)*y)*x^3" {
		t.Errorf("three-level rendering = %q", s)
	}
	parseZ := func(s string) (intPoly, error) { return ParseVar[bigint.Int, int](s, "z", bigint.Parse) }
	parseY := func(s string) (mid, error) { return ParseVar[intPoly, int](s, "y", parseZ) }
	q, err := ParseVar[mid, int](s, "x", parseY)
	if err != nil {
		t.Fatal(err)
	}
	if !q.Equal(p) {
		t.Errorf("three-level round trip gave %s", q)
	}
}

func TestNestedVar(t *testing.T) {
	t.Parallel()
	for outer, want := range map[string]string{"x": "y", "y": "z", "z": "t", "v": "w", "w": "w'", "s": "s'"} {
		if got := NestedVar(outer); got != want {
			t.Errorf("NestedVar(%q) = %q, want %q", outer, got, want)
		}
	}
}

func TestParseOverRationals(t *testing.T) {
	t.Parallel()
	p, err := Parse[rational.Rat, int]("1/2*x - (3/4) + 1/4", rational.Parse)
	if err != nil {
		t.Fatal(err)
	}
	assertPoly(t, p, "1/2*x-1/2")
}

func FuzzParse(f *testing.F) {
	for _, seed := range []string{"2*x^2+5*x-7+3*x", "", "((1,2),(3,4))", "x^-1", "(x"} {
		f.Add(seed)
	}
	f.Fuzz(func(t *testing.T, s string) {
		p, err := Parse[bigint.Int, int](s, bigint.Parse)
		if err != nil {
			var pe apperrors.ParseError
			if !errors.As(err, &pe) {
				t.Fatalf("non-parse error %v", err)
			}
			return
		}
		if !p.IsNormal() {
			t.Fatalf("%q parsed to a non-normal polynomial", s)
		}
		q, err := Parse[bigint.Int, int](p.String(), bigint.Parse)
		if err != nil || !q.Equal(p) {
			t.Fatalf("re-parsing %q (from %q) gave %v, %v", p.String(), s, q, err)
		}
	})
}
