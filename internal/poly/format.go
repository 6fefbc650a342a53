package poly

import (
	"io"
	"strconv"
	"strings"
)

// FirstWriter is implemented by coefficient types that control how they are
// written as the first (highest-degree) coefficient of a polynomial.
type FirstWriter interface {
	WriteFirst(w io.Writer) error
}

// InternalWriter is implemented by coefficient types that control how they
// are written after the first term, including the joining sign.
type InternalWriter interface {
	WriteInternal(w io.Writer) error
}

// PowWriter is implemented by types that control how they are written as an
// exponent.
type PowWriter interface {
	WritePow(w io.Writer) error
}

// nestedWriter is implemented by coefficients that are themselves
// polynomials. They render in a variable distinct from the outer one.
type nestedWriter interface {
	writeNested(tw *termWriter, outer string, isFirst bool)
}

type termWriter struct {
	strings.Builder
}

func (tw *termWriter) first(c any, s, variable string) {
	if n, ok := c.(nestedWriter); ok {
		n.writeNested(tw, variable, true)
		return
	}
	if h, ok := c.(FirstWriter); ok {
		_ = h.WriteFirst(tw)
		return
	}
	tw.WriteString(s)
}

func (tw *termWriter) internal(c any, s, variable string) {
	if n, ok := c.(nestedWriter); ok {
		n.writeNested(tw, variable, false)
		return
	}
	if h, ok := c.(InternalWriter); ok {
		_ = h.WriteInternal(tw)
		return
	}
	if !strings.HasPrefix(s, "-") {
		tw.WriteByte('+')
	}
	tw.WriteString(s)
}

// nestedVars is the order in which coefficient polynomials pick their
// variable: a polynomial in x has coefficients in y, those have theirs in z.
var nestedVars = []string{"x", "y", "z", "t", "u", "v", "w"}

// NestedVar returns the variable used for the coefficients of a polynomial
// written in outer. Names past the end of the sequence get a prime.
func NestedVar(outer string) string {
	for i, v := range nestedVars[:len(nestedVars)-1] {
		if v == outer {
			return nestedVars[i+1]
		}
	}
	return outer + "'"
}

// term writes one monomial. Unit coefficients of non-constant terms are
// elided and a leading '+' is never written.
func term[F Scalar[F], I Degree](tw *termWriter, m Monomial[F, I], isFirst bool, variable string) {
	switch {
	case m.Deg == 0:
		if isFirst {
			tw.first(m.Coef, m.Coef.String(), variable)
		} else {
			tw.internal(m.Coef, m.Coef.String(), variable)
		}
		return
	case m.Coef.IsOne():
		if !isFirst {
			tw.WriteByte('+')
		}
	case isOppositeUnit(m.Coef):
		tw.WriteByte('-')
	default:
		if isFirst {
			tw.first(m.Coef, m.Coef.String(), variable)
		} else {
			tw.internal(m.Coef, m.Coef.String(), variable)
		}
		tw.WriteByte('*')
	}
	tw.WriteString(variable)
	if m.Deg != 1 {
		tw.WriteByte('^')
		tw.WriteString(strconv.FormatInt(int64(m.Deg), 10))
	}
}

func (m Monomial[F, I]) writeTo(tw *termWriter, isFirst bool, variable string) {
	if m.IsNull() {
		tw.WriteByte('0')
		return
	}
	term(tw, m, isFirst, variable)
}

// String renders p with variable x, highest degree first.
func (p Poly[F, I]) String() string { return p.FormatVar("x") }

// FormatVar renders p with the given variable name, highest degree first,
// for example "2*x^2+8*x-7". The zero polynomial renders as "0".
func (p Poly[F, I]) FormatVar(variable string) string {
	if p.IsNull() {
		return "0"
	}
	var tw termWriter
	for i := len(p.terms) - 1; i >= 0; i-- {
		term(&tw, p.terms[i], i == len(p.terms)-1, variable)
	}
	return tw.String()
}

func (p Poly[F, I]) writeNested(tw *termWriter, outer string, isFirst bool) {
	if !isFirst {
		tw.WriteByte('+')
	}
	tw.WriteByte('(')
	tw.WriteString(p.FormatVar(NestedVar(outer)))
	tw.WriteByte(')')
}

// WriteFirst writes p parenthesised in the variable y, for use as the
// leading coefficient of a polynomial in x.
func (p Poly[F, I]) WriteFirst(w io.Writer) error {
	_, err := io.WriteString(w, "("+p.FormatVar(NestedVar("x"))+")")
	return err
}

// WriteInternal writes p like WriteFirst but preceded by '+', for use as a
// non-leading coefficient.
func (p Poly[F, I]) WriteInternal(w io.Writer) error {
	_, err := io.WriteString(w, "+("+p.FormatVar(NestedVar("x"))+")")
	return err
}

// WritePow writes p parenthesised in the variable y, for use as an
// exponent.
func (p Poly[F, I]) WritePow(w io.Writer) error {
	_, err := io.WriteString(w, "("+p.FormatVar(NestedVar("x"))+")")
	return err
}
