package poly

import (
	"bytes"
	"errors"
	"io"
	"testing"

	"github.com/agbru/algebra/internal/bigint"
	"github.com/agbru/algebra/internal/field"
)

func TestBinaryRoundTrip(t *testing.T) {
	t.Parallel()
	for _, s := range []string{"", "1", "x^3-2*x+5", "-98765432109876543210*x^100+x^-7"} {
		p := ip(s)
		data, err := p.MarshalBinary()
		if err != nil {
			t.Fatal(err)
		}
		var q intPoly
		if err := q.UnmarshalBinary(data); err != nil {
			t.Fatalf("%q: %v", s, err)
		}
		if !q.Equal(p) {
			t.Errorf("%q decoded as %v", s, q)
		}
		assertNormal(t, q)
	}
}

func TestBinaryStreamIsSelfDelimiting(t *testing.T) {
	t.Parallel()
	a, b := rp("1/3*x^2-1"), rp("x+7/2")
	var buf bytes.Buffer
	if err := a.WriteBinary(&buf); err != nil {
		t.Fatal(err)
	}
	if err := b.WriteBinary(&buf); err != nil {
		t.Fatal(err)
	}
	var ga, gb ratPoly
	// a plain io.Reader exercises the unbuffered byte path
	r := io.MultiReader(&buf)
	if err := ga.ReadBinary(r); err != nil {
		t.Fatal(err)
	}
	if err := gb.ReadBinary(r); err != nil {
		t.Fatal(err)
	}
	if !ga.Equal(a) || !gb.Equal(b) {
		t.Errorf("decoded %v and %v", ga, gb)
	}
}

func TestBinaryNestedAndField(t *testing.T) {
	t.Parallel()
	nested := FromTerms(Term(ip("x+1"), 3), Term(ip("-2"), 0))
	data, err := nested.MarshalBinary()
	if err != nil {
		t.Fatal(err)
	}
	var got Poly[intPoly, int]
	if err := got.UnmarshalBinary(data); err != nil {
		t.Fatal(err)
	}
	if !got.Equal(nested) {
		t.Errorf("nested decoded as %s", got.FormatVar("y"))
	}

	fp := FromTerms(Term(field.New(-1), int64(2)), Term(field.New(5), int64(0)))
	data, err = fp.MarshalBinary()
	if err != nil {
		t.Fatal(err)
	}
	var fq Poly[field.Element, int64]
	if err := fq.UnmarshalBinary(data); err != nil || !fq.Equal(fp) {
		t.Errorf("field polynomial decoded as %v, %v", fq, err)
	}
}

func TestBinaryFailureLeavesDestinationUnchanged(t *testing.T) {
	t.Parallel()
	data, err := ip("7*x^9-3*x^4+x").MarshalBinary()
	if err != nil {
		t.Fatal(err)
	}
	for cut := 0; cut < len(data); cut++ {
		dst := ip("x^2+1")
		err := dst.ReadBinary(bytes.NewReader(data[:cut]))
		if err == nil {
			t.Fatalf("prefix of %d bytes decoded without error", cut)
		}
		if cut > 0 && !errors.Is(err, io.ErrUnexpectedEOF) {
			t.Errorf("prefix of %d bytes: %v", cut, err)
		}
		assertPoly(t, dst, "x^2+1")
	}

	dst := ip("x")
	if err := dst.UnmarshalBinary(append(data, 0)); err == nil {
		t.Error("trailing byte accepted")
	}
	assertPoly(t, dst, "x")
}

func TestBinaryNormalizesInput(t *testing.T) {
	t.Parallel()
	// two terms of degree 1 and a zero term, out of order
	raw := Poly[bigint.Int, int]{terms: []Monomial[bigint.Int, int]{im(2, 1), im(0, 5), im(3, 1), im(1, 0)}}
	data, err := raw.MarshalBinary()
	if err != nil {
		t.Fatal(err)
	}
	var p intPoly
	if err := p.UnmarshalBinary(data); err != nil {
		t.Fatal(err)
	}
	assertPoly(t, p, "5*x+1")
}

func TestBinaryRequiresEncodableCoefficients(t *testing.T) {
	t.Parallel()
	p := FromTerms(Term[int64Scalar](3, 1))
	if _, err := p.MarshalBinary(); !errors.Is(err, ErrNotBinary) {
		t.Errorf("MarshalBinary: %v", err)
	}
	if err := (&p).UnmarshalBinary([]byte{1, 1, 0, 0}); !errors.Is(err, ErrNotBinary) {
		t.Errorf("UnmarshalBinary: %v", err)
	}
}
