// Package field provides Element, a prime-field coefficient over the bn254
// scalar field. Every non-zero element is invertible, so polynomials over
// Element have exact long division and monic greatest common divisors.
package field

import (
	"fmt"
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"

	"github.com/agbru/algebra/internal/bigint"
	apperrors "github.com/agbru/algebra/internal/errors"
)

// Element wraps fr.Element as a value type. The zero value is 0.
type Element struct {
	fr.Element
}

// New returns the element congruent to v.
func New(v int64) Element {
	var e fr.Element
	e.SetInt64(v)
	return Element{e}
}

// FromInt returns x reduced modulo the field order.
func FromInt(x bigint.Int) Element {
	var e fr.Element
	e.SetBigInt(x.Big())
	return Element{e}
}

// Parse reads a decimal (or 0x-prefixed) integer, possibly negative, and
// reduces it into the field.
func Parse(s string) (Element, error) {
	var e fr.Element
	if _, err := e.SetString(s); err != nil {
		return Element{}, apperrors.NewParseError("field element", s, err)
	}
	return Element{e}, nil
}

// Modulus returns the field order.
func Modulus() *big.Int { return fr.Modulus() }

// Add x + y
func (x Element) Add(y Element) Element {
	var res fr.Element
	//
	res.Add(&x.Element, &y.Element)
	//
	return Element{res}
}

// Sub x - y
func (x Element) Sub(y Element) Element {
	var res fr.Element
	//
	res.Sub(&x.Element, &y.Element)
	//
	return Element{res}
}

// Mul x * y
func (x Element) Mul(y Element) Element {
	var res fr.Element
	//
	res.Mul(&x.Element, &y.Element)
	//
	return Element{res}
}

// MulInt64 n * x
func (x Element) MulInt64(n int64) Element { return x.Mul(New(n)) }

// Neg -x
func (x Element) Neg() Element {
	var res fr.Element
	//
	res.Neg(&x.Element)
	//
	return Element{res}
}

// Inverse x⁻¹, or 0 if x = 0.
func (x Element) Inverse() Element {
	var res fr.Element
	//
	res.Inverse(&x.Element)
	//
	return Element{res}
}

// QuoRem divides exactly by multiplying with y⁻¹; the remainder is always 0.
func (x Element) QuoRem(y Element) (Element, Element, error) {
	if y.IsZero() {
		return Element{}, Element{}, apperrors.WrapError(apperrors.ErrDivisionByZero, "field.QuoRem")
	}
	return x.Mul(y.Inverse()), Element{}, nil
}

// IsZero implementation for the coefficient interface
func (x Element) IsZero() bool { return x.Element.IsZero() }

// IsOne implementation for the coefficient interface
func (x Element) IsOne() bool { return x.Element.IsOne() }

// One returns the multiplicative identity.
func (Element) One() Element { return Element{fr.One()} }

// Cmp returns 1 if x > y, 0 if x = y, and -1 if x < y, comparing canonical
// representatives in [0, p).
func (x Element) Cmp(y Element) int { return x.Element.Cmp(&y.Element) }

// Equal reports whether x and y are the same element.
func (x Element) Equal(y Element) bool { return x.Element.Equal(&y.Element) }

func (x Element) String() string { return x.Element.String() }

// Int returns the canonical representative of x in [0, p).
func (x Element) Int() bigint.Int {
	var b big.Int
	x.BigInt(&b)
	return bigint.FromBig(&b)
}

// MarshalBinary returns the fixed-width big-endian canonical encoding.
func (x Element) MarshalBinary() ([]byte, error) {
	b := x.Bytes()
	return b[:], nil
}

// UnmarshalBinary decodes a canonical encoding. x is left unchanged on
// error.
func (x *Element) UnmarshalBinary(data []byte) error {
	if len(data) != fr.Bytes {
		return fmt.Errorf("field: expecting exactly %d bytes, got %d", fr.Bytes, len(data))
	}
	var e fr.Element
	if err := e.SetBytesCanonical(data); err != nil {
		return err
	}
	x.Element = e
	return nil
}
