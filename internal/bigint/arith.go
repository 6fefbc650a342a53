package bigint

import (
	"github.com/agbru/algebra/internal/digits"
	apperrors "github.com/agbru/algebra/internal/errors"
)

// Add returns x + y.
func (x Int) Add(y Int) Int {
	if x.neg == y.neg {
		return makeInt(x.neg, digits.Add(x.abs, y.abs))
	}
	// Signs differ: subtract the smaller magnitude from the larger.
	if digits.Cmp(x.abs, y.abs) >= 0 {
		return makeInt(x.neg, digits.Sub(x.abs, y.abs))
	}
	return makeInt(y.neg, digits.Sub(y.abs, x.abs))
}

// Sub returns x - y.
func (x Int) Sub(y Int) Int { return x.Add(y.Neg()) }

// Mul returns x * y, choosing the algorithm from the operand lengths.
func (x Int) Mul(y Int) Int { return x.MulWith(y, Auto) }

// MulWith returns x * y computed by alg. All algorithms return identical
// results.
func (x Int) MulWith(y Int, alg Algorithm) Int {
	if x.IsZero() || y.IsZero() {
		return Int{}
	}
	return makeInt(x.neg != y.neg, mulNat(x.abs, y.abs, alg))
}

// MulInt64 returns x * n.
func (x Int) MulInt64(n int64) Int { return x.Mul(FromInt64(n)) }

// Sqr returns x * x.
func (x Int) Sqr() Int { return x.Mul(x) }

// QuoRem returns the truncated quotient and remainder of x / y:
// x = q*y + r, |r| < |y|, q rounded toward zero and r carrying the sign of x.
// A zero divisor returns ErrDivisionByZero.
func (x Int) QuoRem(y Int) (q, r Int, err error) {
	if y.IsZero() {
		return Int{}, Int{}, apperrors.WrapError(apperrors.ErrDivisionByZero, "bigint.QuoRem")
	}
	qa, ra := digits.DivMod(x.abs, y.abs)
	return makeInt(x.neg != y.neg, qa), makeInt(x.neg, ra), nil
}

// Quo returns the truncated quotient x / y.
func (x Int) Quo(y Int) (Int, error) {
	q, _, err := x.QuoRem(y)
	return q, err
}

// Rem returns the truncated remainder of x / y, with the sign of x.
func (x Int) Rem(y Int) (Int, error) {
	_, r, err := x.QuoRem(y)
	return r, err
}

// DivMod returns the Euclidean quotient and modulus: x = q*y + m with
// 0 <= m < |y|.
func (x Int) DivMod(y Int) (q, m Int, err error) {
	q, m, err = x.QuoRem(y)
	if err != nil {
		return q, m, err
	}
	if m.neg {
		if y.neg {
			q = q.Add(FromInt64(1))
			m = m.Sub(y)
		} else {
			q = q.Sub(FromInt64(1))
			m = m.Add(y)
		}
	}
	return q, m, nil
}

// Mod returns the Euclidean modulus of x by y.
func (x Int) Mod(y Int) (Int, error) {
	_, m, err := x.DivMod(y)
	return m, err
}

// Pow returns x**n by binary exponentiation. Pow(0) is 1.
func (x Int) Pow(n uint) Int {
	result := FromInt64(1)
	base := x
	for n > 0 {
		if n&1 == 1 {
			result = result.Mul(base)
		}
		n >>= 1
		if n > 0 {
			base = base.Sqr()
		}
	}
	return result
}

// ModPow returns x**e mod m for e >= 0 and m != 0, as a Euclidean residue.
func (x Int) ModPow(e, m Int) (Int, error) {
	if m.IsZero() {
		return Int{}, apperrors.WrapError(apperrors.ErrDivisionByZero, "bigint.ModPow")
	}
	if e.neg {
		return Int{}, apperrors.ValidationError{Field: "exponent", Message: "negative exponent"}
	}
	base, err := x.Mod(m)
	if err != nil {
		return Int{}, err
	}
	result, _ := FromInt64(1).Mod(m)
	for i := e.BitLen() - 1; i >= 0; i-- {
		result, _ = result.Sqr().Mod(m)
		if e.Bit(uint(i)) == 1 {
			result, _ = result.Mul(base).Mod(m)
		}
	}
	return result, nil
}
