package bigint

import (
	"math"
	"math/big"

	"github.com/agbru/algebra/internal/digits"
	apperrors "github.com/agbru/algebra/internal/errors"
)

// Int is an arbitrary-precision signed integer in sign-magnitude form.
// The magnitude is always normalized and zero is never negative.
type Int struct {
	neg bool
	abs digits.Nat
}

// makeInt builds a canonical Int from a sign and a magnitude it takes ownership of.
func makeInt(neg bool, abs digits.Nat) Int {
	abs = abs.Norm()
	return Int{neg: neg && len(abs) > 0, abs: abs}
}

// New returns zero.
func New() Int { return Int{} }

// FromInt64 returns v as an Int. math.MinInt64 is handled exactly.
func FromInt64(v int64) Int {
	if v < 0 {
		return makeInt(true, digits.FromUint64(uint64(-(v + 1))+1))
	}
	return makeInt(false, digits.FromUint64(uint64(v)))
}

// FromInt returns v as an Int.
func FromInt(v int) Int { return FromInt64(int64(v)) }

// FromUint64 returns v as an Int.
func FromUint64(v uint64) Int { return makeInt(false, digits.FromUint64(v)) }

// FromFloat64 returns f truncated toward zero. NaN and infinities are
// rejected with a ValidationError.
func FromFloat64(f float64) (Int, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return Int{}, apperrors.ValidationError{Field: "float64", Message: "value is not finite"}
	}
	f = math.Trunc(f)
	neg := f < 0
	a := math.Abs(f)
	if a < 1<<63 {
		return makeInt(neg, digits.FromUint64(uint64(a))), nil
	}
	mant, exp := math.Frexp(a) // a = mant * 2^exp, mant in [0.5, 1)
	m := uint64(math.Ldexp(mant, 53))
	return makeInt(neg, digits.Shl(digits.FromUint64(m), uint(exp-53))), nil
}

// FromBig returns the value of b. A nil b is zero.
func FromBig(b *big.Int) Int {
	if b == nil {
		return Int{}
	}
	return makeInt(b.Sign() < 0, digits.Nat(b.Bits()).Clone())
}

// FromNat returns the non-negative Int with magnitude x.
func FromNat(x digits.Nat) Int { return makeInt(false, x.Clone()) }

// Big returns the value as a newly allocated *big.Int.
func (x Int) Big() *big.Int {
	b := new(big.Int).SetBits(append([]big.Word(nil), x.abs...))
	if x.neg {
		b.Neg(b)
	}
	return b
}

// Magnitude returns a copy of |x| as a digit vector.
func (x Int) Magnitude() digits.Nat { return x.abs.Clone() }

// ─────────────────────────────────────────────────────────────────────────────
// Predicates and comparison
// ─────────────────────────────────────────────────────────────────────────────

// Sign returns -1, 0 or +1.
func (x Int) Sign() int {
	switch {
	case len(x.abs) == 0:
		return 0
	case x.neg:
		return -1
	}
	return 1
}

// IsZero reports whether x == 0.
func (x Int) IsZero() bool { return len(x.abs) == 0 }

// IsOne reports whether x == 1.
func (x Int) IsOne() bool { return !x.neg && len(x.abs) == 1 && x.abs[0] == 1 }

// IsMinusOne reports whether x == -1.
func (x Int) IsMinusOne() bool { return x.neg && len(x.abs) == 1 && x.abs[0] == 1 }

// IsNormal reports whether x is in canonical form. It always holds for
// values produced by this package.
func (x Int) IsNormal() bool { return x.abs.IsNormal() && (!x.neg || len(x.abs) > 0) }

// Cmp compares x and y and returns -1, 0 or +1.
func (x Int) Cmp(y Int) int {
	switch {
	case x.neg == y.neg:
		c := digits.Cmp(x.abs, y.abs)
		if x.neg {
			return -c
		}
		return c
	case x.neg:
		return -1
	}
	return 1
}

// CmpAbs compares |x| and |y|.
func (x Int) CmpAbs(y Int) int { return digits.Cmp(x.abs, y.abs) }

// Equal reports whether x == y.
func (x Int) Equal(y Int) bool { return x.Cmp(y) == 0 }

// Neg returns -x.
func (x Int) Neg() Int { return makeInt(!x.neg, x.abs) }

// Abs returns |x|.
func (x Int) Abs() Int { return Int{abs: x.abs} }

// One returns the integer 1. It lets Int act as a coefficient whose unit is
// obtained from a zero value.
func (Int) One() Int { return FromInt64(1) }
