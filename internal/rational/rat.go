package rational

import (
	"strings"

	"github.com/agbru/algebra/internal/bigint"
	apperrors "github.com/agbru/algebra/internal/errors"
)

// Rat is an immutable reduced fraction num/den with den > 0.
// The zero value represents 0.
type Rat struct {
	num bigint.Int
	den bigint.Int // zero means 1
}

// denom returns the effective denominator, mapping the zero-value
// denominator to one.
func (x Rat) denom() bigint.Int {
	if x.den.IsZero() {
		return bigint.FromInt64(1)
	}
	return x.den
}

// reduce builds a Rat in lowest terms from num/den. den must be non-zero.
func reduce(num, den bigint.Int) Rat {
	if den.Sign() < 0 {
		num, den = num.Neg(), den.Neg()
	}
	if num.IsZero() {
		return Rat{}
	}
	g := bigint.GCD(num, den)
	if !g.IsOne() {
		num, _ = num.Quo(g)
		den, _ = den.Quo(g)
	}
	if den.IsOne() {
		return Rat{num: num}
	}
	return Rat{num: num, den: den}
}

// New returns num/den reduced to lowest terms.
//
// Parameters:
//   - num: The numerator.
//   - den: The denominator, which must be non-zero.
//
// Returns:
//   - Rat: The reduced fraction.
//   - error: ErrDivisionByZero (wrapped) when den is zero.
func New(num, den bigint.Int) (Rat, error) {
	if den.IsZero() {
		return Rat{}, apperrors.WrapError(apperrors.ErrDivisionByZero, "rational.New")
	}
	return reduce(num, den), nil
}

// FromInt returns the integer n as a rational.
func FromInt(n bigint.Int) Rat { return Rat{num: n} }

// FromInt64 returns n/1.
func FromInt64(n int64) Rat { return Rat{num: bigint.FromInt64(n)} }

// FromFrac returns a/b for machine integers. It panics if b is zero.
func FromFrac(a, b int64) Rat {
	r, err := New(bigint.FromInt64(a), bigint.FromInt64(b))
	if err != nil {
		panic(err)
	}
	return r
}

// Parse reads "a" or "a/b" where a and b are optionally signed decimal
// integers. A zero denominator is a parse failure.
func Parse(s string) (Rat, error) {
	numText, denText, hasDen := strings.Cut(s, "/")
	num, err := bigint.Parse(numText)
	if err != nil {
		return Rat{}, apperrors.NewParseError("rational", s, err)
	}
	if !hasDen {
		return Rat{num: num}, nil
	}
	den, err := bigint.Parse(denText)
	if err != nil {
		return Rat{}, apperrors.NewParseError("rational", s, err)
	}
	if den.IsZero() {
		return Rat{}, apperrors.NewParseError("rational", s, apperrors.ErrDivisionByZero)
	}
	return reduce(num, den), nil
}

// MustParse is like Parse but panics on malformed input.
func MustParse(s string) Rat {
	r, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return r
}

// Num returns the numerator.
func (x Rat) Num() bigint.Int { return x.num }

// Den returns the (positive) denominator.
func (x Rat) Den() bigint.Int { return x.denom() }

// ─── Arithmetic ─────────────────────────────────────────────────────────────

// Add returns x + y.
func (x Rat) Add(y Rat) Rat {
	if x.den.IsZero() && y.den.IsZero() {
		return Rat{num: x.num.Add(y.num)}
	}
	xd, yd := x.denom(), y.denom()
	return reduce(x.num.Mul(yd).Add(y.num.Mul(xd)), xd.Mul(yd))
}

// Sub returns x - y.
func (x Rat) Sub(y Rat) Rat { return x.Add(y.Neg()) }

// Mul returns x * y.
func (x Rat) Mul(y Rat) Rat {
	if x.IsZero() || y.IsZero() {
		return Rat{}
	}
	return reduce(x.num.Mul(y.num), x.denom().Mul(y.denom()))
}

// MulInt64 returns n * x.
func (x Rat) MulInt64(n int64) Rat { return x.Mul(FromInt64(n)) }

// Neg returns -x.
func (x Rat) Neg() Rat { return Rat{num: x.num.Neg(), den: x.den} }

// Abs returns |x|.
func (x Rat) Abs() Rat { return Rat{num: x.num.Abs(), den: x.den} }

// Inv returns 1/x. Inverting zero returns ErrDivisionByZero.
func (x Rat) Inv() (Rat, error) {
	if x.IsZero() {
		return Rat{}, apperrors.WrapError(apperrors.ErrDivisionByZero, "rational.Inv")
	}
	return reduce(x.denom(), x.num), nil
}

// Quo returns x / y.
func (x Rat) Quo(y Rat) (Rat, error) {
	inv, err := y.Inv()
	if err != nil {
		return Rat{}, err
	}
	return x.Mul(inv), nil
}

// QuoRem divides exactly: the quotient is x/y and the remainder is always
// zero, since every non-zero rational is invertible.
func (x Rat) QuoRem(y Rat) (Rat, Rat, error) {
	q, err := x.Quo(y)
	return q, Rat{}, err
}

// ─── Queries ────────────────────────────────────────────────────────────────

// Sign returns -1, 0 or +1.
func (x Rat) Sign() int { return x.num.Sign() }

// IsZero reports whether x == 0.
func (x Rat) IsZero() bool { return x.num.IsZero() }

// IsOne reports whether x == 1.
func (x Rat) IsOne() bool { return x.num.IsOne() && x.denom().IsOne() }

// IsInteger reports whether the denominator is one.
func (x Rat) IsInteger() bool { return x.denom().IsOne() }

// One returns the rational 1.
func (Rat) One() Rat { return FromInt64(1) }

// Cmp compares x and y by value.
func (x Rat) Cmp(y Rat) int {
	return x.num.Mul(y.denom()).Cmp(y.num.Mul(x.denom()))
}

// Equal reports whether x and y are the same rational.
func (x Rat) Equal(y Rat) bool { return x.Cmp(y) == 0 }

// String renders "a" for integers and "a/b" otherwise.
func (x Rat) String() string {
	if x.IsInteger() {
		return x.num.String()
	}
	return x.num.String() + "/" + x.den.String()
}
