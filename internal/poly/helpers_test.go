package poly

import (
	"cmp"
	"errors"
	"strconv"
	"testing"

	"github.com/agbru/algebra/internal/bigint"
	apperrors "github.com/agbru/algebra/internal/errors"
	"github.com/agbru/algebra/internal/rational"
)

type (
	intPoly = Poly[bigint.Int, int]
	ratPoly = Poly[rational.Rat, int]
)

func ip(s string) intPoly { return MustParse[bigint.Int, int](s, bigint.Parse) }

func rp(s string) ratPoly { return MustParse[rational.Rat, int](s, rational.Parse) }

func bi(v int64) bigint.Int { return bigint.FromInt64(v) }

func im(c int64, d int) Monomial[bigint.Int, int] { return Term(bi(c), d) }

// expectPrecondition runs f and fails unless it panics with a
// PreconditionError.
func expectPrecondition(t *testing.T, name string, f func()) {
	t.Helper()
	defer func() {
		t.Helper()
		r := recover()
		err, ok := r.(error)
		var pe apperrors.PreconditionError
		if !ok || !errors.As(err, &pe) {
			t.Errorf("%s: expected PreconditionError panic, got %v", name, r)
		}
	}()
	f()
}

func assertNormal[F Scalar[F], I Degree](t *testing.T, p Poly[F, I]) {
	t.Helper()
	if !p.IsNormal() {
		t.Errorf("%v is not in normal form: %#v", p, p.terms)
	}
}

func assertPoly[F Scalar[F], I Degree](t *testing.T, got Poly[F, I], want string) {
	t.Helper()
	assertNormal(t, got)
	if s := got.String(); s != want {
		t.Errorf("got %s, want %s", s, want)
	}
}

// int64Scalar is a machine-integer coefficient without a binary encoding.
type int64Scalar int64

func (a int64Scalar) Add(b int64Scalar) int64Scalar { return a + b }
func (a int64Scalar) Sub(b int64Scalar) int64Scalar { return a - b }
func (a int64Scalar) Mul(b int64Scalar) int64Scalar { return a * b }
func (a int64Scalar) Neg() int64Scalar { return -a }
func (a int64Scalar) MulInt64(n int64) int64Scalar { return a * int64Scalar(n) }
func (a int64Scalar) IsZero() bool { return a == 0 }
func (a int64Scalar) IsOne() bool { return a == 1 }
func (int64Scalar) One() int64Scalar { return 1 }
func (a int64Scalar) Cmp(b int64Scalar) int { return cmp.Compare(a, b) }
func (a int64Scalar) String() string { return strconv.FormatInt(int64(a), 10) }
func (a int64Scalar) QuoRem(b int64Scalar) (int64Scalar, int64Scalar, error) {
	if b == 0 {
		return 0, 0, apperrors.ErrDivisionByZero
	}
	return a / b, a % b, nil
}

type bigintT = bigint.Int
