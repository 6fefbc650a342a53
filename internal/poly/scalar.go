package poly

import "golang.org/x/exp/constraints"

// Scalar is the capability set a coefficient type must provide. The zero
// value of F must be the additive identity.
type Scalar[F any] interface {
	Add(F) F
	Sub(F) F
	Mul(F) F
	Neg() F
	// QuoRem divides with remainder. Over a field the remainder is always
	// zero; over the integers the quotient is truncated.
	QuoRem(F) (F, F, error)
	MulInt64(int64) F
	IsZero() bool
	IsOne() bool
	// One returns the multiplicative identity; it must not depend on the
	// receiver's value.
	One() F
	Cmp(F) int
	String() string
}

// Degree constrains exponent types.
type Degree interface {
	constraints.Signed
}

func one[F Scalar[F]]() F {
	var zero F
	return zero.One()
}

func isOppositeUnit[F Scalar[F]](c F) bool { return c.Neg().IsOne() }
