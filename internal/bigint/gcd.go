package bigint

import "github.com/agbru/algebra/internal/digits"

// GCD returns the non-negative greatest common divisor of x and y by
// Euclid's algorithm. GCD(0, 0) is 0.
func GCD(x, y Int) Int {
	a, b := x.abs, y.abs
	for len(b) > 0 {
		_, r := digits.DivMod(a, b)
		a, b = b, r
	}
	return makeInt(false, a.Clone())
}

// ExtGCD returns g = GCD(x, y) together with Bézout coefficients s and t
// such that x*s + y*t = g.
func ExtGCD(x, y Int) (g, s, t Int) {
	oldR, r := x, y
	oldS, s := FromInt64(1), Int{}
	oldT, t := Int{}, FromInt64(1)
	for !r.IsZero() {
		q, rem, _ := oldR.QuoRem(r)
		oldR, r = r, rem
		oldS, s = s, oldS.Sub(q.Mul(s))
		oldT, t = t, oldT.Sub(q.Mul(t))
	}
	if oldR.neg {
		return oldR.Neg(), oldS.Neg(), oldT.Neg()
	}
	return oldR, oldS, oldT
}

// LCM returns the non-negative least common multiple of x and y.
func LCM(x, y Int) Int {
	if x.IsZero() || y.IsZero() {
		return Int{}
	}
	q, _ := x.Abs().Quo(GCD(x, y))
	return q.Mul(y.Abs())
}
