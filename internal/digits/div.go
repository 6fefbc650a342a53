package digits

import (
	"math/bits"

	apperrors "github.com/agbru/algebra/internal/errors"
)

// DivMod returns q = u / v and r = u mod v. It panics with a
// PreconditionError if v is zero; callers report division by zero
// before reaching the magnitude layer.
func DivMod(u, v Nat) (q, r Nat) {
	u, v = u.Norm(), v.Norm()
	if len(v) == 0 {
		panic(apperrors.NewPreconditionError("digits.DivMod", "zero divisor"))
	}
	if Cmp(u, v) < 0 {
		return nil, u.Clone()
	}
	if len(v) == 1 {
		var rw Word
		q, rw = DivWord(u, v[0])
		return q, FromWord(rw)
	}
	return divLarge(u, v)
}

// DivWord returns u / d and u mod d for a nonzero single-word divisor.
func DivWord(u Nat, d Word) (q Nat, r Word) {
	u = u.Norm()
	q = make(Nat, len(u))
	r = divWVW(q, 0, u, d)
	return q.Norm(), r
}

// divLarge implements Knuth's algorithm D (TAOCP vol. 2, 4.3.1) for
// len(v) >= 2 and u >= v.
func divLarge(uIn, vIn Nat) (q, r Nat) {
	n := len(vIn)
	m := len(uIn) - n

	// D1: normalize so the top bit of v is set.
	s := uint(bits.LeadingZeros(uint(vIn[n-1])))
	v := acquireWords(n)
	defer releaseWords(v)
	shlVU(v, vIn, s)

	u := acquireWords(len(uIn) + 1)
	defer releaseWords(u)
	u[len(uIn)] = shlVU(u[:len(uIn)], uIn, s)

	qhatv := acquireWords(n + 1)
	defer releaseWords(qhatv)

	q = make(Nat, m+1)
	vn1, vn2 := v[n-1], v[n-2]

	// D2..D7
	for j := m; j >= 0; j-- {
		// D3: estimate q̂ from the top two words of the remainder.
		qhat := _M
		if ujn := u[j+n]; ujn != vn1 {
			var rhat Word
			qhat, rhat = divWW(ujn, u[j+n-1], vn1)

			// Correct q̂ while q̂*v[n-2] > (r̂:u[j+n-2]).
			x1, x2 := mulWW(qhat, vn2)
			for greaterThan(x1, x2, rhat, u[j+n-2]) {
				qhat--
				prev := rhat
				rhat += vn1
				if rhat < prev {
					break
				}
				x1, x2 = mulWW(qhat, vn2)
			}
		}

		// D4: u[j:j+n+1] -= q̂*v
		qhatv[n] = mulAddVWW(qhatv[:n], v, qhat, 0)
		if c := subVV(u[j:j+n+1], u[j:j+n+1], qhatv); c != 0 {
			// D6: add back.
			c := addVV(u[j:j+n], u[j:j+n], v)
			u[j+n] += c
			qhat--
		}
		q[j] = qhat
	}

	// D8: unnormalize the remainder.
	r = make(Nat, n)
	shrVU(r, u[:n], s)
	return q.Norm(), r.Norm()
}

// greaterThan reports whether (x1:x2) > (y1:y2).
func greaterThan(x1, x2, y1, y2 Word) bool {
	return x1 > y1 || x1 == y1 && x2 > y2
}
