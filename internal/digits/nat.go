package digits

import (
	"math/bits"

	apperrors "github.com/agbru/algebra/internal/errors"
)

// Nat is an unsigned magnitude stored least-significant word first.
// A normalized Nat has no most-significant zero word; zero is the empty slice.
type Nat []Word

// FromUint64 returns the magnitude of v.
func FromUint64(v uint64) Nat {
	if v == 0 {
		return nil
	}
	if _W == 64 {
		return Nat{Word(v)}
	}
	return Nat{Word(v), Word(v >> 32)}.Norm()
}

// FromWord returns the single-word magnitude w.
func FromWord(w Word) Nat {
	if w == 0 {
		return nil
	}
	return Nat{w}
}

// Norm strips most-significant zero words.
func (x Nat) Norm() Nat {
	i := len(x)
	for i > 0 && x[i-1] == 0 {
		i--
	}
	return x[:i]
}

// Clone returns a copy of x that shares no storage with it.
func (x Nat) Clone() Nat {
	if len(x) == 0 {
		return nil
	}
	z := make(Nat, len(x))
	copy(z, x)
	return z
}

// IsZero reports whether x is zero.
func (x Nat) IsZero() bool { return len(x.Norm()) == 0 }

// IsNormal reports whether x carries no leading zero words.
func (x Nat) IsNormal() bool { return len(x) == 0 || x[len(x)-1] != 0 }

// Uint64 returns the low 64 bits of x.
func (x Nat) Uint64() uint64 {
	var v uint64
	for i := 0; i < len(x) && i*_W < 64; i++ {
		v |= uint64(x[i]) << (uint(i) * _W)
	}
	return v
}

// Cmp compares x and y and returns -1, 0 or +1.
func Cmp(x, y Nat) int {
	x, y = x.Norm(), y.Norm()
	switch {
	case len(x) < len(y):
		return -1
	case len(x) > len(y):
		return 1
	}
	for i := len(x) - 1; i >= 0; i-- {
		if x[i] != y[i] {
			if x[i] < y[i] {
				return -1
			}
			return 1
		}
	}
	return 0
}

// Add returns x + y.
func Add(x, y Nat) Nat {
	x, y = x.Norm(), y.Norm()
	if len(x) < len(y) {
		x, y = y, x
	}
	if len(y) == 0 {
		return x.Clone()
	}
	z := make(Nat, len(x)+1)
	c := addVV(z[:len(y)], x[:len(y)], y)
	c = addVW(z[len(y):len(x)], x[len(y):], c)
	z[len(x)] = c
	return z.Norm()
}

// Sub returns x - y. It panics with a PreconditionError if x < y.
func Sub(x, y Nat) Nat {
	x, y = x.Norm(), y.Norm()
	if len(x) < len(y) {
		panic(apperrors.NewPreconditionError("digits.Sub", "minuend smaller than subtrahend"))
	}
	if len(y) == 0 {
		return x.Clone()
	}
	z := make(Nat, len(x))
	c := subVV(z[:len(y)], x[:len(y)], y)
	c = subVW(z[len(y):], x[len(y):], c)
	if c != 0 {
		panic(apperrors.NewPreconditionError("digits.Sub", "minuend smaller than subtrahend"))
	}
	return z.Norm()
}

// AddWord returns x + w.
func AddWord(x Nat, w Word) Nat {
	x = x.Norm()
	z := make(Nat, len(x)+1)
	z[len(x)] = addVW(z[:len(x)], x, w)
	return z.Norm()
}

// MulAddWord returns x*y + r.
func MulAddWord(x Nat, y, r Word) Nat {
	x = x.Norm()
	z := make(Nat, len(x)+1)
	z[len(x)] = mulAddVWW(z[:len(x)], x, y, r)
	return z.Norm()
}

// ─────────────────────────────────────────────────────────────────────────────
// Bit access
// ─────────────────────────────────────────────────────────────────────────────

// BitLen returns the position of the most significant set bit plus one.
func BitLen(x Nat) int {
	x = x.Norm()
	if len(x) == 0 {
		return 0
	}
	return (len(x)-1)*_W + bits.Len(uint(x[len(x)-1]))
}

// Bit returns the value of bit i of x.
func Bit(x Nat, i uint) uint {
	j := i / _W
	if j >= uint(len(x)) {
		return 0
	}
	return uint(x[j]>>(i%_W)) & 1
}

// TrailingZeroBits returns the number of consecutive zero bits at the
// least significant end of x. It returns 0 for x == 0.
func TrailingZeroBits(x Nat) uint {
	for i, w := range x {
		if w != 0 {
			return uint(i)*_W + uint(bits.TrailingZeros(uint(w)))
		}
	}
	return 0
}

// Shl returns x << s.
func Shl(x Nat, s uint) Nat {
	x = x.Norm()
	if len(x) == 0 {
		return nil
	}
	n := int(s / _W)
	z := make(Nat, len(x)+n+1)
	z[len(x)+n] = shlVU(z[n:n+len(x)], x, s%_W)
	return z.Norm()
}

// Shr returns x >> s. Shifting past the bit length yields zero.
func Shr(x Nat, s uint) Nat {
	x = x.Norm()
	n := s / _W
	if n >= uint(len(x)) {
		return nil
	}
	z := make(Nat, len(x)-int(n))
	shrVU(z, x[n:], s%_W)
	return z.Norm()
}

// And returns the bitwise conjunction of x and y.
func And(x, y Nat) Nat {
	n := min(len(x), len(y))
	z := make(Nat, n)
	for i := range z {
		z[i] = x[i] & y[i]
	}
	return z.Norm()
}

// AndNot returns x &^ y.
func AndNot(x, y Nat) Nat {
	z := x.Clone()
	for i := 0; i < len(z) && i < len(y); i++ {
		z[i] &^= y[i]
	}
	return z.Norm()
}

// Or returns the bitwise disjunction of x and y.
func Or(x, y Nat) Nat {
	if len(x) < len(y) {
		x, y = y, x
	}
	z := x.Clone()
	for i := range y {
		z[i] |= y[i]
	}
	return z.Norm()
}

// Xor returns the bitwise exclusive or of x and y.
func Xor(x, y Nat) Nat {
	if len(x) < len(y) {
		x, y = y, x
	}
	z := x.Clone()
	for i := range y {
		z[i] ^= y[i]
	}
	return z.Norm()
}
