package digits

import (
	"math/big"
	"math/bits"
)

// Word is a single digit of a magnitude. It aliases big.Word so magnitudes
// can be handed to math/big without copying.
type Word = big.Word

// WordBits is the size of a Word in bits.
const WordBits = _W

const (
	_W = bits.UintSize // word size in bits
	_M = ^Word(0)      // digit mask

	// limbsPerWord is the number of 32-bit limbs packed into one Word.
	limbsPerWord = _W / 32
)

// ─────────────────────────────────────────────────────────────────────────────
// Single-word primitives
// ─────────────────────────────────────────────────────────────────────────────

// mulWW returns the double-word product x*y as (hi, lo).
func mulWW(x, y Word) (hi, lo Word) {
	h, l := bits.Mul(uint(x), uint(y))
	return Word(h), Word(l)
}

// mulAddWWW returns x*y + c as (hi, lo).
func mulAddWWW(x, y, c Word) (hi, lo Word) {
	h, l := bits.Mul(uint(x), uint(y))
	var cc uint
	l, cc = bits.Add(l, uint(c), 0)
	return Word(h + cc), Word(l)
}

// divWW divides the double word (x1, x0) by y. x1 must be less than y.
func divWW(x1, x0, y Word) (q, r Word) {
	qq, rr := bits.Div(uint(x1), uint(x0), uint(y))
	return Word(qq), Word(rr)
}

// ─────────────────────────────────────────────────────────────────────────────
// Vector primitives
// ─────────────────────────────────────────────────────────────────────────────

// addVV sets z = x + y over len(z) words and returns the carry.
func addVV(z, x, y []Word) (c Word) {
	for i := range z {
		zi, cc := bits.Add(uint(x[i]), uint(y[i]), uint(c))
		z[i] = Word(zi)
		c = Word(cc)
	}
	return c
}

// subVV sets z = x - y over len(z) words and returns the borrow.
func subVV(z, x, y []Word) (c Word) {
	for i := range z {
		zi, cc := bits.Sub(uint(x[i]), uint(y[i]), uint(c))
		z[i] = Word(zi)
		c = Word(cc)
	}
	return c
}

// addVW sets z = x + y for a single word y and returns the carry.
func addVW(z, x []Word, y Word) (c Word) {
	c = y
	for i := range z {
		zi, cc := bits.Add(uint(x[i]), uint(c), 0)
		z[i] = Word(zi)
		c = Word(cc)
	}
	return c
}

// subVW sets z = x - y for a single word y and returns the borrow.
func subVW(z, x []Word, y Word) (c Word) {
	c = y
	for i := range z {
		zi, cc := bits.Sub(uint(x[i]), uint(c), 0)
		z[i] = Word(zi)
		c = Word(cc)
	}
	return c
}

// shlVU sets z = x << s for 0 <= s < _W and returns the bits shifted out.
func shlVU(z, x []Word, s uint) (c Word) {
	if s == 0 {
		copy(z, x)
		return 0
	}
	if len(z) == 0 {
		return 0
	}
	ŝ := _W - s
	c = x[len(z)-1] >> ŝ
	for i := len(z) - 1; i > 0; i-- {
		z[i] = x[i]<<s | x[i-1]>>ŝ
	}
	z[0] = x[0] << s
	return c
}

// shrVU sets z = x >> s for 0 <= s < _W and returns the bits shifted out,
// left-aligned in the result word.
func shrVU(z, x []Word, s uint) (c Word) {
	if s == 0 {
		copy(z, x)
		return 0
	}
	if len(z) == 0 {
		return 0
	}
	ŝ := _W - s
	c = x[0] << ŝ
	for i := 0; i < len(z)-1; i++ {
		z[i] = x[i]>>s | x[i+1]<<ŝ
	}
	z[len(z)-1] = x[len(z)-1] >> s
	return c
}

// mulAddVWW sets z = x*y + r and returns the carry word.
func mulAddVWW(z, x []Word, y, r Word) (c Word) {
	c = r
	for i := range z {
		c, z[i] = mulAddWWW(x[i], y, c)
	}
	return c
}

// addMulVVW sets z += x*y and returns the carry word.
func addMulVVW(z, x []Word, y Word) (c Word) {
	for i := range z {
		z1, z0 := mulAddWWW(x[i], y, z[i])
		lo, cc := bits.Add(uint(z0), uint(c), 0)
		z[i] = Word(lo)
		c = z1 + Word(cc)
	}
	return c
}

// divWVW sets z = (xn:x) / y and returns the remainder. xn must be less than y.
// z and x may alias.
func divWVW(z []Word, xn Word, x []Word, y Word) (r Word) {
	r = xn
	for i := len(z) - 1; i >= 0; i-- {
		z[i], r = divWW(r, x[i], y)
	}
	return r
}

// addAt adds x into z starting at word offset i. The sum must fit in z.
func addAt(z, x []Word, i int) {
	if len(x) == 0 {
		return
	}
	j := i + len(x)
	if c := addVV(z[i:j], z[i:j], x); c != 0 && j < len(z) {
		addVW(z[j:], z[j:], c)
	}
}
