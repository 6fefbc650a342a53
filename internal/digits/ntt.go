// This file implements Pollard's three-prime number theoretic transform
// multiplication. Operands are cut into 32-bit limbs, convolved modulo three
// word-sized primes and the exact convolution is rebuilt with Garner's
// Chinese remaindering before carries are propagated.

package digits

import "math/bits"

// nttPrime is an NTT-friendly prime p = c*2^k + 1 with primitive root g.
type nttPrime struct {
	p, g uint64
}

// The three primes support transforms up to 2^24 points, and their product
// (about 2^85.6) bounds every convolution coefficient of operands whose
// shorter side has at most maxNTTLimbs limbs.
var nttPrimes = [3]nttPrime{
	{p: 469762049, g: 3},  // 7*2^26 + 1
	{p: 167772161, g: 3},  // 5*2^25 + 1
	{p: 754974721, g: 11}, // 45*2^24 + 1
}

// Garner constants, derived once at start-up.
var (
	p1p2        uint64 // p1*p2
	invP1ModP2  uint64 // p1^-1 mod p2
	invP12ModP3 uint64 // (p1*p2)^-1 mod p3
)

func init() {
	p1, p2, p3 := nttPrimes[0].p, nttPrimes[1].p, nttPrimes[2].p
	p1p2 = p1 * p2
	invP1ModP2 = powMod(p1%p2, p2-2, p2)
	invP12ModP3 = powMod(p1p2%p3, p3-2, p3)
}

// powMod returns a^e mod m for m < 2^32.
func powMod(a, e, m uint64) uint64 {
	r := uint64(1)
	a %= m
	for e > 0 {
		if e&1 == 1 {
			r = r * a % m
		}
		a = a * a % m
		e >>= 1
	}
	return r
}

// ntt transforms a in place modulo pr. len(a) must be a power of two.
func ntt(a []uint64, invert bool, pr nttPrime) {
	n := len(a)
	p := pr.p
	for i, j := 1, 0; i < n; i++ {
		bit := n >> 1
		for ; j&bit != 0; bit >>= 1 {
			j ^= bit
		}
		j ^= bit
		if i < j {
			a[i], a[j] = a[j], a[i]
		}
	}
	for length := 2; length <= n; length <<= 1 {
		w := powMod(pr.g, (p-1)/uint64(length), p)
		if invert {
			w = powMod(w, p-2, p)
		}
		half := length >> 1
		for i := 0; i < n; i += length {
			wn := uint64(1)
			for j := 0; j < half; j++ {
				u := a[i+j]
				v := a[i+j+half] * wn % p
				s := u + v
				if s >= p {
					s -= p
				}
				d := u + p - v
				if d >= p {
					d -= p
				}
				a[i+j], a[i+j+half] = s, d
				wn = wn * w % p
			}
		}
	}
	if invert {
		nInv := powMod(uint64(n), p-2, p)
		for i := range a {
			a[i] = a[i] * nInv % p
		}
	}
}

// toLimbs splits x into 32-bit limbs, least significant first.
func toLimbs(x Nat) []uint32 {
	limbs := make([]uint32, len(x)*limbsPerWord)
	for i, w := range x {
		for k := 0; k < limbsPerWord; k++ {
			limbs[i*limbsPerWord+k] = uint32(uint(w) >> (32 * uint(k)))
		}
	}
	for len(limbs) > 0 && limbs[len(limbs)-1] == 0 {
		limbs = limbs[:len(limbs)-1]
	}
	return limbs
}

// fromLimbs packs 32-bit limbs back into a normalized Nat.
func fromLimbs(limbs []uint32) Nat {
	z := make(Nat, (len(limbs)+limbsPerWord-1)/limbsPerWord)
	for i, l := range limbs {
		z[i/limbsPerWord] |= Word(l) << (32 * uint(i%limbsPerWord))
	}
	return z.Norm()
}

// MulFFT returns x*y using the three-prime number theoretic transform.
// Operands longer than the transform can hold exactly are split, by
// slicing the longer operand or, when both are long, by a Karatsuba step
// whose leaves are transforms.
func MulFFT(x, y Nat) Nat {
	x, y = x.Norm(), y.Norm()
	if len(x) < len(y) {
		x, y = y, x
	}
	switch {
	case len(y) == 0:
		return nil
	case len(y) > maxFFTWords:
		return karatsuba(x, y, maxFFTWords+1, MulFFT)
	case len(x) > maxFFTWords:
		z := make(Nat, len(x)+len(y))
		for i := 0; i < len(x); i += maxFFTWords {
			j := min(i+maxFFTWords, len(x))
			addAt(z, nttMul(x[i:j].Norm(), y), i)
		}
		return z.Norm()
	}
	return nttMul(x, y)
}

// nttMul convolves the limbs of x and y under each prime and recombines.
func nttMul(x, y Nat) Nat {
	if len(x) == 0 || len(y) == 0 {
		return nil
	}
	a, b := toLimbs(x), toLimbs(y)
	outLen := len(a) + len(b) - 1
	n := 1
	for n < outLen {
		n <<= 1
	}

	var residues [3][]uint64
	for k, pr := range nttPrimes {
		fa := acquireResidues(n)
		fb := acquireResidues(n)
		for i, l := range a {
			fa[i] = uint64(l) % pr.p
		}
		for i, l := range b {
			fb[i] = uint64(l) % pr.p
		}
		ntt(fa, false, pr)
		ntt(fb, false, pr)
		for i := range fa {
			fa[i] = fa[i] * fb[i] % pr.p
		}
		ntt(fa, true, pr)
		releaseResidues(fb)
		residues[k] = fa
	}
	defer func() {
		for _, r := range residues {
			releaseResidues(r)
		}
	}()

	p1, p2, p3 := nttPrimes[0].p, nttPrimes[1].p, nttPrimes[2].p
	limbs := make([]uint32, outLen+4)
	var carryHi, carryLo uint64
	for i := 0; i < outLen; i++ {
		r1, r2, r3 := residues[0][i], residues[1][i], residues[2][i]
		// x = r1 + p1*k2 + p1*p2*k3
		k2 := (r2 + p2 - r1%p2) % p2 * invP1ModP2 % p2
		x12 := r1 + p1*k2
		k3 := (r3 + p3 - x12%p3) % p3 * invP12ModP3 % p3
		hi, lo := bits.Mul64(p1p2, k3)
		var c uint64
		lo, c = bits.Add64(lo, x12, 0)
		hi += c

		carryLo, c = bits.Add64(carryLo, lo, 0)
		carryHi += hi + c
		limbs[i] = uint32(carryLo)
		carryLo = carryLo>>32 | carryHi<<32
		carryHi >>= 32
	}
	for i := outLen; carryLo != 0 || carryHi != 0; i++ {
		limbs[i] = uint32(carryLo)
		carryLo = carryLo>>32 | carryHi<<32
		carryHi >>= 32
	}
	return fromLimbs(limbs)
}
