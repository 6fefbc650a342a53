package bigint

import (
	"sync"

	"github.com/bits-and-blooms/bitset"

	"github.com/agbru/algebra/internal/digits"
)

// sieveLimit bounds the small primes used for trial division.
const sieveLimit = 1 << 13

var (
	smallPrimesOnce sync.Once
	smallPrimes     []uint
)

// loadSmallPrimes runs a sieve of Eratosthenes over [0, sieveLimit) with a
// bitset marking composites.
func loadSmallPrimes() []uint {
	smallPrimesOnce.Do(func() {
		composite := bitset.New(sieveLimit)
		composite.Set(0).Set(1)
		for p := uint(2); p*p < sieveLimit; p++ {
			if composite.Test(p) {
				continue
			}
			for m := p * p; m < sieveLimit; m += p {
				composite.Set(m)
			}
		}
		for p, ok := composite.NextClear(0); ok && p < sieveLimit; p, ok = composite.NextClear(p + 1) {
			smallPrimes = append(smallPrimes, p)
		}
	})
	return smallPrimes
}

// ProbablyPrime reports whether x is probably prime, running trial division
// by the primes below 8192 and then rounds Miller–Rabin tests with bases
// drawn deterministically from x. Composite numbers pass with probability
// at most 4^-rounds. Values below 2 are never prime.
func (x Int) ProbablyPrime(rounds int) bool {
	if x.Sign() <= 0 || x.IsOne() {
		return false
	}
	for _, p := range loadSmallPrimes() {
		if x.abs.Uint64() == uint64(p) && len(x.abs) == 1 {
			return true
		}
		if _, r := digits.DivWord(x.abs, digits.Word(p)); r == 0 {
			return false
		}
	}
	if x.BitLen() <= 26 {
		// Every composite below sieveLimit^2 has a factor in the table.
		return true
	}
	return x.millerRabin(max(rounds, 1))
}

// millerRabin runs the strong probable-prime test for odd x > 3.
func (x Int) millerRabin(rounds int) bool {
	one := FromInt64(1)
	two := FromInt64(2)
	nm1 := x.Sub(one)
	k := nm1.TrailingZeroBits()
	q := nm1.Rsh(k)

	seed, _ := x.MarshalBinary()
	rng, err := NewSeededReader(seed)
	if err != nil {
		return false
	}
	nm3 := x.Sub(FromInt64(3))

	for i := 0; i < rounds; i++ {
		var a Int
		if i == 0 {
			a = two
		} else {
			r, err := RandomBelow(rng, nm3)
			if err != nil {
				return false
			}
			a = r.Add(two) // a in [2, x-2]
		}
		y, _ := a.ModPow(q, x)
		if y.IsOne() || y.Equal(nm1) {
			continue
		}
		composite := true
		for j := uint(1); j < k; j++ {
			y, _ = y.Sqr().Mod(x)
			if y.Equal(nm1) {
				composite = false
				break
			}
			if y.IsOne() {
				return false
			}
		}
		if composite {
			return false
		}
	}
	return true
}

// NextPrime returns the smallest probable prime strictly greater than x.
func (x Int) NextPrime(rounds int) Int {
	two := FromInt64(2)
	if x.Cmp(two) < 0 {
		return two
	}
	c := x.Add(FromInt64(1))
	if c.IsEven() {
		c = c.Add(FromInt64(1))
	}
	for !c.ProbablyPrime(rounds) {
		c = c.Add(two)
	}
	return c
}
