package digits

import (
	"math/big"
	"math/rand/v2"
)

func toBig(x Nat) *big.Int {
	return new(big.Int).SetBits(append([]big.Word(nil), x...))
}

func fromBig(b *big.Int) Nat {
	return Nat(b.Bits()).Clone().Norm()
}

// randNat returns a random magnitude of exactly n words.
func randNat(r *rand.Rand, n int) Nat {
	if n == 0 {
		return nil
	}
	x := make(Nat, n)
	for i := range x {
		x[i] = Word(r.Uint64())
	}
	if x[n-1] == 0 {
		x[n-1] = 1
	}
	return x
}

func newRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}
