//go:build gmp

package bigint

import (
	"math/rand/v2"
	"testing"

	"github.com/ncw/gmp"
)

// TestMultiplicationAgainstGMP cross-checks every algorithm against GMP on
// operands up to twice the default transform threshold.
func TestMultiplicationAgainstGMP(t *testing.T) {
	t.Parallel()
	r := rand.New(rand.NewPCG(17, 29))
	for _, words := range []int{1, 50, 700, 3000, 5000} {
		x, y := exactInt(r, words), exactInt(r, words/2+1)
		gx, _ := new(gmp.Int).SetString(x.String(), 10)
		gy, _ := new(gmp.Int).SetString(y.String(), 10)
		want := new(gmp.Int).Mul(gx, gy).String()
		for _, alg := range []Algorithm{Schoolbook, Karatsuba, FFT} {
			if got := x.MulWith(y, alg).String(); got != want {
				t.Errorf("%s disagrees with GMP at %d words", alg, words)
			}
		}
	}
}

// TestDivisionAgainstGMP cross-checks truncated division.
func TestDivisionAgainstGMP(t *testing.T) {
	t.Parallel()
	r := rand.New(rand.NewPCG(5, 8))
	for i := 0; i < 50; i++ {
		x, y := exactInt(r, 40), exactInt(r, 1+r.IntN(30))
		gx, _ := new(gmp.Int).SetString(x.String(), 10)
		gy, _ := new(gmp.Int).SetString(y.String(), 10)
		gq, gr := new(gmp.Int).QuoRem(gx, gy, new(gmp.Int))
		q, rem, err := x.QuoRem(y)
		if err != nil || q.String() != gq.String() || rem.String() != gr.String() {
			t.Fatalf("QuoRem(%s, %s) = (%s, %s), GMP says (%s, %s)", x, y, q, rem, gq, gr)
		}
	}
}
