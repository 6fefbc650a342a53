package digits

import (
	"fmt"
	"math/big"
	"testing"
)

func TestMultiplicationAgreement(t *testing.T) {
	t.Parallel()
	// Lengths straddle the Karatsuba leaf, the unbalanced path and the
	// default transform threshold.
	sizes := [][2]int{
		{1, 1}, {3, 2}, {4, 4}, {7, 5}, {16, 16}, {39, 40}, {41, 41},
		{100, 7}, {130, 64}, {257, 255}, {1000, 333}, {2600, 2500},
	}
	for _, sz := range sizes {
		t.Run(fmt.Sprintf("%dx%d", sz[0], sz[1]), func(t *testing.T) {
			t.Parallel()
			x := randNat(newRand(uint64(sz[0]*7919+sz[1])), sz[0])
			y := randNat(newRand(uint64(sz[1]*104729+sz[0])), sz[1])
			want := new(big.Int).Mul(toBig(x), toBig(y))

			results := map[string]Nat{
				"schoolbook":  MulBasic(x, y),
				"karatsuba":   MulKaratsuba(x, y, minKaratsubaCutoff),
				"karatsuba40": MulKaratsuba(x, y, DefaultKaratsubaThreshold),
				"fft":         MulFFT(x, y),
				"auto":        Mul(x, y, Auto, DefaultThresholds()),
			}
			for name, got := range results {
				if toBig(got).Cmp(want) != 0 {
					t.Errorf("%s product mismatch for %dx%d words", name, sz[0], sz[1])
				}
				if !got.IsNormal() {
					t.Errorf("%s product not normalized", name)
				}
			}
		})
	}
}

func TestMulZeroOperand(t *testing.T) {
	t.Parallel()
	x := Nat{1, 2, 3}
	for _, alg := range append([]Algorithm{Auto}, Algorithms...) {
		if got := Mul(x, nil, alg, DefaultThresholds()); len(got) != 0 {
			t.Errorf("Mul(x, 0) with %s = %v, want zero", alg, got)
		}
		if got := Mul(Nat{0, 0}, x, alg, DefaultThresholds()); len(got) != 0 {
			t.Errorf("Mul(0, x) with %s = %v, want zero", alg, got)
		}
	}
}

func TestMulAllOnes(t *testing.T) {
	t.Parallel()
	// (B^n - 1)^2 maximizes every carry chain and every convolution term.
	for _, n := range []int{1, 2, 5, 40, 300} {
		x := make(Nat, n)
		for i := range x {
			x[i] = _M
		}
		want := new(big.Int).Mul(toBig(x), toBig(x))
		for _, alg := range Algorithms {
			got := Mul(x, x, alg, Thresholds{Karatsuba: minKaratsubaCutoff, FFT: 1})
			if toBig(got).Cmp(want) != 0 {
				t.Errorf("%s: (B^%d-1)^2 mismatch", alg, n)
			}
		}
	}
}

func TestThresholdsSelect(t *testing.T) {
	t.Parallel()
	th := Thresholds{Karatsuba: 10, FFT: 100}
	tests := []struct {
		name string
		x, y int
		want Algorithm
	}{
		{"small", 5, 5, Schoolbook},
		{"karatsuba", 10, 50, Karatsuba},
		{"unbalanced stays karatsuba", 1000, 20, Karatsuba},
		{"fft", 100, 100, FFT},
		{"short operand decides", 5000, 9, Schoolbook},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := th.Select(make(Nat, tt.x), make(Nat, tt.y))
			if got != tt.want {
				t.Errorf("Select(%d, %d) = %s, want %s", tt.x, tt.y, got, tt.want)
			}
		})
	}
	if got := (Thresholds{Karatsuba: 10}).Select(make(Nat, 1e5), make(Nat, 1e5)); got != Karatsuba {
		t.Errorf("disabled FFT threshold selected %s", got)
	}
}

func TestParseAlgorithm(t *testing.T) {
	t.Parallel()
	for _, alg := range append([]Algorithm{Auto}, Algorithms...) {
		got, err := ParseAlgorithm(alg.String())
		if err != nil || got != alg {
			t.Errorf("ParseAlgorithm(%q) = %v, %v", alg.String(), got, err)
		}
	}
	if _, err := ParseAlgorithm("toom3"); err == nil {
		t.Error("ParseAlgorithm(toom3) should fail")
	}
}

func TestNTTRoundTrip(t *testing.T) {
	t.Parallel()
	for _, pr := range nttPrimes {
		a := make([]uint64, 64)
		for i := range a {
			a[i] = uint64(i*i+7) % pr.p
		}
		orig := append([]uint64(nil), a...)
		ntt(a, false, pr)
		ntt(a, true, pr)
		for i := range a {
			if a[i] != orig[i] {
				t.Fatalf("prime %d: round trip differs at %d: %d != %d", pr.p, i, a[i], orig[i])
			}
		}
	}
}

func TestLimbsRoundTrip(t *testing.T) {
	t.Parallel()
	x := randNat(newRand(11), 9)
	if got := fromLimbs(toLimbs(x)); Cmp(got, x) != 0 {
		t.Errorf("fromLimbs(toLimbs(x)) = %v, want %v", got, x)
	}
}

func BenchmarkMul(b *testing.B) {
	for _, n := range []int{32, 256, 4096} {
		x, y := randNat(newRand(1), n), randNat(newRand(2), n)
		for _, alg := range Algorithms {
			b.Run(fmt.Sprintf("%s/%d", alg, n), func(b *testing.B) {
				for b.Loop() {
					Mul(x, y, alg, DefaultThresholds())
				}
			})
		}
	}
}
