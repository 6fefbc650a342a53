package digits

import (
	"fmt"
	"strings"
)

// Algorithm identifies a multiplication strategy.
type Algorithm uint8

const (
	// Auto selects a strategy from the operand lengths.
	Auto Algorithm = iota
	// Schoolbook is the quadratic digit-by-digit product.
	Schoolbook
	// Karatsuba is the three-multiplication divide-and-conquer product.
	Karatsuba
	// FFT is the three-prime number theoretic transform convolution.
	FFT
)

// Algorithms lists every concrete strategy, in increasing asymptotic speed.
var Algorithms = []Algorithm{Schoolbook, Karatsuba, FFT}

// String returns the lower-case name of the algorithm.
func (a Algorithm) String() string {
	switch a {
	case Auto:
		return "auto"
	case Schoolbook:
		return "schoolbook"
	case Karatsuba:
		return "karatsuba"
	case FFT:
		return "fft"
	}
	return fmt.Sprintf("algorithm(%d)", uint8(a))
}

// ParseAlgorithm maps a name produced by String back to its Algorithm.
func ParseAlgorithm(s string) (Algorithm, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "auto", "":
		return Auto, nil
	case "schoolbook", "basic":
		return Schoolbook, nil
	case "karatsuba":
		return Karatsuba, nil
	case "fft", "ntt", "pollard":
		return FFT, nil
	}
	return Auto, fmt.Errorf("unknown multiplication algorithm %q", s)
}

// Thresholds holds the operand lengths, in words, at which Auto switches
// strategy. A non-positive FFT threshold disables the transform.
type Thresholds struct {
	Karatsuba int
	FFT       int
}

// DefaultThresholds returns the built-in dispatch thresholds.
func DefaultThresholds() Thresholds {
	return Thresholds{Karatsuba: DefaultKaratsubaThreshold, FFT: DefaultFFTThreshold}
}

// Select returns the strategy Auto would run for operands x and y.
// The decision uses the shorter operand, since both Karatsuba and the
// transform only pay off when the two lengths are comparable.
func (t Thresholds) Select(x, y Nat) Algorithm {
	n := min(len(x), len(y))
	switch {
	case t.FFT > 0 && n >= t.FFT:
		return FFT
	case t.Karatsuba > 0 && n >= t.Karatsuba:
		return Karatsuba
	default:
		return Schoolbook
	}
}

// Mul returns x*y computed with alg. Auto resolves through t.
func Mul(x, y Nat, alg Algorithm, t Thresholds) Nat {
	x, y = x.Norm(), y.Norm()
	if len(x) == 0 || len(y) == 0 {
		return nil
	}
	if alg == Auto {
		alg = t.Select(x, y)
	}
	switch alg {
	case Karatsuba:
		return MulKaratsuba(x, y, t.Karatsuba)
	case FFT:
		return MulFFT(x, y)
	default:
		return MulBasic(x, y)
	}
}

// Sqr returns x*x.
func Sqr(x Nat, alg Algorithm, t Thresholds) Nat {
	return Mul(x, x, alg, t)
}

// MulBasic returns x*y using schoolbook multiplication.
func MulBasic(x, y Nat) Nat {
	x, y = x.Norm(), y.Norm()
	if len(x) == 0 || len(y) == 0 {
		return nil
	}
	z := make(Nat, len(x)+len(y))
	mulBasicInto(z, x, y)
	return z.Norm()
}

// mulBasicInto accumulates x*y into a zeroed z of length len(x)+len(y).
func mulBasicInto(z, x, y []Word) {
	for i, yi := range y {
		if yi != 0 {
			z[len(x)+i] = addMulVVW(z[i:i+len(x)], x, yi)
		}
	}
}

// MulKaratsuba returns x*y using Karatsuba multiplication. Operands whose
// shorter side is below cutoff words are multiplied by the schoolbook
// method; cutoff is raised to the smallest value for which the recursion
// terminates.
func MulKaratsuba(x, y Nat, cutoff int) Nat {
	return karatsuba(x.Norm(), y.Norm(), max(cutoff, minKaratsubaCutoff), MulBasic)
}

// karatsuba multiplies x and y, delegating products whose shorter operand
// is below cutoff to leaf.
func karatsuba(x, y Nat, cutoff int, leaf func(x, y Nat) Nat) Nat {
	if len(x) < len(y) {
		x, y = y, x
	}
	n := len(y)
	if n == 0 {
		return nil
	}
	if n < cutoff {
		return leaf(x, y)
	}

	z := make(Nat, len(x)+len(y))

	// Unbalanced operands: multiply n-word slices of x by y.
	if len(x) >= 2*n {
		for i := 0; i < len(x); i += n {
			j := min(i+n, len(x))
			addAt(z, karatsuba(x[i:j].Norm(), y, cutoff, leaf), i)
		}
		return z.Norm()
	}

	// x = x1*B^h + x0, y = y1*B^h + y0
	h := (len(x) + 1) / 2
	x0, x1 := x[:h].Norm(), x[h:]
	y0, y1 := y[:min(h, n)].Norm(), Nat(nil)
	if h < n {
		y1 = y[h:]
	}

	z0 := karatsuba(x0, y0, cutoff, leaf)
	z2 := karatsuba(x1, y1, cutoff, leaf)

	sx := acquireWords(h + 1)
	sy := acquireWords(h + 1)
	defer releaseWords(sx)
	defer releaseWords(sy)
	sumInto(sx, x0, x1)
	sumInto(sy, y0, y1)

	// z1 = (x0+x1)(y0+y1) - z0 - z2
	z1 := karatsuba(Nat(sx).Norm(), Nat(sy).Norm(), cutoff, leaf)
	z1 = Sub(Sub(z1, z0), z2)

	addAt(z, z0, 0)
	addAt(z, z1, h)
	addAt(z, z2, 2*h)
	return z.Norm()
}

// sumInto stores a + b into z, which must have room for the carry word.
func sumInto(z []Word, a, b Nat) {
	if len(a) < len(b) {
		a, b = b, a
	}
	copy(z, a)
	addAt(z, b, 0)
}
