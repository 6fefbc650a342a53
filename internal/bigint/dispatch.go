package bigint

import (
	"sync/atomic"
	"time"

	"github.com/agbru/algebra/internal/digits"
)

// Algorithm identifies a multiplication strategy.
type Algorithm = digits.Algorithm

// Thresholds holds the word lengths at which automatic dispatch moves from
// schoolbook to Karatsuba and from Karatsuba to the transform.
type Thresholds = digits.Thresholds

// Multiplication strategies accepted by MulWith.
const (
	Auto       = digits.Auto
	Schoolbook = digits.Schoolbook
	Karatsuba  = digits.Karatsuba
	FFT        = digits.FFT
)

// ParseAlgorithm maps an algorithm name to its Algorithm.
func ParseAlgorithm(s string) (Algorithm, error) { return digits.ParseAlgorithm(s) }

// MulObserver is notified after every multiplication with the strategy that
// ran, the length of the shorter operand in words and the elapsed time.
type MulObserver interface {
	ObserveMul(alg Algorithm, words int, elapsed time.Duration)
}

var (
	activeThresholds atomic.Pointer[Thresholds]
	activeObserver   atomic.Pointer[observerBox]
)

type observerBox struct{ o MulObserver }

func init() {
	t := digits.DefaultThresholds()
	activeThresholds.Store(&t)
}

// SetThresholds replaces the dispatch thresholds used by Mul. Values below
// one disable the corresponding step. It is safe for concurrent use.
func SetThresholds(t Thresholds) {
	activeThresholds.Store(&t)
}

// CurrentThresholds returns the dispatch thresholds in effect.
func CurrentThresholds() Thresholds { return *activeThresholds.Load() }

// SetMulObserver installs o as the multiplication observer. A nil o removes it.
func SetMulObserver(o MulObserver) {
	if o == nil {
		activeObserver.Store(nil)
		return
	}
	activeObserver.Store(&observerBox{o: o})
}

// SelectAlgorithm returns the strategy Mul would use for x*y.
func SelectAlgorithm(x, y Int) Algorithm {
	return CurrentThresholds().Select(x.abs, y.abs)
}

// mulNat multiplies magnitudes with alg, resolving Auto and reporting to the
// observer.
func mulNat(x, y digits.Nat, alg Algorithm) digits.Nat {
	t := CurrentThresholds()
	if alg == Auto {
		alg = t.Select(x, y)
	}
	box := activeObserver.Load()
	if box == nil {
		return digits.Mul(x, y, alg, t)
	}
	start := time.Now()
	z := digits.Mul(x, y, alg, t)
	box.o.ObserveMul(alg, min(len(x), len(y)), time.Since(start))
	return z
}
