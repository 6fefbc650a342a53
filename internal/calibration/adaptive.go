// This file generates the operand lengths sampled by calibration.

package calibration

import (
	"runtime"

	"github.com/agbru/algebra/internal/config"
)

// ─────────────────────────────────────────────────────────────────────────────
// Karatsuba Candidates
// ─────────────────────────────────────────────────────────────────────────────

// GenerateKaratsubaCandidates returns the operand lengths, in words, sampled
// for the schoolbook/Karatsuba crossover. On 32-bit platforms the same bit
// sizes need twice as many words.
func GenerateKaratsubaCandidates() []int {
	c := []int{8, 12, 16, 20, 24, 32, 40, 48, 56, 64, 80, 96}
	if wordBits() == 32 {
		return scale(c, 2)
	}
	return c
}

// GenerateQuickKaratsubaCandidates returns a reduced set for the startup
// search.
func GenerateQuickKaratsubaCandidates() []int {
	c := []int{16, 32, 48, 64}
	if wordBits() == 32 {
		return scale(c, 2)
	}
	return c
}

// ─────────────────────────────────────────────────────────────────────────────
// Transform Candidates
// ─────────────────────────────────────────────────────────────────────────────

// GenerateFFTCandidates returns the operand lengths sampled for the
// Karatsuba/transform crossover. Machines with many cores get a longer
// tail since they tend to have larger caches that favour Karatsuba.
func GenerateFFTCandidates() []int {
	c := []int{500, 750, 1000, 1500, 2000, 2500, 3000, 4000}
	if runtime.NumCPU() >= 16 {
		c = append(c, 6000, 8000)
	}
	return c
}

// GenerateQuickFFTCandidates returns a reduced set for the startup search.
func GenerateQuickFFTCandidates() []int {
	return []int{1000, 2000, 3000}
}

// ─────────────────────────────────────────────────────────────────────────────
// Threshold Estimation (without benchmarking)
// Delegates to config.Estimate*; canonical implementations live there.
// ─────────────────────────────────────────────────────────────────────────────

// EstimateKaratsubaThreshold delegates to config.EstimateKaratsubaThreshold.
func EstimateKaratsubaThreshold() int { return config.EstimateKaratsubaThreshold() }

// EstimateFFTThreshold delegates to config.EstimateFFTThreshold.
func EstimateFFTThreshold() int { return config.EstimateFFTThreshold() }

func scale(c []int, f int) []int {
	out := make([]int, len(c))
	for i, v := range c {
		out[i] = v * f
	}
	return out
}

func wordBits() int { return 32 << (^uint(0) >> 63) }
