package config

import (
	"runtime"

	"golang.org/x/sys/cpu"

	"github.com/agbru/algebra/internal/digits"
)

// Threshold resolution chain (highest priority first):
//   1. CLI flags (--karatsuba-threshold, --fft-threshold)
//   2. Environment variables (ALGEBRA_KARATSUBA_THRESHOLD, ...)
//   3. Cached calibration profile (~/.algebra_calibration.json)
//   4. Hardware estimation (this file)
//   5. Static defaults in digits/constants.go

// ApplyAdaptiveThresholds fills every zero threshold with a hardware
// estimate, leaving explicit values untouched.
func ApplyAdaptiveThresholds(cfg AppConfig) AppConfig {
	if cfg.KaratsubaThreshold == 0 {
		cfg.KaratsubaThreshold = EstimateKaratsubaThreshold()
	}
	if cfg.FFTThreshold == 0 {
		cfg.FFTThreshold = EstimateFFTThreshold()
	}
	return cfg
}

// EstimateKaratsubaThreshold guesses the schoolbook/Karatsuba crossover in
// words. Fast 64x64 multipliers (BMI2/ADX on amd64, the arm64 UMULH path)
// make schoolbook competitive for longer operands.
func EstimateKaratsubaThreshold() int {
	switch {
	case wordBits() == 32:
		return 24
	case runtime.GOARCH == "amd64" && cpu.X86.HasBMI2 && cpu.X86.HasADX:
		return 48
	case runtime.GOARCH == "arm64" && cpu.ARM64.HasASIMD:
		return 44
	}
	return digits.DefaultKaratsubaThreshold
}

// EstimateFFTThreshold guesses the Karatsuba/transform crossover in words.
// The transform works on 32-bit limbs, so narrow words reach it sooner and
// vector units lengthen the stretch where Karatsuba still wins.
func EstimateFFTThreshold() int {
	switch {
	case wordBits() == 32:
		return 1500
	case runtime.GOARCH == "amd64" && cpu.X86.HasAVX2:
		return 3000
	}
	return digits.DefaultFFTThreshold
}

func wordBits() int { return 32 << (^uint(0) >> 63) }
