package digits

// ─────────────────────────────────────────────────────────────────────────────
// Multiplication Thresholds
// ─────────────────────────────────────────────────────────────────────────────

const (
	// DefaultKaratsubaThreshold is the operand length, in words, from which
	// Karatsuba replaces schoolbook multiplication. It is also the leaf size
	// of the Karatsuba recursion.
	DefaultKaratsubaThreshold = 40

	// DefaultFFTThreshold is the operand length, in words, from which the
	// number theoretic transform replaces Karatsuba.
	DefaultFFTThreshold = 2500

	// minKaratsubaCutoff is the smallest leaf size for which the Karatsuba
	// recursion is guaranteed to shrink its operands.
	minKaratsubaCutoff = 4
)

// ─────────────────────────────────────────────────────────────────────────────
// Number Theoretic Transform Limits
// ─────────────────────────────────────────────────────────────────────────────

const (
	// maxNTTLimbs bounds the 32-bit limb count of the shorter operand so
	// every convolution sum stays below the product of the three primes.
	maxNTTLimbs = 1 << 21

	// maxFFTWords is maxNTTLimbs expressed in words.
	maxFFTWords = maxNTTLimbs / limbsPerWord
)

// ─────────────────────────────────────────────────────────────────────────────
// Radix Conversion
// ─────────────────────────────────────────────────────────────────────────────

const (
	// conversionSplitWords is the magnitude length above which Itoa splits
	// the value by a power of the base instead of dividing word by word.
	conversionSplitWords = 64

	// parseSplitDigits is the numeral length above which Parse recombines
	// both halves with a single multiplication.
	parseSplitDigits = 1200
)
