package bigint

import "github.com/agbru/algebra/internal/digits"

// Bit returns bit i of |x|.
func (x Int) Bit(i uint) uint { return digits.Bit(x.abs, i) }

// BitLen returns the number of bits in |x|; BitLen of zero is 0.
func (x Int) BitLen() int { return digits.BitLen(x.abs) }

// TrailingZeroBits returns the number of trailing zero bits of |x|.
func (x Int) TrailingZeroBits() uint { return digits.TrailingZeroBits(x.abs) }

// IsOdd reports whether x is odd.
func (x Int) IsOdd() bool { return x.Bit(0) == 1 }

// IsEven reports whether x is even.
func (x Int) IsEven() bool { return x.Bit(0) == 0 }

// Lsh returns x shifted left by n bits, keeping the sign: x * 2^n.
func (x Int) Lsh(n uint) Int { return makeInt(x.neg, digits.Shl(x.abs, n)) }

// Rsh shifts the magnitude of x right by n bits and keeps the sign, so the
// result is x / 2^n truncated toward zero. Shifting past BitLen yields zero.
func (x Int) Rsh(n uint) Int { return makeInt(x.neg, digits.Shr(x.abs, n)) }

// And returns the conjunction of the magnitudes; the result is negative
// when both operands are.
func (x Int) And(y Int) Int { return makeInt(x.neg && y.neg, digits.And(x.abs, y.abs)) }

// Or returns the disjunction of the magnitudes; the result is negative when
// either operand is.
func (x Int) Or(y Int) Int { return makeInt(x.neg || y.neg, digits.Or(x.abs, y.abs)) }

// Xor returns the exclusive or of the magnitudes; the result is negative
// when exactly one operand is.
func (x Int) Xor(y Int) Int { return makeInt(x.neg != y.neg, digits.Xor(x.abs, y.abs)) }
