package digits

import (
	"errors"
	"fmt"
	"strings"
	"sync"
)

// ErrInvalidNumeral reports a character that is not a digit of the base.
var ErrInvalidNumeral = errors.New("invalid numeral")

const digitChars = "0123456789abcdefghijklmnopqrstuvwxyz"

// maxPow returns the largest power of b that fits in a Word and its exponent.
func maxPow(b Word) (p Word, n int) {
	p, n = b, 1
	for max := _M / b; p <= max; {
		p *= b
		n++
	}
	return p, n
}

// radix caches the powers base^(chunk*2^k) used by the subquadratic
// conversions in both directions.
type radix struct {
	base   Word
	bb     Word // largest power of base fitting in a word
	chunk  int  // number of digits in bb
	mu     sync.Mutex
	powers []Nat
}

var radixes [37]*radix

func init() {
	for b := 2; b <= 36; b++ {
		bb, n := maxPow(Word(b))
		radixes[b] = &radix{base: Word(b), bb: bb, chunk: n}
	}
}

// power returns base^(chunk*2^k).
func (r *radix) power(k int) Nat {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := len(r.powers); i <= k; i++ {
		if i == 0 {
			r.powers = append(r.powers, FromWord(r.bb))
			continue
		}
		prev := r.powers[i-1]
		r.powers = append(r.powers, Mul(prev, prev, Auto, DefaultThresholds()))
	}
	return r.powers[k]
}

func checkBase(base int) {
	if base < 2 || base > 36 {
		panic(fmt.Sprintf("digits: invalid base %d", base))
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Formatting
// ─────────────────────────────────────────────────────────────────────────────

// Itoa returns the digits of x in the given base (2..36), without sign or
// prefix. Zero formats as "0".
func Itoa(x Nat, base int) string {
	checkBase(base)
	x = x.Norm()
	if len(x) == 0 {
		return "0"
	}
	var sb strings.Builder
	radixes[base].format(&sb, x, 0)
	return sb.String()
}

// format writes x padded with leading zeros to at least width digits.
func (r *radix) format(sb *strings.Builder, x Nat, width int) {
	if len(x) <= conversionSplitWords {
		s := r.formatBasic(x)
		for i := len(s); i < width; i++ {
			sb.WriteByte('0')
		}
		sb.WriteString(s)
		return
	}

	// Pick the largest cached power with at most half the words of x.
	k := 0
	for len(r.power(k+1))*2 <= len(x)+1 {
		k++
	}
	p := r.power(k)
	d := r.chunk << k
	q, rem := DivMod(x, p)
	r.format(sb, q, width-d)
	r.format(sb, rem, d)
}

// formatBasic converts x word by word through repeated division by bb.
func (r *radix) formatBasic(x Nat) string {
	if len(x) == 0 {
		return ""
	}
	buf := make([]byte, 0, len(x)*r.chunk)
	q := x.Clone()
	for len(q) > 0 {
		w := divWVW(q, 0, q, r.bb)
		q = q.Norm()
		for i := 0; i < r.chunk && (len(q) > 0 || w != 0); i++ {
			buf = append(buf, digitChars[w%r.base])
			w /= r.base
		}
	}
	for i, j := 0, len(buf)-1; i < j; i, j = i+1, j-1 {
		buf[i], buf[j] = buf[j], buf[i]
	}
	return string(buf)
}

// ─────────────────────────────────────────────────────────────────────────────
// Parsing
// ─────────────────────────────────────────────────────────────────────────────

// Parse reads an unsigned numeral in the given base (2..36). Underscores and
// signs are not accepted; an empty numeral is an error.
func Parse(s string, base int) (Nat, error) {
	checkBase(base)
	if s == "" {
		return nil, fmt.Errorf("%w: empty", ErrInvalidNumeral)
	}
	for i := 0; i < len(s); i++ {
		if digitValue(s[i]) >= base {
			return nil, fmt.Errorf("%w: %q at offset %d", ErrInvalidNumeral, s[i], i)
		}
	}
	return radixes[base].parse(s), nil
}

func digitValue(c byte) int {
	switch {
	case '0' <= c && c <= '9':
		return int(c - '0')
	case 'a' <= c && c <= 'z':
		return int(c-'a') + 10
	case 'A' <= c && c <= 'Z':
		return int(c-'A') + 10
	}
	return 99
}

// parse converts a validated numeral, splitting long inputs in two halves
// recombined by one multiplication.
func (r *radix) parse(s string) Nat {
	if len(s) <= parseSplitDigits {
		return r.parseBasic(s)
	}
	k := 0
	for r.chunk<<(k+1) < len(s) {
		k++
	}
	d := r.chunk << k
	hi := r.parse(s[:len(s)-d])
	lo := r.parse(s[len(s)-d:])
	return Add(Mul(hi, r.power(k), Auto, DefaultThresholds()), lo)
}

// parseBasic accumulates chunk digits at a time with a multiply-add.
func (r *radix) parseBasic(s string) Nat {
	var z Nat
	for len(s) > 0 {
		n := min(r.chunk, len(s))
		var w, mul Word = 0, 1
		for i := 0; i < n; i++ {
			w = w*r.base + Word(digitValue(s[i]))
			mul *= r.base
		}
		z = MulAddWord(z, mul, w)
		s = s[n:]
	}
	return z
}
