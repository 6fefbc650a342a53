package bigint

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/agbru/algebra/internal/digits"
	apperrors "github.com/agbru/algebra/internal/errors"
)

// ─────────────────────────────────────────────────────────────────────────────
// Built-in types
// ─────────────────────────────────────────────────────────────────────────────

// IsInt64 reports whether x is representable as an int64.
func (x Int) IsInt64() bool {
	n := x.BitLen()
	if n <= 63 {
		return true
	}
	// -2^63 is the only 64-bit magnitude that fits.
	return x.neg && n == 64 && x.TrailingZeroBits() == 63
}

// IsUint64 reports whether x is representable as a uint64.
func (x Int) IsUint64() bool { return !x.neg && x.BitLen() <= 64 }

// Int64 returns x truncated to its low 64 bits in two's complement.
func (x Int) Int64() int64 {
	v := int64(x.abs.Uint64())
	if x.neg {
		return -v
	}
	return v
}

// Uint64 returns the low 64 bits of |x|.
func (x Int) Uint64() uint64 { return x.abs.Uint64() }

// Float64 returns x as a float64, truncating bits below the 53-bit
// mantissa toward zero. Values beyond the float64 range become ±Inf.
func (x Int) Float64() float64 {
	n := x.BitLen()
	var f float64
	if n <= 53 {
		f = float64(x.abs.Uint64())
	} else {
		top := digits.Shr(x.abs, uint(n-53)).Uint64()
		f = math.Ldexp(float64(top), n-53)
	}
	if x.neg {
		return -f
	}
	return f
}

// ─────────────────────────────────────────────────────────────────────────────
// Text
// ─────────────────────────────────────────────────────────────────────────────

// String returns the decimal representation of x.
func (x Int) String() string { return x.Text(10) }

// Text returns x in the given base (2..36) with a leading '-' if negative.
func (x Int) Text(base int) string {
	s := digits.Itoa(x.abs, base)
	if x.neg {
		return "-" + s
	}
	return s
}

// Parse reads an optionally signed decimal numeral. Any other input fails
// with a ParseError carrying s.
func Parse(s string) (Int, error) {
	return parse(s, 10)
}

// ParseBase reads an optionally signed numeral in the given base. Base 0
// selects the base from a 0x, 0o or 0b prefix, defaulting to decimal.
func ParseBase(s string, base int) (Int, error) {
	if base != 0 && (base < 2 || base > 36) {
		return Int{}, apperrors.NewParseError("integer", s, fmt.Errorf("invalid base %d", base))
	}
	return parse(s, base)
}

// MustParse is like Parse but panics on malformed input. It is intended for
// constants in tests and tables.
func MustParse(s string) Int {
	x, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return x
}

func parse(s string, base int) (Int, error) {
	body := s
	neg := false
	if len(body) > 0 && (body[0] == '+' || body[0] == '-') {
		neg = body[0] == '-'
		body = body[1:]
	}
	if base == 0 {
		base = 10
		if len(body) > 2 && body[0] == '0' {
			switch body[1] {
			case 'x', 'X':
				base, body = 16, body[2:]
			case 'o', 'O':
				base, body = 8, body[2:]
			case 'b', 'B':
				base, body = 2, body[2:]
			}
		}
	}
	abs, err := digits.Parse(body, base)
	if err != nil {
		return Int{}, apperrors.NewParseError("integer", s, err)
	}
	return makeInt(neg, abs), nil
}

// Format implements fmt.Formatter. It accepts the verbs b, o, d, x, X, s
// and v, the '+' and '#' flags, and width with '-' and '0' padding.
func (x Int) Format(f fmt.State, verb rune) {
	base := 10
	prefix := ""
	switch verb {
	case 'b':
		base, prefix = 2, "0b"
	case 'o':
		base, prefix = 8, "0o"
	case 'x', 'X':
		base, prefix = 16, "0x"
	case 'd', 's', 'v':
	default:
		fmt.Fprintf(f, "%%!%c(bigint.Int=%s)", verb, x.String())
		return
	}

	body := digits.Itoa(x.abs, base)
	if verb == 'X' {
		body = strings.ToUpper(body)
		prefix = "0X"
	}
	if !f.Flag('#') {
		prefix = ""
	}
	sign := ""
	switch {
	case x.neg:
		sign = "-"
	case f.Flag('+'):
		sign = "+"
	}

	width, hasWidth := f.Width()
	pad := 0
	if hasWidth {
		pad = width - len(sign) - len(prefix) - len(body)
	}
	switch {
	case pad <= 0:
		fmt.Fprint(f, sign, prefix, body)
	case f.Flag('-'):
		fmt.Fprint(f, sign, prefix, body, strings.Repeat(" ", pad))
	case f.Flag('0'):
		fmt.Fprint(f, sign, prefix, strings.Repeat("0", pad), body)
	default:
		fmt.Fprint(f, strings.Repeat(" ", pad), sign, prefix, body)
	}
}

// MarshalText implements encoding.TextMarshaler with the decimal form.
func (x Int) MarshalText() ([]byte, error) { return []byte(x.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (x *Int) UnmarshalText(text []byte) error {
	v, err := Parse(string(text))
	if err != nil {
		return err
	}
	*x = v
	return nil
}

// ─────────────────────────────────────────────────────────────────────────────
// Binary
// ─────────────────────────────────────────────────────────────────────────────

// ErrShortBuffer reports a binary encoding that ends early.
var ErrShortBuffer = errors.New("bigint: short binary encoding")

// Bytes returns the big-endian bytes of |x| without leading zeros.
func (x Int) Bytes() []byte {
	const wordBytes = digits.WordBits / 8
	buf := make([]byte, len(x.abs)*wordBytes)
	for i, w := range x.abs {
		off := len(buf) - (i+1)*wordBytes
		if wordBytes == 8 {
			binary.BigEndian.PutUint64(buf[off:], uint64(w))
		} else {
			binary.BigEndian.PutUint32(buf[off:], uint32(w))
		}
	}
	i := 0
	for i < len(buf) && buf[i] == 0 {
		i++
	}
	return buf[i:]
}

// SetBytes returns the non-negative Int whose big-endian bytes are b.
func SetBytes(b []byte) Int {
	const wordBytes = digits.WordBits / 8
	abs := make(digits.Nat, (len(b)+wordBytes-1)/wordBytes)
	for i := range b {
		// byte i from the end goes into word i/wordBytes
		k := len(b) - 1 - i
		abs[k/wordBytes] |= digits.Word(b[i]) << (8 * uint(k%wordBytes))
	}
	return makeInt(false, abs)
}

// MarshalBinary encodes x as a sign byte (0 or 1), a uvarint byte count and
// the big-endian magnitude.
func (x Int) MarshalBinary() ([]byte, error) {
	mag := x.Bytes()
	out := make([]byte, 0, 1+binary.MaxVarintLen64+len(mag))
	var sign byte
	if x.neg {
		sign = 1
	}
	out = append(out, sign)
	out = binary.AppendUvarint(out, uint64(len(mag)))
	return append(out, mag...), nil
}

// UnmarshalBinary decodes the MarshalBinary form. x is left unchanged on error.
func (x *Int) UnmarshalBinary(data []byte) error {
	if len(data) < 1 {
		return ErrShortBuffer
	}
	if data[0] > 1 {
		return fmt.Errorf("bigint: invalid sign byte %d", data[0])
	}
	n, k := binary.Uvarint(data[1:])
	if k <= 0 {
		return ErrShortBuffer
	}
	rest := data[1+k:]
	if uint64(len(rest)) != n {
		return ErrShortBuffer
	}
	v := SetBytes(rest)
	*x = makeInt(data[0] == 1, v.abs)
	return nil
}
