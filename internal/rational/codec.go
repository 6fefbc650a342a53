package rational

import (
	"encoding/binary"
	"fmt"

	"github.com/agbru/algebra/internal/bigint"
)

// MarshalText implements encoding.TextMarshaler.
func (x Rat) MarshalText() ([]byte, error) { return []byte(x.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler. x is left unchanged on
// error.
func (x *Rat) UnmarshalText(text []byte) error {
	r, err := Parse(string(text))
	if err != nil {
		return err
	}
	*x = r
	return nil
}

// MarshalBinary writes the numerator and denominator, each as a uvarint
// length followed by its bigint binary form.
func (x Rat) MarshalBinary() ([]byte, error) {
	var out []byte
	for _, part := range []bigint.Int{x.num, x.denom()} {
		b, err := part.MarshalBinary()
		if err != nil {
			return nil, err
		}
		out = binary.AppendUvarint(out, uint64(len(b)))
		out = append(out, b...)
	}
	return out, nil
}

// UnmarshalBinary decodes the MarshalBinary form. x is left unchanged on
// error.
func (x *Rat) UnmarshalBinary(data []byte) error {
	var parts [2]bigint.Int
	for i := range parts {
		n, k := binary.Uvarint(data)
		if k <= 0 || uint64(len(data)-k) < n {
			return bigint.ErrShortBuffer
		}
		if err := parts[i].UnmarshalBinary(data[k : k+int(n)]); err != nil {
			return err
		}
		data = data[k+int(n):]
	}
	if len(data) != 0 {
		return fmt.Errorf("rational: %d trailing bytes", len(data))
	}
	r, err := New(parts[0], parts[1])
	if err != nil {
		return err
	}
	*x = r
	return nil
}
