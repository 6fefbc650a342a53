package bigint

import (
	"crypto/rand"
	"fmt"
	"io"

	"golang.org/x/crypto/blake2b"

	apperrors "github.com/agbru/algebra/internal/errors"
)

// Random returns a uniformly chosen non-negative Int of exactly bits bits
// (the top bit is always set). A nil reader uses crypto/rand.
func Random(r io.Reader, bits int) (Int, error) {
	if bits <= 0 {
		return Int{}, nil
	}
	x, err := RandomAtMost(r, bits)
	if err != nil {
		return Int{}, err
	}
	top := FromInt64(1).Lsh(uint(bits - 1))
	return x.Or(top), nil
}

// RandomAtMost returns a uniformly chosen Int in [0, 2^bits). A nil reader
// uses crypto/rand.
func RandomAtMost(r io.Reader, bits int) (Int, error) {
	if bits <= 0 {
		return Int{}, nil
	}
	if r == nil {
		r = rand.Reader
	}
	buf := make([]byte, (bits+7)/8)
	if _, err := io.ReadFull(r, buf); err != nil {
		return Int{}, apperrors.WrapError(err, "bigint.RandomAtMost")
	}
	// Clear the excess high bits of the leading byte.
	if excess := len(buf)*8 - bits; excess > 0 {
		buf[0] &= 0xff >> excess
	}
	return SetBytes(buf), nil
}

// RandomBelow returns a uniformly chosen Int in [0, n) by rejection
// sampling. n must be positive.
func RandomBelow(r io.Reader, n Int) (Int, error) {
	if n.Sign() <= 0 {
		return Int{}, apperrors.ValidationError{Field: "n", Message: "upper bound must be positive"}
	}
	bits := n.Sub(FromInt64(1)).BitLen()
	for {
		x, err := RandomAtMost(r, bits)
		if err != nil {
			return Int{}, err
		}
		if x.Cmp(n) < 0 {
			return x, nil
		}
	}
}

// NewSeededReader returns a deterministic byte stream derived from seed by
// the BLAKE2b extendable output function. Equal seeds give equal streams,
// which makes randomized tests and benchmarks reproducible.
func NewSeededReader(seed []byte) (io.Reader, error) {
	xof, err := blake2b.NewXOF(blake2b.OutputLengthUnknown, nil)
	if err != nil {
		return nil, fmt.Errorf("bigint: seeding xof: %w", err)
	}
	if _, err := xof.Write(seed); err != nil {
		return nil, fmt.Errorf("bigint: seeding xof: %w", err)
	}
	return xof, nil
}
