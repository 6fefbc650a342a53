package poly

import (
	"bytes"
	"encoding"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
)

// ErrNotBinary reports a coefficient type without a binary encoding.
var ErrNotBinary = errors.New("poly: coefficient type has no binary encoding")

// maxPrealloc bounds the term slice allocated from an untrusted count.
const maxPrealloc = 1 << 12

// maxCoefBytes bounds a single encoded coefficient.
const maxCoefBytes = 1 << 30

// WriteBinary writes p in a self-delimiting form: a uvarint term count, then
// for each term in ascending degree a uvarint length, the coefficient's
// MarshalBinary bytes and a varint degree.
func (p Poly[F, I]) WriteBinary(w io.Writer) error {
	buf := binary.AppendUvarint(nil, uint64(len(p.terms)))
	for _, m := range p.terms {
		enc, ok := any(m.Coef).(encoding.BinaryMarshaler)
		if !ok {
			return ErrNotBinary
		}
		b, err := enc.MarshalBinary()
		if err != nil {
			return err
		}
		buf = binary.AppendUvarint(buf, uint64(len(b)))
		buf = append(buf, b...)
		buf = binary.AppendVarint(buf, int64(m.Deg))
	}
	_, err := w.Write(buf)
	return err
}

// byteReader reads single bytes without buffering ahead, so that decoding
// consumes exactly one encoded polynomial from r.
type byteReader struct {
	io.Reader
}

func (r byteReader) ReadByte() (byte, error) {
	var b [1]byte
	_, err := io.ReadFull(r.Reader, b[:])
	return b[0], err
}

// ReadBinary replaces p with a polynomial read in the WriteBinary form. The
// terms are collected in a temporary buffer and normalized before being
// committed, so p is unchanged when reading fails at any point.
func (p *Poly[F, I]) ReadBinary(r io.Reader) error {
	br, ok := r.(io.ByteReader)
	if !ok {
		br = byteReader{r}
	}
	n, err := binary.ReadUvarint(br)
	if err != nil {
		return fmt.Errorf("poly: reading size: %w", noEOF(err))
	}
	terms := make([]Monomial[F, I], 0, min(n, maxPrealloc))
	for i := uint64(0); i < n; i++ {
		m, err := readMonomial[F, I](r, br)
		if err != nil {
			return fmt.Errorf("poly: reading term %d of %d: %w", i, n, err)
		}
		terms = append(terms, m)
	}
	tmp := Poly[F, I]{terms: terms}
	tmp.normalizeOwned()
	*p = tmp
	return nil
}

func readMonomial[F Scalar[F], I Degree](r io.Reader, br io.ByteReader) (Monomial[F, I], error) {
	var m Monomial[F, I]
	dec, ok := any(&m.Coef).(encoding.BinaryUnmarshaler)
	if !ok {
		return m, ErrNotBinary
	}
	size, err := binary.ReadUvarint(br)
	if err != nil {
		return m, noEOF(err)
	}
	if size > maxCoefBytes {
		return m, fmt.Errorf("coefficient of %d bytes exceeds limit", size)
	}
	var coef bytes.Buffer
	if _, err := io.CopyN(&coef, r, int64(size)); err != nil {
		return m, noEOF(err)
	}
	if err := dec.UnmarshalBinary(coef.Bytes()); err != nil {
		return m, err
	}
	d, err := binary.ReadVarint(br)
	if err != nil {
		return m, noEOF(err)
	}
	if int64(I(d)) != d {
		return m, fmt.Errorf("degree %d out of range", d)
	}
	m.Deg = I(d)
	return m, nil
}

// noEOF turns a clean EOF inside an encoding into io.ErrUnexpectedEOF.
func noEOF(err error) error {
	if errors.Is(err, io.EOF) {
		return io.ErrUnexpectedEOF
	}
	return err
}

// MarshalBinary returns the WriteBinary form of p.
func (p Poly[F, I]) MarshalBinary() ([]byte, error) {
	var buf bytes.Buffer
	if err := p.WriteBinary(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// UnmarshalBinary decodes data produced by MarshalBinary. Trailing bytes are
// an error. p is unchanged on error.
func (p *Poly[F, I]) UnmarshalBinary(data []byte) error {
	r := bytes.NewReader(data)
	var tmp Poly[F, I]
	if err := tmp.ReadBinary(r); err != nil {
		return err
	}
	if r.Len() != 0 {
		return fmt.Errorf("poly: %d trailing bytes", r.Len())
	}
	*p = tmp
	return nil
}
