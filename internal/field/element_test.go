package field_test

import (
	"math/big"
	"testing"

	"github.com/agbru/algebra/internal/bigint"
	apperrors "github.com/agbru/algebra/internal/errors"
	"github.com/agbru/algebra/internal/field"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestZeroValueAndOne(t *testing.T) {
	t.Parallel()
	var z field.Element
	assert.True(t, z.IsZero())
	assert.True(t, z.One().IsOne())
	assert.Equal(t, "0", z.String())
}

func TestArithmetic(t *testing.T) {
	t.Parallel()
	a, b := field.New(7), field.New(5)
	assert.True(t, a.Add(b).Equal(field.New(12)))
	assert.True(t, a.Sub(b).Equal(field.New(2)))
	assert.True(t, a.Mul(b).Equal(field.New(35)))
	assert.True(t, a.MulInt64(-1).Equal(a.Neg()))
	assert.True(t, a.Add(a.Neg()).IsZero())
}

func TestNegativeWrapsToModulus(t *testing.T) {
	t.Parallel()
	minusOne := field.New(-1)
	want := new(big.Int).Sub(field.Modulus(), big.NewInt(1))
	assert.Equal(t, want.String(), minusOne.String())
	assert.True(t, minusOne.Neg().IsOne())
}

func TestQuoRemIsExact(t *testing.T) {
	t.Parallel()
	q, r, err := field.New(3).QuoRem(field.New(2))
	require.NoError(t, err)
	assert.True(t, r.IsZero())
	assert.True(t, q.Mul(field.New(2)).Equal(field.New(3)))

	_, _, err = field.New(3).QuoRem(field.Element{})
	assert.ErrorIs(t, err, apperrors.ErrDivisionByZero)
}

func TestParseAndInt(t *testing.T) {
	t.Parallel()
	e, err := field.Parse("123456789012345678901234567890")
	require.NoError(t, err)
	assert.Equal(t, "123456789012345678901234567890", e.Int().String())

	over := bigint.FromBig(field.Modulus()).Add(bigint.FromInt64(4))
	assert.True(t, field.FromInt(over).Equal(field.New(4)))

	_, err = field.Parse("not a number")
	var pe apperrors.ParseError
	assert.ErrorAs(t, err, &pe)
}

func TestBinaryRoundTrip(t *testing.T) {
	t.Parallel()
	x := field.New(-42)
	data, err := x.MarshalBinary()
	require.NoError(t, err)

	var y field.Element
	require.NoError(t, y.UnmarshalBinary(data))
	assert.True(t, x.Equal(y))

	keep := field.New(9)
	assert.Error(t, keep.UnmarshalBinary(data[1:]))
	assert.True(t, keep.Equal(field.New(9)))
}
