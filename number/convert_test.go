package number_test

import (
	"math/big"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sift/common"
	"sift/number"
)

func TestClassify(t *testing.T) {
	cases := []struct {
		in   any
		kind number.Kind
	}{
		{int16(1), number.KindInt16},
		{int32(1), number.KindInt32},
		{1, number.KindInt64},
		{int64(1), number.KindInt64},
		{float32(1), number.KindFloat32},
		{1.0, number.KindFloat64},
		{big.NewInt(1), number.KindBigInt},
		{decimal.NewFromInt(1), number.KindBigDecimal},
	}
	for _, c := range cases {
		v, err := number.Of(c.in)
		require.NoError(t, err)
		assert.Equal(t, c.kind, v.Kind(), "%T", c.in)
	}

	// a value that fits no kind is rejected, not guessed at
	_, err := number.Of("12")
	assert.ErrorIs(t, err, common.ErrUnsupportedValue)
	_, err = number.Of(uint8(1))
	assert.ErrorIs(t, err, common.ErrUnsupportedValue)
}

func TestConvert(t *testing.T) {
	t.Run("narrowing truncates toward zero", func(t *testing.T) {
		v := number.Convert(number.Float64(-3.9), number.KindInt32)
		assert.Equal(t, number.KindInt32, v.Kind())
		assert.Equal(t, int64(-3), v.Int64())
	})

	t.Run("into big kinds is exact", func(t *testing.T) {
		v := number.Convert(number.Int64(12345), number.KindBigInt)
		assert.Equal(t, "12345", v.String())

		v = number.Convert(number.Float64(2.5), number.KindBigDecimal)
		assert.Equal(t, "2.5", v.String())
	})

	t.Run("fractional into bigint truncates", func(t *testing.T) {
		v := number.Convert(number.Float64(2.9), number.KindBigInt)
		assert.Equal(t, "2", v.String())
	})

	t.Run("absent stays absent", func(t *testing.T) {
		v := number.Convert(number.Value{}, number.KindFloat64)
		assert.True(t, v.IsAbsent())
	})
}

func TestParse(t *testing.T) {
	v, err := number.Parse("-42", number.KindInt16)
	require.NoError(t, err)
	assert.Equal(t, int64(-42), v.Int64())

	v, err = number.Parse("3.25", number.KindFloat64)
	require.NoError(t, err)
	assert.Equal(t, 3.25, v.Float64())

	v, err = number.Parse("123456789012345678901234567890", number.KindBigInt)
	require.NoError(t, err)
	assert.Equal(t, "123456789012345678901234567890", v.String())

	v, err = number.Parse("12.50", number.KindBigDecimal)
	require.NoError(t, err)
	assert.Equal(t, number.KindBigDecimal, v.Kind())

	// malformed text raises, it is never coerced to zero
	_, err = number.Parse("abc", number.KindFloat64)
	assert.ErrorIs(t, err, common.ErrMalformedNumber)
	_, err = number.Parse("99999", number.KindInt16)
	assert.ErrorIs(t, err, common.ErrMalformedNumber)
	_, err = number.Parse("1.5", number.KindInt64)
	assert.ErrorIs(t, err, common.ErrMalformedNumber)
}
