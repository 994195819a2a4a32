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

func sampleOf(k number.Kind) number.Value {
	switch k {
	case number.KindInt16:
		return number.Int16(3)
	case number.KindInt32:
		return number.Int32(3)
	case number.KindInt64:
		return number.Int64(3)
	case number.KindFloat32:
		return number.Float32(1.5)
	case number.KindFloat64:
		return number.Float64(1.5)
	case number.KindBigInt:
		return number.Big(big.NewInt(3))
	default:
		return number.Decimal(decimal.NewFromFloat(1.5))
	}
}

func zeroSampleOf(k number.Kind) number.Value {
	switch k {
	case number.KindInt16:
		return number.Int16(0)
	case number.KindInt32:
		return number.Int32(0)
	case number.KindInt64:
		return number.Int64(0)
	case number.KindFloat32:
		return number.Float32(0)
	case number.KindFloat64:
		return number.Float64(0)
	case number.KindBigInt:
		return number.Big(big.NewInt(0))
	default:
		return number.Decimal(decimal.Zero)
	}
}

var allKinds = []number.Kind{
	number.KindInt16,
	number.KindInt32,
	number.KindInt64,
	number.KindFloat32,
	number.KindFloat64,
	number.KindBigInt,
	number.KindBigDecimal,
}

func TestWideningInvariant(t *testing.T) {
	for _, k1 := range allKinds {
		for _, k2 := range allKinds {
			v, err := number.Add(sampleOf(k1), sampleOf(k2))
			require.NoError(t, err)
			expected := k1
			if k2 > k1 {
				expected = k2
			}
			assert.Equal(t, expected, v.Kind(), "add(%v, %v)", k1, k2)
		}
	}
}

func TestDivisionByZeroEveryKind(t *testing.T) {
	for _, k := range allKinds {
		_, err := number.Divide(sampleOf(k), zeroSampleOf(k))
		assert.ErrorIs(t, err, common.ErrDivisionByZero, "kind %v", k)
	}
}

func TestArithmetic(t *testing.T) {
	t.Run("integer division truncates toward zero", func(t *testing.T) {
		v, err := number.Divide(number.Int64(-7), number.Int64(2))
		require.NoError(t, err)
		assert.Equal(t, int64(-3), v.Int64())
	})

	t.Run("mixed kinds widen", func(t *testing.T) {
		v, err := number.Add(number.Int16(2), number.Float64(0.5))
		require.NoError(t, err)
		assert.Equal(t, number.KindFloat64, v.Kind())
		assert.Equal(t, 2.5, v.Float64())
	})

	t.Run("bigdecimal absorbs bigint", func(t *testing.T) {
		v, err := number.Add(number.Big(big.NewInt(1)), number.Decimal(decimal.NewFromFloat(0.5)))
		require.NoError(t, err)
		assert.Equal(t, number.KindBigDecimal, v.Kind())
		assert.Equal(t, "1.5", v.String())
	})

	t.Run("subtract", func(t *testing.T) {
		v, err := number.Subtract(number.Float32(3.5), number.Float32(1.25))
		require.NoError(t, err)
		assert.Equal(t, number.KindFloat32, v.Kind())
		assert.Equal(t, 2.25, v.Float64())
	})

	t.Run("float division never returns inf", func(t *testing.T) {
		_, err := number.Divide(number.Float64(1), number.Float64(0))
		assert.ErrorIs(t, err, common.ErrDivisionByZero)
	})
}

func TestPower(t *testing.T) {
	v, err := number.Power(number.Int64(2), number.Int64(10))
	require.NoError(t, err)
	assert.Equal(t, int64(1024), v.Int64())

	v, err = number.Power(number.Float64(3), number.Int32(2))
	require.NoError(t, err)
	assert.Equal(t, number.KindFloat64, v.Kind())
	assert.Equal(t, 9.0, v.Float64())

	_, err = number.Power(number.Int64(2), number.Int64(-1))
	assert.Error(t, err)
}

func TestSquareRoot(t *testing.T) {
	t.Run("integer root truncates", func(t *testing.T) {
		v, err := number.SquareRoot(number.Int64(10))
		require.NoError(t, err)
		assert.Equal(t, number.KindInt64, v.Kind())
		assert.Equal(t, int64(3), v.Int64())
	})

	t.Run("float root", func(t *testing.T) {
		v, err := number.SquareRoot(number.Float64(2.25))
		require.NoError(t, err)
		assert.Equal(t, 1.5, v.Float64())
	})

	t.Run("decimal root keeps the operand scale", func(t *testing.T) {
		d, derr := decimal.NewFromString("2.00")
		require.NoError(t, derr)
		v, err := number.SquareRoot(number.Decimal(d))
		require.NoError(t, err)
		assert.Equal(t, "1.41", v.String())
	})

	t.Run("bigint root", func(t *testing.T) {
		v, err := number.SquareRoot(number.Big(big.NewInt(144)))
		require.NoError(t, err)
		assert.Equal(t, "12", v.String())
	})

	t.Run("negative raises for every kind", func(t *testing.T) {
		negatives := []number.Value{
			number.Int16(-1),
			number.Int32(-1),
			number.Int64(-1),
			number.Float32(-1),
			number.Float64(-1),
			number.Big(big.NewInt(-1)),
			number.Decimal(decimal.NewFromInt(-1)),
		}
		for _, v := range negatives {
			_, err := number.SquareRoot(v)
			assert.ErrorIs(t, err, common.ErrNegativeSquareRoot, "kind %v", v.Kind())
		}
	})
}

func TestAbsentOperands(t *testing.T) {
	t.Run("absent borrows the sibling kind", func(t *testing.T) {
		v, err := number.Add(number.Value{}, number.Int32(5))
		require.NoError(t, err)
		assert.Equal(t, number.KindInt32, v.Kind())
		assert.Equal(t, int64(5), v.Int64())
	})

	t.Run("two absents fall back to float64", func(t *testing.T) {
		v, err := number.Apply(number.OpAdd, number.Value{}, number.Value{})
		require.NoError(t, err)
		assert.Equal(t, number.KindFloat64, v.Kind())
		assert.Equal(t, 0.0, v.Float64())
		assert.False(t, v.IsAbsent())
	})

	t.Run("absent subtracted contributes zero", func(t *testing.T) {
		v, err := number.Subtract(number.Int64(7), number.Value{})
		require.NoError(t, err)
		assert.Equal(t, int64(7), v.Int64())
	})
}

func TestCompare(t *testing.T) {
	assert.Equal(t, -1, number.Compare(number.Int16(1), number.Float64(1.5)))
	assert.Equal(t, 1, number.Compare(number.Big(big.NewInt(10)), number.Int64(9)))
	assert.Equal(t, 0, number.Compare(number.Int32(4), number.Int64(4)))

	// absent loses to any present value, even a very small one
	assert.Equal(t, -1, number.Compare(number.Value{}, number.Int16(-100)))
	assert.Equal(t, 1, number.Compare(number.Int16(-100), number.Value{}))
	assert.Equal(t, 0, number.Compare(number.Value{}, number.Value{}))
}
