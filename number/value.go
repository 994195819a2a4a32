package number

import (
	"math/big"
	"strconv"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"

	"sift/common"
)

// Value is a numeric value tagged with its Kind. The zero Value is absent:
// it carries no number at all, which is distinct from any kind's zero.
type Value struct {
	kind Kind
	i    int64
	f    float64
	bi   *big.Int
	dec  decimal.Decimal
}

func Int16(v int16) Value {
	return Value{kind: KindInt16, i: int64(v)}
}

func Int32(v int32) Value {
	return Value{kind: KindInt32, i: int64(v)}
}

func Int64(v int64) Value {
	return Value{kind: KindInt64, i: v}
}

func Float32(v float32) Value {
	return Value{kind: KindFloat32, f: float64(v)}
}

func Float64(v float64) Value {
	return Value{kind: KindFloat64, f: v}
}

func Big(v *big.Int) Value {
	return Value{kind: KindBigInt, bi: new(big.Int).Set(v)}
}

func Decimal(v decimal.Decimal) Value {
	return Value{kind: KindBigDecimal, dec: v}
}

// Of classifies a runtime value into the kind tower. Values outside the
// closed kind set are rejected, never guessed at.
func Of(x any) (v Value, err error) {
	switch value := x.(type) {
	case Value:
		v = value
	case int16:
		v = Int16(value)
	case int32:
		v = Int32(value)
	case int:
		v = Int64(int64(value))
	case int64:
		v = Int64(value)
	case float32:
		v = Float32(value)
	case float64:
		v = Float64(value)
	case *big.Int:
		v = Big(value)
	case decimal.Decimal:
		v = Decimal(value)
	default:
		err = errors.Wrapf(common.ErrUnsupportedValue, "cannot classify %T", x)
	}
	return
}

func (v Value) Kind() Kind {
	return v.kind
}

// IsAbsent reports whether v holds no number. Statistics return an absent
// Value for empty input.
func (v Value) IsAbsent() bool {
	return v.kind == kindAbsent
}

// Int64 returns the value truncated toward zero into an int64.
func (v Value) Int64() int64 {
	switch v.kind {
	case KindInt16, KindInt32, KindInt64:
		return v.i
	case KindFloat32, KindFloat64:
		return int64(v.f)
	case KindBigInt:
		return v.bi.Int64()
	case KindBigDecimal:
		return v.dec.IntPart()
	default:
		return 0
	}
}

// Float64 returns the value widened into a float64.
func (v Value) Float64() float64 {
	switch v.kind {
	case KindInt16, KindInt32, KindInt64:
		return float64(v.i)
	case KindFloat32, KindFloat64:
		return v.f
	case KindBigInt:
		f, _ := new(big.Float).SetInt(v.bi).Float64()
		return f
	case KindBigDecimal:
		f, _ := v.dec.Float64()
		return f
	default:
		return 0
	}
}

// BigInt returns the value as a big.Int, truncating fractional kinds.
func (v Value) BigInt() *big.Int {
	return Convert(v, KindBigInt).bi
}

// Decimal returns the value as a decimal.
func (v Value) Decimal() decimal.Decimal {
	return Convert(v, KindBigDecimal).dec
}

func (v Value) String() string {
	switch v.kind {
	case KindInt16, KindInt32, KindInt64:
		return strconv.FormatInt(v.i, 10)
	case KindFloat32:
		return strconv.FormatFloat(v.f, 'g', -1, 32)
	case KindFloat64:
		return strconv.FormatFloat(v.f, 'g', -1, 64)
	case KindBigInt:
		return v.bi.String()
	case KindBigDecimal:
		return v.dec.String()
	default:
		return "absent"
	}
}
