package number

import (
	"math/big"
	"strconv"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"

	"sift/common"
)

// Convert produces the best-effort rendering of v in the target kind.
// Widening keeps the value intact; narrowing truncates toward zero;
// conversions into the big kinds are value-exact. Converting an absent
// value yields an absent value.
func Convert(v Value, k Kind) Value {
	if v.kind == kindAbsent || k == kindAbsent {
		return Value{}
	}
	if v.kind == k {
		return v
	}
	switch k {
	case KindInt16:
		return Int16(int16(v.Int64()))
	case KindInt32:
		return Int32(int32(v.Int64()))
	case KindInt64:
		return Int64(v.Int64())
	case KindFloat32:
		return Float32(float32(v.Float64()))
	case KindFloat64:
		return Float64(v.Float64())
	case KindBigInt:
		return Value{kind: KindBigInt, bi: toBigInt(v)}
	case KindBigDecimal:
		return Value{kind: KindBigDecimal, dec: toDecimal(v)}
	}
	return Value{}
}

func toBigInt(v Value) *big.Int {
	switch v.kind {
	case KindInt16, KindInt32, KindInt64:
		return big.NewInt(v.i)
	case KindFloat32, KindFloat64:
		bi, _ := new(big.Float).SetFloat64(v.f).Int(nil)
		return bi
	case KindBigInt:
		return new(big.Int).Set(v.bi)
	case KindBigDecimal:
		return v.dec.BigInt()
	default:
		return new(big.Int)
	}
}

func toDecimal(v Value) decimal.Decimal {
	switch v.kind {
	case KindInt16, KindInt32, KindInt64:
		return decimal.NewFromInt(v.i)
	case KindFloat32:
		return decimal.NewFromFloat32(float32(v.f))
	case KindFloat64:
		return decimal.NewFromFloat(v.f)
	case KindBigInt:
		return decimal.NewFromBigInt(v.bi, 0)
	case KindBigDecimal:
		return v.dec
	default:
		return decimal.Zero
	}
}

// zeroOf is the algebraic zero an absent operand contributes when it takes
// part in an operation.
func zeroOf(k Kind) Value {
	switch k {
	case KindInt16, KindInt32, KindInt64:
		return Value{kind: k}
	case KindFloat32, KindFloat64:
		return Value{kind: k}
	case KindBigInt:
		return Value{kind: KindBigInt, bi: new(big.Int)}
	case KindBigDecimal:
		return Value{kind: KindBigDecimal, dec: decimal.Zero}
	default:
		return Value{}
	}
}

// Parse reads text as a value of the target kind. Malformed text is an
// error, never a silent zero.
func Parse(text string, k Kind) (v Value, err error) {
	switch k {
	case KindInt16:
		n, perr := strconv.ParseInt(text, 10, 16)
		if perr != nil {
			err = errors.Wrapf(common.ErrMalformedNumber, "parse %q as %v", text, k)
			return
		}
		v = Int16(int16(n))
	case KindInt32:
		n, perr := strconv.ParseInt(text, 10, 32)
		if perr != nil {
			err = errors.Wrapf(common.ErrMalformedNumber, "parse %q as %v", text, k)
			return
		}
		v = Int32(int32(n))
	case KindInt64:
		n, perr := strconv.ParseInt(text, 10, 64)
		if perr != nil {
			err = errors.Wrapf(common.ErrMalformedNumber, "parse %q as %v", text, k)
			return
		}
		v = Int64(n)
	case KindFloat32:
		f, perr := strconv.ParseFloat(text, 32)
		if perr != nil {
			err = errors.Wrapf(common.ErrMalformedNumber, "parse %q as %v", text, k)
			return
		}
		v = Float32(float32(f))
	case KindFloat64:
		f, perr := strconv.ParseFloat(text, 64)
		if perr != nil {
			err = errors.Wrapf(common.ErrMalformedNumber, "parse %q as %v", text, k)
			return
		}
		v = Float64(f)
	case KindBigInt:
		bi, ok := new(big.Int).SetString(text, 10)
		if !ok {
			err = errors.Wrapf(common.ErrMalformedNumber, "parse %q as %v", text, k)
			return
		}
		v = Value{kind: KindBigInt, bi: bi}
	case KindBigDecimal:
		d, perr := decimal.NewFromString(text)
		if perr != nil {
			err = errors.Wrapf(common.ErrMalformedNumber, "parse %q as %v", text, k)
			return
		}
		v = Decimal(d)
	default:
		err = errors.Wrapf(common.ErrUnsupportedValue, "parse into kind %v", k)
	}
	return
}
