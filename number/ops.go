package number

import (
	"math"
	"math/big"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"

	"sift/common"
)

// Op names a dispatcher operation.
type Op string

const (
	OpAdd        Op = "add"
	OpSubtract   Op = "subtract"
	OpDivide     Op = "divide"
	OpPower      Op = "power"
	OpSquareRoot Op = "sqrt"
)

// kindOps is the per-kind arithmetic strategy. Both operands handed to a
// strategy have already been coerced into its kind.
type kindOps interface {
	add(a, b Value) (Value, error)
	sub(a, b Value) (Value, error)
	div(a, b Value) (Value, error)
	pow(a Value, n int64) (Value, error)
	sqrt(a Value) (Value, error)
	cmp(a, b Value) int
}

func opsFor(k Kind) kindOps {
	switch k {
	case KindInt16, KindInt32, KindInt64:
		return intOps{kind: k}
	case KindFloat32, KindFloat64:
		return floatOps{kind: k}
	case KindBigInt:
		return bigIntOps{}
	case KindBigDecimal:
		return decimalOps{}
	}
	return nil
}

// Apply resolves the result kind from the operand kinds, coerces both
// operands into it (an absent operand contributes the kind's zero), and runs
// the kind's primitive. OpSquareRoot ignores b.
func Apply(op Op, a, b Value) (v Value, err error) {
	k := resultKind(a, b)
	ops := opsFor(k)
	av := coerce(a, k)
	bv := coerce(b, k)
	switch op {
	case OpAdd:
		v, err = ops.add(av, bv)
	case OpSubtract:
		v, err = ops.sub(av, bv)
	case OpDivide:
		v, err = ops.div(av, bv)
	case OpPower:
		n := bv.Int64()
		if n < 0 {
			err = errors.Wrapf(common.ErrUnsupportedValue, "negative exponent %d", n)
			return
		}
		v, err = ops.pow(av, n)
	case OpSquareRoot:
		v, err = ops.sqrt(av)
	default:
		err = errors.Wrapf(common.ErrUnsupportedValue, "unknown op %q", op)
	}
	return
}

func coerce(v Value, k Kind) Value {
	if v.kind == kindAbsent {
		return zeroOf(k)
	}
	return Convert(v, k)
}

func Add(a, b Value) (Value, error) {
	return Apply(OpAdd, a, b)
}

func Subtract(a, b Value) (Value, error) {
	return Apply(OpSubtract, a, b)
}

func Divide(a, b Value) (Value, error) {
	return Apply(OpDivide, a, b)
}

func Power(a, b Value) (Value, error) {
	return Apply(OpPower, a, b)
}

func SquareRoot(a Value) (Value, error) {
	return Apply(OpSquareRoot, a, Value{})
}

// Compare orders two values, widening as needed. An absent value loses
// every comparison to a present one; two absent values compare equal.
func Compare(a, b Value) int {
	switch {
	case a.kind == kindAbsent && b.kind == kindAbsent:
		return 0
	case a.kind == kindAbsent:
		return -1
	case b.kind == kindAbsent:
		return 1
	}
	k := wider(a.kind, b.kind)
	return opsFor(k).cmp(Convert(a, k), Convert(b, k))
}

// intOps covers the three fixed-width integer kinds. Results are computed in
// int64 and truncated back to the kind's width.
type intOps struct {
	kind Kind
}

func (o intOps) trunc(x int64) Value {
	switch o.kind {
	case KindInt16:
		return Int16(int16(x))
	case KindInt32:
		return Int32(int32(x))
	default:
		return Int64(x)
	}
}

func (o intOps) add(a, b Value) (Value, error) {
	return o.trunc(a.i + b.i), nil
}

func (o intOps) sub(a, b Value) (Value, error) {
	return o.trunc(a.i - b.i), nil
}

func (o intOps) div(a, b Value) (Value, error) {
	if b.i == 0 {
		return Value{}, errors.Wrapf(common.ErrDivisionByZero, "%v / 0", a)
	}
	return o.trunc(a.i / b.i), nil
}

func (o intOps) pow(a Value, n int64) (Value, error) {
	r := int64(1)
	for e := int64(0); e < n; e++ {
		r *= a.i
	}
	return o.trunc(r), nil
}

func (o intOps) sqrt(a Value) (Value, error) {
	if a.i < 0 {
		return Value{}, errors.Wrapf(common.ErrNegativeSquareRoot, "sqrt(%v)", a)
	}
	// integer root, truncated toward zero
	return o.trunc(int64(math.Sqrt(float64(a.i)))), nil
}

func (o intOps) cmp(a, b Value) int {
	switch {
	case a.i < b.i:
		return -1
	case a.i > b.i:
		return 1
	default:
		return 0
	}
}

type floatOps struct {
	kind Kind
}

func (o floatOps) trunc(x float64) Value {
	if o.kind == KindFloat32 {
		return Float32(float32(x))
	}
	return Float64(x)
}

func (o floatOps) add(a, b Value) (Value, error) {
	return o.trunc(a.f + b.f), nil
}

func (o floatOps) sub(a, b Value) (Value, error) {
	return o.trunc(a.f - b.f), nil
}

func (o floatOps) div(a, b Value) (Value, error) {
	if b.f == 0 {
		return Value{}, errors.Wrapf(common.ErrDivisionByZero, "%v / 0", a)
	}
	return o.trunc(a.f / b.f), nil
}

func (o floatOps) pow(a Value, n int64) (Value, error) {
	return o.trunc(math.Pow(a.f, float64(n))), nil
}

func (o floatOps) sqrt(a Value) (Value, error) {
	if a.f < 0 {
		return Value{}, errors.Wrapf(common.ErrNegativeSquareRoot, "sqrt(%v)", a)
	}
	return o.trunc(math.Sqrt(a.f)), nil
}

func (o floatOps) cmp(a, b Value) int {
	switch {
	case a.f < b.f:
		return -1
	case a.f > b.f:
		return 1
	default:
		return 0
	}
}

type bigIntOps struct{}

func (bigIntOps) wrap(bi *big.Int) Value {
	return Value{kind: KindBigInt, bi: bi}
}

func (o bigIntOps) add(a, b Value) (Value, error) {
	return o.wrap(new(big.Int).Add(a.bi, b.bi)), nil
}

func (o bigIntOps) sub(a, b Value) (Value, error) {
	return o.wrap(new(big.Int).Sub(a.bi, b.bi)), nil
}

func (o bigIntOps) div(a, b Value) (Value, error) {
	if b.bi.Sign() == 0 {
		return Value{}, errors.Wrapf(common.ErrDivisionByZero, "%v / 0", a)
	}
	return o.wrap(new(big.Int).Quo(a.bi, b.bi)), nil
}

func (o bigIntOps) pow(a Value, n int64) (Value, error) {
	return o.wrap(new(big.Int).Exp(a.bi, big.NewInt(n), nil)), nil
}

func (o bigIntOps) sqrt(a Value) (Value, error) {
	if a.bi.Sign() < 0 {
		return Value{}, errors.Wrapf(common.ErrNegativeSquareRoot, "sqrt(%v)", a)
	}
	return o.wrap(new(big.Int).Sqrt(a.bi)), nil
}

func (bigIntOps) cmp(a, b Value) int {
	return a.bi.Cmp(b.bi)
}

type decimalOps struct{}

func (o decimalOps) add(a, b Value) (Value, error) {
	return Decimal(a.dec.Add(b.dec)), nil
}

func (o decimalOps) sub(a, b Value) (Value, error) {
	return Decimal(a.dec.Sub(b.dec)), nil
}

func (o decimalOps) div(a, b Value) (Value, error) {
	if b.dec.IsZero() {
		return Value{}, errors.Wrapf(common.ErrDivisionByZero, "%v / 0", a)
	}
	return Decimal(a.dec.Div(b.dec)), nil
}

func (o decimalOps) pow(a Value, n int64) (Value, error) {
	return Decimal(a.dec.Pow(decimal.NewFromInt(n))), nil
}

// sqrt computes the float root and rescales it to the operand's decimal
// scale.
func (o decimalOps) sqrt(a Value) (Value, error) {
	if a.dec.Sign() < 0 {
		return Value{}, errors.Wrapf(common.ErrNegativeSquareRoot, "sqrt(%v)", a)
	}
	f, _ := a.dec.Float64()
	scale := -a.dec.Exponent()
	if scale < 0 {
		scale = 0
	}
	return Decimal(decimal.NewFromFloat(math.Sqrt(f)).Round(scale)), nil
}

func (decimalOps) cmp(a, b Value) int {
	return a.dec.Cmp(b.dec)
}
