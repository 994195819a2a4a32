package number

// Kind is the precision tag of a numeric value. The set is closed:
// every value the engine accepts maps to exactly one Kind.
type Kind int

const (
	kindAbsent Kind = iota
	KindInt16
	KindInt32
	KindInt64
	KindFloat32
	KindFloat64
	KindBigInt
	KindBigDecimal
)

func (k Kind) String() string {
	switch k {
	case KindInt16:
		return "int16"
	case KindInt32:
		return "int32"
	case KindInt64:
		return "int64"
	case KindFloat32:
		return "float32"
	case KindFloat64:
		return "float64"
	case KindBigInt:
		return "bigint"
	case KindBigDecimal:
		return "bigdecimal"
	default:
		return "absent"
	}
}

// wider picks the result kind of a pairwise operation. The widening order is
//
//	int16 < int32 < int64 < float32 < float64 < bigint < bigdecimal
//
// so the big kinds absorb everything, and bigdecimal absorbs bigint.
func wider(k1, k2 Kind) Kind {
	if k1 < k2 {
		return k2
	}
	return k1
}

// resultKind resolves the kind an operation is carried out in. An absent
// operand borrows its sibling's kind; two absent operands fall back to
// float64.
func resultKind(a, b Value) Kind {
	switch {
	case a.kind == kindAbsent && b.kind == kindAbsent:
		return KindFloat64
	case a.kind == kindAbsent:
		return b.kind
	case b.kind == kindAbsent:
		return a.kind
	default:
		return wider(a.kind, b.kind)
	}
}
