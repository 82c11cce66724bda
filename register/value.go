package register

import (
	"math/big"
	"strconv"
)

// DecodedValue is the closed union of interpreted field values, mirroring the
// Field union. Implementations are Bool, EnumValue, IntValue, FloatValue and
// FixedValue.
type DecodedValue interface {
	String() string
	isDecoded()
}

// Bool is a decoded flag field.
type Bool bool

func (Bool) isDecoded() {}

func (b Bool) String() string {
	if b {
		return "true"
	}
	return "false"
}

// EnumValue is a decoded enum field. Matched is false when no entry covers
// the raw value, in which case Name is empty.
type EnumValue struct {
	Value   *big.Int
	Name    string
	Matched bool
}

func (EnumValue) isDecoded() {}

func (e EnumValue) String() string {
	if e.Matched {
		return e.Name + " (" + e.Value.String() + ")"
	}
	return e.Value.String()
}

// IntValue is a decoded integer field. Sign-magnitude fields can hold a
// "negative zero" that is distinct from arithmetic zero; it is modeled
// explicitly so it never conflates with 0. NegativeZero implies Value is zero.
type IntValue struct {
	Value        *big.Int
	NegativeZero bool
}

func (IntValue) isDecoded() {}

func (i IntValue) String() string {
	if i.NegativeZero {
		return "-0"
	}
	return i.Value.String()
}

// FloatValue is a decoded float field as a host double. NaN and infinities
// pass through from the raw bit pattern.
type FloatValue float64

func (FloatValue) isDecoded() {}

func (f FloatValue) String() string {
	return strconv.FormatFloat(float64(f), 'g', -1, 64)
}

// FixedValue is a decoded fixed-point field.
type FixedValue float64

func (FixedValue) isDecoded() {}

func (f FixedValue) String() string {
	return strconv.FormatFloat(float64(f), 'g', -1, 64)
}
