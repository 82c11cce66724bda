package codec

import (
	"math"
	"math/big"

	"github.com/x448/float16"

	"github.com/regview/regview/bits"
	"github.com/regview/regview/register"
)

// Decode extracts a field's raw bits from a register value and interprets
// them per the field's kind. It is total: every structurally valid field
// decodes every raw bit pattern, including IEEE 754 subnormals, infinities
// and NaN.
func Decode(value *big.Int, f register.Field) register.DecodedValue {
	fi := f.Info()
	raw := bits.Extract(value, fi.MSB, fi.LSB)

	switch f := f.(type) {
	case register.Flag:
		// Any nonzero bits read as set, even for a malformed multi-bit flag.
		return register.Bool(raw.Sign() != 0)

	case register.Enum:
		for _, e := range f.Entries {
			if raw.IsInt64() && raw.Int64() == e.Value {
				return register.EnumValue{Value: raw, Name: e.Name, Matched: true}
			}
		}
		return register.EnumValue{Value: raw}

	case register.Integer:
		return decodeInteger(raw, f)

	case register.Float:
		return decodeFloat(raw, f.Precision)

	case register.FixedPoint:
		return decodeFixed(raw, fi.Width(), f.FracBits)

	default:
		// The union is sealed; this branch is unreachable.
		return register.IntValue{Value: raw}
	}
}

func decodeInteger(raw *big.Int, f register.Integer) register.IntValue {
	w := f.Width()
	switch f.Signedness {
	case register.TwosComplement:
		return register.IntValue{Value: bits.ToSigned(raw, w)}
	case register.SignMagnitude:
		mag, negative := bits.FromSignMagnitude(raw, w)
		if negative && mag.Sign() == 0 {
			return register.IntValue{Value: mag, NegativeZero: true}
		}
		if negative {
			return register.IntValue{Value: mag.Neg(mag)}
		}
		return register.IntValue{Value: mag}
	default:
		return register.IntValue{Value: raw}
	}
}

func decodeFloat(raw *big.Int, p register.Precision) register.FloatValue {
	switch p {
	case register.Single:
		return register.FloatValue(math.Float32frombits(uint32(raw.Uint64())))
	case register.Double:
		return register.FloatValue(math.Float64frombits(raw.Uint64()))
	default:
		return register.FloatValue(float16.Frombits(uint16(raw.Uint64())).Float32())
	}
}

func decodeFixed(raw *big.Int, width, fracBits int) register.FixedValue {
	signed := bits.ToSigned(raw, width)
	// Exact scaling by 2^-n before the single conversion to float64.
	scaled := new(big.Float).SetMantExp(new(big.Float).SetInt(signed), -fracBits)
	v, _ := scaled.Float64()
	return register.FixedValue(v)
}

// Apply writes a field's raw bits back into a register value, leaving every
// bit outside the field span untouched.
func Apply(value *big.Int, f register.Field, fieldBits *big.Int) *big.Int {
	fi := f.Info()
	return bits.Replace(value, fi.MSB, fi.LSB, fieldBits)
}
