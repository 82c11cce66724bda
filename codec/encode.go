package codec

import (
	stderrors "errors"
	"math"
	"math/big"
	"strconv"
	"strings"

	"github.com/x448/float16"

	"github.com/regview/regview/bits"
	"github.com/regview/regview/errors"
	"github.com/regview/regview/register"
)

// Encode converts a typed input into the raw bit pattern of a field. Flag
// fields take a bool (or the strings "0"/"1"/"true"/"false"); every other
// kind takes free text, or a Go numeric value on programmatic paths.
//
// Out-of-range numeric inputs are masked to the field width, never rejected.
// Unparsable text returns a structured error; interactive callers are
// expected to pre-check input with validate.FieldInput so this only happens
// on programmatic paths, where failure means "leave the value unchanged".
func Encode(input any, f register.Field) (*big.Int, error) {
	fi := f.Info()

	switch f := f.(type) {
	case register.Flag:
		return encodeFlag(input, fi)
	case register.Enum:
		return encodeEnum(input, fi)
	case register.Integer:
		return encodeInteger(input, f)
	case register.Float:
		return encodeFloat(input, f)
	case register.FixedPoint:
		return encodeFixed(input, f)
	default:
		return nil, errors.Unsupported(errors.PhaseEncode, "unknown field kind")
	}
}

func encodeFlag(input any, fi register.FieldInfo) (*big.Int, error) {
	switch v := input.(type) {
	case bool:
		if v {
			return big.NewInt(1), nil
		}
		return new(big.Int), nil
	case register.Bool:
		return encodeFlag(bool(v), fi)
	case string:
		switch strings.ToLower(strings.TrimSpace(v)) {
		case "1", "true":
			return big.NewInt(1), nil
		case "0", "false":
			return new(big.Int), nil
		}
		return nil, errors.BadLiteral(errors.PhaseEncode, fi.Name, v, "flag value")
	default:
		return nil, errors.New(errors.PhaseEncode, errors.KindBadLiteral).
			Field(fi.Name).
			Value(input).
			Detail("flag fields take a boolean").
			Build()
	}
}

func encodeEnum(input any, fi register.FieldInfo) (*big.Int, error) {
	v, err := toBigInt(input, fi.Name)
	if err != nil {
		return nil, err
	}
	return bits.ToUnsigned(v, fi.Width()), nil
}

func encodeInteger(input any, f register.Integer) (*big.Int, error) {
	fi := f.Info()
	v, err := toBigInt(input, fi.Name)
	if err != nil {
		return nil, err
	}

	w := fi.Width()
	switch f.Signedness {
	case register.SignMagnitude:
		negative := v.Sign() < 0
		if !negative {
			// "-0" means negative zero; the parsed value alone cannot tell.
			if s, ok := input.(string); ok && v.Sign() == 0 &&
				strings.HasPrefix(strings.TrimSpace(s), "-") {
				negative = true
			}
		}
		mag := new(big.Int).Abs(v)
		return bits.ToSignMagnitude(mag, negative, w), nil
	default:
		// Unsigned and two's-complement share the masking encode.
		return bits.ToUnsigned(v, w), nil
	}
}

func encodeFloat(input any, f register.Float) (*big.Int, error) {
	v, err := toFloat(input, f.Info().Name)
	if err != nil {
		return nil, err
	}

	// Narrowing to the target precision saturates to ±Inf per IEEE rules;
	// overflow is not an error.
	switch f.Precision {
	case register.Single:
		return new(big.Int).SetUint64(uint64(math.Float32bits(float32(v)))), nil
	case register.Double:
		return new(big.Int).SetUint64(math.Float64bits(v)), nil
	default:
		return new(big.Int).SetUint64(uint64(float16.Fromfloat32(float32(v)).Bits())), nil
	}
}

func encodeFixed(input any, f register.FixedPoint) (*big.Int, error) {
	fi := f.Info()
	v, err := toFloat(input, fi.Name)
	if err != nil {
		return nil, err
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return nil, errors.NotFinite(errors.PhaseEncode, fi.Name, v)
	}

	// Scale by 2^n in big.Float arithmetic; math.Ldexp overflows to ±Inf for
	// large finite inputs. Adding half toward the sign and truncating rounds
	// to nearest, ties away from zero.
	scaled := new(big.Float).SetPrec(80).SetMantExp(big.NewFloat(v), f.FracBits)
	half := big.NewFloat(0.5)
	if scaled.Sign() >= 0 {
		scaled.Add(scaled, half)
	} else {
		scaled.Sub(scaled, half)
	}
	rounded, _ := scaled.Int(nil)
	return bits.ToUnsigned(rounded, fi.Width()), nil
}

// toBigInt accepts integer literal text (decimal, 0x, 0b, 0o, optional
// leading sign) or a Go integer value.
func toBigInt(input any, field string) (*big.Int, error) {
	switch v := input.(type) {
	case string:
		s := strings.TrimSpace(v)
		if s == "" {
			return nil, errors.BadLiteral(errors.PhaseEncode, field, v, "integer literal")
		}
		out, ok := new(big.Int).SetString(s, 0)
		if !ok {
			return nil, errors.BadLiteral(errors.PhaseEncode, field, v, "integer literal")
		}
		return out, nil
	case *big.Int:
		return new(big.Int).Set(v), nil
	case int:
		return big.NewInt(int64(v)), nil
	case int64:
		return big.NewInt(v), nil
	case uint64:
		return new(big.Int).SetUint64(v), nil
	case float64:
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, errors.NotFinite(errors.PhaseEncode, field, v)
		}
		if v != math.Trunc(v) {
			return nil, errors.New(errors.PhaseEncode, errors.KindBadLiteral).
				Field(field).
				Value(v).
				Detail("%v is not an integer", v).
				Build()
		}
		out, _ := new(big.Float).SetFloat64(v).Int(nil)
		return out, nil
	default:
		return nil, errors.New(errors.PhaseEncode, errors.KindBadLiteral).
			Field(field).
			Value(input).
			Detail("cannot interpret %T as an integer", input).
			Build()
	}
}

// toFloat accepts decimal numeric text or a Go numeric value. Overflowing
// text saturates to ±Inf rather than failing.
func toFloat(input any, field string) (float64, error) {
	switch v := input.(type) {
	case string:
		s := strings.TrimSpace(v)
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			var numErr *strconv.NumError
			if stderrors.As(err, &numErr) && numErr.Err == strconv.ErrRange {
				return f, nil // saturated to ±Inf
			}
			return 0, errors.BadLiteral(errors.PhaseEncode, field, v, "number")
		}
		return f, nil
	case float64:
		return v, nil
	case float32:
		return float64(v), nil
	case int:
		return float64(v), nil
	case int64:
		return float64(v), nil
	default:
		return 0, errors.New(errors.PhaseEncode, errors.KindBadLiteral).
			Field(field).
			Value(input).
			Detail("cannot interpret %T as a number", input).
			Build()
	}
}
