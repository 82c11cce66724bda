package validate

import (
	"errors"
	"math"
	"math/big"
	"strconv"
	"strings"

	"github.com/regview/regview/register"
)

// FieldInput pre-checks free text before codec.Encode is attempted, so
// interactive editors can reject malformed input without building a value.
// It returns a human-readable message, or "" when the text is acceptable.
func FieldInput(text string, k register.Kind) string {
	s := strings.TrimSpace(text)

	switch k {
	case register.KindFlag:
		switch strings.ToLower(s) {
		case "0", "1", "true", "false":
			return ""
		}
		return "enter 0, 1, true or false"

	case register.KindEnum, register.KindInteger:
		if s == "" {
			return "enter an integer value"
		}
		if _, ok := new(big.Int).SetString(s, 0); !ok {
			return "not a valid integer literal (decimal, 0x, 0b or 0o)"
		}
		return ""

	case register.KindFloat, register.KindFixedPoint:
		if s == "" {
			return "enter a number"
		}
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			var numErr *strconv.NumError
			if errors.As(err, &numErr) && numErr.Err == strconv.ErrRange {
				// Float overflow saturates to ±Inf at encode time; fixed-point
				// requires a finite value all the way through.
				if k == register.KindFloat {
					return ""
				}
				return "must be a finite number"
			}
			return "not a valid number"
		}
		// ParseFloat accepts "inf" and "nan" spellings; those never are.
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return "must be a finite number"
		}
		return ""

	default:
		return "unknown field kind"
	}
}
