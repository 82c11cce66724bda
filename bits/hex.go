package bits

import (
	"errors"
	"math/big"
	"strings"
)

// Register values cross serialization boundaries (project documents, local
// stores) as unpadded "0x"-prefixed hex strings.

// ErrBadHex is returned when a hex value string cannot be parsed.
var ErrBadHex = errors.New("bits: malformed hex value")

// FormatHex renders v as a lower-case "0x" hex string with no fixed width.
func FormatHex(v *big.Int) string {
	return "0x" + v.Text(16)
}

// ParseHex parses a register value string. The "0x" prefix is optional and
// case-insensitive. Negative values are rejected; callers treat a parse
// failure as a corrupt value and degrade to zero.
func ParseHex(s string) (*big.Int, error) {
	t := strings.TrimSpace(s)
	if len(t) >= 2 && (t[:2] == "0x" || t[:2] == "0X") {
		t = t[2:]
	}
	if t == "" {
		return nil, ErrBadHex
	}
	v, ok := new(big.Int).SetString(t, 16)
	if !ok || v.Sign() < 0 {
		return nil, ErrBadHex
	}
	return v, nil
}
