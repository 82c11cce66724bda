package regview

// Limits bounds the size of register definitions accepted by the validator.
// The codec and layout packages do not enforce these; they operate on whatever
// definitions they are given.
type Limits struct {
	MaxRegisterWidth     int
	MaxFieldsPerRegister int
	MaxEnumEntries       int
}

// DefaultLimits returns the limits used when callers have no reason to
// deviate: 256-bit registers, 128 fields per register, 256 enum entries.
func DefaultLimits() Limits {
	return Limits{
		MaxRegisterWidth:     256,
		MaxFieldsPerRegister: 128,
		MaxEnumEntries:       256,
	}
}

// IDSource produces unique identifiers for definitions that arrive without
// one. It is an injected capability so tests can supply deterministic IDs.
type IDSource func() string
