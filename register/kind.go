package register

// Kind discriminates the five field interpretations.
type Kind int

const (
	KindFlag Kind = iota
	KindEnum
	KindInteger
	KindFloat
	KindFixedPoint
)

var kindNames = map[Kind]string{
	KindFlag:       "flag",
	KindEnum:       "enum",
	KindInteger:    "integer",
	KindFloat:      "float",
	KindFixedPoint: "fixed-point",
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return "unknown"
}

// ParseKind maps the wire spelling of a field type to its Kind.
func ParseKind(s string) (Kind, bool) {
	for k, name := range kindNames {
		if s == name {
			return k, true
		}
	}
	return KindInteger, false
}

// Signedness selects the integer field encoding.
type Signedness int

const (
	Unsigned Signedness = iota
	TwosComplement
	SignMagnitude
)

var signednessNames = map[Signedness]string{
	Unsigned:       "unsigned",
	TwosComplement: "twos-complement",
	SignMagnitude:  "sign-magnitude",
}

func (s Signedness) String() string {
	if n, ok := signednessNames[s]; ok {
		return n
	}
	return "unsigned"
}

// ParseSignedness maps the wire spelling to a Signedness, defaulting to
// Unsigned for anything unrecognized.
func ParseSignedness(s string) (Signedness, bool) {
	for v, name := range signednessNames {
		if s == name {
			return v, true
		}
	}
	return Unsigned, false
}

// Precision selects the IEEE 754 interchange format of a float field.
type Precision int

const (
	Half   Precision = iota // binary16
	Single                  // binary32
	Double                  // binary64
)

// Bits returns the bit width of the precision. A float field must be exactly
// this wide to be valid.
func (p Precision) Bits() int {
	switch p {
	case Single:
		return 32
	case Double:
		return 64
	default:
		return 16
	}
}

var precisionNames = map[Precision]string{
	Half:   "half",
	Single: "single",
	Double: "double",
}

func (p Precision) String() string {
	if n, ok := precisionNames[p]; ok {
		return n
	}
	return "half"
}

// ParsePrecision maps the wire spelling to a Precision, defaulting to Half
// for anything unrecognized.
func ParsePrecision(s string) (Precision, bool) {
	for v, name := range precisionNames {
		if s == name {
			return v, true
		}
	}
	return Half, false
}
