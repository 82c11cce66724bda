package register

// FieldInfo carries the attributes shared by every field variant. MSB and LSB
// are inclusive bit positions within the register; a validated field has
// MSB >= LSB >= 0 and MSB < the register width.
type FieldInfo struct {
	ID          string
	Name        string
	Description string
	MSB         int
	LSB         int
}

// Info returns the shared attributes; it makes any embedding variant satisfy
// that part of the Field interface.
func (fi FieldInfo) Info() FieldInfo { return fi }

// Width returns the number of bits the field occupies.
func (fi FieldInfo) Width() int { return fi.MSB - fi.LSB + 1 }

func (fi FieldInfo) isField() {}

// Field is the closed union of the five field interpretations. The only
// implementations are Flag, Enum, Integer, Float and FixedPoint; the union is
// sealed by the unexported method.
type Field interface {
	Info() FieldInfo
	Kind() Kind
	isField()
}

// Flag is a single-bit field with optional display labels for the cleared
// and set states.
type Flag struct {
	FieldInfo
	Clear string
	Set   string
}

func (Flag) Kind() Kind { return KindFlag }

// EnumEntry is one named value of an enum field. Duplicate values are
// permitted; the first entry in declaration order wins on decode.
type EnumEntry struct {
	Value int64
	Name  string
}

// Enum is a field decoded by looking its raw value up in a value/name table.
type Enum struct {
	FieldInfo
	Entries []EnumEntry
}

func (Enum) Kind() Kind { return KindEnum }

// Integer is a field decoded as an integer under one of three signedness
// encodings.
type Integer struct {
	FieldInfo
	Signedness Signedness
}

func (Integer) Kind() Kind { return KindInteger }

// Float is a field whose raw bits are reinterpreted as an IEEE 754 value.
type Float struct {
	FieldInfo
	Precision Precision
}

func (Float) Kind() Kind { return KindFloat }

// FixedPoint is a signed Qm.n binary fraction: IntBits integer bits, FracBits
// fractional bits, two's-complement over the full field width (which must
// equal IntBits+FracBits), divided by 2^FracBits.
type FixedPoint struct {
	FieldInfo
	IntBits  int
	FracBits int
}

func (FixedPoint) Kind() Kind { return KindFixedPoint }
