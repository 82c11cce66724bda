package bits

import "math/big"

// Bit-level primitives over arbitrary-precision unsigned integers.
// Registers may exceed 64 bits, so nothing here assumes a machine word.
// Arguments are never mutated; every function returns a fresh value.

var one = big.NewInt(1)

// Mask returns a value with the low width bits set.
func Mask(width int) *big.Int {
	m := new(big.Int).Lsh(one, uint(width))
	return m.Sub(m, one)
}

// Extract returns the bits of v in the inclusive span [msb:lsb], shifted down
// to bit 0. The caller guarantees msb >= lsb >= 0.
func Extract(v *big.Int, msb, lsb int) *big.Int {
	out := new(big.Int).Rsh(v, uint(lsb))
	return out.And(out, Mask(msb-lsb+1))
}

// Replace clears the span [msb:lsb] in v, masks field to the span width and
// ORs it in. All bits outside the span are preserved exactly.
func Replace(v *big.Int, msb, lsb int, field *big.Int) *big.Int {
	width := msb - lsb + 1
	fv := new(big.Int).And(field, Mask(width))
	fv.Lsh(fv, uint(lsb))

	span := new(big.Int).Lsh(Mask(width), uint(lsb))
	out := new(big.Int).AndNot(v, span)
	return out.Or(out, fv)
}

// Toggle flips a single bit of v.
func Toggle(v *big.Int, bit int) *big.Int {
	m := new(big.Int).Lsh(one, uint(bit))
	return m.Xor(v, m)
}

// Clamp masks v to the given width, keeping a register value inside its
// declared width after edits.
func Clamp(v *big.Int, width int) *big.Int {
	return new(big.Int).And(v, Mask(width))
}

// ToSigned interprets the low width bits of raw as a two's-complement value.
func ToSigned(raw *big.Int, width int) *big.Int {
	v := new(big.Int).And(raw, Mask(width))
	if v.Bit(width-1) == 1 {
		v.Sub(v, new(big.Int).Lsh(one, uint(width)))
	}
	return v
}

// ToUnsigned is the inverse of ToSigned: it re-encodes a signed value as its
// width-bit two's-complement bit pattern. Round-trips for all width-bit values.
func ToUnsigned(signed *big.Int, width int) *big.Int {
	// math/big treats negative operands of And as infinite two's complement,
	// so a single mask produces the encoded pattern.
	return new(big.Int).And(signed, Mask(width))
}

// FromSignMagnitude splits the low width bits of raw into a magnitude and a
// sign. The MSB is the sign bit, the remaining bits the magnitude. A set sign
// with zero magnitude is "negative zero", which is distinguishable from zero:
// it reports negative=true with a zero magnitude.
func FromSignMagnitude(raw *big.Int, width int) (mag *big.Int, negative bool) {
	v := new(big.Int).And(raw, Mask(width))
	negative = v.Bit(width-1) == 1
	mag = v.And(v, Mask(width-1))
	return mag, negative
}

// ToSignMagnitude is the inverse of FromSignMagnitude. The magnitude is
// masked to width-1 bits. Negative zero round-trips exactly.
func ToSignMagnitude(mag *big.Int, negative bool, width int) *big.Int {
	v := new(big.Int).And(mag, Mask(width-1))
	if negative {
		v.SetBit(v, width-1, 1)
	}
	return v
}
