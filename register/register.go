package register

import "math/big"

// RegisterDef describes one register: a named fixed-width binary value and
// the typed bit-fields laid out inside it. Definitions are immutable value
// records; edits in the surrounding system replace the whole definition.
type RegisterDef struct {
	ID          string
	Name        string
	Description string
	Width       int
	Offset      *int64 // address-unit position; nil when the register is unplaced
	Fields      []Field
}

// FieldByID returns the field with the given ID.
func (r RegisterDef) FieldByID(id string) (Field, bool) {
	for _, f := range r.Fields {
		if f.Info().ID == id {
			return f, true
		}
	}
	return nil, false
}

// FieldAt returns the first field covering the given bit position, in
// declaration order.
func (r RegisterDef) FieldAt(bit int) (Field, bool) {
	for _, f := range r.Fields {
		fi := f.Info()
		if bit <= fi.MSB && bit >= fi.LSB {
			return f, true
		}
	}
	return nil, false
}

// PlacedAt returns the register's offset and whether it has one.
func (r RegisterDef) PlacedAt() (int64, bool) {
	if r.Offset == nil {
		return 0, false
	}
	return *r.Offset, true
}

// ValueMap tracks the current bit pattern of each register, keyed by register
// ID. Values live independently of the definitions; deleting a register only
// re-keys the map.
type ValueMap map[string]*big.Int

// Get returns the value for a register ID, defaulting to zero. The returned
// value must not be mutated; Set replaces it instead.
func (m ValueMap) Get(id string) *big.Int {
	if v, ok := m[id]; ok && v != nil {
		return v
	}
	return new(big.Int)
}

// Set stores a value for a register ID.
func (m ValueMap) Set(id string, v *big.Int) {
	m[id] = v
}

// Delete removes the value tracked for a register ID.
func (m ValueMap) Delete(id string) {
	delete(m, id)
}
