package register

// Draft is the flattened editor form of a Field: all per-kind properties sit
// side by side so a form UI can switch kinds without losing what was typed.
// Only the properties selected by Kind survive the conversion back to a
// Field; the codec and validators never see drafts.
type Draft struct {
	ID          string
	Name        string
	Description string
	MSB         int
	LSB         int
	Kind        Kind

	FlagClear string
	FlagSet   string

	EnumEntries []EnumEntry

	Signedness Signedness

	Precision Precision

	IntBits  int
	FracBits int
}

// ToDraft flattens a field into its editor form, preserving the properties
// of every kind it may be switched to.
func ToDraft(f Field) Draft {
	fi := f.Info()
	d := Draft{
		ID:          fi.ID,
		Name:        fi.Name,
		Description: fi.Description,
		MSB:         fi.MSB,
		LSB:         fi.LSB,
		Kind:        f.Kind(),
	}

	switch f := f.(type) {
	case Flag:
		d.FlagClear = f.Clear
		d.FlagSet = f.Set
	case Enum:
		d.EnumEntries = f.Entries
	case Integer:
		d.Signedness = f.Signedness
	case Float:
		d.Precision = f.Precision
	case FixedPoint:
		d.IntBits = f.IntBits
		d.FracBits = f.FracBits
	}

	return d
}

// Field converts the draft back into the sum type, keeping only the
// properties selected by Kind.
func (d Draft) Field() Field {
	fi := FieldInfo{
		ID:          d.ID,
		Name:        d.Name,
		Description: d.Description,
		MSB:         d.MSB,
		LSB:         d.LSB,
	}

	switch d.Kind {
	case KindFlag:
		return Flag{FieldInfo: fi, Clear: d.FlagClear, Set: d.FlagSet}
	case KindEnum:
		entries := make([]EnumEntry, len(d.EnumEntries))
		copy(entries, d.EnumEntries)
		return Enum{FieldInfo: fi, Entries: entries}
	case KindFloat:
		return Float{FieldInfo: fi, Precision: d.Precision}
	case KindFixedPoint:
		return FixedPoint{FieldInfo: fi, IntBits: d.IntBits, FracBits: d.FracBits}
	default:
		return Integer{FieldInfo: fi, Signedness: d.Signedness}
	}
}
