package validate

import (
	"fmt"

	"github.com/regview/regview"
	"github.com/regview/regview/register"
)

// Issue is one human-readable rule violation. FieldID is empty for
// register-level issues.
type Issue struct {
	FieldID string
	Message string
}

func (i Issue) String() string { return i.Message }

// Register checks a sanitized definition against the semantic rules and
// returns every violation found. A definition with any issue is treated as
// invalid as a unit by the import path; interactive callers may surface the
// issues as warnings instead.
func Register(def register.RegisterDef, limits regview.Limits) []Issue {
	var issues []Issue

	add := func(fieldID, msg string, args ...any) {
		issues = append(issues, Issue{FieldID: fieldID, Message: fmt.Sprintf(msg, args...)})
	}

	if def.Name == "" {
		add("", "register name must not be empty")
	}
	if def.Width < 1 || def.Width > limits.MaxRegisterWidth {
		add("", "register width must be between 1 and %d, got %d",
			limits.MaxRegisterWidth, def.Width)
	}
	if len(def.Fields) > limits.MaxFieldsPerRegister {
		add("", "register has %d fields, exceeding the limit of %d",
			len(def.Fields), limits.MaxFieldsPerRegister)
	}

	for _, f := range def.Fields {
		issues = append(issues, checkField(f, def.Width, limits)...)
	}

	issues = append(issues, checkOverlaps(def.Fields)...)

	return issues
}

func checkField(f register.Field, width int, limits regview.Limits) []Issue {
	var issues []Issue
	fi := f.Info()

	add := func(msg string, args ...any) {
		issues = append(issues, Issue{FieldID: fi.ID, Message: fmt.Sprintf(msg, args...)})
	}

	if fi.Name == "" {
		add("field name must not be empty")
	}
	if fi.LSB < 0 {
		add("LSB (%d) is negative", fi.LSB)
	}
	if fi.MSB < fi.LSB {
		add("MSB (%d) is less than LSB (%d)", fi.MSB, fi.LSB)
	}
	if fi.MSB >= width {
		add("MSB (%d) exceeds register width (%d)", fi.MSB, width)
	}

	switch f := f.(type) {
	case register.Flag:
		if fi.Width() != 1 {
			add("flag field must occupy exactly 1 bit, got %d", fi.Width())
		}
	case register.Enum:
		if len(f.Entries) > limits.MaxEnumEntries {
			add("enum field has %d entries, exceeding the limit of %d",
				len(f.Entries), limits.MaxEnumEntries)
		}
	case register.Float:
		if fi.Width() != f.Precision.Bits() {
			add("%s-precision float field must be %d bits wide, got %d",
				f.Precision, f.Precision.Bits(), fi.Width())
		}
	case register.FixedPoint:
		if fi.Width() != f.IntBits+f.FracBits {
			add("fixed-point field width (%d) does not match Q%d.%d (%d bits)",
				fi.Width(), f.IntBits, f.FracBits, f.IntBits+f.FracBits)
		}
	}

	return issues
}

// checkOverlaps reports every pair of fields sharing at least one bit.
// Quadratic over the field count, which the limits keep small.
func checkOverlaps(fields []register.Field) []Issue {
	var issues []Issue
	for i := 0; i < len(fields); i++ {
		for j := i + 1; j < len(fields); j++ {
			a, b := fields[i].Info(), fields[j].Info()
			if a.LSB <= b.MSB && b.LSB <= a.MSB {
				issues = append(issues, Issue{
					FieldID: a.ID,
					Message: fmt.Sprintf("fields %q [%d:%d] and %q [%d:%d] overlap",
						a.Name, a.MSB, a.LSB, b.Name, b.MSB, b.LSB),
				})
			}
		}
	}
	return issues
}
