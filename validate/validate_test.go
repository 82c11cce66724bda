package validate

import (
	"strings"
	"testing"

	"github.com/regview/regview"
	"github.com/regview/regview/register"
)

func limits() regview.Limits { return regview.DefaultLimits() }

func intField(id, name string, msb, lsb int) register.Integer {
	return register.Integer{FieldInfo: register.FieldInfo{ID: id, Name: name, MSB: msb, LSB: lsb}}
}

func TestRegister_Valid(t *testing.T) {
	def := register.RegisterDef{
		ID: "r", Name: "R", Width: 8,
		Fields: []register.Field{
			intField("a", "A", 7, 4),
			intField("b", "B", 3, 0),
		},
	}
	if issues := Register(def, limits()); len(issues) != 0 {
		t.Errorf("valid register produced issues: %v", issues)
	}
}

func TestRegister_WidthBounds(t *testing.T) {
	tests := []struct {
		name  string
		width int
		bad   bool
	}{
		{"zero", 0, true},
		{"one", 1, false},
		{"max", 256, false},
		{"above_max", 257, true},
		{"negative", -1, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			def := register.RegisterDef{ID: "r", Name: "R", Width: tt.width}
			issues := Register(def, limits())
			if tt.bad && len(issues) == 0 {
				t.Error("expected a width issue")
			}
			if !tt.bad && len(issues) != 0 {
				t.Errorf("unexpected issues: %v", issues)
			}
		})
	}
}

func TestRegister_EmptyNames(t *testing.T) {
	def := register.RegisterDef{ID: "r", Width: 8,
		Fields: []register.Field{intField("a", "", 3, 0)},
	}
	issues := Register(def, limits())
	if len(issues) != 2 {
		t.Fatalf("want register-name and field-name issues, got %v", issues)
	}
}

func TestRegister_FieldRangeRules(t *testing.T) {
	tests := []struct {
		name     string
		msb, lsb int
		contains string
	}{
		{"msb_below_lsb", 2, 5, "MSB (2) is less than LSB (5)"},
		{"msb_exceeds_width", 9, 0, "MSB (9) exceeds register width (8)"},
		{"negative_lsb", 3, -1, "LSB (-1) is negative"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			def := register.RegisterDef{ID: "r", Name: "R", Width: 8,
				Fields: []register.Field{intField("f", "F", tt.msb, tt.lsb)},
			}
			issues := Register(def, limits())
			if len(issues) == 0 {
				t.Fatal("expected an issue")
			}
			found := false
			for _, i := range issues {
				if strings.Contains(i.Message, tt.contains) {
					found = true
					if i.FieldID != "f" {
						t.Errorf("issue should carry the field ID, got %q", i.FieldID)
					}
				}
			}
			if !found {
				t.Errorf("no issue contains %q: %v", tt.contains, issues)
			}
		})
	}
}

func TestRegister_KindWidthRules(t *testing.T) {
	tests := []struct {
		name  string
		field register.Field
		want  string
	}{
		{
			"flag_too_wide",
			register.Flag{FieldInfo: register.FieldInfo{ID: "f", Name: "F", MSB: 1, LSB: 0}},
			"flag field must occupy exactly 1 bit, got 2",
		},
		{
			"half_float_wrong_width",
			register.Float{FieldInfo: register.FieldInfo{ID: "f", Name: "F", MSB: 7, LSB: 0},
				Precision: register.Half},
			"half-precision float field must be 16 bits wide, got 8",
		},
		{
			"fixed_point_width_mismatch",
			register.FixedPoint{FieldInfo: register.FieldInfo{ID: "f", Name: "F", MSB: 7, LSB: 0},
				IntBits: 4, FracBits: 2},
			"fixed-point field width (8) does not match Q4.2 (6 bits)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			def := register.RegisterDef{ID: "r", Name: "R", Width: 32,
				Fields: []register.Field{tt.field},
			}
			issues := Register(def, limits())
			if len(issues) != 1 {
				t.Fatalf("want exactly one issue, got %v", issues)
			}
			if issues[0].Message != tt.want {
				t.Errorf("got %q, want %q", issues[0].Message, tt.want)
			}
		})
	}
}

func TestRegister_FloatCorrectWidths(t *testing.T) {
	widths := map[register.Precision]int{
		register.Half:   16,
		register.Single: 32,
		register.Double: 64,
	}
	for p, w := range widths {
		def := register.RegisterDef{ID: "r", Name: "R", Width: 64,
			Fields: []register.Field{
				register.Float{FieldInfo: register.FieldInfo{ID: "f", Name: "F", MSB: w - 1, LSB: 0},
					Precision: p},
			},
		}
		if issues := Register(def, limits()); len(issues) != 0 {
			t.Errorf("%v at %d bits: %v", p, w, issues)
		}
	}
}

func TestRegister_Overlap(t *testing.T) {
	def := register.RegisterDef{ID: "r", Name: "R", Width: 8,
		Fields: []register.Field{
			intField("a", "A", 7, 4),
			intField("b", "B", 5, 2),
		},
	}

	issues := Register(def, limits())
	if len(issues) != 1 {
		t.Fatalf("want exactly one overlap issue, got %v", issues)
	}
	msg := issues[0].Message
	for _, want := range []string{`"A"`, `"B"`, "[7:4]", "[5:2]", "overlap"} {
		if !strings.Contains(msg, want) {
			t.Errorf("overlap message %q missing %q", msg, want)
		}
	}
}

func TestRegister_NoOverlapForAdjacentFields(t *testing.T) {
	def := register.RegisterDef{ID: "r", Name: "R", Width: 8,
		Fields: []register.Field{
			intField("a", "A", 7, 4),
			intField("b", "B", 3, 0),
		},
	}
	if issues := Register(def, limits()); len(issues) != 0 {
		t.Errorf("adjacent fields must not overlap: %v", issues)
	}
}

func TestRegister_ThreeWayOverlapReportsEachPair(t *testing.T) {
	def := register.RegisterDef{ID: "r", Name: "R", Width: 8,
		Fields: []register.Field{
			intField("a", "A", 7, 0),
			intField("b", "B", 3, 0),
			intField("c", "C", 5, 4),
		},
	}
	issues := Register(def, limits())
	if len(issues) != 2 {
		t.Errorf("A overlaps B and C: want 2 issues, got %v", issues)
	}
}

func TestRegister_FieldCountLimit(t *testing.T) {
	lim := regview.Limits{MaxRegisterWidth: 256, MaxFieldsPerRegister: 2, MaxEnumEntries: 4}
	def := register.RegisterDef{ID: "r", Name: "R", Width: 8,
		Fields: []register.Field{
			intField("a", "A", 7, 6),
			intField("b", "B", 5, 4),
			intField("c", "C", 3, 2),
		},
	}
	issues := Register(def, lim)
	if len(issues) != 1 || !strings.Contains(issues[0].Message, "exceeding the limit") {
		t.Errorf("got %v", issues)
	}
}

func TestRegister_EnumEntryLimit(t *testing.T) {
	lim := regview.Limits{MaxRegisterWidth: 256, MaxFieldsPerRegister: 16, MaxEnumEntries: 2}
	def := register.RegisterDef{ID: "r", Name: "R", Width: 8,
		Fields: []register.Field{
			register.Enum{
				FieldInfo: register.FieldInfo{ID: "e", Name: "E", MSB: 1, LSB: 0},
				Entries:   []register.EnumEntry{{Value: 0, Name: "A"}, {Value: 1, Name: "B"}, {Value: 2, Name: "C"}},
			},
		},
	}
	issues := Register(def, lim)
	if len(issues) != 1 || !strings.Contains(issues[0].Message, "enum field has 3 entries") {
		t.Errorf("got %v", issues)
	}
}

func TestFieldInput(t *testing.T) {
	tests := []struct {
		name string
		text string
		kind register.Kind
		ok   bool
	}{
		{"flag_one", "1", register.KindFlag, true},
		{"flag_word", "yes", register.KindFlag, false},
		{"int_decimal", "42", register.KindInteger, true},
		{"int_hex", "0x2A", register.KindInteger, true},
		{"int_binary", "0b1010", register.KindInteger, true},
		{"int_octal", "0o52", register.KindInteger, true},
		{"int_negative", "-42", register.KindInteger, true},
		{"int_garbage", "forty-two", register.KindInteger, false},
		{"int_empty", "", register.KindInteger, false},
		{"int_float", "1.5", register.KindInteger, false},
		{"enum_numeric", "3", register.KindEnum, true},
		{"float_decimal", "3.25", register.KindFloat, true},
		{"float_exponent", "1e-3", register.KindFloat, true},
		{"float_inf_rejected", "Infinity", register.KindFloat, false},
		{"float_inf_short_rejected", "inf", register.KindFloat, false},
		{"float_nan_rejected", "NaN", register.KindFloat, false},
		{"float_garbage", "fast", register.KindFloat, false},
		{"fixed_decimal", "-2.5", register.KindFixedPoint, true},
		{"fixed_nan_rejected", "nan", register.KindFixedPoint, false},
		{"fixed_overflow_rejected", "1e999", register.KindFixedPoint, false},
		{"fixed_large_finite_ok", "1e308", register.KindFixedPoint, true},
		{"float_overflow_ok", "1e999", register.KindFloat, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := FieldInput(tt.text, tt.kind)
			if tt.ok && msg != "" {
				t.Errorf("FieldInput(%q) = %q, want acceptance", tt.text, msg)
			}
			if !tt.ok && msg == "" {
				t.Errorf("FieldInput(%q) accepted, want rejection", tt.text)
			}
		})
	}
}
