package sanitize

import (
	"math"
	"strconv"

	json "github.com/goccy/go-json"
	"github.com/google/uuid"

	"github.com/regview/regview"
	"github.com/regview/regview/register"
)

// Sanitizer converts arbitrary parsed-JSON objects into well-formed
// definitions. It never fails and never rejects: anything malformed is
// replaced with a safe default or dropped, and semantic legality is left to
// the validate package.
type Sanitizer struct {
	ids regview.IDSource
}

// New returns a sanitizer. A nil ids falls back to random UUIDs; tests pass
// a deterministic source instead.
func New(ids regview.IDSource) *Sanitizer {
	if ids == nil {
		ids = uuid.NewString
	}
	return &Sanitizer{ids: ids}
}

// Register converts a raw object into a RegisterDef. Unknown properties are
// dropped; a missing or unusable id is replaced with a fresh one; field
// entries that are not objects are discarded.
func (s *Sanitizer) Register(raw map[string]any) register.RegisterDef {
	def := register.RegisterDef{
		ID:          s.id(raw),
		Name:        stringProp(raw, "name"),
		Description: stringProp(raw, "description"),
		Width:       intProp(raw, "width"),
	}

	if v, ok := raw["offset"]; ok {
		if n, ok := intValue(v); ok && n >= 0 {
			off := int64(n)
			def.Offset = &off
		} else {
			zero := int64(0)
			def.Offset = &zero
		}
	}

	items, _ := raw["fields"].([]any)
	for _, item := range items {
		obj, ok := item.(map[string]any)
		if !ok {
			continue
		}
		def.Fields = append(def.Fields, s.Field(obj))
	}

	return def
}

// Field converts a raw object into a Field. An unrecognized or missing type
// defaults to integer; per-kind properties go through the draft form so a
// malformed object degrades the same way an editor reset would.
func (s *Sanitizer) Field(raw map[string]any) register.Field {
	d := register.Draft{
		ID:          s.id(raw),
		Name:        stringProp(raw, "name"),
		Description: stringProp(raw, "description"),
		MSB:         intProp(raw, "msb"),
		LSB:         intProp(raw, "lsb"),
	}
	d.Kind, _ = register.ParseKind(stringProp(raw, "type"))

	switch d.Kind {
	case register.KindFlag:
		d.FlagClear = stringProp(raw, "clear")
		d.FlagSet = stringProp(raw, "set")

	case register.KindEnum:
		d.EnumEntries = enumEntries(raw["enumEntries"])

	case register.KindInteger:
		d.Signedness = signedness(raw)

	case register.KindFloat:
		d.Precision, _ = register.ParsePrecision(stringProp(raw, "floatType"))

	case register.KindFixedPoint:
		if q, ok := raw["qFormat"].(map[string]any); ok {
			d.IntBits = intProp(q, "m")
			d.FracBits = intProp(q, "n")
		}
	}

	return d.Field()
}

func (s *Sanitizer) id(raw map[string]any) string {
	if id, ok := raw["id"].(string); ok && id != "" {
		return id
	}
	return s.ids()
}

// signedness reads the current spelling, migrating the legacy boolean
// "signed" property: true meant two's complement, false meant unsigned.
func signedness(raw map[string]any) register.Signedness {
	if v, ok := raw["signedness"].(string); ok {
		sgn, _ := register.ParseSignedness(v)
		return sgn
	}
	if legacy, ok := raw["signed"].(bool); ok && legacy {
		return register.TwosComplement
	}
	return register.Unsigned
}

// enumEntries filters malformed entries individually rather than discarding
// the whole table.
func enumEntries(v any) []register.EnumEntry {
	items, _ := v.([]any)
	var out []register.EnumEntry
	for _, item := range items {
		obj, ok := item.(map[string]any)
		if !ok {
			continue
		}
		value, ok := intValue(obj["value"])
		if !ok {
			continue
		}
		name, ok := obj["name"].(string)
		if !ok {
			continue
		}
		out = append(out, register.EnumEntry{Value: int64(value), Name: name})
	}
	return out
}

func stringProp(raw map[string]any, key string) string {
	s, _ := raw[key].(string)
	return s
}

// intProp reads an integer property, defaulting NaN, infinities, fractional
// values and wrong types to 0.
func intProp(raw map[string]any, key string) int {
	n, ok := intValue(raw[key])
	if !ok {
		return 0
	}
	return n
}

func intValue(v any) (int, bool) {
	switch n := v.(type) {
	case float64:
		if math.IsNaN(n) || math.IsInf(n, 0) || n != math.Trunc(n) {
			return 0, false
		}
		return int(n), true
	case int:
		return n, true
	case int64:
		return int(n), true
	case json.Number:
		i, err := strconv.ParseInt(string(n), 10, 64)
		if err != nil {
			return 0, false
		}
		return int(i), true
	default:
		return 0, false
	}
}
