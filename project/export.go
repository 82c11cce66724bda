package project

import (
	json "github.com/goccy/go-json"

	"github.com/regview/regview/bits"
	"github.com/regview/regview/errors"
	"github.com/regview/regview/register"
)

// Export serializes the document back into the wire format Import reads.
// Register values are hex-encoded; only values for registers present in the
// document are written.
func Export(doc Document) ([]byte, error) {
	version := doc.Version
	if version == 0 {
		version = 1
	}

	registers := make([]map[string]any, 0, len(doc.Registers))
	for _, def := range doc.Registers {
		registers = append(registers, registerToWire(def))
	}

	values := map[string]string{}
	for id, v := range doc.Values {
		if _, ok := doc.RegisterByID(id); !ok || v == nil {
			continue
		}
		values[id] = bits.FormatHex(v)
	}

	data, err := json.MarshalIndent(map[string]any{
		"version":        version,
		"registers":      registers,
		"registerValues": values,
	}, "", "  ")
	if err != nil {
		return nil, errors.New(errors.PhaseExport, errors.KindBadDocument).Cause(err).Build()
	}
	return data, nil
}

func registerToWire(def register.RegisterDef) map[string]any {
	obj := map[string]any{
		"id":    def.ID,
		"name":  def.Name,
		"width": def.Width,
	}
	if def.Description != "" {
		obj["description"] = def.Description
	}
	if off, ok := def.PlacedAt(); ok {
		obj["offset"] = off
	}

	fields := make([]map[string]any, 0, len(def.Fields))
	for _, f := range def.Fields {
		fields = append(fields, fieldToWire(f))
	}
	obj["fields"] = fields

	return obj
}

func fieldToWire(f register.Field) map[string]any {
	fi := f.Info()
	obj := map[string]any{
		"id":   fi.ID,
		"name": fi.Name,
		"msb":  fi.MSB,
		"lsb":  fi.LSB,
		"type": f.Kind().String(),
	}
	if fi.Description != "" {
		obj["description"] = fi.Description
	}

	switch f := f.(type) {
	case register.Flag:
		if f.Clear != "" {
			obj["clear"] = f.Clear
		}
		if f.Set != "" {
			obj["set"] = f.Set
		}
	case register.Enum:
		entries := make([]map[string]any, 0, len(f.Entries))
		for _, e := range f.Entries {
			entries = append(entries, map[string]any{"value": e.Value, "name": e.Name})
		}
		obj["enumEntries"] = entries
	case register.Integer:
		obj["signedness"] = f.Signedness.String()
	case register.Float:
		obj["floatType"] = f.Precision.String()
	case register.FixedPoint:
		obj["qFormat"] = map[string]any{"m": f.IntBits, "n": f.FracBits}
	}

	return obj
}
