package project

import (
	"math/big"

	json "github.com/goccy/go-json"
	"go.uber.org/zap"

	"github.com/regview/regview"
	"github.com/regview/regview/bits"
	"github.com/regview/regview/errors"
	"github.com/regview/regview/register"
	"github.com/regview/regview/sanitize"
	"github.com/regview/regview/validate"
)

// wireDocument tolerates junk everywhere below the top level: register
// entries and value entries are typed loosely and cleaned up individually.
type wireDocument struct {
	Version   int            `json:"version"`
	Registers []any          `json:"registers"`
	Values    map[string]any `json:"registerValues"`
}

// Import parses a project document. A document that fails to parse at all is
// the only hard error; each register inside is sanitized and validated
// independently, and invalid ones are skipped with an itemized warning. A
// corrupt register value degrades to zero rather than blocking the import.
func Import(data []byte, s *sanitize.Sanitizer, limits regview.Limits) (Document, []Warning, error) {
	var wire wireDocument
	if err := json.Unmarshal(data, &wire); err != nil {
		return Document{}, nil, errors.BadDocument(err)
	}

	doc := Document{
		Version: wire.Version,
		Values:  register.ValueMap{},
	}
	var warnings []Warning

	for i, item := range wire.Registers {
		raw, ok := item.(map[string]any)
		if !ok {
			warnings = append(warnings, Warning{
				Index:  i,
				Issues: []validate.Issue{{Message: "register entry is not an object"}},
			})
			continue
		}

		def := s.Register(raw)
		if issues := validate.Register(def, limits); len(issues) > 0 {
			Logger().Debug("register rejected on import",
				zap.String("register", def.Name),
				zap.Int("index", i),
				zap.Int("issues", len(issues)))
			warnings = append(warnings, Warning{Register: def.Name, Index: i, Issues: issues})
			continue
		}
		doc.Registers = append(doc.Registers, def)
	}

	for id, raw := range wire.Values {
		def, ok := doc.RegisterByID(id)
		if !ok {
			continue // value for a register that didn't survive import
		}
		doc.Values.Set(id, importValue(id, raw, def.Width))
	}

	return doc, warnings, nil
}

// importValue decodes one hex-encoded register value, degrading to zero on
// anything malformed and clamping to the register's declared width.
func importValue(id string, raw any, width int) *big.Int {
	text, ok := raw.(string)
	if !ok {
		Logger().Debug("register value is not a string", zap.String("register", id))
		return new(big.Int)
	}
	v, err := bits.ParseHex(text)
	if err != nil {
		Logger().Debug("corrupt register value",
			zap.String("register", id), zap.String("value", text))
		return new(big.Int)
	}
	return bits.Clamp(v, width)
}
