package sanitize

import (
	"testing"

	json "github.com/goccy/go-json"
)

func FuzzRegister(f *testing.F) {
	// Add a well-formed register as seed
	f.Add([]byte(`{"name":"R","width":8,"fields":[{"name":"F","msb":7,"lsb":0,"type":"integer"}]}`))

	// Add structurally hostile documents
	f.Add([]byte(`{"width":1e309,"fields":[null,1,"x",{}]}`))
	f.Add([]byte(`{"id":7,"offset":-1,"fields":[{"type":"enum","enumEntries":[{},{"value":"x"}]}]}`))
	f.Add([]byte(`{"fields":[{"type":"fixed-point","qFormat":{"m":3.5}}]}`))
	f.Add([]byte(`{}`))

	s := New(nil)
	f.Fuzz(func(t *testing.T, data []byte) {
		var raw map[string]any
		if err := json.Unmarshal(data, &raw); err != nil {
			return
		}
		// Sanitization must never panic and must always produce a value.
		def := s.Register(raw)
		_ = def.ID
	})
}
