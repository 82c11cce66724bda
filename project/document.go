package project

import (
	"strings"

	"github.com/regview/regview/register"
	"github.com/regview/regview/validate"
)

// Document is a complete project: register definitions plus the current
// value of each register, keyed by register ID.
type Document struct {
	Version   int
	Registers []register.RegisterDef
	Values    register.ValueMap
}

// Warning describes one register that was skipped on import, with the full
// list of rule violations that disqualified it. Registers are rejected as a
// unit, never partially applied.
type Warning struct {
	Register string
	Index    int
	Issues   []validate.Issue
}

func (w Warning) String() string {
	var b strings.Builder
	b.WriteString("register ")
	if w.Register != "" {
		b.WriteString("\"" + w.Register + "\"")
	} else {
		b.WriteString("(unnamed)")
	}
	b.WriteString(" skipped: ")
	for i, issue := range w.Issues {
		if i > 0 {
			b.WriteString("; ")
		}
		b.WriteString(issue.Message)
	}
	return b.String()
}

// RegisterByID returns the definition with the given ID.
func (d Document) RegisterByID(id string) (register.RegisterDef, bool) {
	for _, r := range d.Registers {
		if r.ID == id {
			return r, true
		}
	}
	return register.RegisterDef{}, false
}
