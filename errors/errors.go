package errors

import (
	"fmt"
	"strings"
)

// Phase indicates where in processing the error occurred
type Phase string

const (
	PhaseSanitize Phase = "sanitize" // untrusted input conversion
	PhaseValidate Phase = "validate" // semantic rule checking
	PhaseEncode   Phase = "encode"   // typed value to raw bits
	PhaseDecode   Phase = "decode"   // raw bits to typed value
	PhaseImport   Phase = "import"   // project document import
	PhaseExport   Phase = "export"   // project document export
	PhaseLayout   Phase = "layout"   // grid/map computation
)

// Kind categorizes the error
type Kind string

const (
	KindBadLiteral   Kind = "bad_literal"
	KindNotFinite    Kind = "not_finite"
	KindInvalidData  Kind = "invalid_data"
	KindUnsupported  Kind = "unsupported"
	KindOutOfRange   Kind = "out_of_range"
	KindUnknownField Kind = "unknown_field"
	KindBadDocument  Kind = "bad_document"
)

// Error is the structured error type used throughout the library
type Error struct {
	Value  any
	Cause  error
	Phase  Phase
	Kind   Kind
	Field  string // field name or ID the error refers to, if any
	Detail string
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if e.Field != "" {
		b.WriteString(" at ")
		b.WriteString(e.Field)
	}

	if e.Detail != "" {
		b.WriteString(": ")
		b.WriteString(e.Detail)
	}

	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}

	return b.String()
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Phase == t.Phase && e.Kind == t.Kind
	}
	return false
}

// Builder provides structured error construction
type Builder struct {
	err Error
}

// New creates a new error builder
func New(phase Phase, kind Kind) *Builder {
	return &Builder{
		err: Error{
			Phase: phase,
			Kind:  kind,
		},
	}
}

// Field sets the field name or ID
func (b *Builder) Field(name string) *Builder {
	b.err.Field = name
	return b
}

// Value sets the offending value
func (b *Builder) Value(v any) *Builder {
	b.err.Value = v
	return b
}

// Cause sets the underlying error
func (b *Builder) Cause(err error) *Builder {
	b.err.Cause = err
	return b
}

// Detail sets the human-readable detail message
func (b *Builder) Detail(msg string, args ...any) *Builder {
	if len(args) > 0 {
		b.err.Detail = fmt.Sprintf(msg, args...)
	} else {
		b.err.Detail = msg
	}
	return b
}

// Build returns the constructed error
func (b *Builder) Build() *Error {
	return &b.err
}

// Convenience constructors for common error patterns

// BadLiteral creates an error for free text that does not parse as the
// expected literal form.
func BadLiteral(phase Phase, field, text, want string) *Error {
	preview := text
	if len(preview) > 64 {
		preview = preview[:64]
	}
	return &Error{
		Phase:  phase,
		Kind:   KindBadLiteral,
		Field:  field,
		Detail: fmt.Sprintf("%q is not a valid %s", preview, want),
		Value:  text,
	}
}

// NotFinite creates an error for a numeric input that parsed to NaN or an
// infinity where a finite value is required.
func NotFinite(phase Phase, field string, value any) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindNotFinite,
		Field:  field,
		Detail: fmt.Sprintf("value %v is not finite", value),
		Value:  value,
	}
}

// Unsupported creates an unsupported operation error
func Unsupported(phase Phase, what string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindUnsupported,
		Detail: what,
	}
}

// InvalidData creates an invalid data error
func InvalidData(phase Phase, field, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindInvalidData,
		Field:  field,
		Detail: detail,
	}
}

// BadDocument creates an error for a project document that cannot be parsed
// at all (as opposed to one containing individually malformed registers).
func BadDocument(cause error) *Error {
	return &Error{
		Phase:  PhaseImport,
		Kind:   KindBadDocument,
		Detail: "parse project document",
		Cause:  cause,
	}
}

// Wrap wraps an existing error with additional context
func Wrap(phase Phase, kind Kind, cause error, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   kind,
		Detail: detail,
		Cause:  cause,
	}
}
