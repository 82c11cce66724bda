// Package errors provides structured error types for the regview library.
//
// Errors are categorized by Phase (where the error occurred) and Kind (error category).
// The Error type includes rich context: the field involved, the offending value,
// and a cause chain.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseEncode, errors.KindBadLiteral).
//		Field("BAUD").
//		Value("0xZZ").
//		Detail("cannot parse integer literal").
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.BadLiteral(errors.PhaseEncode, "BAUD", "0xZZ", "integer literal")
//	err := errors.NotFinite(errors.PhaseEncode, "GAIN", math.Inf(1))
//
// All errors implement the standard error interface and support errors.Is/As.
//
// Note that definition-level validation does not use this package: the
// validate package reports rule violations as plain value slices so callers
// can apply policy (reject, warn, ignore) without unwrapping errors.
package errors
