// Package regview provides the core data model and algorithms for defining
// hardware register layouts and decoding register values against them.
//
// A register is a named fixed-width binary value composed of typed bit-fields.
// The library models register definitions, converts raw register values to and
// from typed field values, validates definitions for internal consistency, and
// computes the two-dimensional layouts used to present registers on screen.
//
// # Architecture Overview
//
// The library is organized into several packages with distinct responsibilities:
//
//	regview/             Root package with shared limits and capabilities
//	├── bits/            Arbitrary-precision bit extraction and replacement
//	├── register/        Register and field data model (sum types)
//	├── codec/           Per-field-type decode and encode
//	├── sanitize/        Untrusted input to well-formed definitions
//	├── validate/        Semantic rule checking and input pre-checks
//	├── grid/            Bit grid layout for a single register
//	├── regmap/          Address-ordered register map layout
//	├── project/         Project document import/export
//	└── errors/          Structured error types for debugging
//
// # Quick Start
//
// Decode a field from a raw register value:
//
//	f := register.Integer{
//	    FieldInfo:  register.FieldInfo{Name: "COUNT", MSB: 7, LSB: 0},
//	    Signedness: register.TwosComplement,
//	}
//	v := codec.Decode(big.NewInt(0xFE), f)
//	fmt.Println(v) // "-2"
//
// Import a project document, skipping malformed registers:
//
//	doc, warnings, err := project.Import(data, sanitize.New(nil), regview.DefaultLimits())
//
// # Arbitrary Register Widths
//
// Register values are math/big integers, never fixed machine words. Widths up
// to Limits.MaxRegisterWidth (256 by default) are supported exactly, with no
// floating-point arithmetic anywhere in the bit-level paths.
//
// # Concurrency
//
// Every core function is pure: inputs are never mutated and no package-level
// state is touched beyond the optional loggers. All packages are safe for
// concurrent use without synchronization.
package regview
