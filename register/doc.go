// Package register defines the data model: register definitions, the field
// sum type with its five interpretations, and the decoded value union.
//
// Field and DecodedValue are closed unions sealed by unexported methods, so a
// type switch over their variants is exhaustive. All values in this package
// are immutable records; nothing here mutates in place.
package register
