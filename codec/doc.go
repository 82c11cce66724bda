// Package codec converts between raw register bits and typed field values.
//
// Decode is a total function: any raw bit pattern decodes under any
// structurally valid field, including IEEE 754 special values. Encode is the
// inverse and may fail on unparsable free text; interactive callers gate it
// behind validate.FieldInput.
package codec
