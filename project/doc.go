// Package project imports and exports complete project documents: register
// definitions plus hex-encoded register values in a versioned JSON envelope.
//
// Import is deliberately forgiving below the top level. Only a document that
// fails to parse at all is a hard error; each register inside is sanitized
// and validated on its own, invalid registers are skipped with an itemized
// warning, and a corrupt register value falls back to zero.
package project
