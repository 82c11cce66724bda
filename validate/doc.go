// Package validate checks sanitized register definitions against the
// semantic rules: width bounds, field bit-range legality, per-kind width
// requirements and pairwise field overlap.
//
// Violations are returned as plain Issue values rather than errors so callers
// choose the policy: the import path rejects a register with any issue as a
// unit, while interactive surfaces may show the same issues as warnings.
//
// FieldInput is the fast free-text pre-check used by editors before
// codec.Encode is attempted.
package validate
