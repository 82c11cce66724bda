// Package sanitize turns untrusted parsed-JSON objects into well-formed
// register definitions.
//
// Sanitization is the first of three defensive tiers: it never fails, always
// producing a structurally valid value by substituting safe defaults. The
// validate package then judges semantic legality, and callers apply policy.
package sanitize
