// Package grid computes the bit grid layout of a single register: the
// partition of its bits into display rows with per-row nibble groupings,
// field-label spans and reserved-bit ranges.
//
// The computation is a pure function of the display width, the register
// width and its fields; renderers consume the row structures as-is.
package grid
