// Package regmap computes the address-ordered register map layout: placed
// registers partitioned into fixed-width address rows, with cross-register
// overlap detection and per-cell field segment decomposition.
//
// Address overlap between registers is a soft, display-only warning; unions
// and aliased views legitimately share address space. This deliberately
// differs from field overlap inside one register, which the validate package
// treats as a hard error.
package regmap
