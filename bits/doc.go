// Package bits provides exact-width bit manipulation over math/big integers.
//
// All register arithmetic in the library goes through this package so that
// registers wider than a machine word behave identically to narrow ones.
// Functions never mutate their arguments and never use floating point.
package bits
