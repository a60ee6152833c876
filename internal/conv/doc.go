// Package conv provides safe integer type conversion utilities.
//
// Positions are plain ints in the public API but 32-bit values inside the
// roaring-backed row sets; these helpers guard that boundary.
package conv
