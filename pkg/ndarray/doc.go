// Package ndarray provides the dense multi-dimensional array and the slice
// selection types used by storage round-trip fixtures.
//
// [Array.Select] applies a [SliceSpec] the way the storage engine's reader
// does, including rejecting ranges whose end lies before their start
// ([ErrMalformedRange]). Generated fixtures produce such ranges on purpose.
package ndarray
