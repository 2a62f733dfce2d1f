// Package collections provides the collection companions of the cpl
// indirection kinds: a fixed-size bit-vector, an ordered map, an ordered
// set, a growable sequence and a growable text buffer.
//
// All bounds and presence checks route through cpl.Assert, so they are
// enforced in the safe variant and compile away in the fast variant -
// the same trade-off the indirection kinds make, selected by the same
// build tags.
package collections
