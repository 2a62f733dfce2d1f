package collections

import (
	"fortio.org/safecast"
	"github.com/bits-and-blooms/bitset"

	"github.com/orenbenkiki/cpl"
)

// BitSet is a fixed-size bit-vector. The size is set at construction;
// indexing past it is a violation in the safe variant.
type BitSet struct {
	bits *bitset.BitSet
	size uint
}

// NewBitSet creates a bit-vector of the given size with all bits clear.
func NewBitSet(size int) *BitSet {
	n, err := safecast.Conv[uint](size)
	cpl.Assert(err == nil, cpl.CodeOutOfBounds, "negative bit-set size")
	return &BitSet{bits: bitset.New(n), size: n}
}

// Len returns the fixed size of the bit-vector.
func (b *BitSet) Len() int { return int(b.size) }

// Count returns the number of set bits.
func (b *BitSet) Count() int { return int(b.bits.Count()) }

// Test reports whether bit i is set.
func (b *BitSet) Test(i int) bool {
	b.check(i)
	return b.bits.Test(uint(i))
}

// Set sets bit i.
func (b *BitSet) Set(i int) {
	b.check(i)
	b.bits.Set(uint(i))
}

// Clear clears bit i.
func (b *BitSet) Clear(i int) {
	b.check(i)
	b.bits.Clear(uint(i))
}

// Flip inverts bit i.
func (b *BitSet) Flip(i int) {
	b.check(i)
	b.bits.Flip(uint(i))
}

func (b *BitSet) check(i int) {
	cpl.Assert(i >= 0 && uint(i) < b.size, cpl.CodeOutOfBounds, "bit index out of range")
}
