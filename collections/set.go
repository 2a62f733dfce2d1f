package collections

import (
	"cmp"

	"github.com/tidwall/btree"
)

// Set is an ordered set. The zero Set is empty and ready to use.
type Set[K cmp.Ordered] struct {
	s btree.Set[K]
}

// Len returns the number of elements.
func (s *Set[K]) Len() int { return s.s.Len() }

// Insert adds k to the set.
func (s *Set[K]) Insert(k K) {
	s.s.Insert(k)
}

// Contains reports whether k is in the set.
func (s *Set[K]) Contains(k K) bool {
	return s.s.Contains(k)
}

// Delete removes k from the set.
func (s *Set[K]) Delete(k K) {
	s.s.Delete(k)
}

// Scan iterates elements in order while iter returns true.
func (s *Set[K]) Scan(iter func(k K) bool) {
	s.s.Scan(iter)
}
