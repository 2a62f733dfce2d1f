package collections

import (
	"cmp"

	"github.com/tidwall/btree"

	"github.com/orenbenkiki/cpl"
)

// Map is an ordered key-to-value mapping. The zero Map is empty and
// ready to use.
type Map[K cmp.Ordered, V any] struct {
	m btree.Map[K, V]
}

// Len returns the number of entries.
func (m *Map[K, V]) Len() int { return m.m.Len() }

// Set stores v under k, replacing any previous value.
func (m *Map[K, V]) Set(k K, v V) {
	m.m.Set(k, v)
}

// Get returns the value stored under k, if any.
func (m *Map[K, V]) Get(k K) (V, bool) {
	return m.m.Get(k)
}

// At returns the value stored under k. A missing key is a violation in
// the safe variant; the fast variant returns the zero value.
func (m *Map[K, V]) At(k K) V {
	v, ok := m.m.Get(k)
	cpl.Assert(ok, cpl.CodeOutOfBounds, "accessing a missing map key")
	return v
}

// Delete removes the entry under k and reports whether it existed.
func (m *Map[K, V]) Delete(k K) bool {
	_, ok := m.m.Delete(k)
	return ok
}

// Scan iterates entries in key order while iter returns true.
func (m *Map[K, V]) Scan(iter func(k K, v V) bool) {
	m.m.Scan(iter)
}
