package collections

import "github.com/orenbenkiki/cpl"

// Vector is a growable ordered sequence with checked indexing.
type Vector[T any] struct {
	items []T
}

// Len returns the number of elements.
func (v *Vector[T]) Len() int { return len(v.items) }

// Push appends an element.
func (v *Vector[T]) Push(item T) {
	v.items = append(v.items, item)
}

// Pop removes and returns the last element. Popping an empty vector is a
// violation in the safe variant and undefined in the fast variant.
func (v *Vector[T]) Pop() T {
	cpl.Assert(len(v.items) > 0, cpl.CodeOutOfBounds, "popping an empty vector")
	last := v.items[len(v.items)-1]
	v.items = v.items[:len(v.items)-1]
	return last
}

// At returns the element at index i.
func (v *Vector[T]) At(i int) T {
	v.check(i)
	return v.items[i]
}

// Ptr returns the address of the element at index i.
func (v *Vector[T]) Ptr(i int) *T {
	v.check(i)
	return &v.items[i]
}

// Set replaces the element at index i.
func (v *Vector[T]) Set(i int, item T) {
	v.check(i)
	v.items[i] = item
}

// Truncate shortens the vector to n elements.
func (v *Vector[T]) Truncate(n int) {
	cpl.Assert(n >= 0 && n <= len(v.items), cpl.CodeOutOfBounds, "truncating past vector length")
	v.items = v.items[:n]
}

// Slice returns the backing slice. Mutations through it are visible to
// the vector.
func (v *Vector[T]) Slice() []T { return v.items }

func (v *Vector[T]) check(i int) {
	cpl.Assert(i >= 0 && i < len(v.items), cpl.CodeOutOfBounds, "vector index out of range")
}
