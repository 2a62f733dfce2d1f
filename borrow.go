package cpl

import "reflect"

// Borrow is a nullable non-owning indirection to data whose lifetime is
// managed by an owning kind, or by the caller for unsafe borrows. It
// never participates in destruction decisions. The zero Borrow is null.
//
// In the safe variant every checked access revalidates the owner's
// lifetime token; once the owner is destroyed the borrow is expired, a
// one-way transition discovered lazily at the next access.
type Borrow[T any] struct {
	ptr *T
	src any // concrete pointer to the referent; nil iff the borrow is null
	tok token
	ro  bool
}

// IsNil reports whether the borrow is null.
func (b Borrow[T]) IsNil() bool { return b.src == nil }

// Get returns the typed address of the referent, or nil for a null
// borrow. The safe variant rejects mutable access through a read-only
// borrow and access past the owner's destruction.
func (b Borrow[T]) Get() *T {
	b.tok.checkLive("access")
	Assert(!b.ro, CodeConstViolation, "mutable access through a read-only borrow")
	return b.ptr
}

// Value dereferences the borrow. Dereferencing a null or expired borrow
// is a violation in the safe variant and undefined in the fast variant.
func (b Borrow[T]) Value() T {
	b.tok.checkLive("access")
	Assert(b.src != nil, CodeEmptyAccess, "dereferencing a null borrow")
	return *b.ptr
}

// ValueOr dereferences the borrow, or returns fallback if it is null.
func (b Borrow[T]) ValueOr(fallback T) T {
	b.tok.checkLive("access")
	if b.src == nil {
		return fallback
	}
	return *b.ptr
}

// ReadOnly returns a view of the same referent that rejects mutable
// access in the safe variant.
func (b Borrow[T]) ReadOnly() Borrow[T] {
	b.ro = true
	return b
}

// Writable removes the read-only restriction. This is the const-cast
// escape hatch; prefer keeping views read-only.
func (b Borrow[T]) Writable() Borrow[T] {
	b.ro = false
	return b
}

// IsReadOnly reports whether mutable access is restricted.
func (b Borrow[T]) IsReadOnly() bool { return b.ro }

// Equal reports whether both borrows refer to the same address. Two null
// borrows compare equal.
func (b Borrow[T]) Equal(o Borrow[T]) bool { return b.src == o.src }

// Less orders borrows by referent address, with null first.
func (b Borrow[T]) Less(o Borrow[T]) bool { return addrOf(b.src) < addrOf(o.src) }

// ToRef converts the borrow into its non-null counterpart. Converting a
// null or expired borrow is a violation in the safe variant.
func (b Borrow[T]) ToRef() BorrowRef[T] {
	Assert(b.src != nil && b.tok.alive(), CodeNullReference,
		"constructing a reference from a null or expired borrow")
	return BorrowRef[T]{ptr: b.ptr, src: b.src, tok: b.tok, ro: b.ro}
}

// BorrowRef is the non-null counterpart of Borrow: construction from an
// empty or expired source fails immediately, and every subsequent
// checked access revalidates liveness. The zero BorrowRef is invalid.
type BorrowRef[T any] struct {
	ptr *T
	src any
	tok token
	ro  bool
}

// Get returns the typed address of the referent.
func (r BorrowRef[T]) Get() *T {
	Assert(r.src != nil, CodeNullReference, "accessing a null reference")
	r.tok.checkLive("access")
	Assert(!r.ro, CodeConstViolation, "mutable access through a read-only reference")
	return r.ptr
}

// Value dereferences the reference, revalidating liveness first.
func (r BorrowRef[T]) Value() T {
	Assert(r.src != nil, CodeNullReference, "accessing a null reference")
	r.tok.checkLive("access")
	return *r.ptr
}

// ReadOnly returns a view of the same referent that rejects mutable
// access in the safe variant.
func (r BorrowRef[T]) ReadOnly() BorrowRef[T] {
	r.ro = true
	return r
}

// Writable removes the read-only restriction.
func (r BorrowRef[T]) Writable() BorrowRef[T] {
	r.ro = false
	return r
}

// IsReadOnly reports whether mutable access is restricted.
func (r BorrowRef[T]) IsReadOnly() bool { return r.ro }

// Equal reports whether both references refer to the same address.
func (r BorrowRef[T]) Equal(o BorrowRef[T]) bool { return r.src == o.src }

// Less orders references by referent address.
func (r BorrowRef[T]) Less(o BorrowRef[T]) bool { return addrOf(r.src) < addrOf(o.src) }

// ToBorrow widens the reference into a nullable borrow.
func (r BorrowRef[T]) ToBorrow() Borrow[T] {
	return Borrow[T]{ptr: r.ptr, src: r.src, tok: r.tok, ro: r.ro}
}

// UnsafeBorrow wraps caller-managed data in a Borrow. The caller asserts
// that the data outlives every derived borrow; cpl cannot verify this, so
// the borrow carries an untracked token that never reports dangling.
// Intended for data with static duration.
func UnsafeBorrow[T any](p *T) Borrow[T] {
	if p == nil {
		return Borrow[T]{}
	}
	return Borrow[T]{ptr: p, src: p, tok: untrackedToken()}
}

// UnsafeBorrowRef wraps caller-managed data in a BorrowRef. Same caveats
// as UnsafeBorrow; wrapping nil is a violation in the safe variant.
func UnsafeBorrowRef[T any](p *T) BorrowRef[T] {
	Assert(p != nil, CodeNullReference, "constructing a reference from a nil pointer")
	return BorrowRef[T]{ptr: p, src: p, tok: untrackedToken()}
}

func addrOf(src any) uintptr {
	if src == nil {
		return 0
	}
	return reflect.ValueOf(src).Pointer()
}
