package cpl

// UniqueOwner exclusively owns a heap-allocated value. Ownership is
// transferred with Move and never duplicated; the zero UniqueOwner is
// empty. Copying one by plain struct assignment creates an alias that
// defeats the exclusivity contract - always pass owners by Move.
type UniqueOwner[T any] struct {
	ptr *T
	src any
	tok token
}

// IsNil reports whether the owner is empty.
func (u *UniqueOwner[T]) IsNil() bool { return u.src == nil }

// Get returns the typed address of the owned value, or nil when empty.
func (u *UniqueOwner[T]) Get() *T {
	u.tok.checkLive("access")
	return u.ptr
}

// Value dereferences the owned value. Dereferencing an empty owner is a
// violation in the safe variant and undefined in the fast variant.
func (u *UniqueOwner[T]) Value() T {
	Assert(u.src != nil, CodeEmptyAccess, "dereferencing an empty unique owner")
	u.tok.checkLive("access")
	return *u.ptr
}

// ValueOr dereferences the owned value, or returns fallback when empty.
func (u *UniqueOwner[T]) ValueOr(fallback T) T {
	if u.src == nil {
		return fallback
	}
	u.tok.checkLive("access")
	return *u.ptr
}

// Reset destroys the owned value, if any: its Dropper runs, the token is
// invalidated, and every live borrow becomes stale atomically with this
// step.
func (u *UniqueOwner[T]) Reset() {
	if u.src == nil {
		return
	}
	dropValue(u.src)
	u.tok.invalidate()
	*u = UniqueOwner[T]{}
}

// Move transfers ownership out, leaving the source empty.
func (u *UniqueOwner[T]) Move() UniqueOwner[T] {
	moved := UniqueOwner[T]{ptr: u.ptr, src: u.src, tok: u.tok}
	*u = UniqueOwner[T]{}
	return moved
}

// ToRef transfers ownership into the non-null counterpart. Converting an
// empty owner is a violation in the safe variant.
func (u *UniqueOwner[T]) ToRef() UniqueOwnerRef[T] {
	Assert(u.src != nil, CodeNullReference,
		"constructing a unique reference from an empty unique owner")
	moved := UniqueOwnerRef[T]{ptr: u.ptr, src: u.src, tok: u.tok}
	*u = UniqueOwner[T]{}
	return moved
}

// Borrow derives a non-owning indirection to the owned value. A borrow
// of an empty owner is null.
func (u *UniqueOwner[T]) Borrow() Borrow[T] {
	if u.src == nil {
		return Borrow[T]{}
	}
	return Borrow[T]{ptr: u.ptr, src: u.src, tok: u.tok}
}

// BorrowRef derives a non-null indirection to the owned value.
func (u *UniqueOwner[T]) BorrowRef() BorrowRef[T] {
	Assert(u.src != nil, CodeNullReference,
		"constructing a reference from an empty unique owner")
	return BorrowRef[T]{ptr: u.ptr, src: u.src, tok: u.tok}
}

// UniqueOwnerRef is the non-null counterpart of UniqueOwner. The zero
// UniqueOwnerRef is invalid; construction goes through NewUniqueRef or
// UniqueOwner.ToRef, both of which reject empty sources.
type UniqueOwnerRef[T any] struct {
	ptr *T
	src any
	tok token
}

// Get returns the typed address of the owned value.
func (r *UniqueOwnerRef[T]) Get() *T {
	Assert(r.src != nil, CodeNullReference, "accessing a null reference")
	r.tok.checkLive("access")
	return r.ptr
}

// Value dereferences the owned value.
func (r *UniqueOwnerRef[T]) Value() T {
	Assert(r.src != nil, CodeNullReference, "accessing a null reference")
	r.tok.checkLive("access")
	return *r.ptr
}

// Move transfers ownership into another non-null-guaranteeing context,
// leaving the source invalid.
func (r *UniqueOwnerRef[T]) Move() UniqueOwnerRef[T] {
	Assert(r.src != nil, CodeNullReference, "moving out of a null reference")
	moved := UniqueOwnerRef[T]{ptr: r.ptr, src: r.src, tok: r.tok}
	*r = UniqueOwnerRef[T]{}
	return moved
}

// ToOwner transfers ownership into the nullable counterpart, leaving the
// source invalid.
func (r *UniqueOwnerRef[T]) ToOwner() UniqueOwner[T] {
	Assert(r.src != nil, CodeNullReference, "moving out of a null reference")
	moved := UniqueOwner[T]{ptr: r.ptr, src: r.src, tok: r.tok}
	*r = UniqueOwnerRef[T]{}
	return moved
}

// Drop destroys the owned value, leaving the reference invalid.
func (r *UniqueOwnerRef[T]) Drop() {
	Assert(r.src != nil, CodeNullReference, "dropping a null reference")
	dropValue(r.src)
	r.tok.invalidate()
	*r = UniqueOwnerRef[T]{}
}

// Borrow derives a non-owning indirection to the owned value.
func (r *UniqueOwnerRef[T]) Borrow() Borrow[T] {
	if r.src == nil {
		return Borrow[T]{}
	}
	return Borrow[T]{ptr: r.ptr, src: r.src, tok: r.tok}
}

// BorrowRef derives a non-null indirection to the owned value.
func (r *UniqueOwnerRef[T]) BorrowRef() BorrowRef[T] {
	Assert(r.src != nil, CodeNullReference, "accessing a null reference")
	return BorrowRef[T]{ptr: r.ptr, src: r.src, tok: r.tok}
}
