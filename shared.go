package cpl

// sharedBlock is the control block behind the shared-ownership kinds. It
// is deliberately not generic: element-type-widened views of the same
// value all point at one block, so the strong count and the lifetime
// token stay shared across views.
type sharedBlock struct {
	strong int
	src    any // concrete pointer to the owned value
	tok    token
}

func (b *sharedBlock) acquire() { b.strong++ }

func (b *sharedBlock) release() {
	Assert(b.strong > 0, CodeDanglingAccess, "releasing a destroyed shared owner")
	b.strong--
	if b.strong == 0 {
		dropValue(b.src)
		b.tok.invalidate()
	}
}

// SharedOwner shares ownership of a value with any number of other
// SharedOwner and SharedOwnerRef handles. Share copies it (count +1),
// Reset releases it (count -1); the value is destroyed when the count
// reaches zero. The zero SharedOwner is null.
//
// Plain struct assignment aliases the handle without touching the count;
// the alias must not be Reset. Use Share for a counted copy.
type SharedOwner[T any] struct {
	ptr *T
	blk *sharedBlock
}

// IsNil reports whether the owner is null.
func (s SharedOwner[T]) IsNil() bool { return s.blk == nil }

// UseCount returns the number of owning handles, or 0 for a null owner.
func (s SharedOwner[T]) UseCount() int {
	if s.blk == nil {
		return 0
	}
	return s.blk.strong
}

// Get returns the typed address of the owned value, or nil when null.
func (s SharedOwner[T]) Get() *T {
	if s.blk == nil {
		return nil
	}
	s.blk.tok.checkLive("access")
	return s.ptr
}

// Value dereferences the owned value. Dereferencing a null owner is a
// violation in the safe variant and undefined in the fast variant.
func (s SharedOwner[T]) Value() T {
	Assert(s.blk != nil, CodeEmptyAccess, "dereferencing a null shared owner")
	s.blk.tok.checkLive("access")
	return *s.ptr
}

// ValueOr dereferences the owned value, or returns fallback when null.
func (s SharedOwner[T]) ValueOr(fallback T) T {
	if s.blk == nil {
		return fallback
	}
	s.blk.tok.checkLive("access")
	return *s.ptr
}

// Share returns a new owning handle to the same value, incrementing the
// shared count. Sharing a null owner yields a null owner.
func (s SharedOwner[T]) Share() SharedOwner[T] {
	if s.blk != nil {
		s.blk.acquire()
	}
	return s
}

// Reset releases this handle. When the last owning handle is released
// the value's Dropper runs, the token is invalidated, and every live
// borrow becomes stale atomically with that step.
func (s *SharedOwner[T]) Reset() {
	if s.blk == nil {
		return
	}
	s.blk.release()
	*s = SharedOwner[T]{}
}

// ToRef transfers this handle into the non-null counterpart without
// changing the shared count. Converting a null owner is a violation in
// the safe variant.
func (s *SharedOwner[T]) ToRef() SharedOwnerRef[T] {
	Assert(s.blk != nil, CodeNullReference,
		"constructing a shared reference from a null shared owner")
	moved := SharedOwnerRef[T]{ptr: s.ptr, blk: s.blk}
	*s = SharedOwner[T]{}
	return moved
}

// Borrow derives a non-owning indirection to the owned value. Borrowing
// from a null owner is a violation in the safe variant.
func (s SharedOwner[T]) Borrow() Borrow[T] {
	Assert(s.blk != nil, CodeEmptyAccess, "borrowing from a null shared owner")
	if s.blk == nil {
		return Borrow[T]{}
	}
	return Borrow[T]{ptr: s.ptr, src: s.blk.src, tok: s.blk.tok}
}

// BorrowOr derives a non-owning indirection to the owned value, or
// returns fallback when the owner is null. It never fails.
func (s SharedOwner[T]) BorrowOr(fallback Borrow[T]) Borrow[T] {
	if s.blk == nil {
		return fallback
	}
	return Borrow[T]{ptr: s.ptr, src: s.blk.src, tok: s.blk.tok}
}

// BorrowRef derives a non-null indirection to the owned value.
func (s SharedOwner[T]) BorrowRef() BorrowRef[T] {
	Assert(s.blk != nil, CodeNullReference,
		"constructing a reference from a null shared owner")
	return BorrowRef[T]{ptr: s.ptr, src: s.blk.src, tok: s.blk.tok}
}

// Weak derives a non-owning observer that does not keep the value alive.
func (s SharedOwner[T]) Weak() WeakObserver[T] {
	return WeakObserver[T]{ptr: s.ptr, blk: s.blk}
}

// SharedOwnerRef is the non-null counterpart of SharedOwner. The zero
// SharedOwnerRef is invalid; construction goes through NewSharedRef or
// SharedOwner.ToRef, both of which reject null sources.
type SharedOwnerRef[T any] struct {
	ptr *T
	blk *sharedBlock
}

// UseCount returns the number of owning handles.
func (r SharedOwnerRef[T]) UseCount() int {
	if r.blk == nil {
		return 0
	}
	return r.blk.strong
}

// Get returns the typed address of the owned value.
func (r SharedOwnerRef[T]) Get() *T {
	Assert(r.blk != nil, CodeNullReference, "accessing a null reference")
	r.blk.tok.checkLive("access")
	return r.ptr
}

// Value dereferences the owned value.
func (r SharedOwnerRef[T]) Value() T {
	Assert(r.blk != nil, CodeNullReference, "accessing a null reference")
	r.blk.tok.checkLive("access")
	return *r.ptr
}

// Share returns a new owning handle to the same value, incrementing the
// shared count.
func (r SharedOwnerRef[T]) Share() SharedOwnerRef[T] {
	Assert(r.blk != nil, CodeNullReference, "sharing a null reference")
	if r.blk != nil {
		r.blk.acquire()
	}
	return r
}

// ToOwner transfers this handle into the nullable counterpart without
// changing the shared count, leaving the source invalid.
func (r *SharedOwnerRef[T]) ToOwner() SharedOwner[T] {
	Assert(r.blk != nil, CodeNullReference, "moving out of a null reference")
	moved := SharedOwner[T]{ptr: r.ptr, blk: r.blk}
	*r = SharedOwnerRef[T]{}
	return moved
}

// Drop releases this handle, leaving the reference invalid.
func (r *SharedOwnerRef[T]) Drop() {
	Assert(r.blk != nil, CodeNullReference, "dropping a null reference")
	if r.blk != nil {
		r.blk.release()
	}
	*r = SharedOwnerRef[T]{}
}

// Borrow derives a non-owning indirection to the owned value.
func (r SharedOwnerRef[T]) Borrow() Borrow[T] {
	if r.blk == nil {
		return Borrow[T]{}
	}
	return Borrow[T]{ptr: r.ptr, src: r.blk.src, tok: r.blk.tok}
}

// BorrowRef derives a non-null indirection to the owned value.
func (r SharedOwnerRef[T]) BorrowRef() BorrowRef[T] {
	Assert(r.blk != nil, CodeNullReference, "accessing a null reference")
	return BorrowRef[T]{ptr: r.ptr, src: r.blk.src, tok: r.blk.tok}
}

// Weak derives a non-owning observer that does not keep the value alive.
func (r SharedOwnerRef[T]) Weak() WeakObserver[T] {
	return WeakObserver[T]{ptr: r.ptr, blk: r.blk}
}

// WeakObserver observes a shared value without owning it. Lock is the
// only non-failing way to test liveness from a non-owning handle: it
// yields a null SharedOwner once the value is gone, never a violation.
// The zero WeakObserver is expired.
type WeakObserver[T any] struct {
	ptr *T
	blk *sharedBlock
}

// Expired reports whether the observed value has been destroyed.
func (w WeakObserver[T]) Expired() bool {
	return w.blk == nil || w.blk.strong == 0
}

// UseCount returns the number of owning handles still alive.
func (w WeakObserver[T]) UseCount() int {
	if w.blk == nil {
		return 0
	}
	return w.blk.strong
}

// Lock attempts to produce a new owning handle. It returns a null
// SharedOwner when the value is already gone.
func (w WeakObserver[T]) Lock() SharedOwner[T] {
	if w.blk == nil || w.blk.strong == 0 {
		return SharedOwner[T]{}
	}
	w.blk.acquire()
	return SharedOwner[T]{ptr: w.ptr, blk: w.blk}
}
