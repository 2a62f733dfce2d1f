package cpl

// Widening conversions reinterpret a kind over element type T as the same
// kind over U, where U is an interface satisfied by *T (or T itself).
// They are the Go rendering of the C-family implicit subtype conversions:
// covariant widening only, address preserved, ownership discipline of the
// source kind respected - copy for shared and borrowing kinds, move for
// unique kinds. Read-only views stay read-only.
//
// An element pair that does not satisfy the relation is a programming
// error: the safe variant reports CodeCastMismatch and the result is
// null/invalid.

// widenPtr produces the *U view of a concrete source pointer. It
// succeeds when U is the concrete type itself or an interface the
// concrete pointer satisfies.
func widenPtr[U any](src any) (*U, bool) {
	if p, ok := src.(*U); ok {
		return p, true
	}
	if v, ok := src.(U); ok {
		return &v, true
	}
	return nil, false
}

// WidenBorrow converts a Borrow[T] into a Borrow[U]. A null borrow stays
// null.
func WidenBorrow[U any, T any](b Borrow[T]) Borrow[U] {
	if b.src == nil {
		return Borrow[U]{}
	}
	p, ok := widenPtr[U](b.src)
	if !ok {
		Assert(false, CodeCastMismatch, "widening a borrow to an unrelated element type")
		return Borrow[U]{}
	}
	return Borrow[U]{ptr: p, src: b.src, tok: b.tok, ro: b.ro}
}

// WidenBorrowRef converts a BorrowRef[T] into a BorrowRef[U].
func WidenBorrowRef[U any, T any](r BorrowRef[T]) BorrowRef[U] {
	Assert(r.src != nil, CodeNullReference, "widening a null reference")
	p, ok := widenPtr[U](r.src)
	if !ok {
		Assert(false, CodeCastMismatch, "widening a reference to an unrelated element type")
		return BorrowRef[U]{}
	}
	return BorrowRef[U]{ptr: p, src: r.src, tok: r.tok, ro: r.ro}
}

// WidenShared converts a SharedOwner[T] into a SharedOwner[U] sharing
// the same value and control block; the shared count grows by one. A
// null owner stays null.
func WidenShared[U any, T any](s SharedOwner[T]) SharedOwner[U] {
	if s.blk == nil {
		return SharedOwner[U]{}
	}
	p, ok := widenPtr[U](s.blk.src)
	if !ok {
		Assert(false, CodeCastMismatch, "widening a shared owner to an unrelated element type")
		return SharedOwner[U]{}
	}
	s.blk.acquire()
	return SharedOwner[U]{ptr: p, blk: s.blk}
}

// WidenSharedRef converts a SharedOwnerRef[T] into a SharedOwnerRef[U];
// the shared count grows by one.
func WidenSharedRef[U any, T any](r SharedOwnerRef[T]) SharedOwnerRef[U] {
	Assert(r.blk != nil, CodeNullReference, "widening a null reference")
	if r.blk == nil {
		return SharedOwnerRef[U]{}
	}
	p, ok := widenPtr[U](r.blk.src)
	if !ok {
		Assert(false, CodeCastMismatch, "widening a shared reference to an unrelated element type")
		return SharedOwnerRef[U]{}
	}
	r.blk.acquire()
	return SharedOwnerRef[U]{ptr: p, blk: r.blk}
}

// WidenWeak converts a WeakObserver[T] into a WeakObserver[U]; the
// shared count is unchanged.
func WidenWeak[U any, T any](w WeakObserver[T]) WeakObserver[U] {
	if w.blk == nil {
		return WeakObserver[U]{}
	}
	p, ok := widenPtr[U](w.blk.src)
	if !ok {
		Assert(false, CodeCastMismatch, "widening a weak observer to an unrelated element type")
		return WeakObserver[U]{}
	}
	return WeakObserver[U]{ptr: p, blk: w.blk}
}

// WidenUnique converts a UniqueOwner[T] into a UniqueOwner[U],
// consuming the source: exclusive ownership transfers, it is never
// duplicated. An empty source yields an empty result.
func WidenUnique[U any, T any](u *UniqueOwner[T]) UniqueOwner[U] {
	if u.src == nil {
		return UniqueOwner[U]{}
	}
	p, ok := widenPtr[U](u.src)
	if !ok {
		Assert(false, CodeCastMismatch, "widening a unique owner to an unrelated element type")
		return UniqueOwner[U]{}
	}
	moved := UniqueOwner[U]{ptr: p, src: u.src, tok: u.tok}
	*u = UniqueOwner[T]{}
	return moved
}

// WidenUniqueRef converts a UniqueOwnerRef[T] into a UniqueOwnerRef[U],
// consuming the source.
func WidenUniqueRef[U any, T any](r *UniqueOwnerRef[T]) UniqueOwnerRef[U] {
	Assert(r.src != nil, CodeNullReference, "widening a null reference")
	if r.src == nil {
		return UniqueOwnerRef[U]{}
	}
	p, ok := widenPtr[U](r.src)
	if !ok {
		Assert(false, CodeCastMismatch, "widening a unique reference to an unrelated element type")
		return UniqueOwnerRef[U]{}
	}
	moved := UniqueOwnerRef[U]{ptr: p, src: r.src, tok: r.tok}
	*r = UniqueOwnerRef[T]{}
	return moved
}
