package cpl

import "unsafe"

// Explicit casts reinterpret the element type of an indirection kind,
// respecting the ownership discipline of the source: shared and
// borrowing kinds are copied, unique kinds are consumed.
//
// CleverCast is the recommended default: it costs the same as
// StaticCast, and in the safe variant its result is verified against
// what DynamicCast would produce, reporting CodeCastMismatch on
// disagreement. Reach for DynamicCast explicitly when the cast is
// expected to fail at run time and a null result is the answer you
// want. ReinterpretCast is an unchecked escape hatch, identical in both
// variants. The const-cast pair lives on the kinds themselves as the
// ReadOnly and Writable methods: they add or remove immutability without
// touching the referent's address or lifetime.

// castPtr resolves the target view for static and dynamic casts. All
// casts resolve through the concrete source pointer, so upcasts,
// downcasts and identity casts take the same path and the underlying
// address never changes.
func castPtr[U any](src any) (*U, bool) {
	return widenPtr[U](src)
}

// reinterpretPtr reinterprets a typed view pointer without any check.
func reinterpretPtr[U any, T any](p *T) *U {
	return (*U)(unsafe.Pointer(p))
}

// StaticCastBorrow casts under an asserted subtype relationship. In the
// safe variant a wrong assertion is reported as CodeCastMismatch; in the
// fast variant the result is silently null.
func StaticCastBorrow[U any, T any](b Borrow[T]) Borrow[U] {
	if b.src == nil {
		return Borrow[U]{}
	}
	p, ok := castPtr[U](b.src)
	if !ok {
		Assert(false, CodeCastMismatch, "static cast gave the wrong result")
		return Borrow[U]{}
	}
	return Borrow[U]{ptr: p, src: b.src, tok: b.tok, ro: b.ro}
}

// StaticCastBorrowRef casts a non-null borrow under an asserted subtype
// relationship.
func StaticCastBorrowRef[U any, T any](r BorrowRef[T]) BorrowRef[U] {
	Assert(r.src != nil, CodeNullReference, "casting a null reference")
	p, ok := castPtr[U](r.src)
	if !ok {
		Assert(false, CodeCastMismatch, "static cast gave the wrong result")
		return BorrowRef[U]{}
	}
	return BorrowRef[U]{ptr: p, src: r.src, tok: r.tok, ro: r.ro}
}

// StaticCastShared casts a shared owner; the result co-owns the value
// and the shared count grows by one.
func StaticCastShared[U any, T any](s SharedOwner[T]) SharedOwner[U] {
	if s.blk == nil {
		return SharedOwner[U]{}
	}
	p, ok := castPtr[U](s.blk.src)
	if !ok {
		Assert(false, CodeCastMismatch, "static cast gave the wrong result")
		return SharedOwner[U]{}
	}
	s.blk.acquire()
	return SharedOwner[U]{ptr: p, blk: s.blk}
}

// StaticCastSharedRef casts a non-null shared owner; the shared count
// grows by one.
func StaticCastSharedRef[U any, T any](r SharedOwnerRef[T]) SharedOwnerRef[U] {
	Assert(r.blk != nil, CodeNullReference, "casting a null reference")
	if r.blk == nil {
		return SharedOwnerRef[U]{}
	}
	p, ok := castPtr[U](r.blk.src)
	if !ok {
		Assert(false, CodeCastMismatch, "static cast gave the wrong result")
		return SharedOwnerRef[U]{}
	}
	r.blk.acquire()
	return SharedOwnerRef[U]{ptr: p, blk: r.blk}
}

// StaticCastUnique casts an exclusive owner, consuming the source. A
// failed assertion leaves the source intact.
func StaticCastUnique[U any, T any](u *UniqueOwner[T]) UniqueOwner[U] {
	if u.src == nil {
		return UniqueOwner[U]{}
	}
	p, ok := castPtr[U](u.src)
	if !ok {
		Assert(false, CodeCastMismatch, "static cast gave the wrong result")
		return UniqueOwner[U]{}
	}
	moved := UniqueOwner[U]{ptr: p, src: u.src, tok: u.tok}
	*u = UniqueOwner[T]{}
	return moved
}

// StaticCastUniqueRef casts a non-null exclusive owner, consuming the
// source.
func StaticCastUniqueRef[U any, T any](r *UniqueOwnerRef[T]) UniqueOwnerRef[U] {
	Assert(r.src != nil, CodeNullReference, "casting a null reference")
	if r.src == nil {
		return UniqueOwnerRef[U]{}
	}
	p, ok := castPtr[U](r.src)
	if !ok {
		Assert(false, CodeCastMismatch, "static cast gave the wrong result")
		return UniqueOwnerRef[U]{}
	}
	moved := UniqueOwnerRef[U]{ptr: p, src: r.src, tok: r.tok}
	*r = UniqueOwnerRef[T]{}
	return moved
}

// DynamicCastBorrow performs the standard polymorphic type check. The
// result is null when the check fails, in both variants.
func DynamicCastBorrow[U any, T any](b Borrow[T]) Borrow[U] {
	if b.src == nil {
		return Borrow[U]{}
	}
	p, ok := castPtr[U](b.src)
	if !ok {
		return Borrow[U]{}
	}
	return Borrow[U]{ptr: p, src: b.src, tok: b.tok, ro: b.ro}
}

// DynamicCastBorrowRef performs the polymorphic type check on a non-null
// borrow. A reference cannot be null, so a failed check panics in both
// variants.
func DynamicCastBorrowRef[U any, T any](r BorrowRef[T]) BorrowRef[U] {
	Assert(r.src != nil, CodeNullReference, "casting a null reference")
	p, ok := castPtr[U](r.src)
	if !ok {
		panic(&Violation{Code: CodeCastMismatch, Message: "dynamic cast of a reference to an unrelated type"})
	}
	return BorrowRef[U]{ptr: p, src: r.src, tok: r.tok, ro: r.ro}
}

// DynamicCastShared performs the polymorphic type check on a shared
// owner; the result is null on failure and co-owns the value on success.
func DynamicCastShared[U any, T any](s SharedOwner[T]) SharedOwner[U] {
	if s.blk == nil {
		return SharedOwner[U]{}
	}
	p, ok := castPtr[U](s.blk.src)
	if !ok {
		return SharedOwner[U]{}
	}
	s.blk.acquire()
	return SharedOwner[U]{ptr: p, blk: s.blk}
}

// DynamicCastSharedRef performs the polymorphic type check on a non-null
// shared owner; a failed check panics in both variants.
func DynamicCastSharedRef[U any, T any](r SharedOwnerRef[T]) SharedOwnerRef[U] {
	Assert(r.blk != nil, CodeNullReference, "casting a null reference")
	p, ok := castPtr[U](r.blk.src)
	if !ok {
		panic(&Violation{Code: CodeCastMismatch, Message: "dynamic cast of a reference to an unrelated type"})
	}
	r.blk.acquire()
	return SharedOwnerRef[U]{ptr: p, blk: r.blk}
}

// DynamicCastUnique performs the polymorphic type check on an exclusive
// owner, consuming it on success; on failure the source is left intact
// and the result is null.
func DynamicCastUnique[U any, T any](u *UniqueOwner[T]) UniqueOwner[U] {
	if u.src == nil {
		return UniqueOwner[U]{}
	}
	p, ok := castPtr[U](u.src)
	if !ok {
		return UniqueOwner[U]{}
	}
	moved := UniqueOwner[U]{ptr: p, src: u.src, tok: u.tok}
	*u = UniqueOwner[T]{}
	return moved
}

// DynamicCastUniqueRef performs the polymorphic type check on a non-null
// exclusive owner, consuming it; a failed check panics in both variants.
func DynamicCastUniqueRef[U any, T any](r *UniqueOwnerRef[T]) UniqueOwnerRef[U] {
	Assert(r.src != nil, CodeNullReference, "casting a null reference")
	p, ok := castPtr[U](r.src)
	if !ok {
		panic(&Violation{Code: CodeCastMismatch, Message: "dynamic cast of a reference to an unrelated type"})
	}
	moved := UniqueOwnerRef[U]{ptr: p, src: r.src, tok: r.tok}
	*r = UniqueOwnerRef[T]{}
	return moved
}

// ReinterpretCastBorrow reinterprets the borrow's typed view with no
// verification in either variant. The result aliases the same storage
// through type U; all bets are off if the layout assumption is wrong.
func ReinterpretCastBorrow[U any, T any](b Borrow[T]) Borrow[U] {
	if b.src == nil {
		return Borrow[U]{}
	}
	p := reinterpretPtr[U](b.ptr)
	return Borrow[U]{ptr: p, src: p, tok: b.tok, ro: b.ro}
}

// ReinterpretCastBorrowRef reinterprets a non-null borrow's typed view
// with no verification in either variant.
func ReinterpretCastBorrowRef[U any, T any](r BorrowRef[T]) BorrowRef[U] {
	p := reinterpretPtr[U](r.ptr)
	return BorrowRef[U]{ptr: p, src: p, tok: r.tok, ro: r.ro}
}

// CleverCastBorrow behaves exactly as StaticCastBorrow; its safe-variant
// verification is the point of the design.
func CleverCastBorrow[U any, T any](b Borrow[T]) Borrow[U] {
	return StaticCastBorrow[U](b)
}

// CleverCastBorrowRef behaves exactly as StaticCastBorrowRef.
func CleverCastBorrowRef[U any, T any](r BorrowRef[T]) BorrowRef[U] {
	return StaticCastBorrowRef[U](r)
}

// CleverCastShared behaves exactly as StaticCastShared.
func CleverCastShared[U any, T any](s SharedOwner[T]) SharedOwner[U] {
	return StaticCastShared[U](s)
}

// CleverCastSharedRef behaves exactly as StaticCastSharedRef.
func CleverCastSharedRef[U any, T any](r SharedOwnerRef[T]) SharedOwnerRef[U] {
	return StaticCastSharedRef[U](r)
}

// CleverCastUnique behaves exactly as StaticCastUnique.
func CleverCastUnique[U any, T any](u *UniqueOwner[T]) UniqueOwner[U] {
	return StaticCastUnique[U](u)
}

// CleverCastUniqueRef behaves exactly as StaticCastUniqueRef.
func CleverCastUniqueRef[U any, T any](r *UniqueOwnerRef[T]) UniqueOwnerRef[U] {
	return StaticCastUniqueRef[U](r)
}
