package cpl

// Holder owns a value directly, inline, while remaining observable by
// borrows. It is the price paid for letting the safe variant track the
// value's lifetime: data that long-lived borrows point into must live
// inside a Holder (or another owning kind) rather than in a plain
// variable.
//
// A Holder must not be copied by plain assignment: the copy would share
// the original's lifetime token. Use Clone, which mints a fresh token for
// the copied value. The zero Holder holds the zero value of T.
type Holder[T any] struct {
	noCopy noCopy
	value  T
	tok    token
}

// NewHolder constructs a Holder owning v.
func NewHolder[T any](v T) *Holder[T] {
	return &Holder[T]{value: v, tok: newToken()}
}

// Get returns the address of the held value.
func (h *Holder[T]) Get() *T {
	h.tok.ensure()
	h.tok.checkLive("access")
	return &h.value
}

// Value returns a copy of the held value.
func (h *Holder[T]) Value() T {
	h.tok.ensure()
	h.tok.checkLive("access")
	return h.value
}

// Set replaces the held value in place. Borrows stay live: the storage
// and its lifetime are unchanged.
func (h *Holder[T]) Set(v T) {
	h.tok.ensure()
	h.tok.checkLive("assignment")
	h.value = v
}

// Borrow derives a non-owning indirection to the held value.
func (h *Holder[T]) Borrow() Borrow[T] {
	h.tok.ensure()
	return Borrow[T]{ptr: &h.value, src: &h.value, tok: h.tok}
}

// BorrowRef derives a non-null non-owning indirection to the held value.
func (h *Holder[T]) BorrowRef() BorrowRef[T] {
	h.tok.ensure()
	Assert(h.tok.alive(), CodeNullReference,
		"constructing a reference from a destroyed holder")
	return BorrowRef[T]{ptr: &h.value, src: &h.value, tok: h.tok}
}

// Clone copies the held value into a new Holder with its own lifetime
// token. Borrows of the original are unaffected.
func (h *Holder[T]) Clone() *Holder[T] {
	h.tok.ensure()
	h.tok.checkLive("access")
	return NewHolder(h.value)
}

// Drop ends the held value's lifetime: its Dropper runs, the token is
// invalidated, and every live borrow becomes stale atomically with this
// step. Dropping twice is a violation in the safe variant.
func (h *Holder[T]) Drop() {
	h.tok.ensure()
	h.tok.checkLive("drop")
	dropValue(&h.value)
	h.tok.invalidate()
}

// OptionalHolder is a Holder that may be empty. The zero OptionalHolder
// is empty. Like Holder it must not be copied by plain assignment.
type OptionalHolder[T any] struct {
	noCopy  noCopy
	value   T
	present bool
	tok     token
}

// NewOptional constructs an OptionalHolder occupied by v.
func NewOptional[T any](v T) *OptionalHolder[T] {
	return &OptionalHolder[T]{value: v, present: true, tok: newToken()}
}

// Has reports whether the slot currently holds a value.
func (o *OptionalHolder[T]) Has() bool { return o.present }

// Get returns the address of the held value. Accessing an empty slot is
// a violation in the safe variant and undefined in the fast variant.
func (o *OptionalHolder[T]) Get() *T {
	Assert(o.present, CodeEmptyAccess, "accessing an empty optional holder")
	o.tok.checkLive("access")
	return &o.value
}

// Value returns a copy of the held value, with the same contract as Get.
func (o *OptionalHolder[T]) Value() T {
	Assert(o.present, CodeEmptyAccess, "accessing an empty optional holder")
	o.tok.checkLive("access")
	return o.value
}

// ValueOr returns a copy of the held value, or fallback when empty.
func (o *OptionalHolder[T]) ValueOr(fallback T) T {
	if !o.present {
		return fallback
	}
	o.tok.checkLive("access")
	return o.value
}

// Emplace constructs a new value in place and returns its address. Any
// previous value is dropped first; borrows of it become stale, while the
// new value gets a fresh lifetime token.
func (o *OptionalHolder[T]) Emplace(v T) *T {
	o.Reset()
	o.value = v
	o.present = true
	o.tok = newToken()
	return &o.value
}

// Reset empties the slot, dropping the held value if any.
func (o *OptionalHolder[T]) Reset() {
	if !o.present {
		return
	}
	dropValue(&o.value)
	o.tok.invalidate()
	var zero T
	o.value = zero
	o.present = false
	o.tok = untrackedToken()
}

// Swap exchanges the contents of two slots. Both sides get rebuilt
// lifetime tokens, so borrows taken before the swap dangle: the value
// they observed no longer lives in that storage.
func (o *OptionalHolder[T]) Swap(other *OptionalHolder[T]) {
	o.tok.invalidate()
	other.tok.invalidate()
	o.value, other.value = other.value, o.value
	o.present, other.present = other.present, o.present
	o.tok = untrackedToken()
	other.tok = untrackedToken()
	if o.present {
		o.tok = newToken()
	}
	if other.present {
		other.tok = newToken()
	}
}

// Borrow derives a non-owning indirection to the held value. A borrow of
// an empty slot is null.
func (o *OptionalHolder[T]) Borrow() Borrow[T] {
	if !o.present {
		return Borrow[T]{}
	}
	return Borrow[T]{ptr: &o.value, src: &o.value, tok: o.tok}
}

// BorrowRef derives a non-null indirection to the held value.
// Constructing one from an empty slot is a violation in the safe variant.
func (o *OptionalHolder[T]) BorrowRef() BorrowRef[T] {
	Assert(o.present, CodeNullReference,
		"constructing a reference from an empty optional holder")
	return BorrowRef[T]{ptr: &o.value, src: &o.value, tok: o.tok}
}
