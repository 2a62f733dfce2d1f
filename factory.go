package cpl

// Factory helpers allocate a value and wrap it in the requested owning
// kind. Data managed by cpl should be created through these (or held in
// a Holder/OptionalHolder) so the safe variant can track its lifetime.

// NewUnique allocates v and wraps it in an exclusive owner.
func NewUnique[T any](v T) UniqueOwner[T] {
	ptr := new(T)
	*ptr = v
	return UniqueOwner[T]{ptr: ptr, src: ptr, tok: newToken()}
}

// NewUniqueRef allocates v and wraps it in a non-null exclusive owner.
func NewUniqueRef[T any](v T) UniqueOwnerRef[T] {
	ptr := new(T)
	*ptr = v
	return UniqueOwnerRef[T]{ptr: ptr, src: ptr, tok: newToken()}
}

// NewShared allocates v and wraps it in a shared owner with count 1.
func NewShared[T any](v T) SharedOwner[T] {
	ptr := new(T)
	*ptr = v
	return SharedOwner[T]{ptr: ptr, blk: &sharedBlock{strong: 1, src: ptr, tok: newToken()}}
}

// NewSharedRef allocates v and wraps it in a non-null shared owner with
// count 1.
func NewSharedRef[T any](v T) SharedOwnerRef[T] {
	ptr := new(T)
	*ptr = v
	return SharedOwnerRef[T]{ptr: ptr, blk: &sharedBlock{strong: 1, src: ptr, tok: newToken()}}
}
