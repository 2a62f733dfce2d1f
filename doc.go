// Package cpl implements the clever protection library: a family of
// pointer-like and reference-like indirection types that make ownership
// and borrowing explicit, compiled into one of two interchangeable
// variants selected at build time.
//
// # Goals
//
// Efficiency and safety pull in opposite directions. Instead of picking a
// single trade-off point, cpl compiles the same API twice:
//
//   - the fast variant (build tag "cpl_fast") behaves like raw pointers
//     with zero overhead and performs no lifetime checks;
//   - the safe variant (build tag "cpl_safe") attaches a lifetime token to
//     every owned value and turns dangling accesses, empty accesses and
//     bad casts into immediate, attributable failures.
//
// Exactly one of the two tags must be set; selecting both or neither
// leaves Variant (and the internal token machinery) undefined and the
// package does not build. The active variant is queryable as the Variant
// constant ("fast" or "safe").
//
// # Types
//
// The indirection family, from most to least owning:
//
//	Holder[T]          non-null inline value, trackable by borrows
//	OptionalHolder[T]  nullable value slot
//	UniqueOwner[T]     exclusive ownership, nullable, move-only
//	UniqueOwnerRef[T]  exclusive ownership, non-null, move-only
//	SharedOwner[T]     shared reference-counted ownership, nullable
//	SharedOwnerRef[T]  shared reference-counted ownership, non-null
//	WeakObserver[T]    non-owning observer of shared ownership
//	Borrow[T]          non-owning indirection, nullable
//	BorrowRef[T]       non-owning indirection, non-null
//
// The *Ref kinds reject empty sources at construction and their zero
// values are invalid; the plain kinds may be null at any time.
//
// # Failures
//
// All safe-variant failures route through Assert. The default handler
// panics with a *Violation carrying a stable Code; SetAssertHandler
// substitutes a custom handler. In the fast variant Assert is an empty
// function and none of the checks exist.
//
// # Guidelines
//
// Data that long-lived indirections point into should live inside a cpl
// owning kind, created with the New* factory helpers. UnsafeBorrow and
// UnsafeBorrowRef wrap data managed outside cpl (package-level variables,
// foreign allocations); the caller asserts that such data outlives every
// derived borrow, which cpl cannot verify.
//
// The library is for single-threaded or externally-synchronized use. A
// safe-variant liveness check followed by a dereference is not atomic, so
// concurrent destruction of the owner can still slip through; no locking
// is performed in either variant.
package cpl
