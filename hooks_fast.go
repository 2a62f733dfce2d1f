//go:build cpl_fast && !cpl_safe

package cpl

// Variant names the compiled implementation of the library.
const Variant = "fast"

// AssertHandler receives every failed assertion in the safe variant. The
// fast variant never invokes it.
type AssertHandler func(v *Violation)

// SetAssertHandler is accepted for interface parity with the safe variant
// but has no effect: the fast variant performs no checks.
func SetAssertHandler(h AssertHandler) AssertHandler {
	return nil
}

// Assert is a no-op in the fast variant.
func Assert(cond bool, code Code, msg string) {}
