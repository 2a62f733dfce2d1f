//go:build cpl_safe && !cpl_fast

package cpl

// Variant names the compiled implementation of the library.
const Variant = "safe"

// AssertHandler receives every failed assertion in the safe variant.
type AssertHandler func(v *Violation)

var assertHandler AssertHandler = func(v *Violation) {
	panic(v)
}

// SetAssertHandler substitutes the handler invoked on a failed assertion
// and returns the previous one. Passing nil restores the default handler,
// which panics with the *Violation.
func SetAssertHandler(h AssertHandler) AssertHandler {
	prev := assertHandler
	if h == nil {
		h = func(v *Violation) { panic(v) }
	}
	assertHandler = h
	return prev
}

// Assert performs a run-time verification. If the condition is false the
// registered handler is invoked with a violation built from code and msg.
func Assert(cond bool, code Code, msg string) {
	if cond {
		return
	}
	assertHandler(&Violation{Code: code, Message: msg})
}
