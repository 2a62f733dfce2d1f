package cpl

import (
	"errors"
	"fmt"
)

// Code identifies the class of a safe-variant violation.
type Code int

// Stable violation codes - do not change values.
const (
	CodeEmptyAccess    Code = 1001 // CPL1001: accessing an empty optional or null handle
	CodeNullReference  Code = 1002 // CPL1002: constructing or using a null reference
	CodeDanglingAccess Code = 1003 // CPL1003: accessing data whose owner was destroyed
	CodeCastMismatch   Code = 1004 // CPL1004: static cast result disagrees with the dynamic type
	CodeConstViolation Code = 1005 // CPL1005: mutable access through a read-only indirection
	CodeOutOfBounds    Code = 1006 // CPL1006: collection index or key out of range
)

// String returns the code as "CPL1001" format.
func (c Code) String() string {
	return fmt.Sprintf("CPL%d", c)
}

// Violation reports a single violated invariant. The default assert
// handler panics with a *Violation; custom handlers receive it directly.
type Violation struct {
	Code    Code
	Message string
}

// Error implements the error interface.
func (v *Violation) Error() string {
	return fmt.Sprintf("violation %s: %s", v.Code, v.Message)
}

// AsViolation extracts a *Violation from err, unwrapping as needed.
func AsViolation(err error) (*Violation, bool) {
	var v *Violation
	ok := errors.As(err, &v)
	return v, ok
}
