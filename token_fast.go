//go:build cpl_fast && !cpl_safe

package cpl

// This file provides the no-op lifetime token for fast builds. Every
// method compiles away, leaving the indirection kinds with raw-pointer
// behavior and cost.

type token struct{}

func newToken() token               { return token{} }
func untrackedToken() token         { return token{} }
func (*token) ensure()              {}
func (token) alive() bool           { return true }
func (token) invalidate()           {}
func (token) checkLive(what string) {}
