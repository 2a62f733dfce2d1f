//go:build cpl_safe && !cpl_fast

package cpl

import (
	"fmt"
	"sync/atomic"
)

// life is the shared lifetime record behind a token. Borrows observe it
// but cannot extend or end it: the value's destruction is driven by its
// owner alone, which is why invalidation is the only state change.
type life struct {
	id   uint64
	dead bool
}

// Allocation ids are monotonically increasing and never reused within a
// run, so violation messages and traces stay attributable.
var nextLifeID atomic.Uint64

// token tracks the lifetime of one owned value in the safe variant. The
// zero token is untracked: it never reports dangling, which is what
// unsafe borrows of caller-managed data get.
type token struct {
	l *life
}

func newToken() token {
	t := token{l: &life{id: nextLifeID.Add(1)}}
	traceEvent(EventAlloc, t.l.id)
	return t
}

func untrackedToken() token { return token{} }

// ensure lazily mints the token of a zero-value owner on first use.
func (t *token) ensure() {
	if t.l == nil {
		*t = newToken()
	}
}

func (t token) alive() bool { return t.l == nil || !t.l.dead }

// invalidate marks the tracked value as destroyed. Idempotent, one-way.
func (t token) invalidate() {
	if t.l == nil || t.l.dead {
		return
	}
	t.l.dead = true
	traceEvent(EventDrop, t.l.id)
}

func (t token) describe() string {
	if t.l == nil {
		return "untracked object"
	}
	return fmt.Sprintf("object#%d", t.l.id)
}

// checkLive asserts the tracked value has not been destroyed. Checked
// lazily on each access rather than eagerly at invalidation time.
func (t token) checkLive(what string) {
	if t.alive() {
		return
	}
	Assert(false, CodeDanglingAccess,
		fmt.Sprintf("%s of destroyed %s", what, t.describe()))
}
