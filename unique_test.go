package cpl_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/orenbenkiki/cpl"
)

// resource counts live instances through its Dropper, mirroring how an
// element type with real cleanup would behave.
type resource struct {
	id      int
	tracker *int
}

func newResource(tracker *int, id int) resource {
	*tracker++
	return resource{id: id, tracker: tracker}
}

func (r resource) Drop() { *r.tracker-- }

func TestUniqueOwnerAccess(t *testing.T) {
	u := cpl.NewUnique(10)
	require.False(t, u.IsNil())
	require.Equal(t, 10, u.Value())
	require.Equal(t, 10, u.ValueOr(-1))

	*u.Get() = 11
	require.Equal(t, 11, u.Value())
}

func TestUniqueOwnerZeroIsEmpty(t *testing.T) {
	var u cpl.UniqueOwner[int]
	require.True(t, u.IsNil())
	require.Nil(t, u.Get())
	require.Equal(t, -1, u.ValueOr(-1))
	require.True(t, u.Borrow().IsNil())
}

func TestUniqueOwnerMove(t *testing.T) {
	u := cpl.NewUnique("payload")
	moved := u.Move()

	require.True(t, u.IsNil())
	require.False(t, moved.IsNil())
	require.Equal(t, "payload", moved.Value())
}

func TestUniqueOwnerRefRoundTrip(t *testing.T) {
	u := cpl.NewUnique(5)
	addr := u.Get()

	ref := u.ToRef()
	require.True(t, u.IsNil())
	require.Equal(t, 5, ref.Value())
	require.Same(t, addr, ref.Get())

	back := ref.ToOwner()
	require.False(t, back.IsNil())
	require.Same(t, addr, back.Get())
}

func TestUniqueOwnerResetRunsDropper(t *testing.T) {
	live := 0
	u := cpl.NewUnique(newResource(&live, 1))
	require.Equal(t, 1, live)

	u.Reset()
	require.Equal(t, 0, live)
	require.True(t, u.IsNil())

	// Resetting an already empty owner is a no-op.
	u.Reset()
	require.Equal(t, 0, live)
}

func TestUniqueOwnerRefDropRunsDropper(t *testing.T) {
	live := 0
	r := cpl.NewUniqueRef(newResource(&live, 1))
	require.Equal(t, 1, live)

	r.Drop()
	require.Equal(t, 0, live)
}

func TestUnsafeBorrow(t *testing.T) {
	value := 77
	b := cpl.UnsafeBorrow(&value)
	require.False(t, b.IsNil())
	require.Equal(t, 77, b.Value())
	require.Same(t, &value, b.Get())

	require.True(t, cpl.UnsafeBorrow[int](nil).IsNil())
}

func TestBorrowReadOnlyRoundTrip(t *testing.T) {
	value := 1
	b := cpl.UnsafeBorrow(&value)
	require.False(t, b.IsReadOnly())

	frozen := b.ReadOnly()
	require.True(t, frozen.IsReadOnly())
	require.Equal(t, 1, frozen.Value())

	thawed := frozen.Writable()
	require.False(t, thawed.IsReadOnly())
	*thawed.Get() = 2
	require.Equal(t, 2, value)
}

func TestBorrowEqualAndLess(t *testing.T) {
	values := [2]int{1, 2}
	a := cpl.UnsafeBorrow(&values[0])
	b := cpl.UnsafeBorrow(&values[1])

	require.True(t, a.Equal(a))
	require.False(t, a.Equal(b))
	require.True(t, a.Less(b))
	require.False(t, b.Less(a))

	var null cpl.Borrow[int]
	require.True(t, null.Equal(cpl.Borrow[int]{}))
	require.True(t, null.Less(a))
}

func TestBorrowValueOr(t *testing.T) {
	var null cpl.Borrow[string]
	require.Equal(t, "fallback", null.ValueOr("fallback"))

	value := "present"
	require.Equal(t, "present", cpl.UnsafeBorrow(&value).ValueOr("fallback"))
}
