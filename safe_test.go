//go:build cpl_safe && !cpl_fast

package cpl_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/orenbenkiki/cpl"
)

// capture installs a recording assert handler for the duration of the
// test. Execution continues past each violation, the way buggy code
// would under a handler that logs instead of crashing.
func capture(t *testing.T) *[]*cpl.Violation {
	t.Helper()
	var got []*cpl.Violation
	prev := cpl.SetAssertHandler(func(v *cpl.Violation) {
		got = append(got, v)
	})
	t.Cleanup(func() { cpl.SetAssertHandler(prev) })
	return &got
}

func requireDetected(t *testing.T, got *[]*cpl.Violation, want cpl.Code) {
	t.Helper()
	require.NotEmpty(t, *got, "expected a violation")
	require.Equal(t, want, (*got)[0].Code)
}

func TestDefaultHandlerPanics(t *testing.T) {
	var o cpl.OptionalHolder[int]
	require.PanicsWithError(t,
		"violation CPL1001: accessing an empty optional holder",
		func() { o.Value() })
}

func TestSetAssertHandlerNilRestoresDefault(t *testing.T) {
	prev := cpl.SetAssertHandler(func(v *cpl.Violation) {})
	cpl.SetAssertHandler(nil)
	defer cpl.SetAssertHandler(prev)

	var o cpl.OptionalHolder[int]
	require.Panics(t, func() { o.Value() })
}

func TestDanglingBorrowDetected(t *testing.T) {
	got := capture(t)

	u := cpl.NewUnique(1)
	b := u.Borrow()
	u.Reset()
	b.Value()

	requireDetected(t, got, cpl.CodeDanglingAccess)
	require.Contains(t, (*got)[0].Message, "destroyed object#")
}

func TestHolderDoubleDropDetected(t *testing.T) {
	got := capture(t)

	h := cpl.NewHolder(1)
	h.Drop()
	h.Drop()

	requireDetected(t, got, cpl.CodeDanglingAccess)
}

func TestHolderBorrowAfterDropDetected(t *testing.T) {
	got := capture(t)

	h := cpl.NewHolder(1)
	b := h.Borrow()
	h.Drop()
	b.Get()

	requireDetected(t, got, cpl.CodeDanglingAccess)
}

func TestEmptyUniqueDereferenceDetected(t *testing.T) {
	got := capture(t)

	var u cpl.UniqueOwner[int]
	u.Value()

	requireDetected(t, got, cpl.CodeEmptyAccess)
}

func TestNullSharedDereferenceDetected(t *testing.T) {
	got := capture(t)

	var s cpl.SharedOwner[int]
	s.Value()

	requireDetected(t, got, cpl.CodeEmptyAccess)
}

func TestNullReferenceConstructionDetected(t *testing.T) {
	tests := []struct {
		name string
		run  func()
	}{
		{"unique ToRef", func() {
			var u cpl.UniqueOwner[int]
			u.ToRef()
		}},
		{"unique BorrowRef", func() {
			var u cpl.UniqueOwner[int]
			u.BorrowRef()
		}},
		{"shared ToRef", func() {
			var s cpl.SharedOwner[int]
			s.ToRef()
		}},
		{"shared BorrowRef", func() {
			var s cpl.SharedOwner[int]
			s.BorrowRef()
		}},
		{"optional BorrowRef", func() {
			var o cpl.OptionalHolder[int]
			o.BorrowRef()
		}},
		{"null borrow ToRef", func() {
			var b cpl.Borrow[int]
			b.ToRef()
		}},
		{"unsafe nil ref", func() {
			cpl.UnsafeBorrowRef[int](nil)
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := capture(t)
			tt.run()
			requireDetected(t, got, cpl.CodeNullReference)
		})
	}
}

func TestExpiredBorrowToRefDetected(t *testing.T) {
	got := capture(t)

	u := cpl.NewUnique(1)
	b := u.Borrow()
	u.Reset()
	b.ToRef()

	requireDetected(t, got, cpl.CodeNullReference)
}

func TestStaticCastMismatchDetected(t *testing.T) {
	got := capture(t)

	h := cpl.NewHolder(duck{name: "d"})
	wide := cpl.WidenBorrow[quacker](h.Borrow())
	miss := cpl.StaticCastBorrow[robot](wide)

	requireDetected(t, got, cpl.CodeCastMismatch)
	require.True(t, miss.IsNil())
}

func TestWidenMismatchDetected(t *testing.T) {
	got := capture(t)

	type unrelated interface{ Bark() }
	h := cpl.NewHolder(duck{name: "d"})
	miss := cpl.WidenBorrow[unrelated](h.Borrow())

	requireDetected(t, got, cpl.CodeCastMismatch)
	require.True(t, miss.IsNil())
}

// DynamicCast is the one cast where a mismatch on a nullable kind is an
// answer, not a bug: it stays silent and returns null where StaticCast
// reports CodeCastMismatch.
func TestDynamicCastMismatchStaysSilent(t *testing.T) {
	got := capture(t)

	h := cpl.NewHolder(duck{name: "d"})
	wide := cpl.WidenBorrow[quacker](h.Borrow())
	miss := cpl.DynamicCastBorrow[robot](wide)

	require.Empty(t, *got)
	require.True(t, miss.IsNil())
}

func TestReadOnlyWriteDetected(t *testing.T) {
	got := capture(t)

	h := cpl.NewHolder(1)
	h.Borrow().ReadOnly().Get()

	requireDetected(t, got, cpl.CodeConstViolation)
}

func TestWritableClearsRestriction(t *testing.T) {
	got := capture(t)

	h := cpl.NewHolder(1)
	h.Borrow().ReadOnly().Writable().Get()

	require.Empty(t, *got)
}

func TestSwapDanglesOldBorrows(t *testing.T) {
	got := capture(t)

	filled := cpl.NewOptional(10)
	var empty cpl.OptionalHolder[int]
	b := filled.Borrow()
	filled.Swap(&empty)
	b.Value()

	requireDetected(t, got, cpl.CodeDanglingAccess)

	// The moved value itself stays accessible through fresh borrows.
	require.Equal(t, 10, empty.Value())
}

func TestEmplaceDanglesOldBorrows(t *testing.T) {
	got := capture(t)

	o := cpl.NewOptional(1)
	b := o.Borrow()
	o.Emplace(2)
	b.Value()

	requireDetected(t, got, cpl.CodeDanglingAccess)
	require.Equal(t, 2, o.Value())
}

func TestSharedOverReleaseDetected(t *testing.T) {
	got := capture(t)

	s := cpl.NewShared(1)
	alias := s // plain copy, not a counted Share
	s.Reset()
	alias.Reset()

	requireDetected(t, got, cpl.CodeDanglingAccess)
}

func TestUnsafeBorrowNeverDangles(t *testing.T) {
	got := capture(t)

	value := 5
	b := cpl.UnsafeBorrow(&value)
	require.Equal(t, 5, b.Value())
	require.Empty(t, *got)
}

func TestTracerRecordsLifetimes(t *testing.T) {
	var buf bytes.Buffer
	tracer := cpl.NewTracer(&buf)
	prev := cpl.SetTracer(tracer)
	defer cpl.SetTracer(prev)

	u := cpl.NewUnique(1)
	u.Reset()

	events := tracer.Events()
	require.Len(t, events, 2)
	require.Equal(t, cpl.EventAlloc, events[0].Op)
	require.Equal(t, cpl.EventDrop, events[1].Op)
	require.Equal(t, events[0].Object, events[1].Object)
	require.Equal(t, uint64(1), events[0].Seq)
	require.Equal(t, uint64(2), events[1].Seq)

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	require.Len(t, lines, 2)
	require.Regexp(t, `^\[life\] alloc object#\d+$`, lines[0])
	require.Regexp(t, `^\[life\] drop object#\d+$`, lines[1])
}

func TestTraceLogCarriesEvents(t *testing.T) {
	tracer := cpl.NewTracer(nil)
	prev := cpl.SetTracer(tracer)
	defer cpl.SetTracer(prev)

	h := cpl.NewHolder("x")
	h.Drop()

	path := t.TempDir() + "/trace.msgpack"
	require.NoError(t, tracer.WriteLog(path))

	events, variant, err := cpl.ReadLog(path)
	require.NoError(t, err)
	require.Equal(t, "safe", variant)
	require.Equal(t, tracer.Events(), events)
}
