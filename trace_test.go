package cpl_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/orenbenkiki/cpl"
)

func TestVariantName(t *testing.T) {
	require.Contains(t, []string{"safe", "fast"}, cpl.Variant)
}

func TestTraceLogRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "trace.msgpack")

	tracer := cpl.NewTracer(nil)
	require.NoError(t, tracer.WriteLog(path))

	events, variant, err := cpl.ReadLog(path)
	require.NoError(t, err)
	require.Equal(t, cpl.Variant, variant)
	require.Empty(t, events)
}

func TestReadLogMissingFile(t *testing.T) {
	_, _, err := cpl.ReadLog(filepath.Join(t.TempDir(), "absent.msgpack"))
	require.Error(t, err)
}

func TestSetTracerReturnsPrevious(t *testing.T) {
	first := cpl.NewTracer(nil)
	prev := cpl.SetTracer(first)
	defer cpl.SetTracer(prev)

	second := cpl.NewTracer(nil)
	require.Same(t, first, cpl.SetTracer(second))
	require.Same(t, second, cpl.SetTracer(first))
}
