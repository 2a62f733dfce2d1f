//go:build cpl_safe && !cpl_fast

package collections_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/orenbenkiki/cpl"
	"github.com/orenbenkiki/cpl/collections"
)

func TestCheckedIndexingViolations(t *testing.T) {
	tests := []struct {
		name string
		run  func()
	}{
		{"bitset past size", func() {
			collections.NewBitSet(4).Test(4)
		}},
		{"bitset negative", func() {
			collections.NewBitSet(4).Set(-1)
		}},
		{"bitset negative size", func() {
			collections.NewBitSet(-1)
		}},
		{"vector index", func() {
			var v collections.Vector[int]
			v.Push(1)
			v.At(1)
		}},
		{"vector pop empty", func() {
			var v collections.Vector[int]
			v.Pop()
		}},
		{"vector truncate grow", func() {
			var v collections.Vector[int]
			v.Truncate(1)
		}},
		{"map missing key", func() {
			var m collections.Map[int, int]
			m.At(0)
		}},
		{"text index", func() {
			collections.NewText("ab").At(2)
		}},
		{"text truncate grow", func() {
			collections.NewText("ab").Truncate(3)
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got []*cpl.Violation
			prev := cpl.SetAssertHandler(func(v *cpl.Violation) {
				got = append(got, v)
				// Stop the scenario here: the operation has no
				// meaningful result past the failed check.
				panic(v)
			})
			defer cpl.SetAssertHandler(prev)

			require.Panics(t, func() { tt.run() })
			require.NotEmpty(t, got)
			require.Equal(t, cpl.CodeOutOfBounds, got[0].Code)
		})
	}
}
