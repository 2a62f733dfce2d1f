package collections_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/orenbenkiki/cpl/collections"
)

func TestBitSet(t *testing.T) {
	b := collections.NewBitSet(10)
	require.Equal(t, 10, b.Len())
	require.Equal(t, 0, b.Count())

	b.Set(3)
	b.Set(7)
	require.True(t, b.Test(3))
	require.False(t, b.Test(4))
	require.Equal(t, 2, b.Count())

	b.Clear(3)
	require.False(t, b.Test(3))

	b.Flip(4)
	require.True(t, b.Test(4))
	b.Flip(4)
	require.False(t, b.Test(4))
}

func TestVector(t *testing.T) {
	var v collections.Vector[string]
	require.Equal(t, 0, v.Len())

	v.Push("a")
	v.Push("b")
	v.Push("c")
	require.Equal(t, 3, v.Len())
	require.Equal(t, "b", v.At(1))

	v.Set(1, "B")
	require.Equal(t, "B", v.At(1))

	*v.Ptr(0) = "A"
	require.Equal(t, "A", v.At(0))

	require.Equal(t, "c", v.Pop())
	require.Equal(t, 2, v.Len())

	v.Truncate(1)
	require.Equal(t, []string{"A"}, v.Slice())
}

func TestMap(t *testing.T) {
	var m collections.Map[string, int]
	require.Equal(t, 0, m.Len())

	m.Set("b", 2)
	m.Set("a", 1)
	m.Set("c", 3)
	require.Equal(t, 3, m.Len())

	got, ok := m.Get("b")
	require.True(t, ok)
	require.Equal(t, 2, got)
	require.Equal(t, 1, m.At("a"))

	_, ok = m.Get("missing")
	require.False(t, ok)

	var keys []string
	m.Scan(func(k string, v int) bool {
		keys = append(keys, k)
		return true
	})
	require.Equal(t, []string{"a", "b", "c"}, keys)

	require.True(t, m.Delete("b"))
	require.False(t, m.Delete("b"))
	require.Equal(t, 2, m.Len())
}

func TestSet(t *testing.T) {
	var s collections.Set[int]
	s.Insert(3)
	s.Insert(1)
	s.Insert(2)
	s.Insert(1)
	require.Equal(t, 3, s.Len())
	require.True(t, s.Contains(2))

	s.Delete(2)
	require.False(t, s.Contains(2))

	var got []int
	s.Scan(func(k int) bool {
		got = append(got, k)
		return true
	})
	require.Equal(t, []int{1, 3}, got)
}

func TestText(t *testing.T) {
	txt := collections.NewText("hello")
	require.Equal(t, 5, txt.Len())
	require.Equal(t, byte('e'), txt.At(1))

	txt.Append(" world")
	txt.AppendByte('!')
	require.Equal(t, "hello world!", txt.String())

	txt.SetAt(0, 'H')
	require.Equal(t, "Hello world!", txt.String())

	txt.Truncate(5)
	require.Equal(t, "Hello", txt.String())
}
