package collections

import "github.com/orenbenkiki/cpl"

// Text is a growable text buffer with checked indexing.
type Text struct {
	buf []byte
}

// NewText creates a buffer initialized with s.
func NewText(s string) *Text {
	return &Text{buf: []byte(s)}
}

// Len returns the buffer length in bytes.
func (t *Text) Len() int { return len(t.buf) }

// Append appends s to the buffer.
func (t *Text) Append(s string) {
	t.buf = append(t.buf, s...)
}

// AppendByte appends a single byte.
func (t *Text) AppendByte(b byte) {
	t.buf = append(t.buf, b)
}

// At returns the byte at index i.
func (t *Text) At(i int) byte {
	t.check(i)
	return t.buf[i]
}

// SetAt replaces the byte at index i.
func (t *Text) SetAt(i int, b byte) {
	t.check(i)
	t.buf[i] = b
}

// Truncate shortens the buffer to n bytes.
func (t *Text) Truncate(n int) {
	cpl.Assert(n >= 0 && n <= len(t.buf), cpl.CodeOutOfBounds, "truncating past text length")
	t.buf = t.buf[:n]
}

// String returns the buffer contents.
func (t *Text) String() string { return string(t.buf) }

func (t *Text) check(i int) {
	cpl.Assert(i >= 0 && i < len(t.buf), cpl.CodeOutOfBounds, "text index out of range")
}
