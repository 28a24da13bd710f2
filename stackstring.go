package stackquery

import (
	"unicode/utf8"
	"unsafe"
)

// StackString is a fixed-capacity string buffer. Its storage is allocated once
// at construction and never grows; appends that would overflow are dropped.
// The bytes in [0, n) are always whole UTF-8 sequences, because appendRune is
// the only writer and it writes a full encoding or nothing.
type StackString struct {
	buf []byte
	n   int
}

// newStackString returns an empty buffer that can hold up to capacity bytes.
// A capacity of zero (or less) yields a buffer that drops every append.
func newStackString(capacity int) StackString {
	if capacity <= 0 {
		return StackString{}
	}
	return StackString{buf: make([]byte, capacity)}
}

// appendRune encodes r as UTF-8 and appends it if the full encoding fits in
// the remaining capacity. Otherwise the rune is dropped whole: no partial
// encoding is ever written and no error is reported. Callers that care about
// truncation compare expected and actual lengths.
func (s *StackString) appendRune(r rune) {
	var scratch [utf8.UTFMax]byte
	w := utf8.EncodeRune(scratch[:], r)
	if s.n+w > len(s.buf) {
		return
	}
	copy(s.buf[s.n:], scratch[:w])
	s.n += w
}

// Len returns the number of bytes stored.
//
//go:inline
func (s *StackString) Len() int {
	return s.n
}

// IsEmpty reports whether no bytes are stored.
//
//go:inline
func (s *StackString) IsEmpty() bool {
	return s.n == 0
}

// String returns a zero-copy view of the stored bytes. The view is read-only
// and valid only until the buffer is next mutated or its owner is reused.
func (s *StackString) String() string {
	if s.n == 0 {
		return ""
	}
	return unsafe.String(unsafe.SliceData(s.buf), s.n)
}

// full reports whether no free byte remains.
//
//go:inline
func (s *StackString) full() bool {
	return s.n == len(s.buf)
}

// reset empties the buffer without releasing its storage.
func (s *StackString) reset() {
	s.n = 0
}
