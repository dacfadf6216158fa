package ascii

import (
	"bytes"
	"iter"
	"slices"
)

// String is an owning, growable buffer of ASCII bytes. Every byte is
// <= 0x7F at all times observable between operations: mutations accept
// only values already inside the restricted domain, and extensions from
// raw bytes validate the whole span before touching the buffer.
//
// The zero value is an empty string ready for use. String exclusively
// owns its storage; concurrent mutation requires external
// synchronization.
type String struct {
	buf []byte
}

// NewStringCap returns an empty String with capacity for at least n
// characters.
func NewStringCap(n int) *String {
	return &String{buf: make([]byte, 0, n)}
}

// FromChars builds a String from individual characters.
func FromChars(chars ...Char) *String {
	s := NewStringCap(len(chars))
	s.Append(chars...)
	return s
}

// Collect drains an iterator of characters into a new String.
func Collect(seq iter.Seq[Char]) *String {
	s := &String{}
	s.AppendSeq(seq)
	return s
}

// Len returns the number of characters (= bytes).
func (s *String) Len() int {
	return len(s.buf)
}

// Cap returns the number of characters the buffer can hold without
// reallocating.
func (s *String) Cap() int {
	return cap(s.buf)
}

// IsEmpty reports whether the string has zero length.
func (s *String) IsEmpty() bool {
	return len(s.buf) == 0
}

// Str returns a view over the current contents. The view aliases the
// internal buffer and is invalidated by the next mutation.
func (s *String) Str() Str {
	return Str{b: s.buf}
}

// Bytes returns the underlying bytes without copying. Like
// bytes.Buffer.Bytes, the slice is valid only until the next mutation.
func (s *String) Bytes() []byte {
	return s.buf
}

// String returns the contents as a native string.
func (s *String) String() string {
	return string(s.buf)
}

// Clone returns an independent copy.
func (s *String) Clone() *String {
	return &String{buf: bytes.Clone(s.buf)}
}

// At returns the character at index i. It fails with *OutOfRangeError
// when i is negative or >= Len.
func (s *String) At(i int) (Char, error) {
	if i < 0 || i >= len(s.buf) {
		return 0, &OutOfRangeError{Index: i, Len: len(s.buf)}
	}
	return Char(s.buf[i]), nil
}

// Set replaces the character at index i. It fails with *OutOfRangeError
// when i is negative or >= Len. No validation is needed: c is already in
// the restricted domain.
func (s *String) Set(i int, c Char) error {
	if i < 0 || i >= len(s.buf) {
		return &OutOfRangeError{Index: i, Len: len(s.buf)}
	}
	s.buf[i] = byte(c)
	return nil
}

// Push appends one character. Amortized O(1).
func (s *String) Push(c Char) {
	s.buf = append(s.buf, byte(c))
}

// PushStr appends the contents of a view.
func (s *String) PushStr(v Str) {
	s.buf = append(s.buf, v.b...)
}

// Append appends individual characters.
func (s *String) Append(chars ...Char) {
	s.buf = slices.Grow(s.buf, len(chars))
	for _, c := range chars {
		s.buf = append(s.buf, byte(c))
	}
}

// AppendSeq appends every character produced by seq. The input is already
// restricted-domain, so nothing is validated.
func (s *String) AppendSeq(seq iter.Seq[Char]) {
	for c := range seq {
		s.buf = append(s.buf, byte(c))
	}
}

// AppendBytes validates b and appends it atomically: either every byte is
// appended, or on the first invalid byte the String is left unchanged and
// the error position is relative to b.
func (s *String) AppendBytes(b []byte) error {
	if i := firstInvalid(b); i >= 0 {
		return &InvalidByteError{Byte: b[i], Pos: i}
	}
	s.buf = append(s.buf, b...)
	return nil
}

// AppendString validates t and appends it atomically, with the same
// unchanged-on-failure contract as AppendBytes.
func (s *String) AppendString(t string) error {
	if i := firstInvalidString(t); i >= 0 {
		return &InvalidByteError{Byte: t[i], Pos: i}
	}
	s.buf = append(s.buf, t...)
	return nil
}

// Insert places c at index i, shifting the suffix right. Valid indices
// are 0 through Len inclusive; others fail with *OutOfRangeError. O(n).
func (s *String) Insert(i int, c Char) error {
	if i < 0 || i > len(s.buf) {
		return &OutOfRangeError{Index: i, Len: len(s.buf)}
	}
	s.buf = slices.Insert(s.buf, i, byte(c))
	return nil
}

// Remove deletes and returns the character at index i, shifting the
// suffix left. It fails with *OutOfRangeError when i >= Len. O(n).
func (s *String) Remove(i int) (Char, error) {
	if i < 0 || i >= len(s.buf) {
		return 0, &OutOfRangeError{Index: i, Len: len(s.buf)}
	}
	c := Char(s.buf[i])
	s.buf = slices.Delete(s.buf, i, i+1)
	return c, nil
}

// Pop removes and returns the last character. It fails with ErrEmpty on a
// zero-length string.
func (s *String) Pop() (Char, error) {
	if len(s.buf) == 0 {
		return 0, ErrEmpty
	}
	c := Char(s.buf[len(s.buf)-1])
	s.buf = s.buf[:len(s.buf)-1]
	return c, nil
}

// Truncate shortens the string to n characters. It is a no-op when n >=
// Len; negative n is treated as zero. Capacity is retained.
func (s *String) Truncate(n int) {
	if n < 0 {
		n = 0
	}
	if n < len(s.buf) {
		s.buf = s.buf[:n]
	}
}

// Clear removes all content, retaining allocated capacity.
func (s *String) Clear() {
	s.buf = s.buf[:0]
}

// Reserve grows the buffer, if necessary, to guarantee space for another
// n characters without reallocation.
func (s *String) Reserve(n int) {
	s.buf = slices.Grow(s.buf, n)
}

// Clip removes unused capacity.
func (s *String) Clip() {
	s.buf = slices.Clip(s.buf)
}

// MakeUpper maps a-z to A-Z in place.
func (s *String) MakeUpper() {
	for i, b := range s.buf {
		if 'a' <= b && b <= 'z' {
			s.buf[i] = b - 0x20
		}
	}
}

// MakeLower maps A-Z to a-z in place.
func (s *String) MakeLower() {
	for i, b := range s.buf {
		if 'A' <= b && b <= 'Z' {
			s.buf[i] = b + 0x20
		}
	}
}

// Equal reports whether two strings have identical contents.
func (s *String) Equal(o *String) bool {
	return bytes.Equal(s.buf, o.buf)
}

// EqualStr reports whether the contents equal the view v.
func (s *String) EqualStr(v Str) bool {
	return bytes.Equal(s.buf, v.b)
}

// EqualFold reports whether two strings are equal under ASCII
// case-insensitive comparison.
func (s *String) EqualFold(o *String) bool {
	return s.Str().EqualFold(o.Str())
}

// Compare returns -1, 0 or 1 following numeric byte order.
func (s *String) Compare(o *String) int {
	return bytes.Compare(s.buf, o.buf)
}
