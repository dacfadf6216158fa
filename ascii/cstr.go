package ascii

import "bytes"

// CStr is a read-only view over a NUL-terminated ASCII string: every byte
// before the terminator is ASCII and non-NUL, and the terminator is the
// final byte. Useful for protocols and FFI-shaped formats that carry
// NUL-terminated fields.
//
// The zero value is not a valid CStr; construct one with NewCStr or from
// a CString.
type CStr struct {
	b []byte // includes the terminating NUL
}

// NewCStr validates b as a NUL-terminated ASCII string and returns a view
// aliasing it. b must contain exactly one NUL, as its final byte, and
// only ASCII bytes before it; violations fail with *NulError carrying the
// offending position.
func NewCStr(b []byte) (CStr, error) {
	i := bytes.IndexByte(b, 0)
	if i < 0 {
		return CStr{}, &NulError{Kind: KindNotNulTerminated, Pos: len(b)}
	}
	if i != len(b)-1 {
		return CStr{}, &NulError{Kind: KindInteriorNul, Pos: i}
	}
	if j := firstInvalid(b[:i]); j >= 0 {
		return CStr{}, &NulError{Kind: KindNotASCII, Pos: j}
	}
	return CStr{b: b}, nil
}

// NewCStrUnchecked returns a view over b without validation.
//
// The caller guarantees that b satisfies the CStr invariant. If the
// guarantee is violated, the behavior of all operations on the view is
// unspecified.
func NewCStrUnchecked(b []byte) CStr {
	return CStr{b: b}
}

// Len returns the number of characters before the terminator.
func (c CStr) Len() int {
	if len(c.b) == 0 {
		return 0
	}
	return len(c.b) - 1
}

// IsEmpty reports whether the string holds no characters before the
// terminator.
func (c CStr) IsEmpty() bool {
	return c.Len() == 0
}

// Bytes returns the underlying bytes including the terminator, without
// copying.
func (c CStr) Bytes() []byte {
	return c.b
}

// Str returns a view over the characters before the terminator.
func (c CStr) Str() Str {
	if len(c.b) == 0 {
		return Str{}
	}
	return Str{b: c.b[:len(c.b)-1]}
}

// String returns the contents before the terminator as a native string.
func (c CStr) String() string {
	return c.Str().String()
}

// Equal reports whether two views have identical contents.
func (c CStr) Equal(o CStr) bool {
	return bytes.Equal(c.b, o.b)
}

// CString is an owning NUL-terminated ASCII string with the same
// invariant as CStr.
type CString struct {
	buf []byte // includes the terminating NUL
}

// NewCString validates b as unterminated content, copies it and appends
// the terminator. Interior NUL bytes fail with KindInteriorNul; non-ASCII
// bytes with KindNotASCII.
func NewCString(b []byte) (*CString, error) {
	if i := bytes.IndexByte(b, 0); i >= 0 {
		return nil, &NulError{Kind: KindInteriorNul, Pos: i}
	}
	if i := firstInvalid(b); i >= 0 {
		return nil, &NulError{Kind: KindNotASCII, Pos: i}
	}
	buf := make([]byte, 0, len(b)+1)
	buf = append(buf, b...)
	buf = append(buf, 0)
	return &CString{buf: buf}, nil
}

// ToCString copies the String into a NUL-terminated CString. The content
// is already ASCII, so only interior NUL bytes can fail.
func (s *String) ToCString() (*CString, error) {
	if i := bytes.IndexByte(s.buf, 0); i >= 0 {
		return nil, &NulError{Kind: KindInteriorNul, Pos: i}
	}
	buf := make([]byte, 0, len(s.buf)+1)
	buf = append(buf, s.buf...)
	buf = append(buf, 0)
	return &CString{buf: buf}, nil
}

// CStr returns a view over the CString, including the terminator. The
// view aliases the CString's storage.
func (c *CString) CStr() CStr {
	return CStr{b: c.content()}
}

// content tolerates the zero value, which has no terminator byte yet.
func (c *CString) content() []byte {
	if len(c.buf) == 0 {
		return []byte{0}
	}
	return c.buf
}

// Len returns the number of characters before the terminator.
func (c *CString) Len() int {
	if len(c.buf) == 0 {
		return 0
	}
	return len(c.buf) - 1
}

// Bytes returns the underlying bytes including the terminator, without
// copying.
func (c *CString) Bytes() []byte {
	return c.content()
}

// Str returns a view over the characters before the terminator.
func (c *CString) Str() Str {
	if len(c.buf) == 0 {
		return Str{}
	}
	return Str{b: c.buf[:len(c.buf)-1]}
}

// String returns the contents before the terminator as a native string.
func (c *CString) String() string {
	return c.Str().String()
}
