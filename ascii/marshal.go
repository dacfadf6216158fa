package ascii

import (
	"bytes"
	"fmt"
)

// The types implement encoding.TextMarshaler and encoding.TextUnmarshaler
// as their single interop surface: encoding/json uses them directly, and
// binary codecs configured to honor the text interfaces (CBOR, YAML, ...)
// round-trip through the same path. ASCII is valid UTF-8, so marshaled
// text never needs escaping or transformation.

// MarshalText returns the character as one byte of text.
func (c Char) MarshalText() ([]byte, error) {
	return []byte{byte(c)}, nil
}

// UnmarshalText validates text as a single ASCII byte.
func (c *Char) UnmarshalText(text []byte) error {
	if len(text) != 1 {
		return fmt.Errorf("ascii: cannot unmarshal %d bytes into a Char", len(text))
	}
	ch, err := NewChar(text[0])
	if err != nil {
		return err
	}
	*c = ch
	return nil
}

// MarshalText returns a copy of the view's contents.
//
// Str is marshal-only: a non-owning view cannot adopt decoder-owned
// bytes, so unmarshal into a String instead.
func (s Str) MarshalText() ([]byte, error) {
	return bytes.Clone(s.b), nil
}

// MarshalText returns a copy of the string's contents.
func (s *String) MarshalText() ([]byte, error) {
	return bytes.Clone(s.buf), nil
}

// UnmarshalText validates text and replaces the string's contents with a
// copy of it. On failure the string is left unchanged.
func (s *String) UnmarshalText(text []byte) error {
	if i := firstInvalid(text); i >= 0 {
		return &InvalidByteError{Byte: text[i], Pos: i}
	}
	s.buf = bytes.Clone(text)
	return nil
}

// MarshalText returns the contents without the terminator.
func (c *CString) MarshalText() ([]byte, error) {
	return bytes.Clone(c.content()[:c.Len()]), nil
}

// UnmarshalText validates text as unterminated content and replaces the
// string with it, appending the terminator. On failure the string is left
// unchanged.
func (c *CString) UnmarshalText(text []byte) error {
	fresh, err := NewCString(text)
	if err != nil {
		return err
	}
	c.buf = fresh.buf
	return nil
}
