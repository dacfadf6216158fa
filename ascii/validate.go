package ascii

import "encoding/binary"

// High-bit masks for word-at-a-time scanning. A word with any byte
// > 0x7F leaves a bit set after masking.
const (
	hiBits64 uint64 = 0x8080808080808080
	hiBits32 uint32 = 0x80808080
)

// firstInvalid returns the index of the first byte > 0x7F, or -1 when
// every byte is ASCII. The scan proceeds eight bytes at a time; byte
// order does not matter because the mask tests each byte independently.
func firstInvalid(b []byte) int {
	i := 0
	for ; i+8 <= len(b); i += 8 {
		if binary.LittleEndian.Uint64(b[i:])&hiBits64 != 0 {
			break
		}
	}
	if i+4 <= len(b) && binary.LittleEndian.Uint32(b[i:])&hiBits32 == 0 {
		i += 4
	}
	for ; i < len(b); i++ {
		if b[i] > 0x7F {
			return i
		}
	}
	return -1
}

// firstInvalidString is firstInvalid over a native string.
func firstInvalidString(s string) int {
	for i := 0; i < len(s); i++ {
		if s[i] > 0x7F {
			return i
		}
	}
	return -1
}

// Valid reports whether every byte of b is ASCII.
func Valid(b []byte) bool {
	return firstInvalid(b) == -1
}

// ValidString reports whether every byte of s is ASCII.
func ValidString(s string) bool {
	return firstInvalidString(s) == -1
}

// NewStr validates b and returns a view over it. The view aliases b with
// no copy; the caller must keep b unmodified for as long as the view is
// in use. On failure the error carries the index and value of the first
// non-ASCII byte.
func NewStr(b []byte) (Str, error) {
	if i := firstInvalid(b); i >= 0 {
		return Str{}, &InvalidByteError{Byte: b[i], Pos: i}
	}
	return Str{b: b}, nil
}

// NewStrFromString validates s and returns a view over a copy of its
// bytes. The copy is unavoidable: a Go string cannot back a []byte view.
func NewStrFromString(s string) (Str, error) {
	if i := firstInvalidString(s); i >= 0 {
		return Str{}, &InvalidByteError{Byte: s[i], Pos: i}
	}
	return Str{b: []byte(s)}, nil
}

// NewStrUnchecked returns a view over b without validation.
//
// The caller guarantees that every byte of b is ASCII. If the guarantee
// is violated, the behavior of all operations on the view is unspecified.
// Never use this on untrusted input.
func NewStrUnchecked(b []byte) Str {
	return Str{b: b}
}

// NewString validates b and returns an owned String that adopts b as its
// storage with no copy. On success the caller must not use b afterwards;
// on failure b is untouched and remains the caller's, so the original
// bytes are recoverable alongside the error.
func NewString(b []byte) (*String, error) {
	if i := firstInvalid(b); i >= 0 {
		return nil, &InvalidByteError{Byte: b[i], Pos: i}
	}
	return &String{buf: b}, nil
}

// NewStringFromString validates s and returns an owned String holding a
// copy of its bytes.
func NewStringFromString(s string) (*String, error) {
	if i := firstInvalidString(s); i >= 0 {
		return nil, &InvalidByteError{Byte: s[i], Pos: i}
	}
	return &String{buf: []byte(s)}, nil
}

// NewStringUnchecked returns an owned String adopting b without
// validation.
//
// The caller guarantees that every byte of b is ASCII and must not use b
// afterwards. If the guarantee is violated, the behavior of all
// operations on the String is unspecified.
func NewStringUnchecked(b []byte) *String {
	return &String{buf: b}
}
