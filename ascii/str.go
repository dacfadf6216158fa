package ascii

import (
	"bytes"
	"iter"
)

// Str is a read-only view over a contiguous run of ASCII bytes owned by
// some external buffer. Many views may reference the same storage; a view
// stays valid as long as the referenced storage is neither mutated nor
// reallocated.
//
// The zero value is the empty view. Views are created by NewStr /
// NewStrFromString, by re-slicing an existing view, or from a String.
type Str struct {
	b []byte
}

// Len returns the number of characters (= bytes) in the view.
func (s Str) Len() int {
	return len(s.b)
}

// IsEmpty reports whether the view has zero length.
func (s Str) IsEmpty() bool {
	return len(s.b) == 0
}

// At returns the character at index i. It fails with *OutOfRangeError
// when i is negative or >= Len.
func (s Str) At(i int) (Char, error) {
	if i < 0 || i >= len(s.b) {
		return 0, &OutOfRangeError{Index: i, Len: len(s.b)}
	}
	return Char(s.b[i]), nil
}

// Slice returns the sub-view over the half-open range [lo, hi). It fails
// with *OutOfRangeError when the range does not satisfy
// 0 <= lo <= hi <= Len. The sub-view aliases the same storage.
func (s Str) Slice(lo, hi int) (Str, error) {
	if lo < 0 || lo > len(s.b) {
		return Str{}, &OutOfRangeError{Index: lo, Len: len(s.b)}
	}
	if hi < lo || hi > len(s.b) {
		return Str{}, &OutOfRangeError{Index: hi, Len: len(s.b)}
	}
	return Str{b: s.b[lo:hi]}, nil
}

// First returns the first character, or false if the view is empty.
func (s Str) First() (Char, bool) {
	if len(s.b) == 0 {
		return 0, false
	}
	return Char(s.b[0]), true
}

// Last returns the last character, or false if the view is empty.
func (s Str) Last() (Char, bool) {
	if len(s.b) == 0 {
		return 0, false
	}
	return Char(s.b[len(s.b)-1]), true
}

// Bytes returns the underlying bytes without copying. The slice aliases
// the view's storage; treat it as read-only.
func (s Str) Bytes() []byte {
	return s.b
}

// String returns the contents as a native string. ASCII is valid UTF-8,
// so the result needs no transformation beyond the copy Go requires.
func (s Str) String() string {
	return string(s.b)
}

// ToString copies the view into an owned String.
func (s Str) ToString() *String {
	return &String{buf: bytes.Clone(s.b)}
}

// Equal reports whether two views have identical contents.
func (s Str) Equal(o Str) bool {
	return bytes.Equal(s.b, o.b)
}

// EqualBytes reports whether the view's contents equal the raw bytes b.
func (s Str) EqualBytes(b []byte) bool {
	return bytes.Equal(s.b, b)
}

// EqualString reports whether the view's contents equal the native
// string t.
func (s Str) EqualString(t string) bool {
	return string(s.b) == t
}

// EqualFold reports whether two views are equal under ASCII
// case-insensitive comparison.
func (s Str) EqualFold(o Str) bool {
	if len(s.b) != len(o.b) {
		return false
	}
	for i := range s.b {
		if !Char(s.b[i]).EqualFold(Char(o.b[i])) {
			return false
		}
	}
	return true
}

// EqualFoldString reports whether the view equals the native string t
// under ASCII case-insensitive comparison. Non-ASCII bytes in t never
// compare equal.
func (s Str) EqualFoldString(t string) bool {
	if len(s.b) != len(t) {
		return false
	}
	for i := range s.b {
		a, b := s.b[i], t[i]
		if 'A' <= a && a <= 'Z' {
			a += 0x20
		}
		if 'A' <= b && b <= 'Z' {
			b += 0x20
		}
		if a != b {
			return false
		}
	}
	return true
}

// Compare returns -1, 0 or 1 following numeric byte order.
func (s Str) Compare(o Str) int {
	return bytes.Compare(s.b, o.b)
}

// CompareFold is Compare after mapping both sides through ToLower.
func (s Str) CompareFold(o Str) int {
	n := min(len(s.b), len(o.b))
	for i := 0; i < n; i++ {
		a := Char(s.b[i]).ToLower()
		b := Char(o.b[i]).ToLower()
		switch {
		case a < b:
			return -1
		case a > b:
			return 1
		}
	}
	switch {
	case len(s.b) < len(o.b):
		return -1
	case len(s.b) > len(o.b):
		return 1
	}
	return 0
}

// Contains reports whether sub occurs within the view.
func (s Str) Contains(sub Str) bool {
	return bytes.Contains(s.b, sub.b)
}

// HasPrefix reports whether the view begins with p.
func (s Str) HasPrefix(p Str) bool {
	return bytes.HasPrefix(s.b, p.b)
}

// HasSuffix reports whether the view ends with p.
func (s Str) HasSuffix(p Str) bool {
	return bytes.HasSuffix(s.b, p.b)
}

// IndexChar returns the index of the first occurrence of c, or -1.
func (s Str) IndexChar(c Char) int {
	return bytes.IndexByte(s.b, byte(c))
}

// TrimSpace returns the view with the maximal whitespace prefix and
// suffix removed, as classified by Char.IsWhitespace. The result aliases
// the same storage.
func (s Str) TrimSpace() Str {
	return s.TrimStart().TrimEnd()
}

// TrimStart returns the view with the maximal whitespace prefix removed.
func (s Str) TrimStart() Str {
	i := 0
	for i < len(s.b) && Char(s.b[i]).IsWhitespace() {
		i++
	}
	return Str{b: s.b[i:]}
}

// TrimEnd returns the view with the maximal whitespace suffix removed.
func (s Str) TrimEnd() Str {
	n := len(s.b)
	for n > 0 && Char(s.b[n-1]).IsWhitespace() {
		n--
	}
	return Str{b: s.b[:n]}
}

// ToUpper returns an owned copy with a-z mapped to A-Z.
func (s Str) ToUpper() *String {
	out := s.ToString()
	out.MakeUpper()
	return out
}

// ToLower returns an owned copy with A-Z mapped to a-z.
func (s Str) ToLower() *String {
	out := s.ToString()
	out.MakeLower()
	return out
}

// Chars returns an iterator over the characters in index order. The
// sequence is lazy and restartable; no re-validation happens during
// iteration.
func (s Str) Chars() iter.Seq[Char] {
	return func(yield func(Char) bool) {
		for _, b := range s.b {
			if !yield(Char(b)) {
				return
			}
		}
	}
}

// All returns an iterator over (index, character) pairs.
func (s Str) All() iter.Seq2[int, Char] {
	return func(yield func(int, Char) bool) {
		for i, b := range s.b {
			if !yield(i, Char(b)) {
				return
			}
		}
	}
}

// Split returns an iterator over the sub-views separated by sep. Adjacent
// separators yield empty views; a view with no separator yields itself.
func (s Str) Split(sep Char) iter.Seq[Str] {
	return func(yield func(Str) bool) {
		rest := s.b
		for {
			i := bytes.IndexByte(rest, byte(sep))
			if i < 0 {
				yield(Str{b: rest})
				return
			}
			if !yield(Str{b: rest[:i]}) {
				return
			}
			rest = rest[i+1:]
		}
	}
}

// Lines returns an iterator over the lines of the view. Lines end with
// either LF or CRLF; the terminator is not included and the final
// terminator is optional.
func (s Str) Lines() iter.Seq[Str] {
	return func(yield func(Str) bool) {
		rest := s.b
		for len(rest) > 0 {
			line := rest
			if i := bytes.IndexByte(rest, byte(LineFeed)); i >= 0 {
				line = rest[:i]
				rest = rest[i+1:]
			} else {
				rest = nil
			}
			if n := len(line); n > 0 && line[n-1] == byte(CarriageReturn) {
				line = line[:n-1]
			}
			if !yield(Str{b: line}) {
				return
			}
		}
	}
}
