// Package ascii implements character and string types that are
// guaranteed to hold only ASCII bytes (0x00-0x7F).
//
// The package is built around three types:
//   - Char: a single ASCII code point
//   - Str: a non-owning, read-only view over validated bytes
//   - String: an owning, growable buffer of validated bytes
//
// # Construction
//
// Arbitrary bytes enter the restricted domain through validating
// constructors only:
//
//	c, err := ascii.NewChar(b)          // one byte
//	v, err := ascii.NewStr(buf)         // view, aliases buf
//	s, err := ascii.NewString(buf)      // owned, adopts buf
//
// On failure the error reports the value and the index of the first
// offending byte. The ...Unchecked constructors skip validation under an
// explicit caller-guarantee contract; they are escape hatches for callers
// that have already validated by another route, never the default path.
//
// # Invariant
//
// Every byte observable through Char, Str or String is <= 0x7F. Mutating
// operations accept only values already inside the restricted domain
// (Char, Str), so the hot append path never re-validates; raw bytes and
// native strings are validated atomically before any mutation.
//
// # Interop
//
// ASCII is a subset of UTF-8, so conversions out of the restricted domain
// are plain reinterpretations: Str.Bytes aliases the underlying storage,
// and the types render through fmt exactly as the corresponding native
// strings would. Char, String and CString implement
// encoding.TextMarshaler and encoding.TextUnmarshaler, which covers
// encoding/json and any codec that honors the text interfaces.
//
// # NUL-terminated strings
//
// CStr and CString are ASCII strings with a single terminating NUL and no
// interior NUL bytes, for protocols and FFI-shaped wire formats that
// carry NUL-terminated fields.
//
// # Concurrency
//
// All types have value semantics and no internal synchronization. Char is
// freely copyable. Concurrent readers of a Str are safe while the
// underlying storage is not mutated. A String requires external
// synchronization for concurrent mutation.
package ascii
