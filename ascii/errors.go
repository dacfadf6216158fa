package ascii

import (
	"errors"
	"fmt"
)

// InvalidByteError reports a byte outside the ASCII range (> 0x7F)
// encountered during validation.
type InvalidByteError struct {
	Byte byte // the offending value
	Pos  int  // index of the first offending byte, or -1 for single-byte checks
}

func (e *InvalidByteError) Error() string {
	if e.Pos < 0 {
		return fmt.Sprintf("ascii: byte %#02x is not ASCII", e.Byte)
	}
	return fmt.Sprintf("ascii: byte %#02x at index %d is not ASCII", e.Byte, e.Pos)
}

// InvalidRuneError reports a code point outside the ASCII range.
type InvalidRuneError struct {
	Rune rune
}

func (e *InvalidRuneError) Error() string {
	return fmt.Sprintf("ascii: rune %q (%#x) is not ASCII", e.Rune, e.Rune)
}

// OutOfRangeError reports an index or slice bound that exceeds the
// current bounds of a Str or String.
type OutOfRangeError struct {
	Index int // the offending index
	Len   int // length of the sequence at the time of the call
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("ascii: index %d out of range for length %d", e.Index, e.Len)
}

// ErrEmpty is returned by operations that require at least one character,
// such as Pop on an empty String.
var ErrEmpty = errors.New("ascii: empty string")

// NulErrorKind classifies a NulError.
type NulErrorKind uint8

const (
	// KindInteriorNul: a NUL byte before the final position.
	KindInteriorNul NulErrorKind = iota
	// KindNotNulTerminated: no NUL byte at the end of the input.
	KindNotNulTerminated
	// KindNotASCII: a byte > 0x7F before the terminator.
	KindNotASCII
)

// String returns the kind as a short message fragment.
func (k NulErrorKind) String() string {
	switch k {
	case KindInteriorNul:
		return "interior NUL byte"
	case KindNotNulTerminated:
		return "missing NUL terminator"
	case KindNotASCII:
		return "byte is not ASCII"
	default:
		return "unknown"
	}
}

// NulError reports why a byte sequence is not a valid NUL-terminated
// ASCII string. Pos is the index of the offending byte; for
// KindNotNulTerminated it is the length of the input.
type NulError struct {
	Kind NulErrorKind
	Pos  int
}

func (e *NulError) Error() string {
	return fmt.Sprintf("ascii: %s at index %d", e.Kind, e.Pos)
}
