package ascii

// Char is a single ASCII code point. The underlying value of a Char
// obtained through a checked constructor is always in [0, 0x7F].
//
// Char is an ordinary comparable value: == and < follow the numeric code
// point, so Chars can be used directly as ordered map keys.
type Char uint8

// Named constants for the code points without a printable spelling.
// Printable characters are written as conversions, e.g. Char('a').
const (
	NUL            Char = 0x00 // null
	SOH            Char = 0x01 // start of heading
	STX            Char = 0x02 // start of text
	ETX            Char = 0x03 // end of text
	EOT            Char = 0x04 // end of transmission
	ENQ            Char = 0x05 // enquiry
	ACK            Char = 0x06 // acknowledge
	BEL            Char = 0x07 // bell
	BS             Char = 0x08 // backspace
	Tab            Char = 0x09 // horizontal tab
	LineFeed       Char = 0x0A // line feed
	VT             Char = 0x0B // vertical tab
	FF             Char = 0x0C // form feed
	CarriageReturn Char = 0x0D // carriage return
	SO             Char = 0x0E // shift out
	SI             Char = 0x0F // shift in
	DLE            Char = 0x10 // data link escape
	DC1            Char = 0x11 // device control 1, often XON
	DC2            Char = 0x12 // device control 2
	DC3            Char = 0x13 // device control 3, often XOFF
	DC4            Char = 0x14 // device control 4
	NAK            Char = 0x15 // negative acknowledge
	SYN            Char = 0x16 // synchronous idle
	ETB            Char = 0x17 // end of transmission block
	CAN            Char = 0x18 // cancel
	EM             Char = 0x19 // end of medium
	SUB            Char = 0x1A // substitute
	ESC            Char = 0x1B // escape
	FS             Char = 0x1C // file separator
	GS             Char = 0x1D // group separator
	RS             Char = 0x1E // record separator
	US             Char = 0x1F // unit separator
	Space          Char = 0x20
	DEL            Char = 0x7F // delete
)

// NewChar converts a byte to a Char. It fails with *InvalidByteError when
// b > 0x7F.
func NewChar(b byte) (Char, error) {
	if b > 0x7F {
		return 0, &InvalidByteError{Byte: b, Pos: -1}
	}
	return Char(b), nil
}

// NewCharFromRune converts a rune to a Char. It fails with
// *InvalidRuneError when the code point is outside the ASCII range.
func NewCharFromRune(r rune) (Char, error) {
	if r < 0 || r > 0x7F {
		return 0, &InvalidRuneError{Rune: r}
	}
	return Char(r), nil
}

// NewCharUnchecked converts a byte to a Char without validation.
//
// The caller guarantees b <= 0x7F. Passing a larger value produces a Char
// outside the restricted domain and the behavior of all further
// operations on it is unspecified. Never use this on untrusted input.
func NewCharUnchecked(b byte) Char {
	return Char(b)
}

// Byte returns the code point as a byte.
func (c Char) Byte() byte {
	return byte(c)
}

// Rune returns the code point as a rune.
func (c Char) Rune() rune {
	return rune(c)
}

// String returns the character as a one-byte string.
func (c Char) String() string {
	return string(rune(c))
}

// The classification predicates below are total over the 128 valid code
// points and follow the canonical ASCII table. The range checks use the
// wrap-around of uint8 subtraction, so each test is a single compare.

// IsAlpha reports whether c is a letter (a-z, A-Z).
func (c Char) IsAlpha() bool {
	return (byte(c)|0x20)-'a' < 26
}

// IsDigit reports whether c is a decimal digit (0-9).
func (c Char) IsDigit() bool {
	return byte(c)-'0' < 10
}

// IsAlnum reports whether c is a letter or a decimal digit.
func (c Char) IsAlnum() bool {
	return c.IsAlpha() || c.IsDigit()
}

// IsUpper reports whether c is an uppercase letter (A-Z).
func (c Char) IsUpper() bool {
	return byte(c)-'A' < 26
}

// IsLower reports whether c is a lowercase letter (a-z).
func (c Char) IsLower() bool {
	return byte(c)-'a' < 26
}

// IsControl reports whether c is a control character (0x00-0x1F or DEL).
func (c Char) IsControl() bool {
	return c < Space || c == DEL
}

// IsGraph reports whether c has a visible glyph (printable, not space).
func (c Char) IsGraph() bool {
	return byte(c)-0x21 < 0x5E
}

// IsPrint reports whether c is printable, including space.
func (c Char) IsPrint() bool {
	return byte(c)-0x20 < 0x5F
}

// IsPunct reports whether c is a punctuation character: visible but
// neither a letter nor a digit.
func (c Char) IsPunct() bool {
	return c.IsGraph() && !c.IsAlnum()
}

// IsSpace reports whether c is the space character (0x20) itself. Use
// IsWhitespace for the whitespace class.
func (c Char) IsSpace() bool {
	return c == Space
}

// IsBlank reports whether c is a space or horizontal tab.
func (c Char) IsBlank() bool {
	return c == Space || c == Tab
}

// IsWhitespace reports whether c is in the whitespace class: space, tab,
// line feed, vertical tab, form feed or carriage return. This is the
// class used by the Trim operations.
func (c Char) IsWhitespace() bool {
	return c == Space || (c >= Tab && c <= CarriageReturn)
}

// IsHex reports whether c is a hexadecimal digit (0-9, a-f, A-F).
func (c Char) IsHex() bool {
	return c.IsDigit() || (byte(c)|0x20)-'a' < 6
}

// ToUpper maps a-z to A-Z and is the identity elsewhere.
func (c Char) ToUpper() Char {
	if c.IsLower() {
		return c - 0x20
	}
	return c
}

// ToLower maps A-Z to a-z and is the identity elsewhere.
func (c Char) ToLower() Char {
	if c.IsUpper() {
		return c + 0x20
	}
	return c
}

// EqualFold reports whether c and o are equal under ASCII
// case-insensitive comparison.
func (c Char) EqualFold(o Char) bool {
	return c.ToLower() == o.ToLower()
}
