package ascii

import (
	"testing"

	"github.com/stretchr/testify/suite"
)

type StringSuite struct {
	suite.Suite
}

func TestStringSuite(t *testing.T) {
	suite.Run(t, new(StringSuite))
}

func (s *StringSuite) mustString(text string) *String {
	out, err := NewStringFromString(text)
	s.Require().NoError(err)
	return out
}

// TestZeroValue verifies the zero value is a usable empty string.
func (s *StringSuite) TestZeroValue() {
	var str String
	s.True(str.IsEmpty())
	s.Equal(0, str.Len())
	s.Equal("", str.String())

	str.Push(Char('a'))
	s.Equal("a", str.String())
}

func (s *StringSuite) TestPushAndPushStr() {
	str := s.mustString("abc")
	str.Push(Char('1'))
	str.Push(Char('2'))
	str.Push(Char('3'))
	s.Equal("abc123", str.String())

	str.PushStr(s.mustString("!?").Str())
	s.Equal("abc123!?", str.String())
}

func (s *StringSuite) TestPop() {
	str := s.mustString("foo")

	for _, want := range []Char{'o', 'o', 'f'} {
		c, err := str.Pop()
		s.Require().NoError(err)
		s.Equal(want, c)
	}

	_, err := str.Pop()
	s.Require().ErrorIs(err, ErrEmpty)
}

func (s *StringSuite) TestInsertRemove() {
	str := s.mustString("ac")

	s.Require().NoError(str.Insert(1, Char('b')))
	s.Equal("abc", str.String())
	s.Require().NoError(str.Insert(3, Char('!')))
	s.Equal("abc!", str.String())
	s.Require().NoError(str.Insert(0, Char('>')))
	s.Equal(">abc!", str.String())

	err := str.Insert(6, Char('x'))
	var oor *OutOfRangeError
	s.Require().ErrorAs(err, &oor)
	s.Equal(6, oor.Index)
	s.Equal(5, oor.Len)

	c, err := str.Remove(0)
	s.Require().NoError(err)
	s.Equal(Char('>'), c)
	s.Equal("abc!", str.String())
}

// TestRemoveOutOfRange checks the index error on a short string.
func (s *StringSuite) TestRemoveOutOfRange() {
	str := s.mustString("abc")

	_, err := str.Remove(5)
	var oor *OutOfRangeError
	s.Require().ErrorAs(err, &oor)
	s.Equal(5, oor.Index)
	s.Equal(3, oor.Len)
	s.Equal("abc", str.String())
}

func (s *StringSuite) TestTruncateAndClear() {
	str := s.mustString("hello")

	str.Truncate(10) // no-op beyond length
	s.Equal("hello", str.String())

	str.Truncate(2)
	s.Equal("he", str.String())

	str.Truncate(-3)
	s.Equal("", str.String())

	str = s.mustString("capacity held")
	before := str.Cap()
	str.Clear()
	s.True(str.IsEmpty())
	s.Equal(before, str.Cap())
}

func (s *StringSuite) TestReserveAndClip() {
	str := s.mustString("ab")
	str.Reserve(100)
	s.GreaterOrEqual(str.Cap(), 102)
	s.Equal("ab", str.String())

	str.Clip()
	s.Equal(2, str.Cap())
	s.Equal("ab", str.String())
}

func (s *StringSuite) TestAtAndSet() {
	str := s.mustString("dog")

	c, err := str.At(1)
	s.Require().NoError(err)
	s.Equal(Char('o'), c)

	s.Require().NoError(str.Set(0, Char('f')))
	s.Equal("fog", str.String())

	var oor *OutOfRangeError
	s.Require().ErrorAs(str.Set(3, Char('x')), &oor)
}

// TestAppendValidated covers the atomic extend-from-raw-bytes contract:
// on failure the string is unchanged and the position is relative to the
// new input.
func (s *StringSuite) TestAppendValidated() {
	str := s.mustString("head:")

	s.Require().NoError(str.AppendBytes([]byte("tail")))
	s.Equal("head:tail", str.String())

	err := str.AppendBytes([]byte{'x', 'y', 0xC8, 'z'})
	var ibe *InvalidByteError
	s.Require().ErrorAs(err, &ibe)
	s.Equal(2, ibe.Pos)
	s.Equal(byte(0xC8), ibe.Byte)
	s.Equal("head:tail", str.String(), "failed append must leave the string unchanged")

	s.Require().NoError(str.AppendString("!"))
	s.Equal("head:tail!", str.String())

	err = str.AppendString("voilà")
	s.Require().ErrorAs(err, &ibe)
	s.Equal(4, ibe.Pos)
	s.Equal("head:tail!", str.String())
}

func (s *StringSuite) TestAppendRestricted() {
	str := NewStringCap(8)
	str.Append(Char('h'), Char('i'))
	s.Equal("hi", str.String())

	str.AppendSeq(s.mustString(" there").Str().Chars())
	s.Equal("hi there", str.String())
}

func (s *StringSuite) TestCollectAndFromChars() {
	str := FromChars(Char('a'), Char('b'))
	s.Equal("ab", str.String())

	collected := Collect(s.mustString("xyz").Str().Chars())
	s.Equal("xyz", collected.String())
}

func (s *StringSuite) TestCaseInPlace() {
	str := s.mustString("Hello, World! 123")

	str.MakeUpper()
	s.Equal("HELLO, WORLD! 123", str.String())

	str.MakeLower()
	s.Equal("hello, world! 123", str.String())
}

func (s *StringSuite) TestEqualityAndCompare() {
	a := s.mustString("abc")
	b := s.mustString("ABC")

	s.False(a.Equal(b))
	s.True(a.EqualFold(b))
	s.True(a.EqualStr(s.mustString("abc").Str()))
	s.Equal(1, a.Compare(b)) // 'a' > 'A' in byte order
	s.Equal(0, a.Compare(a.Clone()))
}

func (s *StringSuite) TestCloneIndependence() {
	orig := s.mustString("shared?")
	clone := orig.Clone()

	orig.MakeUpper()
	s.Equal("shared?", clone.String())
}

// TestMutationPreservesInvariant runs a mixed mutation sequence drawn
// only from the restricted domain and checks every byte stays ASCII.
func (s *StringSuite) TestMutationPreservesInvariant() {
	str := &String{}

	for i := 0; i < 50; i++ {
		str.Push(Char(byte(i % 0x80)))
	}
	s.Require().NoError(str.Insert(10, DEL))
	_, err := str.Remove(0)
	s.Require().NoError(err)
	str.Truncate(30)
	str.PushStr(s.mustString("tail\t\n").Str())
	_, err = str.Pop()
	s.Require().NoError(err)
	s.Require().NoError(str.Set(3, Tab))

	s.True(Valid(str.Bytes()), "mutation sequence broke the ASCII invariant")
}

func (s *StringSuite) TestViewAliasesBuffer() {
	str := s.mustString("live view")
	view := str.Str()

	s.Require().NoError(str.Set(0, Char('L')))
	s.Equal("Live view", view.String())
}
