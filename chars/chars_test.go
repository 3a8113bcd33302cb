package chars

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clarete/parsec"
)

func parseString[A any](p parsec.Parser[rune, A], s string) parsec.Reply[rune, A] {
	return parsec.Parse(p, parsec.FromString(s), parsec.Options{})
}

func TestCharSuccessAndFailure(t *testing.T) {
	reply := parseString(Char('a'), "ab")
	require.True(t, reply.IsOk())
	assert.Equal(t, 'a', reply.Value())

	reply = parseString(Char('a'), "b")
	require.False(t, reply.IsOk())
	assert.Contains(t, reply.Err().Render(), `expecting "a"`)
}

func TestOneOfRendersSExpressionLabel(t *testing.T) {
	reply := parseString(OneOf("abc"), "d")
	require.False(t, reply.IsOk())
	assert.Equal(t,
		"at line 1, column 1:\nunexpected \"d\"\nexpecting (one-of \"abc\")",
		reply.Err().Render(),
	)
}

func TestNoneOfRejectsMember(t *testing.T) {
	reply := parseString(NoneOf("abc"), "a")
	require.False(t, reply.IsOk())
	assert.Contains(t, reply.Err().Render(), "(none-of \"abc\")")
}

func TestStrPartialMatchFailure(t *testing.T) {
	reply := parseString(Str("abc"), "abx")
	require.False(t, reply.IsOk())
	assert.True(t, reply.Consumed())
	assert.Equal(t, 3, reply.Err().Pos().Column)
	assert.Contains(t, reply.Err().Render(), `unexpected "x"`)
	assert.Contains(t, reply.Err().Render(), `"c" in (string "abc")`)
}

func TestStrSuccess(t *testing.T) {
	reply := parseString(Str("abc"), "abc")
	require.True(t, reply.IsOk())
	assert.Equal(t, "abc", reply.Value())
}

func TestNewlineAcceptsCRLF(t *testing.T) {
	reply := parseString(Newline(), "\r\nx")
	require.True(t, reply.IsOk())
	assert.True(t, reply.Consumed())
	assert.Equal(t, '\n', reply.Value())
}

func TestNewlineAcceptsBareLF(t *testing.T) {
	reply := parseString(Newline(), "\nx")
	require.True(t, reply.IsOk())
	assert.Equal(t, '\n', reply.Value())
}

func TestNewlineFailsOnLoneCR(t *testing.T) {
	reply := parseString(Newline(), "\ra")
	require.False(t, reply.IsOk())
	assert.True(t, reply.Consumed())
	assert.Equal(t, 2, reply.Err().Pos().Column)
	assert.Contains(t, reply.Err().Render(), `unexpected "a"`)
	assert.Contains(t, reply.Err().Render(), `expecting "\n"`)
}

func TestAlphaNumDigitSpace(t *testing.T) {
	require.True(t, parseString(Alpha(), "a").IsOk())
	require.False(t, parseString(Alpha(), "1").IsOk())
	require.True(t, parseString(Digit(), "1").IsOk())
	require.True(t, parseString(AlphaNum(), "1").IsOk())
	require.True(t, parseString(AlphaNum(), "a").IsOk())
	require.True(t, parseString(Space(), " ").IsOk())
}

func TestSpacesConsumesZeroOrMore(t *testing.T) {
	reply := parseString(Spaces(), "abc")
	require.True(t, reply.IsOk())
	assert.False(t, reply.Consumed())

	reply = parseString(Spaces(), "   abc")
	require.True(t, reply.IsOk())
	assert.True(t, reply.Consumed())
}

func TestIdentifier(t *testing.T) {
	reply := parseString(Identifier(), "foo_bar2 rest")
	require.True(t, reply.IsOk())
	assert.Equal(t, "foo_bar2", reply.Value())
}

func TestIdentifierRejectsLeadingDigit(t *testing.T) {
	reply := parseString(Identifier(), "2foo")
	require.False(t, reply.IsOk())
}

func TestUnsignedInt(t *testing.T) {
	reply := parseString(UnsignedInt(), "1234x")
	require.True(t, reply.IsOk())
	assert.Equal(t, 1234, reply.Value())
}

func TestLexemeSkipsTrailingWhitespace(t *testing.T) {
	p := Lexeme(Str("let"))
	reply := parseString(p, "let   x")
	require.True(t, reply.IsOk())
	assert.Equal(t, "let", reply.Value())
	assert.Equal(t, 7, reply.State().Pos.Column)
}

func TestEofSucceedsOnlyAtEnd(t *testing.T) {
	require.True(t, parseString(Eof(), "").IsOk())
	require.False(t, parseString(Eof(), "x").IsOk())
}

func TestManyStarEofScenario(t *testing.T) {
	p := parsec.Sequence(parsec.ManyStar(Alpha()), Eof())
	reply := parseString(p, "abc")
	require.True(t, reply.IsOk())
	assert.Equal(t, []rune{'a', 'b', 'c'}, reply.Value())
}
