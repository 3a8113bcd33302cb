package parsec

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func renderRune(r rune) string { return fmt.Sprintf("%q", string(r)) }

func nextPos(pos Position, _ rune, _ Seq[rune]) Position {
	return Position{Source: pos.Source, Line: pos.Line, Column: pos.Column + 1}
}

func char(r rune) Parser[rune, rune] {
	return Label(Token(func(c rune) bool { return c == r }, nextPos, renderRune, nil), renderRune(r))
}

func parseString[A any](p Parser[rune, A], s string) Reply[rune, A] {
	return Parse(p, FromString(s), Options{})
}

func TestTokenSuccessConsumesAndAdvances(t *testing.T) {
	reply := parseString(char('a'), "ab")
	require.True(t, reply.IsOk())
	assert.True(t, reply.Consumed())
	assert.Equal(t, 'a', reply.Value())
	assert.Equal(t, 2, reply.State().Pos.Column)
}

func TestTokenFailureOnMismatch(t *testing.T) {
	reply := parseString(char('a'), "xy")
	require.False(t, reply.IsOk())
	assert.False(t, reply.Consumed())
	assert.Contains(t, reply.Err().Render(), `unexpected "x"`)
}

func TestTokenFailureAtEof(t *testing.T) {
	reply := parseString(char('a'), "")
	require.False(t, reply.IsOk())
	assert.Contains(t, reply.Err().Render(), "end of input")
}

func TestBindSequencesAndMergesErrors(t *testing.T) {
	p := Bind(char('a'), func(rune) Parser[rune, rune] { return char('b') })
	reply := parseString(p, "ac")
	require.False(t, reply.IsOk())
	assert.True(t, reply.Consumed())
	assert.Contains(t, reply.Err().Render(), `unexpected "c"`)
}

func TestChoicePredictiveNoBacktrackAfterConsume(t *testing.T) {
	ab := Bind(char('a'), func(rune) Parser[rune, rune] { return char('b') })
	ac := Bind(char('a'), func(rune) Parser[rune, rune] { return char('c') })
	p := Choice(ab, ac)

	reply := parseString(p, "ac")
	require.False(t, reply.IsOk(), "Choice must not try ac once ab consumed input")
	assert.True(t, reply.Consumed())
}

func TestChoiceTriesSecondOnEmptyFailure(t *testing.T) {
	p := Choice(char('a'), char('b'))
	reply := parseString(p, "bc")
	require.True(t, reply.IsOk())
	assert.Equal(t, 'b', reply.Value())
}

func TestEscapeConvertsConsumedFailureToEmpty(t *testing.T) {
	ab := Bind(char('a'), func(rune) Parser[rune, rune] { return char('b') })
	ac := Bind(char('a'), func(rune) Parser[rune, rune] { return char('c') })
	p := Choice(Escape(ab), ac)

	reply := parseString(p, "ac")
	require.True(t, reply.IsOk())
	assert.Equal(t, 'c', reply.Value())
}

func TestLookAheadRewindsOnSuccess(t *testing.T) {
	p := LookAhead(char('a'))
	reply := parseString(p, "ab")
	require.True(t, reply.IsOk())
	assert.False(t, reply.Consumed())
	assert.Equal(t, 1, reply.State().Pos.Column)
}

func TestNotFollowedBySucceedsWhenPFails(t *testing.T) {
	p := NotFollowedBy(char('a'), renderRune)
	reply := parseString(p, "bc")
	require.True(t, reply.IsOk())
	assert.False(t, reply.Consumed())
}

func TestNotFollowedByFailsWhenPSucceeds(t *testing.T) {
	p := NotFollowedBy(char('a'), renderRune)
	reply := parseString(p, "ab")
	require.False(t, reply.IsOk())
	assert.False(t, reply.Consumed())
}

func TestLabelReplacesExpectOnEmptyFailure(t *testing.T) {
	p := Label(char('a'), "an a")
	reply := parseString(p, "z")
	require.False(t, reply.IsOk())
	assert.Contains(t, reply.Err().Render(), "expecting an a")
}

func TestAltFoldsChoiceLeftToRight(t *testing.T) {
	p := Alt(char('a'), char('b'), char('c'))
	reply := parseString(p, "c")
	require.True(t, reply.IsOk())
	assert.Equal(t, 'c', reply.Value())
}

func TestAltNoParsersPanics(t *testing.T) {
	assert.Panics(t, func() { Alt[rune, rune]() })
}

func TestManyStarZeroMatches(t *testing.T) {
	p := ManyStar(char('a'))
	reply := parseString(p, "bcd")
	require.True(t, reply.IsOk())
	assert.False(t, reply.Consumed())
	assert.Empty(t, reply.Value())
}

func TestManyStarCollectsMatches(t *testing.T) {
	p := ManyStar(char('a'))
	reply := parseString(p, "aaab")
	require.True(t, reply.IsOk())
	assert.True(t, reply.Consumed())
	assert.Equal(t, []rune{'a', 'a', 'a'}, reply.Value())
}

func TestManyPlusRequiresOneMatch(t *testing.T) {
	p := ManyPlus(char('a'))
	reply := parseString(p, "bbb")
	require.False(t, reply.IsOk())
	assert.False(t, reply.Consumed())
}

func TestSkipStarDiscardsValues(t *testing.T) {
	p := SkipStar(char('a'))
	reply := parseString(p, "aab")
	require.True(t, reply.IsOk())
	assert.True(t, reply.Consumed())
}

func TestSkipPlusRequiresOneMatch(t *testing.T) {
	reply := parseString(SkipPlus(char('a')), "b")
	require.False(t, reply.IsOk())
}

func TestManyPanicsOnNonConsumingSuccess(t *testing.T) {
	zeroWidth := Result[rune, rune]('x')
	assert.Panics(t, func() { parseString(ManyStar(zeroWidth), "abc") })
}
