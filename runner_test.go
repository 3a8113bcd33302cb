package parsec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSuccess(t *testing.T) {
	reply := Parse(char('a'), FromString("a"), Options{})
	require.True(t, reply.IsOk())
	assert.False(t, IsError(reply))
}

func TestParseFailure(t *testing.T) {
	reply := Parse(char('a'), FromString("b"), Options{})
	require.False(t, reply.IsOk())
	assert.True(t, IsError(reply))
}

func TestParseUsesOptionsInitialPosition(t *testing.T) {
	reply := Parse(char('a'), FromString("a"), Options{SourceName: "f", InitialLine: 5, InitialColumn: 2})
	require.True(t, reply.IsOk())
	assert.Equal(t, "f", reply.State().Pos.Source)
	assert.Equal(t, 5, reply.State().Pos.Line)
}

func TestParseThreadsUserState(t *testing.T) {
	p := Token(func(rune) bool { return true }, nextPos, renderRune, func(_ Position, tok rune, _ Seq[rune], user any) any {
		return user.(int) + 1
	})
	reply := Parse(p, FromString("a"), Options{UserState: 41})
	require.True(t, reply.IsOk())
	assert.Equal(t, 42, reply.State().User)
}
