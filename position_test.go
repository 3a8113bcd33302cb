package parsec

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPositionString(t *testing.T) {
	tests := []struct {
		name string
		pos  Position
		want string
	}{
		{"no source", Position{Line: 1, Column: 1}, "line 1, column 1"},
		{"with source", Position{Source: "f.txt", Line: 3, Column: 5}, "f.txt (line 3, column 5)"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.pos.String())
		})
	}
}

func TestPositionLess(t *testing.T) {
	assert.True(t, Position{Line: 1, Column: 5}.Less(Position{Line: 2, Column: 1}))
	assert.True(t, Position{Line: 1, Column: 1}.Less(Position{Line: 1, Column: 2}))
	assert.False(t, Position{Line: 2, Column: 1}.Less(Position{Line: 1, Column: 9}))
	assert.False(t, Position{Line: 1, Column: 1}.Less(Position{Line: 1, Column: 1}))
}

func TestInitPosition(t *testing.T) {
	assert.Equal(t, Position{Line: 1, Column: 1}, InitPosition(Options{}))
	assert.Equal(t, Position{Source: "f", Line: 4, Column: 2}, InitPosition(Options{SourceName: "f", InitialLine: 4, InitialColumn: 2}))
}

func TestRuneNextPos(t *testing.T) {
	next := RuneNextPos(0)

	p := next(Position{Line: 1, Column: 1}, 'a', nil)
	assert.Equal(t, Position{Line: 1, Column: 2}, p)

	p = next(Position{Line: 1, Column: 5}, '\n', nil)
	assert.Equal(t, Position{Line: 2, Column: 1}, p)

	p = next(Position{Line: 1, Column: 1}, '\t', nil)
	assert.Equal(t, Position{Line: 1, Column: 9}, p)

	p = next(Position{Line: 1, Column: 5}, '\t', nil)
	assert.Equal(t, Position{Line: 1, Column: 9}, p)

	p = next(Position{Line: 1, Column: 9}, '\t', nil)
	assert.Equal(t, Position{Line: 1, Column: 17}, p)
}

func TestRuneNextPosCustomTabSize(t *testing.T) {
	next := RuneNextPos(4)
	p := next(Position{Line: 1, Column: 1}, '\t', nil)
	assert.Equal(t, Position{Line: 1, Column: 5}, p)
}

func TestIdentityNextPos(t *testing.T) {
	p := IdentityNextPos(Position{Line: 2, Column: 3}, 42, nil)
	assert.Equal(t, Position{Line: 2, Column: 4}, p)
}
