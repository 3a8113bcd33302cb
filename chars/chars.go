// Package chars provides the textual combinators a character-level
// grammar needs on top of the parsec kernel: satisfying predicates,
// literal runes and strings, whitespace, and rendering helpers. None
// of this is part of the parsec kernel itself (see parsec's package
// doc); it is an ordinary consumer of parsec's public API.
package chars

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/clarete/parsec"
)

func renderRune(r rune) string {
	return fmt.Sprintf("%q", string(r))
}

// nextPos advances position one rune at a time, with the tab-stop
// convention layered on top (parsec.RuneNextPos).
var nextPos = parsec.RuneNextPos(0)

// WithTabSize returns a rune NextPosFunc that advances tab stops every
// size columns instead of the default of 8, for callers building their
// own parsec.Token parsers; the parsers in this package always use the
// default width.
func WithTabSize(size int) parsec.NextPosFunc[rune] {
	return parsec.RuneNextPos(size)
}

// Satisfy consumes the next rune if pred accepts it.
func Satisfy(pred func(rune) bool) parsec.Parser[rune, rune] {
	return parsec.Token(pred, nextPos, renderRune, nil)
}

// Char consumes exactly the rune r.
func Char(r rune) parsec.Parser[rune, rune] {
	return parsec.Label(Satisfy(func(c rune) bool { return c == r }), renderRune(r))
}

// AnyChar consumes any single rune, failing only at end of input.
func AnyChar() parsec.Parser[rune, rune] {
	return Satisfy(func(rune) bool { return true })
}

// OneOf consumes a rune that is one of the runes in set.
func OneOf(set string) parsec.Parser[rune, rune] {
	return parsec.Label(
		Satisfy(func(c rune) bool { return strings.ContainsRune(set, c) }),
		fmt.Sprintf("(one-of %q)", set),
	)
}

// NoneOf consumes a rune that is none of the runes in set.
func NoneOf(set string) parsec.Parser[rune, rune] {
	return parsec.Label(
		Satisfy(func(c rune) bool { return !strings.ContainsRune(set, c) }),
		fmt.Sprintf("(none-of %q)", set),
	)
}

// Alpha consumes a single unicode letter.
func Alpha() parsec.Parser[rune, rune] {
	return parsec.Label(Satisfy(unicode.IsLetter), "a letter")
}

// Digit consumes a single decimal digit.
func Digit() parsec.Parser[rune, rune] {
	return parsec.Label(Satisfy(unicode.IsDigit), "a digit")
}

// AlphaNum consumes a single letter or digit.
func AlphaNum() parsec.Parser[rune, rune] {
	return parsec.Label(Satisfy(func(c rune) bool { return unicode.IsLetter(c) || unicode.IsDigit(c) }), "a letter or digit")
}

// Space consumes a single whitespace rune, as defined by
// unicode.IsSpace (space, tab, \n, \r and other Unicode spaces).
func Space() parsec.Parser[rune, rune] {
	return parsec.Label(Satisfy(unicode.IsSpace), "whitespace")
}

// Spaces consumes zero or more whitespace runes.
func Spaces() parsec.Parser[rune, struct{}] {
	return parsec.SkipStar(Space())
}

// Newline consumes a line terminator, accepting "\r\n" as well as a
// bare "\n" and always producing '\n' as its value (spec §8 S4/S5).
func Newline() parsec.Parser[rune, rune] {
	crlf := parsec.After(Char('\r'), Char('\n'))
	return parsec.Label(parsec.Choice(Char('\n'), crlf), `"\n"`)
}

// Eof succeeds, without consuming input, only at the end of a rune
// stream.
func Eof() parsec.Parser[rune, struct{}] {
	return parsec.Eof[rune](renderRune)
}

// Lexeme runs p, then discards any trailing whitespace, the usual way
// a grammar keeps its rules from having to worry about spacing between
// tokens.
func Lexeme[A any](p parsec.Parser[rune, A]) parsec.Parser[rune, A] {
	return parsec.Sequence(p, Spaces())
}

// Identifier consumes a letter or underscore followed by zero or more
// letters, digits or underscores, the common shape of a name token in
// a small expression grammar.
func Identifier() parsec.Parser[rune, string] {
	first := parsec.Label(
		Satisfy(func(c rune) bool { return unicode.IsLetter(c) || c == '_' }),
		"a letter or _",
	)
	rest := parsec.ManyStar(parsec.Label(
		Satisfy(func(c rune) bool { return unicode.IsLetter(c) || unicode.IsDigit(c) || c == '_' }),
		"a letter, digit or _",
	))
	return parsec.Bind(first, func(h rune) parsec.Parser[rune, string] {
		return parsec.FMap(rest, func(tail []rune) string {
			return string(h) + string(tail)
		})
	})
}

// UnsignedInt consumes one or more decimal digits and returns their
// value as an int; overflow is not detected, and the value wraps
// around.
func UnsignedInt() parsec.Parser[rune, int] {
	digits := parsec.Label(parsec.ManyPlus(Digit()), "a number")
	return parsec.FMap(digits, func(ds []rune) int {
		n := 0
		for _, d := range ds {
			n = n*10 + int(d-'0')
		}
		return n
	})
}

// Str consumes the literal string s, rune by rune; failing partway
// through reports the offending rune as unexpected, with a label naming
// the rune that was expected and the literal being matched (spec §8 S3).
func Str(s string) parsec.Parser[rune, string] {
	runes := []rune(s)
	p := parsec.Result[rune, []rune](nil)
	for _, r := range runes {
		label := fmt.Sprintf("%s in (string %q)", renderRune(r), s)
		rr := r
		matchRune := parsec.Label(Satisfy(func(c rune) bool { return c == rr }), label)
		p = parsec.Bind(p, func(acc []rune) parsec.Parser[rune, []rune] {
			return parsec.FMap(matchRune, func(c rune) []rune {
				return append(append([]rune{}, acc...), c)
			})
		})
	}
	return parsec.FMap(p, ToStr)
}

// ToStr renders a slice of runes as a string, the usual last step of a
// rune-collecting combinator such as parsec.ManyStar(chars.Alpha()).
func ToStr(rs []rune) string {
	return string(rs)
}
