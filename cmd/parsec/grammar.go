package main

import (
	"fmt"
	"os"

	"github.com/clarete/parsec"
	"github.com/clarete/parsec/chars"
)

// Verbose turns on the parse trace lines every demo grammar prints
// through trace below; the root command's -v/--verbose flag sets it
// before any grammar is invoked.
var Verbose bool

// trace wraps p so that, when Verbose is set, entering and leaving it
// prints a line to stderr naming it, its position, and whether it
// consumed input — a debugging aid, never part of a Reply.
func trace[A any](name string, p parsec.Parser[rune, A]) parsec.Parser[rune, A] {
	return func(state parsec.State[rune], ctx parsec.Context[rune, A]) parsec.Reply[rune, A] {
		if !Verbose {
			return p(state, ctx)
		}
		fmt.Fprintf(os.Stderr, "enter %s at %s\n", name, state.Pos)
		leave := func(consumed, ok bool) {
			fmt.Fprintf(os.Stderr, "leave %s consumed=%v ok=%v\n", name, consumed, ok)
		}
		traced := ctx.
			WithCOk(func(x A, s parsec.State[rune], e parsec.ParseError) parsec.Reply[rune, A] {
				leave(true, true)
				return ctx.COk(x, s, e)
			}).
			WithCErr(func(e parsec.ParseError) parsec.Reply[rune, A] { leave(true, false); return ctx.CErr(e) }).
			WithEOk(func(x A, s parsec.State[rune], e parsec.ParseError) parsec.Reply[rune, A] {
				leave(false, true)
				return ctx.EOk(x, s, e)
			}).
			WithEErr(func(e parsec.ParseError) parsec.Reply[rune, A] { leave(false, false); return ctx.EErr(e) })
		return p(state, traced)
	}
}

func lexChar(r rune) parsec.Parser[rune, rune] {
	return chars.Lexeme(chars.Char(r))
}

func numberLit() parsec.Parser[rune, float64] {
	return parsec.FMap(chars.Lexeme(chars.UnsignedInt()), func(n int) float64 { return float64(n) })
}

func addOp() parsec.Parser[rune, func(float64, float64) float64] {
	plus := parsec.FMap(lexChar('+'), func(rune) func(float64, float64) float64 {
		return func(a, b float64) float64 { return a + b }
	})
	minus := parsec.FMap(lexChar('-'), func(rune) func(float64, float64) float64 {
		return func(a, b float64) float64 { return a - b }
	})
	return parsec.Choice(plus, minus)
}

func mulOp() parsec.Parser[rune, func(float64, float64) float64] {
	times := parsec.FMap(lexChar('*'), func(rune) func(float64, float64) float64 {
		return func(a, b float64) float64 { return a * b }
	})
	div := parsec.FMap(lexChar('/'), func(rune) func(float64, float64) float64 {
		return func(a, b float64) float64 { return a / b }
	})
	return parsec.Choice(times, div)
}

// exprLazy defers to Expr at parse time rather than construction time,
// breaking the Factor->Expr->Term->Factor construction cycle a
// parenthesized sub-expression needs.
func exprLazy() parsec.Parser[rune, float64] {
	return func(state parsec.State[rune], ctx parsec.Context[rune, float64]) parsec.Reply[rune, float64] {
		return trace("expr", Expr())(state, ctx)
	}
}

// Factor is a number literal or a parenthesized sub-expression.
func Factor() parsec.Parser[rune, float64] {
	paren := parsec.Between(lexChar('('), exprLazy(), lexChar(')'))
	return trace("factor", parsec.Choice(numberLit(), paren))
}

// Term chains Factor with * and /, left-associatively.
func Term() parsec.Parser[rune, float64] {
	return trace("term", parsec.ChainLeftPlus(Factor(), mulOp()))
}

// Expr chains Term with + and -, left-associatively: the textbook
// arithmetic-expression shape built on ChainLeftPlus.
func Expr() parsec.Parser[rune, float64] {
	return trace("expr", parsec.ChainLeftPlus(Term(), addOp()))
}

// ArithGrammar parses a complete arithmetic expression, skipping
// leading whitespace and requiring the whole input to be consumed.
func ArithGrammar() parsec.Parser[rune, float64] {
	return parsec.Sequence(parsec.After(chars.Spaces(), Expr()), chars.Eof())
}

func quotedString() parsec.Parser[rune, string] {
	inner := parsec.FMap(parsec.ManyStar(chars.NoneOf("\"")), chars.ToStr)
	return parsec.Between(chars.Char('"'), inner, chars.Char('"'))
}

// StringListGrammar parses a comma-separated, bracketed list of
// double-quoted strings, e.g. `["a", "bc", ""]`.
func StringListGrammar() parsec.Parser[rune, []string] {
	open := lexChar('[')
	closeP := lexChar(']')
	comma := lexChar(',')
	item := chars.Lexeme(trace("string", quotedString()))
	body := parsec.SepByStar(item, comma)
	return parsec.Sequence(parsec.After(chars.Spaces(), parsec.Between(open, body, closeP)), chars.Eof())
}

func atomP() parsec.Parser[rune, any] {
	return parsec.FMap(chars.Lexeme(chars.Identifier()), func(s string) any { return s })
}

// listLazy defers to listP at parse time, breaking the construction
// cycle a nested sub-list needs.
func listLazy() parsec.Parser[rune, any] {
	return func(state parsec.State[rune], ctx parsec.Context[rune, any]) parsec.Reply[rune, any] {
		return listP()(state, ctx)
	}
}

// listP parses a parenthesized, space-separated list of atoms and
// nested lists, e.g. `(foo (bar baz) qux)`.
func listP() parsec.Parser[rune, any] {
	open := lexChar('(')
	closeP := lexChar(')')
	elem := parsec.Choice(atomP(), listLazy())
	return trace("list", parsec.FMap(parsec.Between(open, parsec.ManyStar(elem), closeP), func(items []any) any {
		return items
	}))
}

// ListGrammar parses a single top-level parenthesized list.
func ListGrammar() parsec.Parser[rune, any] {
	return parsec.Sequence(parsec.After(chars.Spaces(), listP()), chars.Eof())
}
