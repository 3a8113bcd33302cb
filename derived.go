package parsec

// FMap transforms a parser's successful value with f, leaving the
// consumed/empty and error behavior untouched.
func FMap[Tok any, A any, B any](p Parser[Tok, A], f func(A) B) Parser[Tok, B] {
	return Bind(p, func(x A) Parser[Tok, B] {
		return Result[Tok, B](f(x))
	})
}

// After runs p then q, keeping only q's value (the `>>` operator).
func After[Tok any, A any, B any](p Parser[Tok, A], q Parser[Tok, B]) Parser[Tok, B] {
	return Bind(p, func(A) Parser[Tok, B] { return q })
}

// Then is an alias for After, read left to right.
func Then[Tok any, A any, B any](p Parser[Tok, A], q Parser[Tok, B]) Parser[Tok, B] {
	return After(p, q)
}

// Sequence runs p then q, keeping only p's value.
func Sequence[Tok any, A any, B any](p Parser[Tok, A], q Parser[Tok, B]) Parser[Tok, A] {
	return Bind(p, func(x A) Parser[Tok, B] {
		return FMap(q, func(B) A { return x })
	})
}

// Pair runs p then q and pairs up both values.
func Pair[Tok any, A any, B any](p Parser[Tok, A], q Parser[Tok, B]) Parser[Tok, Tuple2[A, B]] {
	return Bind(p, func(a A) Parser[Tok, Tuple2[A, B]] {
		return FMap(q, func(b B) Tuple2[A, B] {
			return Tuple2[A, B]{First: a, Second: b}
		})
	})
}

// Tuple2 pairs two parse results.
type Tuple2[A any, B any] struct {
	First  A
	Second B
}

// Between runs open, then p, then close, keeping only p's value.
func Between[Tok any, O any, A any, C any](open Parser[Tok, O], p Parser[Tok, A], close Parser[Tok, C]) Parser[Tok, A] {
	return Bind(open, func(O) Parser[Tok, A] {
		return Sequence(p, close)
	})
}

// Optional runs p; if it fails without consuming input, succeeds with
// def instead. A consumed failure of p still propagates (wrap p in
// Escape first if that isn't wanted).
func Optional[Tok any, A any](p Parser[Tok, A], def A) Parser[Tok, A] {
	return Choice(p, Result[Tok, A](def))
}

// Eof succeeds, without consuming input, only at the end of input.
func Eof[Tok any](render func(Tok) string) Parser[Tok, struct{}] {
	return Label(NotFollowedBy(AnyToken[Tok](render), render), "end of input")
}

// AnyToken consumes and returns the next token unconditionally,
// failing only at end of input.
func AnyToken[Tok any](render func(Tok) string) Parser[Tok, Tok] {
	return Token(func(Tok) bool { return true }, IdentityNextPos[Tok], render, nil)
}

// ManyTill repeats p until end matches, returning p's accumulated
// values; end is tried before each p attempt and its match is
// consumed but discarded. A p that never matches before input runs out
// fails the way any other consumed/empty failure would.
func ManyTill[Tok any, A any, E any](p Parser[Tok, A], end Parser[Tok, E]) Parser[Tok, []A] {
	return func(state State[Tok], ctx Context[Tok, []A]) Reply[Tok, []A] {
		var acc []A
		consumedAny := false
		for {
			endRes := runOnce(end, state)
			if endRes.ok {
				finalState := state
				if endRes.consumed {
					finalState = endRes.state
				}
				if endRes.consumed || consumedAny {
					return ctx.COk(acc, finalState, endRes.err)
				}
				return ctx.EOk(acc, finalState, endRes.err)
			}
			if endRes.consumed {
				return ctx.CErr(endRes.err)
			}

			itemRes := runOnce(p, state)
			if !itemRes.ok {
				if itemRes.consumed {
					return ctx.CErr(itemRes.err)
				}
				if consumedAny {
					return ctx.CErr(Merge(endRes.err, itemRes.err))
				}
				return ctx.EErr(Merge(endRes.err, itemRes.err))
			}
			if !itemRes.consumed {
				panic("parsec: ManyTill: parser succeeded without consuming input")
			}
			acc = append(acc, itemRes.value)
			state = itemRes.state
			consumedAny = true
		}
	}
}

// Times runs p exactly n times, collecting its values; n<=0 yields an
// empty slice without running p at all (spec §9's composability
// preference for the ambiguous case).
func Times[Tok any, A any](n int, p Parser[Tok, A]) Parser[Tok, []A] {
	return func(state State[Tok], ctx Context[Tok, []A]) Reply[Tok, []A] {
		if n <= 0 {
			return ctx.EOk(nil, state, NewEmptyError(state.Pos))
		}
		acc := make([]A, 0, n)
		consumedAny := false
		lastErr := NewEmptyError(state.Pos)
		for i := 0; i < n; i++ {
			res := runOnce(p, state)
			if !res.ok {
				if res.consumed || consumedAny {
					return ctx.CErr(res.err)
				}
				return ctx.EErr(res.err)
			}
			acc = append(acc, res.value)
			state = res.state
			lastErr = res.err
			consumedAny = consumedAny || res.consumed
		}
		if consumedAny {
			return ctx.COk(acc, state, lastErr)
		}
		return ctx.EOk(acc, state, lastErr)
	}
}

// SepByStar parses zero or more p separated by sep, returning p's
// values.
func SepByStar[Tok any, A any, S any](p Parser[Tok, A], sep Parser[Tok, S]) Parser[Tok, []A] {
	return Choice(SepByPlus(p, sep), Result[Tok, []A](nil))
}

// SepByPlus parses one or more p separated by sep, returning p's
// values.
func SepByPlus[Tok any, A any, S any](p Parser[Tok, A], sep Parser[Tok, S]) Parser[Tok, []A] {
	rest := ManyStar(After(sep, p))
	return Bind(p, func(first A) Parser[Tok, []A] {
		return FMap(rest, func(tail []A) []A {
			out := make([]A, 0, len(tail)+1)
			out = append(out, first)
			out = append(out, tail...)
			return out
		})
	})
}

// SepByEndStar parses zero or more p, each followed by sep (a trailing
// sep is mandatory when there is at least one p).
func SepByEndStar[Tok any, A any, S any](p Parser[Tok, A], sep Parser[Tok, S]) Parser[Tok, []A] {
	return ManyStar(Sequence(p, sep))
}

// SepByEndPlus parses one or more p, each followed by a mandatory sep.
func SepByEndPlus[Tok any, A any, S any](p Parser[Tok, A], sep Parser[Tok, S]) Parser[Tok, []A] {
	return ManyPlus(Sequence(p, sep))
}

// SepByEndOptStar parses zero or more p separated by sep, with an
// optional trailing sep.
func SepByEndOptStar[Tok any, A any, S any](p Parser[Tok, A], sep Parser[Tok, S]) Parser[Tok, []A] {
	return Choice(SepByEndOptPlus(p, sep), Result[Tok, []A](nil))
}

// SepByEndOptPlus parses one or more p separated by sep, with an
// optional trailing sep.
func SepByEndOptPlus[Tok any, A any, S any](p Parser[Tok, A], sep Parser[Tok, S]) Parser[Tok, []A] {
	return Bind(p, func(first A) Parser[Tok, []A] {
		rest := Optional(After(sep, SepByEndOptStar(p, sep)), []A(nil))
		return FMap(rest, func(tail []A) []A {
			return append([]A{first}, tail...)
		})
	})
}

// ChainLeftPlus parses one or more p separated by a left-associative
// binary operator parsed by op; op's value combines the accumulator
// and the next p result.
func ChainLeftPlus[Tok any, A any](p Parser[Tok, A], op Parser[Tok, func(A, A) A]) Parser[Tok, A] {
	return Bind(p, func(first A) Parser[Tok, A] {
		return func(state State[Tok], ctx Context[Tok, A]) Reply[Tok, A] {
			acc := first
			consumedAny := false
			for {
				opRes := runOnce(op, state)
				if !opRes.ok {
					if opRes.consumed {
						return ctx.CErr(opRes.err)
					}
					if consumedAny {
						return ctx.COk(acc, state, opRes.err)
					}
					return ctx.EOk(acc, state, opRes.err)
				}
				if !opRes.consumed {
					panic("parsec: ChainLeftPlus: operator succeeded without consuming input")
				}
				rhsRes := runOnce(p, opRes.state)
				if !rhsRes.ok {
					return ctx.CErr(rhsRes.err)
				}
				acc = opRes.value(acc, rhsRes.value)
				state = rhsRes.state
				consumedAny = true
			}
		}
	})
}

// ChainLeftStar is ChainLeftPlus, falling back to def when p never
// matches at all.
func ChainLeftStar[Tok any, A any](p Parser[Tok, A], op Parser[Tok, func(A, A) A], def A) Parser[Tok, A] {
	return Choice(ChainLeftPlus(p, op), Result[Tok, A](def))
}

// ChainRightPlus parses one or more p separated by a right-associative
// binary operator parsed by op.
func ChainRightPlus[Tok any, A any](p Parser[Tok, A], op Parser[Tok, func(A, A) A]) Parser[Tok, A] {
	return Bind(p, func(first A) Parser[Tok, A] {
		return func(state State[Tok], ctx Context[Tok, A]) Reply[Tok, A] {
			type link struct {
				combine func(A, A) A
				rhs     A
			}
			var links []link
			consumedAny := false
			for {
				opRes := runOnce(op, state)
				if !opRes.ok {
					if opRes.consumed {
						return ctx.CErr(opRes.err)
					}
					break
				}
				if !opRes.consumed {
					panic("parsec: ChainRightPlus: operator succeeded without consuming input")
				}
				rhsRes := runOnce(p, opRes.state)
				if !rhsRes.ok {
					return ctx.CErr(rhsRes.err)
				}
				links = append(links, link{combine: opRes.value, rhs: rhsRes.value})
				state = rhsRes.state
				consumedAny = true
			}
			acc := first
			if n := len(links); n > 0 {
				acc = links[n-1].rhs
				for k := n - 2; k >= 0; k-- {
					acc = links[k+1].combine(links[k].rhs, acc)
				}
				acc = links[0].combine(first, acc)
			}
			if consumedAny {
				return ctx.COk(acc, state, NewEmptyError(state.Pos))
			}
			return ctx.EOk(acc, state, NewEmptyError(state.Pos))
		}
	})
}

// ChainRightStar is ChainRightPlus, falling back to def when p never
// matches at all.
func ChainRightStar[Tok any, A any](p Parser[Tok, A], op Parser[Tok, func(A, A) A], def A) Parser[Tok, A] {
	return Choice(ChainRightPlus(p, op), Result[Tok, A](def))
}
