package parsec

// Parser is an opaque, composable parsing function: given a State and
// a Context, it invokes exactly one of the Context's four
// continuations and returns the Reply that continuation produced. A
// Parser carries no identity beyond its behavior; it is pure and may
// be shared across concurrent parses of independent inputs (spec §5).
type Parser[Tok any, A any] func(state State[Tok], ctx Context[Tok, A]) Reply[Tok, A]

// Result always succeeds without consuming input, yielding x.
func Result[Tok any, A any](x A) Parser[Tok, A] {
	return func(state State[Tok], ctx Context[Tok, A]) Reply[Tok, A] {
		return ctx.EOk(x, state, NewEmptyError(state.Pos))
	}
}

// Fail always fails without consuming input, with a free-form message.
func Fail[Tok any, A any](text string) Parser[Tok, A] {
	return func(state State[Tok], ctx Context[Tok, A]) Reply[Tok, A] {
		return ctx.EErr(MessageState(state, text))
	}
}

// Unexpected always fails without consuming input, with a user-supplied
// "unexpected" message.
func Unexpected[Tok any, A any](text string) Parser[Tok, A] {
	return func(state State[Tok], ctx Context[Tok, A]) Reply[Tok, A] {
		return ctx.EErr(UnexpectedState(state, text))
	}
}

// UserFunc threads a new user-state value through a consumed token,
// given the position and token just consumed and the remaining input.
type UserFunc[Tok any] func(pos Position, tok Tok, rest Seq[Tok], user any) any

// Token is the sole primitive that consumes input. It peeks the first
// remaining token; if input is empty or pred rejects it, it fails
// without consuming, with a system "unexpected" message (empty text at
// EOF, the lazily-rendered token otherwise). Otherwise it advances the
// position with nextPos, optionally threads a new user value through
// userFn, and succeeds, having consumed one token, with the token
// itself as its value. Use FMap to project it into another type.
func Token[Tok any](
	pred func(Tok) bool,
	nextPos NextPosFunc[Tok],
	render func(Tok) string,
	userFn UserFunc[Tok],
) Parser[Tok, Tok] {
	return func(state State[Tok], ctx Context[Tok, Tok]) Reply[Tok, Tok] {
		tok, ok := state.Input.Head()
		if !ok {
			return ctx.EErr(SysUnexpectedState(state, ""))
		}
		if !pred(tok) {
			return ctx.EErr(sysUnexpectedStateLazy(state, func() string { return render(tok) }))
		}
		rest := state.Input.Tail()
		newPos := nextPos(state.Pos, tok, rest)
		newUser := state.User
		if userFn != nil {
			newUser = userFn(state.Pos, tok, rest, state.User)
		}
		newState := NewState(rest, newPos, newUser)
		return ctx.COk(tok, newState, NewEmptyError(newPos))
	}
}

// Bind sequences p and f monadically (spec §4.4's bind table): f's
// success/failure without consuming input merges p's residual
// "expected" error into its own, so that later failures at the same
// point still report what p expected.
func Bind[Tok any, A any, B any](p Parser[Tok, A], f func(A) Parser[Tok, B]) Parser[Tok, B] {
	return func(state State[Tok], ctx Context[Tok, B]) Reply[Tok, B] {
		pCtx := Context[Tok, A]{
			cOk: func(x A, s State[Tok], eP ParseError) Reply[Tok, B] {
				fCtx := ctx.
					WithEOk(func(y B, s2 State[Tok], eFx ParseError) Reply[Tok, B] {
						return ctx.COk(y, s2, Merge(eP, eFx))
					}).
					WithEErr(func(eFx ParseError) Reply[Tok, B] {
						return ctx.CErr(Merge(eP, eFx))
					})
				return f(x)(s, fCtx)
			},
			cErr: func(e ParseError) Reply[Tok, B] {
				return ctx.CErr(e)
			},
			eOk: func(x A, s State[Tok], eP ParseError) Reply[Tok, B] {
				if eP.IsEmpty() {
					return f(x)(s, ctx)
				}
				fCtx := ctx.
					WithEOk(func(y B, s2 State[Tok], eFx ParseError) Reply[Tok, B] {
						return ctx.EOk(y, s2, Merge(eP, eFx))
					}).
					WithEErr(func(eFx ParseError) Reply[Tok, B] {
						return ctx.EErr(Merge(eP, eFx))
					})
				return f(x)(s, fCtx)
			},
			eErr: func(e ParseError) Reply[Tok, B] {
				return ctx.EErr(e)
			},
		}
		return p(state, pCtx)
	}
}

// Choice is the predictive (LL(1)) alternative: q is attempted only if
// p fails without consuming input. If p consumes input before failing,
// q is never tried and p's consumed failure propagates.
func Choice[Tok any, A any](p Parser[Tok, A], q Parser[Tok, A]) Parser[Tok, A] {
	return func(state State[Tok], ctx Context[Tok, A]) Reply[Tok, A] {
		pCtx := ctx.WithEErr(func(eP ParseError) Reply[Tok, A] {
			qCtx := ctx.
				WithEOk(func(x A, s State[Tok], eQ ParseError) Reply[Tok, A] {
					return ctx.EOk(x, s, Merge(eP, eQ))
				}).
				WithEErr(func(eQ ParseError) Reply[Tok, A] {
					return ctx.EErr(Merge(eP, eQ))
				})
			return q(state, qCtx)
		})
		return p(state, pCtx)
	}
}

// Alt folds Choice over ps left to right; Alt() with no parsers panics
// at construction time (a malformed combinator argument per spec §7,
// since there is nothing to delegate to).
func Alt[Tok any, A any](ps ...Parser[Tok, A]) Parser[Tok, A] {
	if len(ps) == 0 {
		panic("parsec: Alt requires at least one parser")
	}
	acc := ps[0]
	for _, p := range ps[1:] {
		acc = Choice(acc, p)
	}
	return acc
}

// Escape (aka Try/start) converts a consumed failure of p into an
// empty failure, letting an enclosing Choice try its other branch even
// though p consumed input. Success paths are unchanged.
func Escape[Tok any, A any](p Parser[Tok, A]) Parser[Tok, A] {
	return func(state State[Tok], ctx Context[Tok, A]) Reply[Tok, A] {
		pCtx := ctx.WithCErr(func(e ParseError) Reply[Tok, A] {
			return ctx.EErr(e)
		})
		return p(state, pCtx)
	}
}

// Try is an alias for Escape.
func Try[Tok any, A any](p Parser[Tok, A]) Parser[Tok, A] { return Escape(p) }

// LookAhead runs p and, on success, rewinds to the original state
// without consuming input while keeping p's value. Failures (consumed
// or not) pass through unchanged; combine with Escape to also undo
// consumption on failure.
func LookAhead[Tok any, A any](p Parser[Tok, A]) Parser[Tok, A] {
	return func(state State[Tok], ctx Context[Tok, A]) Reply[Tok, A] {
		innerCtx := Context[Tok, A]{
			cOk: func(x A, _ State[Tok], _ ParseError) Reply[Tok, A] {
				return ctx.EOk(x, state, NewEmptyError(state.Pos))
			},
			eOk: func(x A, _ State[Tok], _ ParseError) Reply[Tok, A] {
				return ctx.EOk(x, state, NewEmptyError(state.Pos))
			},
			cErr: ctx.CErr,
			eErr: ctx.EErr,
		}
		return p(state, innerCtx)
	}
}

// NotFollowedBy succeeds (without consuming input) only if p, tried
// with unbounded lookahead, fails; render is used to describe p's
// value in the resulting "unexpected" message when p does succeed.
func NotFollowedBy[Tok any, A any](p Parser[Tok, A], render func(A) string) Parser[Tok, struct{}] {
	escaped := Escape(p)
	return func(state State[Tok], ctx Context[Tok, struct{}]) Reply[Tok, struct{}] {
		innerCtx := Context[Tok, A]{
			cOk: func(x A, _ State[Tok], _ ParseError) Reply[Tok, struct{}] {
				return ctx.EErr(UnexpectedState(state, render(x)))
			},
			eOk: func(x A, _ State[Tok], _ ParseError) Reply[Tok, struct{}] {
				return ctx.EErr(UnexpectedState(state, render(x)))
			},
			cErr: func(_ ParseError) Reply[Tok, struct{}] {
				return ctx.EOk(struct{}{}, state, NewEmptyError(state.Pos))
			},
			eErr: func(_ ParseError) Reply[Tok, struct{}] {
				return ctx.EOk(struct{}{}, state, NewEmptyError(state.Pos))
			},
		}
		return escaped(state, innerCtx)
	}
}

// Label (aka Expecting) replaces p's expect-set with a single
// Expect(text) whenever p completes without consuming input; other
// message categories, and any error after consuming input, pass
// through untouched.
func Label[Tok any, A any](p Parser[Tok, A], text string) Parser[Tok, A] {
	return func(state State[Tok], ctx Context[Tok, A]) Reply[Tok, A] {
		pCtx := ctx.
			WithEOk(func(x A, s State[Tok], e ParseError) Reply[Tok, A] {
				if !e.IsEmpty() {
					e = Relabel(e, text)
				}
				return ctx.EOk(x, s, e)
			}).
			WithEErr(func(e ParseError) Reply[Tok, A] {
				return ctx.EErr(Relabel(e, text))
			})
		return p(state, pCtx)
	}
}

// Expecting is an alias for Label.
func Expecting[Tok any, A any](p Parser[Tok, A], text string) Parser[Tok, A] {
	return Label(p, text)
}

// onceResult flattens one invocation of a Parser's continuation
// protocol into a plain value, so that the hot repetition combinators
// (Many*, SepBy*, ManyTill, Times, ChainLeft/Right) can be written as
// ordinary loops instead of recursing through nested Contexts (spec
// §5/§9's CPS-to-iteration guidance).
type onceResult[Tok any, A any] struct {
	ok       bool
	consumed bool
	value    A
	state    State[Tok]
	err      ParseError
}

func runOnce[Tok any, A any](p Parser[Tok, A], state State[Tok]) onceResult[Tok, A] {
	var got onceResult[Tok, A]
	var zero Reply[Tok, A]
	ctx := Context[Tok, A]{
		cOk: func(x A, s State[Tok], e ParseError) Reply[Tok, A] {
			got = onceResult[Tok, A]{ok: true, consumed: true, value: x, state: s, err: e}
			return zero
		},
		cErr: func(e ParseError) Reply[Tok, A] {
			got = onceResult[Tok, A]{ok: false, consumed: true, err: e}
			return zero
		},
		eOk: func(x A, s State[Tok], e ParseError) Reply[Tok, A] {
			got = onceResult[Tok, A]{ok: true, consumed: false, value: x, state: s, err: e}
			return zero
		},
		eErr: func(e ParseError) Reply[Tok, A] {
			got = onceResult[Tok, A]{ok: false, consumed: false, err: e}
			return zero
		},
	}
	p(state, ctx)
	return got
}

// manyOutcome is the result of looping a parser to exhaustion (Many*,
// Skip*, and, through ManyStar, the sep-by family reduce to this shape).
type manyOutcome[Tok any, A any] struct {
	items    []A
	state    State[Tok]
	err      ParseError
	consumed bool
	failed   bool
	failErr  ParseError
}

// runMany repeats p against state until it fails without consuming
// input (normal termination, the err/consumed residue is kept for
// merging) or fails after consuming input (the whole repetition
// fails). A p that succeeds without consuming input is a programmer
// error: it would loop forever (spec §7, §8 invariant 7).
func runMany[Tok any, A any](p Parser[Tok, A], state State[Tok], collect bool) manyOutcome[Tok, A] {
	var acc []A
	consumedAny := false
	for {
		res := runOnce(p, state)
		switch {
		case res.ok && res.consumed:
			if collect {
				acc = append(acc, res.value)
			}
			state = res.state
			consumedAny = true
		case res.ok && !res.consumed:
			panic("parsec: many: parser succeeded without consuming input")
		case !res.ok && res.consumed:
			return manyOutcome[Tok, A]{items: acc, state: state, consumed: true, failed: true, failErr: res.err}
		default:
			return manyOutcome[Tok, A]{items: acc, state: state, err: res.err, consumed: consumedAny}
		}
	}
}

// ManyStar repeats p zero or more times, collecting its results.
func ManyStar[Tok any, A any](p Parser[Tok, A]) Parser[Tok, []A] {
	return func(state State[Tok], ctx Context[Tok, []A]) Reply[Tok, []A] {
		res := runMany(p, state, true)
		if res.failed {
			return ctx.CErr(res.failErr)
		}
		if res.consumed {
			return ctx.COk(res.items, res.state, res.err)
		}
		return ctx.EOk(res.items, res.state, res.err)
	}
}

// ManyPlus repeats p one or more times, collecting its results.
func ManyPlus[Tok any, A any](p Parser[Tok, A]) Parser[Tok, []A] {
	return Bind(p, func(first A) Parser[Tok, []A] {
		return FMap(ManyStar(p), func(rest []A) []A {
			out := make([]A, 0, len(rest)+1)
			out = append(out, first)
			out = append(out, rest...)
			return out
		})
	})
}

// SkipStar repeats p zero or more times, discarding its results.
func SkipStar[Tok any, A any](p Parser[Tok, A]) Parser[Tok, struct{}] {
	return func(state State[Tok], ctx Context[Tok, struct{}]) Reply[Tok, struct{}] {
		res := runMany(p, state, false)
		if res.failed {
			return ctx.CErr(res.failErr)
		}
		if res.consumed {
			return ctx.COk(struct{}{}, res.state, res.err)
		}
		return ctx.EOk(struct{}{}, res.state, res.err)
	}
}

// SkipPlus repeats p one or more times, discarding its results.
func SkipPlus[Tok any, A any](p Parser[Tok, A]) Parser[Tok, struct{}] {
	return Bind(p, func(A) Parser[Tok, struct{}] {
		return SkipStar(p)
	})
}
