package parsec

// Context is the dispatch table a Parser invokes exactly once per
// call: cOk/cErr when input was consumed, eOk/eErr when it was not
// (spec §4.3). A Context is an immutable record; combinators replace
// selected continuations and delegate to a child parser, never mutate
// one in place.
type Context[Tok any, A any] struct {
	cOk  func(value A, state State[Tok], err ParseError) Reply[Tok, A]
	cErr func(err ParseError) Reply[Tok, A]
	eOk  func(value A, state State[Tok], err ParseError) Reply[Tok, A]
	eErr func(err ParseError) Reply[Tok, A]
}

// WithCOk returns a copy of c with cOk replaced.
func (c Context[Tok, A]) WithCOk(f func(A, State[Tok], ParseError) Reply[Tok, A]) Context[Tok, A] {
	c.cOk = f
	return c
}

// WithCErr returns a copy of c with cErr replaced.
func (c Context[Tok, A]) WithCErr(f func(ParseError) Reply[Tok, A]) Context[Tok, A] {
	c.cErr = f
	return c
}

// WithEOk returns a copy of c with eOk replaced.
func (c Context[Tok, A]) WithEOk(f func(A, State[Tok], ParseError) Reply[Tok, A]) Context[Tok, A] {
	c.eOk = f
	return c
}

// WithEErr returns a copy of c with eErr replaced.
func (c Context[Tok, A]) WithEErr(f func(ParseError) Reply[Tok, A]) Context[Tok, A] {
	c.eErr = f
	return c
}

func (c Context[Tok, A]) COk(value A, state State[Tok], err ParseError) Reply[Tok, A] {
	return c.cOk(value, state, err)
}

func (c Context[Tok, A]) CErr(err ParseError) Reply[Tok, A] {
	return c.cErr(err)
}

func (c Context[Tok, A]) EOk(value A, state State[Tok], err ParseError) Reply[Tok, A] {
	return c.eOk(value, state, err)
}

func (c Context[Tok, A]) EErr(err ParseError) Reply[Tok, A] {
	return c.eErr(err)
}

// Reply is the terminal value a Context's continuation produces: a
// Success (with the residual "expected" error kept for later merging)
// or a Failure, each tagged with whether input was consumed.
type Reply[Tok any, A any] struct {
	ok       bool
	consumed bool
	value    A
	state    State[Tok]
	err      ParseError
}

// IsOk reports whether the Reply is a Success.
func (r Reply[Tok, A]) IsOk() bool { return r.ok }

// Consumed reports whether input was consumed before this Reply was
// produced.
func (r Reply[Tok, A]) Consumed() bool { return r.consumed }

// Value returns the success value; it is the zero value of A on a
// Failure Reply.
func (r Reply[Tok, A]) Value() A { return r.value }

// State returns the state as of this Reply; on Success it is the
// advanced state, on Failure it is the zero State (a Failure carries
// only its error; see Err for the position).
func (r Reply[Tok, A]) State() State[Tok] { return r.state }

// Err returns the residual or terminal ParseError: the "expected" set
// to merge on Success, or the failure's error on Failure.
func (r Reply[Tok, A]) Err() ParseError { return r.err }

func successReply[Tok any, A any](consumed bool, value A, state State[Tok], err ParseError) Reply[Tok, A] {
	return Reply[Tok, A]{ok: true, consumed: consumed, value: value, state: state, err: err}
}

func failureReply[Tok any, A any](consumed bool, err ParseError) Reply[Tok, A] {
	return Reply[Tok, A]{ok: false, consumed: consumed, err: err}
}

// terminalContext builds the Context the runner installs at the top
// of a parse: it wraps each of the four continuations straight into a
// tagged Reply (spec §4.5).
func terminalContext[Tok any, A any]() Context[Tok, A] {
	return Context[Tok, A]{
		cOk: func(value A, state State[Tok], err ParseError) Reply[Tok, A] {
			return successReply(true, value, state, err)
		},
		cErr: func(err ParseError) Reply[Tok, A] {
			return failureReply[Tok, A](true, err)
		},
		eOk: func(value A, state State[Tok], err ParseError) Reply[Tok, A] {
			return successReply(false, value, state, err)
		},
		eErr: func(err ParseError) Reply[Tok, A] {
			return failureReply[Tok, A](false, err)
		},
	}
}
