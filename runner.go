package parsec

// Parse drives p to a final Reply against input, building the initial
// State from opts (spec §4.5). It is the library's only entry point:
// everything else composes Parser values, and nothing runs until Parse
// is called.
func Parse[Tok any, A any](p Parser[Tok, A], input Seq[Tok], opts Options) Reply[Tok, A] {
	pos := InitPosition(opts)
	state := NewState(input, pos, opts.UserState)
	return p(state, terminalContext[Tok, A]())
}

// IsError reports whether reply is a Failure.
func IsError[Tok any, A any](reply Reply[Tok, A]) bool {
	return !reply.IsOk()
}
