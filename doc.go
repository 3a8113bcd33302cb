// Package parsec is a small Parsec-style parser combinator kernel: a
// parser is a value that, given an input state, produces a result and
// an advanced state or a structured error. Combinators compose parsers
// by sequence, alternative, repetition and lookahead while preserving
// predictive (LL(1)) choice and precise, mergeable error reporting.
//
// The textual helpers (alpha, digit, string literals, ...) are not
// part of this package; see the sibling package chars, which is built
// entirely on the public API below.
package parsec
