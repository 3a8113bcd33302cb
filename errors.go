package parsec

import (
	"sort"
	"strings"
	"sync"
)

// MessageKind is the closed set of message categories a ParseError can
// carry (spec §3): a system-generated "unexpected", a user-supplied
// "unexpected", an "expected" item, or a free-form message.
type MessageKind int

const (
	SysUnexpect MessageKind = iota
	Unexpect
	Expect
	Msg
)

// textThunk lazily computes and memoizes a message's text, so that a
// deep grammar doesn't pay to render messages that are merged away or
// never printed (spec §5/§9).
type textThunk struct {
	once sync.Once
	fn   func() string
	val  string
}

func constThunk(s string) *textThunk {
	t := &textThunk{val: s}
	t.once.Do(func() {})
	return t
}

func lazyThunk(fn func() string) *textThunk {
	return &textThunk{fn: fn}
}

func (t *textThunk) Text() string {
	t.once.Do(func() { t.val = t.fn() })
	return t.val
}

// Message is one component of a ParseError: a category tag plus a
// lazily-evaluated, memoized piece of text. Equality is by tag+text.
type Message struct {
	Kind MessageKind
	text *textThunk
}

func NewMessage(kind MessageKind, text string) Message {
	return Message{Kind: kind, text: constThunk(text)}
}

func NewLazyMessage(kind MessageKind, fn func() string) Message {
	return Message{Kind: kind, text: lazyThunk(fn)}
}

func (m Message) Text() string { return m.text.Text() }

// ParseError is a Position plus a set of Messages. All messages in one
// ParseError share that one Position (spec §3 invariant i).
type ParseError struct {
	pos      Position
	messages []Message
}

// Pos returns the position this error was raised at.
func (e ParseError) Pos() Position { return e.pos }

// Messages returns the error's message set, in the order they were
// added (duplicates by Kind+Text are never stored).
func (e ParseError) Messages() []Message {
	out := make([]Message, len(e.messages))
	copy(out, e.messages)
	return out
}

// IsEmpty reports whether the error carries no messages at all.
func (e ParseError) IsEmpty() bool { return len(e.messages) == 0 }

// NewEmptyError builds a messageless error at pos, the error carried
// by successful parses for merge propagation (spec §4.4's result/bind).
func NewEmptyError(pos Position) ParseError {
	return ParseError{pos: pos}
}

// NewMessageErrorAt builds a single-message error at pos.
func NewMessageErrorAt(kind MessageKind, text string, pos Position) ParseError {
	return ParseError{pos: pos, messages: []Message{NewMessage(kind, text)}}
}

func newLazyMessageErrorAt(kind MessageKind, fn func() string, pos Position) ParseError {
	return ParseError{pos: pos, messages: []Message{NewLazyMessage(kind, fn)}}
}

// SysUnexpectedState builds a system "unexpected" error at state's
// current position; an empty text renders as "end of input".
func SysUnexpectedState[Tok any](state State[Tok], text string) ParseError {
	return NewMessageErrorAt(SysUnexpect, text, state.Pos)
}

func sysUnexpectedStateLazy[Tok any](state State[Tok], fn func() string) ParseError {
	return newLazyMessageErrorAt(SysUnexpect, fn, state.Pos)
}

// UnexpectedState builds a user-supplied "unexpected" error at state's
// current position.
func UnexpectedState[Tok any](state State[Tok], text string) ParseError {
	return NewMessageErrorAt(Unexpect, text, state.Pos)
}

// MessageState builds a free-form failure message at state's current
// position.
func MessageState[Tok any](state State[Tok], text string) ParseError {
	return NewMessageErrorAt(Msg, text, state.Pos)
}

func hasMessage(msgs []Message, m Message) bool {
	for _, existing := range msgs {
		if existing.Kind == m.Kind && existing.Text() == m.Text() {
			return true
		}
	}
	return false
}

func addMessages(dst []Message, src []Message) []Message {
	for _, m := range src {
		if !hasMessage(dst, m) {
			dst = append(dst, m)
		}
	}
	return dst
}

// Merge combines two errors per spec §4.2: if either is empty, the
// other is returned untouched; at equal positions the message sets are
// unioned; at unequal positions the error at the greater (line,column)
// wins outright (the "longest match" rule) since ties are the equal
// case already handled above.
func Merge(e1, e2 ParseError) ParseError {
	if e1.IsEmpty() {
		return e2
	}
	if e2.IsEmpty() {
		return e1
	}
	if e1.pos.Equal(e2.pos) {
		merged := make([]Message, 0, len(e1.messages)+len(e2.messages))
		merged = addMessages(merged, e1.messages)
		merged = addMessages(merged, e2.messages)
		return ParseError{pos: e1.pos, messages: merged}
	}
	if e2.pos.Less(e1.pos) {
		return e1
	}
	return e2
}

// Relabel removes every Expect message from err and, if text is
// non-empty, adds a single Expect(text) in its place; other categories
// are left untouched. This is what Label/Expecting apply to a parser's
// error when it completes without consuming input (spec §4.2/§4.4).
func Relabel(err ParseError, text string) ParseError {
	kept := make([]Message, 0, len(err.messages))
	for _, m := range err.messages {
		if m.Kind != Expect {
			kept = append(kept, m)
		}
	}
	if text != "" {
		kept = append(kept, NewMessage(Expect, text))
	}
	return ParseError{pos: err.pos, messages: kept}
}

// Render produces the deterministic textual form used by tests and
// users (spec §4.2): a position line, an "unexpected" line (if any
// Unexpect/SysUnexpect message is present; an empty SysUnexpect text
// renders as "end of input"), an "expecting" line joining sorted,
// deduplicated Expect texts with " or ", and one line per free-form
// Message.
func (e ParseError) Render() string {
	var sysUnexpect, unexpect *Message
	var expects []string
	var msgs []string

	seenExpect := map[string]bool{}
	seenMsg := map[string]bool{}

	for i := range e.messages {
		m := e.messages[i]
		switch m.Kind {
		case SysUnexpect:
			if sysUnexpect == nil {
				sysUnexpect = &m
			}
		case Unexpect:
			if unexpect == nil {
				unexpect = &m
			}
		case Expect:
			text := m.Text()
			if text != "" && !seenExpect[text] {
				seenExpect[text] = true
				expects = append(expects, text)
			}
		case Msg:
			text := m.Text()
			if text != "" && !seenMsg[text] {
				seenMsg[text] = true
				msgs = append(msgs, text)
			}
		}
	}
	sort.Strings(expects)

	var b strings.Builder
	b.WriteString("at ")
	b.WriteString(e.pos.String())
	b.WriteString(":\n")

	if unexpect != nil {
		b.WriteString("unexpected ")
		b.WriteString(unexpect.Text())
		b.WriteString("\n")
	} else if sysUnexpect != nil {
		text := sysUnexpect.Text()
		if text == "" {
			text = "end of input"
		}
		b.WriteString("unexpected ")
		b.WriteString(text)
		b.WriteString("\n")
	}

	if len(expects) > 0 {
		b.WriteString("expecting ")
		b.WriteString(strings.Join(expects, " or "))
		b.WriteString("\n")
	}

	for _, m := range msgs {
		b.WriteString(m)
		b.WriteString("\n")
	}

	return strings.TrimRight(b.String(), "\n")
}

func (e ParseError) Error() string { return e.Render() }
