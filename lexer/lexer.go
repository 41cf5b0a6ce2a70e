// Package lexer turns a gemtext buffer into a flat stream of tokens.
//
// Lines are classified by a prefix recognized only at the start of a line
// (`#`, `=>`, `>`, `* `, "```"); the rest of a prefixed line is split into
// Arg tokens. Every token is a byte range into the caller's buffer, so the
// buffer must stay alive and unmodified while tokens are in use.
package lexer

import (
	"gemtext/token"
)

type state uint8

const (
	stLine     state = iota // at the start of a line
	stArgs                  // after a prefix; whitespace-separated arguments
	stQuoteArg              // after '>'; the rest of the line is one argument
	stEnd
)

// Lexer is a single-pass scanner over an immutable buffer. It is not
// seekable; replaying a document means calling New again. Independent
// lexers are safe to run in parallel, a single lexer is not.
type Lexer struct {
	src    []byte
	cursor int
	state  state
	pre    bool // inside a preformatted block
}

// New returns a lexer positioned at the start of src, skipping a UTF-8
// byte-order mark if one leads the buffer. No other bytes are consumed.
func New(src []byte) *Lexer {
	l := &Lexer{src: src}
	if len(src) >= 3 && src[0] == 0xef && src[1] == 0xbb && src[2] == 0xbf {
		l.cursor = 3
	}
	return l
}

// Next consumes and returns exactly one token. Malformed bytes come back as
// Invalid tokens covering the offending span; scanning continues after them.
// Once EOF has been returned, every further call returns EOF again with a
// zero-width range at the end of the buffer.
func (l *Lexer) Next() token.Token {
	switch l.state {
	case stLine:
		if l.pre {
			return l.preLine()
		}
		return l.line()
	case stArgs:
		return l.args()
	case stQuoteArg:
		return l.quoteArg()
	case stEnd:
		return l.eof()
	}
	panic("internal error: lexer in unknown state")
}

func (l *Lexer) eof() token.Token {
	l.state = stEnd
	return token.Token{Kind: token.EOF, Start: len(l.src), End: len(l.src)}
}

// line dispatches on the first byte of a normal-mode line. Prefixes that
// need more than one byte are resolved with peeks; a failed match leaves the
// cursor untouched and the whole line degrades to Text.
func (l *Lexer) line() token.Token {
	if l.cursor >= len(l.src) {
		return l.eof()
	}
	start := l.cursor
	switch l.src[l.cursor] {
	case '#':
		for l.cursor < len(l.src) && l.src[l.cursor] == '#' {
			l.cursor++
		}
		l.state = stArgs
		return token.Token{Kind: token.Head, Start: start, End: l.cursor}
	case '=':
		if l.peek(1) == '>' {
			l.cursor += 2
			l.state = stArgs
			return token.Token{Kind: token.Link, Start: start, End: l.cursor}
		}
	case '>':
		l.cursor++
		l.state = stQuoteArg
		return token.Token{Kind: token.Quote, Start: start, End: l.cursor}
	case '*':
		if l.peek(1) == ' ' {
			l.cursor += 2
			l.state = stArgs
			return token.Token{Kind: token.ListItem, Start: start, End: l.cursor}
		}
	case '`':
		if l.peek(1) == '`' && l.peek(2) == '`' {
			return l.toggle()
		}
	}
	return l.text()
}

// preLine handles a line inside a preformatted block: only the closing
// triple backtick is recognized, everything else is one Text token.
func (l *Lexer) preLine() token.Token {
	if l.cursor >= len(l.src) {
		return l.eof()
	}
	if l.src[l.cursor] == '`' && l.peek(1) == '`' && l.peek(2) == '`' {
		return l.toggle()
	}
	return l.text()
}

func (l *Lexer) toggle() token.Token {
	start := l.cursor
	l.cursor += 3
	l.pre = !l.pre
	l.state = stArgs
	return token.Token{Kind: token.PreformatToggle, Start: start, End: l.cursor}
}

// text consumes the rest of the line as a single Text token. The line break
// is consumed but excluded from the range. A malformed byte ends the token
// early; the following call reports the Invalid span.
func (l *Lexer) text() token.Token {
	start := l.cursor
	for l.cursor < len(l.src) {
		switch b := l.src[l.cursor]; {
		case b == '\n':
			t := token.Token{Kind: token.Text, Start: start, End: l.cursor}
			l.cursor++
			return t
		case b == '\r' && l.peek(1) == '\n':
			t := token.Token{Kind: token.Text, Start: start, End: l.cursor}
			l.cursor += 2
			return t
		}
		n, ok := l.check()
		if !ok {
			if l.cursor == start {
				return l.invalid(n)
			}
			return token.Token{Kind: token.Text, Start: start, End: l.cursor}
		}
		l.cursor += n
	}
	l.state = stEnd
	return token.Token{Kind: token.Text, Start: start, End: l.cursor}
}

// args scans whitespace-separated arguments after a prefix. Runs of space
// and tab between arguments are consumed without producing a token; the
// terminating line break hands control back to line scanning.
func (l *Lexer) args() token.Token {
	l.skipBlank()
	if l.cursor >= len(l.src) {
		return l.eof()
	}
	switch {
	case l.src[l.cursor] == '\n':
		l.cursor++
		l.state = stLine
		return l.Next()
	case l.src[l.cursor] == '\r' && l.peek(1) == '\n':
		l.cursor += 2
		l.state = stLine
		return l.Next()
	}
	start := l.cursor
	for l.cursor < len(l.src) {
		switch b := l.src[l.cursor]; {
		case b == ' ' || b == '\t':
			return token.Token{Kind: token.Arg, Start: start, End: l.cursor}
		case b == '\n':
			t := token.Token{Kind: token.Arg, Start: start, End: l.cursor}
			l.cursor++
			l.state = stLine
			return t
		case b == '\r' && l.peek(1) == '\n':
			t := token.Token{Kind: token.Arg, Start: start, End: l.cursor}
			l.cursor += 2
			l.state = stLine
			return t
		}
		n, ok := l.check()
		if !ok {
			if l.cursor == start {
				return l.invalid(n)
			}
			return token.Token{Kind: token.Arg, Start: start, End: l.cursor}
		}
		l.cursor += n
	}
	l.state = stEnd
	return token.Token{Kind: token.Arg, Start: start, End: l.cursor}
}

// quoteArg scans the argument of a '>' line: leading blanks are skipped,
// then everything up to the line break is one Arg token, interior spaces
// included.
func (l *Lexer) quoteArg() token.Token {
	l.skipBlank()
	if l.cursor >= len(l.src) {
		return l.eof()
	}
	switch {
	case l.src[l.cursor] == '\n':
		l.cursor++
		l.state = stLine
		return l.Next()
	case l.src[l.cursor] == '\r' && l.peek(1) == '\n':
		l.cursor += 2
		l.state = stLine
		return l.Next()
	}
	start := l.cursor
	for l.cursor < len(l.src) {
		switch b := l.src[l.cursor]; {
		case b == ' ':
			l.cursor++
			continue
		case b == '\n':
			t := token.Token{Kind: token.Arg, Start: start, End: l.cursor}
			l.cursor++
			l.state = stLine
			return t
		case b == '\r' && l.peek(1) == '\n':
			t := token.Token{Kind: token.Arg, Start: start, End: l.cursor}
			l.cursor += 2
			l.state = stLine
			return t
		}
		n, ok := l.check()
		if !ok {
			if l.cursor == start {
				return l.invalid(n)
			}
			return token.Token{Kind: token.Arg, Start: start, End: l.cursor}
		}
		l.cursor += n
	}
	l.state = stEnd
	return token.Token{Kind: token.Arg, Start: start, End: l.cursor}
}

// invalid emits an Invalid token over the n malformed bytes at the cursor
// and resumes scanning after them as if at a fresh line start.
func (l *Lexer) invalid(n int) token.Token {
	t := token.Token{Kind: token.Invalid, Start: l.cursor, End: l.cursor + n}
	l.cursor += n
	l.state = stLine
	return t
}
