package lexer

// peek returns the byte n positions past the cursor, or 0 past the end of
// the buffer. NUL is rejected by validation anyway, so the sentinel never
// matches a prefix byte.
func (l *Lexer) peek(n int) byte {
	if l.cursor+n >= len(l.src) {
		return 0
	}
	return l.src[l.cursor+n]
}

// skipBlank consumes a run of spaces and tabs. Blanks in separator position
// are the one place a tab is accepted.
func (l *Lexer) skipBlank() {
	for l.cursor < len(l.src) {
		if b := l.src[l.cursor]; b != ' ' && b != '\t' {
			return
		}
		l.cursor++
	}
}

// check validates the byte sequence at the cursor and returns its length.
// On failure ok is false and the length is the span the Invalid token must
// cover: one byte for ASCII violations and malformed lead bytes, the full
// expected sequence length for bad continuations and disallowed code points,
// or the remaining tail of the buffer for a truncated sequence.
//
// Callers recognize '\n' and "\r\n" before validating, so a '\r' reaching
// this point is always a lone carriage return.
func (l *Lexer) check() (int, bool) {
	b := l.src[l.cursor]
	switch {
	case b < 0x20 || b == 0x7f:
		// control byte; this covers '\t' too, which is only accepted
		// where skipBlank consumes it as a separator
		return 1, false
	case b < 0x80:
		return 1, true
	}

	var n int
	switch {
	case b >= 0xc2 && b <= 0xdf:
		n = 2
	case b >= 0xe0 && b <= 0xef:
		n = 3
	case b >= 0xf0 && b <= 0xf4:
		n = 4
	default:
		// stray continuation byte or a lead that can never start a
		// well-formed sequence (0xc0, 0xc1, 0xf5..0xff)
		return 1, false
	}
	if l.cursor+n > len(l.src) {
		return len(l.src) - l.cursor, false
	}

	// the second byte has a narrowed range for some leads, ruling out
	// overlong encodings, surrogates and code points past U+10FFFF
	lo, hi := byte(0x80), byte(0xbf)
	switch b {
	case 0xe0:
		lo = 0xa0
	case 0xed:
		hi = 0x9f
	case 0xf0:
		lo = 0x90
	case 0xf4:
		hi = 0x8f
	}
	if c := l.src[l.cursor+1]; c < lo || c > hi {
		return n, false
	}
	for i := 2; i < n; i++ {
		if c := l.src[l.cursor+i]; c < 0x80 || c > 0xbf {
			return n, false
		}
	}

	// NEL, LINE SEPARATOR and PARAGRAPH SEPARATOR must not sneak in as
	// line breaks
	if b == 0xc2 && l.src[l.cursor+1] == 0x85 {
		return 2, false
	}
	if b == 0xe2 && l.src[l.cursor+1] == 0x80 {
		if c := l.src[l.cursor+2]; c == 0xa8 || c == 0xa9 {
			return 3, false
		}
	}
	return n, true
}
