package token

import "fmt"

// Kind classifies a token produced by the lexer.
type Kind uint8

const (
	Invalid Kind = iota
	Text
	Arg
	Head
	Link
	Quote
	ListItem
	PreformatToggle
	EOF
)

var kindNames = [...]string{
	Invalid:         "Invalid",
	Text:            "Text",
	Arg:             "Arg",
	Head:            "Head",
	Link:            "Link",
	Quote:           "Quote",
	ListItem:        "ListItem",
	PreformatToggle: "PreformatToggle",
	EOF:             "EOF",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", k)
}

// Lexeme returns the canonical spelling of the line prefix that produces k,
// or "" for kinds without a fixed prefix. It is meant for diagnostics; the
// actual prefix length is recoverable from the token range (a Head token may
// cover more than one '#').
func (k Kind) Lexeme() string {
	switch k {
	case Head:
		return "#"
	case Link:
		return "=>"
	case Quote:
		return ">"
	case ListItem:
		return "* "
	case PreformatToggle:
		return "```"
	}
	return ""
}

// Token references the half-open byte range [Start, End) of the buffer it was
// scanned from. Tokens never copy source bytes; the buffer must outlive every
// token taken from it.
type Token struct {
	Kind       Kind
	Start, End int
}

func (t Token) Len() int {
	return t.End - t.Start
}

// Bytes returns the slice of src the token covers.
func (t Token) Bytes(src []byte) []byte {
	return src[t.Start:t.End]
}

// Dump renders the token for debugging: the kind name plus the quoted raw
// slice. Not part of the scanning contract.
func (t Token) Dump(src []byte) string {
	return fmt.Sprintf("%s %q", t.Kind, t.Bytes(src))
}

func (t Token) String() string {
	return fmt.Sprintf("%s[%d,%d)", t.Kind, t.Start, t.End)
}
