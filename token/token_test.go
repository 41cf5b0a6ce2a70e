package token

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindString(t *testing.T) {
	assert.Equal(t, "Head", Head.String())
	assert.Equal(t, "PreformatToggle", PreformatToggle.String())
	assert.Equal(t, "EOF", EOF.String())
	assert.Equal(t, "Kind(42)", Kind(42).String())
}

func TestLexeme(t *testing.T) {
	want := map[Kind]string{
		Invalid:         "",
		Text:            "",
		Arg:             "",
		Head:            "#",
		Link:            "=>",
		Quote:           ">",
		ListItem:        "* ",
		PreformatToggle: "```",
		EOF:             "",
	}
	for k, lexeme := range want {
		assert.Equal(t, lexeme, k.Lexeme(), k)
	}
}

func TestToken(t *testing.T) {
	src := []byte("=> gemini://example.org")
	tok := Token{Kind: Link, Start: 0, End: 2}

	assert.Equal(t, 2, tok.Len())
	assert.Equal(t, "=>", string(tok.Bytes(src)))
	assert.Equal(t, `Link "=>"`, tok.Dump(src))
	assert.Equal(t, "Link[0,2)", tok.String())

	end := Token{Kind: EOF, Start: len(src), End: len(src)}
	assert.Equal(t, 0, end.Len())
	assert.Empty(t, end.Bytes(src))
}
