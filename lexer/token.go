package lexer

import (
	"github.com/ava12/combi/source"
)

// Kind is the lexical category of a token.
type Kind int

// Token kinds in the order lexer tries them.
const (
	StringToken Kind = iota + 1
	CodeToken
	OpToken
	NameToken
	NumberToken
)

var kindNames = map[Kind]string{
	StringToken: "string",
	CodeToken:   "code",
	OpToken:     "op",
	NameToken:   "name",
	NumberToken: "number",
}

func (k Kind) String() string {
	name, has := kindNames[k]
	if !has {
		return "-unknown-"
	}
	return name
}

// Token is a lexeme captured by Stream.
type Token struct {
	kind Kind
	text string
	pos  source.Pos
}

// NewToken creates new token. Tokens created by hand may use zero pos.
func NewToken(kind Kind, text string, pos source.Pos) *Token {
	return &Token{kind, text, pos}
}

func (t *Token) Kind() Kind {
	return t.kind
}

func (t *Token) Text() string {
	return t.text
}

func (t *Token) Pos() source.Pos {
	return t.pos
}

func (t *Token) SourceName() string {
	return t.pos.SourceName()
}

func (t *Token) Line() int {
	return t.pos.Line()
}

func (t *Token) Col() int {
	return t.pos.Col()
}

// Texts returns token texts.
func Texts(tokens []*Token) []string {
	res := make([]string, len(tokens))
	for i, t := range tokens {
		res[i] = t.text
	}
	return res
}
