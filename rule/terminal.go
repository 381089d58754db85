package rule

import (
	"regexp"

	"github.com/ava12/combi/tree"
)

// Literal matches a token by exact text or by regular expression anchored to the whole token text.
type Literal struct {
	name     string
	pattern  string
	isRegexp bool
	re       *regexp.Regexp
	reErr    error
}

// NewLiteral creates terminal matching tokens equal to text.
func NewLiteral(name, text string) *Literal {
	return &Literal{name: name, pattern: text}
}

// NewRegexp creates terminal matching tokens with regular expression.
// Incorrect pattern makes Compile fail with BadRegexpError, such terminal never matches.
func NewRegexp(name, pattern string) *Literal {
	re, e := regexp.Compile(`^(?s:` + pattern + `)$`)
	return &Literal{name: name, pattern: pattern, isRegexp: true, re: re, reErr: e}
}

func (l *Literal) Name() string {
	return l.name
}

func (l *Literal) Pattern() string {
	return l.pattern
}

func (l *Literal) IsRegexp() bool {
	return l.isRegexp
}

func (l *Literal) Match(in *Input, pos int) (int, []tree.Node, bool) {
	t := in.Token(pos)
	if t == nil {
		return pos, nil, false
	}

	var matched bool
	if l.isRegexp {
		matched = (l.re != nil && l.re.MatchString(t.Text()))
	} else {
		matched = (t.Text() == l.pattern)
	}
	if !matched {
		return pos, nil, false
	}

	in.consumed(pos + 1)
	return pos + 1, []tree.Node{tree.NewLeaf(l.name, t)}, true
}

func (l *Literal) compile(c *compiler) {
	if l.reErr != nil {
		c.fail(regexpError(l))
	}
}

// Char matches a token consisting of exactly one character.
type Char struct {
	name string
	char rune
}

func NewChar(name string, char rune) *Char {
	return &Char{name, char}
}

func (ch *Char) Name() string {
	return ch.name
}

func (ch *Char) Char() rune {
	return ch.char
}

func (ch *Char) Match(in *Input, pos int) (int, []tree.Node, bool) {
	t := in.Token(pos)
	if t == nil {
		return pos, nil, false
	}

	if t.Text() != string(ch.char) {
		return pos, nil, false
	}

	in.consumed(pos + 1)
	return pos + 1, []tree.Node{tree.NewLeaf(ch.name, t)}, true
}

func (ch *Char) compile(*compiler) {}
