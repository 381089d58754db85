/*
Package rule defines parser combinators and the grammar compiler.

A grammar is a graph of rules: terminals (Literal, Char) match single tokens,
Sequence concatenates and repeats its children, Alternation is an ordered committed choice
producing a named tree.Branch, and Reference is a named placeholder that makes
recursive and forward definitions possible.

References must be resolved with Compile before matching. After compilation the graph is
never modified, so it may be used for matching by several goroutines at once,
each with its own Input. Compilation itself must not run concurrently on the same graph.
*/
package rule

import (
	"github.com/ava12/combi/lexer"
	"github.com/ava12/combi/tree"
)

// Rule is implemented by Literal, Char, Sequence, Alternation, and Reference only.
type Rule interface {
	// Name returns rule name or empty string for anonymous rules.
	// Alternation name becomes the type name of created branches.
	Name() string

	// Match tries to match tokens starting at pos.
	// Returns position after the matched tokens and created nodes on success,
	// returns pos, nil, and false on failure.
	Match(in *Input, pos int) (next int, nodes []tree.Node, ok bool)

	compile(c *compiler)
}

// Input is a token sequence being matched. Input tracks the furthest position reached by
// terminal matches and is not safe for concurrent use.
type Input struct {
	tokens   []*lexer.Token
	furthest int
}

func NewInput(tokens []*lexer.Token) *Input {
	return &Input{tokens: tokens}
}

// Len returns number of tokens.
func (in *Input) Len() int {
	return len(in.tokens)
}

// Token returns token at pos or nil if pos is out of range.
func (in *Input) Token(pos int) *lexer.Token {
	if pos < 0 || pos >= len(in.tokens) {
		return nil
	}
	return in.tokens[pos]
}

// Furthest returns position of the first token no terminal has consumed yet.
func (in *Input) Furthest() int {
	return in.furthest
}

func (in *Input) consumed(pos int) {
	if pos > in.furthest {
		in.furthest = pos
	}
}

// Error returns SyntaxError pointing at the furthest token reached or at the end of input.
func (in *Input) Error() error {
	t := in.Token(in.furthest)
	if t != nil {
		return unexpectedTokenError(t)
	}
	return unexpectedEoiError(in.Token(len(in.tokens) - 1))
}

// MatchAll matches root against the whole token sequence.
// Returns SyntaxError if root fails or does not consume all tokens.
func MatchAll(root Rule, tokens []*lexer.Token) ([]tree.Node, error) {
	in := NewInput(tokens)
	next, nodes, ok := root.Match(in, 0)
	if !ok || next < in.Len() {
		if ok {
			in.consumed(next)
		}
		return nil, in.Error()
	}
	return nodes, nil
}
