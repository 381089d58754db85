package langdef

import (
	"github.com/ava12/combi/source"
)

// RuleDefinition is a single "Name := literal;" or "Name ::= expression;" statement.
// Exactly one of Literal and Expression is set.
type RuleDefinition struct {
	Name       string          `json:"name" yaml:"name"`
	Literal    *Literal        `json:"literal,omitempty" yaml:"literal,omitempty"`
	Expression *Expression     `json:"expression,omitempty" yaml:"expression,omitempty"`
	Throws     []string        `json:"throws,omitempty" yaml:"throws,omitempty"`
	Token      *TokenDirective `json:"token,omitempty" yaml:"token,omitempty"`
	Pos        source.Pos      `json:"-" yaml:"-"`
}

// TokenDirective marks definitions as lexical tokens. Name and Code are optional and mutually exclusive.
type TokenDirective struct {
	Name string `json:"name,omitempty" yaml:"name,omitempty"`
	Code string `json:"code,omitempty" yaml:"code,omitempty"`
}

// Literal is a quoted string with optional type letter, "r" type means regular expression.
type Literal struct {
	Type  string `json:"type,omitempty" yaml:"type,omitempty"`
	Value string `json:"value" yaml:"value"`
}

func (l *Literal) IsRegexp() bool {
	return l.Type == regexpLetter
}

// Expression is a list of alternatives.
type Expression struct {
	Alternatives []*Or `json:"alternatives" yaml:"alternatives"`
}

// Or is a sequence of atom expressions, one alternative of Expression.
type Or struct {
	Items []*AtomExpression `json:"items" yaml:"items"`
}

// AtomExpression is an atom followed by repetition trailers, applied left to right.
type AtomExpression struct {
	Atom     *Atom     `json:"atom" yaml:"atom"`
	Trailers []Trailer `json:"trailers,omitempty" yaml:"trailers,omitempty"`
}

type AtomKind string

const (
	LiteralAtom  AtomKind = "literal"
	NameAtom     AtomKind = "name"
	GroupAtom    AtomKind = "group"
	OptionalAtom AtomKind = "optional"
)

// Atom is a quoted literal, rule name, parenthesized group, or bracketed optional group.
type Atom struct {
	Kind       AtomKind    `json:"kind" yaml:"kind"`
	Literal    *Literal    `json:"literal,omitempty" yaml:"literal,omitempty"`
	Name       string      `json:"name,omitempty" yaml:"name,omitempty"`
	Expression *Expression `json:"expression,omitempty" yaml:"expression,omitempty"`
}

// Trailer is a repetition range, AtMost is rule.Unbounded for "*" and "+".
type Trailer struct {
	AtLeast int `json:"atLeast" yaml:"atLeast"`
	AtMost  int `json:"atMost" yaml:"atMost"`
}
