// Package langdef parses grammar descriptions and builds rule graphs from them.
//
// Grammar description language is defined by Bootstrap and described by MetaGrammar.
// Rule definitions are either literal tokens, e.g.
//
//	Semicolon := ';';
//	Ident := r'[a-z]+';
//
// or syntax rules, e.g.
//
//	Block Throw[SyntaxError] ::= '{' Statement* '}' | Ident [';'];
//
// Atoms may be followed by repetition trailers: "*", "+", "{n}", "{n, m}".
// A statement may start with Token directive (optionally followed by a name or {{ code }} block)
// marking all its definitions as lexical tokens. Comments are /* ... */.
package langdef

import (
	"io"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/ava12/combi/lexer"
	"github.com/ava12/combi/rule"
	"github.com/ava12/combi/source"
	"github.com/ava12/combi/tree"
)

var metaRoot rule.Rule

func init() {
	log := logrus.New()
	log.SetOutput(io.Discard)
	root, e := Bootstrap().Compile(GrammarRule, rule.WithLogger(log))
	if e != nil {
		panic(e)
	}

	metaRoot = root
}

// Option configures parsing and compilation.
type Option func(*config)

type config struct {
	log logrus.FieldLogger
}

// WithLogger sets logger for lexical diagnostics and compile messages, default is logrus standard logger.
func WithLogger(log logrus.FieldLogger) Option {
	return func(c *config) {
		c.log = log
	}
}

func newConfig(opts []Option) *config {
	c := &config{log: logrus.StandardLogger()}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// ParseTree matches grammar description against bootstrap grammar and returns syntax tree
// with GrammarRule branch at the root.
// Unknown characters are logged and skipped. Returns rule.SyntaxError if description is malformed.
func ParseTree(src *source.Source, opts ...Option) (tree.Node, error) {
	c := newConfig(opts)
	tokens, _ := lexer.Tokenize(src, lexer.WithLogger(c.log))
	nodes, e := rule.MatchAll(metaRoot, tokens)
	if e != nil {
		return nil, e
	}

	return nodes[0], nil
}

// Parse parses grammar description and returns rule definitions in source order.
func Parse(src *source.Source, opts ...Option) ([]*RuleDefinition, error) {
	root, e := ParseTree(src, opts...)
	if e != nil {
		return nil, e
	}

	return convertGrammar(root)
}

// ParseString parses grammar description, see Parse.
func ParseString(name, content string, opts ...Option) ([]*RuleDefinition, error) {
	return Parse(source.NewString(name, content), opts...)
}

func convertGrammar(root tree.Node) ([]*RuleDefinition, error) {
	defs := make([]*RuleDefinition, 0)
	defined := make(map[string]bool)
	for _, st := range tree.Find(root, StatementRule) {
		var directive *TokenDirective
		for _, n := range st.Children() {
			if !n.IsBranch() {
				directive = &TokenDirective{}
				continue
			}

			if n.TypeName() == TokenDirectiveRule {
				directive = convertDirective(n)
				continue
			}

			def, e := convertDefinition(n)
			if e != nil {
				return nil, e
			}

			if defined[def.Name] {
				return nil, defRuleError(n.Children()[0].Token())
			}

			defined[def.Name] = true
			def.Token = directive
			defs = append(defs, def)
		}
	}
	return defs, nil
}

func convertDirective(n tree.Node) *TokenDirective {
	arg := tree.NthChild(n, 1)
	text := arg.Token().Text()
	if arg.TypeName() == CodeBlockTerm {
		return &TokenDirective{Code: strings.TrimSpace(text[2 : len(text)-2])}
	}
	return &TokenDirective{Name: text}
}

func convertDefinition(n tree.Node) (*RuleDefinition, error) {
	cs := n.Children()
	name := cs[0].Token()
	def := &RuleDefinition{Name: name.Text(), Pos: name.Pos()}

	if cs[1].Token() != nil && cs[1].Token().Text() == literalOp {
		def.Literal = unquote(cs[2].Token().Text())
		return def, nil
	}

	var e error
	for _, c := range cs[1:] {
		switch c.TypeName() {
		case ThrowDeclarationRule:
			def.Throws = leafTexts(c, NameTerm)
		case ExpressionRule:
			def.Expression, e = convertExpression(c)
		}
	}
	return def, e
}

func leafTexts(n tree.Node, kind string) []string {
	res := make([]string, 0)
	for _, c := range n.Children() {
		if !c.IsBranch() && c.TypeName() == kind {
			res = append(res, c.Token().Text())
		}
	}
	return res
}

func convertExpression(n tree.Node) (*Expression, error) {
	expr := &Expression{}
	for _, on := range tree.Find(n, OrRule) {
		or := &Or{}
		for _, an := range tree.Find(on, AtomExpressionRule) {
			item, e := convertAtomExpression(an)
			if e != nil {
				return nil, e
			}

			or.Items = append(or.Items, item)
		}
		expr.Alternatives = append(expr.Alternatives, or)
	}
	return expr, nil
}

func convertAtomExpression(n tree.Node) (*AtomExpression, error) {
	atom, e := convertAtom(tree.NthChild(n, 0))
	if e != nil {
		return nil, e
	}

	res := &AtomExpression{Atom: atom}
	for _, tn := range tree.Find(n, RepetitionTrailerRule) {
		tr, e := convertTrailer(tn)
		if e != nil {
			return nil, e
		}

		res.Trailers = append(res.Trailers, tr)
	}
	return res, nil
}

func convertAtom(n tree.Node) (*Atom, error) {
	first := tree.NthChild(n, 0)
	switch first.TypeName() {
	case QuotedStringTerm:
		return &Atom{Kind: LiteralAtom, Literal: unquote(first.Token().Text())}, nil
	case NameTerm:
		return &Atom{Kind: NameAtom, Name: first.Token().Text()}, nil
	}

	expr, e := convertExpression(tree.NthChild(n, 1))
	if e != nil {
		return nil, e
	}

	kind := GroupAtom
	if first.Token().Text() == lSquareOp {
		kind = OptionalAtom
	}
	return &Atom{Kind: kind, Expression: expr}, nil
}

func convertTrailer(n tree.Node) (Trailer, error) {
	first := tree.NthChild(n, 0).Token()
	switch first.Text() {
	case starOp:
		return Trailer{0, rule.Unbounded}, nil
	case plusOp:
		return Trailer{1, rule.Unbounded}, nil
	}

	counts := make([]int, 0, 2)
	for _, c := range n.Children() {
		if c.TypeName() != NumberTerm {
			continue
		}

		count, e := strconv.Atoi(c.Token().Text())
		if e != nil {
			return Trailer{}, wrongNumberError(c.Token())
		}

		counts = append(counts, count)
	}

	if len(counts) == 1 {
		return Trailer{counts[0], counts[0]}, nil
	}
	if counts[1] < counts[0] {
		return Trailer{}, wrongRangeError(first, counts[0], counts[1])
	}
	return Trailer{counts[0], counts[1]}, nil
}

var escapes = map[byte]byte{
	'\\': '\\',
	'\'': '\'',
	'"':  '"',
	'n':  '\n',
	'r':  '\r',
	't':  '\t',
}

// unquote splits quoted string token into type letter and value.
// Regexp strings are taken verbatim except for escaped delimiters,
// other strings have known escape sequences replaced and unknown ones kept as is.
func unquote(text string) *Literal {
	typ := ""
	if text[0] != '\'' && text[0] != '"' {
		typ = text[:1]
		text = text[1:]
	}
	delim := text[:1]
	body := text[1 : len(text)-1]

	if typ == regexpLetter {
		return &Literal{typ, strings.ReplaceAll(body, `\`+delim, delim)}
	}

	var b strings.Builder
	for i := 0; i < len(body); i++ {
		if body[i] == '\\' && i+1 < len(body) {
			if sub, has := escapes[body[i+1]]; has {
				b.WriteByte(sub)
				i++
				continue
			}
		}
		b.WriteByte(body[i])
	}
	return &Literal{typ, b.String()}
}
