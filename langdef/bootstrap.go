package langdef

import (
	"github.com/ava12/combi/rule"
)

// Names of bootstrap grammar rules, these are also the type names of syntax tree branches.
const (
	GrammarRule              = "Grammar"
	StatementRule            = "Statement"
	TokenDirectiveRule       = "TokenDirective"
	RuleEqualsDefinitionRule = "RuleEqualsDefinition"
	ThrowDeclarationRule     = "ThrowDeclaration"
	ExpressionRule           = "Expression"
	OrRule                   = "Or"
	AtomExpressionRule       = "AtomExpression"
	AtomRule                 = "Atom"
	RepetitionTrailerRule    = "RepetitionTrailer"

	NameTerm         = "Name"
	QuotedStringTerm = "QuotedString"
	CodeBlockTerm    = "CodeBlock"
	NumberTerm       = "Number"
)

// Keywords and operators of grammar description language.
const (
	tokenKeyword  = "Token"
	throwKeyword  = "Throw"
	literalOp     = ":="
	syntaxOp      = "::="
	pipeOp        = "|"
	semicolonOp   = ";"
	lBraceOp      = "("
	rBraceOp      = ")"
	lSquareOp     = "["
	rSquareOp     = "]"
	lCurlyOp      = "{"
	rCurlyOp      = "}"
	starOp        = "*"
	plusOp        = "+"
	regexpLetter  = "r"
	namePattern   = `[\p{L}_][\p{L}\p{Nd}_.]*`
	stringPattern = `[A-Za-z]?(?:'(?:[^'\\]|\\.)*'|"(?:[^"\\]|\\.)*")`
	codePattern   = `\{\{.*\}\}`
	numberPattern = `[0-9]+`
)

// Bootstrap returns new uncompiled namespace containing grammar description language rules.
// GrammarRule is the root rule, it matches a sequence of statements.
func Bootstrap() *rule.Namespace {
	lit := func(text string) rule.Rule {
		return rule.NewLiteral("", text)
	}
	alt := rule.NewAlternation
	seq := rule.Seq
	ref := rule.Ref

	ns := rule.NewNamespace()
	e := ns.Add(
		alt(GrammarRule,
			seq(rule.ZeroOrMore(ref(StatementRule))),
		),
		alt(StatementRule,
			seq(ref(TokenDirectiveRule), rule.OneOrMore(ref(RuleEqualsDefinitionRule))),
			seq(lit(tokenKeyword), rule.OneOrMore(ref(RuleEqualsDefinitionRule))),
			seq(rule.OneOrMore(ref(RuleEqualsDefinitionRule))),
		),
		alt(TokenDirectiveRule,
			seq(lit(tokenKeyword), ref(NameTerm)),
			seq(lit(tokenKeyword), ref(CodeBlockTerm)),
		),
		alt(RuleEqualsDefinitionRule,
			seq(ref(NameTerm), lit(literalOp), ref(QuotedStringTerm), lit(semicolonOp)),
			seq(ref(NameTerm), rule.Optional(ref(ThrowDeclarationRule)), lit(syntaxOp), ref(ExpressionRule), lit(semicolonOp)),
		),
		alt(ThrowDeclarationRule,
			seq(lit(throwKeyword), lit(lSquareOp), rule.OneOrMore(ref(NameTerm)), lit(rSquareOp)),
		),
		alt(ExpressionRule,
			seq(ref(OrRule), rule.ZeroOrMore(lit(pipeOp), ref(OrRule))),
		),
		alt(OrRule,
			seq(rule.OneOrMore(ref(AtomExpressionRule))),
		),
		alt(AtomExpressionRule,
			seq(ref(AtomRule), rule.ZeroOrMore(ref(RepetitionTrailerRule))),
		),
		alt(AtomRule,
			seq(ref(QuotedStringTerm)),
			seq(ref(NameTerm)),
			seq(lit(lBraceOp), ref(ExpressionRule), lit(rBraceOp)),
			seq(lit(lSquareOp), ref(ExpressionRule), lit(rSquareOp)),
		),
		alt(RepetitionTrailerRule,
			seq(lit(starOp)),
			seq(lit(plusOp)),
			seq(lit(lCurlyOp), ref(NumberTerm), rule.Optional(ref(NumberTerm)), lit(rCurlyOp)),
		),
		rule.NewRegexp(NameTerm, namePattern),
		rule.NewRegexp(QuotedStringTerm, stringPattern),
		rule.NewRegexp(CodeBlockTerm, codePattern),
		rule.NewRegexp(NumberTerm, numberPattern),
	)
	if e != nil {
		panic(e)
	}

	return ns
}
