package langdef

import (
	"strings"
	"testing"

	logtest "github.com/sirupsen/logrus/hooks/test"

	"github.com/ava12/combi/internal/test"
	"github.com/ava12/combi/lexer"
	"github.com/ava12/combi/rule"
	"github.com/ava12/combi/source"
	"github.com/ava12/combi/tree"
)

func compile(t *testing.T, text, root string) (rule.Rule, *rule.Namespace) {
	t.Helper()
	r, ns, e := Compile(source.NewString("grammar", text), root, quiet())
	test.ExpectNoError(t, e)
	return r, ns
}

func match(t *testing.T, r rule.Rule, text string) string {
	t.Helper()
	tokens, _ := lexer.Tokenize(source.NewString("input", text))
	nodes, e := rule.MatchAll(r, tokens)
	test.ExpectNoError(t, e)
	res := make([]string, len(nodes))
	for i, n := range nodes {
		res[i] = tree.String(n)
	}
	return strings.Join(res, " ")
}

func TestBootstrapCompiles(t *testing.T) {
	log, _ := logtest.NewNullLogger()
	ns := Bootstrap()
	test.ExpectNoError(t, ns.CompileAll(rule.WithLogger(log)))
	test.ExpectInt(t, 14, ns.Len())
	test.ExpectString(t, GrammarRule, ns.Names()[0])
}

func TestSelfHosting(t *testing.T) {
	defs := parse(t, MetaGrammar)
	ns, e := Build(defs)
	test.ExpectNoError(t, e)
	test.ExpectString(t, rule.FormatNamespace(Bootstrap()), rule.FormatNamespace(ns))

	log, _ := logtest.NewNullLogger()
	root, e := ns.Compile(GrammarRule, rule.WithLogger(log))
	test.ExpectNoError(t, e)

	expected := parseTree(t, MetaGrammar)
	test.ExpectString(t, expected, match(t, root, MetaGrammar))
}

func TestForwardReference(t *testing.T) {
	r, ns := compile(t, "baz ::= qux+; qux := 'q';", "baz")
	test.ExpectString(t, "baz", r.Name())
	test.ExpectString(t, "(baz q q q)", match(t, r, "q q q"))

	qux, _ := ns.Get("qux")
	_, isLiteral := qux.(*rule.Literal)
	test.Assert(t, isLiteral, "expecting literal rule, got %T", qux)
}

func TestMutualRecursion(t *testing.T) {
	r, ns := compile(t, "A ::= B; B ::= A;", "A")
	test.ExpectString(t, "A", r.Name())
	test.ExpectString(t, "A ::= B;\nB ::= A;\n", rule.FormatNamespace(ns))
}

func TestExpressionGrammar(t *testing.T) {
	text := `
Sum ::= Product ('+' Product)*;
Product ::= Value ('*' Value)*;
Value ::= Number | '(' Sum ')';
Number := r'[0-9]+';
`
	r, _ := compile(t, text, "")
	test.ExpectString(t, "Sum", r.Name())
	test.ExpectString(t,
		"(Sum (Product (Value 1)) + (Product (Value 2) * (Value ( (Sum (Product (Value 3)) + (Product (Value 4))) ))))",
		match(t, r, "1 + 2 * (3 + 4)"),
	)

	tokens, _ := lexer.Tokenize(source.NewString("", "1 + * 2"))
	_, e := rule.MatchAll(r, tokens)
	ee := test.ExpectErrorCode(t, rule.SyntaxError, e)
	test.ExpectInt(t, 5, ee.Col)
}

func TestDirectiveGrammar(t *testing.T) {
	text := `
Rule Throw[BadThing] ::= Name (Upper | Dot)*;
Token Ident
Name := r'[a-z]+';
Upper := r'[A-Z]+';
Token
Dot := '.';
`
	r, ns := compile(t, text, "Rule")
	test.ExpectString(t, "(Rule abc DEF . GH)", match(t, r, "abc DEF . GH"))
	test.ExpectString(t, "Rule ::= Name (Upper | Dot)*;", rule.FormatDefinition(r))

	dot, _ := ns.Get("Dot")
	test.ExpectString(t, "Dot := '.';", rule.FormatDefinition(dot))
}

func TestRepetitionRanges(t *testing.T) {
	r, _ := compile(t, "R ::= X{2} Y{1, 2} [Z]; X := 'x'; Y := 'y'; Z := 'z';", "R")
	test.ExpectString(t, "(R x x y)", match(t, r, "x x y"))
	test.ExpectString(t, "(R x x y y z)", match(t, r, "x x y y z"))

	tokens, _ := lexer.Tokenize(source.NewString("", "x y"))
	_, e := rule.MatchAll(r, tokens)
	test.ExpectErrorCode(t, rule.SyntaxError, e)
}

func TestCompileErrors(t *testing.T) {
	samples := []struct {
		text, root string
		code       int
	}{
		{"foo ::= bar;", "foo", rule.UnresolvedReferenceError},
		{"a ::= 'x'; b ::= c;", "", rule.UnresolvedReferenceError},
		{"x := r'[';", "", rule.BadRegexpError},
		{"a ::= 'x';", "b", rule.UnknownRootError},
		{"/* nothing */", "", EmptyGrammarError},
		{"a ::= ;", "", rule.SyntaxError},
	}

	for _, s := range samples {
		_, _, e := Compile(source.NewString("", s.text), s.root, quiet())
		test.ExpectErrorCode(t, s.code, e)
	}

	_, _, e := Compile(source.NewString("", "foo ::= bar;"), "foo", quiet())
	test.Assert(t, strings.Contains(e.Error(), "bar"), "expecting missing name in %q", e.Error())

	_, _, e = Compile(source.NewString("", "a ::= 'x'; b ::= c;"), "a", quiet())
	test.ExpectNoError(t, e)
}

func TestBuildDuplicate(t *testing.T) {
	defs := []*RuleDefinition{
		{Name: "a", Literal: &Literal{Value: "x"}},
		{Name: "a", Literal: &Literal{Value: "y"}},
	}
	_, e := Build(defs)
	test.ExpectErrorCode(t, rule.DuplicateRuleError, e)
}

func TestBuildTerminals(t *testing.T) {
	ns, e := Build(parse(t, "a := 'x'; b ::= 'y' 'zz' r'[0-9]';"))
	test.ExpectNoError(t, e)

	a, _ := ns.Get("a")
	_, isLiteral := a.(*rule.Literal)
	test.Assert(t, isLiteral, "expecting named literal, got %T", a)

	b, _ := ns.Get("b")
	items := b.(*rule.Alternation).Alternatives()[0].Rules()
	test.ExpectInt(t, 3, len(items))
	_, isChar := items[0].(*rule.Char)
	test.Assert(t, isChar, "expecting char, got %T", items[0])
	l, isLiteral := items[1].(*rule.Literal)
	test.Assert(t, isLiteral && !l.IsRegexp(), "expecting plain literal, got %T", items[1])
	l, isLiteral = items[2].(*rule.Literal)
	test.Assert(t, isLiteral && l.IsRegexp(), "expecting regexp, got %T", items[2])
}
