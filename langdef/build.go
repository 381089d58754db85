package langdef

import (
	"unicode/utf8"

	"github.com/ava12/combi"
	"github.com/ava12/combi/rule"
	"github.com/ava12/combi/source"
)

// Build creates namespace with a rule for every definition:
// literal definitions become named terminals, syntax rules become named alternations.
// The namespace is not compiled.
func Build(defs []*RuleDefinition) (*rule.Namespace, error) {
	ns := rule.NewNamespace()
	for _, def := range defs {
		var r rule.Rule
		if def.Literal != nil {
			r = buildTerminal(def.Name, def.Literal)
		} else {
			r = rule.NewAlternation(def.Name, buildAlternatives(def.Expression)...)
		}

		if e := ns.Add(r); e != nil {
			if ce, is := e.(*combi.Error); is && def.Pos.Line() != 0 {
				e = combi.FormatErrorPos(def.Pos, ce.Code, "rule %q already defined", def.Name)
			}
			return nil, e
		}
	}
	return ns, nil
}

// Compile parses grammar description, builds and compiles the namespace.
// Returns rule named root, root == "" means the first defined rule; in that case
// every rule is compiled, otherwise only the rules reachable from root.
func Compile(src *source.Source, root string, opts ...Option) (rule.Rule, *rule.Namespace, error) {
	c := newConfig(opts)
	defs, e := Parse(src, opts...)
	if e != nil {
		return nil, nil, e
	}

	if len(defs) == 0 {
		return nil, nil, emptyGrammarError(src.Name())
	}

	ns, e := Build(defs)
	if e != nil {
		return nil, nil, e
	}

	if root != "" {
		r, e := ns.Compile(root, rule.WithLogger(c.log))
		return r, ns, e
	}

	r, _ := ns.Get(defs[0].Name)
	return r, ns, ns.CompileAll(rule.WithLogger(c.log))
}

func buildTerminal(name string, l *Literal) rule.Rule {
	if l.IsRegexp() {
		return rule.NewRegexp(name, l.Value)
	}

	if name == "" && utf8.RuneCountInString(l.Value) == 1 {
		r, _ := utf8.DecodeRuneInString(l.Value)
		return rule.NewChar(name, r)
	}

	return rule.NewLiteral(name, l.Value)
}

func buildAlternatives(expr *Expression) []*rule.Sequence {
	res := make([]*rule.Sequence, len(expr.Alternatives))
	for i, or := range expr.Alternatives {
		items := make([]rule.Rule, len(or.Items))
		for j, item := range or.Items {
			items[j] = buildAtomExpression(item)
		}
		res[i] = rule.Seq(items...)
	}
	return res
}

func buildAtomExpression(ae *AtomExpression) rule.Rule {
	r := buildAtom(ae.Atom)
	for _, tr := range ae.Trailers {
		r = rule.Seq(r).Repeat(tr.AtLeast, tr.AtMost)
	}
	return r
}

func buildAtom(a *Atom) rule.Rule {
	switch a.Kind {
	case LiteralAtom:
		return buildTerminal("", a.Literal)
	case NameAtom:
		return rule.Ref(a.Name)
	case OptionalAtom:
		return rule.Optional(buildGroup(a.Expression))
	default:
		return buildGroup(a.Expression)
	}
}

func buildGroup(expr *Expression) rule.Rule {
	alts := buildAlternatives(expr)
	if len(alts) == 1 {
		return alts[0]
	}
	return rule.NewAlternation("", alts...)
}
