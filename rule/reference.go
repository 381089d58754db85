package rule

import (
	"github.com/ava12/combi/tree"
)

// Reference is a placeholder for a rule defined in namespace, resolved by Compile.
type Reference struct {
	target string
	rule   Rule
}

func NewReference(target string) *Reference {
	return &Reference{target: target}
}

// Ref is a shorthand for NewReference.
func Ref(target string) *Reference {
	return NewReference(target)
}

// Name returns target rule name.
func (r *Reference) Name() string {
	return r.target
}

// Resolved returns target rule or nil if reference is not compiled yet.
func (r *Reference) Resolved() Rule {
	return r.rule
}

// Match delegates to target rule. Matching uncompiled reference is a programming error and panics.
func (r *Reference) Match(in *Input, pos int) (int, []tree.Node, bool) {
	if r.rule == nil {
		panic(unresolvedError([]string{r.target}))
	}

	return r.rule.Match(in, pos)
}

func (r *Reference) compile(c *compiler) {
	if r.rule == nil {
		target, has := c.ns.Get(r.target)
		if !has {
			c.addMissing(r.target)
			return
		}

		r.rule = target
		c.log.WithField("rule", r.target).Debug("reference resolved")
	}

	c.visit(r.rule)
}
