package rule

import (
	"strings"

	"github.com/ava12/combi"
	"github.com/ava12/combi/lexer"
)

// Compile-time error codes:
const (
	// UnresolvedReferenceError indicates references to names absent in namespace.
	UnresolvedReferenceError = combi.CompileErrors + iota
	// BoundsError indicates sequence repetition range that is not 0 <= atLeast <= atMost.
	BoundsError
	// BadRegexpError indicates regular expression terminal that cannot be compiled.
	BadRegexpError
	// DuplicateRuleError indicates attempt to add a rule with a name already present in namespace.
	DuplicateRuleError
	// EmptyNameError indicates attempt to add an unnamed rule to namespace.
	EmptyNameError
	// UnknownRootError indicates root rule name absent in namespace.
	UnknownRootError
)

// Match error codes:
const (
	// SyntaxError indicates that root rule failed to match the whole input.
	SyntaxError = combi.SyntaxErrors + iota
)

func unresolvedError(names []string) *combi.Error {
	return combi.FormatError(UnresolvedReferenceError, "unresolved references: %s", strings.Join(names, ", "))
}

func boundsError(s *Sequence) *combi.Error {
	return combi.FormatError(BoundsError, "wrong repetition range {%d, %d} in %s", s.atLeast, s.atMost, describe(s))
}

func regexpError(l *Literal) *combi.Error {
	return combi.FormatError(BadRegexpError, "incorrect regexp %q in %s (%s)", l.pattern, describe(l), l.reErr.Error())
}

func duplicateError(name string) *combi.Error {
	return combi.FormatError(DuplicateRuleError, "rule %q already defined", name)
}

func emptyNameError() *combi.Error {
	return combi.FormatError(EmptyNameError, "cannot add unnamed rule to namespace")
}

func unknownRootError(name string) *combi.Error {
	return combi.FormatError(UnknownRootError, "unknown root rule %q", name)
}

func unexpectedTokenError(t *lexer.Token) *combi.Error {
	return combi.FormatErrorPos(t, SyntaxError, "unexpected %s token %q", t.Kind(), t.Text())
}

func unexpectedEoiError(last *lexer.Token) *combi.Error {
	if last == nil {
		return combi.FormatError(SyntaxError, "unexpected end of input")
	}
	return combi.FormatErrorPos(last, SyntaxError, "unexpected end of input after %q", last.Text())
}

func describe(r Rule) string {
	if r.Name() != "" {
		return "rule " + r.Name()
	}
	return "anonymous rule " + Format(r)
}
