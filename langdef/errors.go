package langdef

import (
	"github.com/ava12/combi"
	"github.com/ava12/combi/lexer"
	"github.com/ava12/combi/rule"
)

const (
	// EmptyGrammarError indicates grammar description with no definitions.
	EmptyGrammarError = rule.UnknownRootError + 1 + iota
)

func defRuleError(token *lexer.Token) *combi.Error {
	return combi.FormatErrorPos(token, rule.DuplicateRuleError, "rule %q already defined", token.Text())
}

func wrongRangeError(token *lexer.Token, atLeast, atMost int) *combi.Error {
	return combi.FormatErrorPos(token, rule.BoundsError, "wrong repetition range {%d, %d}", atLeast, atMost)
}

func wrongNumberError(token *lexer.Token) *combi.Error {
	return combi.FormatErrorPos(token, rule.BoundsError, "wrong repetition count %q", token.Text())
}

func emptyGrammarError(name string) *combi.Error {
	if name == "" {
		return combi.FormatError(EmptyGrammarError, "no rules defined")
	}
	return combi.FormatError(EmptyGrammarError, "no rules defined in %s", name)
}
