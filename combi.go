/*
Package combi is a small parser combinator toolkit with a self-hosting grammar description language.

Consists of subpackages:
  - cmd/combi: console utility tokenizing, parsing, checking grammar descriptions and matching inputs;
  - source: defines source file and position information used by lexer;
  - lexer: restartable token stream with skip-and-warn handling of unknown characters;
  - tree: syntax tree nodes produced by matching;
  - rule: rule combinators (terminals, sequences, alternations, references) and grammar compiler;
  - langdef: bootstrap grammar, grammar description parser and rule graph builder.

Typical usage is:

1. Describe grammar in EBNF-like language.

2. Compile it with langdef.Compile to get a rule graph.

3. Tokenize input with lexer and match it using rule.MatchAll against the root rule.
*/
package combi

import (
	"fmt"
)

// Error classes used by subpackages, each class contains up to 99 error codes:
const (
	LexicalErrors = 101 // used by lexer
	CompileErrors = 201 // used by rule and langdef
	SyntaxErrors  = 301 // used by rule and langdef
)

// Error is the error type used by combi subpackages.
type Error struct {
	// Code contains non-zero error code.
	Code int

	// Message contains non-empty error message including source name and position information if provided.
	Message string

	// SourceName contains source name that caused this error or empty string.
	SourceName string

	// Line contains line number in source file or 0.
	Line int

	// Col contains column number in source file or 0.
	Col int
}

// SourcePos is used to retrieve source name and position information when constructing an error;
// source.Pos and lexer.Token implement this interface.
type SourcePos interface {
	// SourceName returns source file name or empty string.
	SourceName() string
	// Line returns line number or 0.
	Line() int
	// Col returns column number or 0.
	Col() int
}

// NewError creates new Error structure.
// name, line, and col will be added to error message if provided (non-zero).
func NewError(code int, msg, name string, line, col int) *Error {
	if line != 0 && col != 0 {
		if name == "" {
			msg += fmt.Sprintf(" at line %d col %d", line, col)
		} else {
			msg += fmt.Sprintf(" in %s at line %d col %d", name, line, col)
		}
	}
	return &Error{code, msg, name, line, col}
}

// Error simply returns Error.Message.
func (e *Error) Error() string {
	return e.Message
}

// FormatError creates Error structure with no source and position information.
// params will be added to error message using fmt.Sprintf function.
func FormatError(code int, msg string, params ...any) *Error {
	if len(params) > 0 {
		msg = fmt.Sprintf(msg, params...)
	}
	return NewError(code, msg, "", 0, 0)
}

// FormatErrorPos creates Error structure with source and position information.
// pos must not be nil.
// params will be added to error message using fmt.Sprintf function.
func FormatErrorPos(pos SourcePos, code int, msg string, params ...any) *Error {
	if len(params) > 0 {
		msg = fmt.Sprintf(msg, params...)
	}
	return NewError(code, msg, pos.SourceName(), pos.Line(), pos.Col())
}
