// Package lexer splits grammar description into tokens.
package lexer

import (
	"bytes"
	"fmt"
	"iter"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/sirupsen/logrus"

	"github.com/ava12/combi"
	"github.com/ava12/combi/source"
)

// Error codes used by lexer:
const (
	// WrongCharError indicates that lexer cannot fetch any token at current position.
	// The character is skipped and reported as a diagnostic, it never stops tokenizing.
	WrongCharError = combi.LexicalErrors + iota
)

// Separators are the characters trimmed between tokens.
const Separators = " \t\r\n,"

// Operators is the punctuation catalogue, longer operators go first.
var Operators = []string{"::=", ":=", "|", "{", "}", ";", "[", "]", "(", ")", "+", "*", "."}

var (
	commentRe = regexp.MustCompile(`(?s)/\*.*?\*/`)
	tokenRe   *regexp.Regexp
	kinds     = []Kind{StringToken, CodeToken, OpToken, NameToken, NumberToken}
)

func init() {
	ops := make([]string, len(Operators))
	for i, op := range Operators {
		ops[i] = regexp.QuoteMeta(op)
	}

	tokenRe = regexp.MustCompile(`^(?s:` +
		`([A-Za-z]?(?:'(?:[^'\\]|\\.)*'|"(?:[^"\\]|\\.)*"))|` +
		`(\{\{.*\}\})|` +
		`(` + strings.Join(ops, "|") + `)|` +
		`([\p{L}_][\p{L}\p{Nd}_.]*)|` +
		`([0-9]+))`)
}

// StripComments removes every /* ... */ span from text.
func StripComments(text string) string {
	return commentRe.ReplaceAllString(text, "")
}

// Option configures Stream.
type Option func(*Stream)

// WithLogger sets logger used to report skipped characters, default is logrus standard logger.
func WithLogger(log logrus.FieldLogger) Option {
	return func(s *Stream) {
		s.log = log
	}
}

// Stream is a lazy token sequence over a single source.
// Comments are stripped from the remaining input before every token, "fo/* x */o" is name "foo".
// Stream is not safe for concurrent use.
type Stream struct {
	src   *source.Source
	log   logrus.FieldLogger
	diags []*combi.Error

	// text is the remaining input, offs holds source offset of every text byte
	// once a comment has been stripped, before that the offset of text[i] is base + i.
	text  []byte
	offs  []int
	base  int
	clean bool
}

// New creates new Stream positioned at the beginning of src.
func New(src *source.Source, opts ...Option) *Stream {
	s := &Stream{src: src, log: logrus.StandardLogger()}
	for _, opt := range opts {
		opt(s)
	}
	s.Reset()
	return s
}

// Source returns the source being tokenized.
func (s *Stream) Source() *source.Source {
	return s.src
}

// Reset rewinds stream to the beginning of source and drops collected diagnostics.
func (s *Stream) Reset() {
	s.text = s.src.Content()
	s.offs = nil
	s.base = 0
	s.clean = false
	s.diags = nil
}

// Diagnostics returns WrongCharError errors for characters skipped so far.
func (s *Stream) Diagnostics() []*combi.Error {
	return s.diags
}

// Next returns next token and true or nil and false at the end of source.
// Characters that do not start any token are reported and skipped one at a time.
func (s *Stream) Next() (*Token, bool) {
	for {
		s.stripComments()
		s.trim()
		if len(s.text) == 0 {
			return nil, false
		}

		match := tokenRe.FindSubmatchIndex(s.text)
		if match == nil {
			s.skipChar()
			continue
		}

		for i := 2; i < len(match); i += 2 {
			if match[i] < 0 {
				continue
			}

			t := NewToken(kinds[(i>>1)-1], string(s.text[match[i]:match[i+1]]), source.NewPos(s.src, s.offset(0)))
			s.advance(match[1])
			return t, true
		}
	}
}

// All returns an iterator over all tokens. Every iteration restarts the stream from the beginning.
func (s *Stream) All() iter.Seq[*Token] {
	return func(yield func(*Token) bool) {
		s.Reset()
		for {
			t, ok := s.Next()
			if !ok || !yield(t) {
				return
			}
		}
	}
}

func (s *Stream) offset(i int) int {
	if s.offs == nil {
		return s.base + i
	}
	return s.offs[i]
}

func (s *Stream) advance(n int) {
	s.text = s.text[n:]
	if s.offs == nil {
		s.base += n
	} else {
		s.offs = s.offs[n:]
	}
}

// stripComments removes comments from remaining input.
// A removed comment may join "/" and "*" into a new one, so passes repeat until one finds nothing.
func (s *Stream) stripComments() {
	if s.clean {
		return
	}

	locs := commentRe.FindAllIndex(s.text, -1)
	if locs == nil {
		s.clean = true
		return
	}

	text := make([]byte, 0, len(s.text))
	offs := make([]int, 0, len(s.text))
	prev := 0
	for _, loc := range append(locs, []int{len(s.text), len(s.text)}) {
		text = append(text, s.text[prev:loc[0]]...)
		for i := prev; i < loc[0]; i++ {
			offs = append(offs, s.offset(i))
		}
		prev = loc[1]
	}
	s.text, s.offs = text, offs
}

// trim removes separators from both ends of remaining input.
func (s *Stream) trim() {
	s.advance(len(s.text) - len(bytes.TrimLeft(s.text, Separators)))
	s.text = bytes.TrimRight(s.text, Separators)
	if s.offs != nil {
		s.offs = s.offs[:len(s.text)]
	}
}

func (s *Stream) skipChar() {
	r, size := utf8.DecodeRune(s.text)
	line, col := s.src.LineCol(s.offset(0))
	e := combi.NewError(WrongCharError, fmt.Sprintf("wrong char %q (u+%x)", r, r), s.src.Name(), line, col)
	s.diags = append(s.diags, e)
	s.log.WithFields(logrus.Fields{
		"source": s.src.Name(),
		"line":   line,
		"col":    col,
		"char":   string(r),
	}).Warn("skipping unexpected character")
	s.advance(size)
}

// Tokenize returns all tokens of src and diagnostics for skipped characters.
func Tokenize(src *source.Source, opts ...Option) ([]*Token, []*combi.Error) {
	s := New(src, opts...)
	res := make([]*Token, 0)
	for t := range s.All() {
		res = append(res, t)
	}
	return res, s.Diagnostics()
}
