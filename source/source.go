// Package source defines source file and position types used by lexer and error messages.
package source

import (
	"bytes"
	"sort"
	"unicode/utf8"
)

// Source contains source name and content.
// Source is immutable and safe for concurrent use.
type Source struct {
	name       string
	content    []byte
	lineStarts []int
}

// New creates new Source. content must not be modified after the call.
func New(name string, content []byte) *Source {
	s := &Source{name: name, content: content}
	lineCnt := bytes.Count(content, []byte("\n")) + 1
	s.lineStarts = make([]int, 1, lineCnt)
	for i, b := range content {
		if b == '\n' {
			s.lineStarts = append(s.lineStarts, i+1)
		}
	}

	return s
}

// NewString creates new Source from a string.
func NewString(name, content string) *Source {
	return New(name, []byte(content))
}

// Name returns source name, may be empty.
func (s *Source) Name() string {
	return s.name
}

// Content returns source content.
func (s *Source) Content() []byte {
	return s.content
}

// Len returns content length in bytes.
func (s *Source) Len() int {
	return len(s.content)
}

// LineCol returns line and column numbers (starting from 1) for byte offset.
// Column is counted in runes. Offsets outside the content are clamped.
func (s *Source) LineCol(pos int) (line, col int) {
	if pos < 0 {
		pos = 0
	} else if pos > len(s.content) {
		pos = len(s.content)
	}

	lineIndex := sort.SearchInts(s.lineStarts, pos+1) - 1
	lineStart := s.lineStarts[lineIndex]
	return lineIndex + 1, utf8.RuneCount(s.content[lineStart:pos]) + 1
}

// Pos returns byte offset for line and column numbers (column counted in bytes).
func (s *Source) Pos(line, col int) int {
	if line <= 0 || col <= 0 {
		return 0
	}

	l := len(s.content)
	if line > len(s.lineStarts) {
		return l
	}

	res := s.lineStarts[line-1] + col - 1
	if res > l {
		return l
	}
	return res
}

// Pos holds source position information.
type Pos struct {
	src             *Source
	pos, line, col int
}

// NewPos creates position information for byte offset.
func NewPos(s *Source, pos int) Pos {
	line, col := s.LineCol(pos)
	return Pos{s, pos, line, col}
}

// Source returns source or nil.
func (p Pos) Source() *Source {
	return p.src
}

// SourceName returns source name or empty string.
func (p Pos) SourceName() string {
	if p.src == nil {
		return ""
	}
	return p.src.name
}

// Pos returns byte offset.
func (p Pos) Pos() int {
	return p.pos
}

// Line returns line number or 0.
func (p Pos) Line() int {
	return p.line
}

// Col returns column number or 0.
func (p Pos) Col() int {
	return p.col
}
