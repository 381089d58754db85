// Package tree defines syntax tree nodes produced by rule matching and functions to inspect them.
package tree

import (
	"strings"

	"github.com/ava12/combi/lexer"
)

// Node is either a Leaf holding a single token or a Branch produced by a named alternation.
type Node interface {
	IsBranch() bool
	// TypeName returns branch name or leaf kind (terminal name, may be empty).
	TypeName() string
	// Token returns leaf token or nil for branches.
	Token() *lexer.Token
	// Children returns branch children or nil for leaves.
	Children() []Node
}

// Leaf is a token matched by a terminal rule.
type Leaf struct {
	Kind string
	Tok  *lexer.Token
}

// NewLeaf creates new leaf, kind is the name of the terminal rule that matched the token.
func NewLeaf(kind string, token *lexer.Token) *Leaf {
	return &Leaf{kind, token}
}

func (l *Leaf) IsBranch() bool {
	return false
}

func (l *Leaf) TypeName() string {
	return l.Kind
}

func (l *Leaf) Token() *lexer.Token {
	return l.Tok
}

func (l *Leaf) Children() []Node {
	return nil
}

func (l *Leaf) Text() string {
	return l.Tok.Text()
}

// Branch is a node created by a successful named alternation match.
type Branch struct {
	Name  string
	Nodes []Node
}

func NewBranch(name string, children []Node) *Branch {
	return &Branch{name, children}
}

func (b *Branch) IsBranch() bool {
	return true
}

func (b *Branch) TypeName() string {
	return b.Name
}

func (b *Branch) Token() *lexer.Token {
	return nil
}

func (b *Branch) Children() []Node {
	return b.Nodes
}

// NthChild returns i-th child of n or nil, negative i counts from the end (-1 is the last child).
func NthChild(n Node, i int) Node {
	if n == nil {
		return nil
	}

	cs := n.Children()
	if i < 0 {
		i += len(cs)
	}
	if i < 0 || i >= len(cs) {
		return nil
	}
	return cs[i]
}

const AllLevels = -1

// NumOfChildren returns number of descendants of parent down to specified depth, 0 means direct children only.
func NumOfChildren(parent Node, levels int) int {
	if parent == nil {
		return 0
	}

	i := 0
	for _, c := range parent.Children() {
		i++
		if levels != 0 {
			i += NumOfChildren(c, levels-1)
		}
	}
	return i
}

// FirstTokenNode returns the first leaf of n or nil if there are none.
func FirstTokenNode(n Node) Node {
	if n == nil || !n.IsBranch() {
		return n
	}

	for _, c := range n.Children() {
		if nn := FirstTokenNode(c); nn != nil {
			return nn
		}
	}
	return nil
}

// LastTokenNode returns the last leaf of n or nil if there are none.
func LastTokenNode(n Node) Node {
	if n == nil || !n.IsBranch() {
		return n
	}

	cs := n.Children()
	for i := len(cs) - 1; i >= 0; i-- {
		if nn := LastTokenNode(cs[i]); nn != nil {
			return nn
		}
	}
	return nil
}

// Walk calls visit for n and its descendants in depth-first order.
// Descendants of a node are skipped if visit returns false for it.
func Walk(n Node, visit func(n Node, level int) bool) {
	walk(n, 0, visit)
}

func walk(n Node, level int, visit func(Node, int) bool) {
	if n == nil || !visit(n, level) {
		return
	}

	for _, c := range n.Children() {
		walk(c, level+1, visit)
	}
}

// Find returns all branches named name among direct children of n.
func Find(n Node, name string) []Node {
	res := make([]Node, 0)
	if n == nil {
		return res
	}

	for _, c := range n.Children() {
		if c.IsBranch() && c.TypeName() == name {
			res = append(res, c)
		}
	}
	return res
}

// Tokens returns all leaf tokens of n in order.
func Tokens(n Node) []*lexer.Token {
	res := make([]*lexer.Token, 0)
	Walk(n, func(n Node, _ int) bool {
		if t := n.Token(); t != nil {
			res = append(res, t)
		}
		return true
	})
	return res
}

// String returns s-expression representation of n: branches are "(Name child ...)", leaves are token texts.
func String(n Node) string {
	var b strings.Builder
	writeNode(&b, n)
	return b.String()
}

func writeNode(b *strings.Builder, n Node) {
	if n == nil {
		b.WriteString("()")
		return
	}

	if !n.IsBranch() {
		b.WriteString(n.Token().Text())
		return
	}

	b.WriteByte('(')
	b.WriteString(n.TypeName())
	for _, c := range n.Children() {
		b.WriteByte(' ')
		writeNode(b, c)
	}
	b.WriteByte(')')
}

// Plain converts n to a structure suitable for YAML or JSON encoding:
// a branch becomes a single-key map from its name to the list of children, a leaf becomes its text.
func Plain(n Node) any {
	if n == nil {
		return nil
	}

	if !n.IsBranch() {
		return n.Token().Text()
	}

	cs := n.Children()
	children := make([]any, len(cs))
	for i, c := range cs {
		children[i] = Plain(c)
	}
	return map[string]any{n.TypeName(): children}
}
