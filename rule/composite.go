package rule

import (
	"github.com/ava12/combi/tree"
)

// Unbounded is the atMost value for sequences with no upper repetition limit.
const Unbounded = -1

// Sequence matches its children in order, the whole group is repeated from atLeast to atMost times.
type Sequence struct {
	name    string
	rules   []Rule
	atLeast int
	atMost  int
}

// NewSequence creates sequence matched exactly once.
func NewSequence(name string, rules ...Rule) *Sequence {
	return &Sequence{name, rules, 1, 1}
}

// Seq creates anonymous sequence matched exactly once.
func Seq(rules ...Rule) *Sequence {
	return NewSequence("", rules...)
}

// Optional creates anonymous sequence matched zero or one time.
func Optional(rules ...Rule) *Sequence {
	return Seq(rules...).Repeat(0, 1)
}

// ZeroOrMore creates anonymous sequence matched any number of times.
func ZeroOrMore(rules ...Rule) *Sequence {
	return Seq(rules...).Repeat(0, Unbounded)
}

// OneOrMore creates anonymous sequence matched at least once.
func OneOrMore(rules ...Rule) *Sequence {
	return Seq(rules...).Repeat(1, Unbounded)
}

// Repeat sets repetition range and returns s. atMost may be Unbounded.
// Range is checked by Compile.
func (s *Sequence) Repeat(atLeast, atMost int) *Sequence {
	s.atLeast = atLeast
	s.atMost = atMost
	return s
}

func (s *Sequence) Name() string {
	return s.name
}

func (s *Sequence) Rules() []Rule {
	return s.rules
}

func (s *Sequence) Bounds() (atLeast, atMost int) {
	return s.atLeast, s.atMost
}

func (s *Sequence) Match(in *Input, pos int) (int, []tree.Node, bool) {
	var nodes []tree.Node
	current := pos
	count := 0
	for s.atMost == Unbounded || count < s.atMost {
		next, ns, ok := s.matchOnce(in, current)
		if !ok {
			break
		}

		nodes = append(nodes, ns...)
		count++
		if next == current {
			// an empty repetition would repeat forever with the same result
			count = max(count, s.atLeast)
			break
		}
		current = next
	}

	if count < s.atLeast {
		return pos, nil, false
	}
	return current, nodes, true
}

func (s *Sequence) matchOnce(in *Input, pos int) (int, []tree.Node, bool) {
	var nodes []tree.Node
	current := pos
	for _, r := range s.rules {
		next, ns, ok := r.Match(in, current)
		if !ok {
			return pos, nil, false
		}

		nodes = append(nodes, ns...)
		current = next
	}
	return current, nodes, true
}

func (s *Sequence) compile(c *compiler) {
	if s.atLeast < 0 || (s.atMost != Unbounded && s.atMost < s.atLeast) {
		c.fail(boundsError(s))
	}

	for _, r := range s.rules {
		c.visit(r)
	}
}

// Alternation tries its alternatives in declaration order and commits to the first one that matches.
// Nodes of the matched alternative are wrapped in a tree.Branch named after the alternation;
// an anonymous alternation passes them to the caller as is.
type Alternation struct {
	name string
	alts []*Sequence
}

func NewAlternation(name string, alts ...*Sequence) *Alternation {
	return &Alternation{name, alts}
}

func (a *Alternation) Name() string {
	return a.name
}

func (a *Alternation) Alternatives() []*Sequence {
	return a.alts
}

func (a *Alternation) Match(in *Input, pos int) (int, []tree.Node, bool) {
	for _, alt := range a.alts {
		next, nodes, ok := alt.Match(in, pos)
		if !ok {
			continue
		}

		if a.name == "" {
			return next, nodes, true
		}
		return next, []tree.Node{tree.NewBranch(a.name, nodes)}, true
	}

	return pos, nil, false
}

func (a *Alternation) compile(c *compiler) {
	for _, alt := range a.alts {
		c.visit(alt)
	}
}
