package tree

import (
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/ava12/combi/internal/test"
	"github.com/ava12/combi/lexer"
	"github.com/ava12/combi/source"
)

func leaf(text string) *Leaf {
	return NewLeaf("", lexer.NewToken(lexer.NameToken, text, source.Pos{}))
}

// (a (b x y) (c) z)
func sampleTree() Node {
	return NewBranch("a", []Node{
		NewBranch("b", []Node{leaf("x"), leaf("y")}),
		NewBranch("c", nil),
		leaf("z"),
	})
}

func TestString(t *testing.T) {
	test.ExpectString(t, "(a (b x y) (c) z)", String(sampleTree()))
	test.ExpectString(t, "()", String(nil))
	test.ExpectString(t, "q", String(leaf("q")))
}

func TestNthChild(t *testing.T) {
	root := sampleTree()
	samples := map[int]string{0: "(b x y)", 1: "(c)", 2: "z", -1: "z", -3: "(b x y)"}
	for i, expected := range samples {
		test.ExpectString(t, expected, String(NthChild(root, i)))
	}
	test.Assert(t, NthChild(root, 3) == nil, "expecting nil for index 3")
	test.Assert(t, NthChild(root, -4) == nil, "expecting nil for index -4")
	test.Assert(t, NthChild(leaf("x"), 0) == nil, "leaf has no children")
}

func TestNumOfChildren(t *testing.T) {
	root := sampleTree()
	test.ExpectInt(t, 3, NumOfChildren(root, 0))
	test.ExpectInt(t, 5, NumOfChildren(root, AllLevels))
	test.ExpectInt(t, 0, NumOfChildren(nil, AllLevels))
}

func TestTokenNodes(t *testing.T) {
	root := sampleTree()
	test.ExpectString(t, "x", String(FirstTokenNode(root)))
	test.ExpectString(t, "z", String(LastTokenNode(root)))
	test.Assert(t, FirstTokenNode(NewBranch("e", nil)) == nil, "expecting nil for empty branch")
	test.ExpectDiff(t, []string{"x", "y", "z"}, lexer.Texts(Tokens(root)))
}

func TestWalk(t *testing.T) {
	var names []string
	var levels []int
	Walk(sampleTree(), func(n Node, level int) bool {
		names = append(names, String(n))
		levels = append(levels, level)
		return n.TypeName() != "b"
	})
	test.ExpectDiff(t, []string{"(a (b x y) (c) z)", "(b x y)", "(c)", "z"}, names)
	test.ExpectDiff(t, []int{0, 1, 1, 1}, levels)
}

func TestFind(t *testing.T) {
	found := Find(sampleTree(), "c")
	test.ExpectInt(t, 1, len(found))
	test.ExpectInt(t, 0, len(Find(sampleTree(), "x")))
}

func TestPlain(t *testing.T) {
	expected := map[string]any{"a": []any{
		map[string]any{"b": []any{"x", "y"}},
		map[string]any{"c": []any{}},
		"z",
	}}
	test.ExpectDiff(t, expected, Plain(sampleTree()))

	out, e := yaml.Marshal(Plain(sampleTree()))
	test.ExpectNoError(t, e)
	var decoded any
	test.ExpectNoError(t, yaml.Unmarshal(out, &decoded))
	test.ExpectDiff(t, expected, decoded)
}
