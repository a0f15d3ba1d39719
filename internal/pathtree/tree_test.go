package pathtree

import (
	"strings"
	"testing"
)

func buildSample() *Node[int] {
	root := New[int]("/")
	paths := [][]string{
		{"a"},
		{"a", "b"},
		{"a", "b", "c"},
		{"a", "d"},
		{"e"},
	}
	for i, p := range paths {
		root.Insert(p).Value = i + 1
	}
	return root
}

func TestInsertSharesPrefixes(t *testing.T) {
	root := buildSample()
	if len(root.Children) != 2 {
		t.Fatalf("root children = %d, want 2", len(root.Children))
	}
	a := root.Children[0]
	if a.Label != "a" || a.Value != 1 {
		t.Fatalf("first child = %q/%d, want a/1", a.Label, a.Value)
	}
	if len(a.Children) != 2 {
		t.Fatalf("a children = %d, want 2", len(a.Children))
	}
	if got := root.Insert([]string{"a", "b", "c"}); got.Value != 3 {
		t.Fatalf("re-insert returned node with value %d, want 3", got.Value)
	}
	if got := root.Insert(nil); got != root {
		t.Fatalf("Insert(nil) must return the receiver")
	}
}

func TestInsertCreatesIntermediateNodes(t *testing.T) {
	root := New[string]("/")
	root.Insert([]string{"x", "y", "z"}).Value = "leaf"
	nodes := root.PreOrder()
	if len(nodes) != 4 {
		t.Fatalf("PreOrder() = %d nodes, want 4", len(nodes))
	}
	if nodes[1].Value != "" || nodes[2].Value != "" {
		t.Fatalf("intermediate nodes must keep the zero value")
	}
	if nodes[3].Value != "leaf" {
		t.Fatalf("terminal value = %q, want leaf", nodes[3].Value)
	}
}

func TestLines(t *testing.T) {
	got := buildSample().Lines()
	want := []string{
		"+-/      ",
		"  |-a    ",
		"  | |-b  ",
		"  | | +-c",
		"  | +-d  ",
		"  +-e    ",
	}
	if strings.Join(got, "\n") != strings.Join(want, "\n") {
		t.Fatalf("Lines() =\n%s\nwant\n%s", strings.Join(got, "\n"), strings.Join(want, "\n"))
	}
}

func TestLinesPadsByDisplayWidth(t *testing.T) {
	root := New[int]("/")
	root.Insert([]string{"日本"})
	root.Insert([]string{"abcdef"})
	lines := root.Lines()
	// "  |-日本" is 8 columns wide, "  +-abcdef" is 10.
	if lines[1] != "  |-日本  " {
		t.Fatalf("wide line = %q", lines[1])
	}
	if lines[2] != "  +-abcdef" {
		t.Fatalf("narrow line = %q", lines[2])
	}
}

func TestWalkOrder(t *testing.T) {
	root := buildSample()
	var events []string
	for _, c := range root.Children {
		c.Walk(
			func(n *Node[int]) { events = append(events, "X:"+n.Label) },
			func(n *Node[int]) { events = append(events, "B:"+n.Label) },
			func(n *Node[int]) { events = append(events, "E:"+n.Label) },
		)
	}
	want := "B:a B:b X:c E:b X:d E:a X:e"
	if got := strings.Join(events, " "); got != want {
		t.Fatalf("walk = %q, want %q", got, want)
	}
}
