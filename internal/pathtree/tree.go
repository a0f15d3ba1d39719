// Package pathtree rebuilds a labeled tree out of flat label paths.
//
// A path such as ["main", "load", "parse"] is inserted by descending from the
// root and reusing any child that carries the same label at that level, so
// paths sharing a prefix share nodes. Children keep insertion order; callers
// that need a stable layout insert paths in a stable order.
package pathtree

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// Branch glyphs used by Lines.
const (
	glyphBranch = "|-"
	glyphLast   = "+-"
	indentOpen  = "| "
	indentLast  = "  "
)

// Node is a tree node. Value is attached by the caller at terminal nodes and
// stays the zero value on nodes that were only created as intermediate path
// segments.
type Node[T any] struct {
	Label    string
	Value    T
	Children []*Node[T]
}

// New returns a root node with the given label.
func New[T any](label string) *Node[T] {
	return &Node[T]{Label: label}
}

// Insert walks path from n, creating missing nodes, and returns the node for
// the last label. An empty path returns n itself.
func (n *Node[T]) Insert(path []string) *Node[T] {
	where := n
	for _, label := range path {
		where = where.child(label)
	}
	return where
}

func (n *Node[T]) child(label string) *Node[T] {
	for _, c := range n.Children {
		if c.Label == label {
			return c
		}
	}
	c := &Node[T]{Label: label}
	n.Children = append(n.Children, c)
	return c
}

// Leaf reports whether n has no children.
func (n *Node[T]) Leaf() bool { return len(n.Children) == 0 }

// Walk visits n depth-first. Leaves are passed to leaf; internal nodes are
// passed to pre before their children and to post after them.
func (n *Node[T]) Walk(leaf, pre, post func(*Node[T])) {
	if n.Leaf() {
		leaf(n)
		return
	}
	pre(n)
	for _, c := range n.Children {
		c.Walk(leaf, pre, post)
	}
	post(n)
}

// PreOrder returns n and all its descendants in the order Lines prints them.
func (n *Node[T]) PreOrder() []*Node[T] {
	out := []*Node[T]{n}
	for _, c := range n.Children {
		out = append(out, c.PreOrder()...)
	}
	return out
}

// Lines renders the tree with branch glyphs, one line per node in PreOrder
// order. The root is printed as the last child of an invisible parent. Every
// line is padded with spaces to the display width of the widest one.
func (n *Node[T]) Lines() []string {
	var lines []string
	n.print("", true, &lines)
	width := 0
	for _, l := range lines {
		width = max(width, runewidth.StringWidth(l))
	}
	for i, l := range lines {
		lines[i] = runewidth.FillRight(l, width)
	}
	return lines
}

func (n *Node[T]) print(indent string, last bool, lines *[]string) {
	var sb strings.Builder
	sb.WriteString(indent)
	if last {
		sb.WriteString(glyphLast)
		indent += indentLast
	} else {
		sb.WriteString(glyphBranch)
		indent += indentOpen
	}
	sb.WriteString(n.Label)
	*lines = append(*lines, sb.String())
	for i, c := range n.Children {
		c.print(indent, i == len(n.Children)-1, lines)
	}
}
