// Package thread turns flat, server-ordered comment lists into reply forests
// and keeps them consistent as live replies and votes arrive.
//
// A Forest is an arena: nodes live in one slice and refer to their children
// by handle, so no node is reachable through more than one owner. Pointers
// returned by Search, Roots, Children and All are valid until the next
// Insert.
package thread

import (
	"iter"

	"github.com/CrestNiraj12/lemmyrant/domain"
)

// Node is one comment at its position in a Forest.
type Node struct {
	Comment  domain.Comment
	Depth    int
	children []int
}

// ID returns the comment id.
func (n *Node) ID() int64 {
	return n.Comment.ID
}

// NumChildren returns the number of direct replies attached to n.
func (n *Node) NumChildren() int {
	return len(n.children)
}

// Forest is an ordered sequence of top-level nodes with nested replies.
type Forest struct {
	nodes  []Node
	roots  []int
	offset int
}

// Len returns the number of nodes in the forest.
func (f *Forest) Len() int {
	return len(f.nodes)
}

// ContextOffset returns the raw depth of the context root for forests built
// with BuildContext, and 0 otherwise.
func (f *Forest) ContextOffset() int {
	return f.offset
}

// Roots returns the top-level nodes in order.
func (f *Forest) Roots() []*Node {
	return f.resolve(f.roots)
}

// Children returns the direct replies of n in order.
func (f *Forest) Children(n *Node) []*Node {
	return f.resolve(n.children)
}

func (f *Forest) resolve(handles []int) []*Node {
	out := make([]*Node, 0, len(handles))
	for _, h := range handles {
		out = append(out, &f.nodes[h])
	}
	return out
}

// All yields every node in display order: each node before its replies,
// siblings in forest order.
func (f *Forest) All() iter.Seq[*Node] {
	return func(yield func(*Node) bool) {
		stack := pushReversed(nil, f.roots)
		for len(stack) > 0 {
			h := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if !yield(&f.nodes[h]) {
				return
			}
			stack = pushReversed(stack, f.nodes[h].children)
		}
	}
}

// IDs returns comment ids in display order.
func (f *Forest) IDs() []int64 {
	ids := make([]int64, 0, len(f.nodes))
	for n := range f.All() {
		ids = append(ids, n.ID())
	}
	return ids
}

func (f *Forest) add(c domain.Comment, depth int) int {
	f.nodes = append(f.nodes, Node{Comment: c, Depth: depth})
	return len(f.nodes) - 1
}

func pushReversed(stack, handles []int) []int {
	for i := len(handles) - 1; i >= 0; i-- {
		stack = append(stack, handles[i])
	}
	return stack
}
