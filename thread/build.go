package thread

import "github.com/CrestNiraj12/lemmyrant/domain"

// Build constructs a full-thread forest. comments must already be in the
// desired sibling order; it is never re-sorted.
//
// Comments without a parent become roots. A comment whose parent is not in
// the list is an orphan: it is left out together with its replies.
func Build(comments []domain.Comment) *Forest {
	b := newBuilder(comments)
	return b.emit(b.tops, 0)
}

// BuildContext constructs the permalink view of rootID: the root is the only
// top-level node, at depth 0, and only its subtree is kept. Comments outside
// the subtree are dropped. A missing root yields an empty forest.
func BuildContext(comments []domain.Comment, rootID int64) *Forest {
	b := newBuilder(comments)
	pos, ok := b.index[rootID]
	if !ok {
		return &Forest{}
	}
	return b.emit([]int{pos}, b.rawDepth(pos))
}

type builder struct {
	comments []domain.Comment
	index    map[int64]int // id -> position in comments
	children [][]int       // positions, in input order
	tops     []int
	depth    []int // memoized raw depth, -1 when unknown
}

func newBuilder(comments []domain.Comment) *builder {
	b := &builder{
		comments: comments,
		index:    make(map[int64]int, len(comments)),
		children: make([][]int, len(comments)),
		depth:    make([]int, len(comments)),
	}
	for i, c := range comments {
		b.depth[i] = -1
		// First occurrence wins on duplicate ids.
		if _, dup := b.index[c.ID]; !dup {
			b.index[c.ID] = i
		}
	}
	for i, c := range comments {
		if b.index[c.ID] != i {
			continue
		}
		if !c.HasParent() {
			b.tops = append(b.tops, i)
			continue
		}
		if p, ok := b.index[c.ParentID]; ok && p != i {
			b.children[p] = append(b.children[p], i)
		}
	}
	return b
}

// rawDepth is the depth of comments[pos] in the full thread, taken from the
// server path when present, otherwise counted along the parent chain.
func (b *builder) rawDepth(pos int) int {
	if d, ok := b.comments[pos].PathDepth(); ok {
		return d
	}
	var chain []int
	cur := pos
	for steps := 0; steps <= len(b.comments); steps++ {
		if b.depth[cur] >= 0 {
			break
		}
		chain = append(chain, cur)
		c := b.comments[cur]
		p, ok := b.index[c.ParentID]
		if !c.HasParent() || !ok || p == cur {
			b.depth[cur] = 0
			chain = chain[:len(chain)-1]
			break
		}
		cur = p
	}
	base := max(b.depth[cur], 0)
	for i := len(chain) - 1; i >= 0; i-- {
		base++
		b.depth[chain[i]] = base
	}
	return b.depth[pos]
}

// emit copies every comment reachable from tops into a fresh arena,
// breadth first so each parent handle exists before its replies.
func (b *builder) emit(tops []int, offset int) *Forest {
	f := &Forest{
		nodes:  make([]Node, 0, len(b.comments)),
		offset: offset,
	}
	seen := make([]bool, len(b.comments))
	handle := make([]int, len(b.comments))
	queue := make([]int, 0, len(b.comments))

	for _, pos := range tops {
		seen[pos] = true
		handle[pos] = f.add(b.comments[pos], 0)
		f.roots = append(f.roots, handle[pos])
		queue = append(queue, pos)
	}
	for len(queue) > 0 {
		pos := queue[0]
		queue = queue[1:]
		parent := handle[pos]
		for _, child := range b.children[pos] {
			if seen[child] {
				continue
			}
			seen[child] = true
			handle[child] = f.add(b.comments[child], f.nodes[parent].Depth+1)
			f.nodes[parent].children = append(f.nodes[parent].children, handle[child])
			queue = append(queue, child)
		}
	}
	return f
}
