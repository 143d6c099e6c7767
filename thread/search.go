package thread

// Search returns the first node, in depth-first display order, whose comment
// id is id. The second result is false when no node matches.
func (f *Forest) Search(id int64) (*Node, bool) {
	h, ok := f.search(id)
	if !ok {
		return nil, false
	}
	return &f.nodes[h], true
}

func (f *Forest) search(id int64) (int, bool) {
	stack := pushReversed(nil, f.roots)
	for len(stack) > 0 {
		h := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if f.nodes[h].Comment.ID == id {
			return h, true
		}
		stack = pushReversed(stack, f.nodes[h].children)
	}
	return 0, false
}
