package thread

import "github.com/CrestNiraj12/lemmyrant/domain"

// Flatten ignores reply structure and returns one depth-0 root per comment,
// in the given order. Used by the chronological view.
func Flatten(comments []domain.Comment) *Forest {
	f := &Forest{
		nodes: make([]Node, 0, len(comments)),
		roots: make([]int, 0, len(comments)),
	}
	for _, c := range comments {
		f.roots = append(f.roots, f.add(c, 0))
	}
	return f
}
