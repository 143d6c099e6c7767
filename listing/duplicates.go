// Package listing derives grouped structures from a page of posts.
package listing

import (
	"slices"

	"github.com/CrestNiraj12/lemmyrant/domain"
)

// Groups is the result of GroupDuplicates.
type Groups struct {
	// Primary holds every post that is not a duplicate, in input order.
	Primary []domain.Post
	// DuplicatesOf maps a canonical post id to the later posts sharing its
	// URL, oldest first.
	DuplicatesOf map[int64][]domain.Post
}

// Duplicates returns the posts grouped under id.
func (g Groups) Duplicates(id int64) []domain.Post {
	return g.DuplicatesOf[id]
}

// GroupDuplicates collapses posts that link to the same URL. Only visible
// posts with a URL take part; the earliest published post of each group
// stays in Primary and the others move under it. Posts that share a URL with
// nothing else are left alone.
func GroupDuplicates(posts []domain.Post) Groups {
	byURL := make(map[string][]int)
	var order []string
	for i, p := range posts {
		if p.URL == "" || !p.Visible() {
			continue
		}
		if _, ok := byURL[p.URL]; !ok {
			order = append(order, p.URL)
		}
		byURL[p.URL] = append(byURL[p.URL], i)
	}

	dup := make([]bool, len(posts))
	groups := Groups{DuplicatesOf: make(map[int64][]domain.Post)}
	for _, u := range order {
		idx := byURL[u]
		if len(idx) < 2 {
			continue
		}
		slices.SortStableFunc(idx, func(a, b int) int {
			return posts[a].Published.Compare(posts[b].Published)
		})
		canonical := posts[idx[0]]
		rest := make([]domain.Post, 0, len(idx)-1)
		for _, i := range idx[1:] {
			dup[i] = true
			rest = append(rest, posts[i])
		}
		groups.DuplicatesOf[canonical.ID] = rest
	}

	groups.Primary = make([]domain.Post, 0, len(posts))
	for i, p := range posts {
		if !dup[i] {
			groups.Primary = append(groups.Primary, p)
		}
	}
	return groups
}
