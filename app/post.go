package app

import (
	"context"

	"github.com/CrestNiraj12/lemmyrant/domain"
)

// PostSort is the server-side ordering requested for a listing page.
type PostSort string

const (
	PostSortActive PostSort = "Active"
	PostSortHot    PostSort = "Hot"
	PostSortNew    PostSort = "New"
)

// PostQuery selects a listing page. An empty Community lists all.
type PostQuery struct {
	Community string
	Sort      PostSort
	Limit     int
	Page      int
}

// PostService fetches listing pages and single posts.
type PostService interface {
	// Posts returns one listing page in server order.
	Posts(ctx context.Context, q PostQuery) ([]domain.Post, error)

	// Post returns a single post by id.
	Post(ctx context.Context, id int64) (domain.Post, error)
}
