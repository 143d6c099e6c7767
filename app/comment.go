package app

import (
	"context"

	"github.com/CrestNiraj12/lemmyrant/domain"
)

// CommentSort is the server-side ordering requested for a comment page.
type CommentSort string

const (
	CommentSortHot CommentSort = "Hot"
	CommentSortTop CommentSort = "Top"
	CommentSortNew CommentSort = "New"
	CommentSortOld CommentSort = "Old"
)

// CommentQuery selects a page of comments. ParentID narrows the page to one
// comment's subtree for permalink views.
type CommentQuery struct {
	PostID   int64
	ParentID int64
	Sort     CommentSort
	MaxDepth int
	Limit    int
	Page     int
}

// CommentService fetches, creates and votes on comments.
type CommentService interface {
	// Comments returns one page of comments in server order.
	Comments(ctx context.Context, q CommentQuery) ([]domain.Comment, error)

	// CreateComment posts a reply. parentID 0 replies to the post itself.
	CreateComment(ctx context.Context, postID, parentID int64, content string) (domain.Comment, error)

	// VoteComment sets the viewer's vote and returns the server's view of
	// the comment afterwards.
	VoteComment(ctx context.Context, id int64, v domain.Vote) (domain.Comment, error)
}
