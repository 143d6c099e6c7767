package lemmy

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/CrestNiraj12/lemmyrant/app"
	"github.com/CrestNiraj12/lemmyrant/domain"
)

const defaultCommentLimit = 50

// commentService implements app.CommentService using the Lemmy API.
type commentService struct {
	client *Client
}

// NewCommentService creates a CommentService backed by Lemmy.
func NewCommentService(client *Client) *commentService {
	return &commentService{client: client}
}

func (s *commentService) Comments(ctx context.Context, q app.CommentQuery) ([]domain.Comment, error) {
	params := url.Values{}
	params.Set("type_", "All")
	if q.PostID > 0 {
		params.Set("post_id", strconv.FormatInt(q.PostID, 10))
	}
	if q.ParentID > 0 {
		params.Set("parent_id", strconv.FormatInt(q.ParentID, 10))
	}
	if q.Sort != "" {
		params.Set("sort", string(q.Sort))
	}
	if q.MaxDepth > 0 {
		params.Set("max_depth", strconv.Itoa(q.MaxDepth))
	}
	limit := q.Limit
	if limit <= 0 {
		limit = defaultCommentLimit
	}
	params.Set("limit", strconv.Itoa(limit))
	if q.Page > 0 {
		params.Set("page", strconv.Itoa(q.Page))
	}

	var resp getCommentsResponse
	if err := s.client.Get(ctx, "/api/v3/comment/list?"+params.Encode(), &resp); err != nil {
		return nil, fmt.Errorf("fetching comments: %w", err)
	}
	return mapComments(resp.Comments), nil
}

func (s *commentService) CreateComment(ctx context.Context, postID, parentID int64, content string) (domain.Comment, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return domain.Comment{}, domain.ErrEmptyComment
	}

	req := createCommentRequest{
		Content:  content,
		PostID:   postID,
		ParentID: parentID,
		FormID:   uuid.NewString(),
	}
	var resp commentResponse
	if err := s.client.Post(ctx, "/api/v3/comment", req, &resp); err != nil {
		return domain.Comment{}, fmt.Errorf("creating comment: %w", err)
	}
	if resp.FormID != "" && resp.FormID != req.FormID {
		return domain.Comment{}, fmt.Errorf("creating comment: response form id %q does not match request", resp.FormID)
	}
	return mapComment(resp.CommentView), nil
}

func (s *commentService) VoteComment(ctx context.Context, id int64, v domain.Vote) (domain.Comment, error) {
	if !v.Valid() {
		return domain.Comment{}, fmt.Errorf("invalid vote %d", v)
	}
	var resp commentResponse
	err := s.client.Post(ctx, "/api/v3/comment/like", likeCommentRequest{CommentID: id, Score: int(v)}, &resp)
	if err != nil {
		return domain.Comment{}, fmt.Errorf("voting on comment: %w", err)
	}
	return mapComment(resp.CommentView), nil
}
