package lemmy

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/CrestNiraj12/lemmyrant/app"
	"github.com/CrestNiraj12/lemmyrant/domain"
)

const defaultPostLimit = 20

// postService implements app.PostService using the Lemmy API.
type postService struct {
	client *Client
}

// NewPostService creates a PostService backed by Lemmy.
func NewPostService(client *Client) *postService {
	return &postService{client: client}
}

func (s *postService) Posts(ctx context.Context, q app.PostQuery) ([]domain.Post, error) {
	params := url.Values{}
	params.Set("type_", "All")
	if q.Community != "" {
		params.Set("community_name", q.Community)
	}
	sort := q.Sort
	if sort == "" {
		sort = app.PostSortActive
	}
	params.Set("sort", string(sort))
	limit := q.Limit
	if limit <= 0 {
		limit = defaultPostLimit
	}
	params.Set("limit", strconv.Itoa(limit))
	if q.Page > 0 {
		params.Set("page", strconv.Itoa(q.Page))
	}

	var resp getPostsResponse
	if err := s.client.Get(ctx, "/api/v3/post/list?"+params.Encode(), &resp); err != nil {
		return nil, fmt.Errorf("fetching posts: %w", err)
	}
	posts := make([]domain.Post, 0, len(resp.Posts))
	for _, pv := range resp.Posts {
		posts = append(posts, mapPost(pv))
	}
	return posts, nil
}

func (s *postService) Post(ctx context.Context, id int64) (domain.Post, error) {
	var resp getPostResponse
	path := "/api/v3/post?id=" + strconv.FormatInt(id, 10)
	if err := s.client.Get(ctx, path, &resp); err != nil {
		return domain.Post{}, fmt.Errorf("fetching post %d: %w", id, err)
	}
	return mapPost(resp.PostView), nil
}
