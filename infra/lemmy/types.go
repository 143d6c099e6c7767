package lemmy

// Wire types: the subset of Lemmy's v3 views the client reads.

type lemmyPerson struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	DisplayName string `json:"display_name"`
	ActorID     string `json:"actor_id"`
}

type lemmyCommunity struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Title   string `json:"title"`
	Removed bool   `json:"removed"`
	Deleted bool   `json:"deleted"`
}

type lemmyComment struct {
	ID        int64  `json:"id"`
	CreatorID int64  `json:"creator_id"`
	PostID    int64  `json:"post_id"`
	Content   string `json:"content"`
	Removed   bool   `json:"removed"`
	Deleted   bool   `json:"deleted"`
	Published string `json:"published"`
	Path      string `json:"path"`
}

type lemmyCommentCounts struct {
	Score      int `json:"score"`
	Upvotes    int `json:"upvotes"`
	Downvotes  int `json:"downvotes"`
	ChildCount int `json:"child_count"`
}

type lemmyCommentView struct {
	Comment lemmyComment       `json:"comment"`
	Creator lemmyPerson        `json:"creator"`
	Counts  lemmyCommentCounts `json:"counts"`
	MyVote  *int               `json:"my_vote"`
	Read    bool               `json:"read"`
}

type lemmyPost struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	URL         string `json:"url"`
	Body        string `json:"body"`
	CommunityID int64  `json:"community_id"`
	Removed     bool   `json:"removed"`
	Deleted     bool   `json:"deleted"`
	Published   string `json:"published"`
}

type lemmyPostCounts struct {
	Score     int `json:"score"`
	Upvotes   int `json:"upvotes"`
	Downvotes int `json:"downvotes"`
	Comments  int `json:"comments"`
}

type lemmyPostView struct {
	Post      lemmyPost       `json:"post"`
	Creator   lemmyPerson     `json:"creator"`
	Community lemmyCommunity  `json:"community"`
	Counts    lemmyPostCounts `json:"counts"`
	MyVote    *int            `json:"my_vote"`
}

type getCommentsResponse struct {
	Comments []lemmyCommentView `json:"comments"`
}

type commentResponse struct {
	CommentView lemmyCommentView `json:"comment_view"`
	FormID      string           `json:"form_id,omitempty"`
}

type getPostsResponse struct {
	Posts []lemmyPostView `json:"posts"`
}

type getPostResponse struct {
	PostView lemmyPostView `json:"post_view"`
}

type createCommentRequest struct {
	Content  string `json:"content"`
	PostID   int64  `json:"post_id"`
	ParentID int64  `json:"parent_id,omitempty"`
	FormID   string `json:"form_id,omitempty"`
}

type likeCommentRequest struct {
	CommentID int64 `json:"comment_id"`
	Score     int   `json:"score"`
}
