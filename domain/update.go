package domain

// UpdateKind discriminates the payload carried by an Update.
type UpdateKind int

const (
	// UpdateComment carries a newly created comment.
	UpdateComment UpdateKind = iota + 1
	// UpdateCommentEdit carries a new version of a comment already shown.
	UpdateCommentEdit
	// UpdateVote carries the authoritative vote state for a comment.
	UpdateVote
)

func (k UpdateKind) String() string {
	switch k {
	case UpdateComment:
		return "comment"
	case UpdateCommentEdit:
		return "comment-edit"
	case UpdateVote:
		return "vote"
	default:
		return "unknown"
	}
}

// Update is a live change pushed for an open thread. Exactly one payload is
// meaningful, selected by Kind.
type Update struct {
	Kind      UpdateKind
	Comment   Comment   // UpdateComment, UpdateCommentEdit
	CommentID int64     // UpdateVote
	Vote      VoteState // UpdateVote
}

// NewCommentUpdate wraps a freshly created comment.
func NewCommentUpdate(c Comment) Update {
	return Update{Kind: UpdateComment, Comment: c}
}

// EditCommentUpdate wraps an edited or deleted comment.
func EditCommentUpdate(c Comment) Update {
	return Update{Kind: UpdateCommentEdit, Comment: c}
}

// VoteUpdate wraps the server's vote state for a comment.
func VoteUpdate(id int64, v VoteState) Update {
	return Update{Kind: UpdateVote, CommentID: id, Vote: v}
}
