package thread

import (
	"slices"

	"github.com/CrestNiraj12/lemmyrant/domain"
	"github.com/CrestNiraj12/lemmyrant/vote"
)

// Insert adds a newly arrived comment to the forest in place and reports
// whether it was attached.
//
// A reply to a loaded comment is prepended to that comment's replies, so
// fresh replies show first under their parent. This deliberately differs
// from Build, which keeps server order. A top-level comment is prepended to
// the roots in full mode and dropped in context mode. A reply whose parent
// is not loaded, or a comment already in the forest, is dropped.
func (f *Forest) Insert(c domain.Comment, contextMode bool) bool {
	if _, exists := f.search(c.ID); exists {
		return false
	}
	if c.HasParent() {
		parent, ok := f.search(c.ParentID)
		if !ok {
			return false
		}
		h := f.add(c, f.nodes[parent].Depth+1)
		f.nodes[parent].children = slices.Insert(f.nodes[parent].children, 0, h)
		return true
	}
	if contextMode {
		return false
	}
	h := f.add(c, 0)
	f.roots = slices.Insert(f.roots, 0, h)
	return true
}

// Replace swaps in a new version of a comment already in the forest, keeping
// its position, depth and replies.
func (f *Forest) Replace(c domain.Comment) bool {
	h, ok := f.search(c.ID)
	if !ok {
		return false
	}
	n := &f.nodes[h]
	c.ParentID = n.Comment.ParentID
	n.Comment = c
	return true
}

// SetVote overwrites a comment's vote state with the server's values.
func (f *Forest) SetVote(id int64, state domain.VoteState) bool {
	h, ok := f.search(id)
	if !ok {
		return false
	}
	f.nodes[h].Comment.Vote = state
	return true
}

// ApplyVote applies an optimistic vote to a comment and returns the state it
// had before, for rollback when the request fails.
func (f *Forest) ApplyVote(id int64, requested domain.Vote) (domain.VoteState, bool) {
	h, ok := f.search(id)
	if !ok {
		return domain.VoteState{}, false
	}
	prev := f.nodes[h].Comment.Vote
	f.nodes[h].Comment.Vote = vote.Apply(prev, requested)
	return prev, true
}

// Apply routes a live update to Insert, Replace or SetVote by its kind.
func (f *Forest) Apply(u domain.Update, contextMode bool) bool {
	switch u.Kind {
	case domain.UpdateComment:
		return f.Insert(u.Comment, contextMode)
	case domain.UpdateCommentEdit:
		return f.Replace(u.Comment)
	case domain.UpdateVote:
		return f.SetVote(u.CommentID, u.Vote)
	default:
		return false
	}
}
