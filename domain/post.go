package domain

import "time"

// Community is the subset of community state the client needs.
type Community struct {
	ID      int64
	Name    string
	Deleted bool
	Removed bool
}

// Post is a listing record: a link or text submission in a community.
type Post struct {
	ID        int64
	Name      string
	URL       string // Empty for text posts
	Author    string
	Body      string
	Published time.Time
	Community Community
	Deleted   bool
	Removed   bool
	Vote      VoteState
	Comments  int
}

// Visible reports whether neither the post nor its community has been
// deleted or removed.
func (p Post) Visible() bool {
	return !p.Deleted && !p.Removed && !p.Community.Deleted && !p.Community.Removed
}
