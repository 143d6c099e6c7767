package domain

import (
	"strconv"
	"strings"
	"time"
)

// Comment is a single reply record as received from the API layer.
type Comment struct {
	ID         int64
	ParentID   int64  // 0 when the comment is top-level
	Path       string // Server path "0.<ancestors>.<id>", may be empty
	PostID     int64
	Author     string
	Content    string // Plain text, HTML stripped
	Published  time.Time
	Vote       VoteState
	Deleted    bool
	Removed    bool
	Read       bool
	ChildCount int
}

// HasParent reports whether the comment declares a parent.
func (c Comment) HasParent() bool {
	return c.ParentID != 0
}

// PathDepth returns the depth encoded in Path. ok is false when the path is
// missing or malformed, in which case callers fall back to walking parents.
func (c Comment) PathDepth() (depth int, ok bool) {
	if c.Path == "" {
		return 0, false
	}
	parts := strings.Split(c.Path, ".")
	// "0.<id>" is a top-level comment.
	if len(parts) < 2 || parts[0] != "0" {
		return 0, false
	}
	for _, p := range parts[1:] {
		if _, err := strconv.ParseInt(p, 10, 64); err != nil {
			return 0, false
		}
	}
	return len(parts) - 2, true
}
