package lemmy

import (
	"html"
	"regexp"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/charmbracelet/x/ansi"
	"github.com/microcosm-cc/bluemonday"

	"github.com/CrestNiraj12/lemmyrant/domain"
)

var (
	strictPolicy = bluemonday.StrictPolicy()
	lineBreakRe  = regexp.MustCompile(`(?i)</p>|<br\s*/?>`)
)

// stripHTML removes HTML that federated instances sometimes embed in
// markdown, keeping paragraph breaks, and decodes entities.
func stripHTML(s string) string {
	s = lineBreakRe.ReplaceAllString(s, "\n")
	return html.UnescapeString(strictPolicy.Sanitize(s))
}

// sanitizeForTerminal drops escape sequences and control characters so
// remote text cannot drive the terminal. Newlines and tabs survive.
func sanitizeForTerminal(s string) string {
	s = ansi.Strip(s)
	return strings.Map(func(r rune) rune {
		if r == '\n' || r == '\t' {
			return r
		}
		if unicode.IsControl(r) {
			return -1
		}
		return r
	}, s)
}

func cleanText(s string) string {
	return strings.TrimSpace(sanitizeForTerminal(stripHTML(s)))
}

// Older instances send naive timestamps without a zone; they are UTC.
var timeLayouts = []string{time.RFC3339Nano, "2006-01-02T15:04:05.999999999"}

func parseTime(s string) time.Time {
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC()
		}
	}
	return time.Time{}
}

// parentFromPath extracts the parent id from a comment path such as
// "0.12.34" (comment 34, parent 12). Top-level comments ("0.34") return 0.
func parentFromPath(path string) int64 {
	parts := strings.Split(path, ".")
	if len(parts) < 3 {
		return 0
	}
	id, err := strconv.ParseInt(parts[len(parts)-2], 10, 64)
	if err != nil {
		return 0
	}
	return id
}

func authorName(p lemmyPerson) string {
	if name := sanitizeForTerminal(strings.TrimSpace(p.DisplayName)); name != "" {
		return name
	}
	return sanitizeForTerminal(p.Name)
}

func myVote(v *int) domain.Vote {
	if v == nil {
		return domain.NoVote
	}
	switch {
	case *v > 0:
		return domain.Upvote
	case *v < 0:
		return domain.Downvote
	default:
		return domain.NoVote
	}
}

func mapComment(cv lemmyCommentView) domain.Comment {
	return domain.Comment{
		ID:        cv.Comment.ID,
		ParentID:  parentFromPath(cv.Comment.Path),
		Path:      cv.Comment.Path,
		PostID:    cv.Comment.PostID,
		Author:    authorName(cv.Creator),
		Content:   cleanText(cv.Comment.Content),
		Published: parseTime(cv.Comment.Published),
		Vote: domain.VoteState{
			MyVote:    myVote(cv.MyVote),
			Score:     cv.Counts.Score,
			Upvotes:   cv.Counts.Upvotes,
			Downvotes: cv.Counts.Downvotes,
		},
		Deleted:    cv.Comment.Deleted,
		Removed:    cv.Comment.Removed,
		Read:       cv.Read,
		ChildCount: cv.Counts.ChildCount,
	}
}

func mapComments(views []lemmyCommentView) []domain.Comment {
	out := make([]domain.Comment, 0, len(views))
	for _, cv := range views {
		out = append(out, mapComment(cv))
	}
	return out
}

func mapPost(pv lemmyPostView) domain.Post {
	return domain.Post{
		ID:        pv.Post.ID,
		Name:      cleanText(pv.Post.Name),
		URL:       sanitizeForTerminal(strings.TrimSpace(pv.Post.URL)),
		Author:    authorName(pv.Creator),
		Body:      cleanText(pv.Post.Body),
		Published: parseTime(pv.Post.Published),
		Community: domain.Community{
			ID:      pv.Community.ID,
			Name:    sanitizeForTerminal(pv.Community.Name),
			Deleted: pv.Community.Deleted,
			Removed: pv.Community.Removed,
		},
		Deleted: pv.Post.Deleted,
		Removed: pv.Post.Removed,
		Vote: domain.VoteState{
			MyVote:    myVote(pv.MyVote),
			Score:     pv.Counts.Score,
			Upvotes:   pv.Counts.Upvotes,
			Downvotes: pv.Counts.Downvotes,
		},
		Comments: pv.Counts.Comments,
	}
}
