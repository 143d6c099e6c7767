package discussion

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/CrestNiraj12/lemmyrant/app"
	"github.com/CrestNiraj12/lemmyrant/domain"
)

func (m Model) query(sort app.CommentSort, limit int) app.CommentQuery {
	q := app.CommentQuery{
		PostID:   m.key.PostID,
		ParentID: m.key.ContextID,
		Sort:     sort,
		Limit:    limit,
	}
	if q.ParentID != 0 {
		// The parent filter already scopes the page.
		q.PostID = 0
	}
	if !m.flat {
		q.MaxDepth = treeMaxDepth
	}
	return q
}

// pageSort is the order requested for a full page: newest first in the
// flat view, the chosen sort in the tree.
func (m Model) pageSort() app.CommentSort {
	if m.flat {
		return app.CommentSortNew
	}
	return m.sort
}

func (m Model) fetchComments() tea.Cmd {
	svc, key, flat, q := m.comments, m.key, m.flat, m.query(m.pageSort(), pageLimit)
	return func() tea.Msg {
		comments, err := svc.Comments(context.Background(), q)
		if err != nil {
			return CommentsErrorMsg{key: key, Err: err}
		}
		return CommentsLoadedMsg{key: key, flat: flat, Comments: comments}
	}
}

func (m Model) fetchPost(id int64) tea.Cmd {
	svc, key := m.posts, m.key
	if svc == nil {
		return nil
	}
	return func() tea.Msg {
		p, err := svc.Post(context.Background(), id)
		return PostLoadedMsg{key: key, Post: p, Err: err}
	}
}

func (m Model) schedulePoll() tea.Cmd {
	if m.poll <= 0 {
		return nil
	}
	key := m.key
	return tea.Tick(m.poll, func(time.Time) tea.Msg {
		return pollMsg{key: key}
	})
}

func (m Model) fetchLive() tea.Cmd {
	svc, key := m.comments, m.key
	q := m.query(app.CommentSortNew, liveLimit)
	q.MaxDepth = 0
	return func() tea.Msg {
		comments, err := svc.Comments(context.Background(), q)
		return LiveCommentsMsg{key: key, Comments: comments, Err: err}
	}
}

func (m Model) sendVote(id int64, target domain.Vote, seq uint64) tea.Cmd {
	svc, key := m.comments, m.key
	return func() tea.Msg {
		c, err := svc.VoteComment(context.Background(), id, target)
		return VoteResultMsg{key: key, seq: seq, CommentID: id, Comment: c, Err: err}
	}
}

func (m Model) openEditor(parentID int64, replyTo string) tea.Cmd {
	key := m.key
	if m.editor == nil {
		return func() tea.Msg {
			return ReplyEditedMsg{key: key, ParentID: parentID, Err: fmt.Errorf("no editor configured")}
		}
	}
	cmd, tmpPath, err := m.editor.Cmd("", replyTo)
	if err != nil {
		return func() tea.Msg {
			return ReplyEditedMsg{key: key, ParentID: parentID, Err: fmt.Errorf("preparing editor: %w", err)}
		}
	}
	return tea.ExecProcess(cmd, func(err error) tea.Msg {
		return ReplyEditedMsg{key: key, ParentID: parentID, Path: tmpPath, Err: err}
	})
}

func (m Model) createComment(postID, parentID int64, content string) tea.Cmd {
	svc, key := m.comments, m.key
	return func() tea.Msg {
		c, err := svc.CreateComment(context.Background(), postID, parentID, content)
		return CommentCreatedMsg{key: key, Comment: c, Err: err}
	}
}

func replyQuote(c domain.Comment) string {
	content := strings.TrimSpace(c.Content)
	if c.Deleted || c.Removed || content == "" {
		return "@" + c.Author
	}
	return "@" + c.Author + ": " + content
}
