package discussion

import (
	"context"
	"errors"
	"os/exec"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/CrestNiraj12/lemmyrant/app"
	"github.com/CrestNiraj12/lemmyrant/domain"
)

var base = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

type voteCall struct {
	id int64
	v  domain.Vote
}

type stubComments struct {
	page    []domain.Comment
	queries []app.CommentQuery
	votes   []voteCall
	voteErr error
	voted   domain.Comment
	created domain.Comment
	replies []string
}

func (s *stubComments) Comments(_ context.Context, q app.CommentQuery) ([]domain.Comment, error) {
	s.queries = append(s.queries, q)
	return s.page, nil
}

func (s *stubComments) CreateComment(_ context.Context, postID, parentID int64, content string) (domain.Comment, error) {
	s.replies = append(s.replies, content)
	c := s.created
	c.PostID, c.ParentID, c.Content = postID, parentID, content
	return c, nil
}

func (s *stubComments) VoteComment(_ context.Context, id int64, v domain.Vote) (domain.Comment, error) {
	s.votes = append(s.votes, voteCall{id: id, v: v})
	if s.voteErr != nil {
		return domain.Comment{}, s.voteErr
	}
	return s.voted, nil
}

type stubComposer struct {
	content string
}

func (s stubComposer) Cmd(string, string) (*exec.Cmd, string, error) {
	return exec.Command("true"), "", nil
}

func (s stubComposer) ReadContent(string) (string, error) {
	if s.content == "-" {
		return "", errors.New("unreadable")
	}
	return s.content, nil
}

func comment(id, parent int64, path string, minutes int) domain.Comment {
	return domain.Comment{
		ID:        id,
		ParentID:  parent,
		Path:      path,
		PostID:    9,
		Author:    "user" + string(rune('a'+id)),
		Content:   "text",
		Published: base.Add(time.Duration(minutes) * time.Minute),
		Vote:      domain.VoteState{Score: 10, Upvotes: 10},
	}
}

// sampleComments is a server-ordered page: 1 > 2 > 3 and a second root 4.
func sampleComments() []domain.Comment {
	return []domain.Comment{
		comment(1, 0, "0.1", 0),
		comment(2, 1, "0.1.2", 1),
		comment(3, 2, "0.1.2.3", 2),
		comment(4, 0, "0.4", 3),
	}
}

func loaded(t testing.TB, svc *stubComments, opts Options) Model {
	if opts.PostID == 0 && opts.ContextID == 0 {
		opts.PostID = 9
	}
	m := New(svc, nil, stubComposer{content: "hello"}, opts)
	m, _ = m.Update(CommentsLoadedMsg{key: m.key, flat: opts.Flat, Comments: sampleComments()})
	if m.Loading() {
		t.Fatalf("expected loading to finish")
	}
	return m
}

func keyPress(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func run(cmd tea.Cmd) tea.Msg {
	if cmd == nil {
		return nil
	}
	return cmd()
}

// collect runs cmd and any batch it expands to, returning the messages.
func collect(cmd tea.Cmd) []tea.Msg {
	msg := run(cmd)
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, collect(c)...)
		}
		return out
	}
	if msg == nil {
		return nil
	}
	return []tea.Msg{msg}
}
