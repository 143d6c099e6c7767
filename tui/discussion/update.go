package discussion

import (
	"errors"
	"log"
	"os"
	"slices"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/CrestNiraj12/lemmyrant/domain"
	"github.com/CrestNiraj12/lemmyrant/thread"
	"github.com/CrestNiraj12/lemmyrant/vote"
)

// Update handles messages for the thread view.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.viewport.Width = msg.Width
		m.viewport.Height = max(msg.Height-3, 1)
		m.syncViewport()
		return m, nil

	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case CommentsLoadedMsg:
		if !m.current(msg.key, "comment page") {
			return m, nil
		}
		if msg.flat != m.flat {
			// Fetched before the last tree/flat toggle.
			return m, nil
		}
		m.records = msg.Comments
		m.loading = false
		m.err = nil
		m.rebuild()
		if _, ok := m.forest.Search(m.selected); !ok {
			m.selected = firstID(m.forest)
		}
		m.syncViewport()
		return m, nil

	case CommentsErrorMsg:
		if !m.current(msg.key, "comment error") {
			return m, nil
		}
		m.loading = false
		m.err = msg.Err
		m.syncViewport()
		return m, nil

	case PostLoadedMsg:
		if !m.current(msg.key, "post") {
			return m, nil
		}
		if msg.Err != nil {
			m.status = "Could not load post: " + msg.Err.Error()
		} else {
			m.post = msg.Post
		}
		m.syncViewport()
		return m, nil

	case VoteResultMsg:
		if !m.current(msg.key, "vote result") {
			return m, nil
		}
		return m.handleVoteResult(msg), nil

	case ReplyEditedMsg:
		if !m.current(msg.key, "reply draft") {
			return m, nil
		}
		return m.handleReplyEdited(msg)

	case CommentCreatedMsg:
		if !m.current(msg.key, "created comment") {
			return m, nil
		}
		return m.handleCommentCreated(msg), nil

	case pollMsg:
		if msg.key != m.key {
			return m, nil
		}
		return m, m.fetchLive()

	case LiveCommentsMsg:
		if !m.current(msg.key, "live comments") {
			return m, nil
		}
		if msg.Err != nil {
			log.Printf("thread %d/%d: live poll failed: %v", msg.key.PostID, msg.key.ContextID, msg.Err)
		} else {
			m.applyLive(msg.Comments)
			m.syncViewport()
		}
		return m, m.schedulePoll()

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

// current reports whether a response belongs to this view. Stale responses
// from a previously opened thread are logged and dropped.
func (m Model) current(k viewKey, what string) bool {
	if k == m.key {
		return true
	}
	log.Printf("thread %d/%d: discarding stale %s for %d/%d", m.key.PostID, m.key.ContextID, what, k.PostID, k.ContextID)
	return false
}

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Back):
		return m, func() tea.Msg { return BackMsg{} }

	case key.Matches(msg, m.keys.Up):
		m.moveSelection(-1)
	case key.Matches(msg, m.keys.Down):
		m.moveSelection(1)

	case key.Matches(msg, m.keys.Refresh):
		m.loading = true
		m.status = ""
		m.syncViewport()
		return m, tea.Batch(m.fetchComments(), m.spinner.Tick)

	case key.Matches(msg, m.keys.ToggleFlat):
		// The flat view shows the server's newest-first page as is, the
		// tree view the page in the chosen sort, so each toggle refetches.
		m.flat = !m.flat
		m.loading = true
		m.rebuild()
		m.syncViewport()
		flat := m.flat
		return m, tea.Batch(
			func() tea.Msg { return FlatChangedMsg{Flat: flat} },
			m.fetchComments(),
			m.spinner.Tick,
		)

	case key.Matches(msg, m.keys.Upvote):
		return m.castVote(domain.Upvote)
	case key.Matches(msg, m.keys.Downvote):
		return m.castVote(domain.Downvote)

	case key.Matches(msg, m.keys.Reply):
		c, ok := m.Selected()
		if !ok {
			return m, nil
		}
		return m, m.openEditor(c.ID, replyQuote(c))

	case key.Matches(msg, m.keys.ReplyPost):
		return m, m.openEditor(0, m.post.Name)

	case key.Matches(msg, m.keys.Context):
		c, ok := m.Selected()
		if !ok || c.ID == m.key.ContextID {
			return m, nil
		}
		post := m.post
		return m, func() tea.Msg { return OpenContextMsg{Post: post, CommentID: c.ID} }

	case key.Matches(msg, m.keys.ToggleHints):
		m.showHints = !m.showHints
	}
	m.syncViewport()
	return m, nil
}

func (m Model) castVote(dir domain.Vote) (Model, tea.Cmd) {
	c, ok := m.Selected()
	if !ok {
		return m, nil
	}
	if c.Deleted || c.Removed {
		m.status = "Cannot vote on a deleted comment."
		m.syncViewport()
		return m, nil
	}
	prev, ok := m.forest.ApplyVote(c.ID, dir)
	if !ok {
		return m, nil
	}
	p := m.pending[c.ID]
	if p == nil {
		p = &pendingVote{settled: prev}
		m.pending[c.ID] = p
	}
	p.seq++
	p.inflight++
	p.latestDone = false

	m.syncRecord(c.ID)
	m.status = ""
	m.syncViewport()
	return m, m.sendVote(c.ID, vote.Target(prev.MyVote, dir), p.seq)
}

// handleVoteResult settles one vote request. Only once the newest request
// for the comment has answered does the view leave its optimistic state:
// it then shows the last state the server confirmed, which is the state
// before the first request when every request failed.
func (m Model) handleVoteResult(msg VoteResultMsg) Model {
	p := m.pending[msg.CommentID]
	if p == nil {
		log.Printf("thread %d: vote result for comment %d without a pending request", m.key.PostID, msg.CommentID)
		return m
	}
	p.inflight--
	if msg.seq == p.seq {
		p.latestDone = true
	}

	if msg.Err != nil {
		log.Printf("thread %d: vote %d on comment %d failed: %v", m.key.PostID, msg.seq, msg.CommentID, msg.Err)
		if errors.Is(msg.Err, domain.ErrUnauthorized) {
			m.status = "Log in to vote (set LEMMYRANT_USER and LEMMYRANT_PASSWORD)."
		} else {
			m.status = "Vote failed: " + msg.Err.Error()
		}
	} else {
		p.settled = msg.Comment.Vote
	}

	if p.latestDone {
		m.forest.Apply(domain.VoteUpdate(msg.CommentID, p.settled), m.ContextMode())
		m.syncRecord(msg.CommentID)
	}
	if p.inflight <= 0 {
		delete(m.pending, msg.CommentID)
	}
	m.syncViewport()
	return m
}

func (m Model) handleReplyEdited(msg ReplyEditedMsg) (Model, tea.Cmd) {
	if msg.Path != "" {
		defer os.Remove(msg.Path)
	}
	if msg.Err != nil {
		m.status = "Editor error: " + msg.Err.Error()
		m.syncViewport()
		return m, nil
	}
	content, err := m.editor.ReadContent(msg.Path)
	if err != nil {
		m.status = "Reading reply: " + err.Error()
		m.syncViewport()
		return m, nil
	}
	if content == "" {
		m.status = "Reply cancelled."
		m.syncViewport()
		return m, nil
	}
	postID := m.postID()
	if postID == 0 {
		m.status = "Thread not loaded yet."
		m.syncViewport()
		return m, nil
	}
	m.status = "Sending reply..."
	m.syncViewport()
	return m, m.createComment(postID, msg.ParentID, content)
}

func (m Model) handleCommentCreated(msg CommentCreatedMsg) Model {
	switch {
	case errors.Is(msg.Err, domain.ErrUnauthorized):
		m.status = "Log in to reply (set LEMMYRANT_USER and LEMMYRANT_PASSWORD)."
	case errors.Is(msg.Err, domain.ErrEmptyComment):
		m.status = "Reply cancelled."
	case msg.Err != nil:
		m.status = "Reply failed: " + msg.Err.Error()
	default:
		if m.addComment(msg.Comment) {
			m.selected = msg.Comment.ID
			m.status = "Reply posted."
		} else {
			m.status = "Reply posted outside this view."
		}
	}
	m.syncViewport()
	return m
}

// applyLive folds a page of newest comments into the view. Unseen comments
// are inserted oldest first so each lands after any parent from the same
// page and the newest ends up first. Known comments pick up edits and
// deletions.
func (m *Model) applyLive(comments []domain.Comment) {
	batch := slices.Clone(comments)
	slices.SortStableFunc(batch, func(a, b domain.Comment) int {
		return a.Published.Compare(b.Published)
	})
	for _, c := range batch {
		idx := m.recordIndex(c.ID)
		if idx < 0 {
			m.addComment(c)
			continue
		}
		old := m.records[idx]
		if old.Content == c.Content && old.Deleted == c.Deleted && old.Removed == c.Removed {
			continue
		}
		c.Vote = old.Vote
		m.records[idx] = c
		if m.flat {
			m.rebuild()
		} else {
			m.forest.Apply(domain.EditCommentUpdate(c), m.ContextMode())
		}
	}
	if m.selected == 0 {
		m.selected = firstID(m.forest)
	}
}

// addComment shows a new comment and records it. A comment the tree could
// not attach is dropped in both modes, so toggling the view never changes
// which live comments exist.
func (m *Model) addComment(c domain.Comment) bool {
	if m.recordIndex(c.ID) >= 0 {
		return false
	}
	if m.flat {
		if !m.attachable(c) {
			return false
		}
		m.records = slices.Insert(m.records, 0, c)
		m.rebuild()
		return true
	}
	if !m.forest.Apply(domain.NewCommentUpdate(c), m.ContextMode()) {
		return false
	}
	m.records = slices.Insert(m.records, 0, c)
	return true
}

// rebuild recreates the forest from the records for the current mode.
func (m *Model) rebuild() {
	switch {
	case m.flat:
		m.forest = thread.Flatten(m.records)
	case m.ContextMode():
		m.forest = thread.BuildContext(m.records, m.key.ContextID)
	default:
		m.forest = thread.Build(m.records)
	}
}

// attachable reports whether Insert would accept c in tree mode: a reply
// needs its parent among the records, and a context view takes no new
// top-level comments.
func (m Model) attachable(c domain.Comment) bool {
	if c.HasParent() {
		return m.recordIndex(c.ParentID) >= 0
	}
	return !m.ContextMode()
}

// syncRecord copies the forest's vote state for id back into the records
// so a later rebuild keeps it.
func (m *Model) syncRecord(id int64) {
	n, ok := m.forest.Search(id)
	if !ok {
		return
	}
	if idx := m.recordIndex(id); idx >= 0 {
		m.records[idx].Vote = n.Comment.Vote
	}
}

func (m Model) recordIndex(id int64) int {
	return slices.IndexFunc(m.records, func(c domain.Comment) bool { return c.ID == id })
}

func (m *Model) moveSelection(delta int) {
	ids := m.forest.IDs()
	if len(ids) == 0 {
		return
	}
	i := slices.Index(ids, m.selected)
	if i < 0 {
		m.selected = ids[0]
		return
	}
	i = min(max(i+delta, 0), len(ids)-1)
	m.selected = ids[i]
}

func firstID(f *thread.Forest) int64 {
	for n := range f.All() {
		return n.ID()
	}
	return 0
}
