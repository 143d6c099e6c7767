package discussion

import (
	"os/exec"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/CrestNiraj12/lemmyrant/app"
	"github.com/CrestNiraj12/lemmyrant/domain"
	"github.com/CrestNiraj12/lemmyrant/thread"
	"github.com/CrestNiraj12/lemmyrant/tui/common"
)

const (
	pageLimit     = 50
	treeMaxDepth  = 8
	liveLimit     = 20
	defaultWidth  = 80
	defaultHeight = 24
)

// Composer prepares an external editor session for a reply.
type Composer interface {
	Cmd(content, replyTo string) (*exec.Cmd, string, error)
	ReadContent(path string) (string, error)
}

// Options selects what the thread view shows.
type Options struct {
	Post         domain.Post // may be zero; fetched by PostID when so
	PostID       int64
	ContextID    int64 // non-zero opens the permalink view of this comment
	Flat         bool
	Sort         app.CommentSort
	PollInterval time.Duration
}

// viewKey identifies one opened thread view. Responses carrying another key
// are stale.
type viewKey struct {
	PostID    int64
	ContextID int64
	Session   uint64
}

var sessions atomic.Uint64

// pendingVote tracks the vote requests in flight for one comment. settled is
// the last state the server confirmed, or the state before the first
// request when none has answered yet.
type pendingVote struct {
	seq        uint64 // newest request
	inflight   int
	settled    domain.VoteState
	latestDone bool
}

// --- Messages ---

// CommentsLoadedMsg carries a freshly fetched comment page.
type CommentsLoadedMsg struct {
	key      viewKey
	flat     bool
	Comments []domain.Comment
}

// CommentsErrorMsg is sent when the comment page fetch fails.
type CommentsErrorMsg struct {
	key viewKey
	Err error
}

// PostLoadedMsg carries the post header for threads opened by id.
type PostLoadedMsg struct {
	key  viewKey
	Post domain.Post
	Err  error
}

// VoteResultMsg is sent after a vote request.
type VoteResultMsg struct {
	key       viewKey
	seq       uint64
	CommentID int64
	Comment   domain.Comment
	Err       error
}

// ReplyEditedMsg is sent when the reply editor exits.
type ReplyEditedMsg struct {
	key      viewKey
	ParentID int64
	Path     string
	Err      error
}

// CommentCreatedMsg is sent after a reply was submitted.
type CommentCreatedMsg struct {
	key     viewKey
	Comment domain.Comment
	Err     error
}

// LiveCommentsMsg carries the newest comments fetched by the poller.
type LiveCommentsMsg struct {
	key      viewKey
	Comments []domain.Comment
	Err      error
}

type pollMsg struct {
	key viewKey
}

// BackMsg asks the parent to close this view.
type BackMsg struct{}

// OpenContextMsg asks the parent to open the permalink view of a comment.
type OpenContextMsg struct {
	Post      domain.Post
	CommentID int64
}

// FlatChangedMsg reports the tree/flat toggle so it can be remembered.
type FlatChangedMsg struct {
	Flat bool
}

// --- Model ---

// Model holds the state for one open thread.
type Model struct {
	comments app.CommentService
	posts    app.PostService
	editor   Composer
	key      viewKey
	post     domain.Post
	sort     app.CommentSort
	poll     time.Duration
	flat     bool

	records  []domain.Comment // server records backing the forest, newest live ones first
	forest   *thread.Forest
	selected int64
	pending  map[int64]*pendingVote

	loading   bool
	err       error
	status    string
	showHints bool
	keys      common.KeyMap
	spinner   spinner.Model
	viewport  viewport.Model
	width     int
	height    int
	now       func() time.Time
}

// New creates a thread model with injected dependencies.
func New(comments app.CommentService, posts app.PostService, ed Composer, opts Options) Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("#00BC8C"))

	postID := opts.PostID
	if postID == 0 {
		postID = opts.Post.ID
	}
	sort := opts.Sort
	if sort == "" {
		sort = app.CommentSortHot
	}

	m := Model{
		comments: comments,
		posts:    posts,
		editor:   ed,
		key:      viewKey{PostID: postID, ContextID: opts.ContextID, Session: sessions.Add(1)},
		post:     opts.Post,
		sort:     sort,
		poll:     opts.PollInterval,
		flat:     opts.Flat,
		forest:   &thread.Forest{},
		pending:  make(map[int64]*pendingVote),
		loading:  true,
		keys:     common.DefaultKeyMap(),
		spinner:  s,
		viewport: viewport.New(defaultWidth, defaultHeight-3),
		width:    defaultWidth,
		height:   defaultHeight,
		now:      time.Now,
	}
	m.syncViewport()
	return m
}

// Init starts the comment fetch, the spinner and the live poller.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.fetchComments(), m.spinner.Tick, m.schedulePoll()}
	if m.post.ID == 0 && m.key.PostID != 0 {
		cmds = append(cmds, m.fetchPost(m.key.PostID))
	}
	return tea.Batch(cmds...)
}

// ContextMode reports whether the view shows a single comment's subtree.
func (m Model) ContextMode() bool {
	return m.key.ContextID != 0
}

// Flat reports whether comments are shown chronologically without nesting.
func (m Model) Flat() bool {
	return m.flat
}

// Post returns the post this thread belongs to, if known.
func (m Model) Post() domain.Post {
	return m.post
}

// Forest returns the displayed forest.
func (m Model) Forest() *thread.Forest {
	return m.forest
}

// Loading reports whether the initial fetch is in flight.
func (m Model) Loading() bool {
	return m.loading
}

// Err returns the last load error.
func (m Model) Err() error {
	return m.err
}

// Status returns the transient status line.
func (m Model) Status() string {
	return m.status
}

// Selected returns the highlighted comment, if any.
func (m Model) Selected() (domain.Comment, bool) {
	if n, ok := m.forest.Search(m.selected); ok {
		return n.Comment, true
	}
	return domain.Comment{}, false
}

// postID returns the id replies are filed under. Permalink views opened
// from a comment id learn it from the loaded records.
func (m Model) postID() int64 {
	if m.key.PostID != 0 {
		return m.key.PostID
	}
	if m.post.ID != 0 {
		return m.post.ID
	}
	for _, c := range m.records {
		if c.PostID != 0 {
			return c.PostID
		}
	}
	return 0
}
