package tui

import (
	"log"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/CrestNiraj12/lemmyrant/app"
	"github.com/CrestNiraj12/lemmyrant/infra/config"
	"github.com/CrestNiraj12/lemmyrant/tui/common"
	"github.com/CrestNiraj12/lemmyrant/tui/discussion"
	"github.com/CrestNiraj12/lemmyrant/tui/posts"
)

// Deps holds all dependencies the TUI needs. Plain struct, not a DI container.
type Deps struct {
	Comments     app.CommentService
	Posts        app.PostService
	Editor       discussion.Composer
	Community    string
	PollInterval time.Duration
	StatePath    string // empty disables saving UI state
	State        config.UIState

	// Start directly in a discussion instead of the listing.
	PostID    int64
	CommentID int64
}

// App is the root Bubble Tea model. It routes between the listing and a
// stack of open discussions.
type App struct {
	deps          Deps
	state         config.UIState
	listing       posts.Model
	listingLoaded bool
	threads       []discussion.Model // top is last
	keys          common.KeyMap
	size          tea.WindowSizeMsg
}

// NewApp creates the root model with all dependencies wired.
func NewApp(deps Deps) App {
	state := deps.State
	if deps.Community != "" {
		state.Community = deps.Community
	}
	return App{
		deps:    deps,
		state:   state,
		listing: posts.New(deps.Posts, state.Community),
		keys:    common.DefaultKeyMap(),

		listingLoaded: deps.PostID == 0 && deps.CommentID == 0,
	}
}

// Init opens the starting view.
func (a App) Init() tea.Cmd {
	switch {
	case a.deps.CommentID != 0:
		return a.openThreadCmd(discussion.Options{ContextID: a.deps.CommentID, PostID: a.deps.PostID})
	case a.deps.PostID != 0:
		return a.openThreadCmd(discussion.Options{PostID: a.deps.PostID})
	default:
		return a.listing.Init()
	}
}

type openThreadMsg struct {
	opts discussion.Options
}

func (a App) openThreadCmd(opts discussion.Options) tea.Cmd {
	return func() tea.Msg { return openThreadMsg{opts: opts} }
}

// Update handles messages and routes to the active sub-model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.size = msg
		a.listing, _ = a.listing.Update(msg)
		for i := range a.threads {
			a.threads[i], _ = a.threads[i].Update(msg)
		}
		return a, nil

	case tea.KeyMsg:
		if key.Matches(msg, a.keys.Quit) {
			a.saveState()
			return a, tea.Quit
		}
		if top := len(a.threads) - 1; top >= 0 {
			var cmd tea.Cmd
			a.threads[top], cmd = a.threads[top].Update(msg)
			return a, cmd
		}
		var cmd tea.Cmd
		a.listing, cmd = a.listing.Update(msg)
		return a, cmd

	case openThreadMsg:
		return a.pushThread(msg.opts)

	case posts.OpenPostMsg:
		return a.pushThread(discussion.Options{Post: msg.Post})

	case discussion.OpenContextMsg:
		return a.pushThread(discussion.Options{Post: msg.Post, PostID: msg.Post.ID, ContextID: msg.CommentID})

	case discussion.BackMsg:
		if len(a.threads) > 0 {
			a.threads = a.threads[:len(a.threads)-1]
		}
		if len(a.threads) == 0 && !a.listingLoaded {
			a.listingLoaded = true
			if a.size.Width > 0 {
				a.listing, _ = a.listing.Update(a.size)
			}
			return a, a.listing.Init()
		}
		return a, nil

	case discussion.FlatChangedMsg:
		a.state.FlatView = msg.Flat
		a.saveState()
		return a, nil
	}

	if discussion.IsResponse(msg) {
		return a.routeResponse(msg)
	}

	// Ticks and anything else reach every live view; each ignores what it
	// did not ask for.
	var cmds []tea.Cmd
	var cmd tea.Cmd
	a.listing, cmd = a.listing.Update(msg)
	cmds = append(cmds, cmd)
	for i := range a.threads {
		a.threads[i], cmd = a.threads[i].Update(msg)
		cmds = append(cmds, cmd)
	}
	return a, tea.Batch(cmds...)
}

// routeResponse hands a thread response to the view that issued it, or to
// the top view, which drops it as stale.
func (a App) routeResponse(msg tea.Msg) (tea.Model, tea.Cmd) {
	if len(a.threads) == 0 {
		log.Printf("tui: dropping thread response %T with no open thread", msg)
		return a, nil
	}
	target := len(a.threads) - 1
	for i := range a.threads {
		if a.threads[i].Owns(msg) {
			target = i
			break
		}
	}
	var cmd tea.Cmd
	a.threads[target], cmd = a.threads[target].Update(msg)
	return a, cmd
}

func (a App) pushThread(opts discussion.Options) (tea.Model, tea.Cmd) {
	opts.Flat = a.state.FlatView
	opts.Sort = app.CommentSort(a.state.CommentSort)
	opts.PollInterval = a.deps.PollInterval
	m := discussion.New(a.deps.Comments, a.deps.Posts, a.deps.Editor, opts)
	if a.size.Width > 0 {
		m, _ = m.Update(a.size)
	}
	a.threads = append(a.threads, m)
	return a, m.Init()
}

func (a App) saveState() {
	if a.deps.StatePath == "" {
		return
	}
	if err := config.SaveUIState(a.deps.StatePath, a.state); err != nil {
		log.Printf("tui: saving ui state: %v", err)
	}
}

// View renders the active sub-model.
func (a App) View() string {
	if top := len(a.threads) - 1; top >= 0 {
		return a.threads[top].View()
	}
	return a.listing.View()
}
