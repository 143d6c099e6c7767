package posts

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/CrestNiraj12/lemmyrant/app"
	"github.com/CrestNiraj12/lemmyrant/domain"
	"github.com/CrestNiraj12/lemmyrant/listing"
	"github.com/CrestNiraj12/lemmyrant/tui/common"
)

const defaultLimit = 20

// --- Messages ---

// PostsLoadedMsg is sent when the listing fetch completes successfully.
type PostsLoadedMsg struct {
	Community string
	Posts     []domain.Post
}

// PostsErrorMsg is sent when the listing fetch fails.
type PostsErrorMsg struct {
	Community string
	Err       error
}

// OpenPostMsg asks the parent to open a post's discussion.
type OpenPostMsg struct {
	Post domain.Post
}

// --- Model ---

// Model holds the state for the post listing.
type Model struct {
	posts     app.PostService
	community string
	groups    listing.Groups
	cursor    int
	expanded  map[int64]bool
	loading   bool
	err       error
	showHints bool
	keys      common.KeyMap
	spinner   spinner.Model
	viewport  viewport.Model
	width     int
	now       func() time.Time
}

// New creates a listing model for a community ("" lists all communities).
func New(posts app.PostService, community string) Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("#00BC8C"))

	return Model{
		posts:     posts,
		community: community,
		expanded:  make(map[int64]bool),
		loading:   true,
		keys:      common.DefaultKeyMap(),
		spinner:   s,
		viewport:  viewport.New(80, 21),
		width:     80,
		now:       time.Now,
	}
}

// Init starts the initial listing fetch.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.fetchPosts(), m.spinner.Tick)
}

func (m Model) fetchPosts() tea.Cmd {
	svc, community := m.posts, m.community
	return func() tea.Msg {
		posts, err := svc.Posts(context.Background(), app.PostQuery{
			Community: community,
			Sort:      app.PostSortActive,
			Limit:     defaultLimit,
		})
		if err != nil {
			return PostsErrorMsg{Community: community, Err: err}
		}
		return PostsLoadedMsg{Community: community, Posts: posts}
	}
}

// Community returns the listed community name.
func (m Model) Community() string {
	return m.community
}

// Groups returns the grouped listing.
func (m Model) Groups() listing.Groups {
	return m.groups
}

// SelectedPost returns the post under the cursor.
func (m Model) SelectedPost() (domain.Post, bool) {
	if m.cursor < 0 || m.cursor >= len(m.groups.Primary) {
		return domain.Post{}, false
	}
	return m.groups.Primary[m.cursor], true
}

// Update handles messages for the listing.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.viewport.Width = msg.Width
		m.viewport.Height = max(msg.Height-3, 1)

	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case PostsLoadedMsg:
		if msg.Community != m.community {
			return m, nil
		}
		m.groups = listing.GroupDuplicates(msg.Posts)
		m.loading = false
		m.err = nil
		m.cursor = 0
		clear(m.expanded)
		m.viewport.GotoTop()

	case PostsErrorMsg:
		if msg.Community != m.community {
			return m, nil
		}
		m.err = msg.Err
		m.loading = false

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Refresh):
			m.loading = true
			return m, tea.Batch(m.fetchPosts(), m.spinner.Tick)
		case key.Matches(msg, m.keys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
		case key.Matches(msg, m.keys.Down):
			if m.cursor < len(m.groups.Primary)-1 {
				m.cursor++
			}
		case key.Matches(msg, m.keys.ToggleDupes):
			if p, ok := m.SelectedPost(); ok && len(m.groups.Duplicates(p.ID)) > 0 {
				m.expanded[p.ID] = !m.expanded[p.ID]
			}
		case key.Matches(msg, m.keys.Open):
			if p, ok := m.SelectedPost(); ok {
				return m, func() tea.Msg { return OpenPostMsg{Post: p} }
			}
		case key.Matches(msg, m.keys.ToggleHints):
			m.showHints = !m.showHints
		}
	}
	m.syncViewport()
	return m, nil
}

// View renders the listing.
func (m Model) View() string {
	return m.viewport.View() + "\n" + m.footer()
}

func (m Model) footer() string {
	var line string
	switch {
	case m.loading:
		line = m.spinner.View() + " Loading posts..."
	case m.err != nil:
		return common.ErrorStyle.Render("Error: " + m.err.Error())
	default:
		line = fmt.Sprintf("%d posts · ? for keys", len(m.groups.Primary))
	}
	if m.showHints {
		k := m.keys
		line += "\n" + common.ShortHelp(k.Up, k.Down, k.Open, k.ToggleDupes, k.Refresh, k.Quit)
	}
	return common.StatusBarStyle.Render(common.Truncate(line, max(m.width, 1)))
}

func (m *Model) syncViewport() {
	content, top, bottom := m.render()
	m.viewport.SetContent(content)
	if top < m.viewport.YOffset {
		m.viewport.SetYOffset(top)
	} else if bottom >= m.viewport.YOffset+m.viewport.Height {
		m.viewport.SetYOffset(bottom - m.viewport.Height + 1)
	}
}

func (m Model) render() (string, int, int) {
	name := "All communities"
	if m.community != "" {
		name = "!" + m.community
	}
	lines := []string{common.AppTitleStyle.Render("lemmyrant ") + common.CommunityStyle.Render(name)}
	top, bottom := 0, 0
	width := max(m.width-4, 10)
	for i, p := range m.groups.Primary {
		lines = append(lines, "")
		start := len(lines)
		marker := "  "
		if i == m.cursor {
			marker = common.CursorStyle.Render("▌ ")
		}
		lines = append(lines, marker+common.ContentStyle.Render(common.Truncate(p.Name, width)))

		meta := m.meta(p)
		dupes := m.groups.Duplicates(p.ID)
		if len(dupes) > 0 {
			meta += common.BadgeStyle.Render(fmt.Sprintf("+%d crossposts", len(dupes)))
		}
		lines = append(lines, marker+meta)
		if m.expanded[p.ID] {
			for _, d := range dupes {
				lines = append(lines, marker+common.ThreadGuideStyle.Render("  ↳ ")+m.meta(d))
			}
		}
		if i == m.cursor {
			top, bottom = start, len(lines)-1
		}
	}
	if len(m.groups.Primary) == 0 && !m.loading && m.err == nil {
		lines = append(lines, "", common.MutedStyle.Render("  Nothing here yet."))
	}
	return strings.Join(lines, "\n"), top, bottom
}

func (m Model) meta(p domain.Post) string {
	parts := []string{
		common.CommunityStyle.Render("!" + p.Community.Name),
		common.AuthorStyle.Render(p.Author),
		common.ScoreStyle.Render(fmt.Sprintf("◆ %d", p.Vote.Score)),
		common.TimestampStyle.Render(fmt.Sprintf("%d comments", p.Comments)),
	}
	if age := common.RelativeTime(p.Published, m.now()); age != "" {
		parts = append(parts, common.TimestampStyle.Render(age))
	}
	return strings.Join(parts, " · ")
}
