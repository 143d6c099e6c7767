package discussion

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/x/ansi"

	"github.com/CrestNiraj12/lemmyrant/domain"
	"github.com/CrestNiraj12/lemmyrant/thread"
	"github.com/CrestNiraj12/lemmyrant/tui/common"
)

// View renders the thread view.
func (m Model) View() string {
	var b strings.Builder
	b.WriteString(m.viewport.View())
	b.WriteString("\n")
	b.WriteString(m.footer())
	return b.String()
}

func (m Model) footer() string {
	var line string
	switch {
	case m.loading:
		line = m.spinner.View() + " Loading comments..."
	case m.err != nil:
		return common.ErrorStyle.Render("Error: " + m.err.Error())
	case m.status != "":
		line = m.status
	default:
		mode := "tree"
		if m.flat {
			mode = "flat"
		}
		line = fmt.Sprintf("%d comments · %s · ? for keys", m.forest.Len(), mode)
	}
	if m.showHints {
		k := m.keys
		line += "\n" + common.ShortHelp(k.Up, k.Down, k.Upvote, k.Downvote, k.Reply, k.ReplyPost, k.Context, k.ToggleFlat, k.Refresh, k.Back)
	}
	return common.StatusBarStyle.Render(common.Truncate(line, max(m.width, 1)))
}

// syncViewport re-renders the content and scrolls so the selected comment
// is visible.
func (m *Model) syncViewport() {
	content, top, bottom := m.render()
	m.viewport.SetContent(content)
	if top < 0 {
		return
	}
	if top < m.viewport.YOffset {
		m.viewport.SetYOffset(top)
	} else if bottom >= m.viewport.YOffset+m.viewport.Height {
		m.viewport.SetYOffset(bottom - m.viewport.Height + 1)
	}
}

// render returns the scrollable content and the line span of the selected
// comment, or -1 when nothing is selected.
func (m Model) render() (string, int, int) {
	var lines []string
	lines = append(lines, m.header()...)

	top, bottom := -1, -1
	if m.forest.Len() == 0 && !m.loading && m.err == nil {
		lines = append(lines, "", common.MutedStyle.Render("  No comments yet. Press C to start the discussion."))
	}
	for n := range m.forest.All() {
		lines = append(lines, "")
		start := len(lines)
		lines = append(lines, m.renderNode(n)...)
		if n.ID() == m.selected {
			top, bottom = start, len(lines)-1
		}
	}
	return strings.Join(lines, "\n"), top, bottom
}

func (m Model) header() []string {
	width := max(m.width-2, 10)
	var lines []string
	title := m.post.Name
	if title == "" {
		title = fmt.Sprintf("Post %d", m.postID())
	}
	lines = append(lines, common.AppTitleStyle.Render(common.Truncate(title, width)))

	var meta []string
	if m.post.Community.Name != "" {
		meta = append(meta, common.CommunityStyle.Render("!"+m.post.Community.Name))
	}
	if m.post.Author != "" {
		meta = append(meta, common.AuthorStyle.Render(m.post.Author))
	}
	if age := common.RelativeTime(m.post.Published, m.now()); age != "" {
		meta = append(meta, common.TimestampStyle.Render(age))
	}
	if len(meta) > 0 {
		lines = append(lines, " "+strings.Join(meta, " · "))
	}
	if m.post.URL != "" {
		lines = append(lines, common.TaglineStyle.Render(common.Truncate(m.post.URL, width)))
	}
	if body := strings.TrimSpace(m.post.Body); body != "" && !m.ContextMode() {
		for _, ln := range common.Wrap(body, width) {
			lines = append(lines, " "+common.ContentStyle.Render(ln))
		}
	}
	if m.ContextMode() {
		lines = append(lines, common.TaglineStyle.Render("Single comment thread · esc for the full discussion"))
	}
	return lines
}

func (m Model) renderNode(n *thread.Node) []string {
	c := n.Comment
	marker := "  "
	if n.ID() == m.selected {
		marker = common.CursorStyle.Render("▌ ")
	}
	guide := common.ThreadGuideStyle.Render(common.Guide(n.Depth))
	prefix := marker + guide
	width := max(m.width-ansi.StringWidth(prefix), 10)

	meta := []string{common.AuthorStyle.Render(c.Author), renderScore(c.Vote)}
	if age := common.RelativeTime(c.Published, m.now()); age != "" {
		meta = append(meta, common.TimestampStyle.Render(age))
	}
	if m.flat && c.HasParent() {
		meta = append(meta, common.MutedStyle.Render("reply"))
	}
	if !m.flat && n.NumChildren() == 0 && c.ChildCount > 0 {
		// Replies below the loaded depth.
		meta = append(meta, common.BadgeStyle.Render(fmt.Sprintf("+%d replies (o)", c.ChildCount)))
	}
	lines := []string{prefix + strings.Join(meta, " · ")}

	var body []string
	switch {
	case c.Removed:
		body = []string{common.MutedStyle.Render("[removed by moderator]")}
	case c.Deleted:
		body = []string{common.MutedStyle.Render("[deleted]")}
	default:
		for _, ln := range common.Wrap(c.Content, width) {
			body = append(body, common.ContentStyle.Render(ln))
		}
	}
	for _, ln := range body {
		lines = append(lines, prefix+ln)
	}
	return lines
}

func renderScore(v domain.VoteState) string {
	switch v.MyVote {
	case domain.Upvote:
		return common.UpvotedStyle.Render(fmt.Sprintf("▲ %d", v.Score))
	case domain.Downvote:
		return common.DownvotedStyle.Render(fmt.Sprintf("▼ %d", v.Score))
	default:
		return common.ScoreStyle.Render(fmt.Sprintf("◆ %d", v.Score))
	}
}
