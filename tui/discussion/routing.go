package discussion

import tea "github.com/charmbracelet/bubbletea"

// response is implemented by every message produced by a thread view's
// commands.
type response interface {
	target() viewKey
}

func (msg CommentsLoadedMsg) target() viewKey { return msg.key }
func (msg CommentsErrorMsg) target() viewKey  { return msg.key }
func (msg PostLoadedMsg) target() viewKey     { return msg.key }
func (msg VoteResultMsg) target() viewKey     { return msg.key }
func (msg ReplyEditedMsg) target() viewKey    { return msg.key }
func (msg CommentCreatedMsg) target() viewKey { return msg.key }
func (msg LiveCommentsMsg) target() viewKey   { return msg.key }
func (msg pollMsg) target() viewKey           { return msg.key }

// IsResponse reports whether msg answers a command issued by some thread view.
func IsResponse(msg tea.Msg) bool {
	_, ok := msg.(response)
	return ok
}

// Owns reports whether msg answers a command issued by this view.
func (m Model) Owns(msg tea.Msg) bool {
	r, ok := msg.(response)
	return ok && r.target() == m.key
}
