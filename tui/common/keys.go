package common

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines shared key bindings across all views.
type KeyMap struct {
	Quit        key.Binding
	Back        key.Binding
	Refresh     key.Binding
	Up          key.Binding
	Down        key.Binding
	Open        key.Binding // enter: open thread
	Context     key.Binding // o: permalink view of selected comment
	Upvote      key.Binding // u
	Downvote    key.Binding // d
	Reply       key.Binding // c: reply to selected comment via $EDITOR
	ReplyPost   key.Binding // C: top-level reply to the post
	ToggleFlat  key.Binding // f: tree / chronological
	ToggleDupes key.Binding // x: expand crossposts
	ToggleHints key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "backspace"),
			key.WithHelp("esc", "back"),
		),
		Refresh: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "refresh"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Open: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "open"),
		),
		Context: key.NewBinding(
			key.WithKeys("o"),
			key.WithHelp("o", "context"),
		),
		Upvote: key.NewBinding(
			key.WithKeys("u", "+"),
			key.WithHelp("u", "upvote"),
		),
		Downvote: key.NewBinding(
			key.WithKeys("d", "-"),
			key.WithHelp("d", "downvote"),
		),
		Reply: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "reply"),
		),
		ReplyPost: key.NewBinding(
			key.WithKeys("C"),
			key.WithHelp("C", "reply to post"),
		),
		ToggleFlat: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("f", "tree/flat"),
		),
		ToggleDupes: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "crossposts"),
		),
		ToggleHints: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "hints"),
		),
	}
}

// ShortHelp renders the hint line for the given bindings.
func ShortHelp(bindings ...key.Binding) string {
	var out string
	for i, b := range bindings {
		if !b.Enabled() {
			continue
		}
		h := b.Help()
		if i > 0 && out != "" {
			out += " • "
		}
		out += h.Key + " " + h.Desc
	}
	return out
}
