package common

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/x/ansi"
)

// maxGuideDepth caps the visible indentation so deep threads keep some
// width for text.
const maxGuideDepth = 8

// Guide returns the indentation drawn before a reply at depth.
func Guide(depth int) string {
	if depth <= 0 {
		return ""
	}
	shown := min(depth, maxGuideDepth)
	return strings.Repeat("│ ", shown)
}

// Wrap wraps text to width cells, then hard-cuts lines that still overflow.
func Wrap(text string, width int) []string {
	if width < 1 {
		width = 1
	}
	lines := strings.Split(ansi.Wordwrap(text, width, ""), "\n")
	for i, ln := range lines {
		if ansi.StringWidth(ln) > width {
			lines[i] = ansi.Cut(ln, 0, width)
		}
	}
	return lines
}

// Truncate shortens s to width cells with a trailing ellipsis.
func Truncate(s string, width int) string {
	return ansi.Truncate(s, width, "…")
}

// RelativeTime renders a short age like "5m" or "3d".
func RelativeTime(t, now time.Time) string {
	if t.IsZero() {
		return ""
	}
	d := now.Sub(t)
	switch {
	case d < time.Minute:
		return "now"
	case d < time.Hour:
		return fmt.Sprintf("%dm", int(d.Minutes()))
	case d < 24*time.Hour:
		return fmt.Sprintf("%dh", int(d.Hours()))
	case d < 365*24*time.Hour:
		return fmt.Sprintf("%dd", int(d.Hours()/24))
	default:
		return fmt.Sprintf("%dy", int(d.Hours()/(24*365)))
	}
}
