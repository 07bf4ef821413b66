package components

import (
	"strings"

	"github.com/charmbracelet/x/ansi"

	"gitlab.com/tinyland/lab/pulse-ui/pkg/theme"
)

// Ellipsis is the tail appended by Truncate.
const Ellipsis = "\u2026" // …

// Heading renders bold title-coloured text.
func Heading(text string, t theme.Theme) string {
	t = resolve(t)
	return fg(t.Title).Bold(true).Render(text)
}

// Caption renders muted secondary text.
func Caption(text string, t theme.Theme) string {
	t = resolve(t)
	return fg(t.Muted).Render(text)
}

// VisibleLen returns the width of s in terminal cells, ignoring ANSI
// sequences and counting wide runes as two.
func VisibleLen(s string) int {
	return ansi.StringWidth(s)
}

// Strip removes ANSI escape sequences.
func Strip(s string) string {
	return ansi.Strip(s)
}

// Truncate shortens s to maxWidth cells, ending in an ellipsis when cut.
func Truncate(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	return ansi.Truncate(s, maxWidth, Ellipsis)
}

// PadRight pads s with trailing spaces up to width cells. Wider strings are
// returned unchanged.
func PadRight(s string, width int) string {
	vis := VisibleLen(s)
	if vis >= width {
		return s
	}
	return s + strings.Repeat(" ", width-vis)
}

// PadCenter centres s within width cells; an odd leftover space goes on the
// right.
func PadCenter(s string, width int) string {
	vis := VisibleLen(s)
	if vis >= width {
		return s
	}
	left := (width - vis) / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", width-vis-left)
}

// Fit truncates or pads s to exactly width cells.
func Fit(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if VisibleLen(s) > width {
		return Truncate(s, width)
	}
	return PadRight(s, width)
}
