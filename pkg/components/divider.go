package components

import (
	"strings"

	"gitlab.com/tinyland/lab/pulse-ui/pkg/theme"
)

const dividerRune = "\u2500" // ─

// Divider is a horizontal rule, optionally with a label near the left end.
type Divider struct {
	Width int
	Label string
	Theme theme.Theme
}

// View renders the rule at exactly Width cells.
func (d Divider) View() string {
	if d.Width <= 0 {
		return ""
	}
	t := resolve(d.Theme)
	line := fg(t.Border)

	if d.Label == "" || d.Width < VisibleLen(d.Label)+4 {
		return line.Render(strings.Repeat(dividerRune, d.Width))
	}
	label := " " + d.Label + " "
	rest := d.Width - 2 - VisibleLen(label)
	return line.Render(strings.Repeat(dividerRune, 2)) +
		Caption(label, t) +
		line.Render(strings.Repeat(dividerRune, rest))
}
