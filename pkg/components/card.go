package components

import (
	"github.com/charmbracelet/lipgloss"

	"gitlab.com/tinyland/lab/pulse-ui/pkg/theme"
)

// Card wraps content in a rounded border with an optional bold title line.
// Width and Height are outer dimensions including the border; zero means
// size to content.
type Card struct {
	Title   string
	Body    string
	Width   int
	Height  int
	Focused bool
	Theme   theme.Theme
}

// View renders the card.
func (c Card) View() string {
	t := resolve(c.Theme)

	border := t.Border
	if c.Focused {
		border = t.BorderFocus
	}

	style := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(border)).
		Padding(0, 1)

	if c.Width > 2 {
		style = style.Width(c.Width - 2)
	}
	if c.Height > 2 {
		style = style.Height(c.Height - 2)
	}

	content := c.Body
	if c.Title != "" {
		content = Heading(c.Title, t) + "\n" + content
	}
	return style.Render(content)
}
