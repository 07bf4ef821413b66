package components

import (
	"github.com/charmbracelet/lipgloss"

	"gitlab.com/tinyland/lab/pulse-ui/pkg/theme"
	"gitlab.com/tinyland/lab/pulse-ui/pkg/tokens"
)

// ButtonVariant selects the button's colour treatment.
type ButtonVariant string

const (
	ButtonPrimary   ButtonVariant = "primary"
	ButtonSecondary ButtonVariant = "secondary"
	ButtonGhost     ButtonVariant = "ghost"
	ButtonDanger    ButtonVariant = "danger"
)

// Button is a one-line label with horizontal padding.
type Button struct {
	Label    string
	Variant  ButtonVariant // empty = primary
	Disabled bool
	Focused  bool
	Theme    theme.Theme
}

// View renders the button. Disabled buttons ignore variant and focus.
func (b Button) View() string {
	t := resolve(b.Theme)
	style := lipgloss.NewStyle().Padding(0, 1)

	if b.Disabled {
		return style.Foreground(lipgloss.Color(t.Muted)).Render(b.Label)
	}

	switch b.Variant {
	case ButtonSecondary:
		style = style.
			Foreground(lipgloss.Color(t.Foreground)).
			Background(lipgloss.Color(t.Border))
	case ButtonGhost:
		style = style.Foreground(lipgloss.Color(t.Primary))
	case ButtonDanger:
		style = style.
			Foreground(lipgloss.Color(tokens.White)).
			Background(lipgloss.Color(t.StatusConcern))
	default:
		style = style.
			Foreground(lipgloss.Color(tokens.White)).
			Background(lipgloss.Color(t.Primary))
	}

	if b.Focused {
		style = style.Bold(true).Underline(true)
	}
	return style.Render(b.Label)
}
