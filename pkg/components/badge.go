package components

import (
	"gitlab.com/tinyland/lab/pulse-ui/pkg/theme"
	"gitlab.com/tinyland/lab/pulse-ui/pkg/tokens"
)

// Badge is a status pill: a dot and a label in the band's colour.
type Badge struct {
	Label  string // empty = the status name
	Status tokens.Status
	Theme  theme.Theme
}

// BadgeFor builds a badge for a 0-100 score.
func BadgeFor(score float64) Badge {
	return Badge{Status: tokens.StatusFor(score)}
}

// View renders the badge.
func (b Badge) View() string {
	t := resolve(b.Theme)
	label := b.Label
	if label == "" {
		label = b.Status.String()
	}
	return fg(t.StatusColor(b.Status)).Bold(true).Render(Glyph(IconDot) + " " + label)
}
