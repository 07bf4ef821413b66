// Package components holds the atoms of the pulse-ui kit: buttons, icons,
// badges, typography, progress bars, sparklines, cards and dividers. Every
// atom is a value type with a View method that returns an ANSI string.
//
// Atoms paint with a theme.Theme. A zero Theme field means "use
// theme.Current()", so most callers never set it.
package components

import (
	"github.com/charmbracelet/lipgloss"

	"gitlab.com/tinyland/lab/pulse-ui/pkg/theme"
)

// resolve returns t, or the active theme when t is the zero value.
func resolve(t theme.Theme) theme.Theme {
	if t.Name == "" {
		return theme.Current()
	}
	return t
}

// fg returns a style with only a foreground colour. An empty hex gives an
// unstyled Style.
func fg(hex string) lipgloss.Style {
	s := lipgloss.NewStyle()
	if hex == "" {
		return s
	}
	return s.Foreground(lipgloss.Color(hex))
}
