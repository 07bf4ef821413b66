// Package widgets provides the molecules of the pulse-ui kit: score cards,
// charts, metric lists and metric tables. Each molecule is composed from
// the atoms in pkg/components and renders to an ANSI string through View.
//
// Like the atoms, a zero Theme field paints with theme.Current().
package widgets

import (
	"math"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"gitlab.com/tinyland/lab/pulse-ui/pkg/components"
	"gitlab.com/tinyland/lab/pulse-ui/pkg/theme"
)

// NoData is shown by molecules that have nothing to render.
const NoData = "No data"

func resolve(t theme.Theme) theme.Theme {
	if t.Name == "" {
		return theme.Current()
	}
	return t
}

func fg(hex string) lipgloss.Style {
	s := lipgloss.NewStyle()
	if hex == "" {
		return s
	}
	return s.Foreground(lipgloss.Color(hex))
}

// formatValue prints whole numbers without decimals and everything else
// with one. NaN prints as a placeholder dash pair.
func formatValue(v float64) string {
	switch {
	case math.IsNaN(v) || math.IsInf(v, 0):
		return "--"
	case v == math.Trunc(v):
		return strconv.FormatFloat(v, 'f', 0, 64)
	default:
		return strconv.FormatFloat(v, 'f', 1, 64)
	}
}

// centerMessage places msg in the middle of a width x height area.
func centerMessage(msg string, width, height int, t theme.Theme) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	msg = components.Truncate(msg, width)
	line := components.PadCenter(components.Caption(msg, t), width)

	lines := make([]string, height)
	blank := strings.Repeat(" ", width)
	for i := range lines {
		lines[i] = blank
	}
	lines[height/2] = line
	return strings.Join(lines, "\n")
}
