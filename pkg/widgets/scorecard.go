package widgets

import (
	"math"
	"strings"

	"gitlab.com/tinyland/lab/pulse-ui/pkg/components"
	"gitlab.com/tinyland/lab/pulse-ui/pkg/theme"
	"gitlab.com/tinyland/lab/pulse-ui/pkg/tokens"
)

// DefaultScoreCardWidth is the outer width used when Width is not positive.
const DefaultScoreCardWidth = 28

// ScoreCard shows a single 0-100 health score with its band, a trend
// sparkline and the change since the previous reading.
type ScoreCard struct {
	Title   string
	Score   float64 // NaN renders as "--" with the unknown band
	Unit    string
	Icon    components.IconName // empty = no icon
	Trend   []float64
	Caption string
	Width   int
	Focused bool
	Icons   components.IconSet
	Theme   theme.Theme
}

// Status is the band the score falls in.
func (s ScoreCard) Status() tokens.Status {
	return tokens.StatusFor(s.Score)
}

// View renders the card.
func (s ScoreCard) View() string {
	t := resolve(s.Theme)
	width := s.Width
	if width <= 0 {
		width = DefaultScoreCardWidth
	}
	inner := max(1, width-4)
	status := s.Status()

	var head strings.Builder
	if s.Icon != "" {
		head.WriteString(components.Icon{Name: s.Icon, Set: s.Icons, Theme: t}.View())
		head.WriteString(" ")
	}
	head.WriteString(fg(t.StatusColor(status)).Bold(true).Render(formatValue(s.Score)))
	if s.Unit != "" && !math.IsNaN(s.Score) {
		head.WriteString(components.Caption(s.Unit, t))
	}
	head.WriteString("  ")
	head.WriteString(components.Badge{Status: status, Theme: t}.View())

	lines := []string{components.Truncate(head.String(), inner)}

	if len(s.Trend) > 0 {
		delta := ""
		if len(s.Trend) >= 2 {
			delta = components.Delta(s.Trend)
		}
		sparkWidth := inner
		if delta != "" {
			sparkWidth = max(1, inner-components.VisibleLen(delta)-1)
		}
		trend := components.Sparkline{Data: s.Trend, Width: sparkWidth, Theme: t}.View()
		if delta != "" {
			trend += " " + components.Caption(delta, t)
		}
		lines = append(lines, trend)
	}

	if s.Caption != "" {
		lines = append(lines, components.Caption(components.Truncate(s.Caption, inner), t))
	}

	return components.Card{
		Title:   components.Truncate(s.Title, inner),
		Body:    strings.Join(lines, "\n"),
		Width:   width,
		Focused: s.Focused,
		Theme:   t,
	}.View()
}
