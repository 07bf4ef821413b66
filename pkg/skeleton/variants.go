package skeleton

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"gitlab.com/tinyland/lab/pulse-ui/pkg/theme"
)

// Natural outer widths per shape, and the floor applied to Props.Width.
const (
	scoreCardWidth = 28
	chartWidth     = 40
	listWidth      = 36
	tableWidth     = 44
	minWidth       = 12
)

// block is the glyph every placeholder bar is made of.
const block = "\u2588" // █

// chartHeights are the static column heights of the chart shape, cycled
// across the plot width.
var chartHeights = []int{3, 5, 2, 6, 4, 5, 3, 6, 2, 4}

const chartRows = 6

type palette struct {
	base  lipgloss.Style
	shine lipgloss.Style
	frame lipgloss.Style
}

func (r Renderer) palette() palette {
	t := r.Theme
	if t.Name == "" {
		t = theme.Current()
	}
	base, shine := t.SkeletonBase, t.SkeletonHighlight
	if r.Phase%2 != 0 {
		base, shine = shine, base
	}
	return palette{
		base:  lipgloss.NewStyle().Foreground(lipgloss.Color(base)),
		shine: lipgloss.NewStyle().Foreground(lipgloss.Color(shine)),
		frame: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(t.SkeletonBase)).
			Padding(0, 1),
	}
}

// wrap frames lines in the placeholder border at the given outer width.
func (p palette) wrap(lines []string, outer int) string {
	return p.frame.Width(outer - 2).Render(strings.Join(lines, "\n"))
}

func bar(s lipgloss.Style, n int) string {
	if n <= 0 {
		return ""
	}
	return s.Render(strings.Repeat(block, n))
}

func gap(n int) string {
	if n <= 0 {
		return ""
	}
	return strings.Repeat(" ", n)
}

// outerWidth applies the natural width and the floor.
func outerWidth(requested, natural int) int {
	if requested <= 0 {
		return natural
	}
	if requested < minWidth {
		return minWidth
	}
	return requested
}

// inner is the usable width inside the border and padding.
func inner(outer int) int {
	return outer - 4
}

// scoreCard: title, big score with badge, trend line, caption.
func scoreCard(p palette, width int) string {
	outer := outerWidth(width, scoreCardWidth)
	w := inner(outer)
	score := min(8, w/2)
	badge := min(6, w-score-2)
	return p.wrap([]string{
		bar(p.shine, w/2),
		"",
		bar(p.base, score) + gap(2) + bar(p.shine, badge),
		"",
		bar(p.base, w),
		bar(p.shine, w*2/3),
	}, outer)
}

// chart: title then a plot of static columns over an axis line.
func chart(p palette, width int) string {
	outer := outerWidth(width, chartWidth)
	w := inner(outer)

	lines := []string{bar(p.shine, w/3), ""}
	for row := 0; row < chartRows; row++ {
		var b strings.Builder
		used := 0
		for col := 0; used+2 <= w; col++ {
			if col > 0 {
				if used+3 > w {
					break
				}
				b.WriteString(" ")
				used++
			}
			if chartHeights[col%len(chartHeights)] >= chartRows-row {
				b.WriteString(bar(p.base, 2))
			} else {
				b.WriteString(gap(2))
			}
			used += 2
		}
		lines = append(lines, b.String())
	}
	lines = append(lines, bar(p.shine, w))
	return p.wrap(lines, outer)
}

// list: four rows of icon, label and trailing value.
func list(p palette, width int) string {
	outer := outerWidth(width, listWidth)
	w := inner(outer)
	value := min(6, w/4)
	label := max(0, min(w/2, w-4-value))
	spacer := w - 3 - label - value

	lines := make([]string, 0, 7)
	for i := 0; i < 4; i++ {
		if i > 0 {
			lines = append(lines, "")
		}
		lines = append(lines, bar(p.base, 2)+" "+bar(p.shine, label)+gap(spacer)+bar(p.base, value))
	}
	return p.wrap(lines, outer)
}

// table: a header row and four body rows of three columns.
func table(p palette, width int) string {
	outer := outerWidth(width, tableWidth)
	w := inner(outer)
	col := (w - 4) / 3

	row := func(s lipgloss.Style) string {
		return bar(s, col) + gap(2) + bar(s, col) + gap(2) + bar(s, col)
	}

	lines := []string{row(p.shine), ""}
	for i := 0; i < 4; i++ {
		lines = append(lines, row(p.base))
	}
	return p.wrap(lines, outer)
}
