package components

import (
	"fmt"
	"math"
	"strings"

	"gitlab.com/tinyland/lab/pulse-ui/pkg/theme"
	"gitlab.com/tinyland/lab/pulse-ui/pkg/tokens"
)

// Block characters for sub-cell precision (8 levels per cell).
var progressBlocks = [9]rune{
	' ',      // 0/8 empty
	'\u258F', // 1/8 ▏
	'\u258E', // 2/8 ▎
	'\u258D', // 3/8 ▍
	'\u258C', // 4/8 ▌
	'\u258B', // 5/8 ▋
	'\u258A', // 6/8 ▊
	'\u2589', // 7/8 ▉
	'\u2588', // 8/8 █
}

// progressTrack fills the unfilled part of the bar.
const progressTrack = '\u2591' // ░

// DefaultProgressWidth is used when Width is not positive.
const DefaultProgressWidth = 20

// ProgressBar is a horizontal gauge coloured by the health band of its
// fill percentage, so 90% reads as optimal and 30% as concern.
type ProgressBar struct {
	Value       float64
	Max         float64 // <= 0 means 100
	Width       int     // bar cells, excluding label and percent
	Label       string
	ShowPercent bool
	Theme       theme.Theme
}

// Ratio returns Value/Max clamped to [0, 1].
func (p ProgressBar) Ratio() float64 {
	maxV := p.Max
	if maxV <= 0 {
		maxV = 100
	}
	r := p.Value / maxV
	if math.IsNaN(r) || r < 0 {
		return 0
	}
	if r > 1 {
		return 1
	}
	return r
}

// View renders the bar.
func (p ProgressBar) View() string {
	t := resolve(p.Theme)
	width := p.Width
	if width <= 0 {
		width = DefaultProgressWidth
	}

	ratio := p.Ratio()
	status := tokens.StatusFor(ratio * 100)
	filled, partial, empty := progressCells(ratio, width)

	var b strings.Builder
	if p.Label != "" {
		b.WriteString(p.Label)
		b.WriteString(" ")
	}

	bar := strings.Repeat(string(progressBlocks[8]), filled)
	if partial > 0 {
		bar += string(progressBlocks[partial])
	}
	b.WriteString(fg(t.StatusColor(status)).Render(bar))
	b.WriteString(fg(t.ChartGrid).Render(strings.Repeat(string(progressTrack), empty)))

	if p.ShowPercent {
		b.WriteString(fmt.Sprintf(" %d%%", int(math.Round(ratio*100))))
	}
	return b.String()
}

// progressCells splits width cells into full cells, a trailing partial
// block (in eighths, 0 = none) and empty track cells.
func progressCells(ratio float64, width int) (full, partialEighths, empty int) {
	units := int(math.Round(ratio * float64(width*8)))
	full = units / 8
	partialEighths = units % 8
	empty = width - full
	if partialEighths > 0 {
		empty--
	}
	if empty < 0 {
		empty = 0
	}
	return full, partialEighths, empty
}
