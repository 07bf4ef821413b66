package components

import (
	"fmt"
	"math"
	"strings"

	"gitlab.com/tinyland/lab/pulse-ui/pkg/theme"
)

// Sparkline block characters: 8 vertical levels per cell.
var sparkBlocks = [8]rune{
	'\u2581', // 1/8 ▁
	'\u2582', // 2/8 ▂
	'\u2583', // 3/8 ▃
	'\u2584', // 4/8 ▄
	'\u2585', // 5/8 ▅
	'\u2586', // 6/8 ▆
	'\u2587', // 7/8 ▇
	'\u2588', // 8/8 █
}

// DefaultSparklineWidth is used when Width is not positive.
const DefaultSparklineWidth = 20

// Sparkline is an inline trend chart. Only the last Width points are drawn.
type Sparkline struct {
	Data      []float64
	Width     int
	Color     string // hex; empty = theme chart line
	ShowDelta bool   // append an arrow and percent change of the last point
	Theme     theme.Theme
}

// View renders the sparkline, or "" for an empty series.
func (s Sparkline) View() string {
	if len(s.Data) == 0 {
		return ""
	}
	t := resolve(s.Theme)
	width := s.Width
	if width <= 0 {
		width = DefaultSparklineWidth
	}

	points := s.Data
	if len(points) > width {
		points = points[len(points)-width:]
	}

	color := s.Color
	if color == "" {
		color = t.ChartLine
	}

	minY, maxY := sparkRange(points)
	out := fg(color).Render(sparkBlocksFor(points, minY, maxY))
	if s.ShowDelta {
		out += " " + Delta(s.Data)
	}
	return out
}

// Delta formats the change between the last two points as an arrow and a
// percentage, e.g. "↑12.5%". Fewer than two points, or a NaN in either,
// give "→0.0%".
func Delta(data []float64) string {
	if len(data) < 2 {
		return Glyph(IconTrendFlat) + "0.0%"
	}
	prev, curr := data[len(data)-2], data[len(data)-1]
	if math.IsNaN(prev) || math.IsNaN(curr) {
		return Glyph(IconTrendFlat) + "0.0%"
	}

	var pct float64
	switch {
	case prev != 0:
		pct = (curr - prev) / math.Abs(prev) * 100
	case curr > 0:
		pct = 100
	case curr < 0:
		pct = -100
	}

	switch {
	case pct > 0:
		return fmt.Sprintf("%s%.1f%%", Glyph(IconTrendUp), pct)
	case pct < 0:
		return fmt.Sprintf("%s%.1f%%", Glyph(IconTrendDown), -pct)
	default:
		return Glyph(IconTrendFlat) + "0.0%"
	}
}

// sparkRange ignores NaN and infinite points; with none left it is 0..1.
func sparkRange(data []float64) (minY, maxY float64) {
	seen := false
	for _, v := range data {
		if !finite(v) {
			continue
		}
		if !seen {
			minY, maxY, seen = v, v, true
			continue
		}
		minY = math.Min(minY, v)
		maxY = math.Max(maxY, v)
	}
	if !seen {
		return 0, 1
	}
	return minY, maxY
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// sparkLevel maps v onto 0..levels-1 within [minY, maxY]. A flat series
// sits at mid-height.
func sparkLevel(v, minY, maxY float64, levels int) int {
	span := maxY - minY
	if span <= 0 {
		return (levels - 1) / 2
	}
	n := (v - minY) / span
	n = math.Max(0, math.Min(1, n))
	return int(math.Round(n * float64(levels-1)))
}

func sparkBlocksFor(data []float64, minY, maxY float64) string {
	var b strings.Builder
	for _, v := range data {
		if !finite(v) {
			b.WriteByte(' ')
			continue
		}
		b.WriteRune(sparkBlocks[sparkLevel(v, minY, maxY, len(sparkBlocks))])
	}
	return b.String()
}
