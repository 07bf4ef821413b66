package widgets

import (
	"fmt"
	"math"
	"strings"

	"gitlab.com/tinyland/lab/pulse-ui/pkg/components"
	"gitlab.com/tinyland/lab/pulse-ui/pkg/theme"
	"gitlab.com/tinyland/lab/pulse-ui/pkg/tokens"
)

// Chart defaults.
const (
	DefaultChartWidth  = 40
	DefaultChartHeight = 8

	// Below this width the axis column is dropped.
	chartAxisMinWidth = 20
)

// Series is one line on a Chart. Points are evenly spaced left to right;
// when there are more points than dot columns only the newest are drawn.
type Series struct {
	Label  string
	Points []float64
	Role   tokens.Role // empty = next theme chart colour
}

// Chart plots one or more series as a Braille-dot line chart. Each cell
// carries a 2x4 dot grid, so a Width x Height plot has Width*2 x Height*4
// points of resolution.
type Chart struct {
	Title    string
	Series   []Series
	Height   int // plot rows, excluding title and legend
	Width    int // total columns, including the axis
	ShowAxis bool
	Theme    theme.Theme
}

// Range returns the lowest and highest finite value across every series.
// A chart with no finite points reports 0, 1.
func (c Chart) Range() (lo, hi float64) {
	lo, hi = math.Inf(1), math.Inf(-1)
	for _, s := range c.Series {
		for _, v := range s.Points {
			if !finite(v) {
				continue
			}
			lo = math.Min(lo, v)
			hi = math.Max(hi, v)
		}
	}
	if math.IsInf(lo, 1) {
		return 0, 1
	}
	return lo, hi
}

// finite reports whether v can be plotted; NaN and infinities are gaps.
func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func (c Chart) empty() bool {
	for _, s := range c.Series {
		if len(s.Points) > 0 {
			return false
		}
	}
	return true
}

// View renders the chart.
func (c Chart) View() string {
	t := resolve(c.Theme)
	width := c.Width
	if width <= 0 {
		width = DefaultChartWidth
	}
	height := c.Height
	if height <= 0 {
		height = DefaultChartHeight
	}

	var lines []string
	if c.Title != "" {
		lines = append(lines, components.Fit(components.Heading(c.Title, t), width))
	}
	if len(c.Series) > 1 {
		lines = append(lines, components.Fit(c.legend(t), width))
	}

	if c.empty() {
		lines = append(lines, centerMessage(NoData, width, height, t))
		return strings.Join(lines, "\n")
	}

	lo, hi := c.Range()
	top, bottom := formatSI(hi), formatSI(lo)

	axisW := 0
	if c.ShowAxis && width >= chartAxisMinWidth {
		axisW = max(len(top), len(bottom)) + 1
	}
	plotW := max(1, width-axisW)

	grid, owner := c.plot(plotW, height, lo, hi)
	colors := c.colors(t)

	for r := 0; r < height; r++ {
		var sb strings.Builder
		if axisW > 0 {
			label := ""
			switch r {
			case 0:
				label = top
			case height - 1:
				label = bottom
			}
			sb.WriteString(components.Caption(padLeft(label, axisW-1), t))
			sb.WriteString(" ")
		}
		for col := 0; col < plotW; col++ {
			ch := string(rune(0x2800 + int(grid[r][col])))
			if grid[r][col] == 0 {
				sb.WriteString(" ")
				continue
			}
			sb.WriteString(fg(colors[owner[r][col]]).Render(ch))
		}
		lines = append(lines, sb.String())
	}
	return strings.Join(lines, "\n")
}

// plot rasterises every series into a Braille grid. owner records which
// series last touched each cell, for colouring.
func (c Chart) plot(cols, rows int, lo, hi float64) ([][]uint8, [][]int) {
	grid := make([][]uint8, rows)
	owner := make([][]int, rows)
	for r := range grid {
		grid[r] = make([]uint8, cols)
		owner[r] = make([]int, cols)
	}

	dotsW, dotsH := cols*2, rows*4
	span := hi - lo

	dotY := func(v float64) int {
		if span <= 0 {
			return dotsH / 2
		}
		frac := (v - lo) / span
		return int(math.Round((1 - frac) * float64(dotsH-1)))
	}
	set := func(si, x, y int) {
		if x < 0 || x >= dotsW || y < 0 || y >= dotsH {
			return
		}
		grid[y/4][x/2] |= brailleBit(x%2, y%4)
		owner[y/4][x/2] = si
	}

	for si, s := range c.Series {
		points := s.Points
		if len(points) > dotsW {
			points = points[len(points)-dotsW:]
		}
		n := len(points)
		prevX, prevY := -1, -1
		for i, v := range points {
			if !finite(v) {
				prevX = -1
				continue
			}
			x := dotsW / 2
			if n > 1 {
				x = i * (dotsW - 1) / (n - 1)
			}
			y := dotY(v)
			set(si, x, y)
			if prevX >= 0 {
				joinDots(prevX, prevY, x, y, func(jx, jy int) { set(si, jx, jy) })
			}
			prevX, prevY = x, y
		}
	}
	return grid, owner
}

// joinDots fills the dots strictly between two plotted points so the
// series reads as a line.
func joinDots(x0, y0, x1, y1 int, set func(x, y int)) {
	steps := max(abs(x1-x0), abs(y1-y0))
	for i := 1; i < steps; i++ {
		x := x0 + (x1-x0)*i/steps
		y := y0 + int(math.Round(float64(y1-y0)*float64(i)/float64(steps)))
		set(x, y)
	}
}

// colors assigns each series its role colour, or cycles through the theme
// chart colours.
func (c Chart) colors(t theme.Theme) []string {
	cycle := []string{t.ChartLine, t.Accent, t.Primary, t.ChartFill}
	out := make([]string, len(c.Series))
	for i, s := range c.Series {
		if hex, ok := tokens.Resolve(s.Role); ok {
			out[i] = hex
			continue
		}
		out[i] = cycle[i%len(cycle)]
	}
	return out
}

func (c Chart) legend(t theme.Theme) string {
	colors := c.colors(t)
	parts := make([]string, len(c.Series))
	for i, s := range c.Series {
		parts[i] = fg(colors[i]).Render("\u2588") + " " + s.Label
	}
	return strings.Join(parts, "  ")
}

// brailleBit returns the bitmask for a dot at offset (offX, offY) within a
// Braille cell. offX is 0 (left) or 1 (right). offY is 0..3 (top to bottom).
//
//	1 4      bit: 0x01  0x08
//	2 5           0x02  0x10
//	3 6           0x04  0x20
//	7 8           0x40  0x80
func brailleBit(offX, offY int) uint8 {
	leftBits := [4]uint8{0x01, 0x02, 0x04, 0x40}
	rightBits := [4]uint8{0x08, 0x10, 0x20, 0x80}

	if offY < 0 || offY > 3 {
		return 0
	}
	if offX == 0 {
		return leftBits[offY]
	}
	return rightBits[offY]
}

// formatSI formats a float with SI suffixes: K, M, G.
// Examples: 1000 -> "1K", 1500 -> "1.5K", 72 -> "72".
func formatSI(v float64) string {
	prefix := ""
	if v < 0 {
		prefix = "-"
	}
	mag := math.Abs(v)

	switch {
	case mag >= 1e9:
		return prefix + formatSIValue(mag/1e9) + "G"
	case mag >= 1e6:
		return prefix + formatSIValue(mag/1e6) + "M"
	case mag >= 1e3:
		return prefix + formatSIValue(mag/1e3) + "K"
	default:
		return prefix + formatSIValue(mag)
	}
}

func formatSIValue(v float64) string {
	if v == math.Trunc(v) {
		return fmt.Sprintf("%d", int(v))
	}
	s := fmt.Sprintf("%.1f", v)
	s = strings.TrimRight(s, "0")
	return strings.TrimRight(s, ".")
}

func padLeft(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return strings.Repeat(" ", width-len(s)) + s
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
