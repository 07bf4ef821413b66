package layout

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// fitLine truncates or pads one line to exactly width cells.
func fitLine(s string, width int) string {
	if width <= 0 {
		return ""
	}
	vis := ansi.StringWidth(s)
	if vis > width {
		return ansi.Truncate(s, width, "")
	}
	return s + strings.Repeat(" ", width-vis)
}

// fitBlock fits every line of a block to width. When height is positive
// the block is also cropped or padded with blank lines to that many rows.
func fitBlock(block string, width, height int) []string {
	var lines []string
	if block != "" {
		lines = strings.Split(block, "\n")
	}
	if height > 0 && len(lines) > height {
		lines = lines[:height]
	}
	out := make([]string, 0, max(len(lines), height))
	for _, l := range lines {
		out = append(out, fitLine(l, width))
	}
	blank := strings.Repeat(" ", max(width, 0))
	for len(out) < height {
		out = append(out, blank)
	}
	return out
}

// blockWidth is the widest line of a block in cells.
func blockWidth(block string) int {
	w := 0
	for _, l := range strings.Split(block, "\n") {
		w = max(w, ansi.StringWidth(l))
	}
	return w
}

// lineCount counts the rows of a block; the empty string has none.
func lineCount(block string) int {
	if block == "" {
		return 0
	}
	return strings.Count(block, "\n") + 1
}
