package layout

import (
	"strings"
)

// Grid arranges rendered blocks into rows of Columns cells, left to right
// then top to bottom. Cells in a row share the row's height; shorter
// blocks are padded with blank lines.
type Grid struct {
	Columns int   // <= 0 means 1
	Gap     int   // cells between columns
	RowGap  int   // blank lines between rows
	Width   int   // total width; <= 0 sizes each column to its widest block
	Weights []int // optional per-column weights passed to Split
}

// View lays out blocks. An empty block list renders as "".
func (g Grid) View(blocks ...string) string {
	if len(blocks) == 0 {
		return ""
	}
	cols := max(g.Columns, 1)
	cols = min(cols, len(blocks))
	gap := max(g.Gap, 0)
	widths := g.columnWidths(cols, gap, blocks)
	spacer := strings.Repeat(" ", gap)

	var rows []string
	for start := 0; start < len(blocks); start += cols {
		end := min(start+cols, len(blocks))
		row := blocks[start:end]

		height := 0
		for _, b := range row {
			height = max(height, lineCount(b))
		}

		cells := make([][]string, cols)
		for c := 0; c < cols; c++ {
			block := ""
			if c < len(row) {
				block = row[c]
			}
			cells[c] = fitBlock(block, widths[c], height)
		}

		lines := make([]string, height)
		for y := 0; y < height; y++ {
			parts := make([]string, cols)
			for c := range cells {
				parts[c] = cells[c][y]
			}
			lines[y] = strings.Join(parts, spacer)
		}
		rows = append(rows, strings.Join(lines, "\n"))
	}

	sep := "\n" + strings.Repeat("\n", max(g.RowGap, 0))
	return strings.Join(rows, sep)
}

func (g Grid) columnWidths(cols, gap int, blocks []string) []int {
	if g.Width > 0 {
		weights := make([]int, cols)
		for i := range weights {
			weights[i] = 1
			if i < len(g.Weights) {
				weights[i] = g.Weights[i]
			}
		}
		return Split(g.Width, gap, weights...)
	}

	widths := make([]int, cols)
	for i, b := range blocks {
		c := i % cols
		widths[c] = max(widths[c], blockWidth(b))
	}
	return widths
}
