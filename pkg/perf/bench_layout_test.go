package perf

import (
	"strings"
	"testing"

	"gitlab.com/tinyland/lab/pulse-ui/pkg/layout"
)

// pfMakeBlocks returns n multi-line blocks of varying height.
func pfMakeBlocks(n int) []string {
	blocks := make([]string, n)
	for i := range blocks {
		lines := make([]string, 3+i%4)
		for j := range lines {
			lines[j] = strings.Repeat("#", 10+j)
		}
		blocks[i] = strings.Join(lines, "\n")
	}
	return blocks
}

// BenchmarkLayoutSplit benchmarks a weighted split at widths that change
// every iteration, so the cache is mostly missed.
func BenchmarkLayoutSplit(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_ = layout.Split(80+i%200, 2, 3, 2, 1, 1, 2, 3)
	}
}

// BenchmarkLayoutSplitCached benchmarks the steady state of a dashboard
// redraw, where the width does not change.
func BenchmarkLayoutSplitCached(b *testing.B) {
	_ = layout.Split(120, 1, 2, 1)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = layout.Split(120, 1, 2, 1)
	}
}

// BenchmarkLayoutGrid benchmarks a three-column grid of six blocks.
func BenchmarkLayoutGrid(b *testing.B) {
	g := layout.Grid{Columns: 3, Gap: 1, RowGap: 1, Width: 120}
	blocks := pfMakeBlocks(6)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.View(blocks...)
	}
}
