package perf

import (
	"fmt"
	"testing"

	"gitlab.com/tinyland/lab/pulse-ui/pkg/components"
	"gitlab.com/tinyland/lab/pulse-ui/pkg/skeleton"
	"gitlab.com/tinyland/lab/pulse-ui/pkg/theme"
	"gitlab.com/tinyland/lab/pulse-ui/pkg/tokens"
	"gitlab.com/tinyland/lab/pulse-ui/pkg/widgets"
)

// BenchmarkSkeletonRender benchmarks one placeholder of each type in turn.
func BenchmarkSkeletonRender(b *testing.B) {
	r := skeleton.Renderer{Theme: theme.Get("light")}
	types := skeleton.Types()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = r.Render(skeleton.Props{Type: types[i%len(types)], Width: 40})
	}
}

// BenchmarkSkeletonRender8 benchmarks a list of eight placeholders, as a
// loading feed would show.
func BenchmarkSkeletonRender8(b *testing.B) {
	r := skeleton.Renderer{Theme: theme.Get("dark")}
	p := skeleton.Props{Type: skeleton.TypeList, Count: 8, Width: 60}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = r.View(p)
	}
}

// BenchmarkScoreCardRender benchmarks a score card with a 16 point trend.
func BenchmarkScoreCardRender(b *testing.B) {
	s := widgets.ScoreCard{
		Title:   "Recovery",
		Score:   82,
		Icon:    components.IconHeart,
		Trend:   pfMakeSeries(16),
		Caption: "last 16 readings",
		Width:   30,
		Theme:   theme.Get("light"),
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = s.View()
	}
}

// BenchmarkChartRender benchmarks a two-series 60x8 chart.
func BenchmarkChartRender(b *testing.B) {
	c := widgets.Chart{
		Title: "Recovery vs sleep",
		Series: []widgets.Series{
			{Label: "Recovery", Points: pfMakeSeries(120)},
			{Label: "Sleep", Points: pfMakeSeries(90), Role: tokens.RoleAccent},
		},
		Width:    60,
		Height:   8,
		ShowAxis: true,
		Theme:    theme.Get("light"),
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = c.View()
	}
}

// BenchmarkMetricTableRender benchmarks a 20 row table.
func BenchmarkMetricTableRender(b *testing.B) {
	rows := make([][]widgets.Cell, 20)
	for i := range rows {
		score := float64(40 + (i*13)%60)
		rows[i] = []widgets.Cell{
			widgets.Text(fmt.Sprintf("Metric %d", i)),
			widgets.Scored(score),
			widgets.Text("+1.2%"),
			widgets.Scored(score - 3),
		}
	}
	tbl := widgets.MetricTable{
		Title:   "Weekly summary",
		Headers: []string{"Metric", "Now", "Change", "Avg"},
		Rows:    rows,
		Width:   60,
		Theme:   theme.Get("light"),
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = tbl.View()
	}
}
