package app

import (
	"fmt"
	"math"

	"gitlab.com/tinyland/lab/pulse-ui/pkg/components"
	"gitlab.com/tinyland/lab/pulse-ui/pkg/tokens"
	"gitlab.com/tinyland/lab/pulse-ui/pkg/widgets"
)

// sampleLen is the number of points in every sample series.
const sampleLen = 48

// metric is a synthetic score that wanders around base.
type metric struct {
	name   string
	icon   components.IconName
	base   float64
	amp    float64
	period float64
}

var sampleMetrics = []metric{
	{name: "Recovery", icon: components.IconHeart, base: 74, amp: 16, period: 17},
	{name: "Sleep", icon: components.IconSleep, base: 82, amp: 10, period: 11},
	{name: "Activity", icon: components.IconActivity, base: 58, amp: 26, period: 7},
	{name: "Balance", icon: components.IconWeight, base: 47, amp: 14, period: 23},
}

// series returns sampleLen points ending at frame.
func (m metric) series(frame int) []float64 {
	out := make([]float64, sampleLen)
	for i := range out {
		x := float64(frame + i)
		v := m.base + m.amp*math.Sin(2*math.Pi*x/m.period) + m.amp/3*math.Sin(x/2.3)
		out[i] = tokens.ClampScore(math.Round(v*10) / 10)
	}
	return out
}

// samples is the sample data at one frame.
type samples struct {
	frame  int
	series [][]float64 // one per sampleMetrics entry
}

func samplesAt(frame int) samples {
	s := samples{frame: frame, series: make([][]float64, len(sampleMetrics))}
	for i, m := range sampleMetrics {
		s.series[i] = m.series(frame)
	}
	return s
}

func (s samples) latest(i int) float64 {
	pts := s.series[i%len(s.series)]
	return pts[len(pts)-1]
}

func (s samples) scoreCard(i, width int, ctx PageContext) widgets.ScoreCard {
	m := sampleMetrics[i%len(sampleMetrics)]
	return widgets.ScoreCard{
		Title:   m.name,
		Score:   s.latest(i),
		Icon:    m.icon,
		Trend:   s.series[i%len(s.series)][sampleLen-16:],
		Caption: "last 16 readings",
		Width:   width,
		Icons:   ctx.Icons,
		Theme:   ctx.Theme,
	}
}

func (s samples) chart(width, height int, ctx PageContext) widgets.Chart {
	return widgets.Chart{
		Title: "Recovery vs sleep",
		Series: []widgets.Series{
			{Label: sampleMetrics[0].name, Points: s.series[0]},
			{Label: sampleMetrics[1].name, Points: s.series[1], Role: tokens.RoleAccent},
		},
		Width:    width,
		Height:   height,
		ShowAxis: true,
		Theme:    ctx.Theme,
	}
}

func (s samples) list(width int, ctx PageContext) widgets.MetricList {
	items := make([]widgets.ListItem, len(sampleMetrics))
	for i, m := range sampleMetrics {
		v := s.latest(i)
		items[i] = widgets.ListItem{
			Icon:   m.icon,
			Label:  m.name,
			Value:  fmt.Sprintf("%.0f", v),
			Status: tokens.StatusFor(v),
		}
	}
	return widgets.MetricList{Title: "Today", Items: items, Width: width, Icons: ctx.Icons, Theme: ctx.Theme}
}

func (s samples) table(width int, ctx PageContext) widgets.MetricTable {
	rows := make([][]widgets.Cell, len(sampleMetrics))
	for i, m := range sampleMetrics {
		pts := s.series[i]
		rows[i] = []widgets.Cell{
			widgets.Text(m.name),
			widgets.Scored(pts[len(pts)-1]),
			widgets.Text(components.Delta(pts)),
			widgets.Scored(average(pts)),
		}
	}
	return widgets.MetricTable{
		Title:   "Weekly summary",
		Headers: []string{"Metric", "Now", "Change", "Avg"},
		Rows:    rows,
		Width:   width,
		Theme:   ctx.Theme,
	}
}

func average(pts []float64) float64 {
	if len(pts) == 0 {
		return math.NaN()
	}
	sum := 0.0
	for _, p := range pts {
		sum += p
	}
	return math.Round(sum/float64(len(pts))*10) / 10
}
