// Package molecules re-exports the composed dashboard pieces from
// pkg/widgets: score cards, charts, metric lists and metric tables.
package molecules

import "gitlab.com/tinyland/lab/pulse-ui/pkg/widgets"

type (
	ScoreCard   = widgets.ScoreCard
	Chart       = widgets.Chart
	Series      = widgets.Series
	MetricList  = widgets.MetricList
	ListItem    = widgets.ListItem
	MetricTable = widgets.MetricTable
	Cell        = widgets.Cell
)

const (
	NoData                = widgets.NoData
	DefaultScoreCardWidth = widgets.DefaultScoreCardWidth
	DefaultChartWidth     = widgets.DefaultChartWidth
	DefaultChartHeight    = widgets.DefaultChartHeight
	DefaultListWidth      = widgets.DefaultListWidth
)

var (
	Text   = widgets.Text
	Scored = widgets.Scored
)
