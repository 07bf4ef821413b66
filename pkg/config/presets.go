package config

// Preset names.
const (
	PresetDashboard = "dashboard"
	PresetCompact   = "compact"
	PresetWide      = "wide"
)

// PresetNames lists the built-in layouts.
func PresetNames() []string {
	return []string{PresetDashboard, PresetCompact, PresetWide}
}

// LayoutPreset returns the layout configuration for a named preset.
// If the name is not recognized, the "dashboard" preset is returned.
func LayoutPreset(name string) LayoutConfig {
	switch name {
	case PresetCompact:
		return compactPreset()
	case PresetWide:
		return widePreset()
	default:
		return dashboardPreset()
	}
}

// dashboardPreset is the default molecules page.
//
//	Row 1 (ratio 1): [score-card:1] [score-card:1] [score-card:1]
//	Row 2 (ratio 2): [chart:2] [list:1]
//	Row 3 (ratio 2): [table:1]
func dashboardPreset() LayoutConfig {
	return LayoutConfig{
		Preset: PresetDashboard,
		Gap:    1,
		Rows: []RowConfig{
			{
				Ratio: 1,
				Children: []ChildConfig{
					{Type: "score-card", Ratio: 1},
					{Type: "score-card", Ratio: 1},
					{Type: "score-card", Ratio: 1},
				},
			},
			{
				Ratio: 2,
				Children: []ChildConfig{
					{Type: "chart", Ratio: 2},
					{Type: "list", Ratio: 1},
				},
			},
			{
				Ratio: 2,
				Children: []ChildConfig{
					{Type: "table", Ratio: 1},
				},
			},
		},
	}
}

// compactPreset stacks one molecule per row for narrow terminals.
//
//	Row 1: [score-card:1]
//	Row 2: [chart:1]
//	Row 3: [list:1]
func compactPreset() LayoutConfig {
	return LayoutConfig{
		Preset: PresetCompact,
		Gap:    0,
		Rows: []RowConfig{
			{Ratio: 1, Children: []ChildConfig{{Type: "score-card", Ratio: 1}}},
			{Ratio: 2, Children: []ChildConfig{{Type: "chart", Ratio: 1}}},
			{Ratio: 2, Children: []ChildConfig{{Type: "list", Ratio: 1}}},
		},
	}
}

// widePreset puts everything on two rows.
//
//	Row 1 (ratio 1): [score-card:1] [score-card:1] [score-card:1] [score-card:1]
//	Row 2 (ratio 2): [chart:3] [list:2] [table:3]
func widePreset() LayoutConfig {
	return LayoutConfig{
		Preset: PresetWide,
		Gap:    2,
		Rows: []RowConfig{
			{
				Ratio: 1,
				Children: []ChildConfig{
					{Type: "score-card", Ratio: 1},
					{Type: "score-card", Ratio: 1},
					{Type: "score-card", Ratio: 1},
					{Type: "score-card", Ratio: 1},
				},
			},
			{
				Ratio: 2,
				Children: []ChildConfig{
					{Type: "chart", Ratio: 3},
					{Type: "list", Ratio: 2},
					{Type: "table", Ratio: 3},
				},
			},
		},
	}
}
