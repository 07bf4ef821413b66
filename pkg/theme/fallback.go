package theme

import "gitlab.com/tinyland/lab/pulse-ui/pkg/tokens"

// Adapt converts every colour in t to a 256-colour index if the terminal
// colour depth is below 24-bit. At 24-bit or above t is returned unchanged.
func Adapt(t Theme, colorDepth int) Theme {
	if colorDepth >= 24 {
		return t
	}
	for _, c := range t.colors() {
		*c.ptr = tokens.To256(*c.ptr)
	}
	return t
}

type colorField struct {
	key string
	ptr *string
}

// colors lists every colour field with its TOML key, in file order.
func (t *Theme) colors() []colorField {
	return []colorField{
		{"background", &t.Background},
		{"foreground", &t.Foreground},
		{"muted", &t.Muted},
		{"primary", &t.Primary},
		{"accent", &t.Accent},
		{"border", &t.Border},
		{"border_focus", &t.BorderFocus},
		{"title", &t.Title},
		{"status_optimal", &t.StatusOptimal},
		{"status_good", &t.StatusGood},
		{"status_attention", &t.StatusAttention},
		{"status_concern", &t.StatusConcern},
		{"status_unknown", &t.StatusUnknown},
		{"chart_line", &t.ChartLine},
		{"chart_fill", &t.ChartFill},
		{"chart_grid", &t.ChartGrid},
		{"skeleton_base", &t.SkeletonBase},
		{"skeleton_highlight", &t.SkeletonHighlight},
	}
}
