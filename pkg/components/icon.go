package components

import (
	"gitlab.com/tinyland/lab/pulse-ui/pkg/theme"
	"gitlab.com/tinyland/lab/pulse-ui/pkg/tokens"
)

// IconName identifies a glyph.
type IconName string

const (
	IconHeart     IconName = "heart"
	IconSleep     IconName = "sleep"
	IconActivity  IconName = "activity"
	IconWeight    IconName = "weight"
	IconTrendUp   IconName = "trend-up"
	IconTrendDown IconName = "trend-down"
	IconTrendFlat IconName = "trend-flat"
	IconCheck     IconName = "check"
	IconAlert     IconName = "alert"
	IconInfo      IconName = "info"
	IconDot       IconName = "dot"
)

// IconSet selects between Unicode glyphs and a plain ASCII fallback for
// terminals with poor font coverage.
type IconSet int

const (
	IconsUnicode IconSet = iota
	IconsASCII
)

var unicodeGlyphs = map[IconName]string{
	IconHeart:     "\u2665", // ♥
	IconSleep:     "\u263E", // ☾
	IconActivity:  "\u26A1", // ⚡
	IconWeight:    "\u2696", // ⚖
	IconTrendUp:   "\u2191", // ↑
	IconTrendDown: "\u2193", // ↓
	IconTrendFlat: "\u2192", // →
	IconCheck:     "\u2713", // ✓
	IconAlert:     "\u26A0", // ⚠
	IconInfo:      "\u2139", // ℹ
	IconDot:       "\u25CF", // ●
}

var asciiGlyphs = map[IconName]string{
	IconHeart:     "<3",
	IconSleep:     "z",
	IconActivity:  "~",
	IconWeight:    "kg",
	IconTrendUp:   "^",
	IconTrendDown: "v",
	IconTrendFlat: "-",
	IconCheck:     "ok",
	IconAlert:     "!",
	IconInfo:      "i",
	IconDot:       "*",
}

// Glyph returns the Unicode glyph for name; unknown names render as a dot.
func Glyph(name IconName) string {
	return GlyphIn(IconsUnicode, name)
}

// GlyphIn returns the glyph for name from the given set.
func GlyphIn(set IconSet, name IconName) string {
	glyphs := unicodeGlyphs
	if set == IconsASCII {
		glyphs = asciiGlyphs
	}
	if g, ok := glyphs[name]; ok {
		return g
	}
	return glyphs[IconDot]
}

// IconNames lists every known icon.
func IconNames() []IconName {
	return []IconName{
		IconHeart, IconSleep, IconActivity, IconWeight,
		IconTrendUp, IconTrendDown, IconTrendFlat,
		IconCheck, IconAlert, IconInfo, IconDot,
	}
}

// Icon is a single coloured glyph.
type Icon struct {
	Name  IconName
	Role  tokens.Role // empty = theme foreground
	Set   IconSet
	Theme theme.Theme
}

// View renders the icon.
func (i Icon) View() string {
	t := resolve(i.Theme)
	color := t.Foreground
	if i.Role != "" {
		if hex, ok := tokens.Resolve(i.Role); ok {
			color = hex
		}
	}
	return fg(color).Render(GlyphIn(i.Set, i.Name))
}

// TrendIcon picks up/down/flat from the last two values of a series.
func TrendIcon(data []float64) IconName {
	if len(data) < 2 {
		return IconTrendFlat
	}
	prev, curr := data[len(data)-2], data[len(data)-1]
	switch {
	case curr > prev:
		return IconTrendUp
	case curr < prev:
		return IconTrendDown
	default:
		return IconTrendFlat
	}
}
