package widgets

import (
	"strings"

	"gitlab.com/tinyland/lab/pulse-ui/pkg/components"
	"gitlab.com/tinyland/lab/pulse-ui/pkg/theme"
	"gitlab.com/tinyland/lab/pulse-ui/pkg/tokens"
)

// DefaultListWidth is used when MetricList.Width is not positive.
const DefaultListWidth = 36

// ListItem is one metric row.
type ListItem struct {
	Icon   components.IconName // empty = dot
	Label  string
	Value  string
	Status tokens.Status // StatusUnknown hides the badge
}

// MetricList renders rows of icon, label, right-aligned value and status
// badge. Values and badges line up in columns.
type MetricList struct {
	Title string
	Items []ListItem
	Width int
	Icons components.IconSet
	Theme theme.Theme
}

// View renders the list.
func (l MetricList) View() string {
	t := resolve(l.Theme)
	width := l.Width
	if width <= 0 {
		width = DefaultListWidth
	}

	var lines []string
	if l.Title != "" {
		lines = append(lines, components.Fit(components.Heading(l.Title, t), width))
	}
	if len(l.Items) == 0 {
		lines = append(lines, components.Fit(components.Caption(NoData, t), width))
		return strings.Join(lines, "\n")
	}

	valueW, badgeW := 0, 0
	badges := make([]string, len(l.Items))
	for i, it := range l.Items {
		valueW = max(valueW, components.VisibleLen(it.Value))
		if it.Status != tokens.StatusUnknown {
			badges[i] = components.Badge{Status: it.Status, Theme: t}.View()
			badgeW = max(badgeW, components.VisibleLen(badges[i]))
		}
	}

	for i, it := range l.Items {
		lines = append(lines, l.row(it, badges[i], width, valueW, badgeW, t))
	}
	return strings.Join(lines, "\n")
}

func (l MetricList) row(it ListItem, badge string, width, valueW, badgeW int, t theme.Theme) string {
	icon := it.Icon
	if icon == "" {
		icon = components.IconDot
	}
	role := tokens.RoleAccent
	if it.Status != tokens.StatusUnknown {
		role = it.Status.Role()
	}

	glyph := components.Icon{Name: icon, Role: role, Set: l.Icons, Theme: t}.View()
	value := alignRight(it.Value, valueW)
	tailW := valueW
	if badgeW > 0 {
		tailW += 2 + badgeW
	}
	// icon, space, label, space, value, badge
	labelW := width - components.VisibleLen(glyph) - 1 - 1 - tailW
	if labelW < 1 {
		return components.Fit(glyph+" "+it.Label, width)
	}

	var sb strings.Builder
	sb.WriteString(glyph)
	sb.WriteString(" ")
	sb.WriteString(fg(t.Foreground).Render(components.Fit(it.Label, labelW)))
	sb.WriteString(" ")
	sb.WriteString(fg(t.Foreground).Bold(true).Render(value))
	if badgeW > 0 {
		sb.WriteString("  ")
		sb.WriteString(components.PadRight(badge, badgeW))
	}
	return sb.String()
}

// alignRight pads s on the left to width cells.
func alignRight(s string, width int) string {
	vis := components.VisibleLen(s)
	if vis >= width {
		return s
	}
	return strings.Repeat(" ", width-vis) + s
}
