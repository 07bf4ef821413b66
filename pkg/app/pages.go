package app

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"gitlab.com/tinyland/lab/pulse-ui/pkg/components"
	"gitlab.com/tinyland/lab/pulse-ui/pkg/config"
	"gitlab.com/tinyland/lab/pulse-ui/pkg/layout"
	"gitlab.com/tinyland/lab/pulse-ui/pkg/skeleton"
	"gitlab.com/tinyland/lab/pulse-ui/pkg/theme"
	"gitlab.com/tinyland/lab/pulse-ui/pkg/tokens"
)

// Page is one gallery tab.
type Page interface {
	ID() string
	Title() string
	View(ctx PageContext) string
}

// PageContext is everything a page needs to draw itself.
type PageContext struct {
	Width   int
	Theme   theme.Theme
	Icons   components.IconSet
	Layout  config.LayoutConfig
	Loaded  bool    // sample data has arrived
	Phase   int     // skeleton shimmer phase
	Spinner string  // rendered spinner frame
	data    samples // sample series at the current frame
}

// DefaultPages returns the built-in gallery pages in tab order.
func DefaultPages() []Page {
	return []Page{TokensPage{}, AtomsPage{}, MoleculesPage{}, NewPlaceholderPage()}
}

// ---------------------------------------------------------------------------
// Tokens
// ---------------------------------------------------------------------------

// TokensPage shows every palette ramp and the semantic roles.
type TokensPage struct{}

func (TokensPage) ID() string    { return "tokens" }
func (TokensPage) Title() string { return "Tokens" }

func (TokensPage) View(ctx PageContext) string {
	t := ctx.Theme
	var b strings.Builder

	b.WriteString(components.Heading("Palettes", t))
	b.WriteString("\n")
	for _, p := range tokens.Palettes() {
		b.WriteString(components.PadRight(components.Caption(string(p), t), 10))
		for _, s := range tokens.Shades() {
			hex := tokens.MustLookup(p, s)
			b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(hex)).Render(swatch))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(components.Heading("Semantic roles", t))
	b.WriteString("\n")
	for _, r := range tokens.Roles() {
		hex, _ := tokens.Resolve(r)
		ref, _ := tokens.RefFor(r)
		b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(hex)).Render(swatch))
		b.WriteString(" ")
		b.WriteString(components.PadRight(string(r), 12))
		b.WriteString(components.Caption(fmt.Sprintf("%s  %s", hex, ref), t))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(components.Heading("Status bands", t))
	b.WriteString("\n")
	var bands []string
	for _, score := range []float64{92, 76, 61, 30} {
		bands = append(bands, components.BadgeFor(score).View()+components.Caption(fmt.Sprintf(" %.0f", score), t))
	}
	b.WriteString(flow(bands, "  ", max(ctx.Width, 20)))
	return b.String()
}

const swatch = "\u2588\u2588" // ██

// ---------------------------------------------------------------------------
// Atoms
// ---------------------------------------------------------------------------

// AtomsPage shows each atom in its variants.
type AtomsPage struct{}

func (AtomsPage) ID() string    { return "atoms" }
func (AtomsPage) Title() string { return "Atoms" }

func (AtomsPage) View(ctx PageContext) string {
	t := ctx.Theme
	width := max(ctx.Width, 20)
	var sections []string

	section := func(title, body string) {
		sections = append(sections, components.Divider{Width: width, Label: title, Theme: t}.View()+"\n"+body)
	}

	var buttons []string
	for _, v := range []components.ButtonVariant{
		components.ButtonPrimary, components.ButtonSecondary,
		components.ButtonGhost, components.ButtonDanger,
	} {
		buttons = append(buttons, components.Button{Label: string(v), Variant: v, Theme: t}.View())
	}
	buttons = append(buttons,
		components.Button{Label: "focused", Focused: true, Theme: t}.View(),
		components.Button{Label: "disabled", Disabled: true, Theme: t}.View(),
	)
	section("Buttons", flow(buttons, " ", width))

	var icons []string
	for _, name := range components.IconNames() {
		icons = append(icons, components.Icon{Name: name, Set: ctx.Icons, Theme: t}.View()+" "+components.Caption(string(name), t))
	}
	section("Icons", flow(icons, "  ", width))

	var badges []string
	for _, s := range []tokens.Status{
		tokens.StatusOptimal, tokens.StatusGood, tokens.StatusAttention,
		tokens.StatusConcern, tokens.StatusUnknown,
	} {
		badges = append(badges, components.Badge{Status: s, Theme: t}.View())
	}
	section("Badges", flow(badges, " ", width))

	var bars []string
	for _, v := range []float64{18, 55, 87.5} {
		bars = append(bars, components.ProgressBar{
			Value:       v,
			Width:       min(components.DefaultProgressWidth, width-20),
			Label:       "Goal",
			ShowPercent: true,
			Theme:       t,
		}.View())
	}
	section("Progress", strings.Join(bars, "\n"))

	series := ctx.sampleData().series[0]
	section("Sparkline", components.Sparkline{
		Data:      series[len(series)-components.DefaultSparklineWidth:],
		Width:     components.DefaultSparklineWidth,
		ShowDelta: true,
		Theme:     t,
	}.View())

	section("Card", components.Card{
		Title: "Card",
		Body:  components.Caption("Bordered container with a title.", t),
		Width: min(40, width),
		Theme: t,
	}.View())

	return strings.Join(sections, "\n\n")
}

// ---------------------------------------------------------------------------
// Molecules
// ---------------------------------------------------------------------------

// MoleculesPage lays the molecules out on the configured grid. Until the
// first sample refresh each cell shows its skeleton instead.
type MoleculesPage struct{}

func (MoleculesPage) ID() string    { return "molecules" }
func (MoleculesPage) Title() string { return "Molecules" }

func (MoleculesPage) View(ctx PageContext) string {
	width := max(ctx.Width, 20)
	gap := max(ctx.Layout.Gap, 0)
	seen := map[skeleton.Type]int{}

	var rows []string
	for _, row := range ctx.Layout.ResolvedRows() {
		weights := make([]int, len(row.Children))
		for i, c := range row.Children {
			weights[i] = c.Ratio
		}
		widths := layout.Split(width, gap, weights...)

		cells := make([]string, len(row.Children))
		for i, c := range row.Children {
			typ := skeleton.Type(c.Type)
			cells[i] = cell(ctx, typ, seen[typ], widths[i], row.Ratio)
			seen[typ]++
		}
		rows = append(rows, layout.Grid{
			Columns: len(cells),
			Gap:     gap,
			Width:   width,
			Weights: weights,
		}.View(cells...))
	}
	return strings.Join(rows, "\n"+strings.Repeat("\n", gap))
}

// cell renders the nth molecule of typ at width, or its skeleton while
// data is loading.
func cell(ctx PageContext, typ skeleton.Type, n, width, ratio int) string {
	if !ctx.Loaded {
		r := skeleton.Renderer{Theme: ctx.Theme, Phase: ctx.Phase}
		return r.Render(skeleton.Props{Type: typ, Width: width})[0].View
	}
	switch skeleton.Variant(typ) {
	case skeleton.TypeChart:
		return ctx.sampleData().chart(width, 2+2*max(ratio, 1), ctx).View()
	case skeleton.TypeList:
		return ctx.sampleData().list(width, ctx).View()
	case skeleton.TypeTable:
		return ctx.sampleData().table(width, ctx).View()
	default:
		return ctx.sampleData().scoreCard(n, width, ctx).View()
	}
}

// flow joins single-line items with sep, wrapping before width is passed.
func flow(items []string, sep string, width int) string {
	var lines []string
	var cur string
	for _, it := range items {
		switch {
		case cur == "":
			cur = it
		case components.VisibleLen(cur)+components.VisibleLen(sep)+components.VisibleLen(it) > width:
			lines = append(lines, cur)
			cur = it
		default:
			cur += sep + it
		}
	}
	if cur != "" {
		lines = append(lines, cur)
	}
	return strings.Join(lines, "\n")
}

func (c PageContext) sampleData() samples {
	if len(c.data.series) == 0 {
		return samplesAt(0)
	}
	return c.data
}
