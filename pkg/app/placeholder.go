package app

import (
	"fmt"
	"strings"

	"gitlab.com/tinyland/lab/pulse-ui/pkg/components"
	"gitlab.com/tinyland/lab/pulse-ui/pkg/layout"
	"gitlab.com/tinyland/lab/pulse-ui/pkg/skeleton"
)

// PlaceholderPage shows every skeleton shape pulsing, plus what an
// unrecognised tag falls back to.
type PlaceholderPage struct {
	Types   []skeleton.Type
	Unknown skeleton.Type // demo tag for the fallback row; empty skips it
}

// NewPlaceholderPage returns the page with all four shapes and a "gauge"
// fallback example.
func NewPlaceholderPage() PlaceholderPage {
	return PlaceholderPage{Types: skeleton.Types(), Unknown: "gauge"}
}

func (PlaceholderPage) ID() string    { return "skeletons" }
func (PlaceholderPage) Title() string { return "Skeletons" }

// View draws the shapes two to a row at the current shimmer phase.
func (p PlaceholderPage) View(ctx PageContext) string {
	t := ctx.Theme
	width := max(ctx.Width, 24)
	r := skeleton.Renderer{Theme: t, Phase: ctx.Phase}

	var b strings.Builder
	if ctx.Spinner != "" {
		b.WriteString(ctx.Spinner)
		b.WriteString(" ")
	}
	b.WriteString(components.Caption(fmt.Sprintf("phase %d", ctx.Phase), t))
	b.WriteString("\n\n")

	colW := layout.Even(width, 2, 2)
	var blocks []string
	for _, typ := range p.Types {
		item := r.Render(skeleton.Props{Type: typ, Width: colW[0]})[0]
		blocks = append(blocks, components.Heading(string(item.Type), t)+"\n"+item.View)
	}
	b.WriteString(layout.Grid{Columns: 2, Gap: 2, RowGap: 1, Width: width}.View(blocks...))

	if p.Unknown != "" {
		item := r.Render(skeleton.Props{Type: p.Unknown, Width: colW[0]})[0]
		b.WriteString("\n\n")
		b.WriteString(components.Heading(fmt.Sprintf("%q falls back to %s", p.Unknown, item.Type), t))
		b.WriteString("\n")
		b.WriteString(item.View)
	}
	return b.String()
}
