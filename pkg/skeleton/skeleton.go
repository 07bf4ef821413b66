// Package skeleton renders loading placeholders: static block shapes that
// stand in for a score card, chart, list or table while its data is on the
// way. Selection is a pure switch over four tags; an unrecognised tag
// silently falls back to the score-card shape.
package skeleton

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"gitlab.com/tinyland/lab/pulse-ui/pkg/theme"
)

// Type selects a placeholder shape.
type Type string

const (
	TypeScoreCard Type = "score-card"
	TypeChart     Type = "chart"
	TypeList      Type = "list"
	TypeTable     Type = "table"
)

// Types lists the recognised tags.
func Types() []Type {
	return []Type{TypeScoreCard, TypeChart, TypeList, TypeTable}
}

// Known reports whether t is one of the four recognised tags.
func (t Type) Known() bool {
	switch t {
	case TypeScoreCard, TypeChart, TypeList, TypeTable:
		return true
	default:
		return false
	}
}

// Variant maps a tag to the shape that will be drawn for it. Recognised
// tags map to themselves; anything else maps to TypeScoreCard.
func Variant(t Type) Type {
	if t.Known() {
		return t
	}
	return TypeScoreCard
}

// Props configures a render.
type Props struct {
	Type  Type
	Count int // instances to render; <= 0 means 1
	Width int // outer width in cells; <= 0 uses the shape's natural width
}

// Item is one rendered placeholder.
type Item struct {
	Key  string // positional, stable across renders: skeleton-<type>-<index>
	Type Type   // the variant actually drawn
	View string
}

// Key returns the identity key for the index-th instance of t.
func Key(t Type, index int) string {
	return fmt.Sprintf("skeleton-%s-%d", t, index)
}

// Renderer draws placeholders with a theme and shimmer phase.
type Renderer struct {
	Theme  theme.Theme // zero value = theme.Current() at render time
	Phase  int         // shimmer phase; odd phases swap base and highlight
	Logger *slog.Logger
}

// Render draws Count instances of the variant selected by p.Type.
func (r Renderer) Render(p Props) []Item {
	variant := Variant(p.Type)
	if variant != p.Type && r.Logger != nil {
		r.Logger.LogAttrs(context.Background(), slog.LevelDebug, "unknown skeleton type, using default",
			slog.String("type", string(p.Type)),
			slog.String("fallback", string(variant)))
	}

	count := p.Count
	if count <= 0 {
		count = 1
	}

	view := r.draw(variant, p.Width)
	items := make([]Item, count)
	for i := range items {
		items[i] = Item{Key: Key(variant, i), Type: variant, View: view}
	}
	return items
}

// View renders p and joins the instances with a blank line between them.
func (r Renderer) View(p Props) string {
	items := r.Render(p)
	views := make([]string, len(items))
	for i, it := range items {
		views[i] = it.View
	}
	return strings.Join(views, "\n\n")
}

func (r Renderer) draw(t Type, width int) string {
	pal := r.palette()
	switch t {
	case TypeChart:
		return chart(pal, width)
	case TypeList:
		return list(pal, width)
	case TypeTable:
		return table(pal, width)
	default:
		return scoreCard(pal, width)
	}
}

// Render draws placeholders with the active theme.
func Render(p Props) []Item {
	return Renderer{}.Render(p)
}

// View renders placeholders with the active theme as one string.
func View(p Props) string {
	return Renderer{}.View(p)
}
