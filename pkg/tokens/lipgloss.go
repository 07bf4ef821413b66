package tokens

import "github.com/charmbracelet/lipgloss"

// Color returns the lipgloss colour for a semantic role. Unknown roles give
// an empty colour, which lipgloss treats as "no colour".
func Color(r Role) lipgloss.Color {
	hex, _ := Resolve(r)
	return lipgloss.Color(hex)
}

// ShadeColor returns the lipgloss colour for a palette shade.
func ShadeColor(p Palette, s Shade) lipgloss.Color {
	hex, _ := Lookup(p, s)
	return lipgloss.Color(hex)
}

// Adaptive pairs two roles so lipgloss picks one based on the terminal's
// background.
func Adaptive(light, dark Role) lipgloss.AdaptiveColor {
	l, _ := Resolve(light)
	d, _ := Resolve(dark)
	return lipgloss.AdaptiveColor{Light: l, Dark: d}
}

// StatusColor is Color(s.Role()).
func StatusColor(s Status) lipgloss.Color {
	return Color(s.Role())
}
