// Package tokens holds the pulse-ui colour design tokens: seven shade ramps
// (navy, brand, optimal, good, attention, concern, neutral), a few flat
// colours, and the semantic aliases derived from them.
//
// Every palette shade is an exported constant. Semantic aliases are defined
// in terms of those constants, so an alias that points at a missing shade
// does not compile. The lookup tables built from the constants are never
// mutated after package init; accessors hand out copies.
package tokens

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Palette names a colour ramp.
type Palette string

const (
	Navy      Palette = "navy"
	Brand     Palette = "brand"
	Optimal   Palette = "optimal"
	Good      Palette = "good"
	Attention Palette = "attention"
	Concern   Palette = "concern"
	Neutral   Palette = "neutral"
)

// Shade is a numeric key into a ramp, from lightest (50) to darkest (950).
type Shade int

const (
	Shade50  Shade = 50
	Shade100 Shade = 100
	Shade200 Shade = 200
	Shade300 Shade = 300
	Shade400 Shade = 400
	Shade500 Shade = 500
	Shade600 Shade = 600
	Shade700 Shade = 700
	Shade800 Shade = 800
	Shade900 Shade = 900
	Shade950 Shade = 950
)

// Flat colours that sit outside the ramps.
const (
	White       = "#ffffff"
	Black       = "#000000"
	Transparent = "transparent"
)

// Navy ramp: deep blue used for text and chrome.
const (
	Navy50  = "#f0f4fa"
	Navy100 = "#dce5f3"
	Navy200 = "#bccde8"
	Navy300 = "#8fabd7"
	Navy400 = "#5c82c2"
	Navy500 = "#3a62ab"
	Navy600 = "#2b4c8f"
	Navy700 = "#243e74"
	Navy800 = "#1f3460"
	Navy900 = "#1b2b4f"
	Navy950 = "#111a33"
)

// Brand ramp: teal.
const (
	Brand50  = "#effcfa"
	Brand100 = "#c9f6ef"
	Brand200 = "#94ede0"
	Brand300 = "#58dccc"
	Brand400 = "#2ac2b3"
	Brand500 = "#14a699"
	Brand600 = "#0d857c"
	Brand700 = "#0f6a64"
	Brand800 = "#115551"
	Brand900 = "#124744"
	Brand950 = "#042a29"
)

// Optimal ramp: green, for scores in the top band.
const (
	Optimal50  = "#ecfdf5"
	Optimal100 = "#d1fae5"
	Optimal200 = "#a7f3d0"
	Optimal300 = "#6ee7b7"
	Optimal400 = "#34d399"
	Optimal500 = "#10b981"
	Optimal600 = "#059669"
	Optimal700 = "#047857"
	Optimal800 = "#065f46"
	Optimal900 = "#064e3b"
	Optimal950 = "#022c22"
)

// Good ramp: lime.
const (
	Good50  = "#f7fee7"
	Good100 = "#ecfccb"
	Good200 = "#d9f99d"
	Good300 = "#bef264"
	Good400 = "#a3e635"
	Good500 = "#84cc16"
	Good600 = "#65a30d"
	Good700 = "#4d7c0f"
	Good800 = "#3f6212"
	Good900 = "#365314"
	Good950 = "#1a2e05"
)

// Attention ramp: amber.
const (
	Attention50  = "#fffbeb"
	Attention100 = "#fef3c7"
	Attention200 = "#fde68a"
	Attention300 = "#fcd34d"
	Attention400 = "#fbbf24"
	Attention500 = "#f59e0b"
	Attention600 = "#d97706"
	Attention700 = "#b45309"
	Attention800 = "#92400e"
	Attention900 = "#78350f"
	Attention950 = "#451a03"
)

// Concern ramp: red.
const (
	Concern50  = "#fef2f2"
	Concern100 = "#fee2e2"
	Concern200 = "#fecaca"
	Concern300 = "#fca5a5"
	Concern400 = "#f87171"
	Concern500 = "#ef4444"
	Concern600 = "#dc2626"
	Concern700 = "#b91c1c"
	Concern800 = "#991b1b"
	Concern900 = "#7f1d1d"
	Concern950 = "#450a0a"
)

// Neutral ramp: slate grey.
const (
	Neutral50  = "#f8fafc"
	Neutral100 = "#f1f5f9"
	Neutral200 = "#e2e8f0"
	Neutral300 = "#cbd5e1"
	Neutral400 = "#94a3b8"
	Neutral500 = "#64748b"
	Neutral600 = "#475569"
	Neutral700 = "#334155"
	Neutral800 = "#1e293b"
	Neutral900 = "#0f172a"
	Neutral950 = "#020617"
)

var (
	// ErrUnknownPalette is returned when a palette name is not one of the
	// seven ramps.
	ErrUnknownPalette = errors.New("tokens: unknown palette")
	// ErrUnknownShade is returned for shade keys outside 50..950.
	ErrUnknownShade = errors.New("tokens: unknown shade")
)

var paletteOrder = []Palette{Navy, Brand, Optimal, Good, Attention, Concern, Neutral}

var shadeOrder = []Shade{
	Shade50, Shade100, Shade200, Shade300, Shade400, Shade500,
	Shade600, Shade700, Shade800, Shade900, Shade950,
}

// ramps is indexed in shadeOrder order.
var ramps = map[Palette][11]string{
	Navy: {
		Navy50, Navy100, Navy200, Navy300, Navy400, Navy500,
		Navy600, Navy700, Navy800, Navy900, Navy950,
	},
	Brand: {
		Brand50, Brand100, Brand200, Brand300, Brand400, Brand500,
		Brand600, Brand700, Brand800, Brand900, Brand950,
	},
	Optimal: {
		Optimal50, Optimal100, Optimal200, Optimal300, Optimal400, Optimal500,
		Optimal600, Optimal700, Optimal800, Optimal900, Optimal950,
	},
	Good: {
		Good50, Good100, Good200, Good300, Good400, Good500,
		Good600, Good700, Good800, Good900, Good950,
	},
	Attention: {
		Attention50, Attention100, Attention200, Attention300, Attention400, Attention500,
		Attention600, Attention700, Attention800, Attention900, Attention950,
	},
	Concern: {
		Concern50, Concern100, Concern200, Concern300, Concern400, Concern500,
		Concern600, Concern700, Concern800, Concern900, Concern950,
	},
	Neutral: {
		Neutral50, Neutral100, Neutral200, Neutral300, Neutral400, Neutral500,
		Neutral600, Neutral700, Neutral800, Neutral900, Neutral950,
	},
}

// Palettes returns the ramp names in declaration order.
func Palettes() []Palette {
	out := make([]Palette, len(paletteOrder))
	copy(out, paletteOrder)
	return out
}

// Shades returns the shade keys in ascending order.
func Shades() []Shade {
	out := make([]Shade, len(shadeOrder))
	copy(out, shadeOrder)
	return out
}

// Lookup returns the hex colour for a palette shade.
func Lookup(p Palette, s Shade) (string, bool) {
	ramp, ok := ramps[p]
	if !ok {
		return "", false
	}
	idx := shadeIndex(s)
	if idx < 0 {
		return "", false
	}
	return ramp[idx], true
}

// MustLookup is Lookup for callers holding known-good constants. It panics
// on an unknown palette or shade.
func MustLookup(p Palette, s Shade) string {
	hex, ok := Lookup(p, s)
	if !ok {
		panic(fmt.Sprintf("tokens: no colour for %s.%d", p, s))
	}
	return hex
}

// Scale returns a copy of the full ramp for p, or nil if p is unknown.
func Scale(p Palette) map[Shade]string {
	ramp, ok := ramps[p]
	if !ok {
		return nil
	}
	out := make(map[Shade]string, len(shadeOrder))
	for i, s := range shadeOrder {
		out[s] = ramp[i]
	}
	return out
}

// ParsePalette converts a case-insensitive palette name.
func ParsePalette(name string) (Palette, error) {
	p := Palette(strings.ToLower(strings.TrimSpace(name)))
	if _, ok := ramps[p]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownPalette, name)
	}
	return p, nil
}

// ParseShade converts a shade key such as "500".
func ParseShade(key string) (Shade, error) {
	n, err := strconv.Atoi(strings.TrimSpace(key))
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrUnknownShade, key)
	}
	return ShadeOf(n)
}

// ShadeOf converts a numeric shade key such as 500, as decoded from TOML
// or YAML integers.
func ShadeOf(n int) (Shade, error) {
	s := Shade(n)
	if shadeIndex(s) < 0 {
		return 0, fmt.Errorf("%w: %d", ErrUnknownShade, n)
	}
	return s, nil
}

// String renders the shade key as a decimal string.
func (s Shade) String() string {
	return strconv.Itoa(int(s))
}

func shadeIndex(s Shade) int {
	for i, k := range shadeOrder {
		if k == s {
			return i
		}
	}
	return -1
}
