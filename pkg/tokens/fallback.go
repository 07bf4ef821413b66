package tokens

import (
	"strconv"
	"sync"

	"github.com/lucasb-eyer/go-colorful"
)

// xterm 6x6x6 cube channel levels.
var cubeLevels = [6]uint8{0, 95, 135, 175, 215, 255}

type xtermEntry struct {
	index int
	color colorful.Color
}

var (
	xtermOnce  sync.Once
	xtermTable []xtermEntry
)

// xtermPalette builds indices 16-255 of the 256-colour palette. The first
// 16 are skipped because terminals remap them to their own theme.
func xtermPalette() []xtermEntry {
	xtermOnce.Do(func() {
		table := make([]xtermEntry, 0, 240)
		for r := 0; r < 6; r++ {
			for g := 0; g < 6; g++ {
				for b := 0; b < 6; b++ {
					table = append(table, xtermEntry{
						index: 16 + 36*r + 6*g + b,
						color: colorful.Color{
							R: float64(cubeLevels[r]) / 255,
							G: float64(cubeLevels[g]) / 255,
							B: float64(cubeLevels[b]) / 255,
						},
					})
				}
			}
		}
		for i := 0; i < 24; i++ {
			v := float64(8+i*10) / 255
			table = append(table, xtermEntry{index: 232 + i, color: colorful.Color{R: v, G: v, B: v}})
		}
		xtermTable = table
	})
	return xtermTable
}

// To256 converts a #rrggbb colour to the nearest xterm-256 index (as a
// decimal string) by CIE Lab distance. Anything that is not a hex colour,
// Transparent included, is returned unchanged.
func To256(hex string) string {
	if !IsHex(hex) {
		return hex
	}
	c, err := colorful.Hex(hex)
	if err != nil {
		return hex
	}

	best := -1
	bestDist := 0.0
	for _, e := range xtermPalette() {
		d := c.DistanceLab(e.color)
		if best < 0 || d < bestDist {
			best = e.index
			bestDist = d
		}
	}
	return strconv.Itoa(best)
}
