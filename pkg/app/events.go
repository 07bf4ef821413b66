// Package app is the interactive component gallery: a bubbletea program
// that pages through the design tokens, the atoms, the molecules laid out
// on a configurable grid, and the skeleton placeholders.
//
// The molecules page starts out drawn as skeletons and swaps to the real
// components when the first sample refresh arrives.
package app

import "time"

// TickEvent is sent by the refresh ticker. Each tick advances the sample
// data by one step.
type TickEvent struct {
	Time time.Time
}

// PageFocusEvent requests a jump to the page with the given ID.
type PageFocusEvent struct {
	PageID string
}

// ThemeChangeEvent switches the active theme.
type ThemeChangeEvent struct {
	Theme string
}

// LayoutPresetEvent switches the molecules page to a named layout preset
// ("dashboard", "compact", "wide").
type LayoutPresetEvent struct {
	Preset string
}
