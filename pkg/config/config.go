// Package config provides TOML-based configuration for pulse-ui: the
// theme and colour depth to render with, the default skeleton placeholder,
// and the gallery page layout.
package config

// Config is the root configuration document.
type Config struct {
	General  GeneralConfig  `toml:"general"`
	Theme    ThemeConfig    `toml:"theme"`
	Skeleton SkeletonConfig `toml:"skeleton"`
	Layout   LayoutConfig   `toml:"layout"`
}

// GeneralConfig holds process-wide settings.
type GeneralConfig struct {
	LogLevel string `toml:"log_level" validate:"log_level"`
}

// ThemeConfig selects the active theme.
type ThemeConfig struct {
	Name string `toml:"name" validate:"required"`

	// File points at a TOML theme definition. When set it is registered
	// and used instead of Name.
	File string `toml:"file"`

	// ColorDepth is one of auto, ascii, 16, 256 or truecolor.
	ColorDepth string `toml:"color_depth" validate:"oneof=auto ascii 16 256 truecolor"`

	ASCIIIcons bool `toml:"ascii_icons"`
}

// SkeletonConfig sets the placeholder drawn by the CLI when no flag
// overrides it.
type SkeletonConfig struct {
	Type          string   `toml:"type" validate:"skeleton_type"`
	Count         int      `toml:"count" validate:"gte=0,lte=64"`
	Width         int      `toml:"width" validate:"gte=0"`
	PulseInterval Duration `toml:"pulse_interval"`
}

// LayoutConfig describes the gallery page grid. Rows is filled from Preset
// when empty.
type LayoutConfig struct {
	Preset string      `toml:"preset" validate:"layout_preset"`
	Gap    int         `toml:"gap" validate:"gte=0,lte=8"`
	Rows   []RowConfig `toml:"rows" validate:"dive"`
}

// RowConfig is one grid row.
type RowConfig struct {
	Ratio    int           `toml:"ratio" validate:"gte=1"`
	Children []ChildConfig `toml:"children" validate:"min=1,dive"`
}

// ChildConfig is one cell of a row. Type names a skeleton shape, which is
// also the molecule drawn in that cell once data arrives.
type ChildConfig struct {
	Type  string `toml:"type" validate:"required,skeleton_type"`
	Ratio int    `toml:"ratio" validate:"gte=1"`
}

// ResolvedRows returns the configured rows, or the preset's rows when none
// are configured.
func (l LayoutConfig) ResolvedRows() []RowConfig {
	if len(l.Rows) > 0 {
		return l.Rows
	}
	return LayoutPreset(l.Preset).Rows
}
