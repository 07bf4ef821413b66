package app

import (
	"time"

	"gitlab.com/tinyland/lab/pulse-ui/pkg/components"
	"gitlab.com/tinyland/lab/pulse-ui/pkg/config"
	"gitlab.com/tinyland/lab/pulse-ui/pkg/skeleton"
)

// Config holds the gallery settings.
type Config struct {
	// RefreshInterval is how often the sample data moves. Zero disables
	// the ticker and shows real components straight away.
	RefreshInterval time.Duration

	PulseInterval time.Duration
	Theme         string
	ColorDepth    int // bits; >= 24 leaves theme colours untouched
	Icons         components.IconSet
	Layout        config.LayoutConfig
	StartPage     string // page ID; empty = first page
}

// DefaultConfig returns the gallery defaults.
func DefaultConfig() Config {
	return Config{
		RefreshInterval: time.Second,
		PulseInterval:   skeleton.DefaultPulseInterval,
		Theme:           "light",
		ColorDepth:      24,
		Layout:          config.LayoutPreset(config.PresetDashboard),
	}
}

// ConfigFrom builds gallery settings from a loaded config file. depth is
// the resolved colour depth in bits.
func ConfigFrom(c *config.Config, depth int) Config {
	cfg := DefaultConfig()
	cfg.Theme = c.Theme.Name
	cfg.ColorDepth = depth
	cfg.PulseInterval = c.Skeleton.PulseInterval.Or(skeleton.DefaultPulseInterval)
	cfg.Layout = c.Layout
	if c.Theme.ASCIIIcons {
		cfg.Icons = components.IconsASCII
	}
	return cfg
}
