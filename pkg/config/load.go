package config

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/BurntSushi/toml"
)

const appDir = "pulse-ui"

// Load reads configuration from the standard config path.
// Search order:
//  1. $XDG_CONFIG_HOME/pulse-ui/config.toml
//  2. ~/.config/pulse-ui/config.toml
//
// If no file exists, returns DefaultConfig() with environment overrides.
func Load() (*Config, error) {
	for _, p := range configSearchPaths() {
		if _, err := os.Stat(p); err == nil {
			return LoadFromFile(p)
		}
	}
	cfg := DefaultConfig()
	applyEnvOverrides(cfg)
	return cfg, nil
}

// LoadFromFile reads configuration from a specific file path. A missing
// file is not an error.
func LoadFromFile(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			cfg := DefaultConfig()
			applyEnvOverrides(cfg)
			return cfg, nil
		}
		return nil, fmt.Errorf("config: open %s: %w", path, err)
	}
	defer f.Close()

	cfg, err := LoadFromReader(f)
	if err != nil {
		return nil, fmt.Errorf("%w (%s)", err, path)
	}
	if cfg.Theme.File != "" && !filepath.IsAbs(cfg.Theme.File) {
		cfg.Theme.File = filepath.Join(filepath.Dir(path), cfg.Theme.File)
	}
	return cfg, nil
}

// LoadFromReader decodes TOML over the defaults and applies environment
// overrides. Keys that are not part of the schema are rejected.
func LoadFromReader(r io.Reader) (*Config, error) {
	cfg := DefaultConfig()
	md, err := toml.NewDecoder(r).Decode(cfg)
	if err != nil {
		return nil, fmt.Errorf("config: decode: %w", err)
	}
	if undec := md.Undecoded(); len(undec) > 0 {
		return nil, fmt.Errorf("config: unknown key %q", undec[0].String())
	}
	applyEnvOverrides(cfg)
	return cfg, nil
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		General: GeneralConfig{
			LogLevel: "info",
		},
		Theme: ThemeConfig{
			Name:       "light",
			ColorDepth: "auto",
		},
		Skeleton: SkeletonConfig{
			Type:          "score-card",
			Count:         1,
			PulseInterval: Duration{600 * time.Millisecond},
		},
		Layout: LayoutConfig{
			Preset: "dashboard",
			Gap:    1,
		},
	}
}

// WriteTOML encodes cfg to w.
func WriteTOML(w io.Writer, cfg *Config) error {
	if err := toml.NewEncoder(w).Encode(cfg); err != nil {
		return fmt.Errorf("config: encode: %w", err)
	}
	return nil
}

// applyEnvOverrides checks environment variables and overrides config values.
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("PULSE_UI_THEME"); v != "" {
		cfg.Theme.Name = v
	}
	if v := os.Getenv("PULSE_UI_COLOR_DEPTH"); v != "" {
		cfg.Theme.ColorDepth = v
	}
	if v := os.Getenv("PULSE_UI_LOG_LEVEL"); v != "" {
		cfg.General.LogLevel = v
	}
	if v := os.Getenv("PULSE_UI_LAYOUT"); v != "" {
		cfg.Layout.Preset = v
	}
	if v := os.Getenv("PULSE_UI_ASCII_ICONS"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.Theme.ASCIIIcons = b
		}
	}
}

// configSearchPaths returns the ordered list of config file paths to try.
func configSearchPaths() []string {
	home, _ := os.UserHomeDir()
	var paths []string

	xdg := xdgConfigHome(home)
	paths = append(paths, filepath.Join(xdg, appDir, "config.toml"))

	// If XDG_CONFIG_HOME was explicitly set, also try the fallback default.
	defaultXDG := filepath.Join(home, ".config")
	if xdg != defaultXDG {
		paths = append(paths, filepath.Join(defaultXDG, appDir, "config.toml"))
	}

	return paths
}

// xdgConfigHome returns XDG_CONFIG_HOME or ~/.config as fallback.
func xdgConfigHome(home string) string {
	if v := os.Getenv("XDG_CONFIG_HOME"); v != "" {
		return v
	}
	return filepath.Join(home, ".config")
}
