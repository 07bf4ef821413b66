package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gitlab.com/tinyland/lab/pulse-ui/pkg/config"
	"gitlab.com/tinyland/lab/pulse-ui/pkg/skeleton"
	"gitlab.com/tinyland/lab/pulse-ui/pkg/terminal"
	"gitlab.com/tinyland/lab/pulse-ui/pkg/theme"
)

func TestWriteTokens(t *testing.T) {
	tests := []struct {
		format  string
		want    string
		wantErr bool
	}{
		{"yaml", "primary", false},
		{"yml", "primary", false},
		{"toml", "primary", false},
		{"json", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			var buf bytes.Buffer
			err := writeTokens(&buf, tt.format)
			if (err != nil) != tt.wantErr {
				t.Fatalf("writeTokens(%q) error = %v, wantErr %v", tt.format, err, tt.wantErr)
			}
			if !tt.wantErr && !strings.Contains(buf.String(), tt.want) {
				t.Errorf("writeTokens(%q) output lacks %q", tt.format, tt.want)
			}
		})
	}
}

func TestNewLogger(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pulse.log")
	logger, closeLog, err := newLogger("debug", path, true)
	if err != nil {
		t.Fatalf("newLogger: %v", err)
	}
	logger.Debug("hello", "k", "v")
	closeLog()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if !strings.Contains(string(data), "msg=hello") {
		t.Errorf("log file = %q, want msg=hello", data)
	}

	if _, _, err := newLogger("info", filepath.Join(t.TempDir(), "missing", "x.log"), false); err == nil {
		t.Error("newLogger with unwritable path should fail")
	}
}

func TestLoadConfigExplicitPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("[theme]\nname = \"dark\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := loadConfig(path)
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}
	if cfg.Theme.Name != "dark" {
		t.Errorf("Theme.Name = %q, want dark", cfg.Theme.Name)
	}
}

func TestSetupTheme(t *testing.T) {
	t.Cleanup(func() { theme.SetCurrent(theme.DefaultName) })

	t.Run("builtin", func(t *testing.T) {
		cfg := config.DefaultConfig()
		cfg.Theme.Name = "dark"
		got, err := setupTheme(cfg, terminal.DepthTrue)
		if err != nil {
			t.Fatalf("setupTheme: %v", err)
		}
		if got.Name != "dark" || theme.Current().Name != "dark" {
			t.Errorf("theme = %q, current = %q, want dark", got.Name, theme.Current().Name)
		}
	})

	t.Run("file replaces default name", func(t *testing.T) {
		custom := theme.Get("dark")
		custom.Name = "ocean"
		data, err := theme.SaveToTOML(custom)
		if err != nil {
			t.Fatal(err)
		}
		path := filepath.Join(t.TempDir(), "ocean.toml")
		if err := os.WriteFile(path, data, 0o644); err != nil {
			t.Fatal(err)
		}

		cfg := config.DefaultConfig()
		cfg.Theme.File = path
		got, err := setupTheme(cfg, terminal.DepthTrue)
		if err != nil {
			t.Fatalf("setupTheme: %v", err)
		}
		if got.Name != "ocean" || cfg.Theme.Name != "ocean" {
			t.Errorf("theme = %q, cfg name = %q, want ocean", got.Name, cfg.Theme.Name)
		}
	})

	t.Run("unknown name", func(t *testing.T) {
		cfg := config.DefaultConfig()
		cfg.Theme.Name = "neon"
		if _, err := setupTheme(cfg, terminal.DepthTrue); err == nil {
			t.Error("setupTheme(neon) should fail")
		}
	})

	t.Run("missing file", func(t *testing.T) {
		cfg := config.DefaultConfig()
		cfg.Theme.File = filepath.Join(t.TempDir(), "nope.toml")
		if _, err := setupTheme(cfg, terminal.DepthTrue); err == nil {
			t.Error("setupTheme with missing file should fail")
		}
	})
}

func TestApplyOverrides(t *testing.T) {
	tests := []struct {
		name     string
		o        overrides
		wantType string
		wantErr  bool
	}{
		{name: "known skeleton", o: overrides{skeleton: "list", count: 2, width: 20}, wantType: "list"},
		{name: "unknown skeleton falls through", o: overrides{skeleton: "donut"}, wantType: "donut"},
		{name: "no skeleton keeps config", o: overrides{}, wantType: "score-card"},
		{name: "bad colour depth", o: overrides{colorDepth: "8bit"}, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.DefaultConfig()
			err := applyOverrides(cfg, tt.o)
			if (err != nil) != tt.wantErr {
				t.Fatalf("applyOverrides error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if cfg.Skeleton.Type != tt.wantType {
				t.Errorf("Skeleton.Type = %q, want %q", cfg.Skeleton.Type, tt.wantType)
			}
		})
	}
}

func TestUnknownSkeletonFlagRendersScoreCard(t *testing.T) {
	cfg := config.DefaultConfig()
	if err := applyOverrides(cfg, overrides{skeleton: "donut", width: 30}); err != nil {
		t.Fatalf("applyOverrides: %v", err)
	}

	r := skeleton.Renderer{Theme: theme.Get(theme.DefaultName)}
	got := r.View(skeleton.Props{Type: skeleton.Type(cfg.Skeleton.Type), Width: cfg.Skeleton.Width})
	want := r.View(skeleton.Props{Type: skeleton.TypeScoreCard, Width: 30})
	if got != want {
		t.Errorf("unknown tag rendered\n%s\nwant score-card\n%s", got, want)
	}
}

func TestConfigFileStillRejectsUnknownSkeleton(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Skeleton.Type = "donut"
	if err := applyOverrides(cfg, overrides{}); err == nil {
		t.Error("unknown skeleton type from the config file should fail validation")
	}
}
