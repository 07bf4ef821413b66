// pulse-ui renders the skeleton placeholders and design tokens of the
// pulse component kit, and hosts an interactive gallery of its atoms and
// molecules.
//
// Usage:
//
//	pulse-ui [flags]
//
// Flags:
//
//	-config string       Path to configuration file (default: $XDG_CONFIG_HOME/pulse-ui/config.toml)
//	-theme string        Theme name (light|dark|custom name from the config)
//	-color-depth string  Colour depth (auto|ascii|16|256|truecolor)
//	-skeleton string     Skeleton type to print (score-card|chart|list|table)
//	-count int           Number of placeholders to print
//	-width int           Placeholder width in cells (0 = config or terminal width)
//	-animate             Pulse the placeholders until q is pressed
//	-gallery             Launch the interactive component gallery
//	-tokens string       Write the design tokens to stdout (yaml|toml)
//	-print-config        Write the effective configuration as TOML and exit
//	-log-file string     Append logs to this file instead of stderr
//	-verbose             Enable debug logging
//	-version             Print version and exit
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"gitlab.com/tinyland/lab/pulse-ui/pkg/app"
	"gitlab.com/tinyland/lab/pulse-ui/pkg/config"
	"gitlab.com/tinyland/lab/pulse-ui/pkg/skeleton"
	"gitlab.com/tinyland/lab/pulse-ui/pkg/terminal"
	"gitlab.com/tinyland/lab/pulse-ui/pkg/theme"
	"gitlab.com/tinyland/lab/pulse-ui/pkg/tokens"
)

var (
	version = "0.1.0"
	commit  = "dev"
	date    = "unknown"
)

func main() {
	var (
		configPath  = flag.String("config", "", "Path to configuration file")
		themeName   = flag.String("theme", "", "Theme name (overrides config)")
		colorDepth  = flag.String("color-depth", "", "Colour depth: auto|ascii|16|256|truecolor")
		skelType    = flag.String("skeleton", "", "Skeleton type to print (score-card|chart|list|table)")
		count       = flag.Int("count", 0, "Number of placeholders to print (0 = config)")
		width       = flag.Int("width", 0, "Placeholder width in cells (0 = config or terminal width)")
		animate     = flag.Bool("animate", false, "Pulse the placeholders until q is pressed")
		runGallery  = flag.Bool("gallery", false, "Launch the interactive component gallery")
		tokenFormat = flag.String("tokens", "", "Write the design tokens to stdout (yaml|toml)")
		printConfig = flag.Bool("print-config", false, "Write the effective configuration as TOML and exit")
		logFile     = flag.String("log-file", "", "Append logs to this file instead of stderr")
		verbose     = flag.Bool("verbose", false, "Enable debug logging")
		showVersion = flag.Bool("version", false, "Print version and exit")
	)
	flag.Parse()

	if *showVersion {
		fmt.Printf("pulse-ui %s (%s) built %s\n", version, commit, date)
		os.Exit(0)
	}

	// Token export doesn't depend on config or the terminal.
	if *tokenFormat != "" {
		if err := writeTokens(os.Stdout, *tokenFormat); err != nil {
			fmt.Fprintf(os.Stderr, "%v\n", err)
			os.Exit(1)
		}
		os.Exit(0)
	}

	cfg, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	err = applyOverrides(cfg, overrides{
		theme:      *themeName,
		colorDepth: *colorDepth,
		skeleton:   *skelType,
		count:      *count,
		width:      *width,
		verbose:    *verbose,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid config: %v\n", err)
		os.Exit(1)
	}

	if *printConfig {
		if err := config.WriteTOML(os.Stdout, cfg); err != nil {
			fmt.Fprintf(os.Stderr, "failed to write config: %v\n", err)
			os.Exit(1)
		}
		os.Exit(0)
	}

	logger, closeLog, err := newLogger(cfg.General.LogLevel, *logFile, *runGallery || *animate)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to open log file: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()
	slog.SetDefault(logger)

	caps := terminal.DetectCapabilities()
	logger.Debug("terminal detected",
		"term", caps.Term.String(),
		"depth", caps.Depth.String(),
		"unicode", caps.Unicode,
		"interactive", caps.Interactive,
		"cols", caps.Size.Cols,
	)

	depth, err := terminal.ResolveDepth(cfg.Theme.ColorDepth)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
	lipgloss.SetColorProfile(depth.Profile())

	t, err := setupTheme(cfg, depth)
	if err != nil {
		fmt.Fprintf(os.Stderr, "theme setup failed: %v\n", err)
		os.Exit(1)
	}
	if !caps.Unicode {
		cfg.Theme.ASCIIIcons = true
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	props := skeleton.Props{
		Type:  skeleton.Type(cfg.Skeleton.Type),
		Count: cfg.Skeleton.Count,
		Width: cfg.Skeleton.Width,
	}
	if props.Width == 0 {
		props.Width = min(caps.Size.Cols, 60)
	}
	renderer := skeleton.Renderer{Theme: t, Logger: logger}
	galleryCfg := app.ConfigFrom(cfg, int(depth))

	switch {
	case *runGallery:
		if !terminal.Interactive(os.Stdout) {
			fmt.Fprintln(os.Stderr, "-gallery needs an interactive terminal")
			os.Exit(1)
		}
		model := app.NewAppModel(galleryCfg).WithLogger(logger)
		p := tea.NewProgram(model,
			tea.WithAltScreen(),
			tea.WithMouseCellMotion(),
			tea.WithContext(ctx),
		)
		if err := runProgram(p); err != nil {
			logger.Error("gallery error", "error", err)
			fmt.Fprintf(os.Stderr, "gallery error: %v\n", err)
			os.Exit(1)
		}

	case *animate:
		model := app.NewPreviewModel(props, renderer, galleryCfg)
		p := tea.NewProgram(model, tea.WithContext(ctx))
		if err := runProgram(p); err != nil {
			logger.Error("preview error", "error", err)
			fmt.Fprintf(os.Stderr, "preview error: %v\n", err)
			os.Exit(1)
		}

	default:
		fmt.Println(renderer.View(props))
	}
}

// overrides holds the command-line settings that win over file and
// environment.
type overrides struct {
	theme      string
	colorDepth string
	skeleton   string
	count      int
	width      int
	verbose    bool
}

// applyOverrides merges o into cfg and validates the result. The skeleton
// tag is set after validation: the renderer substitutes score-card for an
// unrecognised tag, and the command line keeps that behaviour.
func applyOverrides(cfg *config.Config, o overrides) error {
	if o.theme != "" {
		cfg.Theme.Name = o.theme
	}
	if o.colorDepth != "" {
		cfg.Theme.ColorDepth = o.colorDepth
	}
	if o.count > 0 {
		cfg.Skeleton.Count = o.count
	}
	if o.width > 0 {
		cfg.Skeleton.Width = o.width
	}
	if o.verbose {
		cfg.General.LogLevel = "debug"
	}

	if err := cfg.Validate(); err != nil {
		return err
	}
	if o.skeleton != "" {
		cfg.Skeleton.Type = o.skeleton
	}
	return nil
}

// loadConfig reads path, or searches the standard locations when path is
// empty.
func loadConfig(path string) (*config.Config, error) {
	if path != "" {
		return config.LoadFromFile(path)
	}
	return config.Load()
}

// setupTheme registers a theme file if one is configured, then adapts the
// selected theme to depth and makes it current. A theme file replaces the
// default theme name in cfg.
func setupTheme(cfg *config.Config, depth terminal.Depth) (theme.Theme, error) {
	if cfg.Theme.File != "" {
		data, err := os.ReadFile(cfg.Theme.File)
		if err != nil {
			return theme.Theme{}, fmt.Errorf("read theme file: %w", err)
		}
		custom, err := theme.LoadFromTOML(data)
		if err != nil {
			return theme.Theme{}, fmt.Errorf("parse theme file %s: %w", cfg.Theme.File, err)
		}
		if err := theme.Register(custom); err != nil {
			return theme.Theme{}, fmt.Errorf("register theme %q: %w", custom.Name, err)
		}
		if cfg.Theme.Name == config.DefaultConfig().Theme.Name {
			cfg.Theme.Name = custom.Name
		}
	}

	t, err := theme.Lookup(cfg.Theme.Name)
	if err != nil {
		return theme.Theme{}, err
	}
	t = theme.Adapt(t, int(depth))
	theme.Use(t)
	return t, nil
}

func writeTokens(w io.Writer, format string) error {
	switch format {
	case "yaml", "yml":
		return tokens.WriteYAML(w)
	case "toml":
		return tokens.WriteTOML(w)
	default:
		return fmt.Errorf("unknown token format: %s (supported: yaml, toml)", format)
	}
}

// newLogger builds the text logger. While a TUI owns the screen, logs go
// to the file only, or nowhere.
func newLogger(level, path string, tui bool) (*slog.Logger, func(), error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		lvl = slog.LevelInfo
	}

	var w io.Writer = os.Stderr
	if tui {
		w = io.Discard
	}
	closeFn := func() {}
	if path != "" {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, err
		}
		w = f
		closeFn = func() { f.Close() }
	}

	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl})), closeFn, nil
}

// runProgram runs p, treating cancellation by signal as a clean exit.
func runProgram(p *tea.Program) error {
	_, err := p.Run()
	if errors.Is(err, tea.ErrProgramKilled) {
		return nil
	}
	return err
}
