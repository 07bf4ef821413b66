// Package theme maps the colour tokens onto the UI roles the components
// actually paint with: borders, titles, status bands, charts and skeleton
// placeholders. Themes are plain structs of hex strings so they can be
// loaded from TOML and down-converted for 256-colour terminals.
package theme

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"

	"gitlab.com/tinyland/lab/pulse-ui/pkg/tokens"
)

// ErrUnknownTheme is returned by Lookup for names not in the registry.
var ErrUnknownTheme = errors.New("theme: unknown theme")

// DefaultName is the theme used when nothing else is selected.
const DefaultName = "light"

// Theme defines the complete colour set for the component kit.
type Theme struct {
	Name string

	// Base colours
	Background string
	Foreground string
	Muted      string
	Primary    string
	Accent     string

	// Chrome
	Border      string
	BorderFocus string
	Title       string

	// Health bands
	StatusOptimal   string
	StatusGood      string
	StatusAttention string
	StatusConcern   string
	StatusUnknown   string

	// Charts (sparklines, block charts, progress bars)
	ChartLine string
	ChartFill string
	ChartGrid string

	// Loading placeholders
	SkeletonBase      string
	SkeletonHighlight string
}

// StatusColor returns the theme colour for a health band.
func (t Theme) StatusColor(s tokens.Status) string {
	switch s {
	case tokens.StatusOptimal:
		return t.StatusOptimal
	case tokens.StatusGood:
		return t.StatusGood
	case tokens.StatusAttention:
		return t.StatusAttention
	case tokens.StatusConcern:
		return t.StatusConcern
	default:
		return t.StatusUnknown
	}
}

var (
	mu       sync.RWMutex
	registry = map[string]Theme{}
	current  Theme
)

func init() {
	registerBuiltins()
	current = lightTheme()
}

// Get returns a named theme, falling back to the light theme if not found.
func Get(name string) Theme {
	t, err := Lookup(name)
	if err != nil {
		mu.RLock()
		defer mu.RUnlock()
		return registry[DefaultName]
	}
	return t
}

// Lookup returns a named theme or ErrUnknownTheme.
func Lookup(name string) (Theme, error) {
	mu.RLock()
	defer mu.RUnlock()
	if t, ok := registry[strings.ToLower(name)]; ok {
		return t, nil
	}
	return Theme{}, fmt.Errorf("%w: %q", ErrUnknownTheme, name)
}

// Names returns all available theme names sorted alphabetically.
func Names() []string {
	mu.RLock()
	defer mu.RUnlock()
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// SetCurrent sets the active theme by name.
func SetCurrent(name string) {
	t := Get(name)
	mu.Lock()
	current = t
	mu.Unlock()
}

// Use makes t the active theme without registering it. It is how an adapted
// (256-colour) copy of a registered theme becomes current.
func Use(t Theme) {
	mu.Lock()
	current = t
	mu.Unlock()
}

// Current returns the active theme.
func Current() Theme {
	mu.RLock()
	defer mu.RUnlock()
	return current
}

// Register validates t and adds it under its lowercase name, replacing any
// theme of the same name.
func Register(t Theme) error {
	if err := validateTheme(t); err != nil {
		return err
	}
	register(t)
	return nil
}

func register(t Theme) {
	mu.Lock()
	defer mu.Unlock()
	registry[strings.ToLower(t.Name)] = t
}
