package theme

import (
	"bytes"
	"fmt"

	"github.com/BurntSushi/toml"

	"gitlab.com/tinyland/lab/pulse-ui/pkg/tokens"
)

// tomlTheme is the TOML-serializable representation of a Theme.
type tomlTheme struct {
	Name     string       `toml:"name"`
	Base     tomlBase     `toml:"base"`
	Chrome   tomlChrome   `toml:"chrome"`
	Status   tomlStatus   `toml:"status"`
	Chart    tomlChart    `toml:"chart"`
	Skeleton tomlSkeleton `toml:"skeleton"`
}

type tomlBase struct {
	Background string `toml:"background"`
	Foreground string `toml:"foreground"`
	Muted      string `toml:"muted"`
	Primary    string `toml:"primary"`
	Accent     string `toml:"accent"`
}

type tomlChrome struct {
	Border      string `toml:"border"`
	BorderFocus string `toml:"border_focus"`
	Title       string `toml:"title"`
}

type tomlStatus struct {
	Optimal   string `toml:"optimal"`
	Good      string `toml:"good"`
	Attention string `toml:"attention"`
	Concern   string `toml:"concern"`
	Unknown   string `toml:"unknown"`
}

type tomlChart struct {
	Line string `toml:"line"`
	Fill string `toml:"fill"`
	Grid string `toml:"grid"`
}

type tomlSkeleton struct {
	Base      string `toml:"base"`
	Highlight string `toml:"highlight"`
}

// LoadFromTOML parses a TOML theme definition from raw bytes.
func LoadFromTOML(data []byte) (Theme, error) {
	var tt tomlTheme
	if err := toml.Unmarshal(data, &tt); err != nil {
		return Theme{}, fmt.Errorf("theme: parse TOML: %w", err)
	}

	t := Theme{
		Name:       tt.Name,
		Background: tt.Base.Background,
		Foreground: tt.Base.Foreground,
		Muted:      tt.Base.Muted,
		Primary:    tt.Base.Primary,
		Accent:     tt.Base.Accent,

		Border:      tt.Chrome.Border,
		BorderFocus: tt.Chrome.BorderFocus,
		Title:       tt.Chrome.Title,

		StatusOptimal:   tt.Status.Optimal,
		StatusGood:      tt.Status.Good,
		StatusAttention: tt.Status.Attention,
		StatusConcern:   tt.Status.Concern,
		StatusUnknown:   tt.Status.Unknown,

		ChartLine: tt.Chart.Line,
		ChartFill: tt.Chart.Fill,
		ChartGrid: tt.Chart.Grid,

		SkeletonBase:      tt.Skeleton.Base,
		SkeletonHighlight: tt.Skeleton.Highlight,
	}

	if err := validateTheme(t); err != nil {
		return Theme{}, err
	}
	return t, nil
}

// SaveToTOML serializes a theme to TOML bytes.
func SaveToTOML(t Theme) ([]byte, error) {
	tt := tomlTheme{
		Name: t.Name,
		Base: tomlBase{
			Background: t.Background,
			Foreground: t.Foreground,
			Muted:      t.Muted,
			Primary:    t.Primary,
			Accent:     t.Accent,
		},
		Chrome: tomlChrome{
			Border:      t.Border,
			BorderFocus: t.BorderFocus,
			Title:       t.Title,
		},
		Status: tomlStatus{
			Optimal:   t.StatusOptimal,
			Good:      t.StatusGood,
			Attention: t.StatusAttention,
			Concern:   t.StatusConcern,
			Unknown:   t.StatusUnknown,
		},
		Chart: tomlChart{
			Line: t.ChartLine,
			Fill: t.ChartFill,
			Grid: t.ChartGrid,
		},
		Skeleton: tomlSkeleton{
			Base:      t.SkeletonBase,
			Highlight: t.SkeletonHighlight,
		},
	}

	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(tt); err != nil {
		return nil, fmt.Errorf("theme: encode TOML: %w", err)
	}
	return buf.Bytes(), nil
}

// validateTheme checks that the name is set and every colour is #rrggbb.
func validateTheme(t Theme) error {
	if t.Name == "" {
		return fmt.Errorf("theme: missing required field %q", "name")
	}
	for _, c := range t.colors() {
		if *c.ptr == "" {
			return fmt.Errorf("theme: missing required field %q", c.key)
		}
		if !tokens.IsHex(*c.ptr) {
			return fmt.Errorf("theme: invalid hex color %q for field %q (expected #RRGGBB)", *c.ptr, c.key)
		}
	}
	return nil
}
