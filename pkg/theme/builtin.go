package theme

import "gitlab.com/tinyland/lab/pulse-ui/pkg/tokens"

func registerBuiltins() {
	for _, t := range []Theme{lightTheme(), darkTheme()} {
		register(t)
	}
}

// lightTheme uses the semantic aliases as-is.
func lightTheme() Theme {
	return Theme{
		Name:       "light",
		Background: tokens.ColorBackground,
		Foreground: tokens.ColorForeground,
		Muted:      tokens.ColorMuted,
		Primary:    tokens.ColorPrimary,
		Accent:     tokens.ColorAccent,

		Border:      tokens.Neutral300,
		BorderFocus: tokens.ColorPrimary,
		Title:       tokens.Navy800,

		StatusOptimal:   tokens.ColorOptimal,
		StatusGood:      tokens.ColorGood,
		StatusAttention: tokens.ColorAttention,
		StatusConcern:   tokens.ColorConcern,
		StatusUnknown:   tokens.ColorMuted,

		ChartLine: tokens.Brand500,
		ChartFill: tokens.Brand200,
		ChartGrid: tokens.Neutral200,

		SkeletonBase:      tokens.Neutral200,
		SkeletonHighlight: tokens.Neutral100,
	}
}

// darkTheme flips the neutral/navy ends and lifts the status colours one
// shade so they hold contrast on a dark background.
func darkTheme() Theme {
	return Theme{
		Name:       "dark",
		Background: tokens.Navy950,
		Foreground: tokens.Neutral100,
		Muted:      tokens.Neutral400,
		Primary:    tokens.Brand400,
		Accent:     tokens.Navy300,

		Border:      tokens.Navy700,
		BorderFocus: tokens.Brand400,
		Title:       tokens.Neutral50,

		StatusOptimal:   tokens.Optimal400,
		StatusGood:      tokens.Good400,
		StatusAttention: tokens.Attention400,
		StatusConcern:   tokens.Concern400,
		StatusUnknown:   tokens.Neutral400,

		ChartLine: tokens.Brand400,
		ChartFill: tokens.Brand800,
		ChartGrid: tokens.Navy800,

		SkeletonBase:      tokens.Navy800,
		SkeletonHighlight: tokens.Navy700,
	}
}
