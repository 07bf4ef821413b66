package terminal

import (
	"fmt"
	"os"
	"strings"

	"github.com/muesli/termenv"
)

// Depth is a colour depth in bits, the unit theme.Adapt takes.
type Depth int

const (
	DepthAuto  Depth = 0
	DepthASCII Depth = 1
	Depth16    Depth = 4
	Depth256   Depth = 8
	DepthTrue  Depth = 24
)

// ParseDepth maps a config value (auto, ascii, 16, 256, truecolor) to a
// Depth.
func ParseDepth(s string) (Depth, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "auto":
		return DepthAuto, nil
	case "ascii", "none", "1":
		return DepthASCII, nil
	case "16", "ansi", "4":
		return Depth16, nil
	case "256", "ansi256", "8":
		return Depth256, nil
	case "truecolor", "24bit", "24":
		return DepthTrue, nil
	default:
		return DepthAuto, fmt.Errorf("terminal: unknown color depth %q", s)
	}
}

func (d Depth) String() string {
	switch d {
	case DepthAuto:
		return "auto"
	case DepthASCII:
		return "ascii"
	case Depth16:
		return "16"
	case Depth256:
		return "256"
	case DepthTrue:
		return "truecolor"
	default:
		return fmt.Sprintf("depth(%d)", int(d))
	}
}

// Profile returns the termenv profile lipgloss should render with.
func (d Depth) Profile() termenv.Profile {
	switch {
	case d >= DepthTrue:
		return termenv.TrueColor
	case d >= Depth256:
		return termenv.ANSI256
	case d >= Depth16:
		return termenv.ANSI
	default:
		return termenv.Ascii
	}
}

// depthOf maps a termenv profile back to a Depth.
func depthOf(p termenv.Profile) Depth {
	switch p {
	case termenv.TrueColor:
		return DepthTrue
	case termenv.ANSI256:
		return Depth256
	case termenv.ANSI:
		return Depth16
	default:
		return DepthASCII
	}
}

// ResolveDepth turns a config setting into a concrete depth. "auto" and
// the empty string detect it; an unparseable value is an error.
func ResolveDepth(setting string) (Depth, error) {
	d, err := ParseDepth(setting)
	if err != nil {
		return DepthAuto, err
	}
	if d == DepthAuto {
		return DetectCapabilities().Depth, nil
	}
	return d, nil
}

// detectDepth asks termenv, which honours NO_COLOR, CLICOLOR_FORCE and
// COLORTERM, then upgrades to true colour for emulators known to support it
// when termenv only saw a 256-colour TERM.
func detectDepth(term Terminal) Depth {
	return upgradeDepth(depthOf(termenv.NewOutput(os.Stdout).EnvColorProfile()), term)
}

func upgradeDepth(d Depth, term Terminal) Depth {
	if d == Depth256 && term.SupportsTrueColor() {
		return DepthTrue
	}
	return d
}
