// Package terminal works out what the current terminal can draw: which
// emulator it is, how many colours it renders, whether Unicode glyphs are
// safe, and how large the window is.
//
// Everything here reads the environment and file descriptors only. No
// query sequences are written to the terminal.
package terminal

import (
	"os"
	"strings"
)

// Terminal identifies the terminal emulator in use.
type Terminal int

const (
	TermUnknown   Terminal = iota
	TermGhostty            // true color
	TermKitty              // true color
	TermWezTerm            // true color
	TermITerm2             // true color
	TermAlacritty          // true color
	TermGNOME              // VTE-based, true color
	TermVSCode             // true color
	TermTmux               // depends on the outer terminal
	TermScreen             // 256 colours at best
	TermLinux              // Linux virtual console, 16 colours, poor glyph coverage
	TermGeneric
)

var terminalNames = [...]string{
	TermUnknown:   "unknown",
	TermGhostty:   "ghostty",
	TermKitty:     "kitty",
	TermWezTerm:   "wezterm",
	TermITerm2:    "iterm2",
	TermAlacritty: "alacritty",
	TermGNOME:     "gnome-terminal",
	TermVSCode:    "vscode",
	TermTmux:      "tmux",
	TermScreen:    "screen",
	TermLinux:     "linux",
	TermGeneric:   "generic",
}

// String returns the human-readable name of the terminal.
func (t Terminal) String() string {
	if int(t) < len(terminalNames) {
		return terminalNames[t]
	}
	return "unknown"
}

// SupportsTrueColor reports whether the emulator renders 24-bit colour.
func (t Terminal) SupportsTrueColor() bool {
	switch t {
	case TermGhostty, TermKitty, TermWezTerm, TermITerm2,
		TermAlacritty, TermGNOME, TermVSCode:
		return true
	default:
		return false
	}
}

// Detect identifies the terminal emulator from environment variables,
// most reliable signal first:
//
//  1. TERM_PROGRAM
//  2. TERM (xterm-ghostty, xterm-kitty, alacritty, linux)
//  3. emulator-specific variables (KITTY_WINDOW_ID, ITERM_SESSION_ID, ...)
//  4. VTE_VERSION
//  5. TMUX / STY
func Detect() Terminal {
	if tp := os.Getenv("TERM_PROGRAM"); tp != "" {
		switch strings.ToLower(tp) {
		case "ghostty":
			return TermGhostty
		case "kitty":
			return TermKitty
		case "wezterm":
			return TermWezTerm
		case "iterm.app":
			return TermITerm2
		case "vscode":
			return TermVSCode
		case "alacritty":
			return TermAlacritty
		case "tmux":
			return TermTmux
		}
	}

	switch term := os.Getenv("TERM"); {
	case term == "xterm-ghostty":
		return TermGhostty
	case term == "xterm-kitty":
		return TermKitty
	case term == "linux":
		return TermLinux
	case strings.HasPrefix(term, "alacritty"):
		return TermAlacritty
	case strings.HasPrefix(term, "screen") && os.Getenv("STY") != "":
		return TermScreen
	}

	if os.Getenv("KITTY_WINDOW_ID") != "" {
		return TermKitty
	}
	if os.Getenv("ITERM_SESSION_ID") != "" || os.Getenv("LC_TERMINAL") == "iTerm2" {
		return TermITerm2
	}
	if os.Getenv("WEZTERM_EXECUTABLE") != "" {
		return TermWezTerm
	}
	if os.Getenv("VTE_VERSION") != "" {
		return TermGNOME
	}

	// Multiplexers last so the inner emulator wins when it is known.
	if os.Getenv("TMUX") != "" {
		return TermTmux
	}
	if os.Getenv("STY") != "" {
		return TermScreen
	}

	return TermGeneric
}

// UnicodeGlyphs reports whether the icon set's Unicode glyphs are likely to
// render. The Linux console and non-UTF-8 locales get the ASCII set.
func UnicodeGlyphs(t Terminal) bool {
	if t == TermLinux {
		return false
	}
	for _, k := range []string{"LC_ALL", "LC_CTYPE", "LANG"} {
		if v := os.Getenv(k); v != "" {
			v = strings.ToLower(v)
			return strings.Contains(v, "utf-8") || strings.Contains(v, "utf8")
		}
	}
	// No locale at all: modern emulators still cope.
	return t != TermGeneric
}
