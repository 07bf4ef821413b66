package terminal

import (
	"os"
	"strconv"

	"github.com/charmbracelet/x/term"
)

// DefaultCols and DefaultRows are used when nothing better is known.
const (
	DefaultCols = 80
	DefaultRows = 24
)

// Size is a terminal size in character cells.
type Size struct {
	Cols int
	Rows int
}

// GetSize returns the current terminal size. It tries, in order:
//  1. the window size of stdout
//  2. the window size of stderr (stdout may be a pipe)
//  3. COLUMNS/LINES environment variables
//  4. 80x24
func GetSize() Size {
	for _, f := range []*os.File{os.Stdout, os.Stderr} {
		if s, ok := sizeOf(f.Fd()); ok {
			return s
		}
	}
	return sizeFromEnv()
}

// GetSizeFromFd returns the size of the terminal on fd, falling back to
// the environment and then to 80x24.
func GetSizeFromFd(fd uintptr) Size {
	if s, ok := sizeOf(fd); ok {
		return s
	}
	return sizeFromEnv()
}

// Interactive reports whether f is a terminal.
func Interactive(f *os.File) bool {
	return term.IsTerminal(f.Fd())
}

func sizeOf(fd uintptr) (Size, bool) {
	w, h, err := term.GetSize(fd)
	if err != nil || w <= 0 || h <= 0 {
		return Size{}, false
	}
	return Size{Cols: w, Rows: h}, true
}

func sizeFromEnv() Size {
	return Size{
		Cols: envInt("COLUMNS", DefaultCols),
		Rows: envInt("LINES", DefaultRows),
	}
}

// envInt reads a positive integer from the named environment variable,
// returning fallback when it is unset or invalid.
func envInt(name string, fallback int) int {
	v := os.Getenv(name)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return fallback
	}
	return n
}
