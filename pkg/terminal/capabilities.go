package terminal

import (
	"os"
	"sync"

	"github.com/mattn/go-isatty"
)

// Capabilities summarises what the current session can draw.
type Capabilities struct {
	Term        Terminal
	Depth       Depth
	Unicode     bool // Unicode icon glyphs are safe
	Interactive bool // stdout is a terminal
	Size        Size
}

var (
	mu     sync.Mutex // guards cached
	cached *Capabilities
)

// DetectCapabilities runs detection once and caches the result. Later
// calls return the cached value until ForceRefresh replaces it.
func DetectCapabilities() *Capabilities {
	mu.Lock()
	defer mu.Unlock()

	if cached == nil {
		cached = detect()
	}
	return cached
}

// ForceRefresh re-runs detection, replacing the cached value.
func ForceRefresh() *Capabilities {
	mu.Lock()
	defer mu.Unlock()

	cached = detect()
	return cached
}

// Cached returns the last detection, or nil if none has run.
func Cached() *Capabilities {
	mu.Lock()
	defer mu.Unlock()
	return cached
}

func detect() *Capabilities {
	t := Detect()
	fd := os.Stdout.Fd()
	return &Capabilities{
		Term:        t,
		Depth:       detectDepth(t),
		Unicode:     UnicodeGlyphs(t),
		Interactive: isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd),
		Size:        GetSize(),
	}
}
