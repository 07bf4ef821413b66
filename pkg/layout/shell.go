package layout

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Shell is the page frame: header, navigation, body and footer stacked
// top to bottom. Empty regions take no rows.
type Shell struct {
	Header string
	Nav    string
	Body   string
	Footer string

	Width  int // <= 0 leaves lines unpadded
	Height int // <= 0 sizes the body to its content
}

// BodyHeight is the number of rows left for the body once the other
// regions are placed. It is 0 when Height is not set or nothing is left.
func (s Shell) BodyHeight() int {
	if s.Height <= 0 {
		return 0
	}
	return max(0, s.Height-lineCount(s.Header)-lineCount(s.Nav)-lineCount(s.Footer))
}

// View renders the frame. With Height set the body is cropped or padded
// so the footer sits on the last row.
func (s Shell) View() string {
	var regions []string
	for _, r := range []string{s.Header, s.Nav} {
		if r != "" {
			regions = append(regions, s.fit(r, 0))
		}
	}

	switch {
	case s.Height > 0:
		if h := s.BodyHeight(); h > 0 {
			regions = append(regions, s.fit(s.Body, h))
		}
	case s.Body != "":
		regions = append(regions, s.fit(s.Body, 0))
	}

	if s.Footer != "" {
		regions = append(regions, s.fit(s.Footer, 0))
	}
	return lipgloss.JoinVertical(lipgloss.Left, regions...)
}

func (s Shell) fit(block string, height int) string {
	if s.Width <= 0 {
		if height <= 0 {
			return block
		}
		lines := fitBlock(block, blockWidth(block), height)
		return strings.Join(lines, "\n")
	}
	return strings.Join(fitBlock(block, s.Width, height), "\n")
}
