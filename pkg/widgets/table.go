package widgets

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"gitlab.com/tinyland/lab/pulse-ui/pkg/components"
	"gitlab.com/tinyland/lab/pulse-ui/pkg/theme"
	"gitlab.com/tinyland/lab/pulse-ui/pkg/tokens"
)

// Cell is one table value with an optional health band.
type Cell struct {
	Text   string
	Status tokens.Status // StatusUnknown = plain foreground
}

// Text returns an uncoloured cell.
func Text(s string) Cell {
	return Cell{Text: s}
}

// Scored returns a cell showing score, coloured by its band.
func Scored(score float64) Cell {
	return Cell{Text: formatValue(score), Status: tokens.StatusFor(score)}
}

// MetricTable renders headers and rows in a rounded lipgloss table. Columns
// whose cells are all numeric are right-aligned. Short rows are padded with
// empty cells and long rows are cut to the header count.
type MetricTable struct {
	Title   string
	Headers []string
	Rows    [][]Cell
	Width   int // 0 = size to content
	Theme   theme.Theme
}

// View renders the table.
func (m MetricTable) View() string {
	t := resolve(m.Theme)

	var out []string
	if m.Title != "" {
		out = append(out, components.Heading(m.Title, t))
	}
	if len(m.Headers) == 0 && len(m.Rows) == 0 {
		out = append(out, components.Caption(NoData, t))
		return strings.Join(out, "\n")
	}

	cols := m.columns()
	rows := m.normalised(cols)
	numeric := numericColumns(rows, cols)

	text := make([][]string, len(rows))
	for i, r := range rows {
		text[i] = make([]string, cols)
		for j, c := range r {
			text[i][j] = c.Text
		}
	}

	header := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(t.Title)).Padding(0, 1)
	body := lipgloss.NewStyle().Foreground(lipgloss.Color(t.Foreground)).Padding(0, 1)

	tbl := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color(t.Border))).
		Headers(m.headers(cols)...).
		Rows(text...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return header
			}
			s := body
			if col < len(numeric) && numeric[col] {
				s = s.Align(lipgloss.Right)
			}
			if row >= 0 && row < len(rows) && col < cols {
				if st := rows[row][col].Status; st != tokens.StatusUnknown {
					s = s.Foreground(lipgloss.Color(t.StatusColor(st))).Bold(true)
				}
			}
			return s
		})
	if m.Width > 0 {
		tbl = tbl.Width(m.Width)
	}

	out = append(out, tbl.Render())
	return strings.Join(out, "\n")
}

// columns is the header count, or the widest row when there are no headers.
func (m MetricTable) columns() int {
	if len(m.Headers) > 0 {
		return len(m.Headers)
	}
	n := 0
	for _, r := range m.Rows {
		n = max(n, len(r))
	}
	return n
}

func (m MetricTable) headers(cols int) []string {
	if len(m.Headers) == 0 {
		return nil
	}
	return m.Headers[:cols]
}

func (m MetricTable) normalised(cols int) [][]Cell {
	out := make([][]Cell, len(m.Rows))
	for i, r := range m.Rows {
		row := make([]Cell, cols)
		copy(row, r)
		out[i] = row
	}
	return out
}

// numericColumns reports, per column, whether every non-empty cell starts
// with a number ("72", "7.5h", "-3%").
func numericColumns(rows [][]Cell, cols int) []bool {
	out := make([]bool, cols)
	for c := 0; c < cols; c++ {
		seen := false
		out[c] = true
		for _, r := range rows {
			s := strings.TrimSpace(r[c].Text)
			if s == "" {
				continue
			}
			seen = true
			if !leadingNumber(s) {
				out[c] = false
				break
			}
		}
		out[c] = out[c] && seen
	}
	return out
}

func leadingNumber(s string) bool {
	end := strings.IndexFunc(s, func(r rune) bool {
		return !(r >= '0' && r <= '9' || r == '.' || r == '-' || r == '+')
	})
	if end == 0 {
		return false
	}
	if end > 0 {
		s = s[:end]
	}
	_, err := strconv.ParseFloat(s, 64)
	return err == nil
}
