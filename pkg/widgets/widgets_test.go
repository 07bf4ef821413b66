package widgets

import (
	"math"
	"os"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"gitlab.com/tinyland/lab/pulse-ui/pkg/components"
	"gitlab.com/tinyland/lab/pulse-ui/pkg/theme"
	"gitlab.com/tinyland/lab/pulse-ui/pkg/tokens"
)

func TestMain(m *testing.M) {
	lipgloss.SetColorProfile(termenv.Ascii)
	os.Exit(m.Run())
}

func themeLight() theme.Theme {
	return theme.Get("light")
}

func TestFormatValue(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{72, "72"},
		{7.26, "7.3"},
		{0, "0"},
		{-3, "-3"},
		{math.NaN(), "--"},
	}
	for _, tt := range tests {
		if got := formatValue(tt.in); got != tt.want {
			t.Errorf("formatValue(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestCenterMessage(t *testing.T) {
	got := centerMessage("No data", 20, 3, themeLight())
	lines := strings.Split(components.Strip(got), "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want 3", len(lines))
	}
	if !strings.Contains(lines[1], "No data") {
		t.Errorf("message not on middle line: %q", lines)
	}
	for i, l := range lines {
		if components.VisibleLen(l) != 20 {
			t.Errorf("line %d width = %d", i, components.VisibleLen(l))
		}
	}
	if centerMessage("x", 0, 3, themeLight()) != "" {
		t.Error("zero width should render nothing")
	}
}

// ---------------------------------------------------------------------------
// ScoreCard
// ---------------------------------------------------------------------------

func TestScoreCardContent(t *testing.T) {
	v := ScoreCard{
		Title:   "Sleep",
		Score:   88,
		Icon:    components.IconSleep,
		Trend:   []float64{70, 80, 88},
		Caption: "last night",
	}.View()
	plain := components.Strip(v)
	for _, want := range []string{"Sleep", "88", "optimal", "\u219110.0%", "last night", "\u263E"} {
		if !strings.Contains(plain, want) {
			t.Errorf("score card missing %q:\n%s", want, plain)
		}
	}
	if lipgloss.Width(v) != DefaultScoreCardWidth {
		t.Errorf("width = %d, want %d", lipgloss.Width(v), DefaultScoreCardWidth)
	}
}

func TestScoreCardStatusBands(t *testing.T) {
	tests := []struct {
		score float64
		want  tokens.Status
	}{
		{95, tokens.StatusOptimal},
		{72, tokens.StatusGood},
		{55, tokens.StatusAttention},
		{20, tokens.StatusConcern},
		{math.NaN(), tokens.StatusUnknown},
	}
	for _, tt := range tests {
		card := ScoreCard{Title: "x", Score: tt.score}
		if card.Status() != tt.want {
			t.Errorf("Status(%v) = %s, want %s", tt.score, card.Status(), tt.want)
		}
		if !strings.Contains(components.Strip(card.View()), tt.want.String()) {
			t.Errorf("card for %v does not show %s", tt.score, tt.want)
		}
	}
}

func TestScoreCardUnknownScore(t *testing.T) {
	plain := components.Strip(ScoreCard{Title: "HRV", Score: math.NaN(), Unit: "ms"}.View())
	if !strings.Contains(plain, "--") || strings.Contains(plain, "ms") {
		t.Errorf("unknown score rendering:\n%s", plain)
	}
}

func TestScoreCardTrendWithMissingReading(t *testing.T) {
	tests := []struct {
		name  string
		trend []float64
		delta string
	}{
		{"gap mid-trend", []float64{70, math.NaN(), 80}, "\u21920.0%"},
		{"missing latest", []float64{70, 80, math.NaN()}, "\u21920.0%"},
		{"all missing", []float64{math.NaN(), math.NaN()}, "\u21920.0%"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := ScoreCard{Title: "Recovery", Score: 80, Trend: tt.trend}.View()
			plain := components.Strip(v)
			if !strings.Contains(plain, tt.delta) {
				t.Errorf("card missing %q:\n%s", tt.delta, plain)
			}
			if lipgloss.Width(v) != DefaultScoreCardWidth {
				t.Errorf("width = %d, want %d", lipgloss.Width(v), DefaultScoreCardWidth)
			}
		})
	}
}

func TestScoreCardWidth(t *testing.T) {
	for _, w := range []int{20, 40} {
		v := ScoreCard{Title: "Readiness", Score: 64, Unit: "%", Trend: []float64{1, 2, 3}, Width: w}.View()
		if got := lipgloss.Width(v); got != w {
			t.Errorf("width %d rendered %d:\n%s", w, got, components.Strip(v))
		}
	}
}

func TestScoreCardSingleTrendPointHasNoDelta(t *testing.T) {
	plain := components.Strip(ScoreCard{Score: 50, Trend: []float64{50}}.View())
	if strings.Contains(plain, "%") {
		t.Errorf("single point trend shows a delta:\n%s", plain)
	}
}

// ---------------------------------------------------------------------------
// Chart
// ---------------------------------------------------------------------------

func TestChartEmpty(t *testing.T) {
	plain := components.Strip(Chart{Title: "HRV", Width: 30, Height: 4}.View())
	if !strings.Contains(plain, NoData) {
		t.Errorf("empty chart:\n%s", plain)
	}
	if lines := strings.Split(plain, "\n"); len(lines) != 5 {
		t.Errorf("empty chart has %d lines, want 5", len(lines))
	}
}

func TestChartDimensions(t *testing.T) {
	c := Chart{
		Series:   []Series{{Label: "hr", Points: []float64{60, 62, 70, 65, 58}}},
		Width:    30,
		Height:   5,
		ShowAxis: true,
	}
	lines := strings.Split(components.Strip(c.View()), "\n")
	if len(lines) != 5 {
		t.Fatalf("got %d lines, want 5", len(lines))
	}
	for i, l := range lines {
		if w := components.VisibleLen(l); w != 30 {
			t.Errorf("line %d width = %d, want 30", i, w)
		}
	}
}

func TestChartAxisLabels(t *testing.T) {
	c := Chart{Series: []Series{{Points: []float64{0, 50, 100}}}, Width: 30, Height: 4, ShowAxis: true}
	lines := strings.Split(components.Strip(c.View()), "\n")
	if !strings.HasPrefix(lines[0], "100 ") {
		t.Errorf("top label: %q", lines[0])
	}
	if !strings.HasPrefix(lines[3], "  0 ") {
		t.Errorf("bottom label: %q", lines[3])
	}
}

func TestChartAxisHiddenWhenNarrow(t *testing.T) {
	c := Chart{Series: []Series{{Points: []float64{0, 100}}}, Width: 10, Height: 2, ShowAxis: true}
	if strings.Contains(components.Strip(c.View()), "100") {
		t.Error("axis drawn below the minimum width")
	}
}

func TestChartAscendingLine(t *testing.T) {
	c := Chart{Series: []Series{{Points: []float64{0, 1, 2, 3}}}, Width: 10, Height: 3}
	lines := strings.Split(components.Strip(c.View()), "\n")
	first := []rune(lines[len(lines)-1])[0]
	last := []rune(lines[0])[9]
	if first == ' ' {
		t.Errorf("bottom-left cell empty: %q", lines)
	}
	if last == ' ' {
		t.Errorf("top-right cell empty: %q", lines)
	}
	if []rune(lines[0])[0] != ' ' {
		t.Errorf("top-left cell should be empty: %q", lines)
	}
}

func TestChartLegendForMultipleSeries(t *testing.T) {
	c := Chart{
		Title:  "Heart",
		Series: []Series{{Label: "resting", Points: []float64{1}}, {Label: "max", Points: []float64{2}, Role: tokens.RoleConcern}},
		Width:  30,
		Height: 2,
	}
	lines := strings.Split(components.Strip(c.View()), "\n")
	if len(lines) != 4 {
		t.Fatalf("got %d lines, want title + legend + 2", len(lines))
	}
	if !strings.Contains(lines[1], "resting") || !strings.Contains(lines[1], "max") {
		t.Errorf("legend = %q", lines[1])
	}
}

func TestChartRange(t *testing.T) {
	lo, hi := Chart{Series: []Series{{Points: []float64{3, math.NaN(), -1}}, {Points: []float64{9}}}}.Range()
	if lo != -1 || hi != 9 {
		t.Errorf("Range = %v, %v", lo, hi)
	}
	lo, hi = Chart{}.Range()
	if lo != 0 || hi != 1 {
		t.Errorf("empty Range = %v, %v", lo, hi)
	}
}

func TestChartSkipsInfinities(t *testing.T) {
	c := Chart{
		Series:   []Series{{Points: []float64{40, math.Inf(1), 60, math.Inf(-1), 80}}},
		Width:    30,
		Height:   4,
		ShowAxis: true,
	}
	lo, hi := c.Range()
	if lo != 40 || hi != 80 {
		t.Fatalf("Range = %v, %v, want 40, 80", lo, hi)
	}

	lines := strings.Split(components.Strip(c.View()), "\n")
	if len(lines) != 4 {
		t.Fatalf("got %d lines, want 4", len(lines))
	}
	if !strings.HasPrefix(lines[0], "80 ") || !strings.HasPrefix(lines[3], "40 ") {
		t.Errorf("axis labels:\n%s", strings.Join(lines, "\n"))
	}

	lo, hi = Chart{Series: []Series{{Points: []float64{math.Inf(1), math.NaN()}}}}.Range()
	if lo != 0 || hi != 1 {
		t.Errorf("non-finite Range = %v, %v, want 0, 1", lo, hi)
	}
}

func TestBrailleBit(t *testing.T) {
	tests := []struct {
		x, y int
		want uint8
	}{
		{0, 0, 0x01}, {0, 3, 0x40}, {1, 0, 0x08}, {1, 3, 0x80}, {0, 4, 0},
	}
	for _, tt := range tests {
		if got := brailleBit(tt.x, tt.y); got != tt.want {
			t.Errorf("brailleBit(%d,%d) = %#x, want %#x", tt.x, tt.y, got, tt.want)
		}
	}
}

func TestFormatSI(t *testing.T) {
	tests := map[float64]string{
		0:       "0",
		72:      "72",
		7.5:     "7.5",
		1000:    "1K",
		1500:    "1.5K",
		2500000: "2.5M",
		-1200:   "-1.2K",
	}
	for in, want := range tests {
		if got := formatSI(in); got != want {
			t.Errorf("formatSI(%v) = %q, want %q", in, got, want)
		}
	}
}

// ---------------------------------------------------------------------------
// MetricList
// ---------------------------------------------------------------------------

func TestMetricListRows(t *testing.T) {
	l := MetricList{
		Title: "Today",
		Items: []ListItem{
			{Icon: components.IconHeart, Label: "Resting HR", Value: "52 bpm", Status: tokens.StatusOptimal},
			{Label: "Steps", Value: "4 210", Status: tokens.StatusAttention},
			{Label: "Weight", Value: "71.4"},
		},
		Width: 44,
	}
	lines := strings.Split(components.Strip(l.View()), "\n")
	if len(lines) != 4 {
		t.Fatalf("got %d lines, want 4", len(lines))
	}
	for i, line := range lines[1:] {
		if w := components.VisibleLen(line); w != 44 {
			t.Errorf("row %d width = %d, want 44: %q", i, w, line)
		}
	}
	if !strings.Contains(lines[1], "optimal") || !strings.Contains(lines[2], "attention") {
		t.Errorf("badges missing: %q", lines)
	}
	if strings.Contains(lines[3], "unknown") {
		t.Errorf("unknown status should hide the badge: %q", lines[3])
	}
	// values right-align in one column
	if strings.Index(lines[1], "52 bpm")+len("52 bpm") != strings.Index(lines[2], "4 210")+len("4 210") {
		t.Errorf("values not aligned:\n%s\n%s", lines[1], lines[2])
	}
}

func TestMetricListASCIIIcons(t *testing.T) {
	l := MetricList{
		Items: []ListItem{{Icon: components.IconHeart, Label: "Resting HR", Value: "52", Status: tokens.StatusGood}},
		Width: 30,
		Icons: components.IconsASCII,
	}
	line := components.Strip(l.View())
	if !strings.HasPrefix(line, "<3 Resting HR") {
		t.Errorf("ascii icon missing: %q", line)
	}
	if w := components.VisibleLen(line); w != 30 {
		t.Errorf("row width = %d, want 30", w)
	}

	card := components.Strip(ScoreCard{Title: "HR", Score: 80, Icon: components.IconHeart, Icons: components.IconsASCII}.View())
	if !strings.Contains(card, "<3 80") {
		t.Errorf("score card ascii icon missing:\n%s", card)
	}
}

func TestMetricListEmpty(t *testing.T) {
	if !strings.Contains(components.Strip(MetricList{}.View()), NoData) {
		t.Error("empty list should say no data")
	}
}

func TestMetricListNarrow(t *testing.T) {
	l := MetricList{Items: []ListItem{{Label: "Sleep", Value: "7h 42m", Status: tokens.StatusGood}}, Width: 12}
	if w := components.VisibleLen(l.View()); w != 12 {
		t.Errorf("narrow row width = %d, want 12", w)
	}
}

// ---------------------------------------------------------------------------
// MetricTable
// ---------------------------------------------------------------------------

func TestMetricTableRenders(t *testing.T) {
	tbl := MetricTable{
		Title:   "Week",
		Headers: []string{"Day", "Sleep", "Score"},
		Rows: [][]Cell{
			{Text("Mon"), Text("7.5h"), Scored(88)},
			{Text("Tue"), Text("6h"), Scored(61)},
		},
	}
	plain := components.Strip(tbl.View())
	for _, want := range []string{"Week", "Day", "Sleep", "Score", "Mon", "Tue", "88", "61", "\u256D"} {
		if !strings.Contains(plain, want) {
			t.Errorf("table missing %q:\n%s", want, plain)
		}
	}
}

func TestMetricTableRaggedRows(t *testing.T) {
	tbl := MetricTable{
		Headers: []string{"A", "B"},
		Rows:    [][]Cell{{Text("1")}, {Text("2"), Text("3"), Text("dropped")}},
	}
	plain := components.Strip(tbl.View())
	if strings.Contains(plain, "dropped") {
		t.Errorf("extra cell rendered:\n%s", plain)
	}
	if !strings.Contains(plain, "3") {
		t.Errorf("second column lost:\n%s", plain)
	}
}

func TestMetricTableWidth(t *testing.T) {
	tbl := MetricTable{Headers: []string{"Metric", "Value"}, Rows: [][]Cell{{Text("HRV"), Text("48")}}, Width: 40}
	if w := lipgloss.Width(tbl.View()); w > 40 {
		t.Errorf("width = %d, want at most 40", w)
	}
}

func TestMetricTableEmpty(t *testing.T) {
	if !strings.Contains(components.Strip(MetricTable{Title: "x"}.View()), NoData) {
		t.Error("empty table should say no data")
	}
}

func TestScoredCell(t *testing.T) {
	c := Scored(72)
	if c.Text != "72" || c.Status != tokens.StatusGood {
		t.Errorf("Scored(72) = %+v", c)
	}
}

func TestNumericColumns(t *testing.T) {
	rows := [][]Cell{
		{Text("Mon"), Text("7.5h"), Text("")},
		{Text("Tue"), Text("-3%"), Text("")},
	}
	got := numericColumns(rows, 3)
	want := []bool{false, true, false}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("column %d numeric = %v, want %v", i, got[i], want[i])
		}
	}
}
