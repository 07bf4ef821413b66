package app

import (
	"os"
	"slices"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"gitlab.com/tinyland/lab/pulse-ui/pkg/components"
	"gitlab.com/tinyland/lab/pulse-ui/pkg/config"
	"gitlab.com/tinyland/lab/pulse-ui/pkg/layout"
	"gitlab.com/tinyland/lab/pulse-ui/pkg/skeleton"
	"gitlab.com/tinyland/lab/pulse-ui/pkg/theme"
)

func TestMain(m *testing.M) {
	lipgloss.SetColorProfile(termenv.Ascii)
	os.Exit(m.Run())
}

// helper to create a gallery with the default pages.
func newTestModel(t *testing.T) AppModel {
	t.Helper()
	t.Cleanup(func() { theme.SetCurrent(theme.DefaultName) })
	return NewAppModel(DefaultConfig())
}

// helper to send a message through Update and return the updated model.
func update(m AppModel, msg tea.Msg) (AppModel, tea.Cmd) {
	updated, cmd := m.Update(msg)
	return updated.(AppModel), cmd
}

// helper to deliver the message a command produces, if any.
func run(m AppModel, cmd tea.Cmd) AppModel {
	if cmd == nil {
		return m
	}
	m, _ = update(m, cmd())
	return m
}

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestInitReturnsCmd(t *testing.T) {
	m := newTestModel(t)
	if m.Init() == nil {
		t.Fatal("Init() returned nil")
	}
}

func TestWindowSizeMsgUpdatesDimensions(t *testing.T) {
	m := newTestModel(t)
	m, _ = update(m, tea.WindowSizeMsg{Width: 120, Height: 40})

	if m.Width() != 120 || m.Height() != 40 {
		t.Errorf("size = %dx%d, want 120x40", m.Width(), m.Height())
	}
}

func TestViewReturnsInitializingBeforeResize(t *testing.T) {
	m := newTestModel(t)
	if got := m.View(); got != "Initializing..." {
		t.Errorf("View() before resize = %q", got)
	}
}

func TestViewFillsTerminal(t *testing.T) {
	m := newTestModel(t)
	m, _ = update(m, tea.WindowSizeMsg{Width: 80, Height: 24})

	lines := strings.Split(m.View(), "\n")
	if len(lines) != 24 {
		t.Errorf("View() has %d lines, want 24", len(lines))
	}
	for i, l := range lines {
		if w := components.VisibleLen(l); w > 80 {
			t.Errorf("line %d is %d wide", i, w)
		}
	}
	if !strings.Contains(m.View(), "Palettes") {
		t.Error("tokens page not shown first")
	}
}

func TestTabCyclesPagesForward(t *testing.T) {
	m := newTestModel(t)
	want := []string{"atoms", "molecules", "skeletons", "tokens"}
	for _, id := range want {
		m, _ = update(m, tea.KeyMsg{Type: tea.KeyTab})
		if got := m.ActivePageID(); got != id {
			t.Errorf("after Tab, page = %q, want %q", got, id)
		}
	}
}

func TestShiftTabCyclesPagesBackward(t *testing.T) {
	m := newTestModel(t)
	m, _ = update(m, tea.KeyMsg{Type: tea.KeyShiftTab})
	if got := m.ActivePageID(); got != "skeletons" {
		t.Errorf("Shift+Tab from first page = %q, want skeletons", got)
	}
}

func TestNumberJumpsToPage(t *testing.T) {
	m := newTestModel(t)
	m, cmd := update(m, runeKey('3'))
	if got := m.ActivePageID(); got != "molecules" {
		t.Errorf("page = %q, want molecules", got)
	}
	msg, ok := cmd().(layout.NavigateMsg)
	if !ok || msg.ID != "molecules" {
		t.Errorf("navigate msg = %#v", msg)
	}
}

func TestNavigateRefreshesBody(t *testing.T) {
	m := newTestModel(t)
	m, _ = update(m, tea.WindowSizeMsg{Width: 100, Height: 40})

	m, cmd := update(m, tea.KeyMsg{Type: tea.KeyTab})
	m = run(m, cmd)
	if !strings.Contains(m.View(), "Buttons") {
		t.Error("atoms page not rendered after navigation")
	}
}

func TestEnterTogglesFullscreen(t *testing.T) {
	m := newTestModel(t)
	m, _ = update(m, tea.WindowSizeMsg{Width: 80, Height: 24})

	m, _ = update(m, tea.KeyMsg{Type: tea.KeyEnter})
	if !m.Expanded() {
		t.Fatal("Enter should expand")
	}
	if strings.Contains(m.View(), "pulse-ui") {
		t.Error("fullscreen should hide the header")
	}

	m, _ = update(m, tea.KeyMsg{Type: tea.KeyEscape})
	if m.Expanded() {
		t.Error("Esc should collapse")
	}
	if !strings.Contains(m.View(), "pulse-ui") {
		t.Error("header missing after collapse")
	}
}

func TestEscNoOpWhenNotExpanded(t *testing.T) {
	m := newTestModel(t)
	m, _ = update(m, tea.KeyMsg{Type: tea.KeyEscape})
	if m.Expanded() {
		t.Error("Esc should not expand")
	}
}

func TestQuitKeys(t *testing.T) {
	for _, msg := range []tea.KeyMsg{runeKey('q'), {Type: tea.KeyCtrlC}} {
		m := newTestModel(t)
		m, _ = update(m, tea.WindowSizeMsg{Width: 80, Height: 24})
		m, cmd := update(m, msg)
		if !m.Quitting() {
			t.Errorf("%s should quit", msg)
		}
		if cmd == nil {
			t.Errorf("%s returned no quit command", msg)
		}
		if v := m.View(); v != "" {
			t.Errorf("View() while quitting = %q", v)
		}
	}
}

func TestQuestionMarkTogglesHelp(t *testing.T) {
	m := newTestModel(t)
	m, _ = update(m, tea.WindowSizeMsg{Width: 100, Height: 40})
	short := m.View()

	m, _ = update(m, runeKey('?'))
	if !m.HelpVisible() {
		t.Fatal("help should be visible after ?")
	}
	if !strings.Contains(m.View(), "next layout") || strings.Contains(short, "next layout") {
		t.Error("full help should list every binding")
	}

	m, _ = update(m, runeKey('?'))
	if m.HelpVisible() {
		t.Error("help should hide after second ?")
	}
}

func TestThemeKeyCyclesTheme(t *testing.T) {
	m := newTestModel(t)
	m, cmd := update(m, runeKey('t'))
	if cmd == nil {
		t.Fatal("t returned no command")
	}
	ev, ok := cmd().(ThemeChangeEvent)
	if !ok {
		t.Fatalf("got %T, want ThemeChangeEvent", cmd())
	}
	if ev.Theme == "light" {
		t.Error("next theme should differ from the current one")
	}
	m, _ = update(m, ev)
	if m.Theme().Name != ev.Theme {
		t.Errorf("theme = %q, want %q", m.Theme().Name, ev.Theme)
	}
	if theme.Current().Name != ev.Theme {
		t.Error("theme change should become the current theme")
	}
}

func TestThemeCycleFromMixedCaseName(t *testing.T) {
	custom := theme.Get("dark")
	custom.Name = "Lagoon"
	if err := theme.Register(custom); err != nil {
		t.Fatalf("Register: %v", err)
	}

	cfg := DefaultConfig()
	cfg.Theme = "Lagoon"
	m := NewAppModel(cfg)
	t.Cleanup(func() { theme.SetCurrent(theme.DefaultName) })

	names := theme.Names()
	i := slices.Index(names, "lagoon")
	if i < 0 {
		t.Fatalf("lagoon not registered: %v", names)
	}
	want := names[(i+1)%len(names)]

	_, cmd := update(m, runeKey('t'))
	if cmd == nil {
		t.Fatal("t returned no command")
	}
	ev, ok := cmd().(ThemeChangeEvent)
	if !ok {
		t.Fatalf("got %T, want ThemeChangeEvent", cmd())
	}
	if ev.Theme != want {
		t.Errorf("next theme after Lagoon = %q, want %q", ev.Theme, want)
	}
}

func TestUnknownThemeFallsBack(t *testing.T) {
	m := newTestModel(t)
	m, _ = update(m, ThemeChangeEvent{Theme: "neon"})
	if m.Theme().Name != theme.DefaultName {
		t.Errorf("theme = %q, want %q", m.Theme().Name, theme.DefaultName)
	}
}

func TestColorDepthAdaptsTheme(t *testing.T) {
	t.Cleanup(func() { theme.SetCurrent(theme.DefaultName) })
	cfg := DefaultConfig()
	cfg.ColorDepth = 8
	m := NewAppModel(cfg)
	if strings.HasPrefix(m.Theme().Primary, "#") {
		t.Errorf("256-colour theme kept hex primary %q", m.Theme().Primary)
	}
}

func TestLayoutKeyCyclesPreset(t *testing.T) {
	m := newTestModel(t)
	m, cmd := update(m, runeKey('p'))
	m = run(m, cmd)
	if got := m.LayoutPreset(); got != config.PresetCompact {
		t.Errorf("preset = %q, want compact", got)
	}
}

func TestTickLoadsSampleData(t *testing.T) {
	m := newTestModel(t)
	m, _ = update(m, tea.WindowSizeMsg{Width: 160, Height: 80})
	m.FocusPage("molecules")
	m, _ = update(m, layout.NavigateMsg{ID: "molecules"})

	if m.Loaded() {
		t.Fatal("should start loading")
	}
	if strings.Contains(m.View(), "Recovery") {
		t.Error("molecules drawn before data arrived")
	}

	m, cmd := update(m, TickEvent{Time: time.Now()})
	if cmd == nil {
		t.Error("TickEvent should schedule the next tick")
	}
	if !m.Loaded() {
		t.Fatal("TickEvent should mark data loaded")
	}
	if !strings.Contains(m.View(), "Recovery") {
		t.Error("molecules not drawn after data arrived")
	}
}

func TestZeroRefreshIntervalStartsLoaded(t *testing.T) {
	t.Cleanup(func() { theme.SetCurrent(theme.DefaultName) })
	cfg := DefaultConfig()
	cfg.RefreshInterval = 0
	if !NewAppModel(cfg).Loaded() {
		t.Error("no ticker means data is shown straight away")
	}
}

func TestPulseAdvancesPhase(t *testing.T) {
	m := newTestModel(t)
	before := m.pulse.Renderer.Phase
	m, cmd := update(m, skeleton.PulseMsg{ID: m.pulse.ID()})
	if m.pulse.Renderer.Phase != before+1 {
		t.Errorf("phase = %d, want %d", m.pulse.Renderer.Phase, before+1)
	}
	if cmd == nil {
		t.Error("pulse should reschedule itself")
	}

	m, _ = update(m, skeleton.PulseMsg{ID: m.pulse.ID() + 1000})
	if m.pulse.Renderer.Phase != before+1 {
		t.Error("foreign pulse should be ignored")
	}
}

func TestPageFocusEvent(t *testing.T) {
	m := newTestModel(t)
	m, cmd := update(m, PageFocusEvent{PageID: "skeletons"})
	if m.ActivePageID() != "skeletons" {
		t.Errorf("page = %q, want skeletons", m.ActivePageID())
	}
	if cmd == nil {
		t.Error("focus change should emit a navigate command")
	}
}

func TestFocusPageInvalidIDNoOp(t *testing.T) {
	m := newTestModel(t)
	if cmd := m.FocusPage("nonexistent"); cmd != nil {
		t.Error("unknown page should return nil")
	}
	if m.ActivePageID() != "tokens" {
		t.Errorf("page = %q, want tokens", m.ActivePageID())
	}
}

func TestCyclePageMethods(t *testing.T) {
	m := newTestModel(t)
	m.CyclePageBackward()
	if m.ActivePageID() != "skeletons" {
		t.Errorf("backward = %q", m.ActivePageID())
	}
	m.CyclePageForward()
	if m.ActivePageID() != "tokens" {
		t.Errorf("forward = %q", m.ActivePageID())
	}
}

func TestStartPage(t *testing.T) {
	t.Cleanup(func() { theme.SetCurrent(theme.DefaultName) })
	cfg := DefaultConfig()
	cfg.StartPage = "atoms"
	if got := NewAppModel(cfg).ActivePageID(); got != "atoms" {
		t.Errorf("start page = %q", got)
	}
}

type fixedPage struct{ id string }

func (p fixedPage) ID() string              { return p.id }
func (p fixedPage) Title() string           { return strings.ToUpper(p.id) }
func (p fixedPage) View(PageContext) string { return "page " + p.id }

func TestCustomPages(t *testing.T) {
	t.Cleanup(func() { theme.SetCurrent(theme.DefaultName) })
	m := NewAppModel(DefaultConfig(), fixedPage{"a"}, fixedPage{"b"})
	m, _ = update(m, tea.WindowSizeMsg{Width: 60, Height: 12})
	out := m.View()
	if !strings.Contains(out, "page a") || !strings.Contains(out, "B") {
		t.Errorf("custom pages not rendered:\n%s", out)
	}
}

func TestPagesRenderAtWidth(t *testing.T) {
	ctx := PageContext{
		Width:  90,
		Theme:  theme.Get("light"),
		Layout: config.LayoutPreset(config.PresetDashboard),
		Loaded: true,
		data:   samplesAt(3),
	}
	for _, p := range DefaultPages() {
		t.Run(p.ID(), func(t *testing.T) {
			out := p.View(ctx)
			if out == "" {
				t.Fatal("empty page")
			}
			for i, l := range strings.Split(out, "\n") {
				if w := components.VisibleLen(l); w > 90 {
					t.Errorf("line %d is %d wide", i, w)
				}
			}
		})
	}
}

func TestPageContextWithoutData(t *testing.T) {
	out := AtomsPage{}.View(PageContext{Width: 60})
	if !strings.Contains(out, "Sparkline") {
		t.Error("atoms page should fall back to default samples")
	}
}

func TestMoleculesUseLayoutRows(t *testing.T) {
	ctx := PageContext{
		Width: 80,
		Theme: theme.Get("light"),
		Layout: config.LayoutConfig{Rows: []config.RowConfig{
			{Ratio: 1, Children: []config.ChildConfig{{Type: "list", Ratio: 1}}},
		}},
		Loaded: true,
	}
	out := MoleculesPage{}.View(ctx)
	if !strings.Contains(out, "Today") || strings.Contains(out, "Weekly summary") {
		t.Errorf("explicit rows ignored:\n%s", out)
	}
}

func TestPlaceholderPageShowsFallback(t *testing.T) {
	out := NewPlaceholderPage().View(PageContext{Width: 80, Theme: theme.Get("light")})
	for _, want := range []string{"score-card", "chart", "list", "table", `"gauge" falls back to score-card`} {
		if !strings.Contains(out, want) {
			t.Errorf("skeletons page missing %q", want)
		}
	}
}

func TestSamplesDeterministic(t *testing.T) {
	a, b := samplesAt(5), samplesAt(5)
	for i := range a.series {
		for j := range a.series[i] {
			if a.series[i][j] != b.series[i][j] {
				t.Fatal("samples differ for the same frame")
			}
			if v := a.series[i][j]; v < 0 || v > 100 {
				t.Fatalf("sample %v out of range", v)
			}
		}
	}
	if samplesAt(6).series[0][sampleLen-2] != a.series[0][sampleLen-1] {
		t.Error("next frame should shift the series by one")
	}
}

func TestConfigFrom(t *testing.T) {
	c := config.DefaultConfig()
	c.Theme.Name = "dark"
	c.Theme.ASCIIIcons = true
	c.Skeleton.PulseInterval = config.Duration{}
	c.Layout = config.LayoutPreset(config.PresetWide)

	cfg := ConfigFrom(c, 8)
	if cfg.Theme != "dark" || cfg.ColorDepth != 8 {
		t.Errorf("cfg = %+v", cfg)
	}
	if cfg.Icons != components.IconsASCII {
		t.Error("ascii icons not carried over")
	}
	if cfg.PulseInterval != skeleton.DefaultPulseInterval {
		t.Errorf("pulse interval = %s", cfg.PulseInterval)
	}
	if cfg.Layout.Preset != config.PresetWide {
		t.Errorf("layout = %q", cfg.Layout.Preset)
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.RefreshInterval <= 0 {
		t.Error("expected positive RefreshInterval in DefaultConfig")
	}
	if len(cfg.Layout.Rows) == 0 {
		t.Error("expected preset rows in DefaultConfig")
	}
}
