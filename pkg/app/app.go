package app

import (
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"

	"gitlab.com/tinyland/lab/pulse-ui/pkg/components"
	"gitlab.com/tinyland/lab/pulse-ui/pkg/config"
	"gitlab.com/tinyland/lab/pulse-ui/pkg/layout"
	"gitlab.com/tinyland/lab/pulse-ui/pkg/skeleton"
	"gitlab.com/tinyland/lab/pulse-ui/pkg/theme"
)

// AppModel is the root gallery model.
type AppModel struct {
	cfg   Config
	pages []Page
	log   *slog.Logger

	nav      layout.Navigation
	viewport viewport.Model
	spinner  spinner.Model
	pulse    skeleton.Model
	help     help.Model
	keys     keyMap
	zones    *zone.Manager

	theme    theme.Theme
	data     samples
	loaded   bool
	expanded bool
	quitting bool
	ready    bool

	width  int
	height int
}

// NewAppModel builds the gallery. With no pages the default four are used.
func NewAppModel(cfg Config, pages ...Page) AppModel {
	if len(pages) == 0 {
		pages = DefaultPages()
	}

	items := make([]layout.NavItem, len(pages))
	for i, p := range pages {
		items[i] = layout.NavItem{ID: p.ID(), Label: p.Title()}
	}

	zones := zone.New()
	nav := layout.NewNavigation(items...)
	nav.Zones = zones
	nav.Prefix = "page"

	s := spinner.New()
	s.Spinner = spinner.Dot

	pulse := skeleton.NewModel(skeleton.Props{})
	pulse.Interval = cfg.PulseInterval

	m := AppModel{
		cfg:     cfg,
		pages:   pages,
		log:     slog.Default(),
		nav:     nav,
		spinner: s,
		pulse:   pulse,
		help:    help.New(),
		keys:    defaultKeyMap(),
		zones:   zones,
		data:    samplesAt(0),
		loaded:  cfg.RefreshInterval <= 0,
	}
	m.keys.Nav = nav.Keys
	m.applyTheme(cfg.Theme)
	if cfg.StartPage != "" {
		m.FocusPage(cfg.StartPage)
	}
	return m
}

// WithLogger returns a copy that logs to l.
func (m AppModel) WithLogger(l *slog.Logger) AppModel {
	m.log = l
	return m
}

// Init starts the refresh ticker, the skeleton pulse and the spinner.
func (m AppModel) Init() tea.Cmd {
	cmds := []tea.Cmd{m.pulse.Init(), m.spinner.Tick}
	if m.cfg.RefreshInterval > 0 {
		cmds = append(cmds, TickCmd(m.cfg.RefreshInterval))
	}
	return tea.Batch(cmds...)
}

// Update handles messages.
func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		var cmd tea.Cmd
		m.nav, cmd = m.nav.Update(msg)
		if cmd != nil {
			return m, cmd
		}
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd

	case layout.NavigateMsg:
		m.log.Debug("page changed", "page", msg.ID)
		m.viewport.GotoTop()
		m.refresh()
		return m, nil

	case PageFocusEvent:
		return m, m.FocusPage(msg.PageID)

	case TickEvent:
		m.data = samplesAt(m.data.frame + 1)
		if !m.loaded {
			m.log.Debug("sample data loaded")
		}
		m.loaded = true
		m.refresh()
		return m, TickCmd(m.cfg.RefreshInterval)

	case skeleton.PulseMsg:
		updated, cmd := m.pulse.Update(msg)
		m.pulse = updated.(skeleton.Model)
		if m.showsSkeletons() {
			m.refresh()
		}
		return m, cmd

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		if m.showsSkeletons() {
			m.refresh()
		}
		return m, cmd

	case ThemeChangeEvent:
		m.applyTheme(msg.Theme)
		m.refresh()
		return m, nil

	case LayoutPresetEvent:
		m.cfg.Layout = config.LayoutPreset(msg.Preset)
		m.log.Debug("layout preset changed", "preset", m.cfg.Layout.Preset)
		m.refresh()
		return m, nil
	}

	return m, nil
}

func (m AppModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.resize()
		return m, nil

	case key.Matches(msg, m.keys.Theme):
		return m, ThemeCmd(m.nextTheme())

	case key.Matches(msg, m.keys.Layout):
		return m, PresetCmd(m.nextPreset())

	case key.Matches(msg, m.keys.Expand):
		m.ToggleExpand()
		m.resize()
		return m, nil

	case key.Matches(msg, m.keys.Collapse):
		if m.expanded {
			m.expanded = false
			m.resize()
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.nav, cmd = m.nav.Update(msg)
	if cmd != nil {
		return m, cmd
	}
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// View renders the gallery.
func (m AppModel) View() string {
	if m.quitting {
		return ""
	}
	if !m.ready {
		return "Initializing..."
	}
	return m.zones.Scan(m.shell(m.viewport.View()).View())
}

// shell frames body with the header, tab bar and help footer. Fullscreen
// drops everything but the body.
func (m AppModel) shell(body string) layout.Shell {
	if m.expanded {
		return layout.Shell{Body: body, Width: m.width, Height: m.height}
	}
	nav := m.nav
	nav.Theme = m.theme
	nav.Width = m.width
	return layout.Shell{
		Header: m.header(),
		Nav:    nav.View(),
		Body:   body,
		Footer: m.help.View(m.keys),
		Width:  m.width,
		Height: m.height,
	}
}

func (m AppModel) header() string {
	title := components.Heading("pulse-ui", m.theme)
	info := components.Caption(fmt.Sprintf("  theme %s \u00b7 layout %s", m.theme.Name, m.layoutName()), m.theme)
	line := title + info
	if !m.loaded {
		line += "  " + m.spinner.View() + components.Caption(" loading", m.theme)
	}
	return lipgloss.NewStyle().MaxWidth(max(m.width, 1)).Render(line)
}

// resize fits the viewport to the space the shell leaves for the body.
func (m *AppModel) resize() {
	if m.width <= 0 || m.height <= 0 {
		return
	}
	h := max(m.shell("").BodyHeight(), 1)
	if !m.ready {
		m.viewport = viewport.New(m.width, h)
		m.viewport.MouseWheelEnabled = true
		m.ready = true
	} else {
		m.viewport.Width = m.width
		m.viewport.Height = h
	}
	m.refresh()
}

// refresh re-renders the active page into the viewport.
func (m *AppModel) refresh() {
	if !m.ready {
		return
	}
	m.viewport.SetContent(m.renderPage())
}

func (m AppModel) renderPage() string {
	p, ok := m.ActivePage()
	if !ok {
		return ""
	}
	return p.View(m.pageContext())
}

func (m AppModel) pageContext() PageContext {
	return PageContext{
		Width:   m.width,
		Theme:   m.theme,
		Icons:   m.cfg.Icons,
		Layout:  m.cfg.Layout,
		Loaded:  m.loaded,
		Phase:   m.pulse.Renderer.Phase,
		Spinner: m.spinner.View(),
		data:    m.data,
	}
}

// showsSkeletons reports whether the visible page animates placeholders.
func (m AppModel) showsSkeletons() bool {
	p, ok := m.ActivePage()
	if !ok {
		return false
	}
	switch p.(type) {
	case PlaceholderPage:
		return true
	case MoleculesPage:
		return !m.loaded
	}
	return false
}

func (m *AppModel) applyTheme(name string) {
	t, err := theme.Lookup(name)
	if err != nil {
		m.log.Warn("unknown theme, using default", "theme", name, "default", theme.DefaultName)
		t = theme.Get(theme.DefaultName)
	}
	depth := m.cfg.ColorDepth
	if depth <= 0 {
		depth = 24
	}
	m.theme = theme.Adapt(t, depth)
	theme.Use(m.theme)
}

func (m AppModel) nextTheme() string {
	names := theme.Names()
	i := slices.Index(names, strings.ToLower(m.theme.Name))
	return names[(i+1)%len(names)]
}

func (m AppModel) nextPreset() string {
	names := config.PresetNames()
	i := slices.Index(names, m.layoutName())
	return names[(i+1)%len(names)]
}

func (m AppModel) layoutName() string {
	if m.cfg.Layout.Preset == "" {
		return "custom"
	}
	return m.cfg.Layout.Preset
}

// Width returns the terminal width.
func (m AppModel) Width() int { return m.width }

// Height returns the terminal height.
func (m AppModel) Height() int { return m.height }

// Quitting reports whether the user asked to quit.
func (m AppModel) Quitting() bool { return m.quitting }

// HelpVisible reports whether the full help is showing.
func (m AppModel) HelpVisible() bool { return m.help.ShowAll }

// Expanded reports whether the body is fullscreen.
func (m AppModel) Expanded() bool { return m.expanded }

// Loaded reports whether sample data has arrived.
func (m AppModel) Loaded() bool { return m.loaded }

// Theme returns the active theme.
func (m AppModel) Theme() theme.Theme { return m.theme }

// LayoutPreset returns the molecules page layout name.
func (m AppModel) LayoutPreset() string { return m.layoutName() }
