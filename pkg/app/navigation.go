package app

import (
	tea "github.com/charmbracelet/bubbletea"
)

// ActivePage returns the page on screen; false when there are none.
func (m AppModel) ActivePage() (Page, bool) {
	if m.nav.Active < 0 || m.nav.Active >= len(m.pages) {
		return nil, false
	}
	return m.pages[m.nav.Active], true
}

// ActivePageID returns the ID of the page on screen, or "" with no pages.
func (m AppModel) ActivePageID() string {
	if p, ok := m.ActivePage(); ok {
		return p.ID()
	}
	return ""
}

// CyclePageForward moves to the next page, wrapping after the last.
func (m *AppModel) CyclePageForward() tea.Cmd {
	var cmd tea.Cmd
	m.nav, cmd = m.nav.Next()
	return cmd
}

// CyclePageBackward moves to the previous page, wrapping before the first.
func (m *AppModel) CyclePageBackward() tea.Cmd {
	var cmd tea.Cmd
	m.nav, cmd = m.nav.Prev()
	return cmd
}

// FocusPage jumps to the page with the given ID. Unknown IDs change
// nothing.
func (m *AppModel) FocusPage(id string) tea.Cmd {
	for i, p := range m.pages {
		if p.ID() == id {
			var cmd tea.Cmd
			m.nav, cmd = m.nav.Select(i)
			return cmd
		}
	}
	return nil
}

// ToggleExpand switches the body between framed and fullscreen.
func (m *AppModel) ToggleExpand() {
	if len(m.pages) == 0 {
		return
	}
	m.expanded = !m.expanded
}
