package app

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickCmd returns a Cmd that sends a TickEvent after d.
func TickCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return TickEvent{Time: t}
	})
}

// ThemeCmd delivers a ThemeChangeEvent for name.
func ThemeCmd(name string) tea.Cmd {
	return func() tea.Msg {
		return ThemeChangeEvent{Theme: name}
	}
}

// PresetCmd delivers a LayoutPresetEvent for name.
func PresetCmd(name string) tea.Cmd {
	return func() tea.Msg {
		return LayoutPresetEvent{Preset: name}
	}
}
