package app

import (
	"github.com/charmbracelet/bubbles/key"

	"gitlab.com/tinyland/lab/pulse-ui/pkg/layout"
)

type keyMap struct {
	Nav layout.NavKeyMap

	Up       key.Binding
	Down     key.Binding
	Expand   key.Binding
	Collapse key.Binding
	Theme    key.Binding
	Layout   key.Binding
	Help     key.Binding
	Quit     key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Nav: layout.DefaultNavKeyMap(),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("\u2191/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("\u2193/j", "scroll down"),
		),
		Expand: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "fullscreen"),
		),
		Collapse: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "exit fullscreen"),
		),
		Theme: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "next theme"),
		),
		Layout: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "next layout"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Nav.Prev, k.Nav.Next, k.Theme, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Nav.Prev, k.Nav.Next, k.Nav.Jump},
		{k.Up, k.Down, k.Expand, k.Collapse},
		{k.Theme, k.Layout, k.Help, k.Quit},
	}
}
