package layout

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"

	"gitlab.com/tinyland/lab/pulse-ui/pkg/theme"
)

// NavItem is one tab.
type NavItem struct {
	ID    string
	Label string
}

// NavigateMsg is emitted when the active tab changes.
type NavigateMsg struct {
	Index int
	ID    string
}

// NavKeyMap holds the tab bar key bindings.
type NavKeyMap struct {
	Prev key.Binding
	Next key.Binding
	Jump key.Binding
}

// DefaultNavKeyMap returns the standard bindings: arrows, h/l, tab and
// shift+tab to move, 1-9 to jump.
func DefaultNavKeyMap() NavKeyMap {
	return NavKeyMap{
		Prev: key.NewBinding(
			key.WithKeys("left", "h", "shift+tab"),
			key.WithHelp("\u2190/h", "prev tab"),
		),
		Next: key.NewBinding(
			key.WithKeys("right", "l", "tab"),
			key.WithHelp("\u2192/l", "next tab"),
		),
		Jump: key.NewBinding(
			key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9"),
			key.WithHelp("1-9", "jump to tab"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k NavKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Prev, k.Next, k.Jump}
}

// FullHelp implements help.KeyMap.
func (k NavKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// Navigation is a horizontal tab bar. It is a value type: Update returns
// the changed copy along with a command that delivers NavigateMsg.
//
// Mouse selection needs a bubblezone manager in Zones, and the program's
// root View must pass its output through Zones.Scan.
type Navigation struct {
	Items  []NavItem
	Active int
	Keys   NavKeyMap
	Zones  *zone.Manager // nil disables mouse support
	Prefix string        // zone id prefix; empty = "nav"
	Width  int           // <= 0 = natural width
	Theme  theme.Theme
}

// NewNavigation returns a tab bar over items with the first one active.
func NewNavigation(items ...NavItem) Navigation {
	return Navigation{Items: items, Keys: DefaultNavKeyMap()}
}

// ActiveItem returns the active tab; false when there are no items.
func (n Navigation) ActiveItem() (NavItem, bool) {
	if n.Active < 0 || n.Active >= len(n.Items) {
		return NavItem{}, false
	}
	return n.Items[n.Active], true
}

// Select activates the tab at index. Out-of-range indexes and selecting
// the active tab change nothing and return a nil command.
func (n Navigation) Select(index int) (Navigation, tea.Cmd) {
	if index < 0 || index >= len(n.Items) || index == n.Active {
		return n, nil
	}
	n.Active = index
	msg := NavigateMsg{Index: index, ID: n.Items[index].ID}
	return n, func() tea.Msg { return msg }
}

// Next moves to the following tab, wrapping at the end.
func (n Navigation) Next() (Navigation, tea.Cmd) {
	if len(n.Items) == 0 {
		return n, nil
	}
	return n.Select((n.Active + 1) % len(n.Items))
}

// Prev moves to the preceding tab, wrapping at the start.
func (n Navigation) Prev() (Navigation, tea.Cmd) {
	if len(n.Items) == 0 {
		return n, nil
	}
	return n.Select((n.Active - 1 + len(n.Items)) % len(n.Items))
}

// Update handles key presses and left clicks on a tab.
func (n Navigation) Update(msg tea.Msg) (Navigation, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		keys := n.keys()
		switch {
		case key.Matches(msg, keys.Prev):
			return n.Prev()
		case key.Matches(msg, keys.Next):
			return n.Next()
		case key.Matches(msg, keys.Jump):
			s := msg.String()
			return n.Select(int(s[0] - '1'))
		}

	case tea.MouseMsg:
		if n.Zones == nil || msg.Action != tea.MouseActionRelease || msg.Button != tea.MouseButtonLeft {
			return n, nil
		}
		for i := range n.Items {
			if z := n.Zones.Get(n.ZoneID(i)); z != nil && z.InBounds(msg) {
				return n.Select(i)
			}
		}
	}
	return n, nil
}

// ZoneID is the bubblezone id of the tab at index.
func (n Navigation) ZoneID(index int) string {
	prefix := n.Prefix
	if prefix == "" {
		prefix = "nav"
	}
	return fmt.Sprintf("%s-%d", prefix, index)
}

// View renders the tab bar on one line.
func (n Navigation) View() string {
	if len(n.Items) == 0 {
		return ""
	}
	t := n.Theme
	if t.Name == "" {
		t = theme.Current()
	}

	active := lipgloss.NewStyle().
		Bold(true).
		Underline(true).
		Foreground(lipgloss.Color(t.Primary)).
		Padding(0, 1)
	idle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(t.Muted)).
		Padding(0, 1)
	sep := lipgloss.NewStyle().Foreground(lipgloss.Color(t.Border)).Render("\u2502") // │

	tabs := make([]string, len(n.Items))
	for i, it := range n.Items {
		style := idle
		if i == n.Active {
			style = active
		}
		tab := style.Render(it.Label)
		if n.Zones != nil {
			tab = n.Zones.Mark(n.ZoneID(i), tab)
		}
		tabs[i] = tab
	}

	bar := strings.Join(tabs, sep)
	if n.Width > 0 {
		return fitLine(bar, n.Width)
	}
	return bar
}

func (n Navigation) keys() NavKeyMap {
	if len(n.Keys.Next.Keys()) == 0 {
		return DefaultNavKeyMap()
	}
	return n.Keys
}
