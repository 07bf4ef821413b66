package skeleton

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// DefaultPulseInterval is how often the shimmer phase flips.
const DefaultPulseInterval = 600 * time.Millisecond

// PulseMsg advances the shimmer of the Model whose id matches.
type PulseMsg struct {
	ID   int64
	Time time.Time
}

var lastID atomic.Int64

// Model is a bubbletea model that animates placeholders by flipping the
// shimmer phase on a timer. Embed it in a parent model while data loads.
type Model struct {
	Props    Props
	Renderer Renderer
	Interval time.Duration // <= 0 uses DefaultPulseInterval

	id int64
}

// NewModel returns an animated placeholder model for p.
func NewModel(p Props) Model {
	return Model{Props: p, id: lastID.Add(1)}
}

// ID identifies the model so several placeholders can animate independently.
func (m Model) ID() int64 {
	return m.id
}

// Init starts the pulse ticker.
func (m Model) Init() tea.Cmd {
	return m.tick()
}

// Update flips the phase on this model's PulseMsg and schedules the next
// one. Every other message is ignored.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	pulse, ok := msg.(PulseMsg)
	if !ok || pulse.ID != m.id {
		return m, nil
	}
	m.Renderer.Phase++
	return m, m.tick()
}

// View renders the placeholders at the current phase.
func (m Model) View() string {
	return m.Renderer.View(m.Props)
}

// Items exposes the rendered placeholders at the current phase.
func (m Model) Items() []Item {
	return m.Renderer.Render(m.Props)
}

func (m Model) tick() tea.Cmd {
	d := m.Interval
	if d <= 0 {
		d = DefaultPulseInterval
	}
	id := m.id
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return PulseMsg{ID: id, Time: t}
	})
}
