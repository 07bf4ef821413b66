package app

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"gitlab.com/tinyland/lab/pulse-ui/pkg/skeleton"
)

// PreviewModel animates one set of placeholders inline until the user
// quits. It backs the CLI's -animate flag.
type PreviewModel struct {
	pulse skeleton.Model
	quit  key.Binding
	done  bool
}

// NewPreviewModel wraps a pulsing skeleton for p.
func NewPreviewModel(p skeleton.Props, r skeleton.Renderer, cfg Config) PreviewModel {
	pulse := skeleton.NewModel(p)
	pulse.Renderer = r
	pulse.Interval = cfg.PulseInterval
	return PreviewModel{
		pulse: pulse,
		quit:  defaultKeyMap().Quit,
	}
}

func (m PreviewModel) Init() tea.Cmd {
	return m.pulse.Init()
}

func (m PreviewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, m.quit) {
			m.done = true
			return m, tea.Quit
		}
		return m, nil
	case skeleton.PulseMsg:
		updated, cmd := m.pulse.Update(msg)
		m.pulse = updated.(skeleton.Model)
		return m, cmd
	}
	return m, nil
}

// View renders the placeholders; the last frame stays on screen after quit.
func (m PreviewModel) View() string {
	return m.pulse.View() + "\n"
}

// Phase returns the current shimmer phase.
func (m PreviewModel) Phase() int { return m.pulse.Renderer.Phase }

// Done reports whether the user quit.
func (m PreviewModel) Done() bool { return m.done }
