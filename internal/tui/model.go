// Package tui renders the dashboard in the terminal. The view follows the
// load state machine: Loading, then exactly one of Ready, Guest, or Failed,
// terminal until the user reloads.
package tui

import (
	"context"

	"github.com/Veraticus/pocketwatch/internal/cli"
	"github.com/Veraticus/pocketwatch/internal/dashboard"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// phase is the dashboard load state.
type phase int

const (
	phaseLoading phase = iota
	phaseReady
	phaseGuest
	phaseFailed
)

// Model holds the dashboard TUI state.
type Model struct {
	aggregator *dashboard.Aggregator
	snapshot   *dashboard.Snapshot
	lastError  error
	spinner    spinner.Model
	keymap     KeyMap
	phase      phase
	width      int
	height     int
	quitting   bool
}

// newModel creates a model in the loading phase.
func newModel(agg *dashboard.Aggregator) Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(cli.PrimaryColor)

	return Model{
		aggregator: agg,
		spinner:    sp,
		keymap:     DefaultKeyMap(),
		phase:      phaseLoading,
	}
}

// Init kicks off the first load.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, loadCmd(m.aggregator))
}

// loadCmd runs one aggregator load off the UI loop. A superseded load is
// simply ignored when its message arrives after quit; nothing is cancelled
// at the transport level.
func loadCmd(agg *dashboard.Aggregator) tea.Cmd {
	return func() tea.Msg {
		return loadedMsg{result: agg.Load(context.Background())}
	}
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch {
		case keyMatches(msg, m.keymap.Quit):
			m.quitting = true
			return m, tea.Quit
		case keyMatches(msg, m.keymap.Reload):
			if m.phase == phaseLoading {
				return m, nil
			}
			m.phase = phaseLoading
			m.snapshot = nil
			m.lastError = nil
			return m, tea.Batch(m.spinner.Tick, loadCmd(m.aggregator))
		}
		return m, nil

	case loadedMsg:
		switch msg.result.State {
		case dashboard.StateReady:
			m.phase = phaseReady
			m.snapshot = msg.result.Snapshot
		case dashboard.StateGuest:
			// No valid credential: show the sample experience, never a
			// partial dashboard.
			m.phase = phaseGuest
			m.snapshot = dashboard.SampleSnapshot()
			m.lastError = msg.result.Err
		case dashboard.StateFailed:
			m.phase = phaseFailed
			m.lastError = msg.result.Err
		}
		return m, nil

	case spinner.TickMsg:
		if m.phase != phaseLoading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	return m, nil
}
