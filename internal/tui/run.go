package tui

import (
	"fmt"

	"github.com/Veraticus/pocketwatch/internal/dashboard"
	tea "github.com/charmbracelet/bubbletea"
)

// Run starts the dashboard TUI and blocks until the user quits.
func Run(agg *dashboard.Aggregator) error {
	p := tea.NewProgram(newModel(agg), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("dashboard TUI failed: %w", err)
	}
	return nil
}
