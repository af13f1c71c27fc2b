package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/idilsaglam/tada/internal/todo"
)

// Run starts the full-screen view and blocks until the user quits.
func Run(store *todo.Store, opt Options) error {
	m := New(store, opt)
	defer m.Close()

	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run tui: %w", err)
	}
	return nil
}
