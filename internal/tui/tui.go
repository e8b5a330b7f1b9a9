// Package tui implements the interactive menu editor.
package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
)

// Run opens the editor on store and blocks until the user quits.
// It reports whether unsaved edits were discarded.
func Run(store Store) (discarded bool, err error) {
	p := tea.NewProgram(NewModel(store), tea.WithAltScreen())

	final, err := p.Run()
	if err != nil {
		return false, fmt.Errorf("menu editor failed: %w", err)
	}
	if m, ok := final.(Model); ok {
		return m.Dirty(), nil
	}
	return false, nil
}
