package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"tasq/internal/api"
)

// Run starts the interactive session. The initial load happens before the
// program starts; a storage failure here is fatal and propagates to the
// process exit path.
func Run(apiInstance api.API) error {
	m, err := newAppModel(apiInstance)
	if err != nil {
		return err
	}
	_, err = tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}
