package ui

import (
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
)

// Start runs the browser over the current working directory and returns a
// process exit code.
func Start(logger zerolog.Logger) int {
	cwd, err := os.Getwd()
	if err != nil {
		logger.Error().Err(err).Msg("failed to get current working directory")
		return 1
	}
	browser, err := CreateBrowser(cwd)
	if err != nil {
		logger.Error().Err(err).Str("path", cwd).Msg("failed to read directory")
		return 1
	}
	if err := tea.NewProgram(&browser).Start(); err != nil {
		logger.Error().Err(err).Msg("browser exited with an error")
		return 1
	}
	return 0
}
