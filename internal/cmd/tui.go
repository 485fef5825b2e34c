package cmd

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/gravitrone/qbank/internal/ui"
)

// RunTUI starts the interactive browser.
func RunTUI(opts *Options) error {
	env, err := LoadEnv(opts)
	if err != nil {
		return err
	}
	defer env.Close()

	env.Logger.Info("starting browser", "source", env.Config.DataSource)
	app := ui.NewApp(env.Source, env.KV, env.Config, env.Logger.Logger)

	p := tea.NewProgram(app, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui error: %w", err)
	}
	return nil
}
