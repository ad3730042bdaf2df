package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Creativityliberty/stylepropre/internal/tui/studio"
)

func runStudio(flags *rootFlags) error {
	if err := requireTTY(); err != nil {
		return err
	}

	app, err := newAppContext(flags)
	if err != nil {
		return err
	}

	gen, err := app.newGenerator()
	if err != nil {
		return err
	}

	m := studio.New(gen, app.log, app.settings.ThemeMode())
	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run studio: %w", err)
	}
	return nil
}
