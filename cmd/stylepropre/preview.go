package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/Creativityliberty/stylepropre/internal/manifest"
	"github.com/Creativityliberty/stylepropre/internal/tui/blueprint"
)

func newPreviewCmd(rootFlags *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "preview <manifest.json>",
		Short: "Browse a saved manifest in the blueprint viewer",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPreview(rootFlags, args[0])
		},
	}

	return cmd
}

func runPreview(flags *rootFlags, path string) error {
	if err := requireTTY(); err != nil {
		return err
	}

	app, err := newAppContext(flags)
	if err != nil {
		return err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read manifest: %w", err)
	}

	raw, err := manifest.ParseFile(path, data)
	if err != nil {
		return err
	}

	normalized := manifest.Normalize(raw)
	for _, warning := range manifest.Lint(normalized) {
		app.log.WithFields(map[string]any{"warning": warning}).Warn("manifest lint")
	}

	p := tea.NewProgram(previewApp{browser: blueprint.New(normalized, app.settings.ThemeMode())}, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run preview: %w", err)
	}
	return nil
}

// previewApp hosts the blueprint browser as a standalone program. The browser
// itself never quits; that is the host's concern. Esc belongs to the browser
// (it clears the styleguide highlight), so quitting is q/ctrl+c only.
type previewApp struct {
	browser blueprint.Model
}

func (a previewApp) Init() tea.Cmd {
	return a.browser.Init()
}

func (a previewApp) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "q", "ctrl+c":
			return a, tea.Quit
		}
	}
	var cmd tea.Cmd
	a.browser, cmd = a.browser.Update(msg)
	return a, cmd
}

func (a previewApp) View() string {
	return a.browser.View()
}
