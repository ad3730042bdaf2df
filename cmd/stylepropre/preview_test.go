package main

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Creativityliberty/stylepropre/internal/manifest"
	"github.com/Creativityliberty/stylepropre/internal/theme"
	"github.com/Creativityliberty/stylepropre/internal/tui/blueprint"
)

func newPreviewApp() previewApp {
	return previewApp{browser: blueprint.New(manifest.Normalize(nil), theme.ModeLight)}
}

func TestPreviewQuitKeys(t *testing.T) {
	t.Parallel()

	for _, msg := range []tea.KeyMsg{
		{Type: tea.KeyRunes, Runes: []rune("q")},
		{Type: tea.KeyCtrlC},
	} {
		_, cmd := newPreviewApp().Update(msg)
		require.NotNil(t, cmd)
		assert.IsType(t, tea.QuitMsg{}, cmd())
	}
}

func TestPreviewEscReachesStyleguide(t *testing.T) {
	t.Parallel()

	app := newPreviewApp()

	updated, _ := app.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("2")})
	app = updated.(previewApp)
	rest := app.View()

	updated, _ = app.Update(tea.KeyMsg{Type: tea.KeyRight})
	app = updated.(previewApp)
	require.NotEqual(t, rest, app.View(), "focus highlight changes the render")

	updated, cmd := app.Update(tea.KeyMsg{Type: tea.KeyEsc})
	app = updated.(previewApp)
	assert.Nil(t, cmd, "esc must not quit the preview")
	assert.Equal(t, rest, app.View(), "esc clears the highlight")
}
