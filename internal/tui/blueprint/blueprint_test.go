package blueprint

import (
	"errors"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Creativityliberty/stylepropre/internal/manifest"
	"github.com/Creativityliberty/stylepropre/internal/theme"
)

func testManifest() manifest.Manifest {
	return manifest.Normalize(&manifest.RawManifest{
		Project: &manifest.Project{ID: "atlas", Name: "Atlas", Version: "1.0.0"},
		Landing: &manifest.Landing{
			Structure: []string{"hero", "pricing"},
			Sections:  map[string]manifest.Section{"hero": {Headline: "Maps for everyone"}},
		},
		DesignSystem: &theme.RawDesignSystem{
			Colors: &theme.ColorModes{Light: &theme.ColorScheme{Primary: "#FF0000"}},
		},
	})
}

func keyRune(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestTabSwitching(t *testing.T) {
	t.Parallel()

	m := New(testManifest(), theme.ModeLight)
	require.Equal(t, TabBlueprint, m.ActiveTab())

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, TabDesign, m.ActiveTab())

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	assert.Equal(t, TabBlueprint, m.ActiveTab())

	m, _ = m.Update(keyRune('4'))
	assert.Equal(t, TabJSON, m.ActiveTab())

	m, _ = m.Update(keyRune('2'))
	assert.Equal(t, TabDesign, m.ActiveTab())
}

func TestCopyIndicatorLifecycle(t *testing.T) {
	t.Parallel()

	m := New(testManifest(), theme.ModeLight)
	require.False(t, m.Copied())

	// Successful copy sets the flag and schedules the reset tick.
	m, cmd := m.Update(CopiedMsg{})
	assert.True(t, m.Copied())
	require.NotNil(t, cmd)
	assert.Equal(t, 2*time.Second, copiedWindow, "indicator self-clears after two seconds")

	m, _ = m.Update(ClearCopiedMsg{})
	assert.False(t, m.Copied())
}

func TestCopyFailureShowsStatusNotFlag(t *testing.T) {
	t.Parallel()

	m := New(testManifest(), theme.ModeLight)
	m, cmd := m.Update(CopiedMsg{Err: errors.New("no clipboard")})

	assert.False(t, m.Copied())
	assert.Nil(t, cmd)
	assert.Contains(t, m.View(), "copy failed")
}

func TestCopyKeyEmitsClipboardCommand(t *testing.T) {
	t.Parallel()

	m := New(testManifest(), theme.ModeLight)
	_, cmd := m.Update(keyRune('c'))
	assert.NotNil(t, cmd)
}

func TestBlueprintTabRendersStructure(t *testing.T) {
	t.Parallel()

	view := New(testManifest(), theme.ModeLight).View()

	assert.Contains(t, view, "Atlas")
	assert.Contains(t, view, "Landing structure")
	assert.Contains(t, view, "1. Maps for everyone")
	// Sections without content fall back to the placeholder label.
	assert.Contains(t, view, "2. "+fallbackSectionLabel)
	assert.Contains(t, view, "#pricing")
	assert.Contains(t, view, "Dashboard modules")
	assert.Contains(t, view, "Overview")
	assert.Contains(t, view, "Growth")
}

func TestDesignTabDelegatesToStyleguide(t *testing.T) {
	t.Parallel()

	m := New(testManifest(), theme.ModeLight)
	m, _ = m.Update(keyRune('2'))

	view := m.View()
	assert.Contains(t, view, "Atlas — Design System")
	assert.Contains(t, view, "#FF0000")

	// Mode toggle reaches the embedded styleguide.
	m, _ = m.Update(keyRune('m'))
	assert.Contains(t, m.View(), "[dark mode]")
}

func TestTechTabRendersStackAndAuth(t *testing.T) {
	t.Parallel()

	m := New(testManifest(), theme.ModeLight)
	m, _ = m.Update(keyRune('3'))

	view := m.View()
	assert.Contains(t, view, "Preset: next-tailwind")
	assert.Contains(t, view, "Persistence: local")
	assert.Contains(t, view, "linting")
	assert.Contains(t, view, "✓ email")
	assert.Contains(t, view, "Indexing: on")
}

func TestJSONTabShowsDocumentAndCopyHint(t *testing.T) {
	t.Parallel()

	m := New(testManifest(), theme.ModeLight)
	m, _ = m.Update(keyRune('4'))
	m, _ = m.Update(tea.WindowSizeMsg{Width: 100, Height: 60})

	view := m.View()
	assert.Contains(t, view, `"atlas"`)
	assert.Contains(t, view, "c: copy manifest")

	m, _ = m.Update(CopiedMsg{})
	assert.Contains(t, m.View(), "copied")
}

func TestSaveMessageUpdatesStatus(t *testing.T) {
	t.Parallel()

	m := New(testManifest(), theme.ModeLight)
	m, _ = m.Update(SavedMsg{Path: "atlas-manifest.json"})
	assert.Contains(t, m.View(), "saved atlas-manifest.json")

	m, _ = m.Update(SavedMsg{Path: "x", Err: errors.New("denied")})
	assert.Contains(t, m.View(), "save failed")
}
