package blueprint

import (
	"os"
	"time"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
)

// copiedWindow is how long the copy indicator shows before self-clearing.
const copiedWindow = 2 * time.Second

// copyToClipboardCmd writes the pretty-printed manifest to the system
// clipboard. Best effort; the outcome is reported either way.
func copyToClipboardCmd(text string) tea.Cmd {
	return func() tea.Msg {
		return CopiedMsg{Err: clipboard.WriteAll(text)}
	}
}

// clearCopiedCmd schedules the indicator reset. Fire and forget.
func clearCopiedCmd() tea.Cmd {
	return tea.Tick(copiedWindow, func(time.Time) tea.Msg {
		return ClearCopiedMsg{}
	})
}

// saveManifestCmd exports the manifest to a file in the working directory.
func saveManifestCmd(path, text string) tea.Cmd {
	return func() tea.Msg {
		err := os.WriteFile(path, []byte(text), 0o644)
		return SavedMsg{Path: path, Err: err}
	}
}
