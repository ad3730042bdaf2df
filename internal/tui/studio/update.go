package studio

import (
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Creativityliberty/stylepropre/internal/manifest"
	"github.com/Creativityliberty/stylepropre/internal/tui/blueprint"
)

// Update drives the session state machine: prompt -> loading -> browse, with
// generation failure looping back to the prompt under a single error banner.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.prompt.SetWidth(msg.Width - 4)
		if m.browser != nil {
			updated, _ := m.browser.Update(msg)
			m.browser = &updated
		}
		return m, nil

	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case GeneratedMsg:
		m.loading = false
		m.errMsg = ""

		normalized := manifest.Normalize(msg.Raw)
		for _, warning := range manifest.Lint(normalized) {
			m.log.WithFields(map[string]any{"warning": warning}).Warn("manifest lint")
		}

		browser := blueprint.New(normalized, m.mode)
		m.browser = &browser
		m.phase = phaseBrowse
		return m, nil

	case GenerationFailedMsg:
		// No partial manifest is shown; the previous document, if any, stays.
		m.loading = false
		m.errMsg = msg.Err.Error()
		return m, nil

	case ImageAttachedMsg:
		m.attaching = false
		m.imageInput.Blur()
		m.prompt.Focus()
		if msg.Err != nil {
			m.errMsg = msg.Err.Error()
			return m, nil
		}
		m.imageURI = msg.DataURI
		m.errMsg = ""
		return m, nil

	case DictationMsg:
		if msg.Err != nil {
			m.errMsg = msg.Err.Error()
			return m, nil
		}
		if msg.Transcript != "" {
			m.prompt.SetValue(strings.TrimSpace(m.prompt.Value() + " " + msg.Transcript))
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	// Remaining messages come from the browser's own commands.
	if m.browser != nil {
		updated, cmd := m.browser.Update(msg)
		m.browser = &updated
		return m, cmd
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	}

	if m.phase == phaseBrowse {
		return m.handleBrowseKey(msg)
	}
	return m.handlePromptKey(msg)
}

func (m Model) handleBrowseKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "n":
		// Back to the prompt for a fresh generation; the current manifest
		// stays owned by the session until a new one replaces it.
		m.phase = phasePrompt
		m.prompt.Focus()
		return m, nil
	}

	updated, cmd := m.browser.Update(msg)
	m.browser = &updated
	return m, cmd
}

func (m Model) handlePromptKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.attaching {
		switch msg.String() {
		case "enter":
			path := strings.TrimSpace(m.imageInput.Value())
			if path == "" {
				m.attaching = false
				m.imageInput.Blur()
				m.prompt.Focus()
				return m, nil
			}
			return m, attachImageCmd(path)
		case "esc":
			m.attaching = false
			m.imageInput.Blur()
			m.prompt.Focus()
			return m, nil
		}
		var cmd tea.Cmd
		m.imageInput, cmd = m.imageInput.Update(msg)
		return m, cmd
	}

	switch msg.String() {
	case "ctrl+s":
		// Submit is disabled while a request is pending: a second attempt is
		// a no-op rather than a concurrent call.
		if m.loading {
			return m, nil
		}
		prompt := strings.TrimSpace(m.prompt.Value())
		if prompt == "" {
			m.errMsg = "describe the product first"
			return m, nil
		}
		m.loading = true
		m.errMsg = ""
		return m, tea.Batch(m.spinner.Tick, generateCmd(m.gen, prompt, m.imageURI))

	case "ctrl+o":
		m.attaching = true
		m.prompt.Blur()
		m.imageInput.Focus()
		return m, nil

	case "ctrl+x":
		m.imageURI = ""
		return m, nil

	case "ctrl+d":
		return m, dictateCmd()

	case "esc":
		if m.browser != nil {
			m.phase = phaseBrowse
			return m, nil
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.prompt, cmd = m.prompt.Update(msg)
	return m, cmd
}
