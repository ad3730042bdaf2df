package styleguide

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Update handles incoming messages. Mode toggling and focus cycling are pure
// state transitions; the whole visual tree re-renders from the raw document
// with no other side effects.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "m":
			m.mode = m.mode.Toggle()
			return m, nil
		case "right", "l":
			m.CycleFocus(1)
			return m, nil
		case "left", "h":
			m.CycleFocus(-1)
			return m, nil
		case "esc":
			m.focus = FocusNone
			return m, nil
		}
	}

	return m, nil
}
