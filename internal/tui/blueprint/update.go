package blueprint

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Creativityliberty/stylepropre/internal/manifest"
)

// Update handles incoming messages. Tab switching and copy state live here;
// everything else on the design tab flows through to the styleguide.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.styleguide, _ = m.styleguide.Update(msg)
		return m, nil

	case CopiedMsg:
		if msg.Err != nil {
			// Best-effort operation; show the failure and move on.
			m.statusMsg = "copy failed: " + msg.Err.Error()
			return m, nil
		}
		m.copied = true
		return m, clearCopiedCmd()

	case ClearCopiedMsg:
		m.copied = false
		return m, nil

	case SavedMsg:
		if msg.Err != nil {
			m.statusMsg = "save failed: " + msg.Err.Error()
		} else {
			m.statusMsg = "saved " + msg.Path
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "tab":
		m.tab = (m.tab + 1) % tabCount
		return m, nil
	case "shift+tab":
		m.tab = (m.tab + tabCount - 1) % tabCount
		return m, nil
	case "1":
		m.tab = TabBlueprint
		return m, nil
	case "2":
		m.tab = TabDesign
		return m, nil
	case "3":
		m.tab = TabTech
		return m, nil
	case "4":
		m.tab = TabJSON
		return m, nil
	case "c":
		return m, copyToClipboardCmd(manifest.PrettyJSON(m.manifest))
	case "s":
		return m, saveManifestCmd(manifest.ExportFilename(m.manifest), manifest.PrettyJSON(m.manifest))
	}

	if m.tab == TabDesign {
		var cmd tea.Cmd
		m.styleguide, cmd = m.styleguide.Update(msg)
		return m, cmd
	}

	return m, nil
}

// fallbackSectionLabel is rendered for landing sections without content.
const fallbackSectionLabel = "Content Block"

func sectionLabel(landing manifest.Landing, id string) string {
	return landing.Sections[id].Display(fallbackSectionLabel)
}

func boolBadge(state bool) string {
	if state {
		return "on"
	}
	return "off"
}

func checkItem(label string) string {
	return fmt.Sprintf("✓ %s", label)
}
