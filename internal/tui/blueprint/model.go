package blueprint

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Creativityliberty/stylepropre/internal/manifest"
	"github.com/Creativityliberty/stylepropre/internal/theme"
	"github.com/Creativityliberty/stylepropre/internal/tui/styleguide"
)

// Tab identifies one pane of the blueprint browser.
type Tab int

const (
	TabBlueprint Tab = iota
	TabDesign
	TabTech
	TabJSON

	tabCount
)

func (t Tab) String() string {
	switch t {
	case TabBlueprint:
		return "Blueprint"
	case TabDesign:
		return "Design"
	case TabTech:
		return "Tech"
	case TabJSON:
		return "JSON"
	default:
		return "?"
	}
}

// Model is the tabbed browser over a normalized manifest. The design tab
// delegates fully to the styleguide presenter, titled with the project name.
type Model struct {
	manifest manifest.Manifest

	tab        Tab
	copied     bool
	statusMsg  string
	styleguide styleguide.Model

	width  int
	height int
}

// New creates a browser for a normalized manifest. The mode seeds the design
// tab's initial color scheme.
func New(m manifest.Manifest, mode theme.Mode) Model {
	return Model{
		manifest:   m,
		tab:        TabBlueprint,
		styleguide: styleguide.New(m.DesignSystem, m.Project.Name, mode),
		width:      80,
		height:     24,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// ActiveTab exposes the current tab.
func (m Model) ActiveTab() Tab {
	return m.tab
}

// Copied reports whether the transient copy indicator is showing.
func (m Model) Copied() bool {
	return m.copied
}

// Manifest exposes the browsed document.
func (m Model) Manifest() manifest.Manifest {
	return m.manifest
}
