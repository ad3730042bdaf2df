package styleguide

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Creativityliberty/stylepropre/internal/theme"
)

// FocusTarget identifies which component preview carries the hover highlight.
// Cycling focus is the terminal analog of pointer hover: purely cosmetic,
// idempotent, and scoped to a single element.
type FocusTarget int

const (
	FocusNone FocusTarget = iota
	FocusPrimaryButton
	FocusSecondaryButton
	FocusInput
	FocusCard

	focusTargetCount
)

// Model renders a design-system styleguide from a raw (possibly-partial)
// design document. The theme is re-resolved on every View call; the model
// never stores derived style state.
type Model struct {
	design *theme.RawDesignSystem
	title  string

	mode  theme.Mode
	focus FocusTarget

	width int
}

// New creates a styleguide for the given raw design system. The title is the
// project name injected by the enclosing browser. Anything but an explicit
// dark mode starts light.
func New(design *theme.RawDesignSystem, title string, mode theme.Mode) Model {
	if mode != theme.ModeDark {
		mode = theme.ModeLight
	}
	return Model{
		design: design,
		title:  title,
		mode:   mode,
		focus:  FocusNone,
		width:  80,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Mode exposes the current color mode.
func (m Model) Mode() theme.Mode {
	return m.mode
}

// Focus exposes the current hover highlight target.
func (m Model) Focus() FocusTarget {
	return m.focus
}

// CycleFocus moves the hover highlight forward or backward through the
// component previews, wrapping through the no-focus state.
func (m *Model) CycleFocus(delta int) {
	next := (int(m.focus) + delta) % int(focusTargetCount)
	if next < 0 {
		next += int(focusTargetCount)
	}
	m.focus = FocusTarget(next)
}
