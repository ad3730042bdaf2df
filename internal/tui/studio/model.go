package studio

import (
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Creativityliberty/stylepropre/internal/generator"
	"github.com/Creativityliberty/stylepropre/internal/logger"
	"github.com/Creativityliberty/stylepropre/internal/theme"
	"github.com/Creativityliberty/stylepropre/internal/tui/blueprint"
)

// phase is the studio's coarse state: writing a prompt or browsing a result.
type phase int

const (
	phasePrompt phase = iota
	phaseBrowse
)

// Model is the top-level interactive session. It owns the manifest document
// for its lifetime: a successful generation replaces it wholesale and the
// browser below only ever reads it.
type Model struct {
	gen  generator.Generator
	log  *logger.Logger
	mode theme.Mode

	phase   phase
	loading bool
	errMsg  string

	prompt     textarea.Model
	imageInput textinput.Model
	attaching  bool
	imageURI   string

	spinner spinner.Model

	browser *blueprint.Model

	width  int
	height int
}

// New creates a studio session backed by the given generator. The mode seeds
// the styleguide of every manifest browsed in this session.
func New(gen generator.Generator, log *logger.Logger, mode theme.Mode) Model {
	prompt := textarea.New()
	prompt.Placeholder = "Describe the product you want a blueprint for..."
	prompt.Focus()
	prompt.SetHeight(5)

	imageInput := textinput.New()
	imageInput.Placeholder = "path/to/reference.png"

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = spinnerStyle

	return Model{
		gen:        gen,
		log:        log,
		mode:       mode,
		phase:      phasePrompt,
		prompt:     prompt,
		imageInput: imageInput,
		spinner:    s,
		width:      80,
		height:     24,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return textarea.Blink
}

// Loading reports whether a generation request is in flight.
func (m Model) Loading() bool {
	return m.loading
}

// Browsing reports whether a manifest is on screen.
func (m Model) Browsing() bool {
	return m.phase == phaseBrowse && m.browser != nil
}

// AttachedImage exposes the current reference image data URI, if any.
func (m Model) AttachedImage() string {
	return m.imageURI
}

// ErrorMessage exposes the current error banner text, if any.
func (m Model) ErrorMessage() string {
	return m.errMsg
}
