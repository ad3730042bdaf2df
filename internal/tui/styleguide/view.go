package styleguide

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Creativityliberty/stylepropre/internal/theme"
)

// View resolves the raw document for the current mode and renders the whole
// styleguide. Missing data renders as fallback text; nothing here may fail.
func (m Model) View() string {
	resolved := theme.Resolve(m.design, m.mode)
	comps := theme.DeriveComponents(resolved, rawComponents(m.design))

	sections := []string{
		m.renderHeader(resolved),
		sectionTitleStyle.Render("Palette"),
		m.renderPalette(resolved),
		sectionTitleStyle.Render("Typography"),
		renderTypography(resolved),
		sectionTitleStyle.Render("Motion"),
		renderMotion(resolved),
		sectionTitleStyle.Render("Spacing"),
		renderSpacing(resolved),
		sectionTitleStyle.Render("Components"),
		m.renderComponents(resolved, comps),
		sectionTitleStyle.Render("CSS Variables"),
		codeBlockStyle.Render(strings.TrimRight(theme.CSSVariables(resolved), "\n")),
		footerStyle.Render("m: toggle mode • ←/→: highlight component • esc: clear"),
	}

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func rawComponents(design *theme.RawDesignSystem) *theme.RawComponents {
	if design == nil {
		return nil
	}
	return design.Components
}

func (m Model) renderHeader(t theme.Theme) string {
	title := m.title
	if title == "" {
		title = t.ProjectName
	}
	modeTag := labelStyle.Render(fmt.Sprintf("[%s mode]", t.Mode))
	return titleStyle.Render(title+" — Design System") + " " + modeTag
}

// renderPalette draws one tile per color token: a filled swatch plus the token
// name and its displayable value.
func (m Model) renderPalette(t theme.Theme) string {
	perRow := m.width / 26
	if perRow < 1 {
		perRow = 1
	}

	var rows []string
	var row []string
	for _, name := range theme.TokenNames() {
		value := t.Colors.Lookup(name)
		swatch := lipgloss.NewStyle().
			Background(lipgloss.Color(t.Colors.Token(name))).
			Render("      ")
		tile := swatchTileStyle.Render(lipgloss.JoinVertical(
			lipgloss.Left,
			swatch,
			name,
			labelStyle.Render(value),
		))
		row = append(row, tile)
		if len(row) == perRow {
			rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
			row = nil
		}
	}
	if len(row) > 0 {
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
	}

	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func renderTypography(t theme.Theme) string {
	scale := t.Typography.Scale
	h1 := lipgloss.NewStyle().Bold(true).Underline(true).Render("The quick brown fox") +
		"  " + labelStyle.Render("h1 · "+scale.H1)
	h2 := lipgloss.NewStyle().Bold(true).Render("The quick brown fox") +
		"  " + labelStyle.Render("h2 · "+scale.H2)
	body := "The quick brown fox jumps over the lazy dog" +
		"  " + labelStyle.Render("body · "+scale.Body)
	family := labelStyle.Render("font: " + t.Typography.FontFamily)

	return lipgloss.JoinVertical(lipgloss.Left, h1, h2, body, family)
}

// renderMotion tags each duration tier with its literal string; timing is data
// in a terminal render, not an animation.
func renderMotion(t theme.Theme) string {
	d := t.Animation.Duration
	rows := []string{
		fmt.Sprintf("%s fast    %s", pulseBar(2), labelStyle.Render(d.Fast)),
		fmt.Sprintf("%s normal  %s", pulseBar(4), labelStyle.Render(d.Normal)),
		fmt.Sprintf("%s slow    %s", pulseBar(6), labelStyle.Render(d.Slow)),
		labelStyle.Render("easing: " + t.Animation.Easing),
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func pulseBar(width int) string {
	return lipgloss.NewStyle().Foreground(accentColor).Render(strings.Repeat("▰", width))
}

// renderSpacing draws bars for the first four scale entries, always in the
// fixed tier order xs, sm, md, lg.
func renderSpacing(t theme.Theme) string {
	entries := t.Spacing.Scale.Ordered()[:4]

	var rows []string
	for _, entry := range entries {
		bar := strings.Repeat("█", sizeToCells(entry.Value))
		rows = append(rows, fmt.Sprintf("%-4s %s %s", entry.Key, bar, labelStyle.Render(entry.Value)))
	}
	rows = append(rows, labelStyle.Render(fmt.Sprintf("base unit: %g", t.Spacing.Base)))

	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

// sizeToCells maps a CSS-ish size string onto a terminal bar width.
func sizeToCells(value string) int {
	digits := strings.TrimRight(value, "abcdefghijklmnopqrstuvwxyz% ")
	n, err := strconv.ParseFloat(strings.TrimSpace(digits), 64)
	if err != nil || n <= 0 {
		return 1
	}

	cells := n
	switch {
	case strings.HasSuffix(value, "rem"), strings.HasSuffix(value, "em"):
		cells = n * 4
	case strings.HasSuffix(value, "px"):
		cells = n / 4
	}

	if cells < 1 {
		return 1
	}
	if cells > 40 {
		return 40
	}
	return int(cells)
}

func (m Model) renderComponents(t theme.Theme, comps theme.ComponentSet) string {
	rows := []string{
		lipgloss.JoinHorizontal(
			lipgloss.Top,
			m.renderPrimaryButton(comps.Button),
			"  ",
			m.renderSecondaryButton(comps.SecondaryButton),
		),
		"",
		m.renderInput(comps.Input),
		"",
		renderBadges(comps.Badges),
		"",
		m.renderCard(comps.Card),
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (m Model) renderPrimaryButton(b theme.ButtonStyle) string {
	background := b.Background
	if m.focus == FocusPrimaryButton && b.Hover != "" {
		background = b.Hover
	}

	pill := lipgloss.NewStyle().
		Background(lipgloss.Color(background)).
		Foreground(lipgloss.Color(b.Text)).
		Bold(true).
		Padding(0, 3).
		Render("Get Started")

	label := labelStyle.Render("primary · " + displayValue(background))
	return frameFor(m.focus == FocusPrimaryButton).Render(pill) + "\n" + label
}

func (m Model) renderSecondaryButton(b theme.ButtonStyle) string {
	style := lipgloss.NewStyle().
		Foreground(lipgloss.Color(b.Text)).
		Padding(0, 3)
	if m.focus == FocusSecondaryButton && b.HoverBackground != "" {
		style = style.Background(lipgloss.Color(b.HoverBackground))
	}

	frame := frameFor(m.focus == FocusSecondaryButton).
		BorderForeground(lipgloss.Color(b.Border))

	label := labelStyle.Render("secondary · " + displayValue(b.Border))
	return frame.Render(style.Render("Learn More")) + "\n" + label
}

func (m Model) renderInput(in theme.InputStyle) string {
	border := in.Border
	state := "rest"
	if m.focus == FocusInput {
		border = in.FocusBorder
		state = "focus"
	}

	box := lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(border)).
		Padding(0, 1).
		Width(32).
		Render(labelStyle.Render("you@example.com"))

	return box + "\n" + labelStyle.Render(fmt.Sprintf("input · %s border: %s", state, displayValue(border)))
}

func renderBadges(badges theme.BadgeSet) string {
	render := func(label string, b theme.BadgeStyle) string {
		return lipgloss.NewStyle().
			Foreground(lipgloss.Color(b.Text)).
			Padding(0, 1).
			Render("● " + label)
	}

	return lipgloss.JoinHorizontal(
		lipgloss.Top,
		render("Success", badges.Success),
		render("Error", badges.Error),
		render("Warning", badges.Warning),
		render("Info", badges.Info),
	)
}

func (m Model) renderCard(c theme.CardStyle) string {
	shadow := c.Shadow
	if m.focus == FocusCard && c.HoverShadow != "" {
		shadow = c.HoverShadow
	}

	content := lipgloss.JoinVertical(
		lipgloss.Left,
		lipgloss.NewStyle().Bold(true).Render("Card Title"),
		"Supporting copy sits here.",
		labelStyle.Render("radius "+displayValue(c.Radius)+" · shadow "+displayValue(shadow)),
	)

	return frameFor(m.focus == FocusCard).
		Padding(0, 2).
		Render(content)
}

func frameFor(focused bool) lipgloss.Style {
	if focused {
		return focusedFrameStyle
	}
	return restFrameStyle
}

func displayValue(value string) string {
	if value == "" {
		return theme.MissingTokenText
	}
	return value
}
