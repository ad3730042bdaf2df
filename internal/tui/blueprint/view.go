package blueprint

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Creativityliberty/stylepropre/internal/manifest"
)

// View renders the active tab under the shared tab bar.
func (m Model) View() string {
	var body string
	switch m.tab {
	case TabDesign:
		body = m.styleguide.View()
	case TabTech:
		body = m.renderTechTab()
	case TabJSON:
		body = m.renderJSONTab()
	default:
		body = m.renderBlueprintTab()
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		headerStyle.Render(m.manifest.Project.Name),
		m.renderTabBar(),
		body,
		m.renderFooter(),
	)
}

func (m Model) renderTabBar() string {
	var tabs []string
	for t := TabBlueprint; t < tabCount; t++ {
		label := fmt.Sprintf("%d %s", int(t)+1, t)
		if t == m.tab {
			tabs = append(tabs, activeTabStyle.Render(label))
		} else {
			tabs = append(tabs, inactiveTabStyle.Render(label))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Bottom, tabs...)
}

// renderBlueprintTab shows the landing structure, dashboard modules and the
// growth mechanics.
func (m Model) renderBlueprintTab() string {
	sections := []string{sectionHeadingStyle.Render("Landing structure")}

	for i, id := range m.manifest.Landing.Structure {
		card := sectionCardStyle.Render(fmt.Sprintf(
			"%d. %s  %s",
			i+1,
			sectionLabel(m.manifest.Landing, id),
			mutedStyle.Render("#"+id),
		))
		sections = append(sections, card)
	}

	sections = append(sections, sectionHeadingStyle.Render("Dashboard modules"))
	sections = append(sections, m.renderModuleGrid())

	sections = append(sections,
		sectionHeadingStyle.Render("Growth"),
		"Viral loop: "+m.manifest.Growth.ViralLoop,
		"Onboarding: "+m.manifest.Growth.Onboarding,
	)

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) renderModuleGrid() string {
	perRow := m.width / 22
	if perRow < 1 {
		perRow = 1
	}

	var rows []string
	var row []string
	for _, module := range m.manifest.App.Dashboard.Modules {
		card := moduleCardStyle.Render(lipgloss.JoinVertical(
			lipgloss.Left,
			lipgloss.NewStyle().Bold(true).Render(module.Label),
			mutedStyle.Render(module.ID+" · "+module.Type),
		))
		row = append(row, card)
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

// renderTechTab shows the stack, quality flags, auth providers and SEO state.
func (m Model) renderTechTab() string {
	tech := m.manifest.Tech

	lines := []string{
		sectionHeadingStyle.Render("Stack"),
		"Preset: " + tech.StackPreset,
		"Persistence: " + tech.Persistence.Mode,
		sectionHeadingStyle.Render("Quality"),
	}

	flags := make([]string, 0, len(tech.Quality))
	for flag := range tech.Quality {
		flags = append(flags, flag)
	}
	sort.Strings(flags)
	var badges []string
	for _, flag := range flags {
		style := qualityOffStyle
		if tech.Quality[flag] {
			style = qualityOnStyle
		}
		badges = append(badges, style.Render(fmt.Sprintf("[%s: %s]", flag, boolBadge(tech.Quality[flag]))))
	}
	if len(badges) > 0 {
		lines = append(lines, strings.Join(badges, " "))
	}

	lines = append(lines, sectionHeadingStyle.Render("Auth providers"))
	for _, provider := range m.manifest.Auth.Providers {
		lines = append(lines, checkItem(provider))
	}

	indexing := m.manifest.SEO.Indexing
	lines = append(lines,
		sectionHeadingStyle.Render("SEO"),
		"Indexing: "+boolBadge(indexing.Enabled),
		"Sitemap: "+boolBadge(indexing.Sitemap),
	)
	if len(indexing.Keywords) > 0 {
		lines = append(lines, "Keywords: "+strings.Join(indexing.Keywords, ", "))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func (m Model) renderJSONTab() string {
	indicator := mutedStyle.Render("c: copy manifest")
	if m.copied {
		indicator = copiedStyle.Render("✓ copied to clipboard")
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		indicator,
		jsonBlockStyle.Render(m.jsonPreview()),
	)
}

// jsonPreview truncates the pretty JSON to the visible height; the full
// document is what copy and save operate on.
func (m Model) jsonPreview() string {
	pretty := manifest.PrettyJSON(m.manifest)
	lines := strings.Split(pretty, "\n")

	visible := m.height - 10
	if visible < 5 {
		visible = 5
	}
	if len(lines) > visible {
		lines = append(lines[:visible], mutedStyle.Render(fmt.Sprintf("… %d more lines", len(lines)-visible)))
	}
	return strings.Join(lines, "\n")
}

func (m Model) renderFooter() string {
	help := "tab/1-4: switch • c: copy • s: save"
	if m.tab == TabDesign {
		help += " • m: mode • ←/→: highlight"
	}

	status := m.statusMsg
	if m.copied {
		status = copiedStyle.Render("copied!")
	}
	if status != "" {
		return footerStyle.Render(help + "   " + status)
	}
	return footerStyle.Render(help)
}
