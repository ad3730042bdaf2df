package manifest

import (
	"fmt"
	"sort"
	"strings"

	"github.com/Creativityliberty/stylepropre/internal/theme"
)

// Markdown renders the manifest as a shareable document. Pure formatting over
// the normalized manifest; the design-system summary uses resolved values so
// partial documents still produce a complete token table.
func Markdown(m Manifest) string {
	resolved := theme.Resolve(m.DesignSystem, theme.ModeLight)

	var b strings.Builder

	fmt.Fprintf(&b, "# %s\n\n", m.Project.Name)
	if m.Project.Tagline != "" {
		fmt.Fprintf(&b, "> %s\n\n", m.Project.Tagline)
	}
	if m.Project.Description != "" {
		fmt.Fprintf(&b, "%s\n\n", m.Project.Description)
	}

	b.WriteString("## Project\n\n")
	fmt.Fprintf(&b, "- **ID**: %s\n", m.Project.ID)
	fmt.Fprintf(&b, "- **Version**: %s\n", m.Project.Version)
	fmt.Fprintf(&b, "- **Domain**: %s\n", m.Project.Domain)
	fmt.Fprintf(&b, "- **Locale**: %s\n\n", m.Project.Locale)

	b.WriteString("## Tech\n\n")
	fmt.Fprintf(&b, "- **Stack**: %s\n", m.Tech.StackPreset)
	fmt.Fprintf(&b, "- **Persistence**: %s\n", m.Tech.Persistence.Mode)
	for _, flag := range sortedQualityFlags(m.Tech.Quality) {
		state := "off"
		if m.Tech.Quality[flag] {
			state = "on"
		}
		fmt.Fprintf(&b, "- **%s**: %s\n", flag, state)
	}
	b.WriteString("\n")

	b.WriteString("## Design tokens\n\n")
	fmt.Fprintf(&b, "Font: %s\n\n", resolved.Typography.FontFamily)
	b.WriteString("| Token | Value |\n|---|---|\n")
	for _, name := range theme.TokenNames() {
		fmt.Fprintf(&b, "| %s | %s |\n", name, resolved.Colors.Lookup(name))
	}
	b.WriteString("\n")

	b.WriteString("## Landing structure\n\n")
	for i, id := range m.Landing.Structure {
		fmt.Fprintf(&b, "%d. %s — %s\n", i+1, id, m.Landing.Sections[id].Display("Content Block"))
	}
	b.WriteString("\n")

	b.WriteString("## Auth providers\n\n")
	for _, provider := range m.Auth.Providers {
		fmt.Fprintf(&b, "- %s\n", provider)
	}
	b.WriteString("\n")

	b.WriteString("## Dashboard modules\n\n")
	for _, module := range m.App.Dashboard.Modules {
		fmt.Fprintf(&b, "- **%s** (%s): %s\n", module.Label, module.ID, module.Type)
	}

	return b.String()
}

func sortedQualityFlags(quality map[string]bool) []string {
	flags := make([]string, 0, len(quality))
	for flag := range quality {
		flags = append(flags, flag)
	}
	// Deterministic output for a rendered document.
	sort.Strings(flags)
	return flags
}
