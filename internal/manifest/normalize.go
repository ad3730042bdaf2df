package manifest

import (
	"encoding/json"

	"github.com/Creativityliberty/stylepropre/internal/theme"
)

// Normalize turns a possibly-partial document into a Manifest whose every
// top-level section is present, so presenters can dereference without guards.
// Each section is whole-object substituted: present sections pass through
// untouched (the design system's internal defaulting is deferred to
// theme.Resolve at render time), absent ones get the named literal default.
// Total: nil input yields the all-defaults manifest.
func Normalize(raw *RawManifest) Manifest {
	if raw == nil {
		raw = &RawManifest{}
	}

	m := Manifest{
		Project:      defaultProject(),
		Tech:         defaultTech(),
		SEO:          defaultSEO(),
		Growth:       defaultGrowth(),
		DesignSystem: &theme.RawDesignSystem{},
		Landing:      defaultLanding(),
		Auth:         defaultAuth(),
		App:          defaultApp(),
	}

	if raw.Project != nil {
		m.Project = *raw.Project
	}
	if raw.Tech != nil {
		m.Tech = *raw.Tech
	}
	if raw.SEO != nil {
		m.SEO = *raw.SEO
	}
	if raw.Growth != nil {
		m.Growth = *raw.Growth
	}
	if raw.DesignSystem != nil {
		m.DesignSystem = raw.DesignSystem
	}
	if raw.Landing != nil {
		m.Landing = *raw.Landing
	}
	if raw.Auth != nil {
		m.Auth = *raw.Auth
	}
	if raw.App != nil {
		m.App = *raw.App
	}

	return m
}

// PrettyJSON renders the manifest as indented JSON, the form used by the json
// tab, the clipboard copy and the file export.
func PrettyJSON(m Manifest) string {
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		// Manifest contains only marshalable types; unreachable in practice.
		return "{}"
	}
	return string(data)
}

// ExportFilename is the download name for a manifest export.
func ExportFilename(m Manifest) string {
	id := m.Project.ID
	if id == "" {
		id = "project"
	}
	return id + "-manifest.json"
}
