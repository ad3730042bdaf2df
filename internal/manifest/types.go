package manifest

import (
	"github.com/Creativityliberty/stylepropre/internal/theme"
)

// Project identifies the generated project.
type Project struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Tagline     string `json:"tagline"`
	Description string `json:"description"`
	Version     string `json:"version"`
	Domain      string `json:"domain"`
	Locale      string `json:"locale"`
}

// Persistence describes how the generated project stores data.
type Persistence struct {
	Mode string `json:"mode"`
}

// Tech describes the proposed technology choices.
type Tech struct {
	StackPreset string          `json:"stackPreset"`
	Persistence Persistence     `json:"persistence"`
	Quality     map[string]bool `json:"quality"`
}

// Indexing holds the SEO indexing directives.
type Indexing struct {
	Enabled  bool     `json:"enabled"`
	Sitemap  bool     `json:"sitemap"`
	Keywords []string `json:"keywords"`
}

// SEO groups search-related settings.
type SEO struct {
	Indexing Indexing `json:"indexing"`
}

// Growth describes the proposed growth mechanics.
type Growth struct {
	ViralLoop  string `json:"viralLoop"`
	Onboarding string `json:"onboarding"`
}

// Section is one landing-page content block. Only the display fields are
// modeled; anything else the AI emits is ignored on decode.
type Section struct {
	Headline string `json:"headline"`
	Title    string `json:"title"`
}

// Display returns the best available label for the section, or fallback.
func (s Section) Display(fallback string) string {
	if s.Headline != "" {
		return s.Headline
	}
	if s.Title != "" {
		return s.Title
	}
	return fallback
}

// Landing describes the landing page: an ordered structure of section ids and
// a mapping from id to content.
type Landing struct {
	Structure []string           `json:"structure"`
	Sections  map[string]Section `json:"sections"`
}

// Auth lists the enabled authentication providers.
type Auth struct {
	Providers []string `json:"providers"`
}

// DashboardModule is one module card of the app dashboard.
type DashboardModule struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Type  string `json:"type"`
}

// Dashboard holds the ordered dashboard modules.
type Dashboard struct {
	Modules []DashboardModule `json:"modules"`
}

// App describes the application shell behind the landing page.
type App struct {
	Dashboard Dashboard `json:"dashboard"`
}

// RawManifest is the top-level document exactly as the AI produced it. Any
// section may be absent.
type RawManifest struct {
	Project      *Project               `json:"project,omitempty"`
	Tech         *Tech                  `json:"tech,omitempty"`
	SEO          *SEO                   `json:"seo,omitempty"`
	Growth       *Growth                `json:"growth,omitempty"`
	DesignSystem *theme.RawDesignSystem `json:"designSystem,omitempty"`
	Landing      *Landing               `json:"landing,omitempty"`
	Auth         *Auth                  `json:"auth,omitempty"`
	App          *App                   `json:"app,omitempty"`
}

// Manifest is the normalized document: every section present and safe to
// dereference. The design system stays in raw form; its depth is resolved by
// the theme package at render time.
type Manifest struct {
	Project      Project                `json:"project"`
	Tech         Tech                   `json:"tech"`
	SEO          SEO                    `json:"seo"`
	Growth       Growth                 `json:"growth"`
	DesignSystem *theme.RawDesignSystem `json:"designSystem"`
	Landing      Landing                `json:"landing"`
	Auth         Auth                   `json:"auth"`
	App          App                    `json:"app"`
}
