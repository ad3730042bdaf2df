package manifest

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLintCleanManifest(t *testing.T) {
	t.Parallel()

	// A defaults-only manifest must not warn about its own defaults: every
	// default landing structure id carries a content block.
	assert.Empty(t, Lint(Normalize(nil)))
}

func TestLintFlagsBadVersionAndID(t *testing.T) {
	t.Parallel()

	m := Normalize(&RawManifest{
		Project: &Project{ID: "Not A Slug", Name: "Atlas", Version: "latest"},
	})

	warnings := Lint(m)
	assert.Contains(t, warnings, `project.version "latest" is not a version number`)
	assert.Contains(t, warnings, `project.id "Not A Slug" is not a usable identifier`)
}

func TestLintFlagsDanglingLandingSections(t *testing.T) {
	t.Parallel()

	m := Normalize(&RawManifest{
		Project: &Project{ID: "atlas", Version: "1.0.0"},
		Landing: &Landing{Structure: []string{"hero", "ghost"}, Sections: map[string]Section{"hero": {}}},
	})

	warnings := Lint(m)
	assert.Contains(t, warnings, `landing section "ghost" has no content block`)
}

func TestLintFlagsDuplicateModules(t *testing.T) {
	t.Parallel()

	m := Normalize(&RawManifest{
		Project: &Project{ID: "atlas", Version: "1.0.0"},
		App: &App{Dashboard: Dashboard{Modules: []DashboardModule{
			{ID: "overview"}, {ID: "overview"},
		}}},
	})

	warnings := Lint(m)
	assert.Contains(t, warnings, `dashboard module id "overview" is duplicated`)
}
