package manifest

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Creativityliberty/stylepropre/internal/theme"
)

func TestNormalizeFillsEverySection(t *testing.T) {
	t.Parallel()

	for name, raw := range map[string]*RawManifest{
		"nil":   nil,
		"empty": {},
	} {
		m := Normalize(raw)

		assert.NotEmpty(t, m.Project.Name, name)
		assert.Equal(t, "New Project", m.Project.Name, name)
		assert.Equal(t, "0.1.0", m.Project.Version, name)
		assert.NotEmpty(t, m.Tech.StackPreset, name)
		assert.NotNil(t, m.Tech.Quality, name)
		assert.True(t, m.SEO.Indexing.Enabled, name)
		assert.NotEmpty(t, m.Growth.ViralLoop, name)
		assert.NotNil(t, m.DesignSystem, name)
		assert.NotEmpty(t, m.Landing.Structure, name)
		assert.NotNil(t, m.Landing.Sections, name)
		assert.NotEmpty(t, m.Auth.Providers, name)
		assert.NotEmpty(t, m.App.Dashboard.Modules, name)
	}
}

func TestNormalizePassesPresentSectionsThrough(t *testing.T) {
	t.Parallel()

	project := Project{ID: "atlas", Name: "Atlas", Version: "2.0.0"}
	landing := Landing{Structure: []string{"hero"}}
	design := &theme.RawDesignSystem{ProjectName: "Atlas"}

	m := Normalize(&RawManifest{
		Project:      &project,
		Landing:      &landing,
		DesignSystem: design,
	})

	// Present sections are untouched, even when internally partial; only the
	// absent ones got defaults.
	assert.Equal(t, project, m.Project)
	assert.Equal(t, landing, m.Landing)
	assert.Same(t, design, m.DesignSystem)
	assert.Equal(t, defaultTech(), m.Tech)
	assert.Equal(t, defaultAuth(), m.Auth)
}

func TestNormalizedManifestRoundTripsAsJSON(t *testing.T) {
	t.Parallel()

	pretty := PrettyJSON(Normalize(nil))

	var decoded map[string]json.RawMessage
	require.NoError(t, json.Unmarshal([]byte(pretty), &decoded))

	for _, section := range []string{"project", "tech", "seo", "growth", "designSystem", "landing", "auth", "app"} {
		raw, ok := decoded[section]
		require.True(t, ok, section)
		assert.NotEqual(t, "null", string(raw), section)
	}
}

func TestExportFilename(t *testing.T) {
	t.Parallel()

	m := Normalize(&RawManifest{Project: &Project{ID: "atlas"}})
	assert.Equal(t, "atlas-manifest.json", ExportFilename(m))

	m = Normalize(&RawManifest{Project: &Project{}})
	assert.Equal(t, "project-manifest.json", ExportFilename(m))
}
