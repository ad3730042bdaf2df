package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Creativityliberty/stylepropre/internal/theme"
	apperrors "github.com/Creativityliberty/stylepropre/pkg/errors"
)

func TestLoadMissingFileYieldsDefaults(t *testing.T) {
	settings, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)

	assert.Equal(t, defaultModel, settings.Model)
	assert.Equal(t, defaultAPIKeyEnv, settings.APIKeyEnv)
	assert.Equal(t, defaultLogLevel, settings.LogLevel)
	assert.Equal(t, defaultMode, settings.Mode)
}

func TestLoadMergesFileOverDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("model: gpt-4o\nmode: dark\n"), 0o644))

	settings, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "gpt-4o", settings.Model)
	assert.Equal(t, "dark", settings.Mode)
	assert.Equal(t, defaultLogLevel, settings.LogLevel, "unset fields still default")
}

func TestLoadRejectsBadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("model: [unclosed"), 0o644))

	_, err := Load(path)
	require.Error(t, err)

	var parseErr *apperrors.ParseError
	assert.True(t, errors.As(err, &parseErr))
}

func TestLoadRejectsInvalidMode(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("mode: sepia\n"), 0o644))

	_, err := Load(path)
	require.Error(t, err)

	var valErr *apperrors.ValidationError
	assert.True(t, errors.As(err, &valErr))
}

func TestAPIKeyReadsConfiguredEnv(t *testing.T) {
	t.Setenv("STYLEPROPRE_TEST_KEY", "sk-test")

	settings := &Settings{APIKeyEnv: "STYLEPROPRE_TEST_KEY"}
	settings.ApplyDefaults()

	assert.Equal(t, "sk-test", settings.APIKey())
}

func TestThemeModeMapsToStyleguideMode(t *testing.T) {
	dark := &Settings{Mode: "dark"}
	assert.Equal(t, theme.ModeDark, dark.ThemeMode())

	light := &Settings{}
	light.ApplyDefaults()
	assert.Equal(t, theme.ModeLight, light.ThemeMode())
}
