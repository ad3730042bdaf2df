package config

import (
	"errors"
	"os"
	"path/filepath"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/Creativityliberty/stylepropre/internal/theme"
	apperrors "github.com/Creativityliberty/stylepropre/pkg/errors"
)

// Settings is the application configuration. Everything is optional; missing
// fields resolve through ApplyDefaults so a missing file is not an error.
type Settings struct {
	Model     string `yaml:"model" validate:"omitempty,min=1"`
	APIKeyEnv string `yaml:"api_key_env" validate:"omitempty,min=1"`
	LogLevel  string `yaml:"log_level" validate:"omitempty,oneof=trace debug info warn error"`
	Mode      string `yaml:"mode" validate:"omitempty,oneof=light dark"`
}

const (
	defaultModel     = "gpt-4o-mini"
	defaultAPIKeyEnv = "OPENAI_API_KEY"
	defaultLogLevel  = "warn"
	defaultMode      = "light"
)

var (
	settingsValidatorOnce sync.Once
	settingsValidator     *validator.Validate
)

func validatorInstance() *validator.Validate {
	settingsValidatorOnce.Do(func() {
		settingsValidator = validator.New()
	})
	return settingsValidator
}

// DefaultPath is the settings location used when --config is not given.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "config.yaml"
	}
	return filepath.Join(home, ".config", "stylepropre", "config.yaml")
}

// Load reads settings from path, fills defaults and validates the result.
// A missing file yields pure defaults. A .env file in the working directory is
// loaded first so the API key can live next to the project.
func Load(path string) (*Settings, error) {
	// Best effort; absence of a .env file is the normal case.
	_ = godotenv.Load()

	settings := &Settings{}

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
		// Defaults only.
	case err != nil:
		return nil, apperrors.NewParseError(path, 0, err)
	default:
		if err := yaml.Unmarshal(data, settings); err != nil {
			return nil, apperrors.NewParseError(path, 0, err)
		}
	}

	settings.ApplyDefaults()

	if err := validatorInstance().Struct(settings); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
			first := fieldErrs[0]
			return nil, apperrors.NewValidationError(first.Field(), "invalid value", err)
		}
		return nil, apperrors.NewValidationError("", "invalid settings", err)
	}

	return settings, nil
}

// ApplyDefaults fills every unset field.
func (s *Settings) ApplyDefaults() {
	if s.Model == "" {
		s.Model = defaultModel
	}
	if s.APIKeyEnv == "" {
		s.APIKeyEnv = defaultAPIKeyEnv
	}
	if s.LogLevel == "" {
		s.LogLevel = defaultLogLevel
	}
	if s.Mode == "" {
		s.Mode = defaultMode
	}
}

// APIKey resolves the generation credential from the configured env var.
func (s *Settings) APIKey() string {
	return os.Getenv(s.APIKeyEnv)
}

// ThemeMode converts the configured mode into the styleguide's starting mode.
func (s *Settings) ThemeMode() theme.Mode {
	if s.Mode == "dark" {
		return theme.ModeDark
	}
	return theme.ModeLight
}
