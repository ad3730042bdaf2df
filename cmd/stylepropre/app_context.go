package main

import (
	"fmt"
	"os"

	"golang.org/x/term"

	"github.com/Creativityliberty/stylepropre/internal/config"
	"github.com/Creativityliberty/stylepropre/internal/generator"
	"github.com/Creativityliberty/stylepropre/internal/logger"
)

// appContext bundles everything a command needs: resolved settings, a logger
// at the effective level and a lazily constructed generator.
type appContext struct {
	settings *config.Settings
	log      *logger.Logger
}

func newAppContext(flags *rootFlags) (*appContext, error) {
	path := flags.configPath
	if path == "" {
		path = config.DefaultPath()
	}

	settings, err := config.Load(path)
	if err != nil {
		return nil, fmt.Errorf("load settings: %w", err)
	}

	level := settings.LogLevel
	if flags.verbose {
		level = "debug"
	}

	log, err := logger.New(logger.Options{Level: level, HumanReadable: true})
	if err != nil {
		return nil, fmt.Errorf("create logger: %w", err)
	}

	return &appContext{settings: settings, log: log}, nil
}

func (a *appContext) newGenerator() (generator.Generator, error) {
	key := a.settings.APIKey()
	if key == "" {
		return nil, fmt.Errorf("no API key found; set %s or add it to a .env file", a.settings.APIKeyEnv)
	}
	return generator.NewOpenAIGenerator(key, a.settings.Model, a.log)
}

func requireTTY() error {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return fmt.Errorf("interactive mode requires a terminal; use the generate or export subcommands instead")
	}
	return nil
}
