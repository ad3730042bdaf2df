package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

type logEntry map[string]any

func TestLoggerInfoWithFields(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := New(Options{Level: "info", HumanReadable: false, Writer: buf})
	require.NoError(t, err)

	log.WithFields(map[string]any{"model": "gpt-4o-mini"}).Info("manifest generated")

	var entry logEntry
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	require.Equal(t, "info", entry["level"])
	require.Equal(t, "manifest generated", entry["message"])
	require.Equal(t, "gpt-4o-mini", entry["model"])
}

func TestLoggerErrorIncludesCause(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := New(Options{Level: "debug", Writer: buf})
	require.NoError(t, err)

	log.Error(errors.New("no choices returned"), "generation failed")

	var entry logEntry
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	require.Equal(t, "error", entry["level"])
	require.Equal(t, "no choices returned", entry["error"])
}

func TestLoggerDefaultLevelSuppressesInfo(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := New(Options{Writer: buf})
	require.NoError(t, err)

	log.Info("should not appear")
	require.Empty(t, strings.TrimSpace(buf.String()))

	log.Warn("should appear")
	require.Contains(t, buf.String(), "should appear")
}

func TestLoggerRejectsUnknownLevel(t *testing.T) {
	t.Parallel()

	_, err := New(Options{Level: "chatty"})
	require.Error(t, err)
}

func TestNilLoggerIsSafe(t *testing.T) {
	t.Parallel()

	var log *Logger
	log.Debug("ignored")
	log.Info("ignored")
	log.Warn("ignored")
	log.Error(errors.New("ignored"), "ignored")
	require.Nil(t, log.WithFields(map[string]any{"k": "v"}))
}
