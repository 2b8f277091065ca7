package logging

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewJSONUsesGCPKeys(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, "json", "info")

	logger.Warn("unparsable timestamp", "input", "bogus", "error", errors.New("no layout"))

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))

	assert.Equal(t, "WARNING", entry["severity"])
	assert.Equal(t, "unparsable timestamp", entry["message"])
	assert.Contains(t, entry, "timestamp")
	assert.Equal(t, "bogus", entry["input"])
	assert.Equal(t, map[string]any{"message": "no layout"}, entry["error"])
	assert.NotContains(t, entry, "level")
	assert.NotContains(t, entry, "msg")
}

func TestNewRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, "json", "warn")

	logger.Info("dropped")
	assert.Empty(t, buf.String())

	logger.Error("kept")
	assert.Contains(t, buf.String(), `"severity":"ERROR"`)
}

func TestNewText(t *testing.T) {
	var buf bytes.Buffer
	New(&buf, "text", "debug").Debug("hello", "kind", "Pod")

	assert.Contains(t, buf.String(), "level=DEBUG")
	assert.Contains(t, buf.String(), "msg=hello")
	assert.Contains(t, buf.String(), "kind=Pod")
}

func TestParseLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"INFO":    slog.LevelInfo,
		"warn":    slog.LevelWarn,
		"Warning": slog.LevelWarn,
		"error":   slog.LevelError,
		"verbose": slog.LevelInfo,
		"":        slog.LevelInfo,
	}
	for in, want := range tests {
		assert.Equal(t, want, ParseLevel(in), in)
	}
}

func TestSeverity(t *testing.T) {
	assert.Equal(t, "DEBUG", severity(slog.LevelDebug))
	assert.Equal(t, "INFO", severity(slog.LevelInfo))
	assert.Equal(t, "WARNING", severity(slog.LevelWarn))
	assert.Equal(t, "ERROR", severity(slog.LevelError+4))
}
