package logger

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aidar/octofit-tracker/internal/config"
)

func TestNew_JSON(t *testing.T) {
	var buf bytes.Buffer
	l := New(config.LogConfig{Level: "info", Format: "json"}, &buf)

	l.Debug("hidden")
	l.Info("leaderboard rebuilt", "entries", 10)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1)

	var record map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &record))
	assert.Equal(t, "leaderboard rebuilt", record["msg"])
	assert.Equal(t, float64(10), record["entries"])
}

func TestNew_TextWithFile(t *testing.T) {
	var buf bytes.Buffer
	path := filepath.Join(t.TempDir(), "octofit.log")

	l := New(config.LogConfig{Level: "debug", Format: "text", File: path, MaxSizeMB: 1}, &buf)
	l.With("component", "seed").Debug("created team", "name", "Team DC")

	assert.Contains(t, buf.String(), "created team")

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var record map[string]any
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(data), &record))
	assert.Equal(t, "seed", record["component"])
	assert.Equal(t, "Team DC", record["name"])
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, ParseLevel("DEBUG"))
	assert.Equal(t, slog.LevelWarn, ParseLevel("warn"))
	assert.Equal(t, slog.LevelError, ParseLevel("error"))
	assert.Equal(t, slog.LevelInfo, ParseLevel("anything"))
}
