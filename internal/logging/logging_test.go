package logging

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rpggio/polyglot/internal/config"
)

func TestParseLevel(t *testing.T) {
	require.Equal(t, slog.LevelDebug, ParseLevel("debug"))
	require.Equal(t, slog.LevelWarn, ParseLevel(" WARN "))
	require.Equal(t, slog.LevelError, ParseLevel("error"))
	require.Equal(t, slog.LevelInfo, ParseLevel("info"))
	require.Equal(t, slog.LevelInfo, ParseLevel("verbose"))
}

func TestNew_JSON(t *testing.T) {
	var buf bytes.Buffer
	logger := New(config.LogConfig{Level: "info", Format: config.FormatJSON}, &buf)

	logger.Debug("hidden")
	logger.Info("message submitted", "message_id", 1)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1)
	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	require.Equal(t, "message submitted", entry["msg"])
	require.Equal(t, float64(1), entry["message_id"])
}

func TestNew_Text(t *testing.T) {
	var buf bytes.Buffer
	logger := New(config.LogConfig{Level: "debug", Format: config.FormatText}, &buf)

	logger.Debug("upstream call", "path", "/translate")
	require.Contains(t, buf.String(), "level=DEBUG")
	require.Contains(t, buf.String(), "path=/translate")
}

func TestNew_TintWithoutTerminal(t *testing.T) {
	var buf bytes.Buffer
	logger := New(config.LogConfig{Level: "info", Format: config.FormatTint}, &buf)

	logger.Warn("detection failed", "error", errors.New("timeout"))
	out := buf.String()
	require.Contains(t, out, "detection failed")
	require.Contains(t, out, "timeout")
	require.NotContains(t, out, "\x1b[", "colors must be off for non-terminals")
}

func TestFileWriter_Truncates(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "polyglot.log")
	w, err := openFile(path, 16, 8)
	require.NoError(t, err)
	t.Cleanup(func() { w.Close() })

	_, err = w.Write([]byte("0123456789"))
	require.NoError(t, err)
	_, err = w.Write([]byte("abcdefghij"))
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "cdefghij", string(data))

	_, err = w.Write([]byte("XY"))
	require.NoError(t, err)
	data, err = os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "cdefghijXY", string(data))
}
