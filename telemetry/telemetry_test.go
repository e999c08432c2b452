package telemetry

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gotest.tools/v3/assert"
	is "gotest.tools/v3/assert/cmp"
)

func TestNewLoggerFiltersLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := newLogger(&buf, slog.LevelWarn)

	logger.Info("hidden")
	logger.Error("ask failed", "kind", "upstream")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	assert.Assert(t, is.Len(lines, 1))

	var entry map[string]any
	assert.NilError(t, json.Unmarshal([]byte(lines[0]), &entry))
	assert.Equal(t, entry["msg"], "ask failed")
	assert.Equal(t, entry["kind"], "upstream")
	assert.Equal(t, entry["level"], "ERROR")
	assert.Equal(t, slog.Default(), logger)
}

func TestInitLoggerWritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "ask.log")

	logger, closer, err := InitLogger(slog.LevelInfo, path)
	assert.NilError(t, err)
	logger.Info("started", "port", 3000)
	assert.NilError(t, closer.Close())

	data, err := os.ReadFile(path)
	assert.NilError(t, err)
	assert.Check(t, is.Contains(string(data), `"msg":"started"`))
}

func TestInitLoggerWithoutFile(t *testing.T) {
	_, closer, err := InitLogger(slog.LevelInfo, "")
	assert.NilError(t, err)
	assert.NilError(t, closer.Close())
}

func TestInitTelemetry(t *testing.T) {
	cleanup, err := InitTelemetry(context.Background(), "")
	assert.NilError(t, err)
	cleanup()

	dir := filepath.Join(t.TempDir(), "telemetry")
	cleanup, err = InitTelemetry(context.Background(), dir)
	assert.NilError(t, err)
	cleanup()

	info, err := os.Stat(dir)
	assert.NilError(t, err)
	assert.Assert(t, info.IsDir())
}
