package infrastructure

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"weatherclient.app/internal/ports"
	"weatherclient.app/pkg/errors"
)

func readEntries(t *testing.T, path string) []map[string]interface{} {
	t.Helper()
	content, err := os.ReadFile(path)
	require.NoError(t, err)

	var entries []map[string]interface{}
	for _, line := range strings.Split(strings.TrimSpace(string(content)), "\n") {
		var entry map[string]interface{}
		require.NoError(t, json.Unmarshal([]byte(line), &entry), "line should be valid JSON: %s", line)
		entries = append(entries, entry)
	}
	return entries
}

func TestNewFileLogger(t *testing.T) {
	t.Run("EmptyPath", func(t *testing.T) {
		logger, err := NewFileLogger("")
		assert.Nil(t, logger)
		assert.True(t, errors.IsConfigurationError(err))
	})

	t.Run("CreatesNestedDirectories", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "deep", "nested", "requests.log")

		logger, err := NewFileLogger(path)
		require.NoError(t, err)
		defer logger.Close()

		assert.DirExists(t, filepath.Dir(path))
		info, err := os.Stat(path)
		require.NoError(t, err)
		assert.Equal(t, os.FileMode(0o644), info.Mode().Perm())
	})
}

func TestFileLogger_LogLevels(t *testing.T) {
	path := filepath.Join(t.TempDir(), "requests.log")
	logger, err := NewFileLogger(path)
	require.NoError(t, err)
	logger.now = func() time.Time { return time.Date(2024, 1, 10, 10, 0, 0, 0, time.UTC) }

	logger.Debug("debug entry", ports.F("call_id", "a"))
	logger.Info("Weather API request started", ports.F("operation", ports.OperationGetWeather), ports.F("lat", 51.5))
	logger.Warn("warn entry")
	logger.Error("Weather API request failed", ports.F("status", 500))
	require.NoError(t, logger.Close())

	entries := readEntries(t, path)
	require.Len(t, entries, 4)

	levels := []string{"DEBUG", "INFO", "WARN", "ERROR"}
	for i, entry := range entries {
		assert.Equal(t, levels[i], entry["level"])
		assert.Equal(t, "2024-01-10T10:00:00Z", entry["time"])
	}
	assert.Equal(t, "get_weather", entries[1]["operation"])
	assert.Equal(t, 51.5, entries[1]["lat"])
	assert.Equal(t, 500.0, entries[3]["status"])
}

func TestFileLogger_ReservedKeysWin(t *testing.T) {
	path := filepath.Join(t.TempDir(), "requests.log")
	logger, err := NewFileLogger(path)
	require.NoError(t, err)

	logger.Info("real message", ports.F("msg", "shadow"), ports.F("level", "shadow"))
	require.NoError(t, logger.Close())

	entries := readEntries(t, path)
	assert.Equal(t, "real message", entries[0]["msg"])
	assert.Equal(t, "INFO", entries[0]["level"])
}

func TestFileLogger_Appends(t *testing.T) {
	path := filepath.Join(t.TempDir(), "requests.log")

	for _, msg := range []string{"first", "second"} {
		logger, err := NewFileLogger(path)
		require.NoError(t, err)
		logger.Info(msg)
		require.NoError(t, logger.Close())
	}

	entries := readEntries(t, path)
	require.Len(t, entries, 2)
	assert.Equal(t, "first", entries[0]["msg"])
	assert.Equal(t, "second", entries[1]["msg"])
}

func TestFileLogger_UnmarshalableField(t *testing.T) {
	path := filepath.Join(t.TempDir(), "requests.log")
	logger, err := NewFileLogger(path)
	require.NoError(t, err)

	logger.Info("Test message", ports.F("channel", make(chan int)))
	require.NoError(t, logger.Close())

	entries := readEntries(t, path)
	assert.Equal(t, "ERROR", entries[0]["level"])
	assert.Contains(t, entries[0]["msg"], "failed to marshal log entry")
}

func TestFileLogger_ConcurrentWrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "requests.log")
	logger, err := NewFileLogger(path)
	require.NoError(t, err)

	const goroutines, perGoroutine = 10, 5
	var wg sync.WaitGroup
	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			for j := 0; j < perGoroutine; j++ {
				logger.Info(fmt.Sprintf("Message from goroutine %d", id), ports.F("message_id", j))
			}
		}(i)
	}
	wg.Wait()
	require.NoError(t, logger.Close())

	assert.Len(t, readEntries(t, path), goroutines*perGoroutine)
}

func TestFanoutLogger(t *testing.T) {
	var buf bytes.Buffer
	slogger := NewSlogLoggerAdapter(slog.New(slog.NewJSONHandler(&buf, nil)))

	path := filepath.Join(t.TempDir(), "requests.log")
	fileLogger, err := NewFileLogger(path)
	require.NoError(t, err)

	var logger ports.Logger = FanoutLogger{slogger, fileLogger}
	logger.Info("Weather API request completed", ports.F("duration_ms", 12))
	logger.Warn("slow")
	require.NoError(t, fileLogger.Close())

	assert.Equal(t, 2, bytes.Count(buf.Bytes(), []byte("\n")))
	assert.Len(t, readEntries(t, path), 2)
}
