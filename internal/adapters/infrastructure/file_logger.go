package infrastructure

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"weatherclient.app/internal/ports"
	"weatherclient.app/pkg/errors"
)

// FileLogger appends one JSON object per entry to a request journal.
// The file stays open until Close.
type FileLogger struct {
	mu   sync.Mutex
	file *os.File
	now  func() time.Time
}

// NewFileLogger opens path for appending, creating parent directories as needed
func NewFileLogger(path string) (*FileLogger, error) {
	if path == "" {
		return nil, errors.NewConfigurationError("log file path cannot be empty", nil)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, errors.NewConfigurationError("failed to create log directory", err)
	}

	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, errors.NewConfigurationError("failed to open log file", err)
	}

	return &FileLogger{file: file, now: time.Now}, nil
}

func (f *FileLogger) Debug(msg string, fields ...ports.Field) { f.write("DEBUG", msg, fields) }
func (f *FileLogger) Info(msg string, fields ...ports.Field)  { f.write("INFO", msg, fields) }
func (f *FileLogger) Warn(msg string, fields ...ports.Field)  { f.write("WARN", msg, fields) }
func (f *FileLogger) Error(msg string, fields ...ports.Field) { f.write("ERROR", msg, fields) }

// Close flushes and closes the journal
func (f *FileLogger) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.file.Close()
}

func (f *FileLogger) write(level, msg string, fields []ports.Field) {
	entry := make(map[string]interface{}, len(fields)+3)
	for _, field := range fields {
		entry[field.Key] = field.Value
	}
	entry["time"] = f.now().UTC().Format(time.RFC3339Nano)
	entry["level"] = level
	entry["msg"] = msg

	line, err := json.Marshal(entry)
	if err != nil {
		line, _ = json.Marshal(map[string]string{
			"time":  f.now().UTC().Format(time.RFC3339Nano),
			"level": "ERROR",
			"msg":   fmt.Sprintf("failed to marshal log entry %q: %v", msg, err),
		})
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	if _, err := f.file.Write(append(line, '\n')); err != nil {
		fmt.Fprintf(os.Stderr, "failed to write log entry: %v\n", err)
	}
}

// FanoutLogger forwards every entry to all of its loggers
type FanoutLogger []ports.Logger

func (m FanoutLogger) Debug(msg string, fields ...ports.Field) {
	for _, l := range m {
		l.Debug(msg, fields...)
	}
}

func (m FanoutLogger) Info(msg string, fields ...ports.Field) {
	for _, l := range m {
		l.Info(msg, fields...)
	}
}

func (m FanoutLogger) Warn(msg string, fields ...ports.Field) {
	for _, l := range m {
		l.Warn(msg, fields...)
	}
}

func (m FanoutLogger) Error(msg string, fields ...ports.Field) {
	for _, l := range m {
		l.Error(msg, fields...)
	}
}
