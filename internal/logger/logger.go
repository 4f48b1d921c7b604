// Package logger writes navigator diagnostics to a log file using slog.
//
// The TUI owns the terminal, so nothing is ever written to stdout or stderr
// from here once the program is running.
package logger

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
)

// DefaultLogPath is used when Init is never called.
const DefaultLogPath = "/tmp/navigator-debug.log"

var (
	mu       sync.Mutex
	once     sync.Once
	base     *slog.Logger
	levelVar = new(slog.LevelVar)
	logFile  *os.File
	logPath  string
	initDone bool
)

// SetDebug switches between debug and info level.
func SetDebug(enabled bool) {
	if enabled {
		levelVar.Set(slog.LevelDebug)
	} else {
		levelVar.Set(slog.LevelInfo)
	}
}

// Init opens path for appending and routes all logging there.
// Calling Init more than once is a no-op.
func Init(path string) error {
	mu.Lock()
	defer mu.Unlock()

	if initDone {
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create log directory for %s: %w", path, err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("failed to open log file %s: %w", path, err)
	}
	install(f, path)
	base.Info("Logger initialized", "path", path)
	return nil
}

// UseWriter routes logging to w. Intended for tests and for CLI
// subcommands that log to stderr.
func UseWriter(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	closeFile()
	base = slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: levelVar}))
	initDone = true
}

func install(f *os.File, path string) {
	logFile = f
	logPath = path
	base = slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: levelVar}))
	initDone = true
}

func ensureInit() {
	if initDone {
		return
	}
	once.Do(func() {
		f, err := os.OpenFile(DefaultLogPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: failed to open log file %s: %v\n", DefaultLogPath, err)
			return
		}
		install(f, DefaultLogPath)
	})
}

func logf(level slog.Level, format string, args ...any) {
	mu.Lock()
	defer mu.Unlock()

	ensureInit()
	if base == nil || !base.Enabled(context.Background(), level) {
		return
	}
	base.Log(context.Background(), level, fmt.Sprintf(format, args...))
}

// Debug logs a printf-style message at debug level.
func Debug(format string, args ...any) { logf(slog.LevelDebug, format, args...) }

// Info logs a printf-style message at info level.
func Info(format string, args ...any) { logf(slog.LevelInfo, format, args...) }

// Warn logs a printf-style message at warn level.
func Warn(format string, args ...any) { logf(slog.LevelWarn, format, args...) }

// Error logs a printf-style message at error level.
func Error(format string, args ...any) { logf(slog.LevelError, format, args...) }

// WithComponent returns a structured logger tagged with the component name.
//
//	log := logger.WithComponent("ai")
//	log.Warn("request failed", "op", "search", "error", err)
func WithComponent(component string) *slog.Logger {
	mu.Lock()
	defer mu.Unlock()

	ensureInit()
	if base == nil {
		return slog.Default()
	}
	return base.With(slog.String("component", component))
}

// Path returns the active log file path, or "" when logging to a writer.
func Path() string {
	mu.Lock()
	defer mu.Unlock()
	return logPath
}

func closeFile() {
	if logFile != nil {
		logFile.Close()
		logFile = nil
	}
	logPath = ""
}

// Close closes the log file.
func Close() {
	mu.Lock()
	defer mu.Unlock()
	closeFile()
	base = nil
}

// Reset restores the initial state so tests can re-initialize.
func Reset() {
	mu.Lock()
	defer mu.Unlock()
	closeFile()
	base = nil
	initDone = false
	once = sync.Once{}
	levelVar = new(slog.LevelVar)
}

// ClearLogs removes the default log and any log under dataDir.
// It returns how many files were removed.
func ClearLogs(dataDir string) (int, error) {
	candidates := []string{DefaultLogPath}
	if dataDir != "" {
		matches, err := filepath.Glob(filepath.Join(dataDir, "*.log"))
		if err != nil {
			return 0, err
		}
		candidates = append(candidates, matches...)
	}

	count := 0
	for _, p := range candidates {
		if err := os.Remove(p); err == nil {
			count++
		} else if !os.IsNotExist(err) {
			return count, err
		}
	}
	return count, nil
}
