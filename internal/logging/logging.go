package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/renato0307/trainmerge/internal/paths"
)

// DefaultMaxLogFiles is the default number of log files kept by rotation
const DefaultMaxLogFiles = 1000

const (
	envDebug       = "TRAINMERGE_DEBUG"
	envDebugFile   = "TRAINMERGE_DEBUG_FILE"
	envMaxLogFiles = "TRAINMERGE_MAX_LOG_FILES"

	logFileTimeLayout = "20060102-150405"
)

// Logger is the public logger instance accessible from all packages.
// It discards everything until Initialize enables debug output.
var Logger = discardLogger()

// Options select where debug logs are written
type Options struct {
	Debug    bool
	File     string // Written as is, without rotation
	MaxFiles int
}

// Initialize sets up the logger and returns the path of the log file in use.
// An empty path means logging is disabled. The environment overrides unset options.
func Initialize(opts Options) (string, error) {
	opts = opts.withEnvironment()
	if !opts.Debug && opts.File == "" {
		Logger = discardLogger()
		return "", nil
	}

	logFilePath := opts.File
	if logFilePath == "" {
		logDir := LogDir()
		if err := os.MkdirAll(logDir, 0755); err != nil {
			return "", fmt.Errorf("failed to create log directory: %w", err)
		}
		if opts.MaxFiles > 0 {
			if err := rotateLogs(logDir, opts.MaxFiles); err != nil {
				fmt.Fprintf(os.Stderr, "Warning: log rotation failed: %v\n", err)
			}
		}
		logFilePath = filepath.Join(logDir, newLogFileName(time.Now()))
	} else if err := os.MkdirAll(filepath.Dir(logFilePath), 0755); err != nil {
		return "", fmt.Errorf("failed to create log directory: %w", err)
	}

	logFile, err := os.OpenFile(logFilePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return "", fmt.Errorf("failed to create log file: %w", err)
	}

	Logger = slog.New(slog.NewJSONHandler(logFile, &slog.HandlerOptions{Level: slog.LevelDebug}))
	Logger.Info("Debug logging initialized", "log_file", logFilePath)

	return logFilePath, nil
}

// Propagate exports the options so git editors and hooks started by trainmerge append to the
// same log file
func Propagate(opts Options, logFilePath string) {
	if opts.Debug || opts.File != "" {
		os.Setenv(envDebug, "1")
		if logFilePath != "" {
			os.Setenv(envDebugFile, logFilePath)
		}
	}
	if opts.MaxFiles != DefaultMaxLogFiles {
		os.Setenv(envMaxLogFiles, strconv.Itoa(opts.MaxFiles))
	}
}

// SetExecutionID tags every following record with id, the key merge history records are stored under
func SetExecutionID(id string) {
	Logger = Logger.With("execution_id", id)
}

// LogDir returns $TRAINMERGE_HOME/logs
func LogDir() string {
	return filepath.Join(paths.GetTrainmergeHome(), "logs")
}

func (o Options) withEnvironment() Options {
	if os.Getenv(envDebug) == "1" {
		o.Debug = true
	}
	if file := os.Getenv(envDebugFile); file != "" && o.File == "" {
		o.File = file
	}
	if maxFiles := os.Getenv(envMaxLogFiles); maxFiles != "" && o.MaxFiles == DefaultMaxLogFiles {
		if parsed, err := strconv.Atoi(maxFiles); err == nil {
			o.MaxFiles = parsed
		}
	}
	return o
}

// newLogFileName names files so that lexical order is creation order
func newLogFileName(now time.Time) string {
	return fmt.Sprintf("%s-%s.log", now.UTC().Format(logFileTimeLayout), uuid.New())
}

// rotateLogs removes the oldest log files so that at most maxLogFiles remain after
// the next file is created
func rotateLogs(logDir string, maxLogFiles int) error {
	entries, err := os.ReadDir(logDir)
	if err != nil {
		return fmt.Errorf("failed to read log directory: %w", err)
	}

	var names []string
	for _, entry := range entries {
		if !entry.IsDir() && strings.HasSuffix(entry.Name(), ".log") {
			names = append(names, entry.Name())
		}
	}
	if len(names) < maxLogFiles {
		return nil
	}

	slices.Sort(names)
	for _, name := range names[:len(names)-maxLogFiles+1] {
		if err := os.Remove(filepath.Join(logDir, name)); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: failed to delete old log file %s: %v\n", name, err)
		}
	}
	return nil
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}
