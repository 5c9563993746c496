package logger

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/harrison/micenotes/internal/models"
)

// FileLogger writes session events to a per-session run log in logDir.
// Each session gets session-YYYYMMDD-HHMMSS.log and latest.log is a symlink
// to the most recent one.
type FileLogger struct {
	logDir   string
	runLog   *os.File
	runFile  string
	logLevel string
	mu       sync.Mutex
}

// NewFileLogger creates a FileLogger in logDir with the default "info" level.
func NewFileLogger(logDir string) (*FileLogger, error) {
	return NewFileLoggerWithLevel(logDir, "info")
}

// NewFileLoggerWithLevel creates the log directory if needed, opens a
// timestamped run log, and points latest.log at it.
func NewFileLoggerWithLevel(logDir string, logLevel string) (*FileLogger, error) {
	if err := os.MkdirAll(logDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	// Generate timestamped filename: session-YYYYMMDD-HHMMSS.log
	stamp := time.Now().Format("20060102-150405")
	runFile := filepath.Join(logDir, fmt.Sprintf("session-%s.log", stamp))

	file, err := os.OpenFile(runFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to create run log file: %w", err)
	}

	symlinkPath := filepath.Join(logDir, "latest.log")
	if _, err := os.Lstat(symlinkPath); err == nil {
		if err := os.Remove(symlinkPath); err != nil {
			file.Close()
			return nil, fmt.Errorf("failed to remove old symlink: %w", err)
		}
	}
	if err := os.Symlink(filepath.Base(runFile), symlinkPath); err != nil {
		file.Close()
		return nil, fmt.Errorf("failed to create symlink: %w", err)
	}

	fl := &FileLogger{
		logDir:   logDir,
		runLog:   file,
		runFile:  runFile,
		logLevel: normalizeLogLevel(logLevel),
	}

	fl.writeRunLog("=== micenotes session log ===\n")
	fl.writeRunLog(fmt.Sprintf("Started at: %s\n\n", time.Now().Format(time.RFC3339)))

	return fl, nil
}

// Path returns the run log file path
func (fl *FileLogger) Path() string {
	return fl.runFile
}

// LogWarn logs a warning-level message.
func (fl *FileLogger) LogWarn(message string) {
	fl.logWithLevel("WARN", message)
}

// LogSessionStart records the session id at INFO level.
func (fl *FileLogger) LogSessionStart(id string) {
	fl.logWithLevel("INFO", fmt.Sprintf("Session %s started", id))
}

// LogTransition records a behavior change at INFO level.
// Transitions are the primary record of the run log, so they are not debug-only here.
func (fl *FileLogger) LogTransition(from, to models.BehaviorCode, at time.Duration) {
	fl.logWithLevel("INFO", fmt.Sprintf("%s -> %s at %s", from.Label(), to.Label(), seconds(at)))
}

// LogPause records the start of a pause at INFO level.
func (fl *FileLogger) LogPause(at time.Duration) {
	fl.logWithLevel("INFO", fmt.Sprintf("Paused at %s", seconds(at)))
}

// LogResume records the end of a pause at INFO level.
func (fl *FileLogger) LogResume(at, paused time.Duration) {
	fl.logWithLevel("INFO", fmt.Sprintf("Resumed at %s after %s pause", seconds(at), seconds(paused)))
}

// LogSummary writes the per-behavior totals and raw intervals.
func (fl *FileLogger) LogSummary(summary models.Summary) {
	if !allows(fl.logLevel, "info") {
		return
	}

	ts := timestamp()

	var b strings.Builder
	fmt.Fprintf(&b, "\n[%s] === Session Summary ===\n", ts)
	for _, e := range summary.Entries {
		fmt.Fprintf(&b, "[%s] %s: %s\n", ts, e.Label, seconds(e.Total))
		fmt.Fprintf(&b, "[%s]   %s\n", ts, models.FormatIntervals(e.Intervals))
	}
	fmt.Fprintf(&b, "[%s] Recorded: %s\n", ts, seconds(summary.Total()))

	fl.writeRunLog(b.String())
}

// logWithLevel is a helper that logs a message at the specified level if filtering allows it.
func (fl *FileLogger) logWithLevel(level string, message string) {
	if !allows(fl.logLevel, level) {
		return
	}
	fl.writeRunLog(fmt.Sprintf("[%s] [%s] %s\n", timestamp(), level, message))
}

// Close flushes and closes the run log file.
func (fl *FileLogger) Close() error {
	fl.mu.Lock()
	defer fl.mu.Unlock()

	if fl.runLog != nil {
		if err := fl.runLog.Sync(); err != nil {
			return fmt.Errorf("failed to sync run log: %w", err)
		}
		if err := fl.runLog.Close(); err != nil {
			return fmt.Errorf("failed to close run log: %w", err)
		}
		fl.runLog = nil
	}

	return nil
}

// writeRunLog is a thread-safe helper to write to the run log file.
func (fl *FileLogger) writeRunLog(message string) {
	fl.mu.Lock()
	defer fl.mu.Unlock()

	if fl.runLog != nil {
		fl.runLog.WriteString(message)
		// Flush after each write so the log survives a crash mid-session
		fl.runLog.Sync()
	}
}
