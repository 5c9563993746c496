package logger

import (
	"fmt"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/harrison/micenotes/internal/models"
)

// ConsoleEvents reports session events through a ConsoleLogger.
// The recorder already prints warnings and the summary on stdout, so those
// two only show here at DEBUG level; the default console stays one line per
// warning.
type ConsoleEvents struct {
	cl *ConsoleLogger
}

// NewConsoleEvents creates a session event sink writing through cl.
func NewConsoleEvents(cl *ConsoleLogger) *ConsoleEvents {
	return &ConsoleEvents{cl: cl}
}

// LogSessionStart logs the session id at INFO level.
func (ce *ConsoleEvents) LogSessionStart(id string) {
	ce.cl.LogInfo(fmt.Sprintf("Session %s started", id))
}

// LogTransition logs a behavior change at DEBUG level.
// Format: "[HH:MM:SS] [DEBUG] Other -> Sitting at 5.000s"
func (ce *ConsoleEvents) LogTransition(from, to models.BehaviorCode, at time.Duration) {
	ce.cl.LogDebug(fmt.Sprintf("%s -> %s at %s", from.Label(), to.Label(), seconds(at)))
}

// LogPause logs the start of a pause at DEBUG level.
func (ce *ConsoleEvents) LogPause(at time.Duration) {
	ce.cl.LogDebug(fmt.Sprintf("Paused at %s", seconds(at)))
}

// LogResume logs the end of a pause at DEBUG level.
func (ce *ConsoleEvents) LogResume(at, paused time.Duration) {
	ce.cl.LogDebug(fmt.Sprintf("Resumed at %s after %s pause", seconds(at), seconds(paused)))
}

// LogWarn logs a recorder warning at DEBUG level.
func (ce *ConsoleEvents) LogWarn(message string) {
	ce.cl.LogDebug("warning shown: " + message)
}

// LogSummary logs per-behavior totals at DEBUG level.
// Format: "[HH:MM:SS] === Session Summary ===" followed by one line per behavior.
func (ce *ConsoleEvents) LogSummary(summary models.Summary) {
	cl := ce.cl
	if cl.writer == nil || !allows(cl.logLevel, "DEBUG") {
		return
	}

	cl.mutex.Lock()
	defer cl.mutex.Unlock()

	ts := timestamp()

	header := "=== Session Summary ==="
	if cl.colorOutput {
		header = color.New(color.Bold).Sprint(header)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "[%s] %s\n", ts, header)
	for _, e := range summary.Entries {
		label := e.Label
		if cl.colorOutput {
			label = color.New(color.FgCyan).Sprint(label)
		}
		fmt.Fprintf(&b, "[%s] %s: %s (%d intervals)\n", ts, label, seconds(e.Total), len(e.Intervals))
	}
	fmt.Fprintf(&b, "[%s] Recorded: %s\n", ts, seconds(summary.Total()))

	cl.writer.Write([]byte(b.String()))
}
