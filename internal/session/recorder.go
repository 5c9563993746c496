// Package session records one behavioral observation session.
//
// A Recorder reads single keys, keeps exactly one behavior current, and logs
// a closed interval every time the current behavior changes. Quitting prints
// the per-behavior summary and hands it to a chart renderer.
//
// Keys:
//
//	a b c g n r s   select a behavior (see models.Behaviors)
//	other keys      coerced to Other with a warning
//	space           pause / resume
//	q               quit (ignored while paused)
package session

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/harrison/micenotes/internal/chart"
	"github.com/harrison/micenotes/internal/logger"
	"github.com/harrison/micenotes/internal/models"
	"github.com/harrison/micenotes/internal/terminal"
)

// Control keys
const (
	QuitKey  byte = 'q'
	PauseKey byte = ' '
)

// KeySource delivers one key per call
type KeySource interface {
	ReadKey(ctx context.Context) (terminal.Key, error)
}

// Clock supplies wall-clock readings
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// Logger receives session events for the run log
type Logger interface {
	LogSessionStart(id string)
	LogTransition(from, to models.BehaviorCode, at time.Duration)
	LogPause(at time.Duration)
	LogResume(at, paused time.Duration)
	LogWarn(message string)
	LogSummary(summary models.Summary)
}

// Options configures a Recorder. Nil fields get defaults: stdout output, no
// chart, no run log, the system clock and a random session id.
type Options struct {
	Out           io.Writer
	PrintProgress bool
	Color         bool
	PauseMode     PauseMode
	Renderer      chart.Renderer
	Logger        Logger
	Clock         Clock
	SessionID     string
}

// DefaultOptions returns options with progress printing on
func DefaultOptions() Options {
	return Options{
		Out:           os.Stdout,
		PrintProgress: true,
	}
}

// Recorder drives one session from a KeySource
type Recorder struct {
	keys   KeySource
	opts   Options
	warnFn *color.Color
}

// NewRecorder creates a Recorder reading from keys
func NewRecorder(keys KeySource, opts Options) *Recorder {
	if opts.Out == nil {
		opts.Out = os.Stdout
	}
	if opts.Renderer == nil {
		opts.Renderer = chart.NoneRenderer{}
	}
	if opts.Logger == nil {
		opts.Logger = logger.NewNoOpLogger()
	}
	if opts.Clock == nil {
		opts.Clock = systemClock{}
	}
	if opts.SessionID == "" {
		opts.SessionID = uuid.New().String()
	}

	warn := color.New(color.FgYellow)
	if opts.Color {
		warn.EnableColor()
	} else {
		warn.DisableColor()
	}

	return &Recorder{keys: keys, opts: opts, warnFn: warn}
}

// SessionID returns the id reported to the run log
func (r *Recorder) SessionID() string {
	return r.opts.SessionID
}

// Run records until the quit key is read while not paused, then prints the
// summary, attempts the chart, and returns the interval log.
// Chart problems are reported as warnings and never fail the session.
// A read error (including ctx cancellation) ends the session early: the
// intervals recorded so far are returned together with the error.
func (r *Recorder) Run(ctx context.Context) (models.Log, error) {
	st := newState(r.opts.Clock.Now(), r.opts.PauseMode)
	r.opts.Logger.LogSessionStart(r.opts.SessionID)

	for {
		key, err := r.keys.ReadKey(ctx)
		if err != nil {
			return r.abort(st), fmt.Errorf("failed to read key: %w", err)
		}

		now := st.elapsed(r.opts.Clock.Now())
		if r.handle(st, key, now) {
			break
		}
	}

	summary := models.BuildSummary(st.log)
	r.printSummary(summary)
	r.opts.Logger.LogSummary(summary)

	if err := r.opts.Renderer.Render(chart.FromSummary(summary)); err != nil {
		r.warn(fmt.Sprintf("Could not render chart: %v", err))
	}

	return st.log, nil
}

// abort closes the open interval when input ends early and prints the
// summary of what was recorded. No chart is drawn for an aborted session.
func (r *Recorder) abort(st *state) models.Log {
	now := st.elapsed(r.opts.Clock.Now())
	if st.paused {
		now = st.pausedAt
	}
	log := st.finish(now)

	summary := models.BuildSummary(log)
	r.printSummary(summary)
	r.opts.Logger.LogSummary(summary)
	return log
}

// handle applies one key to the state. Returns true on quit.
func (r *Recorder) handle(st *state, key terminal.Key, now time.Duration) bool {
	switch {
	case key.Interrupted:
		if st.paused {
			return false
		}
		r.warn("Interrupted read; defaulting to 'Other'")
		r.selectBehavior(st, models.Other, now)

	case key.Char == QuitKey:
		if st.paused {
			return false
		}
		st.finish(now)
		return true

	case key.Char == PauseKey:
		if st.paused {
			d := st.resume(now)
			fmt.Fprintf(r.opts.Out, "Ended %f second pause\n", d.Seconds())
			r.opts.Logger.LogResume(st.pausedAt, d)
		} else {
			st.pause(now)
			fmt.Fprintln(r.opts.Out, "Pausing")
			r.opts.Logger.LogPause(now)
		}

	default:
		if st.paused {
			return false
		}
		code, ok := models.ParseBehavior(key.Char)
		if !ok {
			r.warn(fmt.Sprintf("Unrecognized key, %q; defaulting to 'Other'", rune(key.Char)))
		}
		r.selectBehavior(st, code, now)
	}

	return false
}

func (r *Recorder) selectBehavior(st *state, code models.BehaviorCode, now time.Duration) {
	if r.opts.PrintProgress {
		fmt.Fprintf(r.opts.Out, "%s at %f seconds\n", code.Label(), now.Seconds())
	}

	from := st.current
	if st.switchTo(code, now) {
		r.opts.Logger.LogTransition(from, code, now)
	}
}

// printSummary writes, per behavior in display order, a blank line, the label
// with its total, and the raw interval list
func (r *Recorder) printSummary(summary models.Summary) {
	for _, e := range summary.Entries {
		fmt.Fprintln(r.opts.Out)
		fmt.Fprintf(r.opts.Out, "%s (%f seconds)\n", e.Label, e.Total.Seconds())
		fmt.Fprintln(r.opts.Out, models.FormatIntervals(e.Intervals))
	}
}

// warn prints one warning line and copies it to the run log
func (r *Recorder) warn(message string) {
	fmt.Fprintln(r.opts.Out, r.warnFn.Sprint("WARNING: "+message))
	r.opts.Logger.LogWarn(message)
}
