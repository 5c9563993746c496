package session

import (
	"time"

	"github.com/harrison/micenotes/internal/models"
)

// PauseMode decides what a pause does to the open interval
type PauseMode int

const (
	// PauseSpan leaves the open interval running across the pause. Offsets are
	// taken on the pause-compensated clock, so the interval still excludes the
	// paused time.
	PauseSpan PauseMode = iota

	// PauseSplit closes the open interval when the pause starts and opens a
	// new one for the same behavior when it ends.
	PauseSplit
)

// String implements fmt.Stringer
func (m PauseMode) String() string {
	if m == PauseSplit {
		return "split"
	}
	return "span"
}

// state is the recorder's mutable session state.
// Exactly one behavior is current; the log holds only closed intervals.
type state struct {
	current  models.BehaviorCode
	start    time.Duration
	paused   bool
	pausedAt time.Duration
	origin   time.Time // Shifted forward by every completed pause
	mode     PauseMode
	log      models.Log
}

func newState(origin time.Time, mode PauseMode) *state {
	return &state{
		current: models.Other,
		start:   0,
		origin:  origin,
		mode:    mode,
		log:     models.Log{},
	}
}

// elapsed converts a wall-clock reading into a session offset
func (s *state) elapsed(now time.Time) time.Duration {
	return now.Sub(s.origin)
}

// closeCurrent moves the open interval into the log.
// Zero-length intervals are not recorded.
func (s *state) closeCurrent(now time.Duration) {
	if now <= s.start {
		return
	}
	// now > start, so Append cannot reject the interval
	_ = s.log.Append(s.current, models.Interval{Start: s.start, End: now})
}

// switchTo closes the open interval and makes code current.
// Returns false when code is already current.
func (s *state) switchTo(code models.BehaviorCode, now time.Duration) bool {
	if code == s.current {
		return false
	}
	s.closeCurrent(now)
	s.current = code
	s.start = now
	return true
}

// pause records the pause start
func (s *state) pause(now time.Duration) {
	if s.mode == PauseSplit {
		s.closeCurrent(now)
	}
	s.paused = true
	s.pausedAt = now
}

// resume ends the pause and shifts the clock origin by its length so that
// later offsets continue from the pre-pause time. Returns the pause length.
func (s *state) resume(now time.Duration) time.Duration {
	d := now - s.pausedAt
	s.origin = s.origin.Add(d)
	s.paused = false
	if s.mode == PauseSplit {
		s.start = s.pausedAt
	}
	return d
}

// finish closes the final interval
func (s *state) finish(now time.Duration) models.Log {
	s.closeCurrent(now)
	return s.log
}
