package models

import (
	"fmt"
	"strings"
	"time"
)

// Interval is one uninterrupted span during which a single behavior was active.
// Offsets are measured from session start on the pause-compensated clock.
type Interval struct {
	Start time.Duration
	End   time.Duration
}

// Length returns End - Start
func (i Interval) Length() time.Duration {
	return i.End - i.Start
}

// String formats the interval as "(start, end)" in seconds
func (i Interval) String() string {
	return fmt.Sprintf("(%f, %f)", i.Start.Seconds(), i.End.Seconds())
}

// FormatIntervals renders a list of intervals as "[(s, e), (s, e)]"
func FormatIntervals(intervals []Interval) string {
	parts := make([]string, len(intervals))
	for i, iv := range intervals {
		parts[i] = iv.String()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// Log maps each behavior to its closed intervals, ordered by start
type Log map[BehaviorCode][]Interval

// Append closes an interval into the log for code.
// Intervals with End before Start are rejected.
func (l Log) Append(code BehaviorCode, iv Interval) error {
	if iv.End < iv.Start {
		return fmt.Errorf("interval for %q ends before it starts: %s", code, iv)
	}
	l[code] = append(l[code], iv)
	return nil
}

// Total sums the interval lengths recorded for code
func (l Log) Total(code BehaviorCode) time.Duration {
	var total time.Duration
	for _, iv := range l[code] {
		total += iv.Length()
	}
	return total
}

// Duration sums the interval lengths across all behaviors
func (l Log) Duration() time.Duration {
	var total time.Duration
	for code := range l {
		total += l.Total(code)
	}
	return total
}
