package models

import "time"

// SummaryEntry is the per-behavior line of a session summary
type SummaryEntry struct {
	Code      BehaviorCode
	Label     string
	Color     string
	Total     time.Duration
	Intervals []Interval
}

// Summary is the read-only view of a finished session, in display order
type Summary struct {
	Entries []SummaryEntry
}

// BuildSummary derives the summary from a closed log.
// Only behaviors present in the log are included.
func BuildSummary(log Log) Summary {
	var summary Summary
	for _, code := range displayOrder {
		intervals, ok := log[code]
		if !ok {
			continue
		}
		copied := make([]Interval, len(intervals))
		copy(copied, intervals)
		summary.Entries = append(summary.Entries, SummaryEntry{
			Code:      code,
			Label:     code.Label(),
			Color:     code.Color(),
			Total:     log.Total(code),
			Intervals: copied,
		})
	}
	return summary
}

// Total returns the recorded duration across all entries
func (s Summary) Total() time.Duration {
	var total time.Duration
	for _, e := range s.Entries {
		total += e.Total
	}
	return total
}

// Share returns the fraction (0-1) of recorded time spent in code
func (s Summary) Share(code BehaviorCode) float64 {
	total := s.Total()
	if total == 0 {
		return 0
	}
	for _, e := range s.Entries {
		if e.Code == code {
			return float64(e.Total) / float64(total)
		}
	}
	return 0
}

// NonZero returns the entries with a positive total, in display order
func (s Summary) NonZero() []SummaryEntry {
	var out []SummaryEntry
	for _, e := range s.Entries {
		if e.Total > 0 {
			out = append(out, e)
		}
	}
	return out
}
