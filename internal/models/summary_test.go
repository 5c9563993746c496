package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sec(n float64) time.Duration {
	return time.Duration(n * float64(time.Second))
}

func TestIntervalString(t *testing.T) {
	iv := Interval{Start: 0, End: sec(5)}
	assert.Equal(t, "(0.000000, 5.000000)", iv.String())
	assert.Equal(t, sec(5), iv.Length())
}

func TestFormatIntervals(t *testing.T) {
	assert.Equal(t, "[]", FormatIntervals(nil))
	assert.Equal(t,
		"[(0.000000, 1.500000), (3.000000, 4.000000)]",
		FormatIntervals([]Interval{{0, sec(1.5)}, {sec(3), sec(4)}}),
	)
}

func TestLogAppend(t *testing.T) {
	log := Log{}

	require.NoError(t, log.Append(Sitting, Interval{Start: sec(1), End: sec(3)}))
	require.NoError(t, log.Append(Sitting, Interval{Start: sec(5), End: sec(6)}))
	assert.Equal(t, sec(3), log.Total(Sitting))
	assert.Equal(t, time.Duration(0), log.Total(Rearing))

	err := log.Append(Rearing, Interval{Start: sec(4), End: sec(2)})
	assert.Error(t, err)
	_, present := log[Rearing]
	assert.False(t, present, "rejected interval must not create an entry")
}

func TestLogDuration(t *testing.T) {
	log := Log{
		Allogrooming: {{0, sec(5)}},
		Sitting:      {{sec(5), sec(8)}},
	}
	assert.Equal(t, sec(8), log.Duration())
}

func TestBuildSummary(t *testing.T) {
	log := Log{
		Nesting:      {{sec(8), sec(10)}},
		Allogrooming: {{0, sec(2)}, {sec(4), sec(7)}},
		Sitting:      {{sec(2), sec(4)}},
		Other:        {{sec(7), sec(8)}},
	}

	summary := BuildSummary(log)
	require.Len(t, summary.Entries, 4)

	// Display order: Allogrooming, ..., Other, Sitting, Nesting
	codes := make([]BehaviorCode, len(summary.Entries))
	for i, e := range summary.Entries {
		codes[i] = e.Code
	}
	assert.Equal(t, []BehaviorCode{Allogrooming, Other, Sitting, Nesting}, codes)

	first := summary.Entries[0]
	assert.Equal(t, "Allogrooming", first.Label)
	assert.Equal(t, "#0000CC", first.Color)
	assert.Equal(t, sec(5), first.Total)
	assert.Len(t, first.Intervals, 2)

	assert.Equal(t, sec(10), summary.Total())
	assert.InDelta(t, 0.5, summary.Share(Allogrooming), 1e-9)
	assert.InDelta(t, 0.0, summary.Share(Rearing), 1e-9)
}

func TestBuildSummaryCopiesIntervals(t *testing.T) {
	log := Log{Other: {{0, sec(1)}}}
	summary := BuildSummary(log)

	log[Other][0].End = sec(9)
	assert.Equal(t, sec(1), summary.Entries[0].Intervals[0].End)
}

func TestSummaryNonZero(t *testing.T) {
	summary := Summary{Entries: []SummaryEntry{
		{Code: Allogrooming, Total: sec(2)},
		{Code: Burrowing, Total: 0},
		{Code: Sitting, Total: sec(1)},
	}}

	nonZero := summary.NonZero()
	require.Len(t, nonZero, 2)
	assert.Equal(t, Allogrooming, nonZero[0].Code)
	assert.Equal(t, Sitting, nonZero[1].Code)
}

func TestEmptySummary(t *testing.T) {
	summary := BuildSummary(Log{})
	assert.Empty(t, summary.Entries)
	assert.Equal(t, time.Duration(0), summary.Total())
	assert.Equal(t, 0.0, summary.Share(Other))
}
