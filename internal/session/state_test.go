package session

import (
	"testing"
	"time"

	"github.com/harrison/micenotes/internal/models"
	"github.com/stretchr/testify/assert"
)

func sec(n float64) time.Duration {
	return time.Duration(n * float64(time.Second))
}

var epoch = time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)

func TestNewStateStartsInOther(t *testing.T) {
	st := newState(epoch, PauseSpan)

	assert.Equal(t, models.Other, st.current)
	assert.Equal(t, time.Duration(0), st.start)
	assert.False(t, st.paused)
	assert.Empty(t, st.log)
	assert.Equal(t, sec(3), st.elapsed(epoch.Add(sec(3))))
}

func TestSwitchTo(t *testing.T) {
	st := newState(epoch, PauseSpan)

	assert.True(t, st.switchTo(models.Sitting, sec(2)))
	assert.False(t, st.switchTo(models.Sitting, sec(4)), "same behavior keeps the open interval")
	assert.True(t, st.switchTo(models.Rearing, sec(5)))

	assert.Equal(t, models.Log{
		models.Other:   {{Start: 0, End: sec(2)}},
		models.Sitting: {{Start: sec(2), End: sec(5)}},
	}, st.log)
	assert.Equal(t, models.Rearing, st.current)
	assert.Equal(t, sec(5), st.start)
}

func TestCloseCurrentDropsEmptyInterval(t *testing.T) {
	st := newState(epoch, PauseSpan)

	st.switchTo(models.Grooming, 0)
	assert.Empty(t, st.log, "Other was never active for a measurable time")

	log := st.finish(sec(1))
	assert.Equal(t, models.Log{models.Grooming: {{Start: 0, End: sec(1)}}}, log)
}

func TestPauseSpan(t *testing.T) {
	st := newState(epoch, PauseSpan)

	st.pause(st.elapsed(epoch.Add(sec(2))))
	assert.True(t, st.paused)
	assert.Empty(t, st.log, "span mode leaves the interval open")

	d := st.resume(st.elapsed(epoch.Add(sec(6))))
	assert.Equal(t, sec(4), d)
	assert.False(t, st.paused)
	assert.Equal(t, sec(7), st.elapsed(epoch.Add(sec(11))), "clock excludes the pause")

	log := st.finish(st.elapsed(epoch.Add(sec(11))))
	assert.Equal(t, models.Log{models.Other: {{Start: 0, End: sec(7)}}}, log)
}

func TestPauseSplit(t *testing.T) {
	st := newState(epoch, PauseSplit)

	st.pause(st.elapsed(epoch.Add(sec(2))))
	assert.Equal(t, models.Log{models.Other: {{Start: 0, End: sec(2)}}}, st.log)

	st.resume(st.elapsed(epoch.Add(sec(6))))
	assert.Equal(t, sec(2), st.start)

	log := st.finish(st.elapsed(epoch.Add(sec(11))))
	assert.Equal(t, models.Log{models.Other: {
		{Start: 0, End: sec(2)},
		{Start: sec(2), End: sec(7)},
	}}, log)
}

func TestPauseModeString(t *testing.T) {
	assert.Equal(t, "span", PauseSpan.String())
	assert.Equal(t, "split", PauseSplit.String())
}
