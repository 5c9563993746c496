package chart

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteChart(t *testing.T) {
	path := filepath.Join(t.TempDir(), "charts", "2026", "cage3.svg")

	require.NoError(t, writeChart(path, []byte("<svg/>")))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "<svg/>", string(data))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0644), info.Mode().Perm())

	_, err = os.Stat(path + ".lock")
	assert.NoError(t, err, "sidecar lock file kept next to the chart")
}

func TestWriteChartOverwrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cage3.png")

	require.NoError(t, writeChart(path, []byte("first session")))
	require.NoError(t, writeChart(path, []byte("second")))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "second", string(data))
}

func TestWriteChartNoTempFileLeftBehind(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "cage3.svg")

	require.NoError(t, writeChart(path, []byte("data")))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	for _, e := range entries {
		assert.False(t, strings.HasPrefix(e.Name(), ".cage3.svg-"), "temp file left behind: %s", e.Name())
	}
}

func TestWriteChartUnwritableDirectory(t *testing.T) {
	parent := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(parent, []byte("not a dir"), 0644))

	err := writeChart(filepath.Join(parent, "cage3.svg"), []byte("data"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to create chart directory")
}

func TestWriteChartConcurrent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cage3.svg")

	const writers = 8
	var wg sync.WaitGroup
	errs := make(chan error, writers)

	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			errs <- writeChart(path, []byte(fmt.Sprintf("writer-%d", n)))
		}(i)
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		assert.NoError(t, err)
	}

	// The final content is exactly one writer's payload, never a mix
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Regexp(t, `^writer-[0-7]$`, string(data))
}
