package chart

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"
)

// lockSuffix names the sidecar lock file of a chart path
const lockSuffix = ".lock"

// writeChart replaces path with data, creating parent directories.
// The sidecar lock serialises micenotes processes sharing an output path; the
// temp file and rename keep viewers from ever reading a half-written image.
func writeChart(path string, data []byte) (err error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create chart directory %s: %w", dir, err)
	}

	lock := flock.New(path + lockSuffix)
	if err := lock.Lock(); err != nil {
		return fmt.Errorf("failed to lock %s: %w", path, err)
	}
	defer func() {
		if uerr := lock.Unlock(); uerr != nil && err == nil {
			err = fmt.Errorf("failed to unlock %s: %w", path, uerr)
		}
	}()

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+"-*")
	if err != nil {
		return fmt.Errorf("failed to create temp chart file: %w", err)
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("failed to write chart: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to close chart: %w", err)
	}
	// CreateTemp uses 0600; charts are meant to be shared
	if err := os.Chmod(tmpPath, 0644); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to set chart permissions: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to move chart into place: %w", err)
	}
	return nil
}
