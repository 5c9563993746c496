package chart

import (
	"fmt"
	"os"
	"os/exec"
	"runtime"

	gochart "github.com/wcharczuk/go-chart/v2"
)

// WindowRenderer shows the pie chart in the desktop's default image viewer.
// It is unavailable on headless machines or when no opener is installed.
type WindowRenderer struct {
	goos     string
	getenv   func(string) string
	lookPath func(string) (string, error)
	start    func(name string, args ...string) error
	tempDir  string
}

// NewWindowRenderer creates a renderer using the host environment
func NewWindowRenderer() *WindowRenderer {
	return &WindowRenderer{
		goos:     runtime.GOOS,
		getenv:   os.Getenv,
		lookPath: exec.LookPath,
		start: func(name string, args ...string) error {
			return exec.Command(name, args...).Start()
		},
	}
}

// opener returns the viewer command for the platform
func (wr *WindowRenderer) opener() (string, error) {
	var name string
	switch wr.goos {
	case "darwin":
		name = "open"
	default:
		if wr.getenv("DISPLAY") == "" && wr.getenv("WAYLAND_DISPLAY") == "" {
			return "", fmt.Errorf("no graphical display: %w", ErrUnavailable)
		}
		name = "xdg-open"
	}

	path, err := wr.lookPath(name)
	if err != nil {
		return "", fmt.Errorf("%s not found: %w", name, ErrUnavailable)
	}
	return path, nil
}

// Render writes an SVG pie to a temporary file and opens it
func (wr *WindowRenderer) Render(slices []Slice) error {
	viewer, err := wr.opener()
	if err != nil {
		return err
	}

	f, err := os.CreateTemp(wr.tempDir, "micenotes-*.svg")
	if err != nil {
		return fmt.Errorf("failed to create chart file: %w", err)
	}

	renderErr := renderPie(f, gochart.SVG, slices)
	closeErr := f.Close()
	if renderErr != nil {
		os.Remove(f.Name())
		return renderErr
	}
	if closeErr != nil {
		return fmt.Errorf("failed to write chart file: %w", closeErr)
	}

	if err := wr.start(viewer, f.Name()); err != nil {
		return fmt.Errorf("failed to open chart viewer: %w", err)
	}
	return nil
}
