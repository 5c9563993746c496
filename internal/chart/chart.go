// Package chart renders the proportional breakdown of a finished session.
//
// Rendering is best-effort: a Renderer reports ErrUnavailable when its output
// capability is missing from the environment, or another error when rendering
// itself failed. Callers treat both as warnings.
package chart

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/harrison/micenotes/internal/models"
)

// ErrUnavailable is returned when the renderer's capability is not present
var ErrUnavailable = errors.New("chart rendering unavailable")

// ErrNothingToPlot is returned when no slice has a positive total
var ErrNothingToPlot = errors.New("no recorded time to plot")

// Slice is one labelled, coloured share of the chart
type Slice struct {
	Label string
	Total time.Duration
	Color string // "#RRGGBB"
}

// Renderer draws a proportional chart of slices
type Renderer interface {
	Render(slices []Slice) error
}

// Renderer kinds accepted by New
const (
	KindAuto     = "auto" // Window when available, else terminal
	KindTerminal = "terminal"
	KindFile     = "file"
	KindWindow   = "window"
	KindNone     = "none"
)

// Kinds lists the renderer names accepted by New
func Kinds() []string {
	return []string{KindAuto, KindTerminal, KindFile, KindWindow, KindNone}
}

// Options configures the renderer built by New
type Options struct {
	Out    io.Writer // Terminal output
	Color  bool      // Colour terminal output
	Width  int       // Terminal bar width in cells
	Output string    // Output path for the file renderer (.svg or .png)
}

// New builds a renderer by kind name
func New(kind string, opts Options) (Renderer, error) {
	switch strings.ToLower(strings.TrimSpace(kind)) {
	case KindAuto:
		return NewFallbackRenderer(
			NewWindowRenderer(),
			NewTerminalRenderer(opts.Out, opts.Width, opts.Color),
		), nil
	case KindTerminal:
		return NewTerminalRenderer(opts.Out, opts.Width, opts.Color), nil
	case KindFile:
		return NewFileRenderer(opts.Output)
	case KindWindow:
		return NewWindowRenderer(), nil
	case KindNone, "":
		return NoneRenderer{}, nil
	default:
		return nil, fmt.Errorf("unknown chart renderer %q, must be one of: %s", kind, strings.Join(Kinds(), ", "))
	}
}

// FromSummary converts the non-zero summary entries into slices
func FromSummary(summary models.Summary) []Slice {
	entries := summary.NonZero()
	slices := make([]Slice, 0, len(entries))
	for _, e := range entries {
		slices = append(slices, Slice{Label: e.Label, Total: e.Total, Color: e.Color})
	}
	return slices
}

// NoneRenderer is used when charting is disabled
type NoneRenderer struct{}

// Render always reports ErrUnavailable
func (NoneRenderer) Render([]Slice) error {
	return fmt.Errorf("charting disabled: %w", ErrUnavailable)
}

// positive drops slices without recorded time and returns their sum
func positive(slices []Slice) ([]Slice, time.Duration) {
	var kept []Slice
	var total time.Duration
	for _, s := range slices {
		if s.Total > 0 {
			kept = append(kept, s)
			total += s.Total
		}
	}
	return kept, total
}

// percent formats a share the way pie annotations are printed ("62.5%")
func percent(part, total time.Duration) string {
	if total == 0 {
		return "0.0%"
	}
	return fmt.Sprintf("%1.1f%%", float64(part)*100/float64(total))
}

// ParseHex splits "#RRGGBB" into its components
func ParseHex(hex string) (r, g, b int, err error) {
	h := strings.TrimPrefix(hex, "#")
	if len(h) != 6 {
		return 0, 0, 0, fmt.Errorf("invalid colour %q", hex)
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return 0, 0, 0, fmt.Errorf("invalid colour %q: %w", hex, err)
	}
	return int(v >> 16 & 0xFF), int(v >> 8 & 0xFF), int(v & 0xFF), nil
}
