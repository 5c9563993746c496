package chart

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/fatih/color"
)

const defaultBarWidth = 40

// TerminalRenderer draws one proportional bar per slice.
// Format: "<label>  [█████     ] 50.0%"
type TerminalRenderer struct {
	out         io.Writer
	width       int
	enableColor bool
}

// NewTerminalRenderer creates a terminal renderer.
// width below 1 falls back to 40 cells; a nil writer makes the renderer unavailable.
func NewTerminalRenderer(out io.Writer, width int, enableColor bool) *TerminalRenderer {
	if width < 1 {
		width = defaultBarWidth
	}
	return &TerminalRenderer{
		out:         out,
		width:       width,
		enableColor: enableColor,
	}
}

// Render writes the bars to the configured writer
func (tr *TerminalRenderer) Render(slices []Slice) error {
	if tr.out == nil {
		return fmt.Errorf("no terminal output: %w", ErrUnavailable)
	}

	kept, total := positive(slices)
	if total == 0 {
		return ErrNothingToPlot
	}

	labelWidth := 0
	for _, s := range kept {
		if len(s.Label) > labelWidth {
			labelWidth = len(s.Label)
		}
	}

	var b strings.Builder
	b.WriteString("\n")
	for _, s := range kept {
		bar, err := tr.bar(s, total)
		if err != nil {
			return err
		}
		fmt.Fprintf(&b, "%-*s  %s %6s\n", labelWidth, s.Label, bar, percent(s.Total, total))
	}

	_, err := io.WriteString(tr.out, b.String())
	return err
}

// bar builds the "[###   ]" cell run for one slice
func (tr *TerminalRenderer) bar(s Slice, total time.Duration) (string, error) {
	filled := int(int64(s.Total) * int64(tr.width) / int64(total))
	if filled > tr.width {
		filled = tr.width
	}
	if filled < 1 {
		filled = 1 // Keep every recorded behavior visible
	}

	if !tr.enableColor {
		return "[" + strings.Repeat("=", filled) + strings.Repeat(" ", tr.width-filled) + "]", nil
	}

	r, g, bl, err := ParseHex(s.Color)
	if err != nil {
		return "", err
	}
	fill := color.RGB(r, g, bl)
	fill.EnableColor()

	return "[" + fill.Sprint(strings.Repeat("█", filled)) + strings.Repeat(" ", tr.width-filled) + "]", nil
}
