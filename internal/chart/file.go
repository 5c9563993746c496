package chart

import (
	"bytes"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	gochart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

const pieSize = 512

// FileRenderer writes a pie chart image to a file.
// The format follows the file extension: .svg or .png.
type FileRenderer struct {
	path     string
	provider gochart.RendererProvider
}

// NewFileRenderer creates a renderer writing to path
func NewFileRenderer(path string) (*FileRenderer, error) {
	if path == "" {
		return nil, fmt.Errorf("file chart renderer requires an output path")
	}

	provider, err := providerFor(path)
	if err != nil {
		return nil, err
	}

	return &FileRenderer{path: path, provider: provider}, nil
}

// Path returns the output file path
func (fr *FileRenderer) Path() string {
	return fr.path
}

// Render draws the pie and writes it atomically under a lock on the output path
func (fr *FileRenderer) Render(slices []Slice) error {
	var buf bytes.Buffer
	if err := renderPie(&buf, fr.provider, slices); err != nil {
		return err
	}

	return writeChart(fr.path, buf.Bytes())
}

func providerFor(path string) (gochart.RendererProvider, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".svg":
		return gochart.SVG, nil
	case ".png":
		return gochart.PNG, nil
	default:
		return nil, fmt.Errorf("unsupported chart format %q, use .svg or .png", filepath.Ext(path))
	}
}

// renderPie draws one slice per behavior with a positive total.
// Labels carry the share annotation, e.g. "Sitting 37.5%".
func renderPie(w io.Writer, provider gochart.RendererProvider, slices []Slice) error {
	kept, total := positive(slices)
	if total == 0 {
		return ErrNothingToPlot
	}

	values := make([]gochart.Value, 0, len(kept))
	for _, s := range kept {
		values = append(values, gochart.Value{
			Value: s.Total.Seconds(),
			Label: fmt.Sprintf("%s %s", s.Label, percent(s.Total, total)),
			Style: gochart.Style{
				FillColor:   drawing.ColorFromHex(strings.TrimPrefix(s.Color, "#")),
				StrokeColor: drawing.ColorWhite,
				StrokeWidth: 4,
			},
		})
	}

	pie := gochart.PieChart{
		Width:  pieSize,
		Height: pieSize,
		Values: values,
	}

	if err := pie.Render(provider, w); err != nil {
		return fmt.Errorf("failed to render pie chart: %w", err)
	}
	return nil
}
