package chart

import (
	"errors"
	"fmt"
)

// FallbackRenderer tries each renderer in turn and stops at the first that
// succeeds. ErrNothingToPlot ends the attempt immediately, since no other
// renderer can do better with the same slices.
type FallbackRenderer struct {
	renderers []Renderer
}

// NewFallbackRenderer creates a renderer trying renderers in order
func NewFallbackRenderer(renderers ...Renderer) *FallbackRenderer {
	return &FallbackRenderer{renderers: renderers}
}

// Render returns nil once any renderer succeeds, otherwise all failures joined
func (fr *FallbackRenderer) Render(slices []Slice) error {
	if len(fr.renderers) == 0 {
		return fmt.Errorf("no renderers configured: %w", ErrUnavailable)
	}

	var errs []error
	for _, r := range fr.renderers {
		err := r.Render(slices)
		if err == nil {
			return nil
		}
		if errors.Is(err, ErrNothingToPlot) {
			return err
		}
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}
