// Package render provides snapshot renderers for 2D layout projections.
// Renderers depend only on the models.Scene2 capability interface, never on
// a concrete layout engine; they stand in for the GPU renderer an embedding
// application would bring.
package render

import (
	"fmt"
	"strings"

	"github.com/TFMV/forcegraph/models"
)

// Options defines rendering configuration options.
type Options struct {
	Width      float64      // output width in pixels
	Height     float64      // output height in pixels
	Scale      float64      // pixels per world unit
	Background models.Color // page background
}

// Renderer turns a point-in-time scene projection into an output document.
type Renderer interface {
	// Render creates a snapshot of the scene using the provided options.
	Render(scene models.Scene2, options *Options) ([]byte, error)

	// Name returns the name of the renderer.
	Name() string

	// Description returns a description of the renderer.
	Description() string
}

// NewDefaultOptions creates a default set of output options.
func NewDefaultOptions() *Options {
	return &Options{
		Width:      800,
		Height:     600,
		Scale:      40,
		Background: models.RGB(0.97, 0.97, 0.97),
	}
}

// GetRenderer returns the appropriate renderer based on format.
func GetRenderer(format string) (Renderer, error) {
	switch strings.ToLower(format) {
	case "svg":
		return &SVGRenderer{}, nil
	case "json":
		return &JSONRenderer{}, nil
	case "dot":
		return &DOTRenderer{}, nil
	default:
		return nil, fmt.Errorf("unsupported output format: %s", format)
	}
}

// project maps a world coordinate to pixel space with the origin at the
// canvas center and y up.
func (o *Options) project(p models.Vec2) (float64, float64) {
	return o.Width/2 + p.X*o.Scale, o.Height/2 - p.Y*o.Scale
}
