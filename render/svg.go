package render

import (
	"bytes"
	"fmt"

	"github.com/TFMV/forcegraph/models"
)

// SVGRenderer writes the scene as a standalone SVG document.
type SVGRenderer struct{}

// Name returns the name of the renderer.
func (r *SVGRenderer) Name() string {
	return "SVG Renderer"
}

// Description returns a description of the renderer.
func (r *SVGRenderer) Description() string {
	return "Renders the layout as a scalable vector graphic"
}

// Render creates an SVG snapshot of the scene.
func (r *SVGRenderer) Render(scene models.Scene2, options *Options) ([]byte, error) {
	if options == nil {
		options = NewDefaultOptions()
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="0 0 %.0f %.0f">`+"\n",
		options.Width, options.Height, options.Width, options.Height)
	fmt.Fprintf(&buf, `  <rect width="100%%" height="100%%" fill="%s"/>`+"\n", options.Background.Hex())

	// edges under vertices
	for line := range scene.Lines2() {
		x1, y1 := options.project(line.From)
		x2, y2 := options.project(line.To)
		fmt.Fprintf(&buf, `  <line x1="%.2f" y1="%.2f" x2="%.2f" y2="%.2f" stroke="%s" stroke-opacity="%.2f"/>`+"\n",
			x1, y1, x2, y2, line.Color.Hex(), line.Color.A)
	}
	for point := range scene.Points2() {
		x, y := options.project(point.Pos)
		fmt.Fprintf(&buf, `  <circle cx="%.2f" cy="%.2f" r="%.2f" fill="%s"/>`+"\n",
			x, y, point.Size*options.Scale, point.Color.Hex())
	}

	buf.WriteString("</svg>\n")
	return buf.Bytes(), nil
}
