package render

import (
	"bytes"
	"fmt"

	"github.com/TFMV/forcegraph/models"
)

// DOTRenderer writes the scene as a Graphviz document with pinned node
// positions, suitable for neato -n.
type DOTRenderer struct{}

// Name returns the name of the renderer.
func (r *DOTRenderer) Name() string {
	return "DOT Renderer"
}

// Description returns a description of the renderer.
func (r *DOTRenderer) Description() string {
	return "Renders the layout as a Graphviz graph with pinned positions"
}

// Render creates a DOT snapshot of the scene. Line endpoints are matched
// back to vertices by index order, so the node list and edge list come from
// the same projection pass.
func (r *DOTRenderer) Render(scene models.Scene2, options *Options) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString("graph layout {\n")
	buf.WriteString("  node [shape=circle style=filled]\n")

	var positions []models.Vec2
	i := 0
	for point := range scene.Points2() {
		fmt.Fprintf(&buf, "  n%d [pos=\"%.4f,%.4f!\" width=\"%.3f\" fillcolor=\"%s\"]\n",
			i, point.Pos.X, point.Pos.Y, point.Size*2, point.Color.Hex())
		positions = append(positions, point.Pos)
		i++
	}
	for line := range scene.Lines2() {
		u := nearestVertex(positions, line.From)
		v := nearestVertex(positions, line.To)
		fmt.Fprintf(&buf, "  n%d -- n%d\n", u, v)
	}

	buf.WriteString("}\n")
	return buf.Bytes(), nil
}

// nearestVertex resolves an inset line endpoint back to the closest vertex.
func nearestVertex(positions []models.Vec2, p models.Vec2) int {
	best, bestDist := 0, -1.0
	for i, pos := range positions {
		d := pos.Sub(p).Len()
		if bestDist < 0 || d < bestDist {
			best, bestDist = i, d
		}
	}
	return best
}
