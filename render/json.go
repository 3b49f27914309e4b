package render

import (
	"encoding/json"

	"github.com/TFMV/forcegraph/models"
)

// JSONRenderer emits the raw projection as JSON, one entry per point and
// line, in world coordinates.
type JSONRenderer struct{}

type jsonPoint struct {
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	Color string  `json:"color"`
	Size  float64 `json:"size"`
}

type jsonLine struct {
	X1    float64 `json:"x1"`
	Y1    float64 `json:"y1"`
	X2    float64 `json:"x2"`
	Y2    float64 `json:"y2"`
	Color string  `json:"color"`
}

type jsonScene struct {
	Points []jsonPoint `json:"points"`
	Lines  []jsonLine  `json:"lines"`
}

// Name returns the name of the renderer.
func (r *JSONRenderer) Name() string {
	return "JSON Renderer"
}

// Description returns a description of the renderer.
func (r *JSONRenderer) Description() string {
	return "Emits the layout projection as JSON"
}

// Render creates a JSON snapshot of the scene.
func (r *JSONRenderer) Render(scene models.Scene2, options *Options) ([]byte, error) {
	doc := jsonScene{Points: []jsonPoint{}, Lines: []jsonLine{}}
	for point := range scene.Points2() {
		doc.Points = append(doc.Points, jsonPoint{
			X:     point.Pos.X,
			Y:     point.Pos.Y,
			Color: point.Color.Hex(),
			Size:  point.Size,
		})
	}
	for line := range scene.Lines2() {
		doc.Lines = append(doc.Lines, jsonLine{
			X1:    line.From.X,
			Y1:    line.From.Y,
			X2:    line.To.X,
			Y2:    line.To.Y,
			Color: line.Color.Hex(),
		})
	}
	return json.MarshalIndent(doc, "", "  ")
}
