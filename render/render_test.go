package render

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TFMV/forcegraph/graph"
	"github.com/TFMV/forcegraph/models"
	"github.com/TFMV/forcegraph/physics"
)

func testScene(t *testing.T) models.Scene2 {
	t.Helper()
	g := graph.New(3)
	require.NoError(t, g.AddEdge(0, 1))
	require.NoError(t, g.AddEdge(1, 2))
	l := physics.NewLayout2D(g, physics.DefaultConfig2D())
	require.NoError(t, l.SetPosition(0, models.Vec2{X: -2}))
	require.NoError(t, l.SetPosition(1, models.Vec2{}))
	require.NoError(t, l.SetPosition(2, models.Vec2{X: 2, Y: 1}))
	return l
}

func TestGetRenderer(t *testing.T) {
	for _, format := range []string{"svg", "json", "dot", "SVG"} {
		r, err := GetRenderer(format)
		require.NoError(t, err, format)
		assert.NotEmpty(t, r.Name())
		assert.NotEmpty(t, r.Description())
	}

	_, err := GetRenderer("webgl")
	assert.Error(t, err)
}

func TestSVGRenderer(t *testing.T) {
	out, err := (&SVGRenderer{}).Render(testScene(t), nil)
	require.NoError(t, err)

	doc := string(out)
	assert.True(t, strings.HasPrefix(doc, "<svg"))
	assert.Equal(t, 3, strings.Count(doc, "<circle"), "one circle per vertex")
	assert.Equal(t, 2, strings.Count(doc, "<line"), "one line per edge")
	assert.Contains(t, doc, "</svg>")
}

func TestJSONRenderer(t *testing.T) {
	out, err := (&JSONRenderer{}).Render(testScene(t), nil)
	require.NoError(t, err)

	var doc struct {
		Points []struct {
			X, Y, Size float64
			Color      string
		}
		Lines []struct {
			X1, Y1, X2, Y2 float64
			Color          string
		}
	}
	require.NoError(t, json.Unmarshal(out, &doc))
	assert.Len(t, doc.Points, 3)
	assert.Len(t, doc.Lines, 2)
	assert.InDelta(t, -2.0, doc.Points[0].X, 1e-9)
}

func TestDOTRenderer(t *testing.T) {
	out, err := (&DOTRenderer{}).Render(testScene(t), nil)
	require.NoError(t, err)

	doc := string(out)
	assert.Contains(t, doc, "graph layout {")
	assert.Contains(t, doc, "n0 -- n1")
	assert.Contains(t, doc, "n1 -- n2")
	assert.Equal(t, 3, strings.Count(doc, "pos="))
}

func TestProjectionIsRestartable(t *testing.T) {
	scene := testScene(t)

	first, err := (&JSONRenderer{}).Render(scene, nil)
	require.NoError(t, err)
	second, err := (&JSONRenderer{}).Render(scene, nil)
	require.NoError(t, err)
	assert.Equal(t, first, second, "re-iterating the projection yields the same snapshot")
}
