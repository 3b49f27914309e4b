package physics

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TFMV/forcegraph/graph"
	"github.com/TFMV/forcegraph/models"
)

// Pair forces must be exact action-reaction pairs: with damping and
// centering off, accumulated forces sum to zero.
func TestAdjacencyLawConservesMomentum(t *testing.T) {
	cfg := DefaultConfig3D()
	cfg.Resistance = 0
	cfg.Centering = 0

	g := graph.New(6)
	require.NoError(t, g.AddEdge(0, 1))
	require.NoError(t, g.AddEdge(1, 2))
	require.NoError(t, g.AddEdge(3, 4))
	l := NewLayout3D(g, cfg)

	l.accumulateForces()

	var total models.Vec3
	for i := range l.particles {
		total = total.Add(l.particles[i].force)
	}
	assert.InDelta(t, 0, total.X, 1e-9)
	assert.InDelta(t, 0, total.Y, 1e-9)
	assert.InDelta(t, 0, total.Z, 1e-9)
}

func TestAdjacencyLawSpringActsOnlyOnEdges(t *testing.T) {
	cfg := DefaultConfig3D()
	cfg.Resistance = 0
	cfg.Centering = 0

	g := graph.New(2)
	require.NoError(t, g.AddEdge(0, 1))
	l := NewLayout3D(g, cfg)
	// stretched well past the rest length: spring dominates repulsion
	require.NoError(t, l.SetPosition(0, models.Vec3{}))
	require.NoError(t, l.SetPosition(1, models.Vec3{X: 10}))

	l.accumulateForces()
	assert.Positive(t, l.particles[0].force.X, "stretched spring pulls 0 toward 1")
	assert.Negative(t, l.particles[1].force.X)

	// without the edge only repulsion remains
	g2 := graph.New(2)
	l2 := NewLayout3D(g2, cfg)
	require.NoError(t, l2.SetPosition(0, models.Vec3{}))
	require.NoError(t, l2.SetPosition(1, models.Vec3{X: 10}))

	l2.accumulateForces()
	assert.Negative(t, l2.particles[0].force.X, "repulsion pushes 0 away from 1")
	assert.Positive(t, l2.particles[1].force.X)
}

func TestLayout3DCoincidentParticlesStayFinite(t *testing.T) {
	g := graph.New(2)
	require.NoError(t, g.AddEdge(0, 1))
	l := NewLayout3D(g, DefaultConfig3D())
	require.NoError(t, l.SetPosition(0, models.Vec3{X: 1}))
	require.NoError(t, l.SetPosition(1, models.Vec3{X: 1}))

	for i := 0; i < 10; i++ {
		l.Tick(16 * time.Millisecond)
	}
	for i := range l.particles {
		assert.False(t, math.IsNaN(l.particles[i].Pos.Len()), "position finite")
	}
}

func TestLayout3DPauseShortCircuits(t *testing.T) {
	g := graph.New(3)
	require.NoError(t, g.AddEdge(0, 1))
	l := NewLayout3D(g, DefaultConfig3D())
	l.TogglePause()

	before := make([]Particle3, len(l.particles))
	copy(before, l.particles)
	l.Tick(16 * time.Millisecond)
	assert.Equal(t, before, l.particles)
}

// orthographic stand-in for the camera: x/y pass through, z is depth
func orthoProject(p models.Vec3) (models.Vec2, float64) {
	return models.Vec2{X: p.X, Y: p.Y}, p.Z
}

func TestPickParticleRanksByDepth(t *testing.T) {
	g := graph.New(3)
	l := NewLayout3D(g, DefaultConfig3D())
	require.NoError(t, l.SetPosition(0, models.Vec3{Z: 5}))
	require.NoError(t, l.SetPosition(1, models.Vec3{Z: 1})) // closest to viewer
	require.NoError(t, l.SetPosition(2, models.Vec3{Z: 3}))

	i, ok := l.PickParticle(models.Vec2{}, orthoProject)
	require.True(t, ok)
	assert.Equal(t, 1, i)

	_, ok = l.PickParticle(models.Vec2{X: 1}, orthoProject)
	assert.False(t, ok, "outside the pick radius")
}

func TestLayout3DDragExemption(t *testing.T) {
	g := graph.New(2)
	require.NoError(t, g.AddEdge(0, 1))
	l := NewLayout3D(g, DefaultConfig3D())
	require.NoError(t, l.SetPosition(0, models.Vec3{X: -3}))
	require.NoError(t, l.SetPosition(1, models.Vec3{X: 3}))

	require.NoError(t, l.BeginDrag(0))
	l.DragTo(models.Vec3{X: -3, Y: 2})
	for i := 0; i < 20; i++ {
		l.Tick(16 * time.Millisecond)
	}

	pos, err := l.Position(0)
	require.NoError(t, err)
	assert.Equal(t, models.Vec3{X: -3, Y: 2}, pos, "dragged vertex does not integrate")

	other, err := l.Position(1)
	require.NoError(t, err)
	assert.NotEqual(t, models.Vec3{X: 3}, other, "free vertex keeps moving")

	l.EndDrag()
	assert.False(t, l.Interacting())
}

func TestAddVertexAt(t *testing.T) {
	g := graph.New(1)
	l := NewLayout3D(g, DefaultConfig3D())

	v, err := l.AddVertexAt(models.Vec3{X: 2}, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, v)
	assert.True(t, l.Graph().Adjacent(0, 1))
	assert.Equal(t, 2, l.VertexCount())

	iso, err := l.AddVertexAt(models.Vec3{Y: 2}, -1)
	require.NoError(t, err)
	assert.Equal(t, 2, iso)
	deg, err := l.Graph().Degree(iso)
	require.NoError(t, err)
	assert.Equal(t, 0, deg)

	_, err = l.AddVertexAt(models.Vec3{}, 99)
	assert.ErrorIs(t, err, graph.ErrIndexOutOfRange)
	assert.Equal(t, 3, l.VertexCount(), "failed attach rolls the vertex back")
}
