package physics

import (
	"fmt"
	"iter"
	"log/slog"
	"math"
	"math/rand/v2"
	"time"

	"github.com/google/uuid"

	"github.com/TFMV/forcegraph/graph"
	"github.com/TFMV/forcegraph/models"
)

// Layout3D is the adjacency-law force layout: an inverse-square repulsion
// between every vertex pair plus a Hookean spring on each edge. It suits
// small dense graphs where the graph-distance law's distance matrix buys
// nothing.
//
// Like Layout2D it owns graph and particle state exclusively and is
// single-goroutine only. Its pointer protocol is drag-only; topology is
// mutated through AddVertexAt and the graph store before construction.
type Layout3D struct {
	cfg Config
	id  uuid.UUID
	log *slog.Logger

	graph     *graph.Store
	particles []Particle3
	colors    []models.Color
	sizes     []float64

	dragged int // -1 when idle
	paused  bool
}

// NewLayout3D builds an engine around g with particles placed at random
// unit directions scaled by cbrt(vertexCount)*InitSpacing.
func NewLayout3D(g *graph.Store, cfg Config) *Layout3D {
	l := &Layout3D{
		cfg:     cfg,
		id:      uuid.New(),
		log:     slog.Default(),
		graph:   g,
		dragged: -1,
	}
	radius := math.Cbrt(float64(g.VertexCount())) * cfg.InitSpacing
	for i := 0; i < g.VertexCount(); i++ {
		dir := models.Vec3{X: rand.NormFloat64(), Y: rand.NormFloat64(), Z: rand.NormFloat64()}.Normalize()
		if dir.Len() == 0 {
			dir = models.Vec3{X: 1}
		}
		l.particles = append(l.particles, NewParticle3(dir.Scale(radius), cfg.Mass))
		l.colors = append(l.colors, cfg.VertexColor)
		l.sizes = append(l.sizes, cfg.VertexSize)
	}
	return l
}

// SetLogger replaces the engine's logger. A nil logger restores the default.
func (l *Layout3D) SetLogger(logger *slog.Logger) {
	if logger == nil {
		logger = slog.Default()
	}
	l.log = logger
}

// ID returns the engine instance identifier used in log attributes.
func (l *Layout3D) ID() uuid.UUID {
	return l.id
}

// VertexCount returns the number of simulated vertices.
func (l *Layout3D) VertexCount() int {
	return l.graph.VertexCount()
}

// Graph exposes the underlying store for read-only queries.
func (l *Layout3D) Graph() *graph.Store {
	return l.graph
}

// Paused reports whether ticks are currently short-circuited.
func (l *Layout3D) Paused() bool {
	return l.paused
}

// TogglePause flips the pause flag.
func (l *Layout3D) TogglePause() {
	l.paused = !l.paused
}

// Interacting reports whether a drag is in progress.
func (l *Layout3D) Interacting() bool {
	return l.dragged >= 0
}

// AddVertexAt appends a vertex at the given position, optionally connected
// to anchor (anchor < 0 creates an isolated vertex).
func (l *Layout3D) AddVertexAt(pos models.Vec3, anchor int) (int, error) {
	v := l.graph.AddVertex()
	if anchor >= 0 {
		if err := l.graph.AddEdge(anchor, v); err != nil {
			l.graph.Resize(v)
			return 0, err
		}
	}
	l.particles = append(l.particles, NewParticle3(pos, l.cfg.Mass))
	l.colors = append(l.colors, l.cfg.VertexColor)
	l.sizes = append(l.sizes, l.cfg.VertexSize)
	return v, nil
}

// Tick advances the simulation by the elapsed time.
func (l *Layout3D) Tick(dt time.Duration) {
	if l.paused {
		return
	}
	step := dt.Seconds()
	l.accumulateForces()
	for u := range l.particles {
		if u == l.dragged {
			continue
		}
		l.particles[u].Step(step, l.cfg.SpeedLimit)
	}
}

// accumulateForces applies damping and centering per vertex, inverse-square
// repulsion between every pair, and a Hookean spring on adjacent pairs.
// Pair forces are exact action-reaction pairs, so the law conserves
// momentum before damping and centering.
func (l *Layout3D) accumulateForces() {
	for u := range l.particles {
		p := &l.particles[u]
		p.ClearForce()
		p.AddForce(p.Vel.Scale(-l.cfg.Resistance).Add(p.Pos.Scale(-l.cfg.Centering)))

		for v := 0; v < u; v++ {
			d := l.particles[u].Pos.Sub(l.particles[v].Pos)
			r := d.Len()
			if r == 0 {
				continue
			}
			dir := d.Scale(1 / r)

			f := dir.Scale(l.cfg.Repulsion / (r * r))
			if l.graph.Adjacent(u, v) {
				f = f.Add(dir.Scale((l.cfg.EqLength - r) * l.cfg.Stiffness))
			}
			l.particles[u].AddForce(f)
			l.particles[v].AddForce(f.Scale(-1))
		}
	}
}

// Position returns the current position of vertex id.
func (l *Layout3D) Position(id int) (models.Vec3, error) {
	if id < 0 || id >= len(l.particles) {
		return models.Vec3{}, fmt.Errorf("%w: position of %d with %d vertices", graph.ErrIndexOutOfRange, id, len(l.particles))
	}
	return l.particles[id].Pos, nil
}

// SetPosition places vertex id directly, clearing its velocity.
func (l *Layout3D) SetPosition(id int, pos models.Vec3) error {
	if id < 0 || id >= len(l.particles) {
		return fmt.Errorf("%w: place %d with %d vertices", graph.ErrIndexOutOfRange, id, len(l.particles))
	}
	l.particles[id].Pos = pos
	l.particles[id].ClearVelocity()
	return nil
}

// ProjectFunc maps a world position to a camera-space point and its depth.
// Supplied by the camera collaborator; smaller depth is closer to the
// viewer.
type ProjectFunc func(models.Vec3) (models.Vec2, float64)

// PickParticle hit-tests the cursor against every vertex projected through
// project and returns the one closest to the viewer among those within
// PickRadius of the cursor in camera space.
func (l *Layout3D) PickParticle(cursor models.Vec2, project ProjectFunc) (int, bool) {
	minDepth := math.Inf(1)
	index, found := 0, false
	for i := range l.particles {
		if i == l.dragged {
			continue
		}
		p, depth := project(l.particles[i].Pos)
		if p.Sub(cursor).Len() < l.cfg.PickRadius && depth < minDepth {
			minDepth = depth
			index, found = i, true
		}
	}
	return index, found
}

// BeginDrag pins vertex id to the pointer until EndDrag.
func (l *Layout3D) BeginDrag(id int) error {
	if l.dragged >= 0 {
		return ErrInteractionInProgress
	}
	if id < 0 || id >= len(l.particles) {
		return fmt.Errorf("%w: drag %d with %d vertices", graph.ErrIndexOutOfRange, id, len(l.particles))
	}
	l.dragged = id
	return nil
}

// DragTo moves the dragged vertex. No-op when no drag is active.
func (l *Layout3D) DragTo(pos models.Vec3) {
	if l.dragged < 0 {
		return
	}
	l.particles[l.dragged].Pos = pos
}

// DraggedPosition returns the current position of the dragged vertex.
func (l *Layout3D) DraggedPosition() (models.Vec3, bool) {
	if l.dragged < 0 {
		return models.Vec3{}, false
	}
	return l.particles[l.dragged].Pos, true
}

// EndDrag releases the dragged vertex; it resumes integration next tick.
func (l *Layout3D) EndDrag() {
	l.dragged = -1
}

// Points3 yields the current (position, color, size) of every vertex.
func (l *Layout3D) Points3() iter.Seq[models.Point3] {
	return func(yield func(models.Point3) bool) {
		for i := range l.particles {
			p := models.Point3{Pos: l.particles[i].Pos, Color: l.colors[i], Size: l.sizes[i]}
			if !yield(p) {
				return
			}
		}
	}
}

// Lines3 yields one segment per edge, inset by the endpoint sizes.
func (l *Layout3D) Lines3() iter.Seq[models.Line3] {
	return func(yield func(models.Line3) bool) {
		for u, v := range l.graph.Edges() {
			dir := l.particles[v].Pos.Sub(l.particles[u].Pos).Normalize()
			line := models.Line3{
				From:  l.particles[u].Pos.Add(dir.Scale(l.sizes[u])),
				To:    l.particles[v].Pos.Sub(dir.Scale(l.sizes[v])),
				Color: l.cfg.EdgeColor,
			}
			if !yield(line) {
				return
			}
		}
	}
}
