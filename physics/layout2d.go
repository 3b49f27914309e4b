package physics

import (
	"errors"
	"fmt"
	"iter"
	"log/slog"
	"math"
	"math/rand/v2"
	"time"

	"github.com/google/uuid"
	opensimplex "github.com/ojrac/opensimplex-go"

	"github.com/TFMV/forcegraph/graph"
	"github.com/TFMV/forcegraph/models"
)

// Action tags what a pointer gesture is doing to the interacted vertex.
type Action int

const (
	// ActionDrag pins the vertex to the pointer; it keeps receiving pair
	// forces but is not integrated until release.
	ActionDrag Action = iota

	// ActionPendingEdge marks a vertex created by an edge gesture that has
	// not resolved yet. It is exempt from pair forces and integration.
	ActionPendingEdge
)

// interaction is the at-most-one vertex currently engaged by the pointer.
type interaction struct {
	index  int
	action Action
}

var (
	// ErrInteractionInProgress is returned by mutations that require an
	// idle engine while a gesture is active.
	ErrInteractionInProgress = errors.New("physics: interaction already in progress")

	// ErrPendingDegree is returned when the pending vertex of an edge
	// gesture does not have exactly one neighbor at release. The gesture
	// protocol guarantees degree one; a violation is a contract bug, not a
	// state to resolve silently.
	ErrPendingDegree = errors.New("physics: pending vertex must have exactly one neighbor")
)

// Layout2D is the graph-distance force layout. Spring equilibrium lengths
// are derived from the all-pairs shortest-distance matrix, so disconnected
// components settle far apart instead of collapsing.
//
// The engine owns the graph, the distance matrix, and the index-parallel
// particle/color/size arrays. Every topology mutation goes through a single
// entry point that updates all of them together and refreshes the distance
// matrix before the next tick can observe it.
//
// Layout2D is not safe for concurrent use: ticks, input handling, and
// projection reads are expected to interleave on one goroutine.
type Layout2D struct {
	cfg Config
	id  uuid.UUID
	log *slog.Logger

	graph     *graph.Store
	dist      *graph.DistanceMatrix
	particles []Particle2
	colors    []models.Color
	sizes     []float64

	interacted *interaction
	paused     bool

	noise      opensimplex.Noise
	noiseClock float64
}

// NewLayout2D builds an engine around g, placing every existing vertex at a
// random direction from the origin scaled by sqrt(vertexCount)*InitSpacing.
func NewLayout2D(g *graph.Store, cfg Config) *Layout2D {
	l := &Layout2D{
		cfg:   cfg,
		id:    uuid.New(),
		log:   slog.Default(),
		graph: g,
		noise: opensimplex.New(time.Now().UnixNano()),
	}
	radius := math.Sqrt(float64(g.VertexCount())) * cfg.InitSpacing
	for i := 0; i < g.VertexCount(); i++ {
		angle := rand.Float64() * 2 * math.Pi
		pos := models.Vec2{X: math.Cos(angle), Y: math.Sin(angle)}.Scale(radius)
		l.particles = append(l.particles, NewParticle2(pos, cfg.Mass))
		l.colors = append(l.colors, cfg.VertexColor)
		l.sizes = append(l.sizes, cfg.VertexSize)
	}
	l.dist = g.AllPairsDistance()
	return l
}

// SetLogger replaces the engine's logger. A nil logger restores the default.
func (l *Layout2D) SetLogger(logger *slog.Logger) {
	if logger == nil {
		logger = slog.Default()
	}
	l.log = logger
}

// ID returns the engine instance identifier used in log attributes.
func (l *Layout2D) ID() uuid.UUID {
	return l.id
}

// VertexCount returns the number of simulated vertices.
func (l *Layout2D) VertexCount() int {
	return l.graph.VertexCount()
}

// Graph exposes the underlying store for read-only queries.
func (l *Layout2D) Graph() *graph.Store {
	return l.graph
}

// Paused reports whether ticks are currently short-circuited.
func (l *Layout2D) Paused() bool {
	return l.paused
}

// TogglePause flips the pause flag. A paused tick returns immediately and
// leaves every particle untouched.
func (l *Layout2D) TogglePause() {
	l.paused = !l.paused
}

// Interacting reports whether a pointer gesture is in progress.
func (l *Layout2D) Interacting() bool {
	return l.interacted != nil
}

// Tick advances the simulation by the elapsed time. The engine keeps no
// wall-clock state; the caller supplies dt every frame.
func (l *Layout2D) Tick(dt time.Duration) {
	if l.paused {
		return
	}
	step := dt.Seconds()
	l.accumulateForces()
	for u := range l.particles {
		if l.interacted != nil && u == l.interacted.index {
			continue
		}
		l.particles[u].Step(step, l.cfg.SpeedLimit)
	}
	l.noiseClock += step
}

// accumulateForces clears and rebuilds every particle's force accumulator:
// damping and centering per vertex, then the log-spring pair law with the
// pending-edge vertex excluded from pair terms.
func (l *Layout2D) accumulateForces() {
	pending := -1
	if l.interacted != nil && l.interacted.action == ActionPendingEdge {
		pending = l.interacted.index
	}

	for u := range l.particles {
		p := &l.particles[u]
		p.ClearForce()
		p.AddForce(p.Vel.Scale(-l.cfg.Resistance).Add(p.Pos.Scale(-l.cfg.Centering)))
		if l.cfg.Drift != 0 {
			p.AddForce(l.driftForce(p.Pos))
		}
		if u == pending {
			continue
		}

		for v := 0; v < u; v++ {
			if v == pending {
				continue
			}
			d := l.particles[u].Pos.Sub(l.particles[v].Pos)
			r := d.Len()
			if r == 0 {
				// coincident pair: direction undefined, skip this tick
				continue
			}
			eq := l.cfg.EqLengthMult * l.cfg.FarDistance
			if gd := l.dist.At(u, v); gd != graph.Unreachable {
				eq = l.cfg.EqLengthMult * float64(gd)
			}
			f := d.Scale(1 / r).Scale(-math.Log(r/eq) * l.cfg.Stiffness)
			l.particles[u].AddForce(f)
			l.particles[v].AddForce(f.Scale(-1))
		}
	}
}

// driftForce samples the noise field at the particle's position, one channel
// per axis, centered on zero.
func (l *Layout2D) driftForce(pos models.Vec2) models.Vec2 {
	s := l.cfg.DriftScale
	return models.Vec2{
		X: l.noise.Eval3(pos.X*s, pos.Y*s, l.noiseClock),
		Y: l.noise.Eval3(pos.X*s+100, pos.Y*s+100, l.noiseClock),
	}.Scale(l.cfg.Drift)
}

// Position returns the current position of vertex id.
func (l *Layout2D) Position(id int) (models.Vec2, error) {
	if id < 0 || id >= len(l.particles) {
		return models.Vec2{}, fmt.Errorf("%w: position of %d with %d vertices", graph.ErrIndexOutOfRange, id, len(l.particles))
	}
	return l.particles[id].Pos, nil
}

// SetPosition places vertex id directly, clearing its velocity.
func (l *Layout2D) SetPosition(id int, pos models.Vec2) error {
	if id < 0 || id >= len(l.particles) {
		return fmt.Errorf("%w: place %d with %d vertices", graph.ErrIndexOutOfRange, id, len(l.particles))
	}
	l.particles[id].Pos = pos
	l.particles[id].ClearVelocity()
	return nil
}

// PickParticle returns the first vertex, in ascending index order, whose
// distance from the camera-space point is strictly less than its visual
// size. The vertex engaged by an active gesture is never returned.
func (l *Layout2D) PickParticle(p models.Vec2) (int, bool) {
	skip := -1
	if l.interacted != nil {
		skip = l.interacted.index
	}
	for i := range l.particles {
		if i == skip {
			continue
		}
		if l.particles[i].Pos.Sub(p).Len() < l.sizes[i] {
			return i, true
		}
	}
	return 0, false
}

// BeginDrag pins vertex id to the pointer until release.
func (l *Layout2D) BeginDrag(id int) error {
	if l.interacted != nil {
		return ErrInteractionInProgress
	}
	if id < 0 || id >= len(l.particles) {
		return fmt.Errorf("%w: drag %d with %d vertices", graph.ErrIndexOutOfRange, id, len(l.particles))
	}
	l.interacted = &interaction{index: id, action: ActionDrag}
	return nil
}

// SpawnAttached creates a new vertex at pos connected to anchor and leaves
// it in the pending-new-edge state: visible and connected, but frozen at
// the pointer until the gesture resolves. Returns the new vertex id.
func (l *Layout2D) SpawnAttached(anchor int, pos models.Vec2) (int, error) {
	if l.interacted != nil {
		return 0, ErrInteractionInProgress
	}
	if anchor < 0 || anchor >= l.graph.VertexCount() {
		return 0, fmt.Errorf("%w: anchor %d with %d vertices", graph.ErrIndexOutOfRange, anchor, l.graph.VertexCount())
	}
	v := l.graph.AddVertex()
	if err := l.graph.AddEdge(anchor, v); err != nil {
		// roll the vertex back so graph and particles stay in sync
		l.graph.Resize(v)
		return 0, err
	}
	l.particles = append(l.particles, NewParticle2(pos, l.cfg.Mass))
	l.colors = append(l.colors, l.cfg.VertexColor)
	l.sizes = append(l.sizes, l.cfg.VertexSize)
	l.refreshDistances()
	l.interacted = &interaction{index: v, action: ActionPendingEdge}
	l.log.Debug("vertex spawned", "layout", l.id, "vertex", v, "anchor", anchor)
	return v, nil
}

// DragTo moves the interacted vertex to the pointer's camera-space
// position. No-op when no gesture is active.
func (l *Layout2D) DragTo(pos models.Vec2) {
	if l.interacted == nil {
		return
	}
	l.particles[l.interacted.index].Pos = pos
}

// Release resolves the active gesture at the given pointer position.
//
// A drag simply ends. A pending edge gesture hit-tests the release point:
// on empty space the new pendant vertex is kept; on the vertex the edge
// started from, both that vertex and the pending one are deleted; on any
// other vertex the pending one is deleted and its anchor is connected to
// the hit vertex instead.
func (l *Layout2D) Release(pos models.Vec2) error {
	it := l.interacted
	if it == nil {
		return nil
	}
	if it.action == ActionDrag {
		l.interacted = nil
		return nil
	}

	hit, ok := l.PickParticle(pos)
	l.interacted = nil
	if !ok {
		return nil
	}

	nbrs, err := l.graph.Neighbors(it.index)
	if err != nil {
		return err
	}
	if len(nbrs) != 1 {
		return fmt.Errorf("%w: vertex %d has %d", ErrPendingDegree, it.index, len(nbrs))
	}
	incident := nbrs[0]

	if incident != hit {
		// merge-by-connect: undo the spawn, connect anchor to the hit vertex
		if err := l.removeVertex(it.index); err != nil {
			return err
		}
		if err := l.graph.AddEdge(incident, hit); err != nil {
			return err
		}
		l.refreshDistances()
		l.log.Debug("edge merged", "layout", l.id, "from", incident, "to", hit)
		return nil
	}

	// released back on the anchor: cancel by deleting both endpoints; the
	// pending vertex has the higher index, so removing it first leaves the
	// anchor's id intact
	if err := l.removeVertex(it.index); err != nil {
		return err
	}
	if err := l.removeVertex(incident); err != nil {
		return err
	}
	l.refreshDistances()
	l.log.Debug("edge gesture cancelled", "layout", l.id, "anchor", incident)
	return nil
}

// RemoveLast deletes the highest-indexed vertex together with its particle
// and decorations. Returns graph.ErrEmptyGraph when there is nothing to
// remove.
func (l *Layout2D) RemoveLast() error {
	if l.interacted != nil {
		return ErrInteractionInProgress
	}
	n := l.graph.VertexCount()
	if n == 0 {
		return graph.ErrEmptyGraph
	}
	if err := l.removeVertex(n - 1); err != nil {
		return err
	}
	l.refreshDistances()
	return nil
}

// Reset discards the whole layout and reinitializes a single seed vertex at
// the origin.
func (l *Layout2D) Reset() {
	l.interacted = nil
	l.graph.Resize(1)
	l.particles = []Particle2{NewParticle2(models.Vec2{}, l.cfg.Mass)}
	l.colors = []models.Color{l.cfg.SeedColor}
	l.sizes = []float64{l.cfg.VertexSize}
	l.refreshDistances()
	l.log.Debug("layout reset", "layout", l.id)
}

// removeVertex is the one place a vertex leaves the simulation: the graph
// and all three parallel arrays compact in the same call. Distance refresh
// is the caller's responsibility so multi-step gestures refresh once.
func (l *Layout2D) removeVertex(id int) error {
	if err := l.graph.RemoveVertex(id); err != nil {
		return err
	}
	l.particles = append(l.particles[:id], l.particles[id+1:]...)
	l.colors = append(l.colors[:id], l.colors[id+1:]...)
	l.sizes = append(l.sizes[:id], l.sizes[id+1:]...)
	return nil
}

func (l *Layout2D) refreshDistances() {
	l.dist = l.graph.AllPairsDistance()
}

// Points2 yields the current (position, color, size) of every vertex.
func (l *Layout2D) Points2() iter.Seq[models.Point2] {
	return func(yield func(models.Point2) bool) {
		for i := range l.particles {
			p := models.Point2{Pos: l.particles[i].Pos, Color: l.colors[i], Size: l.sizes[i]}
			if !yield(p) {
				return
			}
		}
	}
}

// Lines2 yields one segment per edge, inset by the endpoint sizes so lines
// stop at the vertex outline.
func (l *Layout2D) Lines2() iter.Seq[models.Line2] {
	return func(yield func(models.Line2) bool) {
		for u, v := range l.graph.Edges() {
			dir := l.particles[v].Pos.Sub(l.particles[u].Pos).Normalize()
			line := models.Line2{
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
