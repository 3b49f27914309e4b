package interaction

import (
	"errors"

	"github.com/TFMV/forcegraph/graph"
	"github.com/TFMV/forcegraph/models"
	"github.com/TFMV/forcegraph/physics"
)

// Controller is the 2D gesture state machine. It owns no simulation state
// of its own: every transition is a call into the layout's mutation entry
// points, so graph, particles, and decorations can never diverge.
//
// Gestures:
//
//   - left press on a vertex starts a drag; on empty space starts a camera
//     pan
//   - right press on a vertex spawns a new vertex connected to it, pending
//     until release: released on empty space it stays as a pendant vertex,
//     released on another vertex it merges into an edge between that vertex
//     and the anchor, released back on the anchor it cancels and deletes
//     both
//   - middle press pops the highest-indexed vertex
//   - wheel zooms, accumulated then consumed in one batch
//   - key commands (pause, pop, reset) apply from the idle state only
type Controller struct {
	layout *physics.Layout2D
	camera Camera

	panning bool
	panPrev models.Vec2
	scroll  float64
}

// NewController wires a controller to its layout and camera. A nil camera
// falls back to NopCamera.
func NewController(layout *physics.Layout2D, camera Camera) *Controller {
	if camera == nil {
		camera = NopCamera{}
	}
	return &Controller{layout: layout, camera: camera}
}

// Handle feeds one event through the state machine. It reports whether the
// event was consumed. Errors surface contract violations (see
// physics.ErrPendingDegree); expected conditions like popping an empty
// graph are absorbed as no-ops.
func (c *Controller) Handle(ev Event) (bool, error) {
	switch ev.Kind {
	case ButtonPressed:
		return c.pressed(ev)

	case ButtonReleased:
		c.panning = false
		if err := c.layout.Release(ev.Pos); err != nil {
			return true, err
		}
		return true, nil

	case CursorDragged:
		if c.layout.Interacting() {
			c.layout.DragTo(ev.Pos)
			return true, nil
		}
		if ev.Button == ButtonLeft && c.panning {
			c.camera.Pan(c.panPrev.Sub(ev.Pos))
			c.panPrev = ev.Pos
			return true, nil
		}
		return false, nil

	case WheelScrolled:
		c.scroll += ev.Scroll
		c.camera.Zoom(c.consumeScroll())
		return true, nil

	case KeyPauseToggle:
		if c.layout.Interacting() {
			return false, nil
		}
		c.layout.TogglePause()
		return true, nil

	case KeyPopVertex:
		if c.layout.Interacting() {
			return false, nil
		}
		if err := c.layout.RemoveLast(); err != nil && !errors.Is(err, graph.ErrEmptyGraph) {
			return true, err
		}
		return true, nil

	case KeyReset:
		if c.layout.Interacting() {
			return false, nil
		}
		c.layout.Reset()
		return true, nil
	}
	return false, nil
}

func (c *Controller) pressed(ev Event) (bool, error) {
	switch ev.Button {
	case ButtonLeft:
		if i, ok := c.layout.PickParticle(ev.Pos); ok {
			return true, c.layout.BeginDrag(i)
		}
		c.panning = true
		c.panPrev = ev.Pos
		return true, nil

	case ButtonRight:
		i, ok := c.layout.PickParticle(ev.Pos)
		if !ok {
			return false, nil
		}
		if _, err := c.layout.SpawnAttached(i, ev.Pos); err != nil {
			return true, err
		}
		return true, nil

	case ButtonMiddle:
		if c.layout.Interacting() {
			return false, nil
		}
		if err := c.layout.RemoveLast(); err != nil && !errors.Is(err, graph.ErrEmptyGraph) {
			return true, err
		}
		return true, nil
	}
	return false, nil
}

func (c *Controller) consumeScroll() float64 {
	s := c.scroll
	c.scroll = 0
	return s
}
