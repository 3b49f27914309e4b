package interaction

import (
	"github.com/TFMV/forcegraph/models"
	"github.com/TFMV/forcegraph/physics"
)

// Controller3D is the drag-only gesture machine of the 3D layout variant.
// Picking goes through the camera projection so overlapping vertices
// resolve to the one closest to the viewer, and a dragged vertex moves in
// the camera plane at its current depth.
type Controller3D struct {
	layout *physics.Layout3D
	camera Camera3

	panning bool
	panPrev models.Vec2
	scroll  float64
}

// NewController3D wires a controller to its layout and camera.
func NewController3D(layout *physics.Layout3D, camera Camera3) *Controller3D {
	return &Controller3D{layout: layout, camera: camera}
}

// Handle feeds one event through the state machine and reports whether it
// was consumed.
func (c *Controller3D) Handle(ev Event) (bool, error) {
	switch ev.Kind {
	case ButtonPressed:
		if ev.Button != ButtonLeft {
			return false, nil
		}
		if i, ok := c.layout.PickParticle(ev.Pos, c.camera.Project); ok {
			return true, c.layout.BeginDrag(i)
		}
		c.panning = true
		c.panPrev = ev.Pos
		return true, nil

	case ButtonReleased:
		c.panning = false
		c.layout.EndDrag()
		return true, nil

	case CursorDragged:
		if pos, ok := c.layout.DraggedPosition(); ok {
			// keep the vertex at its own depth while tracking the pointer
			_, depth := c.camera.Project(pos)
			c.layout.DragTo(c.camera.Unproject(ev.Pos, depth))
			return true, nil
		}
		if ev.Button == ButtonLeft && c.panning {
			c.camera.Pan(ev.Pos.Sub(c.panPrev))
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
	}
	return false, nil
}

func (c *Controller3D) consumeScroll() float64 {
	s := c.scroll
	c.scroll = 0
	return s
}
