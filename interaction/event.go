// Package interaction translates decoded pointer and keyboard events into
// layout mutations, drags, and camera movement. Raw input decoding is the
// embedding application's job; this package consumes semantic events that
// already carry a camera-space pointer position.
package interaction

import "github.com/TFMV/forcegraph/models"

// Button identifies a pointer button.
type Button int

const (
	ButtonNone Button = iota
	ButtonLeft
	ButtonRight
	ButtonMiddle
)

// Kind identifies a semantic input event.
type Kind int

const (
	// ButtonPressed and ButtonReleased carry Button and Pos.
	ButtonPressed Kind = iota
	ButtonReleased

	// CursorDragged fires on pointer movement while Button is held; carries
	// Button and Pos.
	CursorDragged

	// WheelScrolled carries Scroll, a signed zoom delta.
	WheelScrolled

	// Key commands, decoded from the keyboard by the embedding application.
	KeyPauseToggle
	KeyPopVertex
	KeyReset
)

// Event is one decoded input event. Pos is the pointer position already
// converted to camera space for the current viewport.
type Event struct {
	Kind   Kind
	Button Button
	Pos    models.Vec2
	Scroll float64
}
