package interaction

import "github.com/TFMV/forcegraph/models"

// Camera is the view collaborator the controller delegates pan and zoom to.
// The engine never does projection math itself.
type Camera interface {
	Pan(delta models.Vec2)
	Zoom(delta float64)
}

// Camera3 extends Camera with the projection pair the 3D picker and drag
// need: Project maps world to camera space plus depth, Unproject inverts it
// at a given depth.
type Camera3 interface {
	Camera
	Project(p models.Vec3) (models.Vec2, float64)
	Unproject(p models.Vec2, depth float64) models.Vec3
}

// NopCamera ignores all view commands, for headless use and tests.
type NopCamera struct{}

func (NopCamera) Pan(models.Vec2) {}
func (NopCamera) Zoom(float64)    {}
