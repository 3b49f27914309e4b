// Package physics implements the force-directed layout engines: per-vertex
// kinematic state kept index-parallel with a graph.Store, a per-tick force
// integrator, and the pointer-interaction entry points that mutate graph and
// particles together.
package physics

import "github.com/TFMV/forcegraph/models"

// Config carries the tuning constants for one layout engine. Engines never
// read package-level constants, so simulations with different tuning can
// coexist.
type Config struct {
	// Stiffness scales the spring force of both force laws.
	Stiffness float64 `toml:"stiffness"`

	// Repulsion scales the inverse-square pair repulsion of the adjacency
	// law. Unused by the graph-distance law.
	Repulsion float64 `toml:"repulsion"`

	// EqLength is the fixed spring rest length of the adjacency law.
	EqLength float64 `toml:"eq_length"`

	// EqLengthMult converts a graph distance into the equilibrium length of
	// the graph-distance law.
	EqLengthMult float64 `toml:"eq_length_mult"`

	// FarDistance stands in for the graph distance of a disconnected pair,
	// so separate components repel toward a large equilibrium.
	FarDistance float64 `toml:"far_distance"`

	// Resistance is the velocity damping coefficient.
	Resistance float64 `toml:"resistance"`

	// Centering pulls every vertex toward the origin and prevents unbounded
	// drift.
	Centering float64 `toml:"centering"`

	// SpeedLimit caps velocity magnitude after every integration step.
	SpeedLimit float64 `toml:"speed_limit"`

	// InitSpacing scales the random initial placement radius.
	InitSpacing float64 `toml:"init_spacing"`

	// Mass assigned to newly created particles.
	Mass float64 `toml:"mass"`

	// Drift, when non-zero, adds a slowly varying noise force that nudges
	// the layout out of local minima. DriftScale is the spatial frequency
	// of the noise field.
	Drift      float64 `toml:"drift"`
	DriftScale float64 `toml:"drift_scale"`

	// PickRadius is the hit-test threshold of the depth-ranked 3D picker.
	// The 2D picker uses each vertex's visual size instead.
	PickRadius float64 `toml:"pick_radius"`

	// VertexSize is the visual size of newly created vertices, also the 2D
	// hit-test radius.
	VertexSize float64 `toml:"vertex_size"`

	// VertexColor decorates vertices created by interaction; SeedColor
	// decorates the single vertex left by a reset.
	VertexColor models.Color `toml:"-"`
	SeedColor   models.Color `toml:"-"`
	EdgeColor   models.Color `toml:"-"`
}

// DefaultConfig2D returns the tuning of the graph-distance law.
func DefaultConfig2D() Config {
	return Config{
		Stiffness:    1.0,
		EqLengthMult: 2.0,
		FarDistance:  20.0,
		Resistance:   1.0,
		Centering:    0.1,
		SpeedLimit:   100.0,
		InitSpacing:  1.0,
		Mass:         1.0,
		DriftScale:   0.03,
		VertexSize:   0.1,
		VertexColor:  models.RGB(0.1, 0.7, 0.1),
		SeedColor:    models.RGB(0.1, 0.9, 0.1),
		EdgeColor:    models.RGBA(0, 0, 0, 0.5),
	}
}

// DefaultConfig3D returns the tuning of the adjacency law.
func DefaultConfig3D() Config {
	return Config{
		Stiffness:   6.0,
		Repulsion:   3.0,
		EqLength:    1.0,
		Resistance:  0.5,
		Centering:   0.05,
		SpeedLimit:  200.0,
		InitSpacing: 1.0,
		Mass:        1.0,
		DriftScale:  0.03,
		PickRadius:  0.1,
		VertexSize:  0.1,
		VertexColor: models.RGB(0.1, 0.7, 0.1),
		SeedColor:   models.RGB(0.1, 0.9, 0.1),
		EdgeColor:   models.RGBA(0, 0, 0, 0.5),
	}
}
