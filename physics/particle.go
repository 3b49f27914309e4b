package physics

import "github.com/TFMV/forcegraph/models"

// Particle2 is the kinematic state of one 2D vertex. The force accumulator
// is ephemeral: it is cleared at the start of every tick.
type Particle2 struct {
	Pos   models.Vec2
	Vel   models.Vec2
	Mass  float64
	force models.Vec2
}

// NewParticle2 creates a particle at rest.
func NewParticle2(pos models.Vec2, mass float64) Particle2 {
	return Particle2{Pos: pos, Mass: mass}
}

func (p *Particle2) AddForce(f models.Vec2) {
	p.force = p.force.Add(f)
}

func (p *Particle2) ClearForce() {
	p.force = models.Vec2{}
}

func (p *Particle2) ClearVelocity() {
	p.Vel = models.Vec2{}
}

// Step advances the particle by dt seconds with semi-implicit Euler: the
// new velocity moves the position. Velocity is clamped to speedLimit so a
// transient force spike never produces unbounded motion.
func (p *Particle2) Step(dt, speedLimit float64) {
	acc := p.force.Scale(1 / p.Mass)
	p.Vel = p.Vel.Add(acc.Scale(dt)).Clamp(speedLimit)
	p.Pos = p.Pos.Add(p.Vel.Scale(dt))
}

// Particle3 is the 3D counterpart of Particle2.
type Particle3 struct {
	Pos   models.Vec3
	Vel   models.Vec3
	Mass  float64
	force models.Vec3
}

// NewParticle3 creates a particle at rest.
func NewParticle3(pos models.Vec3, mass float64) Particle3 {
	return Particle3{Pos: pos, Mass: mass}
}

func (p *Particle3) AddForce(f models.Vec3) {
	p.force = p.force.Add(f)
}

func (p *Particle3) ClearForce() {
	p.force = models.Vec3{}
}

func (p *Particle3) ClearVelocity() {
	p.Vel = models.Vec3{}
}

// Step advances the particle by dt seconds, see Particle2.Step.
func (p *Particle3) Step(dt, speedLimit float64) {
	acc := p.force.Scale(1 / p.Mass)
	p.Vel = p.Vel.Add(acc.Scale(dt)).Clamp(speedLimit)
	p.Pos = p.Pos.Add(p.Vel.Scale(dt))
}
