package physics

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"

	"github.com/TFMV/forcegraph/models"
)

func TestParticleStepIntegrates(t *testing.T) {
	p := NewParticle2(models.Vec2{}, 2.0)
	p.AddForce(models.Vec2{X: 4}) // acc = 2
	p.Step(0.5, 100)

	assert.InDelta(t, 1.0, p.Vel.X, 1e-12) // 2 * 0.5
	assert.InDelta(t, 0.5, p.Pos.X, 1e-12) // semi-implicit: new velocity moves position
}

func TestParticleForceAccumulatorClears(t *testing.T) {
	p := NewParticle2(models.Vec2{}, 1.0)
	p.AddForce(models.Vec2{X: 1, Y: 2})
	p.AddForce(models.Vec2{X: 3})
	assert.Equal(t, models.Vec2{X: 4, Y: 2}, p.force)

	p.ClearForce()
	assert.Equal(t, models.Vec2{}, p.force)
}

// The speed limit must hold for any force, however adversarial.
func TestSpeedLimitProperty(t *testing.T) {
	const limit = 100.0

	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	properties.Property("2D velocity never exceeds the limit", prop.ForAll(
		func(fx, fy, dt float64) bool {
			p := NewParticle2(models.Vec2{}, 1.0)
			for i := 0; i < 5; i++ {
				p.ClearForce()
				p.AddForce(models.Vec2{X: fx, Y: fy})
				p.Step(dt, limit)
				if p.Vel.Len() > limit*(1+1e-9) {
					return false
				}
			}
			return true
		},
		gen.Float64Range(-1e9, 1e9),
		gen.Float64Range(-1e9, 1e9),
		gen.Float64Range(1e-4, 0.1),
	))

	properties.Property("3D velocity never exceeds the limit", prop.ForAll(
		func(fx, fy, fz, dt float64) bool {
			p := NewParticle3(models.Vec3{}, 1.0)
			p.AddForce(models.Vec3{X: fx, Y: fy, Z: fz})
			p.Step(dt, limit)
			return p.Vel.Len() <= limit*(1+1e-9)
		},
		gen.Float64Range(-1e9, 1e9),
		gen.Float64Range(-1e9, 1e9),
		gen.Float64Range(-1e9, 1e9),
		gen.Float64Range(1e-4, 0.1),
	))

	properties.TestingRun(t)
}
