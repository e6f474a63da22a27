package spring

import "github.com/san-kum/curvelab/internal/geom"

// Default tuning for the "rope" feel.
const (
	DefaultStiffness = 0.15
	DefaultDamping   = 0.85
)

// auxDampingScale weights the additive damping force that is layered on
// top of the multiplicative velocity damping in Step.
const auxDampingScale = 0.1

// ControlPoint holds the mutable state of one spring-driven curve
// handle. Position and Velocity are only mutated by Step, Target only
// by SetTarget; nothing else writes to a ControlPoint.
type ControlPoint struct {
	Position geom.Vec
	Velocity geom.Vec
	Target   geom.Vec

	Stiffness float64
	Damping   float64
}

// New creates a control point at (x, y) with default tuning. The
// initial position also seeds the target, so an unstepped point is
// already at rest.
func New(x, y float64) *ControlPoint {
	return NewTuned(x, y, DefaultStiffness, DefaultDamping)
}

// NewTuned creates a control point with explicit spring constants.
func NewTuned(x, y, stiffness, damping float64) *ControlPoint {
	p := geom.Vec{X: x, Y: y}
	return &ControlPoint{
		Position:  p,
		Target:    p,
		Stiffness: stiffness,
		Damping:   damping,
	}
}

// SetTarget retargets the spring. Idempotent; takes effect on the next
// Step.
func (c *ControlPoint) SetTarget(x, y float64) {
	c.Target = geom.Vec{X: x, Y: y}
}

// Step advances the state by dt, a dimensionless multiple of the
// nominal frame interval.
//
// Damping is applied twice per step: once as a weak force opposing the
// velocity, and once multiplicatively after acceleration. The
// combination is what produces the rope-like settling; changing either
// application changes the feel.
func (c *ControlPoint) Step(dt float64) {
	springForce := c.Target.Sub(c.Position).Scale(c.Stiffness)
	dampForce := c.Velocity.Scale(-c.Damping * auxDampingScale)
	accel := springForce.Add(dampForce)

	// Velocity before position, always.
	c.Velocity = c.Velocity.Add(accel.Scale(dt))
	c.Velocity = c.Velocity.Scale(c.Damping)
	c.Position = c.Position.Add(c.Velocity.Scale(dt))
}

// Displacement is the remaining distance to the target.
func (c *ControlPoint) Displacement() float64 {
	return c.Position.DistanceTo(c.Target)
}

// Speed is the magnitude of the current velocity.
func (c *ControlPoint) Speed() float64 {
	return c.Velocity.Length()
}
