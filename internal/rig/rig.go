package rig

import (
	"time"

	"github.com/san-kum/curvelab/internal/curve"
	"github.com/san-kum/curvelab/internal/geom"
	"github.com/san-kum/curvelab/internal/spring"
)

// Frame-clock reference. dt values handed to Step are multiples of the
// nominal 60 Hz interval, clamped to MaxFrameScale so a long pause
// cannot blow up a single integration step.
const (
	NominalFrameMillis = 16.67
	MaxFrameScale      = 2.0
)

// EdgeMargin is the distance from the canvas edges to the fixed
// endpoints.
const EdgeMargin = 200.0

// Pointer-to-target offsets. The asymmetry is what makes a single
// pointer signal deform the two halves of the curve differently.
var (
	OffsetC1 = geom.Vec{X: -100, Y: -50}
	OffsetC2 = geom.Vec{X: 100, Y: 50}
)

// Rig owns one cubic Bézier curve: two fixed endpoints and two
// spring-driven interior control points. The endpoints never change
// after construction.
type Rig struct {
	p0, p3 geom.Vec
	C1, C2 *spring.ControlPoint

	width, height float64
}

// New builds a rig for a width×height canvas. P0 and P3 sit EdgeMargin
// pixels in from the left and right edges at vertical center; the
// interior points start at thirds of the chord.
func New(width, height float64) *Rig {
	p0 := geom.Vec{X: EdgeMargin, Y: height / 2}
	p3 := geom.Vec{X: width - EdgeMargin, Y: height / 2}

	chord := p3.Sub(p0)
	c1 := p0.Add(chord.Scale(1.0 / 3.0))
	c2 := p0.Add(chord.Scale(2.0 / 3.0))

	return &Rig{
		p0:     p0,
		p3:     p3,
		C1:     spring.New(c1.X, c1.Y),
		C2:     spring.New(c2.X, c2.Y),
		width:  width,
		height: height,
	}
}

// NewTuned builds a rig with explicit spring constants on both control
// points.
func NewTuned(width, height, stiffness, damping float64) *Rig {
	r := New(width, height)
	r.C1 = spring.NewTuned(r.C1.Position.X, r.C1.Position.Y, stiffness, damping)
	r.C2 = spring.NewTuned(r.C2.Position.X, r.C2.Position.Y, stiffness, damping)
	return r
}

// Step retargets both control points from the pointer position and
// advances them by dt frame units. dt is clamped to [0, MaxFrameScale].
func (r *Rig) Step(pointer geom.Vec, dt float64) {
	if dt < 0 {
		dt = 0
	}
	if dt > MaxFrameScale {
		dt = MaxFrameScale
	}

	t1 := pointer.Add(OffsetC1)
	t2 := pointer.Add(OffsetC2)
	r.C1.SetTarget(t1.X, t1.Y)
	r.C2.SetTarget(t2.X, t2.Y)

	r.C1.Step(dt)
	r.C2.Step(dt)
}

// Points returns the four control points of the current curve, a
// snapshot valid only for this instant.
func (r *Rig) Points() (p0, p1, p2, p3 geom.Vec) {
	return r.p0, r.C1.Position, r.C2.Position, r.p3
}

// Path samples the current curve for stroking.
func (r *Rig) Path(resolution float64) []geom.Vec {
	p0, p1, p2, p3 := r.Points()
	return curve.SamplePath(p0, p1, p2, p3, resolution)
}

// Tangents samples the current curve for tangent overlays.
func (r *Rig) Tangents(count int, length float64) []curve.TangentSample {
	p0, p1, p2, p3 := r.Points()
	return curve.SampleTangents(p0, p1, p2, p3, count, length)
}

// Size reports the canvas dimensions the rig was built for.
func (r *Rig) Size() (width, height float64) {
	return r.width, r.height
}

// Center is a convenient rest position for the pointer.
func (r *Rig) Center() geom.Vec {
	return geom.Vec{X: r.width / 2, Y: r.height / 2}
}

// FrameScale converts a wall-clock frame delta to the dimensionless dt
// Step expects: elapsed / nominal, clamped to [0, MaxFrameScale].
func FrameScale(elapsed time.Duration) float64 {
	dt := float64(elapsed.Microseconds()) / 1000.0 / NominalFrameMillis
	if dt < 0 {
		return 0
	}
	if dt > MaxFrameScale {
		return MaxFrameScale
	}
	return dt
}
