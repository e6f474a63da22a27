package viz

import (
	"math/rand"

	"github.com/charmbracelet/harmonica"
	"github.com/san-kum/curvelab/internal/geom"
)

// Autopilot glides a synthetic pointer between random waypoints when
// the mouse is idle, so the curve keeps moving in attract mode. The
// glide itself is a harmonica spring; the rig underneath still runs
// its own integrator against the synthetic pointer.
type Autopilot struct {
	spring         harmonica.Spring
	pos, vel       geom.Vec
	waypoint       geom.Vec
	hold           int
	rng            *rand.Rand
	worldW, worldH float64
}

func NewAutopilot(fps int, worldW, worldH float64, seed int64) *Autopilot {
	a := &Autopilot{
		spring: harmonica.NewSpring(harmonica.FPS(fps), 1.2, 0.9),
		pos:    geom.Vec{X: worldW / 2, Y: worldH / 2},
		rng:    rand.New(rand.NewSource(seed)),
		worldW: worldW,
		worldH: worldH,
	}
	a.waypoint = a.pos
	return a
}

// Step advances the synthetic pointer by one frame and returns its
// position.
func (a *Autopilot) Step() geom.Vec {
	if a.hold <= 0 {
		a.waypoint = a.pick()
		a.hold = 60 + a.rng.Intn(120)
	}
	a.hold--

	a.pos.X, a.vel.X = a.spring.Update(a.pos.X, a.vel.X, a.waypoint.X)
	a.pos.Y, a.vel.Y = a.spring.Update(a.pos.Y, a.vel.Y, a.waypoint.Y)
	return a.pos
}

// Resume recenters the glide on the real pointer so switching back to
// attract mode does not jump.
func (a *Autopilot) Resume(from geom.Vec) {
	a.pos = from
	a.vel = geom.Vec{}
	a.hold = 0
}

// pick chooses a waypoint away from the edges, where the curve stays
// mostly on screen.
func (a *Autopilot) pick() geom.Vec {
	marginX := a.worldW * 0.15
	marginY := a.worldH * 0.2
	return geom.Vec{
		X: marginX + a.rng.Float64()*(a.worldW-2*marginX),
		Y: marginY + a.rng.Float64()*(a.worldH-2*marginY),
	}
}
