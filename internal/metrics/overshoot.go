package metrics

import (
	"github.com/san-kum/curvelab/internal/geom"
	"github.com/san-kum/curvelab/internal/rig"
	"github.com/san-kum/curvelab/internal/spring"
)

// Overshoot measures how far past its target a control point travels,
// as a fraction of the initial displacement. The excursion is measured
// along the initial approach direction, so lateral wobble does not
// count.
type Overshoot struct {
	name string
	c1   axisTracker
	c2   axisTracker
}

type axisTracker struct {
	dir     geom.Vec
	initial float64
	max     float64
	armed   bool
}

func (a *axisTracker) observe(c spring.ControlPoint) {
	disp := c.Position.Sub(c.Target)

	if !a.armed {
		a.initial = disp.Length()
		if a.initial == 0 {
			return
		}
		a.dir = disp.Normalize()
		a.armed = true
		return
	}

	// Negative projection means the point passed the target.
	proj := disp.Dot(a.dir)
	if over := -proj; over > a.max {
		a.max = over
	}
}

func (a *axisTracker) value() float64 {
	if !a.armed || a.initial == 0 {
		return 0
	}
	return a.max / a.initial
}

func NewOvershoot() *Overshoot {
	return &Overshoot{name: "overshoot"}
}

func (o *Overshoot) Name() string { return o.name }

func (o *Overshoot) Observe(f rig.Frame) {
	o.c1.observe(f.C1)
	o.c2.observe(f.C2)
}

func (o *Overshoot) Value() float64 {
	v1, v2 := o.c1.value(), o.c2.value()
	if v1 > v2 {
		return v1
	}
	return v2
}

func (o *Overshoot) Reset() {
	o.c1 = axisTracker{}
	o.c2 = axisTracker{}
}
