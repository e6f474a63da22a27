package metrics

import (
	"github.com/san-kum/curvelab/internal/geom"
	"github.com/san-kum/curvelab/internal/rig"
)

// PathLength accumulates the total distance traveled by both control
// points over a run.
type PathLength struct {
	name     string
	prev1    geom.Vec
	prev2    geom.Vec
	total    float64
	observed bool
}

func NewPathLength() *PathLength {
	return &PathLength{name: "path_length"}
}

func (p *PathLength) Name() string { return p.name }

func (p *PathLength) Observe(f rig.Frame) {
	if p.observed {
		p.total += f.C1.Position.DistanceTo(p.prev1)
		p.total += f.C2.Position.DistanceTo(p.prev2)
	}
	p.prev1 = f.C1.Position
	p.prev2 = f.C2.Position
	p.observed = true
}

func (p *PathLength) Value() float64 {
	return p.total
}

func (p *PathLength) Reset() {
	p.prev1 = geom.Vec{}
	p.prev2 = geom.Vec{}
	p.total = 0
	p.observed = false
}
