package metrics

import "github.com/san-kum/curvelab/internal/rig"

// Settling reports the time (in frame units) after which both control
// points stayed within tolerance of their targets for the rest of the
// run. A run that never settles reports the final observed time.
type Settling struct {
	name      string
	tolerance float64
	settledAt float64
	seen      bool
}

func NewSettling(tolerance float64) *Settling {
	return &Settling{
		name:      "settling_time",
		tolerance: tolerance,
	}
}

func (s *Settling) Name() string { return s.name }

func (s *Settling) Observe(f rig.Frame) {
	displaced := f.C1.Displacement() > s.tolerance || f.C2.Displacement() > s.tolerance

	if displaced || !s.seen {
		s.settledAt = f.Time
	}
	s.seen = true
}

func (s *Settling) Value() float64 {
	if !s.seen {
		return 0
	}
	return s.settledAt
}

func (s *Settling) Reset() {
	s.settledAt = 0
	s.seen = false
}
