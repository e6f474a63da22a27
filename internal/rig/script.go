package rig

import (
	"math"

	"github.com/san-kum/curvelab/internal/geom"
)

// Script supplies a pointer position for each frame of a headless run.
// The frame index plays the role the mouse plays in the interactive
// view: latest value wins, one read per step.
type Script interface {
	Pointer(frame int) geom.Vec
}

// StepScript holds the pointer at From, then jumps it to To at frame
// At. The canonical settling scenario.
type StepScript struct {
	From, To geom.Vec
	At       int
}

func (s StepScript) Pointer(frame int) geom.Vec {
	if frame < s.At {
		return s.From
	}
	return s.To
}

// CircleScript moves the pointer around a circle, one revolution every
// Period frames. Exercises continuous retargeting.
type CircleScript struct {
	Center geom.Vec
	Radius float64
	Period int
}

func (s CircleScript) Pointer(frame int) geom.Vec {
	period := s.Period
	if period <= 0 {
		period = 240
	}
	angle := 2 * math.Pi * float64(frame) / float64(period)
	return geom.Vec{
		X: s.Center.X + s.Radius*math.Cos(angle),
		Y: s.Center.Y + s.Radius*math.Sin(angle),
	}
}

// SweepScript slides the pointer linearly from From to To over Frames
// frames, then holds.
type SweepScript struct {
	From, To geom.Vec
	Frames   int
}

func (s SweepScript) Pointer(frame int) geom.Vec {
	if s.Frames <= 0 || frame >= s.Frames {
		return s.To
	}
	t := float64(frame) / float64(s.Frames)
	return s.From.Add(s.To.Sub(s.From).Scale(t))
}

// HoldScript pins the pointer to a single position.
type HoldScript struct {
	At geom.Vec
}

func (s HoldScript) Pointer(frame int) geom.Vec {
	return s.At
}
