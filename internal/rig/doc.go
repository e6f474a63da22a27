// Package rig assembles the curve: two fixed endpoints, two
// spring-driven interior control points, and the per-frame step that
// retargets and advances them from a single pointer position.
//
// Rig is the piece the frame driver talks to:
//
//	r := rig.New(1000, 600)
//	r.Step(pointer, rig.FrameScale(elapsed))
//	path := r.Path(curve.DefaultResolution)
//
// Runner replays a scripted pointer against a rig for headless
// experiments, with per-frame metrics and context cancellation.
//
// Neither type is safe for concurrent use; the design is one step and
// one render per tick on a single goroutine.
package rig
