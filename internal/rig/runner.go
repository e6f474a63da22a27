package rig

import (
	"context"

	"github.com/san-kum/curvelab/internal/geom"
	"github.com/san-kum/curvelab/internal/spring"
)

// Frame is a per-step snapshot handed to metrics and recorded in the
// Result. The control points are copied by value; mutating a Frame
// never touches the rig.
type Frame struct {
	Index   int
	Time    float64
	Pointer geom.Vec
	C1, C2  spring.ControlPoint
}

// Metric reduces a run to a single number.
type Metric interface {
	Name() string
	Observe(f Frame)
	Value() float64
	Reset()
}

// Observer is notified after every step.
type Observer interface {
	OnFrame(f Frame)
}

// RunConfig controls a headless run. Dt is in frame units, the same
// dimensionless scale the interactive view produces.
type RunConfig struct {
	Frames        int
	Dt            float64
	ValidateState bool
}

func DefaultRunConfig() RunConfig {
	return RunConfig{
		Frames:        600,
		Dt:            1.0,
		ValidateState: true,
	}
}

// Result holds everything a run produced, entirely in memory.
type Result struct {
	Frames  []Frame
	Metrics map[string]float64
	Errors  []error
}

// Runner drives a Rig against a scripted pointer, frame by frame,
// exactly the way the interactive view does: one retarget and one
// integration step per frame, strictly sequential.
type Runner struct {
	rig       *Rig
	script    Script
	metrics   []Metric
	observers []Observer
}

func NewRunner(r *Rig, script Script) *Runner {
	return &Runner{
		rig:       r,
		script:    script,
		metrics:   make([]Metric, 0),
		observers: make([]Observer, 0),
	}
}

func (r *Runner) AddMetric(m Metric)     { r.metrics = append(r.metrics, m) }
func (r *Runner) AddObserver(o Observer) { r.observers = append(r.observers, o) }

// Run executes the scripted frames. The context is checked every step;
// a canceled run returns what was recorded so far along with the
// context error.
func (r *Runner) Run(ctx context.Context, cfg RunConfig) (*Result, error) {
	if cfg.Frames <= 0 || cfg.Dt <= 0 {
		return nil, ErrInvalidConfig
	}

	result := &Result{
		Frames:  make([]Frame, 0, cfg.Frames),
		Metrics: make(map[string]float64),
		Errors:  make([]error, 0),
	}

	for _, m := range r.metrics {
		m.Reset()
	}

	t := 0.0
	for i := 0; i < cfg.Frames; i++ {
		select {
		case <-ctx.Done():
			r.reduce(result)
			return result, ctx.Err()
		default:
		}

		pointer := r.script.Pointer(i)
		r.rig.Step(pointer, cfg.Dt)
		t += cfg.Dt

		f := Frame{
			Index:   i,
			Time:    t,
			Pointer: pointer,
			C1:      *r.rig.C1,
			C2:      *r.rig.C2,
		}

		if cfg.ValidateState && (!f.C1.Position.IsValid() || !f.C2.Position.IsValid()) {
			runErr := &RunError{Frame: i, Time: t, Wrapped: ErrUnstable}
			result.Errors = append(result.Errors, runErr)
			break
		}

		for _, m := range r.metrics {
			m.Observe(f)
		}
		for _, o := range r.observers {
			o.OnFrame(f)
		}

		result.Frames = append(result.Frames, f)
	}

	r.reduce(result)
	return result, nil
}

func (r *Runner) reduce(result *Result) {
	for _, m := range r.metrics {
		result.Metrics[m.Name()] = m.Value()
	}
}

// RunWithCallback is the allocation-light variant: nothing is recorded,
// and the callback can stop the run by returning false.
func (r *Runner) RunWithCallback(ctx context.Context, cfg RunConfig, callback func(f Frame) bool) error {
	if cfg.Frames <= 0 || cfg.Dt <= 0 {
		return ErrInvalidConfig
	}

	t := 0.0
	for i := 0; i < cfg.Frames; i++ {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		pointer := r.script.Pointer(i)
		r.rig.Step(pointer, cfg.Dt)
		t += cfg.Dt

		f := Frame{Index: i, Time: t, Pointer: pointer, C1: *r.rig.C1, C2: *r.rig.C2}

		if cfg.ValidateState && (!f.C1.Position.IsValid() || !f.C2.Position.IsValid()) {
			return &RunError{Frame: i, Time: t, Wrapped: ErrUnstable}
		}

		if !callback(f) {
			return nil
		}
	}

	return nil
}
