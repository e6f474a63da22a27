package metrics

import (
	"context"
	"testing"

	"github.com/san-kum/curvelab/internal/geom"
	"github.com/san-kum/curvelab/internal/rig"
)

func runWithMetrics(t *testing.T, script rig.Script, frames int, ms ...rig.Metric) *rig.Result {
	t.Helper()

	runner := rig.NewRunner(rig.New(1000, 600), script)
	for _, m := range ms {
		runner.AddMetric(m)
	}

	result, err := runner.Run(context.Background(), rig.RunConfig{Frames: frames, Dt: 1, ValidateState: true})
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}
	return result
}

func TestSettlingOnStepResponse(t *testing.T) {
	script := rig.StepScript{
		From: geom.Vec{X: 500, Y: 300},
		To:   geom.Vec{X: 700, Y: 200},
		At:   0,
	}

	result := runWithMetrics(t, script, 600, NewSettling(0.5))

	settled := result.Metrics["settling_time"]
	if settled <= 0 {
		t.Error("expected a positive settling time")
	}
	if settled >= 600 {
		t.Errorf("default tuning should settle well before 600 frames, got %f", settled)
	}
}

func TestSettlingNeverSettles(t *testing.T) {
	// A fast circle keeps the targets moving; the rig lags forever.
	script := rig.CircleScript{Center: geom.Vec{X: 500, Y: 300}, Radius: 200, Period: 60}

	result := runWithMetrics(t, script, 300, NewSettling(0.5))

	if got := result.Metrics["settling_time"]; got != 300 {
		t.Errorf("unsettled run should report final time 300, got %f", got)
	}
}

func TestOvershootPositiveForRopeTuning(t *testing.T) {
	script := rig.StepScript{
		From: geom.Vec{X: 500, Y: 300},
		To:   geom.Vec{X: 800, Y: 500},
		At:   0,
	}

	result := runWithMetrics(t, script, 600, NewOvershoot())

	over := result.Metrics["overshoot"]
	if over <= 0 {
		t.Errorf("underdamped tuning should overshoot, got %f", over)
	}
	if over >= 1 {
		t.Errorf("overshoot beyond the full displacement is implausible, got %f", over)
	}
}

func TestPathLengthAtLeastStraightLine(t *testing.T) {
	target := geom.Vec{X: 800, Y: 500}
	script := rig.StepScript{From: geom.Vec{X: 500, Y: 300}, To: target, At: 0}

	r := rig.New(1000, 600)
	start1 := r.C1.Position
	start2 := r.C2.Position

	pl := NewPathLength()
	runner := rig.NewRunner(r, script)
	runner.AddMetric(pl)
	if _, err := runner.Run(context.Background(), rig.RunConfig{Frames: 600, Dt: 1}); err != nil {
		t.Fatalf("run failed: %v", err)
	}

	straight := start1.DistanceTo(target.Add(rig.OffsetC1)) + start2.DistanceTo(target.Add(rig.OffsetC2))
	if pl.Value() < straight*0.99 {
		t.Errorf("path length %f shorter than straight-line travel %f", pl.Value(), straight)
	}
}

func TestMetricsReset(t *testing.T) {
	ms := []rig.Metric{NewSettling(0.5), NewOvershoot(), NewPathLength()}
	script := rig.StepScript{From: geom.Vec{X: 500, Y: 300}, To: geom.Vec{X: 700, Y: 400}, At: 0}

	for _, m := range ms {
		runWithMetrics(t, script, 100, m)
		m.Reset()
		if m.Value() != 0 {
			t.Errorf("%s: expected 0 after reset, got %f", m.Name(), m.Value())
		}
	}
}
