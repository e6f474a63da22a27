package rig

import (
	"math"
	"testing"
	"time"

	"github.com/san-kum/curvelab/internal/geom"
)

func TestNewEndpointPlacement(t *testing.T) {
	r := New(1000, 600)
	p0, _, _, p3 := r.Points()

	if p0.X != 200 || p0.Y != 300 {
		t.Errorf("expected p0=(200,300), got (%f,%f)", p0.X, p0.Y)
	}
	if p3.X != 800 || p3.Y != 300 {
		t.Errorf("expected p3=(800,300), got (%f,%f)", p3.X, p3.Y)
	}
}

func TestEndpointsNeverMove(t *testing.T) {
	r := New(1000, 600)
	p0Before, _, _, p3Before := r.Points()

	for i := 0; i < 100; i++ {
		r.Step(geom.Vec{X: float64(i * 13 % 1000), Y: float64(i * 7 % 600)}, 1)
	}

	p0After, _, _, p3After := r.Points()
	if p0Before != p0After || p3Before != p3After {
		t.Error("fixed endpoints moved during stepping")
	}
}

func TestStepAppliesTargetOffsets(t *testing.T) {
	r := New(1000, 600)
	pointer := geom.Vec{X: 500, Y: 300}

	r.Step(pointer, 1)

	want1 := pointer.Add(OffsetC1)
	want2 := pointer.Add(OffsetC2)
	if r.C1.Target != want1 {
		t.Errorf("expected C1 target %v, got %v", want1, r.C1.Target)
	}
	if r.C2.Target != want2 {
		t.Errorf("expected C2 target %v, got %v", want2, r.C2.Target)
	}
}

func TestStepClampsDt(t *testing.T) {
	big := New(1000, 600)
	clamped := New(1000, 600)
	pointer := geom.Vec{X: 900, Y: 100}

	big.Step(pointer, 50)
	clamped.Step(pointer, MaxFrameScale)

	if big.C1.Position != clamped.C1.Position {
		t.Errorf("dt=50 should behave as dt=%.0f: %v vs %v",
			MaxFrameScale, big.C1.Position, clamped.C1.Position)
	}

	frozen := New(1000, 600)
	before := frozen.C1.Position
	frozen.Step(pointer, -1)
	if frozen.C1.Position != before {
		t.Error("negative dt should not move the control point")
	}
}

func TestStepConvergesOnHeldPointer(t *testing.T) {
	r := New(1000, 600)
	pointer := geom.Vec{X: 500, Y: 300}

	for i := 0; i < 500; i++ {
		r.Step(pointer, 1)
	}

	if d := r.C1.Displacement(); d > 0.01 {
		t.Errorf("C1 not settled: displacement %f", d)
	}
	if d := r.C2.Displacement(); d > 0.01 {
		t.Errorf("C2 not settled: displacement %f", d)
	}
}

func TestPathAndTangentsUseCurrentPositions(t *testing.T) {
	r := New(1000, 600)

	path := r.Path(0.01)
	if len(path) != 101 {
		t.Fatalf("expected 101 path points, got %d", len(path))
	}
	p0, _, _, p3 := r.Points()
	if path[0] != p0 || path[100] != p3 {
		t.Error("path endpoints do not match rig endpoints")
	}

	tangents := r.Tangents(15, 30)
	if len(tangents) != 16 {
		t.Fatalf("expected 16 tangent samples, got %d", len(tangents))
	}
	for _, s := range tangents {
		if l := s.Tangent.Length(); math.Abs(l-1) > 1e-9 {
			t.Errorf("tangent not unit length: %f", l)
		}
	}
}

func TestFrameScale(t *testing.T) {
	tests := []struct {
		elapsed time.Duration
		want    float64
		tol     float64
	}{
		{16670 * time.Microsecond, 1.0, 1e-3},
		{8335 * time.Microsecond, 0.5, 1e-3},
		{time.Second, 2.0, 0}, // clamped
		{0, 0, 0},
	}

	for _, tt := range tests {
		got := FrameScale(tt.elapsed)
		if math.Abs(got-tt.want) > tt.tol {
			t.Errorf("FrameScale(%v): expected %f, got %f", tt.elapsed, tt.want, got)
		}
	}
}
