package geom

import (
	"math"
	"math/rand"
	"testing"
)

func TestCurvePointEndpoints(t *testing.T) {
	p0 := Vec{-3, 7}
	p1 := Vec{120, -44}
	p2 := Vec{0.5, 900}
	p3 := Vec{61, 61}

	if got := CurvePoint(0, p0, p1, p2, p3); got != p0 {
		t.Errorf("expected B(0)=p0, got (%f, %f)", got.X, got.Y)
	}
	if got := CurvePoint(1, p0, p1, p2, p3); got != p3 {
		t.Errorf("expected B(1)=p3, got (%f, %f)", got.X, got.Y)
	}
}

func TestCurvePointDegenerate(t *testing.T) {
	p := Vec{42, -17}

	for _, tt := range []float64{0, 0.1, 0.25, 0.5, 0.9, 1} {
		got := CurvePoint(tt, p, p, p, p)
		if math.Abs(got.X-p.X) > 1e-12 || math.Abs(got.Y-p.Y) > 1e-12 {
			t.Errorf("t=%f: expected (%f, %f), got (%f, %f)", tt, p.X, p.Y, got.X, got.Y)
		}
	}
}

// CurveTangent should match the central difference of CurvePoint.
func TestCurveTangentMatchesNumericalDerivative(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	const h = 1e-6

	for trial := 0; trial < 50; trial++ {
		p0 := randVec(rng)
		p1 := randVec(rng)
		p2 := randVec(rng)
		p3 := randVec(rng)

		for _, tt := range []float64{0.05, 0.25, 0.5, 0.75, 0.95} {
			analytic := CurveTangent(tt, p0, p1, p2, p3)

			hi := CurvePoint(tt+h, p0, p1, p2, p3)
			lo := CurvePoint(tt-h, p0, p1, p2, p3)
			numeric := hi.Sub(lo).Scale(1 / (2 * h))

			if math.Abs(analytic.X-numeric.X) > 1e-4 || math.Abs(analytic.Y-numeric.Y) > 1e-4 {
				t.Fatalf("trial %d t=%f: analytic (%f, %f) vs numeric (%f, %f)",
					trial, tt, analytic.X, analytic.Y, numeric.X, numeric.Y)
			}
		}
	}
}

func TestCurvePointMidpointKnownValue(t *testing.T) {
	// B(0.5) = (p0 + 3p1 + 3p2 + p3) / 8
	p0 := Vec{200, 300}
	p1 := Vec{350, 200}
	p2 := Vec{650, 400}
	p3 := Vec{800, 300}

	got := CurvePoint(0.5, p0, p1, p2, p3)

	if math.Abs(got.X-500) > 1e-9 || math.Abs(got.Y-300) > 1e-9 {
		t.Errorf("expected (500, 300), got (%f, %f)", got.X, got.Y)
	}
}

func randVec(rng *rand.Rand) Vec {
	return Vec{rng.Float64()*1000 - 500, rng.Float64()*1000 - 500}
}
