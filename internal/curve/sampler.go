package curve

import (
	"math"

	"github.com/san-kum/curvelab/internal/geom"
)

// Default sampling parameters for a full-canvas curve.
const (
	DefaultResolution    = 0.01
	DefaultTangentCount  = 15
	DefaultTangentLength = 30.0
)

// TangentSample pairs a curve point with its unit tangent and the
// endpoints of a segment of the requested length centered on the point.
// Tangent is zero only when the true derivative is zero.
type TangentSample struct {
	Point   geom.Vec
	Tangent geom.Vec
	Start   geom.Vec
	End     geom.Vec
}

// SamplePath evaluates the curve at every multiple of resolution up
// to 1, inclusive of both endpoints; when 1 is not a multiple, a final
// sample at t = 1 is appended. The slice is rebuilt from scratch on
// every call; nothing is retained between frames.
//
// A resolution of 0.01 yields exactly 101 points, 0.3 yields 5. The
// parameter is stepped by index rather than accumulation so the
// endpoints come out exact regardless of float rounding.
func SamplePath(p0, p1, p2, p3 geom.Vec, resolution float64) []geom.Vec {
	if resolution <= 0 || resolution > 1 {
		resolution = DefaultResolution
	}

	steps := int(math.Floor(1/resolution + 1e-9))
	last := float64(steps) * resolution

	points := make([]geom.Vec, 0, steps+2)
	for i := 0; i <= steps; i++ {
		t := float64(i) * resolution
		if i == steps && last > 1-1e-9 {
			t = 1
		}
		points = append(points, geom.CurvePoint(t, p0, p1, p2, p3))
	}
	if last <= 1-1e-9 {
		points = append(points, geom.CurvePoint(1, p0, p1, p2, p3))
	}

	return points
}

// SampleTangents evaluates the curve and its unit tangent at
// t = i/count for i = 0..count, producing count+1 samples. Each sample
// carries a segment of the given pixel length centered on the point,
// ready for overlay rendering.
func SampleTangents(p0, p1, p2, p3 geom.Vec, count int, length float64) []TangentSample {
	if count < 1 {
		count = DefaultTangentCount
	}

	samples := make([]TangentSample, 0, count+1)

	for i := 0; i <= count; i++ {
		t := float64(i) / float64(count)
		point := geom.CurvePoint(t, p0, p1, p2, p3)
		tangent := geom.CurveTangent(t, p0, p1, p2, p3).Normalize()

		half := tangent.Scale(length / 2)
		samples = append(samples, TangentSample{
			Point:   point,
			Tangent: tangent,
			Start:   point.Sub(half),
			End:     point.Add(half),
		})
	}

	return samples
}
