package curve_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/curvelab/internal/curve"
	"github.com/san-kum/curvelab/internal/geom"
)

var _ = Describe("SamplePath", func() {
	p0 := geom.Vec{X: 200, Y: 300}
	p1 := geom.Vec{X: 350, Y: 200}
	p2 := geom.Vec{X: 650, Y: 400}
	p3 := geom.Vec{X: 800, Y: 300}

	It("returns exactly 101 points at the default resolution", func() {
		points := curve.SamplePath(p0, p1, p2, p3, 0.01)
		Expect(points).To(HaveLen(101))
	})

	It("starts at p0 and ends at p3 exactly", func() {
		points := curve.SamplePath(p0, p1, p2, p3, 0.01)
		Expect(points[0]).To(Equal(p0))
		Expect(points[len(points)-1]).To(Equal(p3))
	})

	It("passes through the hand-computed midpoint", func() {
		// B(0.5) = (p0 + 3p1 + 3p2 + p3) / 8 = (500, 300)
		points := curve.SamplePath(p0, p1, p2, p3, 0.01)
		mid := points[50]
		Expect(mid.X).To(BeNumerically("~", 500, 1e-9))
		Expect(mid.Y).To(BeNumerically("~", 300, 1e-9))
	})

	It("is deterministic for identical inputs", func() {
		a := curve.SamplePath(p0, p1, p2, p3, 0.01)
		b := curve.SamplePath(p0, p1, p2, p3, 0.01)
		Expect(a).To(Equal(b))
	})

	It("falls back to the default resolution on nonsense input", func() {
		Expect(curve.SamplePath(p0, p1, p2, p3, 0)).To(HaveLen(101))
		Expect(curve.SamplePath(p0, p1, p2, p3, -1)).To(HaveLen(101))
	})

	It("handles coarser resolutions inclusively", func() {
		points := curve.SamplePath(p0, p1, p2, p3, 0.25)
		Expect(points).To(HaveLen(5))
		Expect(points[0]).To(Equal(p0))
		Expect(points[4]).To(Equal(p3))
	})

	It("keeps every interior multiple when 1 is not a multiple of the resolution", func() {
		// t = 0, 0.3, 0.6, 0.9, then the closing sample at 1.
		points := curve.SamplePath(p0, p1, p2, p3, 0.3)
		Expect(points).To(HaveLen(5))
		Expect(points[0]).To(Equal(p0))
		Expect(points[4]).To(Equal(p3))

		want := geom.CurvePoint(0.9, p0, p1, p2, p3)
		Expect(points[3].X).To(BeNumerically("~", want.X, 1e-9))
		Expect(points[3].Y).To(BeNumerically("~", want.Y, 1e-9))
	})
})

var _ = Describe("SampleTangents", func() {
	p0 := geom.Vec{X: 200, Y: 300}
	p1 := geom.Vec{X: 350, Y: 200}
	p2 := geom.Vec{X: 650, Y: 400}
	p3 := geom.Vec{X: 800, Y: 300}

	It("returns count+1 samples", func() {
		samples := curve.SampleTangents(p0, p1, p2, p3, 15, 30)
		Expect(samples).To(HaveLen(16))
	})

	It("produces unit tangents everywhere on a regular curve", func() {
		samples := curve.SampleTangents(p0, p1, p2, p3, 15, 30)
		for _, s := range samples {
			Expect(s.Tangent.Length()).To(BeNumerically("~", 1, 1e-12))
		}
	})

	It("centers each overlay segment on its sample point", func() {
		samples := curve.SampleTangents(p0, p1, p2, p3, 15, 30)
		for _, s := range samples {
			mid := s.Start.Add(s.End).Scale(0.5)
			Expect(mid.X).To(BeNumerically("~", s.Point.X, 1e-9))
			Expect(mid.Y).To(BeNumerically("~", s.Point.Y, 1e-9))
			Expect(s.Start.DistanceTo(s.End)).To(BeNumerically("~", 30, 1e-9))
		}
	})

	It("yields zero tangents only on a degenerate curve", func() {
		p := geom.Vec{X: 10, Y: 10}
		samples := curve.SampleTangents(p, p, p, p, 15, 30)
		for _, s := range samples {
			Expect(s.Tangent).To(Equal(geom.Vec{}))
			Expect(s.Start).To(Equal(p))
			Expect(s.End).To(Equal(p))
		}
	})
})
