package geom

// CurvePoint evaluates the cubic Bézier polynomial
//
//	B(t) = (1-t)³p0 + 3(1-t)²t·p1 + 3(1-t)t²·p2 + t³·p3
//
// componentwise. Well-behaved for any real t; callers restrict to [0,1].
func CurvePoint(t float64, p0, p1, p2, p3 Vec) Vec {
	mt := 1 - t
	a := mt * mt * mt
	b := 3 * mt * mt * t
	c := 3 * mt * t * t
	d := t * t * t
	return Vec{
		X: a*p0.X + b*p1.X + c*p2.X + d*p3.X,
		Y: a*p0.Y + b*p1.Y + c*p2.Y + d*p3.Y,
	}
}

// CurveTangent evaluates the derivative
//
//	B'(t) = 3(1-t)²(p1-p0) + 6(1-t)t(p2-p1) + 3t²(p3-p2)
//
// Same domain contract as CurvePoint.
func CurveTangent(t float64, p0, p1, p2, p3 Vec) Vec {
	mt := 1 - t
	a := 3 * mt * mt
	b := 6 * mt * t
	c := 3 * t * t
	return Vec{
		X: a*(p1.X-p0.X) + b*(p2.X-p1.X) + c*(p3.X-p2.X),
		Y: a*(p1.Y-p0.Y) + b*(p2.Y-p1.Y) + c*(p3.Y-p2.Y),
	}
}
