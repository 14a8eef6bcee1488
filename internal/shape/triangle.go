package shape

import (
	"math"

	"geoshape/internal/geom"
)

// TriangleCategory classifies a triangle by its sides.
type TriangleCategory int

const (
	// InvalidTriangle marks points that violate the triangle inequality.
	InvalidTriangle TriangleCategory = iota
	Equilateral
	Isosceles
	Scalene
)

func (c TriangleCategory) String() string {
	switch c {
	case InvalidTriangle:
		return "Invalid"
	case Equilateral:
		return "Equilateral"
	case Isosceles:
		return "Isosceles"
	case Scalene:
		return "Scalene"
	}
	return "TriangleCategory(?)"
}

// TriangleResult describes a triangle. When Category is InvalidTriangle no
// measurement is filled in.
//
// Sides are |P1P2|, |P2P3| and |P3P1|.
type TriangleResult struct {
	Category    TriangleCategory
	Sides       [3]float64
	Perimeter   float64
	Area        float64
	RightAngled bool
}

// Valid reports whether the points formed a proper triangle.
func (r TriangleResult) Valid() bool { return r.Category != InvalidTriangle }

// AnalyzeTriangle classifies the triangle p1 p2 p3.
func AnalyzeTriangle(p1, p2, p3 geom.Point) TriangleResult {
	a := geom.Distance(p1, p2)
	b := geom.Distance(p2, p3)
	c := geom.Distance(p3, p1)

	// degenerate or collinear
	if a+b <= c || a+c <= b || b+c <= a {
		Logger().Debug("triangle invalid", "p1", p1, "p2", p2, "p3", p3)
		return TriangleResult{Category: InvalidTriangle}
	}

	res := TriangleResult{Sides: [3]float64{a, b, c}}
	res.Perimeter = a + b + c
	s := res.Perimeter / 2
	res.Area = math.Sqrt(math.Max(0, s*(s-a)*(s-b)*(s-c)))

	// Equilateral must win over Isosceles.
	switch {
	case geom.ApproxEqual(a, b) && geom.ApproxEqual(b, c):
		res.Category = Equilateral
	case geom.ApproxEqual(a, b) || geom.ApproxEqual(b, c) || geom.ApproxEqual(c, a):
		res.Category = Isosceles
	default:
		res.Category = Scalene
	}

	// Squared sides share the linear tolerance on purpose; it is not scaled.
	aa, bb, cc := a*a, b*b, c*c
	res.RightAngled = geom.ApproxEqual(aa+bb, cc) || geom.ApproxEqual(aa+cc, bb) || geom.ApproxEqual(bb+cc, aa)

	Logger().Debug("triangle classified",
		"sides", res.Sides, "area", res.Area, "category", res.Category, "right", res.RightAngled)
	return res
}
