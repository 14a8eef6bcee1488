package shape

import "geoshape/internal/geom"

// QuadCategory is the side/diagonal estimate of a quadrilateral.
type QuadCategory int

const (
	Square QuadCategory = iota
	Rhombus
	Rectangle
	Parallelogram
	Kite
	GeneralQuad
)

func (c QuadCategory) String() string {
	switch c {
	case Square:
		return "Square"
	case Rhombus:
		return "Rhombus"
	case Rectangle:
		return "Rectangle"
	case Parallelogram:
		return "Parallelogram"
	case Kite:
		return "Kite"
	case GeneralQuad:
		return "General"
	}
	return "QuadCategory(?)"
}

// QuadResult describes a quadrilateral. Sides run P1P2, P2P3, P3P4, P4P1;
// diagonals are P1P3 and P2P4.
type QuadResult struct {
	Sides     [4]float64
	Diagonals [2]float64
	Perimeter float64
	Category  QuadCategory
}

// AnalyzeQuad classifies four points given in cyclic order. The order is not
// checked, and the test only compares side and diagonal lengths, so crossed or
// concave inputs can land in any category.
func AnalyzeQuad(p1, p2, p3, p4 geom.Point) QuadResult {
	s1 := geom.Distance(p1, p2)
	s2 := geom.Distance(p2, p3)
	s3 := geom.Distance(p3, p4)
	s4 := geom.Distance(p4, p1)
	d1 := geom.Distance(p1, p3)
	d2 := geom.Distance(p2, p4)
	eq := geom.ApproxEqual

	res := QuadResult{
		Sides:     [4]float64{s1, s2, s3, s4},
		Diagonals: [2]float64{d1, d2},
		Perimeter: s1 + s2 + s3 + s4,
	}
	// first match wins
	switch {
	case eq(s1, s2) && eq(s2, s3) && eq(s3, s4):
		if eq(d1, d2) {
			res.Category = Square
		} else {
			res.Category = Rhombus
		}
	case eq(s1, s3) && eq(s2, s4):
		if eq(d1, d2) {
			res.Category = Rectangle
		} else {
			res.Category = Parallelogram
		}
	case (eq(s1, s2) && eq(s3, s4)) || (eq(s2, s3) && eq(s4, s1)):
		res.Category = Kite
	default:
		res.Category = GeneralQuad
	}
	Logger().Debug("quadrilateral classified",
		"sides", res.Sides, "diagonals", res.Diagonals, "category", res.Category)
	return res
}
