// Package shape classifies line segments, triangles, quadrilaterals and
// circles from raw coordinates.
//
// Every equality-like decision goes through geom.ApproxEqual, and every
// classifier is a pure function of its input points.
package shape

import "geoshape/internal/geom"

// LineCategory is the orientation of a segment.
type LineCategory int

const (
	Vertical LineCategory = iota
	Horizontal
	Ascending
	Descending
)

func (c LineCategory) String() string {
	switch c {
	case Vertical:
		return "Vertical"
	case Horizontal:
		return "Horizontal"
	case Ascending:
		return "Ascending"
	case Descending:
		return "Descending"
	}
	return "LineCategory(?)"
}

// LineResult describes a segment. Slope is only meaningful when HasSlope is set.
type LineResult struct {
	Length   float64
	Slope    float64
	HasSlope bool
	Category LineCategory
}

// AnalyzeLine classifies the segment a-b. Coincident points are accepted and
// yield a zero length.
func AnalyzeLine(a, b geom.Point) LineResult {
	res := LineResult{Length: geom.Distance(a, b)}
	// vertical first: the slope would divide by ~0
	if geom.ApproxEqual(a.X, b.X) {
		res.Category = Vertical
	} else {
		res.Slope = geom.Slope(a, b)
		res.HasSlope = true
		switch {
		case geom.ApproxEqual(res.Slope, 0):
			res.Category = Horizontal
		case res.Slope > 0:
			res.Category = Ascending
		default:
			res.Category = Descending
		}
	}
	Logger().Debug("line classified", "a", a, "b", b, "length", res.Length, "category", res.Category)
	return res
}
