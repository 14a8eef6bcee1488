package geom

import "math"

// Epsilon is the absolute tolerance behind every equality-like check on
// coordinates and measurements.
const Epsilon = 0.001

// ApproxEqual reports whether a and b differ by less than Epsilon.
func ApproxEqual(a, b float64) bool {
	return math.Abs(a-b) < Epsilon
}

// Distance returns the Euclidean distance between a and b.
func Distance(a, b Point) float64 {
	dx := b.X - a.X
	dy := b.Y - a.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// Slope returns (b.Y-a.Y)/(b.X-a.X). Callers rule out vertical pairs first.
func Slope(a, b Point) float64 {
	return (b.Y - a.Y) / (b.X - a.X)
}

// Bounds returns the extents of pts. The zero BBox is returned for an empty set.
func Bounds(pts []Point) BBox {
	var bb BBox
	for i, p := range pts {
		if i == 0 {
			bb = BBox{MinX: p.X, MinY: p.Y, MaxX: p.X, MaxY: p.Y}
			continue
		}
		if p.X < bb.MinX {
			bb.MinX = p.X
		}
		if p.Y < bb.MinY {
			bb.MinY = p.Y
		}
		if p.X > bb.MaxX {
			bb.MaxX = p.X
		}
		if p.Y > bb.MaxY {
			bb.MaxY = p.Y
		}
	}
	return bb
}
