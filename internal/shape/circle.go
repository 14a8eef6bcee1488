package shape

import (
	"math"

	"geoshape/internal/geom"
)

// CircleResult describes a circle given by its center and one boundary point.
// A Degenerate result carries the center only.
type CircleResult struct {
	Center        geom.Point
	Degenerate    bool
	Radius        float64
	Diameter      float64
	Circumference float64
	Area          float64
}

// AnalyzeCircle measures the circle through boundary centered at center.
func AnalyzeCircle(center, boundary geom.Point) CircleResult {
	r := geom.Distance(center, boundary)
	if geom.ApproxEqual(r, 0) {
		Logger().Debug("circle degenerate", "center", center)
		return CircleResult{Center: center, Degenerate: true}
	}
	res := CircleResult{
		Center:        center,
		Radius:        r,
		Diameter:      2 * r,
		Circumference: 2 * math.Pi * r,
		Area:          math.Pi * r * r,
	}
	Logger().Debug("circle measured", "center", center, "radius", r)
	return res
}
