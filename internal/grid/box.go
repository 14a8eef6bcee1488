package grid

import (
	"math"

	"github.com/pkg/errors"

	"geoshape/internal/geom"
)

// Padding is the margin, in cells, added around every bounding box.
const Padding = 2

// MaxPoints is the largest labeled point set the renderer accepts.
const MaxPoints = 4

// MaxCells caps the canvas area so absurd coordinates fail instead of
// allocating without bound.
const MaxCells = 1 << 20

var (
	ErrPointCount = errors.New("grid: need 1 to 4 points")
	ErrTooLarge   = errors.New("grid: canvas too large")
	ErrNotFinite  = errors.New("grid: coordinate is not finite")
)

// Box is an inclusive integer extent of grid cells.
type Box struct {
	MinX, MaxX int
	MinY, MaxY int
}

func (b Box) Width() int  { return b.MaxX - b.MinX + 1 }
func (b Box) Height() int { return b.MaxY - b.MinY + 1 }

// Contains reports whether the cell (x, y) lies inside the box.
func (b Box) Contains(x, y int) bool {
	return x >= b.MinX && x <= b.MaxX && y >= b.MinY && y <= b.MaxY
}

func (b Box) check() error {
	if w, h := b.Width(), b.Height(); w <= 0 || h <= 0 || w*h > MaxCells {
		return errors.Wrapf(ErrTooLarge, "%d x %d cells", w, h)
	}
	return nil
}

// checkCoords rejects NaN and infinities, and finite values too far out for
// any canvas under MaxCells.
func checkCoords(vs ...float64) error {
	for _, v := range vs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return ErrNotFinite
		}
		if math.Abs(v) > MaxCells {
			return errors.Wrapf(ErrTooLarge, "coordinate %g out of range", v)
		}
	}
	return nil
}

// PointBox returns the box around 1 to 4 points: truncated coordinates,
// stretched to hold the origin, then padded.
func PointBox(pts ...geom.Point) (Box, error) {
	if len(pts) == 0 || len(pts) > MaxPoints {
		return Box{}, errors.Wrapf(ErrPointCount, "got %d", len(pts))
	}
	for _, p := range pts {
		if err := checkCoords(p.X, p.Y); err != nil {
			return Box{}, errors.Wrapf(err, "point %v", p)
		}
	}
	x0, y0 := int(pts[0].X), int(pts[0].Y)
	b := Box{MinX: x0, MaxX: x0, MinY: y0, MaxY: y0}
	for _, p := range pts[1:] {
		x, y := int(p.X), int(p.Y)
		if x < b.MinX {
			b.MinX = x
		}
		if x > b.MaxX {
			b.MaxX = x
		}
		if y < b.MinY {
			b.MinY = y
		}
		if y > b.MaxY {
			b.MaxY = y
		}
	}
	// keep the origin visible
	if b.MinX > 0 {
		b.MinX = 0
	}
	if b.MaxX < 0 {
		b.MaxX = 0
	}
	if b.MinY > 0 {
		b.MinY = 0
	}
	if b.MaxY < 0 {
		b.MaxY = 0
	}
	b.MinX -= Padding
	b.MaxX += Padding
	b.MinY -= Padding
	b.MaxY += Padding
	return b, b.check()
}

// CircleBox returns the box around a circle. Center and radius are truncated
// separately and the origin is not forced into view, unlike PointBox.
func CircleBox(center geom.Point, radius float64) (Box, error) {
	if err := checkCoords(center.X, center.Y, radius); err != nil {
		return Box{}, errors.Wrapf(err, "center %v radius %g", center, radius)
	}
	cx, cy, r := int(center.X), int(center.Y), int(radius)
	b := Box{
		MinX: cx - r - Padding,
		MaxX: cx + r + Padding,
		MinY: cy - r - Padding,
		MaxY: cy + r + Padding,
	}
	return b, b.check()
}
