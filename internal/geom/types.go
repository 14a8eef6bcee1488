package geom

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

// Point is a planar coordinate pair.
type Point struct {
	X float64
	Y float64
}

func (p Point) String() string {
	return fmt.Sprintf("(%g, %g)", p.X, p.Y)
}

// BBox holds real-valued extents of a point set.
type BBox struct {
	MinX float64
	MinY float64
	MaxX float64
	MaxY float64
}

// Kind names the analysis a figure is meant for.
type Kind int

const (
	KindAuto Kind = iota
	KindLine
	KindTriangle
	KindQuad
	KindCircle
)

var kindNames = [...]string{
	KindAuto:     "auto",
	KindLine:     "line",
	KindTriangle: "triangle",
	KindQuad:     "quadrilateral",
	KindCircle:   "circle",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// Arity is the number of points a figure of this kind is built from, or 0 for KindAuto.
func (k Kind) Arity() int {
	switch k {
	case KindLine, KindCircle:
		return 2
	case KindTriangle:
		return 3
	case KindQuad:
		return 4
	}
	return 0
}

// ParseKind accepts the kind names used in figure files and on the command line.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "auto":
		return KindAuto, nil
	case "line", "segment":
		return KindLine, nil
	case "triangle", "tri":
		return KindTriangle, nil
	case "quad", "quadrilateral":
		return KindQuad, nil
	case "circle":
		return KindCircle, nil
	}
	return KindAuto, errors.Errorf("unknown figure kind %q", s)
}

// Figure is a named point set waiting to be analyzed.
// For circles the first point is the center and the second lies on the circumference.
type Figure struct {
	Name   string
	Kind   Kind
	Points []Point
}

// ErrPointCount reports a point set whose size fits no analysis.
var ErrPointCount = errors.New("wrong number of points")

// Resolve returns the figure with an explicit kind. Auto is inferred from the
// point count; a circle is never inferred.
func (f Figure) Resolve() (Figure, error) {
	n := len(f.Points)
	if f.Kind == KindAuto {
		switch n {
		case 2:
			f.Kind = KindLine
		case 3:
			f.Kind = KindTriangle
		case 4:
			f.Kind = KindQuad
		default:
			return f, errors.Wrapf(ErrPointCount, "%d points (want 2, 3 or 4)", n)
		}
		return f, nil
	}
	if want := f.Kind.Arity(); n != want {
		return f, errors.Wrapf(ErrPointCount, "%s needs %d points, got %d", f.Kind, want, n)
	}
	return f, nil
}
