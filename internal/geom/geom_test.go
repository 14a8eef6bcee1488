package geom

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDistance(t *testing.T) {
	pts := []Point{{0, 0}, {3, 4}, {-2.5, 7}, {1e6, -1e6}, {0.001, 0.002}}
	for _, a := range pts {
		assert.Zero(t, Distance(a, a))
		for _, b := range pts {
			assert.Equal(t, Distance(a, b), Distance(b, a), "distance %v-%v must be symmetric", a, b)
		}
	}
	assert.InDelta(t, 5, Distance(Point{0, 0}, Point{3, 4}), 1e-12)
	assert.InDelta(t, 5, Distance(Point{-1, -1}, Point{-4, -5}), 1e-12)
}

func TestApproxEqual(t *testing.T) {
	for _, x := range []float64{0, 1, -5, 123.456} {
		assert.True(t, ApproxEqual(x, x))
		assert.True(t, ApproxEqual(x, x+0.0009), "x=%g", x)
		assert.True(t, ApproxEqual(x+0.0009, x), "x=%g", x)
		assert.False(t, ApproxEqual(x, x+0.0011), "x=%g", x)
		assert.False(t, ApproxEqual(x-0.0011, x), "x=%g", x)
	}
}

func TestSlope(t *testing.T) {
	assert.InDelta(t, 1, Slope(Point{0, 0}, Point{2, 2}), 1e-12)
	assert.InDelta(t, -0.5, Slope(Point{0, 0}, Point{-4, 2}), 1e-12)
	assert.Zero(t, Slope(Point{1, 3}, Point{5, 3}))
}

func TestBounds(t *testing.T) {
	assert.Equal(t, BBox{}, Bounds(nil))
	assert.Equal(t, BBox{MinX: 2, MinY: 3, MaxX: 2, MaxY: 3}, Bounds([]Point{{2, 3}}))
	bb := Bounds([]Point{{1, 5}, {-2, 0.5}, {4, -3}})
	assert.Equal(t, BBox{MinX: -2, MinY: -3, MaxX: 4, MaxY: 5}, bb)
}

func TestParseKind(t *testing.T) {
	cases := map[string]Kind{
		"":              KindAuto,
		"auto":          KindAuto,
		"Line":          KindLine,
		"segment":       KindLine,
		"tri":           KindTriangle,
		"TRIANGLE":      KindTriangle,
		"quad":          KindQuad,
		"quadrilateral": KindQuad,
		" circle ":      KindCircle,
	}
	for in, want := range cases {
		got, err := ParseKind(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	_, err := ParseKind("hexagon")
	assert.EqualError(t, err, `unknown figure kind "hexagon"`)
}

func TestFigureResolve(t *testing.T) {
	two := []Point{{0, 0}, {1, 1}}
	three := append(two, Point{2, 0})
	four := append(three, Point{3, 3})

	t.Run("inferred", func(t *testing.T) {
		for want, pts := range map[Kind][]Point{KindLine: two, KindTriangle: three, KindQuad: four} {
			f, err := Figure{Points: pts}.Resolve()
			require.NoError(t, err)
			assert.Equal(t, want, f.Kind)
		}
	})

	t.Run("circle is explicit", func(t *testing.T) {
		f, err := Figure{Kind: KindCircle, Points: two}.Resolve()
		require.NoError(t, err)
		assert.Equal(t, KindCircle, f.Kind)
	})

	t.Run("count mismatch", func(t *testing.T) {
		_, err := Figure{Kind: KindTriangle, Points: two}.Resolve()
		assert.ErrorIs(t, err, ErrPointCount)
		_, err = Figure{Points: []Point{{1, 1}}}.Resolve()
		assert.ErrorIs(t, err, ErrPointCount)
		_, err = Figure{Points: append(four, Point{9, 9})}.Resolve()
		assert.ErrorIs(t, err, ErrPointCount)
	})
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "quadrilateral", KindQuad.String())
	assert.Equal(t, "Kind(9)", Kind(9).String())
	assert.Equal(t, 2, KindCircle.Arity())
	assert.Equal(t, 0, KindAuto.Arity())
}
