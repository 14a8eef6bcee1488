package shape

import (
	"bytes"
	"context"
	"log/slog"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"geoshape/internal/geom"
)

type P = geom.Point

func TestAnalyzeLine(t *testing.T) {
	cases := []struct {
		name     string
		a, b     P
		category LineCategory
		length   float64
	}{
		{"vertical", P{X: 0, Y: 0}, P{X: 0, Y: 5}, Vertical, 5},
		{"nearly vertical", P{X: 0, Y: 0}, P{X: 0.0005, Y: 5}, Vertical, math.Hypot(0.0005, 5)},
		{"horizontal", P{X: 1, Y: 2}, P{X: 5, Y: 2}, Horizontal, 4},
		{"flat slope", P{X: 0, Y: 0}, P{X: 1000, Y: 0.5}, Horizontal, math.Hypot(1000, 0.5)},
		{"ascending", P{X: 0, Y: 0}, P{X: 2, Y: 2}, Ascending, math.Sqrt(8)},
		{"descending", P{X: 0, Y: 0}, P{X: 2, Y: -1}, Descending, math.Sqrt(5)},
		{"descending leftwards", P{X: 3, Y: 0}, P{X: -1, Y: 2}, Descending, math.Sqrt(20)},
		{"coincident", P{X: 1, Y: 1}, P{X: 1, Y: 1}, Vertical, 0},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			res := AnalyzeLine(c.a, c.b)
			assert.Equal(t, c.category, res.Category)
			assert.InDelta(t, c.length, res.Length, 1e-9)
			assert.Equal(t, c.category != Vertical, res.HasSlope)
		})
	}

	res := AnalyzeLine(P{X: 0, Y: 0}, P{X: 2, Y: 1})
	assert.InDelta(t, 0.5, res.Slope, 1e-12)
	assert.Zero(t, AnalyzeLine(P{X: 0, Y: 0}, P{X: 0, Y: 9}).Slope)
}

func TestAnalyzeTriangle(t *testing.T) {
	t.Run("collinear is invalid", func(t *testing.T) {
		res := AnalyzeTriangle(P{X: 0, Y: 0}, P{X: 1, Y: 0}, P{X: 2, Y: 0})
		assert.False(t, res.Valid())
		assert.Equal(t, TriangleResult{Category: InvalidTriangle}, res, "no metrics on invalid input")
	})

	t.Run("coincident points are invalid", func(t *testing.T) {
		res := AnalyzeTriangle(P{X: 1, Y: 1}, P{X: 1, Y: 1}, P{X: 2, Y: 2})
		assert.Equal(t, InvalidTriangle, res.Category)
	})

	t.Run("equilateral", func(t *testing.T) {
		res := AnalyzeTriangle(P{X: 0, Y: 0}, P{X: 2, Y: 0}, P{X: 1, Y: 1.732})
		require.True(t, res.Valid())
		assert.Equal(t, Equilateral, res.Category)
		assert.False(t, res.RightAngled)
		assert.InDelta(t, 6, res.Perimeter, 0.001)
		assert.InDelta(t, 1.732, res.Area, 0.001)
	})

	t.Run("3-4-5", func(t *testing.T) {
		res := AnalyzeTriangle(P{X: 0, Y: 0}, P{X: 3, Y: 0}, P{X: 0, Y: 4})
		assert.Equal(t, Scalene, res.Category)
		assert.True(t, res.RightAngled)
		assert.Equal(t, [3]float64{3, 5, 4}, res.Sides)
		assert.InDelta(t, 12, res.Perimeter, 1e-12)
		assert.InDelta(t, 6, res.Area, 1e-9)
	})

	t.Run("isosceles right", func(t *testing.T) {
		res := AnalyzeTriangle(P{X: 0, Y: 0}, P{X: 2, Y: 0}, P{X: 0, Y: 2})
		assert.Equal(t, Isosceles, res.Category)
		assert.True(t, res.RightAngled)
		assert.InDelta(t, 2, res.Area, 1e-9)
	})

	t.Run("obtuse scalene", func(t *testing.T) {
		res := AnalyzeTriangle(P{X: 0, Y: 0}, P{X: 4, Y: 0}, P{X: 5, Y: 3})
		assert.Equal(t, Scalene, res.Category)
		assert.False(t, res.RightAngled)
		assert.InDelta(t, 6, res.Area, 1e-9)
	})

	t.Run("right-angle tolerance is absolute on squared sides", func(t *testing.T) {
		// far from right-angled, but the squared sides are tiny
		res := AnalyzeTriangle(P{X: 0, Y: 0}, P{X: 0.01, Y: 0}, P{X: 0.005, Y: 0.02})
		assert.Equal(t, Isosceles, res.Category)
		assert.True(t, res.RightAngled)
	})

	t.Run("idempotent", func(t *testing.T) {
		a := AnalyzeTriangle(P{X: -1, Y: 2}, P{X: 3.5, Y: 0.25}, P{X: 7, Y: 9})
		b := AnalyzeTriangle(P{X: -1, Y: 2}, P{X: 3.5, Y: 0.25}, P{X: 7, Y: 9})
		assert.Equal(t, a, b)
	})
}

func TestAnalyzeQuad(t *testing.T) {
	r3 := math.Sqrt(3)
	cases := []struct {
		name     string
		pts      [4]P
		category QuadCategory
	}{
		{"square", [4]P{{X: 0, Y: 0}, {X: 2, Y: 0}, {X: 2, Y: 2}, {X: 0, Y: 2}}, Square},
		{"square clockwise", [4]P{{X: 0, Y: 0}, {X: 0, Y: 2}, {X: 2, Y: 2}, {X: 2, Y: 0}}, Square},
		{"rhombus", [4]P{{X: 0, Y: 0}, {X: 2, Y: 0}, {X: 3, Y: r3}, {X: 1, Y: r3}}, Rhombus},
		{"rectangle", [4]P{{X: 0, Y: 0}, {X: 4, Y: 0}, {X: 4, Y: 2}, {X: 0, Y: 2}}, Rectangle},
		{"parallelogram", [4]P{{X: 0, Y: 0}, {X: 4, Y: 0}, {X: 5, Y: 2}, {X: 1, Y: 2}}, Parallelogram},
		{"kite from P2", [4]P{{X: 0, Y: 0}, {X: 1, Y: 2}, {X: 0, Y: 5}, {X: -1, Y: 2}}, Kite},
		{"kite from P1", [4]P{{X: -1, Y: 2}, {X: 0, Y: 5}, {X: 1, Y: 2}, {X: 0, Y: 0}}, Kite},
		{"general", [4]P{{X: 0, Y: 0}, {X: 4, Y: 0}, {X: 3, Y: 2}, {X: 1, Y: 3}}, GeneralQuad},
		// crossed order of a square still matches the side/diagonal heuristic
		{"crossed square", [4]P{{X: 0, Y: 0}, {X: 2, Y: 2}, {X: 2, Y: 0}, {X: 0, Y: 2}}, Rectangle},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			res := AnalyzeQuad(c.pts[0], c.pts[1], c.pts[2], c.pts[3])
			assert.Equal(t, c.category, res.Category)
		})
	}

	res := AnalyzeQuad(P{X: 0, Y: 0}, P{X: 4, Y: 0}, P{X: 4, Y: 2}, P{X: 0, Y: 2})
	assert.Equal(t, [4]float64{4, 2, 4, 2}, res.Sides)
	assert.InDelta(t, math.Sqrt(20), res.Diagonals[0], 1e-12)
	assert.InDelta(t, math.Sqrt(20), res.Diagonals[1], 1e-12)
	assert.InDelta(t, 12, res.Perimeter, 1e-12)
}

func TestAnalyzeCircle(t *testing.T) {
	res := AnalyzeCircle(P{X: 0, Y: 0}, P{X: 5, Y: 0})
	require.False(t, res.Degenerate)
	assert.Equal(t, 5.0, res.Radius)
	assert.Equal(t, 10.0, res.Diameter)
	assert.InDelta(t, 78.54, res.Area, 0.005)
	assert.InDelta(t, 31.42, res.Circumference, 0.005)

	res = AnalyzeCircle(P{X: -2, Y: 3}, P{X: 1, Y: 7})
	assert.Equal(t, 5.0, res.Radius)
	assert.Equal(t, P{X: -2, Y: 3}, res.Center)

	for _, b := range []P{{X: 1, Y: 1}, {X: 1.0005, Y: 1}} {
		res := AnalyzeCircle(P{X: 1, Y: 1}, b)
		assert.True(t, res.Degenerate, "boundary %v", b)
		assert.Equal(t, CircleResult{Center: P{X: 1, Y: 1}, Degenerate: true}, res)
	}
}

func TestCategoryStrings(t *testing.T) {
	assert.Equal(t, "Descending", Descending.String())
	assert.Equal(t, "Invalid", InvalidTriangle.String())
	assert.Equal(t, "General", GeneralQuad.String())
	assert.Equal(t, "QuadCategory(?)", QuadCategory(42).String())
}

func TestSetLogger(t *testing.T) {
	orig := Logger()
	t.Cleanup(func() { SetLogger(orig) })

	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	AnalyzeQuad(P{X: 0, Y: 0}, P{X: 2, Y: 0}, P{X: 2, Y: 2}, P{X: 0, Y: 2})
	assert.Contains(t, buf.String(), "quadrilateral classified")
	assert.Contains(t, buf.String(), "category=Square")

	SetLogger(nil)
	buf.Reset()
	AnalyzeLine(P{X: 0, Y: 0}, P{X: 1, Y: 1})
	assert.Empty(t, buf.String())
	assert.False(t, Logger().Enabled(context.Background(), slog.LevelError))
}
