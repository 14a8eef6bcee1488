// Package grid plots labeled points and circles on a text grid with one cell
// per integer coordinate. Rows run from the largest y at the top down to the
// smallest, each prefixed with its y label.
package grid

import (
	"fmt"
	"math"
	"strings"

	"geoshape/internal/geom"
)

// Cell markers.
const (
	MarkEmpty  = '.'
	MarkOrigin = '+'
	MarkYAxis  = '|'
	MarkXAxis  = '-'
	MarkCircle = 'O'
	MarkCenter = 'C'
)

// circleBand is how far a cell center may sit from the circumference and still be drawn on it.
const circleBand = 0.6

// Canvas is a rendered grid. Cells are addressed in figure coordinates.
type Canvas struct {
	Box   Box
	cells [][]rune // cells[0] holds Box.MaxY
	rule  bool     // x-axis rule under the last row
}

func newCanvas(b Box) *Canvas {
	cells := make([][]rune, b.Height())
	for i := range cells {
		cells[i] = make([]rune, b.Width())
	}
	return &Canvas{Box: b, cells: cells}
}

func (c *Canvas) set(x, y int, r rune) {
	if !c.Box.Contains(x, y) {
		return
	}
	c.cells[c.Box.MaxY-y][x-c.Box.MinX] = r
}

// At returns the marker drawn at (x, y), or 0 outside the canvas.
func (c *Canvas) At(x, y int) rune {
	if !c.Box.Contains(x, y) {
		return 0
	}
	return c.cells[c.Box.MaxY-y][x-c.Box.MinX]
}

// background is the marker for a cell no figure claimed.
func background(x, y int) rune {
	switch {
	case x == 0 && y == 0:
		return MarkOrigin
	case x == 0:
		return MarkYAxis
	case y == 0:
		return MarkXAxis
	}
	return MarkEmpty
}

// RenderPoints plots 1 to 4 points labeled by their 1-based position. When two
// points share a cell the lower label wins.
func RenderPoints(pts ...geom.Point) (*Canvas, error) {
	b, err := PointBox(pts...)
	if err != nil {
		return nil, err
	}
	c := newCanvas(b)
	c.rule = true
	for y := b.MaxY; y >= b.MinY; y-- {
		for x := b.MinX; x <= b.MaxX; x++ {
			mark := background(x, y)
			for i, p := range pts {
				if int(p.X) == x && int(p.Y) == y {
					mark = rune('1' + i)
					break
				}
			}
			c.set(x, y, mark)
		}
	}
	return c, nil
}

// RenderCircle plots the circumference of a circle and its truncated center.
// The circumference wins over the center marker.
func RenderCircle(center geom.Point, radius float64) (*Canvas, error) {
	b, err := CircleBox(center, radius)
	if err != nil {
		return nil, err
	}
	c := newCanvas(b)
	cx, cy := int(center.X), int(center.Y)
	for y := b.MaxY; y >= b.MinY; y-- {
		for x := b.MinX; x <= b.MaxX; x++ {
			d := geom.Distance(center, geom.Point{X: float64(x), Y: float64(y)})
			switch {
			case math.Abs(d-radius) < circleBand:
				c.set(x, y, MarkCircle)
			case x == cx && y == cy:
				c.set(x, y, MarkCenter)
			default:
				c.set(x, y, background(x, y))
			}
		}
	}
	return c, nil
}

// Render returns the canvas rows top to bottom. style, when non-nil, turns each
// marker into its printed form; the default is the marker itself.
func (c *Canvas) Render(style func(r rune) string) []string {
	out := make([]string, 0, len(c.cells)+1)
	var sb strings.Builder
	for i, row := range c.cells {
		sb.Reset()
		fmt.Fprintf(&sb, "%3d | ", c.Box.MaxY-i)
		for _, r := range row {
			if style != nil {
				sb.WriteString(style(r))
			} else {
				sb.WriteRune(r)
			}
			sb.WriteByte(' ')
		}
		out = append(out, sb.String())
	}
	if c.rule {
		out = append(out, "      "+strings.Repeat("--", c.Box.Width()))
	}
	return out
}

// Ruled reports whether Render ends with an x-axis rule.
func (c *Canvas) Ruled() bool { return c.rule }

// Lines returns the plain rows.
func (c *Canvas) Lines() []string { return c.Render(nil) }

func (c *Canvas) String() string {
	return strings.Join(c.Lines(), "\n") + "\n"
}
