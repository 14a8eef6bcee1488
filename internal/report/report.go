// Package report turns an analyzed figure into labeled measurements, a
// verdict and an optional grid, and writes them as text.
package report

import (
	"fmt"
	"io"

	"github.com/logrusorgru/aurora"
	"github.com/pkg/errors"

	"geoshape/internal/geom"
	"geoshape/internal/grid"
	"geoshape/internal/shape"
)

// Row is one labeled measurement.
type Row struct {
	Label string
	Value string
}

// Report is the presentation of one figure.
type Report struct {
	Title   string
	Kind    geom.Kind
	Points  []geom.Point
	Rows    []Row
	Verdict string
	// Failed marks a terminal outcome: an invalid triangle or a degenerate circle.
	Failed bool
	// Properties hold extra classifications such as "Right-Angled".
	Properties []string
	Notes      []string
	// Grid is nil for terminal outcomes and for figures the grid cannot hold.
	Grid *grid.Canvas
}

func num(v float64) string { return fmt.Sprintf("%.2f", v) }

// Build resolves the figure kind, runs the matching analyzer and renders the
// grid. Terminal outcomes carry a verdict and nothing else. Only a figure
// whose kind and point count disagree is an error; a grid that cannot be
// drawn is dropped with a note.
func Build(f geom.Figure) (Report, error) {
	f, err := f.Resolve()
	if err != nil {
		return Report{}, err
	}
	r := Report{Title: title(f), Kind: f.Kind, Points: f.Points}
	p := f.Points
	switch f.Kind {
	case geom.KindLine:
		res := shape.AnalyzeLine(p[0], p[1])
		slope := "Undefined (Vertical Line)"
		if res.HasSlope {
			slope = num(res.Slope)
		}
		r.Rows = []Row{
			{"Length", num(res.Length) + " units"},
			{"Slope", slope},
		}
		r.Verdict = res.Category.String()
	case geom.KindTriangle:
		res := shape.AnalyzeTriangle(p[0], p[1], p[2])
		if !res.Valid() {
			r.Failed = true
			r.Verdict = "These points do not form a valid triangle (collinear)"
			return r, nil
		}
		s := res.Sides
		r.Rows = []Row{
			{"Side lengths", fmt.Sprintf("A=%s, B=%s, C=%s", num(s[0]), num(s[1]), num(s[2]))},
			{"Perimeter", num(res.Perimeter)},
			{"Area", num(res.Area) + " sq units"},
		}
		r.Verdict = res.Category.String() + " Triangle"
		if res.RightAngled {
			r.Properties = append(r.Properties, "Right-Angled")
		}
	case geom.KindQuad:
		res := shape.AnalyzeQuad(p[0], p[1], p[2], p[3])
		s, d := res.Sides, res.Diagonals
		r.Rows = []Row{
			{"Sides", fmt.Sprintf("%s, %s, %s, %s", num(s[0]), num(s[1]), num(s[2]), num(s[3]))},
			{"Diagonals", fmt.Sprintf("%s, %s", num(d[0]), num(d[1]))},
			{"Perimeter", num(res.Perimeter)},
		}
		r.Verdict = quadVerdict(res.Category)
		r.Notes = append(r.Notes, "points are assumed to be in cyclic order")
	case geom.KindCircle:
		res := shape.AnalyzeCircle(p[0], p[1])
		if res.Degenerate {
			r.Failed = true
			r.Verdict = "Radius is zero. This is a point, not a circle."
			return r, nil
		}
		r.Rows = []Row{
			{"Radius", num(res.Radius)},
			{"Diameter", num(res.Diameter)},
			{"Circumference", num(res.Circumference)},
			{"Area", num(res.Area)},
		}
		r.Verdict = "Circle"
		r.attachGrid(grid.RenderCircle(res.Center, res.Radius))
		return r, nil
	default:
		return Report{}, errors.Errorf("report: unsupported kind %v", f.Kind)
	}
	r.attachGrid(grid.RenderPoints(p...))
	return r, nil
}

func (r *Report) attachGrid(c *grid.Canvas, err error) {
	if err == nil {
		r.Grid = c
		return
	}
	reason := err.Error()
	switch {
	case errors.Is(err, grid.ErrTooLarge):
		reason = "canvas too large"
	case errors.Is(err, grid.ErrNotFinite):
		reason = "coordinate is not finite"
	}
	shape.Logger().Debug("grid omitted", "figure", r.Title, "err", err)
	r.Notes = append(r.Notes, "grid omitted: "+reason)
}

func title(f geom.Figure) string {
	var t string
	switch f.Kind {
	case geom.KindLine:
		t = "Line Segment Analysis"
	case geom.KindTriangle:
		t = "Triangle Classification"
	case geom.KindQuad:
		t = "Quadrilateral Classification"
	case geom.KindCircle:
		t = "Circle Analysis"
	}
	if f.Name != "" {
		t += ": " + f.Name
	}
	return t
}

func quadVerdict(c shape.QuadCategory) string {
	switch c {
	case shape.Rhombus:
		return "Rhombus (Diamond)"
	case shape.GeneralQuad:
		return "General Quadrilateral / Trapezoid"
	}
	return c.String()
}

// Write prints r. Colors come from au, so aurora.NewAurora(false) gives plain
// text. The grid is skipped when noGrid is set.
func Write(w io.Writer, r Report, au aurora.Aurora, noGrid bool) error {
	ew := &errWriter{w: w}
	ew.printf("--- %s ---\n", au.Bold(r.Title))
	for _, row := range r.Rows {
		ew.printf("%s: %s\n", row.Label, row.Value)
	}
	if r.Failed {
		ew.printf("%s\n", au.Red("Error: "+r.Verdict))
		return ew.err
	}
	ew.printf("Type: %s\n", au.Green(r.Verdict))
	for _, n := range r.Properties {
		ew.printf("Property: %s\n", au.Cyan(n))
	}
	for _, n := range r.Notes {
		ew.printf("Note: %s\n", au.Faint(n))
	}
	if r.Grid != nil && !noGrid {
		ew.printf("\n")
		for _, line := range r.Grid.Render(markStyle(au)) {
			ew.printf("%s\n", line)
		}
	}
	return ew.err
}

// markStyle colors figure markers and dims the background.
func markStyle(au aurora.Aurora) func(rune) string {
	return func(m rune) string {
		s := string(m)
		switch m {
		case grid.MarkEmpty:
			return au.Faint(s).String()
		case grid.MarkOrigin, grid.MarkXAxis, grid.MarkYAxis:
			return s
		case grid.MarkCircle:
			return au.Cyan(s).String()
		case grid.MarkCenter:
			return au.Yellow(s).String()
		}
		return au.Bold(au.Green(s)).String()
	}
}

type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) printf(format string, args ...interface{}) {
	if e.err != nil {
		return
	}
	_, e.err = fmt.Fprintf(e.w, format, args...)
}
