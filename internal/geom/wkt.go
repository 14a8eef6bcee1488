package geom

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// ParseWKT parses a subset of WKT into a figure of unspecified kind.
// Supported: POINT(x y), MULTIPOINT(x y, ...), LINESTRING(x y, ...), POLYGON((x y, ...)).
// Only the outer polygon ring is kept and its closing vertex is dropped.
func ParseWKT(wkt string) (Figure, error) {
	s := strings.TrimSpace(wkt)
	if s == "" {
		return Figure{}, errors.New("empty wkt")
	}
	up := strings.ToUpper(s)
	parseTuples := func(block string) ([]Point, error) {
		var out []Point
		// split by comma into tuples "x y"
		for _, tup := range strings.Split(block, ",") {
			parts := strings.Fields(strings.Trim(strings.TrimSpace(tup), "()"))
			if len(parts) == 0 {
				continue
			}
			if len(parts) < 2 {
				return nil, errors.Errorf("wkt: bad coordinate %q", strings.TrimSpace(tup))
			}
			x, err := strconv.ParseFloat(parts[0], 64)
			if err != nil {
				return nil, errors.Wrapf(err, "wkt: bad x in %q", tup)
			}
			y, err := strconv.ParseFloat(parts[1], 64)
			if err != nil {
				return nil, errors.Wrapf(err, "wkt: bad y in %q", tup)
			}
			out = append(out, Point{X: x, Y: y})
		}
		return out, nil
	}
	var (
		pts []Point
		err error
	)
	switch {
	case strings.HasPrefix(up, "MULTIPOINT"), strings.HasPrefix(up, "POINT"), strings.HasPrefix(up, "LINESTRING"):
		i := strings.Index(s, "(")
		j := strings.LastIndex(s, ")")
		if i < 0 || j <= i {
			return Figure{}, errors.New("wkt: missing coordinate list")
		}
		pts, err = parseTuples(s[i+1 : j])
	case strings.HasPrefix(up, "POLYGON"):
		i := strings.Index(s, "((")
		j := strings.Index(s, ")")
		if i < 0 || j <= i {
			return Figure{}, errors.New("wkt polygon: invalid")
		}
		pts, err = parseTuples(s[i+2 : j])
		if n := len(pts); err == nil && n > 1 && pts[0] == pts[n-1] {
			pts = pts[:n-1]
		}
	default:
		return Figure{}, errors.New("unsupported wkt type")
	}
	if err != nil {
		return Figure{}, err
	}
	if len(pts) == 0 {
		return Figure{}, errors.New("wkt: no coordinates parsed")
	}
	return Figure{Points: pts}, nil
}

// loadWKT reads one WKT geometry per non-empty line.
func loadWKT(data []byte) ([]Figure, error) {
	var figs []Figure
	for n, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		f, err := ParseWKT(line)
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", n+1)
		}
		figs = append(figs, f)
	}
	return figs, nil
}
