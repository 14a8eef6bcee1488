package geom

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"unicode"

	"github.com/pkg/errors"
)

func splitNumbers(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return unicode.IsSpace(r) || strings.ContainsRune(",;()[]", r)
	})
}

func parseNumbers(s string) ([]float64, error) {
	fields := splitNumbers(s)
	out := make([]float64, 0, len(fields))
	for _, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return nil, errors.Errorf("not a number: %q", f)
		}
		out = append(out, v)
	}
	return out, nil
}

// ParsePoint reads a single coordinate pair such as "3,4", "3 4" or "(3, 4)".
func ParsePoint(s string) (Point, error) {
	vals, err := parseNumbers(s)
	if err != nil {
		return Point{}, err
	}
	if len(vals) != 2 {
		return Point{}, errors.Errorf("point %q: want 2 coordinates, got %d", s, len(vals))
	}
	return Point{X: vals[0], Y: vals[1]}, nil
}

// ParsePoints reads a list of points from free text. Text that starts with a
// WKT keyword is handed to ParseWKT; otherwise numbers are paired in order.
func ParsePoints(text string) ([]Point, error) {
	s := strings.TrimSpace(text)
	if s == "" {
		return nil, errors.New("no coordinates")
	}
	if unicode.IsLetter(rune(s[0])) {
		f, err := ParseWKT(s)
		if err != nil {
			return nil, err
		}
		return f.Points, nil
	}
	vals, err := parseNumbers(s)
	if err != nil {
		return nil, err
	}
	if len(vals)%2 != 0 {
		return nil, errors.Errorf("odd number of coordinates (%d)", len(vals))
	}
	pts := make([]Point, 0, len(vals)/2)
	for i := 0; i < len(vals); i += 2 {
		pts = append(pts, Point{X: vals[i], Y: vals[i+1]})
	}
	return pts, nil
}

// Formats lists the file extensions Load understands.
var Formats = []string{".wkt", ".csv", ".geojson", ".json", ".kml", ".yaml", ".yml"}

// Load reads every figure from a supported file, picking the format by extension.
func Load(path string) ([]Figure, error) {
	ext := strings.ToLower(filepath.Ext(path))
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "load")
	}
	var figs []Figure
	switch ext {
	case ".wkt":
		figs, err = loadWKT(data)
	case ".csv":
		figs, err = loadCSV(data)
	case ".geojson", ".json":
		figs, err = loadGeoJSON(data)
	case ".kml":
		figs, err = loadKML(data)
	case ".yaml", ".yml":
		figs, err = loadYAML(data)
	default:
		return nil, errors.Errorf("unsupported file: %q", ext)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "load %s", filepath.Base(path))
	}
	if len(figs) == 0 {
		return nil, errors.Errorf("load %s: no figures found", filepath.Base(path))
	}
	base := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	for i := range figs {
		if figs[i].Name == "" {
			figs[i].Name = base + "#" + strconv.Itoa(i+1)
		}
	}
	return figs, nil
}
