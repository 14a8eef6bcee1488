package geom

import (
	"encoding/json"

	"github.com/pkg/errors"
)

// loadGeoJSON reads Point, MultiPoint, LineString and Polygon geometries from a
// bare geometry, a Feature or a FeatureCollection. Feature properties "name"
// and "kind" are carried onto the figure.
func loadGeoJSON(data []byte) ([]Figure, error) {
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	var figs []Figure
	parsePoint := func(v any) (Point, bool) {
		if a, ok := v.([]any); ok && len(a) >= 2 {
			x, xok := a[0].(float64)
			y, yok := a[1].(float64)
			if xok && yok {
				return Point{X: x, Y: y}, true
			}
		}
		return Point{}, false
	}
	parseArrayPoints := func(v any) []Point {
		arr, _ := v.([]any)
		var pts []Point
		for _, el := range arr {
			if pt, ok := parsePoint(el); ok {
				pts = append(pts, pt)
			}
		}
		return pts
	}
	walkGeom := func(g map[string]any, props map[string]any) error {
		fig := Figure{}
		if name, ok := props["name"].(string); ok {
			fig.Name = name
		}
		if k, ok := props["kind"].(string); ok {
			kind, err := ParseKind(k)
			if err != nil {
				return err
			}
			fig.Kind = kind
		}
		gt, _ := g["type"].(string)
		switch gt {
		case "Point":
			if pt, ok := parsePoint(g["coordinates"]); ok {
				fig.Points = []Point{pt}
			}
		case "MultiPoint", "LineString":
			fig.Points = parseArrayPoints(g["coordinates"])
		case "Polygon":
			// outer ring only
			if rings, ok := g["coordinates"].([]any); ok && len(rings) > 0 {
				fig.Points = parseArrayPoints(rings[0])
				if n := len(fig.Points); n > 1 && fig.Points[0] == fig.Points[n-1] {
					fig.Points = fig.Points[:n-1]
				}
			}
		default:
			return errors.Errorf("unsupported geometry type %q", gt)
		}
		if len(fig.Points) > 0 {
			figs = append(figs, fig)
		}
		return nil
	}
	t, _ := raw["type"].(string)
	switch t {
	case "Feature":
		g, _ := raw["geometry"].(map[string]any)
		props, _ := raw["properties"].(map[string]any)
		if g != nil {
			if err := walkGeom(g, props); err != nil {
				return nil, err
			}
		}
	case "FeatureCollection":
		fs, _ := raw["features"].([]any)
		for _, f := range fs {
			fm, ok := f.(map[string]any)
			if !ok {
				continue
			}
			g, _ := fm["geometry"].(map[string]any)
			props, _ := fm["properties"].(map[string]any)
			if g == nil {
				continue
			}
			if err := walkGeom(g, props); err != nil {
				return nil, err
			}
		}
	case "":
		return nil, errors.New("invalid geojson: missing type")
	default:
		if err := walkGeom(raw, nil); err != nil {
			return nil, err
		}
	}
	return figs, nil
}
