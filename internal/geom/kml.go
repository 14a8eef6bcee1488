package geom

import (
	"encoding/xml"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// loadKML extracts one figure per Placemark from its Point, LineString or
// Polygon outer boundary. KML coordinates are "lon,lat[,alt]"; altitude is ignored.
func loadKML(data []byte) ([]Figure, error) {
	type kmlCoords struct {
		Coordinates string `xml:"coordinates"`
	}
	type kmlPolygon struct {
		Outer kmlCoords `xml:"outerBoundaryIs>LinearRing"`
	}
	type kmlPlacemark struct {
		Name       string      `xml:"name"`
		Point      *kmlCoords  `xml:"Point"`
		LineString *kmlCoords  `xml:"LineString"`
		Polygon    *kmlPolygon `xml:"Polygon"`
	}
	type kmlDoc struct {
		Placemarks []kmlPlacemark `xml:"Document>Placemark"`
		Bare       []kmlPlacemark `xml:"Placemark"`
	}

	var doc kmlDoc
	if err := xml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	parseCoords := func(s string) ([]Point, error) {
		var pts []Point
		// coordinates may contain multiple tuples separated by spaces
		for _, tuple := range strings.Fields(s) {
			vals := strings.Split(tuple, ",")
			if len(vals) < 2 {
				return nil, errors.Errorf("kml: bad coordinate %q", tuple)
			}
			x, err1 := strconv.ParseFloat(strings.TrimSpace(vals[0]), 64)
			y, err2 := strconv.ParseFloat(strings.TrimSpace(vals[1]), 64)
			if err1 != nil || err2 != nil {
				return nil, errors.Errorf("kml: bad coordinate %q", tuple)
			}
			pts = append(pts, Point{X: x, Y: y})
		}
		return pts, nil
	}
	var figs []Figure
	for _, pm := range append(doc.Placemarks, doc.Bare...) {
		var (
			pts []Point
			err error
		)
		switch {
		case pm.Point != nil:
			pts, err = parseCoords(pm.Point.Coordinates)
		case pm.LineString != nil:
			pts, err = parseCoords(pm.LineString.Coordinates)
		case pm.Polygon != nil:
			pts, err = parseCoords(pm.Polygon.Outer.Coordinates)
			if n := len(pts); err == nil && n > 1 && pts[0] == pts[n-1] {
				pts = pts[:n-1]
			}
		default:
			continue
		}
		if err != nil {
			return nil, errors.Wrapf(err, "placemark %q", pm.Name)
		}
		if len(pts) > 0 {
			figs = append(figs, Figure{Name: strings.TrimSpace(pm.Name), Points: pts})
		}
	}
	return figs, nil
}
