package geom

import (
	"bytes"
	"encoding/csv"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// loadCSV reads a CSV with x/y columns.
// Column detection (case-insensitive): x|lon|lng|long|longitude and y|lat|latitude,
// plus optional name|figure and kind. Consecutive rows sharing a name form one figure.
func loadCSV(data []byte) ([]Figure, error) {
	r := csv.NewReader(bytes.NewReader(data))
	r.TrimLeadingSpace = true
	r.FieldsPerRecord = -1
	recs, err := r.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(recs) == 0 {
		return nil, errors.New("empty csv")
	}
	idxX, idxY, idxName, idxKind := -1, -1, -1, -1
	for i, h := range recs[0] {
		switch strings.ToLower(strings.TrimSpace(h)) {
		case "x", "lon", "lng", "long", "longitude":
			if idxX == -1 {
				idxX = i
			}
		case "y", "lat", "latitude":
			if idxY == -1 {
				idxY = i
			}
		case "name", "figure":
			if idxName == -1 {
				idxName = i
			}
		case "kind":
			idxKind = i
		}
	}
	if idxX == -1 || idxY == -1 {
		return nil, errors.New("csv: x/y columns not found")
	}
	cell := func(row []string, i int) string {
		if i < 0 || i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}
	var figs []Figure
	for n, row := range recs[1:] {
		line := n + 2
		x, err := strconv.ParseFloat(cell(row, idxX), 64)
		if err != nil {
			return nil, errors.Errorf("csv line %d: bad x %q", line, cell(row, idxX))
		}
		y, err := strconv.ParseFloat(cell(row, idxY), 64)
		if err != nil {
			return nil, errors.Errorf("csv line %d: bad y %q", line, cell(row, idxY))
		}
		name := cell(row, idxName)
		if len(figs) == 0 || figs[len(figs)-1].Name != name {
			figs = append(figs, Figure{Name: name})
		}
		fig := &figs[len(figs)-1]
		if k := cell(row, idxKind); k != "" {
			kind, err := ParseKind(k)
			if err != nil {
				return nil, errors.Wrapf(err, "csv line %d", line)
			}
			fig.Kind = kind
		}
		fig.Points = append(fig.Points, Point{X: x, Y: y})
	}
	return figs, nil
}
