package geom

import (
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

type yamlFigure struct {
	Name   string      `yaml:"name"`
	Kind   string      `yaml:"kind"`
	Points [][]float64 `yaml:"points"`
}

type yamlDoc struct {
	Figures []yamlFigure `yaml:"figures"`
}

// loadYAML reads a figure list:
//
//	figures:
//	  - name: roof
//	    kind: triangle
//	    points: [[0, 0], [4, 0], [2, 3]]
func loadYAML(data []byte) ([]Figure, error) {
	var doc yamlDoc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	figs := make([]Figure, 0, len(doc.Figures))
	for i, yf := range doc.Figures {
		kind, err := ParseKind(yf.Kind)
		if err != nil {
			return nil, errors.Wrapf(err, "figure %d", i+1)
		}
		fig := Figure{Name: yf.Name, Kind: kind, Points: make([]Point, 0, len(yf.Points))}
		for j, p := range yf.Points {
			if len(p) != 2 {
				return nil, errors.Errorf("figure %d point %d: want [x, y], got %v", i+1, j+1, p)
			}
			fig.Points = append(fig.Points, Point{X: p[0], Y: p[1]})
		}
		figs = append(figs, fig)
	}
	return figs, nil
}
