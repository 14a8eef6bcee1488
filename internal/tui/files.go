package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"sort"
	"strings"

	list "github.com/charmbracelet/bubbles/list"

	"geoshape/internal/geom"
)

type itemKind int

const (
	itemShape itemKind = iota
	itemFile
	itemFigure
)

// menuItem is a shape to enter by hand, a figure file, or a loaded figure.
type menuItem struct {
	title, desc string
	kind        itemKind
	shape       geom.Kind
	path        string
	fig         *geom.Figure
}

func (i menuItem) Title() string       { return i.title }
func (i menuItem) Description() string { return i.desc }
func (i menuItem) FilterValue() string { return i.title }

var shapeItems = []list.Item{
	menuItem{title: "Line Segment", desc: "2 points", shape: geom.KindLine},
	menuItem{title: "Triangle", desc: "3 points", shape: geom.KindTriangle},
	menuItem{title: "Quadrilateral", desc: "4 points in cyclic order", shape: geom.KindQuad},
	menuItem{title: "Circle", desc: "center, then a point on the circumference", shape: geom.KindCircle},
}

func (m *Model) setItems() {
	items := make([]list.Item, 0, len(shapeItems)+len(m.figures)+len(m.files))
	items = append(items, shapeItems...)
	items = append(items, m.figures...)
	items = append(items, m.files...)
	m.l.SetItems(items)
}

// refreshDir lists the figure files in the working directory.
func (m *Model) refreshDir() {
	entries, err := os.ReadDir(m.cwd)
	if err != nil {
		m.status = "read dir error: " + err.Error()
		m.setItems()
		return
	}
	var items []list.Item
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(name))
		if slices.Contains(geom.Formats, ext) {
			items = append(items, menuItem{title: name, desc: "file " + ext, kind: itemFile, path: filepath.Join(m.cwd, name)})
		}
	}
	sort.SliceStable(items, func(i, j int) bool { return items[i].(menuItem).title < items[j].(menuItem).title })
	m.files = items
	m.setItems()
}

// loadPath loads every figure in p into the menu. It reports whether
// anything was loaded.
func (m *Model) loadPath(p string) bool {
	figs, err := geom.Load(p)
	if err != nil {
		m.status = "load error: " + err.Error()
		return false
	}
	m.selPath = p
	m.figures = m.figures[:0]
	for i := range figs {
		f := figs[i]
		desc := fmt.Sprintf("%s, %d points", f.Kind, len(f.Points))
		m.figures = append(m.figures, menuItem{title: f.Name, desc: desc, kind: itemFigure, fig: &f})
	}
	m.setItems()
	m.status = fmt.Sprintf("loaded: %s  figures=%d", filepath.Base(p), len(figs))
	return true
}
