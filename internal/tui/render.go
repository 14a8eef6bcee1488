package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"geoshape/internal/grid"
)

// rowLabelWidth is the width of the "%3d | " prefix; every cell takes two columns.
const rowLabelWidth = 6

// reportHeader is the text above the grid.
func (m Model) reportHeader() []string {
	r := m.rep
	if r == nil {
		return []string{
			titleStyle.Render("No figure yet"),
			dimStyle.Render("Pick a shape from the menu (Tab), or load a figure file."),
		}
	}
	lines := []string{titleStyle.Render(r.Title)}
	for _, row := range r.Rows {
		lines = append(lines, fmt.Sprintf("%s: %s", row.Label, row.Value))
	}
	if r.Failed {
		return append(lines, errStyle.Render("Error: "+r.Verdict))
	}
	lines = append(lines, "Type: "+verdictStyle.Render(r.Verdict))
	for _, n := range r.Properties {
		lines = append(lines, "Property: "+noteStyle.Render(n))
	}
	for _, n := range r.Notes {
		lines = append(lines, dimStyle.Render("Note: "+n))
	}
	return append(lines, "")
}

// renderGrid draws the visible window of the current canvas. Row labels stay
// put while the cells pan.
func (m Model) renderGrid(w, h int) []string {
	if m.rep == nil || m.rep.Grid == nil || h <= 0 {
		return nil
	}
	c := m.rep.Grid
	b := c.Box
	cols := max(1, (w-rowLabelWidth)/2)
	var out []string
	for y := b.MaxY - m.offsetY; y >= b.MinY && len(out) < h; y-- {
		var sb strings.Builder
		fmt.Fprintf(&sb, "%3d | ", y)
		for x := b.MinX + m.offsetX; x <= b.MaxX && x < b.MinX+m.offsetX+cols; x++ {
			st := markStyle(c.At(x, y))
			if m.hovering && x == m.hoverX && y == m.hoverY {
				st = st.Reverse(true)
			}
			sb.WriteString(st.Render(string(c.At(x, y))))
			sb.WriteByte(' ')
		}
		out = append(out, sb.String())
	}
	if c.Ruled() && len(out) < h {
		n := min(b.Width()-m.offsetX, cols)
		out = append(out, dimStyle.Render(strings.Repeat(" ", rowLabelWidth)+strings.Repeat("--", n)))
	}
	return out
}

func markStyle(r rune) lipgloss.Style {
	switch r {
	case grid.MarkEmpty:
		return dimStyle
	case grid.MarkOrigin, grid.MarkXAxis, grid.MarkYAxis:
		return axisStyle
	case grid.MarkCircle:
		return circleStyle
	case grid.MarkCenter:
		return centerStyle
	}
	return pointStyle
}

func (m Model) mainOrigin() (int, int) {
	x := 0
	if m.showMenu {
		x = menuWidth + 1
	}
	return x, headerHeight + len(m.reportHeader())
}

// hoverAt maps a screen position onto a grid cell.
func (m *Model) hoverAt(sx, sy int) {
	m.hovering = false
	if m.rep == nil || m.rep.Grid == nil || m.editing || m.showMeasure || m.inspectPopup != "" {
		return
	}
	ox, oy := m.mainOrigin()
	col := sx - ox - rowLabelWidth
	row := sy - oy
	if col < 0 || row < 0 {
		return
	}
	b := m.rep.Grid.Box
	x := b.MinX + m.offsetX + col/2
	y := b.MaxY - m.offsetY - row
	if !b.Contains(x, y) {
		return
	}
	m.hovering = true
	m.hoverX, m.hoverY = x, y
}
