package tui

import (
	"fmt"
	"strings"

	list "github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"geoshape/internal/geom"
	"geoshape/internal/report"
)

const (
	menuWidth    = 34
	headerHeight = 1
	footerHeight = 2
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.l.SetSize(menuWidth-2, m.contentHeight())
	case tea.KeyMsg:
		// filtering owns the keyboard
		if m.showMenu && m.l.FilterState() == list.Filtering {
			var cmd tea.Cmd
			m.l, cmd = m.l.Update(msg)
			return m, cmd
		}
		if m.editing {
			switch msg.String() {
			case "esc":
				m.editing = false
				m.ta.Blur()
				m.status = "entry cancelled"
				return m, nil
			case "enter":
				m.submitEntry()
				return m, nil
			}
			var cmd tea.Cmd
			m.ta, cmd = m.ta.Update(msg)
			return m, cmd
		}
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "tab":
			m.showMenu = !m.showMenu
			if m.showMenu {
				m.refreshDir()
			}
			return m, nil
		case "esc":
			m.inspectPopup = ""
			return m, nil
		case "h":
			m.helpVisible = !m.helpVisible
			return m, nil
		case "a":
			m.showMeasure = !m.showMeasure
			if m.showMeasure {
				m.refreshMeasurements()
			}
			return m, nil
		case "i":
			if m.inspectPopup != "" {
				m.inspectPopup = ""
			} else {
				m.inspect()
			}
			return m, nil
		case "r":
			m.offsetX, m.offsetY = 0, 0
			m.status = "view reset"
			return m, nil
		case "enter":
			if m.showMenu {
				if it, ok := m.l.SelectedItem().(menuItem); ok {
					cmd := m.open(it)
					return m, cmd
				}
			}
			return m, nil
		case "up", "down", "left", "right":
			if !m.showMenu {
				m.pan(msg.String())
				return m, nil
			}
		}
	case tea.MouseMsg:
		m.hoverAt(msg.X, msg.Y)
		return m, nil
	}
	if m.showMenu {
		var cmd tea.Cmd
		m.l, cmd = m.l.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) contentHeight() int {
	return max(4, m.height-headerHeight-footerHeight)
}

// open acts on a menu selection.
func (m *Model) open(it menuItem) tea.Cmd {
	switch it.kind {
	case itemShape:
		m.editing = true
		m.pending = it.shape
		m.ta.SetValue("")
		m.ta.Placeholder = placeholder(it.shape)
		m.status = "enter " + it.desc
		return m.ta.Focus()
	case itemFile:
		m.loadPath(it.path)
	case itemFigure:
		if m.analyze(*it.fig) {
			m.showMenu = false
		}
	}
	return nil
}

func placeholder(k geom.Kind) string {
	ex := map[geom.Kind]string{
		geom.KindLine:     "0,0 3,4",
		geom.KindTriangle: "0,0 3,0 0,4",
		geom.KindQuad:     "0,0 2,0 2,2 0,2",
		geom.KindCircle:   "0,0 5,0",
	}[k]
	return fmt.Sprintf("%s: %d points as x,y pairs, e.g. %s. Enter to analyze; Esc to cancel.", k, k.Arity(), ex)
}

func (m *Model) submitEntry() {
	text := strings.TrimSpace(m.ta.Value())
	if text == "" {
		m.status = "entry: empty"
		return
	}
	pts, err := geom.ParsePoints(text)
	if err != nil {
		m.status = "parse error: " + err.Error()
		return
	}
	if !m.analyze(geom.Figure{Kind: m.pending, Points: pts}) {
		return
	}
	m.editing = false
	m.showMenu = false
	m.ta.Blur()
}

// analyze builds the report for f and makes it current.
func (m *Model) analyze(f geom.Figure) bool {
	r, err := report.Build(f)
	if err != nil {
		m.status = "analysis error: " + err.Error()
		return false
	}
	m.fig, m.rep = &f, &r
	m.offsetX, m.offsetY = 0, 0
	m.inspectPopup = ""
	m.hovering = false
	if r.Failed {
		m.status = "error: " + r.Verdict
	} else {
		m.status = fmt.Sprintf("%s: %s", r.Kind, r.Verdict)
	}
	if m.showMeasure {
		m.refreshMeasurements()
	}
	return true
}

func (m *Model) pan(dir string) {
	if m.rep == nil || m.rep.Grid == nil {
		return
	}
	b := m.rep.Grid.Box
	switch dir {
	case "up":
		m.offsetY--
	case "down":
		m.offsetY++
	case "left":
		m.offsetX--
	case "right":
		m.offsetX++
	}
	m.offsetX = min(max(m.offsetX, 0), b.Width()-1)
	m.offsetY = min(max(m.offsetY, 0), b.Height()-1)
}

func (m *Model) inspect() {
	if m.fig == nil {
		m.inspectPopup = "nothing analyzed yet"
		m.status = m.inspectPopup
		return
	}
	f := m.fig
	name := f.Name
	if name == "" {
		name = "<entered>"
	}
	bb := geom.Bounds(f.Points)
	meta := []string{
		fmt.Sprintf("name: %s", name),
		fmt.Sprintf("kind: %s", m.rep.Kind),
		fmt.Sprintf("bounds: [%.2f, %.2f, %.2f, %.2f]", bb.MinX, bb.MinY, bb.MaxX, bb.MaxY),
	}
	if m.selPath != "" && f.Name != "" {
		meta = append(meta, fmt.Sprintf("source: %s", m.selPath))
	}
	for i, p := range f.Points {
		meta = append(meta, fmt.Sprintf("P%d: %v", i+1, p))
	}
	if g := m.rep.Grid; g != nil {
		meta = append(meta, fmt.Sprintf("grid: x %d..%d, y %d..%d", g.Box.MinX, g.Box.MaxX, g.Box.MinY, g.Box.MaxY))
	}
	m.inspectPopup = strings.Join(meta, "\n")
	m.status = "inspect popup"
}
