package tui

import (
	"os"

	list "github.com/charmbracelet/bubbles/list"
	table "github.com/charmbracelet/bubbles/table"
	textarea "github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"

	"geoshape/internal/geom"
	"geoshape/internal/report"
)

type Model struct {
	width  int
	height int

	showMenu    bool
	helpVisible bool

	// pan, in grid cells and rows
	offsetX int
	offsetY int

	status string

	// Menu: shapes, files in cwd, loaded figures
	cwd     string
	l       list.Model
	files   []list.Item
	figures []list.Item
	selPath string

	// coordinate entry
	editing bool
	pending geom.Kind
	ta      textarea.Model

	// current analysis
	fig *geom.Figure
	rep *report.Report

	// inspect popup
	inspectPopup string

	// hover state
	hovering bool
	hoverX   int
	hoverY   int

	// measurements table
	showMeasure bool
	tbl         table.Model
}

func New() Model {
	m := Model{
		showMenu:    true,
		helpVisible: true,
		status:      "geoshape ready",
	}
	m.cwd, _ = os.Getwd()
	d := list.NewDefaultDelegate()
	m.l = list.New(nil, d, 0, 0)
	m.l.Title = "Shapes"
	m.l.SetShowHelp(false)
	m.l.SetShowStatusBar(false)
	m.l.SetFilteringEnabled(true)
	m.ta = textarea.New()
	m.ta.CharLimit = 0
	m.ta.SetWidth(50)
	m.ta.SetHeight(6)
	m.tbl = table.New(
		table.WithColumns([]table.Column{{Title: "Measure", Width: 14}, {Title: "Value", Width: 34}}),
		table.WithFocused(true),
	)
	m.tbl.SetHeight(12)
	m.refreshDir()
	return m
}

// NewWithPath loads a figure file at launch and analyzes its first figure.
func NewWithPath(path string) Model {
	m := New()
	if m.loadPath(path) {
		it := m.figures[0].(menuItem)
		if m.analyze(*it.fig) {
			m.showMenu = false
		}
	}
	return m
}

func (m Model) Init() tea.Cmd { return nil }

// Report returns the current analysis, if any.
func (m Model) Report() *report.Report { return m.rep }
